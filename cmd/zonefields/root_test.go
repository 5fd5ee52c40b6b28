package main

import "testing"

func TestNewRootCmd(t *testing.T) {
	t.Run("registers sync and audit", func(t *testing.T) {
		root := newRootCmd()
		for _, name := range []string{"sync", "audit"} {
			cmd, _, err := root.Find([]string{name})
			if err != nil || cmd.Name() != name {
				t.Errorf("Find(%q) = %v, %v; want the subcommand", name, cmd, err)
			}
		}
	})

	t.Run("flag state is per-instance", func(t *testing.T) {
		a := newRootCmd()
		b := newRootCmd()

		if err := a.PersistentFlags().Set("verbose", "true"); err != nil {
			t.Fatalf("Set(verbose) error = %v", err)
		}

		got, err := b.PersistentFlags().GetBool("verbose")
		if err != nil {
			t.Fatalf("GetBool(verbose) error = %v", err)
		}
		if got {
			t.Error("verbose leaked between command instances")
		}
	})

	t.Run("sync flags are registered", func(t *testing.T) {
		root := newRootCmd()
		sync, _, err := root.Find([]string{"sync"})
		if err != nil {
			t.Fatalf("Find(sync) error = %v", err)
		}
		for _, name := range []string{"dry-run", "normalize"} {
			if sync.Flags().Lookup(name) == nil {
				t.Errorf("sync is missing the --%s flag", name)
			}
		}
	})
}
