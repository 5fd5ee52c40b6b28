package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/zonelens/backend/config"
	"github.com/zonelens/backend/internal/infrastructure/assets"
	"github.com/zonelens/backend/internal/infrastructure/shopify"
	"github.com/zonelens/backend/internal/usecase"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "zonefields",
		Short:         "Maintain hardiness-zone product metafields",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every product, not just a summary")

	root.AddCommand(newSyncCmd(&verbose))
	root.AddCommand(newAuditCmd(&verbose))
	return root
}

// newLogger builds the CLI logger; --verbose lowers the level to debug.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// setup loads .env, configuration, and constructs the admin API client.
// Configuration failures are fatal before any network call happens.
func setup(logger zerolog.Logger) (*config.Config, *shopify.Client, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.MutationsPerSec), cfg.RateLimit.Burst)
	client := shopify.NewClient(shopify.Config{
		StoreDomain: cfg.Shopify.StoreDomain,
		AdminToken:  cfg.Shopify.AdminToken,
		APIVersion:  cfg.Shopify.APIVersion,
		Namespace:   cfg.Shopify.Namespace,
		Key:         cfg.Shopify.Key,
	}, limiter, logger)

	return cfg, client, nil
}

func newSyncCmd(verbose *bool) *cobra.Command {
	var dryRun, normalize bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fill in missing hardiness-zone metafields from product titles",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)

			cfg, client, err := setup(logger)
			if err != nil {
				return err
			}

			plantDB, err := assets.LoadPlantDatabase()
			if err != nil {
				return err
			}
			matcher := usecase.NewPlantMatcher(plantDB)

			service := usecase.NewSyncService(client, matcher, logger)
			rep, err := service.Run(cmd.Context(), usecase.SyncOptions{
				DryRun:    dryRun,
				Normalize: normalize,
			})
			if err != nil {
				// Mid-pagination failure: no partial report is saved
				return err
			}

			if err := rep.Save(cfg.Report.Path); err != nil {
				return err
			}
			logger.Info().Str("path", cfg.Report.Path).Msg("report written")
			fmt.Print(rep.Summary())
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute outcomes without writing metafields")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "rewrite legacy zone-N values to bare zone codes")
	return cmd
}

func newAuditCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Classify existing zone metafield formats (read-only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)

			cfg, client, err := setup(logger)
			if err != nil {
				return err
			}

			service := usecase.NewAuditService(client, logger)
			rep, err := service.Run(cmd.Context())
			if err != nil {
				return err
			}

			if err := rep.Save(cfg.Report.Path); err != nil {
				return err
			}
			logger.Info().Str("path", cfg.Report.Path).Msg("report written")
			fmt.Print(rep.Summary())
			return nil
		},
	}
}
