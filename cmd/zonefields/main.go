// Command zonefields maintains the hardiness-zone product metafields on the
// commerce platform:
//
//	zonefields sync    fill in missing zones from the plant matcher
//	zonefields audit   classify existing metafield formats, read-only
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
