// Package main is the entry point for resell-sync.
package main

import (
	"os"

	"github.com/resellops/resell-sync/cmd/resell-sync/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
