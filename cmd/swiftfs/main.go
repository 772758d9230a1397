// Package main provides the entry point for the swiftfs CLI.
package main

import (
	"os"

	"github.com/swiftfs/swiftfs/cmd/swiftfs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
