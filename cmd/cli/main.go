// Package main is the entry point for the tariffs CLI.
package main

import (
	"os"

	"tariff-compare/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
