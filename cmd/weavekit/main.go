// Package main is the entry point for the weavekit CLI.
package main

import (
	"os"

	"github.com/ecommax/weavekit/cmd/weavekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
