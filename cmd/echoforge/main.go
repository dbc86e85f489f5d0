// Package main is the entry point for the echoforge CLI.
package main

import (
	"os"

	"github.com/noct-ml/echo-forge/cmd/echoforge/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
