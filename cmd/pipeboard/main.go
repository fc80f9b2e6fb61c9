// Package main is the entry point for the pipeboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/pipeboard/pipeboard/internal/app"
	"github.com/pipeboard/pipeboard/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := cli.NewRootCommand(app.NewFromWorkingDir, version)
	return rootCmd.Execute()
}
