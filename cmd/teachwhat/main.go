// Package main provides the entry point for teachwhat.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yndnr/teachwhat-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		if !errors.Is(err, command.ErrReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
