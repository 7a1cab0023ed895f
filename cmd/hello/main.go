// Package main is the hello command-line companion of the greeting service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hello",
		Short:         "Greet locally, add integers, or fetch a greeting from the remote service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGreetCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newFetchCmd())
	return root
}
