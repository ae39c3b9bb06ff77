// Command api is the entry point for the items service. It exposes
// three subcommands: serve (run the HTTP server), migrate (apply
// database migrations), and seed (populate a running instance with
// sample data over HTTP).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "items-api",
		Short:         "Item CRUD web service",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Bare invocation serves.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.AddCommand(serveCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(seedCmd())

	if err := root.Execute(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
