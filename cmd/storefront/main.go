package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "storefront",
		Short: "storefront backend services",
	}
	rootCmd.AddCommand(
		productCommand(),
		orderCommand(),
		migrateCommand(),
		createMigrationCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
