package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import migrations and seeders so their init() funcs run and register
	// themselves.
	_ "github.com/ganesh12122/Stark-Products-E-Commerce-Website/database/migrations"
	_ "github.com/ganesh12122/Stark-Products-E-Commerce-Website/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starkctl",
	Short: "Stark Products backend CLI",
	Long:  "Management CLI for the Stark Products e-commerce backend: serve, migrate, seed.",
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}
