package dieta

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "dieta",
	Short: "dieta builds weekly meal plans and shopping lists from your terminal",
	Long:  "dieta is a local-first diet planning CLI: a food database with unit conversion, weekly meal plans with alternatives, macro totals, and a preparation-aware shopping list.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
