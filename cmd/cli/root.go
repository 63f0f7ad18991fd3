package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradeup",
	Short: "Trade-up offer generation engine",
	Long: `tradeup evaluates a customer's vehicle trade-up and generates ranked
financing offers across an inventory, using hierarchical, custom, or
range-optimization search strategies.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags can be added here
	// rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}
