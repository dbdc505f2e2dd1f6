package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	logFilePath string
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "stopnet",
	Short: "Transit network routing CLI",
	Long: `Stopnet loads transit networks (stops, routes, vehicles) from their text
format and answers routing queries against the distance-vector routing tables
the stops maintain.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logFilePath, "log-file", "l", "", "also write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
