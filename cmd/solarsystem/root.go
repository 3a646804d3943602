package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "solarsystem",
	Short: "Solar system catalog service",
	Long: `Solarsystem serves a read-only catalog of the planets of the Solar System.

It answers lookups by id over HTTP, reports liveness and readiness derived
from the connection to its catalog store, and publishes the API description
document. The catalog is provisioned out-of-band with the seed command.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (defaults apply when empty)")
}
