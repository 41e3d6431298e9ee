package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "regbridge",
	Short: "Regbridge simulates a bus-to-register-backend handshake bridge.",
	Long: `Regbridge simulates a handshake bridge that adapts a simple ` +
		`select/ready host bus into a request/acknowledge register ` +
		`interface. It drives the bridge with scripted or randomized bus ` +
		`operations against a register-file backend and reports the ` +
		`observed transactions.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
