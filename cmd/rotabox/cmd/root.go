// Package cmd holds the rotabox subcommands.
package cmd

import (
	"fmt"
	"os"

	"github.com/frudas24/rotabox/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "rotabox",
	Short: "rotabox - drag, resize and rotate boxes over a websocket",
	Long: `rotabox runs the gesture engine for transformable boxes. Clients send
pointer and key events; rotabox answers with the resulting geometry.

Examples:
  rotabox serve                           # Serve /ws/control and /api/state
  rotabox replay demo.gesture --scene s.yaml  # Print the messages a script produces`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		setupLogging(cmd, os.Getenv("LOG_LEVEL"))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose debug logging")
}

// setupLogging installs the process logger on stderr.
func setupLogging(cmd *cobra.Command, level string) {
	logging.SetLogger(logging.New(cmd.ErrOrStderr(), level, debug))
}
