// Segstrip is a terminal demo and inspection tool for the paginated
// segment strip control.
//
// The strip shows a fixed number of equally wide segments at once and can
// be dragged sideways with the mouse; on release it snaps to a segment
// boundary, and a tap selects the segment under the pointer.
//
// Usage:
//
//	segstrip [command] [flags]
//
// Running without arguments launches the interactive demo.
// See 'segstrip --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/segstrip/internal/logging"
	"github.com/muurk/segstrip/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "segstrip",
	Short: "Paginated segment strip demo and inspector",
	Long: `A terminal rendition of a horizontally scrolling segment strip.

The strip shows a fixed number of equally wide segments. Drag it with the
mouse to scroll; on release it snaps so a segment boundary lines up with the
left edge. Tapping a segment selects it.

If no command is specified, the interactive demo will launch automatically.

Logging is off unless SEGSTRIP_LOG_LEVEL is set (debug, info, warn, error).
Set SEGSTRIP_LOG_FILE to keep log output away from the demo screen.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the demo when no subcommand provided
		return runDemo(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "segstrip %s\n", version.Full())
		fmt.Fprintf(cmd.OutOrStdout(), "built with %s\n", version.Platform())
	},
}
