// Package cmd implements the stage CLI commands.
//
// The command structure follows standard Go CLI patterns with a root
// command that dispatches to subcommands (validate, replay, version).
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/stage/pkg/errors"
)

var (
	version = "dev"
	verbose bool
)

// SetVersion records the version string baked in at build time.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "stage",
	Short: "Stage - window container scene tooling",
	Long: `Stage replays declarative window scenes against the container
tree used by the compositor core. Scenes describe displays, stacks,
and tasks plus a sequence of lifecycle operations; the tool validates
them and prints the resulting tree.

Use "stage <command> --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		errors.SetHandler(&errors.LogHandler{Verbose: verbose})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"include stack traces in reported errors")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
