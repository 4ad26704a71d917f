package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-drift/stage/cmd/stage/internal/scene"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scene.yaml>",
	Short: "Validate a scene file",
	Long: `Validate parses the scene file, checks its schema version, and
replays it against a fresh tree to surface unknown targets or invalid
operations. Nothing is printed for the tree itself.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scene.Load(args[0])
		if err != nil {
			return err
		}
		if _, err := scene.Replay(s); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("%s: ok (%d displays, %d ops)",
			args[0], len(s.Displays), len(s.Ops)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
