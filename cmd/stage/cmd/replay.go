package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-drift/stage/cmd/stage/internal/scene"
	"github.com/go-drift/stage/pkg/wm"
)

var replayCmd = &cobra.Command{
	Use:   "replay <scene.yaml>",
	Short: "Replay a scene and print the resulting container tree",
	Long: `Replay builds the displays, stacks, and tasks described by the
scene file, applies its operation sequence, and prints the container
tree that remains. Deferred removals and animating containers are
annotated.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scene.Load(args[0])
		if err != nil {
			return err
		}
		result, err := scene.Replay(s)
		if err != nil {
			return err
		}
		printTree(cmd, result.Root)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func printTree(cmd *cobra.Command, root *wm.Root) {
	out := cmd.OutOrStdout()
	for _, dc := range root.Displays() {
		fmt.Fprintln(out, color.CyanString("display#%d", dc.ID()))
		for _, child := range dc.Children() {
			printContainer(cmd, child, 1)
		}
	}
}

func printContainer(cmd *cobra.Command, container wm.Container, depth int) {
	label := fmt.Sprintf("%s%v", strings.Repeat("  ", depth), container)
	switch {
	case container.DeferredRemoval():
		label += color.YellowString(" (deferred removal)")
	case container.AnimationState() == wm.AnimationRunning:
		label += color.MagentaString(" (animating)")
	}
	fmt.Fprintln(cmd.OutOrStdout(), label)
	for _, child := range container.Children() {
		printContainer(cmd, child, depth+1)
	}
}
