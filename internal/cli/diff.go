package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trimerge/trimerge/internal/diff"
)

var (
	diffColor   string
	diffContext int
)

var diffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "Print a unified line-level diff of two files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldB, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		newB, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[1], err)
		}

		d := diff.DiffText(string(oldB), string(newB))
		fmt.Fprintln(cmd.OutOrStdout(), d.RenderUnifiedDiff(useColor(diffColor), args[0], args[1], diffContext))
		return nil
	},
}

func init() {
	diffCmd.Flags().StringVar(&diffColor, "color", "auto", `colorize output: "auto", "always", or "never"`)
	diffCmd.Flags().IntVar(&diffContext, "context", 3, "unchanged lines shown around each change")
}
