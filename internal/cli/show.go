package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trimerge/trimerge/internal/merge"
)

var showWidth int

var showCmd = &cobra.Command{
	Use:   "show <base> <left> <right>",
	Short: "Render chunks side by side (left | base | right)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, left, right, err := readSnapshots(args)
		if err != nil {
			return err
		}

		chunks := merge.BuildChunks(base, left, right)
		if len(chunks) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no differences")
			return nil
		}

		width := showWidth
		if width == 0 {
			width = 120
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), merge.RenderSideBySide(base, left, right, chunks, width))
		return nil
	},
}

func init() {
	showCmd.Flags().IntVar(&showWidth, "width", 0, "total output width (0 = terminal width, falling back to 120)")
}
