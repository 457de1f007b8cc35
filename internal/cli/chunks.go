package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trimerge/trimerge/internal/merge"
	"github.com/trimerge/trimerge/internal/simplelogger"
)

var chunksColor string

var chunksCmd = &cobra.Command{
	Use:   "chunks <base> <left> <right>",
	Short: "List the merge chunks between a base and two derived texts",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, left, right, err := readSnapshots(args)
		if err != nil {
			return err
		}

		chunks := merge.BuildChunks(base, left, right)
		simplelogger.Log("chunks: %d chunk(s) for base %s", len(chunks), args[0])

		if len(chunks) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no differences")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), merge.Summary(chunks, useColor(chunksColor)))
		return nil
	},
}

func init() {
	chunksCmd.Flags().StringVar(&chunksColor, "color", "auto", `colorize output: "auto", "always", or "never"`)
}
