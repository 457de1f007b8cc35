package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trimerge/trimerge/internal/merge"
	"github.com/trimerge/trimerge/internal/simplelogger"
)

var (
	resolveChunk  string
	resolveAction string
	resolveOut    string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <base> <left> <right> --chunk <id> --action <base|left|right|manual>",
	Short: "Apply one resolution action to a chunk and emit the next base text",
	Long: "resolve recomputes the chunk list, applies the chosen action to the named\n" +
		"chunk, and writes the resulting base text. Chunk ids are only stable within\n" +
		"one computation, so inspect them with \"trimerge chunks\" first and re-run\n" +
		"after every resolution.",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, left, right, err := readSnapshots(args)
		if err != nil {
			return err
		}

		action, err := parseAction(resolveAction)
		if err != nil {
			return err
		}

		chunks := merge.BuildChunks(base, left, right)
		for _, c := range chunks {
			if c.ID != resolveChunk {
				continue
			}
			next := merge.Apply(base, left, right, c, action)
			simplelogger.Log("resolve: %s %s on %s", c.ID, action, args[0])
			return writeOutput(cmd, resolveOut, next)
		}
		return fmt.Errorf("no chunk %q (have %d chunk(s); run \"trimerge chunks\" to list them)", resolveChunk, len(chunks))
	},
}

func parseAction(s string) (merge.Action, error) {
	switch s {
	case "base":
		return merge.ActionKeepBase, nil
	case "left":
		return merge.ActionApplyLeft, nil
	case "right":
		return merge.ActionApplyRight, nil
	case "manual":
		return merge.ActionManual, nil
	}
	return 0, fmt.Errorf("unknown action %q (want base, left, right, or manual)", s)
}

func init() {
	resolveCmd.Flags().StringVar(&resolveChunk, "chunk", "", "chunk id to resolve (ex: chunk-0)")
	resolveCmd.Flags().StringVar(&resolveAction, "action", "", "resolution action: base, left, right, or manual")
	resolveCmd.Flags().StringVarP(&resolveOut, "output", "o", "", "write the result to this file instead of stdout")
	_ = resolveCmd.MarkFlagRequired("chunk")
	_ = resolveCmd.MarkFlagRequired("action")
}
