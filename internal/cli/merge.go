package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trimerge/trimerge/internal/merge"
	"github.com/trimerge/trimerge/internal/simplelogger"
)

var mergeOut string

var mergeCmd = &cobra.Command{
	Use:   "merge <base> <left> <right>",
	Short: "Merge both sides, leaving diff3-style markers on conflicts",
	Long: "merge applies every non-conflicting chunk from both sides. Conflicting\n" +
		"regions are never resolved automatically: they appear in the output between\n" +
		"<<<<<<< / ||||||| / ======= / >>>>>>> markers, and the exit status is\n" +
		"non-zero when any remain.",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, left, right, err := readSnapshots(args)
		if err != nil {
			return err
		}

		merged, conflicts := merge.Merge(base, left, right)
		simplelogger.Log("merge: %s with %d conflict(s)", args[0], conflicts)

		if err := writeOutput(cmd, mergeOut, merged); err != nil {
			return err
		}
		if conflicts > 0 {
			return fmt.Errorf("%d conflict(s) remain", conflicts)
		}
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOut, "output", "o", "", "write the result to this file instead of stdout")
}
