// Package cli wires the merge engine to a cobra command tree. All view and
// session state (which file is which, chosen actions) lives here; the engine
// itself is pure.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "trimerge",
	Short: "Three-way line-level text merge",
	Long: "trimerge computes the line-level changes two derived texts made against a\n" +
		"common base, groups them into classified chunks (left-only, right-only,\n" +
		"both, conflict), and resolves chunks by splicing a chosen side back into\n" +
		"the base.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(chunksCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(diffCmd)
}

// readSnapshots reads the base, left, and right files named by args[0..2].
func readSnapshots(args []string) (base, left, right string, err error) {
	texts := make([]string, 3)
	for i, path := range args[:3] {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", "", "", fmt.Errorf("reading %s: %w", path, err)
		}
		texts[i] = string(b)
	}
	return texts[0], texts[1], texts[2], nil
}

// useColor resolves a --color flag value ("auto", "always", "never") against
// whether stdout is a terminal.
func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// writeOutput writes text to the -o path, or to the command's stdout when path
// is empty.
func writeOutput(cmd *cobra.Command, path, text string) error {
	if path == "" {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
