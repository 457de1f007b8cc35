package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeSnapshots writes the three merge inputs to a temp dir and returns their
// paths.
func writeSnapshots(t *testing.T, base, left, right string) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	paths := [3]string{filepath.Join(dir, "base.txt"), filepath.Join(dir, "left.txt"), filepath.Join(dir, "right.txt")}
	for i, text := range []string{base, left, right} {
		require.NoError(t, os.WriteFile(paths[i], []byte(text), 0o644))
	}
	return paths[0], paths[1], paths[2]
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestChunksCommand(t *testing.T) {
	base, left, right := writeSnapshots(t,
		"one\ntwo\nthree\n",
		"ONE\ntwo\nthree\n",
		"one\ntwo\nTHREE\n")

	out, err := run(t, "chunks", base, left, right, "--color", "never")
	require.NoError(t, err)
	require.Contains(t, out, "chunk-0")
	require.Contains(t, out, "left-only")
	require.Contains(t, out, "chunk-1")
	require.Contains(t, out, "right-only")
}

func TestChunksCommand_NoDifferences(t *testing.T) {
	base, left, right := writeSnapshots(t, "same\n", "same\n", "same\n")

	out, err := run(t, "chunks", base, left, right)
	require.NoError(t, err)
	require.Contains(t, out, "no differences")
}

func TestResolveCommand_ApplyLeft(t *testing.T) {
	base, left, right := writeSnapshots(t,
		"alpha\nbravo\ncharlie\n",
		"alpha\nbravo-left\ncharlie\n",
		"alpha\nbravo-right\ncharlie\n")

	outFile := filepath.Join(t.TempDir(), "resolved.txt")
	_, err := run(t, "resolve", base, left, right, "--chunk", "chunk-0", "--action", "left", "-o", outFile)
	require.NoError(t, err)

	b, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Equal(t, "alpha\nbravo-left\ncharlie\n", string(b))
}

func TestResolveCommand_UnknownChunk(t *testing.T) {
	base, left, right := writeSnapshots(t, "a\n", "b\n", "c\n")

	_, err := run(t, "resolve", base, left, right, "--chunk", "chunk-9", "--action", "left")
	require.Error(t, err)
	require.Contains(t, err.Error(), "chunk-9")
}

func TestMergeCommand_Clean(t *testing.T) {
	base, left, right := writeSnapshots(t,
		"one\ntwo\nthree\n",
		"ONE\ntwo\nthree\n",
		"one\ntwo\nTHREE\n")

	outFile := filepath.Join(t.TempDir(), "merged.txt")
	_, err := run(t, "merge", base, left, right, "-o", outFile)
	require.NoError(t, err)

	b, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Equal(t, "ONE\ntwo\nTHREE\n", string(b))
}

func TestMergeCommand_ConflictFailsButWrites(t *testing.T) {
	base, left, right := writeSnapshots(t,
		"alpha\nbravo\ncharlie\n",
		"alpha\nbravo-left\ncharlie\n",
		"alpha\nbravo-right\ncharlie\n")

	outFile := filepath.Join(t.TempDir(), "merged.txt")
	_, err := run(t, "merge", base, left, right, "-o", outFile)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 conflict(s) remain")

	b, readErr := os.ReadFile(outFile)
	require.NoError(t, readErr)
	require.Contains(t, string(b), "<<<<<<< left")
	require.Contains(t, string(b), ">>>>>>> right")
}

func TestDiffCommand(t *testing.T) {
	dir := t.TempDir()
	oldFile := filepath.Join(dir, "old.txt")
	newFile := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(oldFile, []byte("a\nb\n"), 0o644))
	require.NoError(t, os.WriteFile(newFile, []byte("a\nB\n"), 0o644))

	out, err := run(t, "diff", oldFile, newFile, "--color", "never")
	require.NoError(t, err)
	require.Contains(t, out, "-b")
	require.Contains(t, out, "+B")
}

func TestShowCommand(t *testing.T) {
	base, left, right := writeSnapshots(t,
		"alpha\nbravo\ncharlie\n",
		"alpha\nbravo-left\ncharlie\n",
		"alpha\nbravo-right\ncharlie\n")

	out, err := run(t, "show", base, left, right, "--width", "90")
	require.NoError(t, err)
	require.Contains(t, out, "chunk-0 (conflict)")
	require.Contains(t, out, "bravo-left")
	require.Contains(t, out, "bravo-right")
}

func TestMissingFileError(t *testing.T) {
	base, left, _ := writeSnapshots(t, "a\n", "a\n", "a\n")

	_, err := run(t, "chunks", base, left, filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
