package merge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildChunks_AgreeingRegionIsConflict(t *testing.T) {
	// Both sides rewrite the same base line.
	base := "alpha\nbravo\ncharlie\n"
	left := "alpha\nbravo-left\ncharlie\n"
	right := "alpha\nbravo-right\ncharlie\n"

	chunks := BuildChunks(base, left, right)
	require.Len(t, chunks, 1)

	c := chunks[0]
	require.Equal(t, "chunk-0", c.ID)
	require.Equal(t, KindConflict, c.Kind)
	require.Equal(t, ActionKeepBase, c.Action)
	require.Equal(t, LineRange{Start: 1, End: 1}, c.BaseRange)

	require.NotNil(t, c.LeftRange)
	require.NotNil(t, c.RightRange)
	require.Equal(t, LineRange{Start: 1, End: 1}, *c.LeftRange)
	require.Equal(t, LineRange{Start: 1, End: 1}, *c.RightRange)

	require.NotNil(t, c.BasePos)
	require.Equal(t, PosRange{From: 6, To: 12}, *c.BasePos)
	require.NotNil(t, c.LeftPos)
	require.Equal(t, "bravo-left\n", left[c.LeftPos.From:c.LeftPos.To])
	require.NotNil(t, c.RightPos)
	require.Equal(t, "bravo-right\n", right[c.RightPos.From:c.RightPos.To])
}

func TestBuildChunks_DisjointEdits(t *testing.T) {
	// Left edits the first line, right the third; the gap of one untouched line
	// is wider than the merge tolerance, so the edits stay separate chunks.
	base := "one\ntwo\nthree\n"
	left := "ONE\ntwo\nthree\n"
	right := "one\ntwo\nTHREE\n"

	chunks := BuildChunks(base, left, right)
	require.Len(t, chunks, 2)

	require.Equal(t, KindLeftOnly, chunks[0].Kind)
	require.NotNil(t, chunks[0].LeftRange)
	require.Nil(t, chunks[0].RightRange)
	require.Nil(t, chunks[0].RightBaseRange)
	require.Nil(t, chunks[0].RightPos)

	require.Equal(t, KindRightOnly, chunks[1].Kind)
	require.Nil(t, chunks[1].LeftRange)
	require.NotNil(t, chunks[1].RightRange)

	require.Equal(t, "chunk-0", chunks[0].ID)
	require.Equal(t, "chunk-1", chunks[1].ID)
}

func TestBuildChunks_IdenticalInputs(t *testing.T) {
	base := "same\ntext\n"
	require.Empty(t, BuildChunks(base, base, base))
}

func TestBuildChunks_AdjacentOppositeSidesMerge(t *testing.T) {
	// Left edits line 1, right edits line 2: within the 1-line tolerance, so a
	// single chunk; the side footprints don't overlap, so it is not a conflict.
	base := "one\ntwo\nthree\nfour\n"
	left := "one\nTWO\nthree\nfour\n"
	right := "one\ntwo\nTHREE\nfour\n"

	chunks := BuildChunks(base, left, right)
	require.Len(t, chunks, 1)

	c := chunks[0]
	require.Equal(t, KindBoth, c.Kind)
	require.Equal(t, LineRange{Start: 1, End: 2}, c.BaseRange)
	require.Equal(t, LineRange{Start: 1, End: 1}, *c.LeftBaseRange)
	require.Equal(t, LineRange{Start: 2, End: 2}, *c.RightBaseRange)
}

func TestBuildChunks_GapOfTwoLinesDoesNotMerge(t *testing.T) {
	base := "one\ntwo\nthree\nfour\nfive\n"
	left := "one\nTWO\nthree\nfour\nfive\n"
	right := "one\ntwo\nthree\nFOUR\nfive\n"

	chunks := BuildChunks(base, left, right)
	require.Len(t, chunks, 2)
	require.Equal(t, KindLeftOnly, chunks[0].Kind)
	require.Equal(t, KindRightOnly, chunks[1].Kind)
}

func TestBuildChunks_SameSideEditsCoalesce(t *testing.T) {
	// Two left-side edits on adjacent lines fold into one chunk whose left
	// ranges union both contributions.
	base := "a\nb\nc\nd\n"
	left := "A\nB\nc\nd\n"
	right := base

	chunks := BuildChunks(base, left, right)
	require.Len(t, chunks, 1)

	c := chunks[0]
	require.Equal(t, KindLeftOnly, c.Kind)
	require.Equal(t, LineRange{Start: 0, End: 1}, c.BaseRange)
	require.Equal(t, LineRange{Start: 0, End: 1}, *c.LeftBaseRange)
}

func TestBuildChunks_ConflictInvariant(t *testing.T) {
	// For every chunk of a few inputs: conflicts have overlapping side
	// footprints, everything else has disjoint or absent footprints.
	cases := []struct {
		base, left, right string
	}{
		{"alpha\nbravo\ncharlie\n", "alpha\nbravo-left\ncharlie\n", "alpha\nbravo-right\ncharlie\n"},
		{"one\ntwo\nthree\nfour\n", "one\nTWO\nthree\nfour\n", "one\ntwo\nTHREE\nfour\n"},
		{"a\nb\nc\nd\ne\n", "a\nB\nc\nd\nE\n", "a\nb\nC\nd\ne\n"},
		{"x\ny\nz\n", "x\ny\nz\nw\n", "x\ny\nz\nv\n"},
		{"", "left\n", "right\n"},
	}

	for _, tc := range cases {
		for _, c := range BuildChunks(tc.base, tc.left, tc.right) {
			if c.Kind == KindConflict {
				require.NotNil(t, c.LeftBaseRange, "%s: conflict without left footprint", c.ID)
				require.NotNil(t, c.RightBaseRange, "%s: conflict without right footprint", c.ID)
				require.True(t, c.LeftBaseRange.Overlaps(*c.RightBaseRange), "%s: conflict without overlap", c.ID)
			} else if c.LeftBaseRange != nil && c.RightBaseRange != nil {
				require.False(t, c.LeftBaseRange.Overlaps(*c.RightBaseRange), "%s: overlap without conflict", c.ID)
			}
		}
	}
}

func TestBuildChunks_OrderedAndNonOverlapping(t *testing.T) {
	base := "a\nb\nc\nd\ne\nf\ng\nh\n"
	left := "A\nb\nc\nD\ne\nf\ng\nh\n"
	right := "a\nb\nC\nd\ne\nf\nG\nh\n"

	chunks := BuildChunks(base, left, right)
	require.NotEmpty(t, chunks)

	for i := 1; i < len(chunks); i++ {
		prev, cur := chunks[i-1], chunks[i]
		require.Less(t, prev.BaseRange.End, cur.BaseRange.Start, "chunk base ranges must not overlap")
		require.Less(t, prev.BasePos.To, cur.BasePos.From+1, "chunk base positions must be ordered")
	}
}

func TestBuildChunks_InsertionAnchorsToPrecedingLine(t *testing.T) {
	// A pure insertion has an empty base span on a line boundary; it must
	// attach to the line before the boundary, not the one after.
	base := "a\nb\n"
	left := "a\nz\nb\n"
	right := base

	chunks := BuildChunks(base, left, right)
	require.Len(t, chunks, 1)

	c := chunks[0]
	require.Equal(t, KindLeftOnly, c.Kind)
	require.Equal(t, LineRange{Start: 0, End: 0}, c.BaseRange)
	require.Equal(t, PosRange{From: 2, To: 2}, *c.BasePos)
	require.Equal(t, "z\n", left[c.LeftPos.From:c.LeftPos.To])
}
