package merge

import (
	"fmt"
	"sort"
)

// mergeTolerance is the adjacency threshold of the sweep: a change continues
// the open chunk when its base start is within this many lines past the chunk's
// base end. Keeping it at 1 prevents pathological fragmentation from adjacent
// single-line edits on opposite sides.
const mergeTolerance = 1

// BuildChunks computes the three-way chunk list for base/left/right. Chunks are
// ordered by base position, never overlap in base-line space, and are
// recomputed from scratch on every call (no state survives between calls).
// Identical inputs produce an empty list.
func BuildChunks(base, left, right string) []Chunk {
	accums := sweep(collectChanges(base, left, right))
	if len(accums) == 0 {
		return nil
	}
	chunks := make([]Chunk, len(accums))
	for i, a := range accums {
		chunks[i] = a.chunk
	}
	return chunks
}

// collectChanges gathers both sides' edit spans and sorts them by
// (BaseRange.Start, BaseRange.End) ascending. This total order is what lets a
// single left-to-right sweep merge overlapping and adjacent spans without ever
// revisiting an earlier chunk.
func collectChanges(base, left, right string) []SideChange {
	changes := append(sideChanges(base, left, SideLeft), sideChanges(base, right, SideRight)...)
	sort.SliceStable(changes, func(i, j int) bool {
		a, b := changes[i].BaseRange, changes[j].BaseRange
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End < b.End
	})
	return changes
}

// chunkAccum pairs a finalized chunk with the side changes folded into it. The
// changes are kept (in sweep order) for consumers that need to replay a
// region's edits, like the auto-merger.
type chunkAccum struct {
	chunk   Chunk
	changes []SideChange
}

// sweep runs the sort-then-sweep pass: a single mutable accumulator walks the
// ordered changes, folding each one into the open chunk when it touches or is
// within mergeTolerance lines of it, and finalizing otherwise.
func sweep(changes []SideChange) []chunkAccum {
	var out []chunkAccum
	var cur *chunkAccum

	finalize := func() {
		if cur == nil {
			return
		}
		cur.chunk.Kind = classify(cur.chunk)
		cur.chunk.ID = fmt.Sprintf("chunk-%d", len(out))
		out = append(out, *cur)
		cur = nil
	}

	for _, ch := range changes {
		if cur != nil && ch.BaseRange.Start <= cur.chunk.BaseRange.End+mergeTolerance {
			fold(cur, ch)
			continue
		}
		finalize()
		cur = seed(ch)
	}
	finalize()

	return out
}

// seed opens a chunk accumulator from the first change of a new region. Only
// the contributing side's fields are set; the other side stays nil.
func seed(ch SideChange) *chunkAccum {
	bp := ch.BasePos
	a := &chunkAccum{
		chunk: Chunk{
			BaseRange: ch.BaseRange,
			BasePos:   &bp,
			Action:    ActionKeepBase,
		},
	}
	foldSide(&a.chunk, ch)
	a.changes = append(a.changes, ch)
	return a
}

// fold unions ch into the open chunk.
func fold(a *chunkAccum, ch SideChange) {
	a.chunk.BaseRange = a.chunk.BaseRange.Union(ch.BaseRange)
	*a.chunk.BasePos = a.chunk.BasePos.Union(ch.BasePos)
	foldSide(&a.chunk, ch)
	a.changes = append(a.changes, ch)
}

// foldSide merges ch into the matching side's fields: the first contribution on
// a side adopts the change's ranges, later contributions union with them.
func foldSide(c *Chunk, ch SideChange) {
	switch ch.Side {
	case SideLeft:
		c.LeftRange = unionLine(c.LeftRange, ch.OtherRange)
		c.LeftBaseRange = unionLine(c.LeftBaseRange, ch.BaseRange)
		c.LeftPos = unionPos(c.LeftPos, ch.OtherPos)
	case SideRight:
		c.RightRange = unionLine(c.RightRange, ch.OtherRange)
		c.RightBaseRange = unionLine(c.RightBaseRange, ch.BaseRange)
		c.RightPos = unionPos(c.RightPos, ch.OtherPos)
	}
}

// classify decides a finalized chunk's kind: a conflict requires both sides'
// base footprints to share at least one base line.
func classify(c Chunk) Kind {
	switch {
	case c.LeftBaseRange != nil && c.RightBaseRange != nil:
		if c.LeftBaseRange.Overlaps(*c.RightBaseRange) {
			return KindConflict
		}
		return KindBoth
	case c.LeftBaseRange != nil:
		return KindLeftOnly
	default:
		return KindRightOnly
	}
}

func unionLine(r *LineRange, o LineRange) *LineRange {
	if r == nil {
		adopted := o
		return &adopted
	}
	u := r.Union(o)
	return &u
}

func unionPos(r *PosRange, o PosRange) *PosRange {
	if r == nil {
		adopted := o
		return &adopted
	}
	u := r.Union(o)
	return &u
}
