package merge

import "strings"

// Conflict marker lines, diff3 style.
const (
	markerOurs   = "<<<<<<< left"
	markerBase   = "||||||| base"
	markerSep    = "======="
	markerTheirs = ">>>>>>> right"
)

// Merge combines left's and right's edits into a single text in one pass over
// the chunk list. Non-conflicting chunks are resolved by replaying the
// contributing side's edit spans over the chunk's base slice (for KindBoth the
// two sides' spans are disjoint in base space, so both replay cleanly).
// Conflicting chunks are never resolved automatically: they are emitted with
// diff3-style markers showing the left, base, and right versions of the region.
//
// It returns the merged text and the number of conflict regions in it. A zero
// conflict count means the merge is clean.
func Merge(base, left, right string) (string, int) {
	accums := sweep(collectChanges(base, left, right))
	if len(accums) == 0 {
		return base, 0
	}

	var b strings.Builder
	pos := 0
	conflicts := 0

	for _, a := range accums {
		c := a.chunk
		if c.BasePos == nil {
			continue
		}
		bp := clampPos(*c.BasePos, len(base))
		b.WriteString(base[pos:bp.From])
		baseSlice := base[bp.From:bp.To]

		if c.Kind == KindConflict {
			conflicts++
			ours := replay(baseSlice, bp.From, a.changes, left, right, SideLeft)
			theirs := replay(baseSlice, bp.From, a.changes, left, right, SideRight)
			writeConflict(&b, ours, baseSlice, theirs)
		} else {
			b.WriteString(replayAll(baseSlice, bp.From, a.changes, left, right))
		}
		pos = bp.To
	}
	b.WriteString(base[pos:])

	return b.String(), conflicts
}

// replay applies the chunk's changes from one side to the base slice starting
// at baseOff, producing that side's version of the region. Changes from a
// single side never overlap in base space, so splicing back to front is exact.
func replay(slice string, baseOff int, changes []SideChange, left, right string, side Side) string {
	for i := len(changes) - 1; i >= 0; i-- {
		ch := changes[i]
		if ch.Side != side {
			continue
		}
		slice = spliceAt(slice, baseOff, ch, left, right)
	}
	return slice
}

// replayAll applies every change of a non-conflicting chunk. The sides' base
// spans are disjoint here (otherwise the chunk would be a conflict), so the
// same back-to-front splice holds.
func replayAll(slice string, baseOff int, changes []SideChange, left, right string) string {
	for i := len(changes) - 1; i >= 0; i-- {
		slice = spliceAt(slice, baseOff, changes[i], left, right)
	}
	return slice
}

func spliceAt(slice string, baseOff int, ch SideChange, left, right string) string {
	other := left
	if ch.Side == SideRight {
		other = right
	}
	dst := clampPos(PosRange{From: ch.BasePos.From - baseOff, To: ch.BasePos.To - baseOff}, len(slice))
	src := clampPos(ch.OtherPos, len(other))
	return slice[:dst.From] + other[src.From:src.To] + slice[dst.To:]
}

// writeConflict emits one marked conflict region. Each section is newline
// terminated so the markers always sit on their own lines, even when a section
// ends the file without a trailing newline.
func writeConflict(b *strings.Builder, ours, baseSlice, theirs string) {
	b.WriteString(markerOurs + "\n")
	writeSection(b, ours)
	b.WriteString(markerBase + "\n")
	writeSection(b, baseSlice)
	b.WriteString(markerSep + "\n")
	writeSection(b, theirs)
	b.WriteString(markerTheirs + "\n")
}

func writeSection(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	b.WriteString(s)
	if !strings.HasSuffix(s, "\n") {
		b.WriteString("\n")
	}
}
