// Package textpos maps byte offsets in a text snapshot to 0-based line numbers
// and back. An Index is built once per snapshot and answers lookups by binary
// search; out-of-bounds offsets and line numbers clamp to valid values rather
// than producing errors.
package textpos

import "sort"

// LineRange is an inclusive range of 0-based line numbers within one specific
// snapshot's numbering (never mixed across snapshots).
//
// Invariant: Start <= End.
type LineRange struct {
	Start int
	End   int
}

// Overlaps reports whether r and o share at least one line.
func (r LineRange) Overlaps(o LineRange) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// Union returns the smallest range covering both r and o.
func (r LineRange) Union(o LineRange) LineRange {
	u := r
	if o.Start < u.Start {
		u.Start = o.Start
	}
	if o.End > u.End {
		u.End = o.End
	}
	return u
}

// PosRange is a half-open range [From, To) of byte offsets within one specific
// snapshot.
//
// Invariant: 0 <= From <= To <= len(snapshot).
type PosRange struct {
	From int
	To   int
}

// Union returns the smallest range covering both r and o.
func (r PosRange) Union(o PosRange) PosRange {
	u := r
	if o.From < u.From {
		u.From = o.From
	}
	if o.To > u.To {
		u.To = o.To
	}
	return u
}

// Index is an immutable table of line-start offsets for one text snapshot.
// Line 0 starts at offset 0; each subsequent entry is one past a newline. A
// trailing newline does not open an extra empty line, matching text file
// conventions.
type Index struct {
	text   string
	starts []int
}

// Build scans text once and records every line start. Empty text yields a
// single empty line.
func Build(text string) Index {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' && i+1 < len(text) {
			starts = append(starts, i+1)
		}
	}
	return Index{text: text, starts: starts}
}

// LineCount returns the number of lines in the snapshot.
func (x Index) LineCount() int {
	return len(x.starts)
}

// LineAt returns the 0-based line containing offset. Offsets at or beyond the
// end of text map to the last line; negative offsets map to line 0.
func (x Index) LineAt(offset int) int {
	if offset <= 0 {
		return 0
	}
	i := sort.Search(len(x.starts), func(i int) bool { return x.starts[i] > offset })
	return i - 1
}

// LineRangeOf converts the half-open byte span [from, to) into an inclusive
// line range. A zero-length span sitting exactly on a line boundary refers to
// the line preceding the boundary, so empty insertions anchor to the line they
// follow.
func (x Index) LineRangeOf(from, to int) LineRange {
	if to < from {
		to = from
	}
	if from == to {
		line := x.LineAt(from)
		if line > 0 && x.isLineStart(from) {
			line--
		}
		return LineRange{Start: line, End: line}
	}
	return LineRange{Start: x.LineAt(from), End: x.LineAt(to - 1)}
}

// PosOfLines returns the byte span covering lines r.Start through r.End,
// including the trailing newline of r.End when present. Line numbers clamp to
// the index bounds.
func (x Index) PosOfLines(r LineRange) PosRange {
	last := len(x.starts) - 1
	s := r.Start
	if s < 0 {
		s = 0
	}
	if s > last {
		s = last
	}
	e := r.End
	if e < s {
		e = s
	}
	if e > last {
		e = last
	}
	to := len(x.text)
	if e < last {
		to = x.starts[e+1]
	}
	return PosRange{From: x.starts[s], To: to}
}

func (x Index) isLineStart(offset int) bool {
	i := sort.SearchInts(x.starts, offset)
	return i < len(x.starts) && x.starts[i] == offset
}
