package merge

import (
	"github.com/trimerge/trimerge/internal/diff"
	"github.com/trimerge/trimerge/internal/textpos"
)

// AnchorChunks maps each chunk's base span onto the current line numbers of
// doc, an edited descendant of the base the chunks were built against. It is a
// consumer-facing helper for visual anchoring (keeping indicators attached to
// the right lines while the user types); it never mutates the chunks, and a
// caller that wants fresh chunk contents must still rebuild.
//
// Offsets are translated through the base-to-doc edit spans; an offset inside
// an edited region snaps to that region's boundaries in doc. A chunk without
// position data falls back to its base line range unchanged.
func AnchorChunks(chunks []Chunk, base, doc string) []LineRange {
	if len(chunks) == 0 {
		return nil
	}
	spans := diff.DiffText(base, doc).EditSpans()
	docIdx := textpos.Build(doc)

	out := make([]LineRange, 0, len(chunks))
	for _, c := range chunks {
		if c.BasePos == nil {
			out = append(out, c.BaseRange)
			continue
		}
		from := mapOffset(spans, c.BasePos.From, false)
		to := mapOffset(spans, c.BasePos.To, true)
		if to < from {
			to = from
		}
		out = append(out, docIdx.LineRangeOf(from, to))
	}
	return out
}

// mapOffset translates a base byte offset through the base-to-doc edit spans.
// An offset strictly inside an edited span snaps to the span's new start
// (toEnd=false) or new end (toEnd=true). Text inserted exactly at the offset
// shifts a start anchor but is not absorbed by an end anchor.
func mapOffset(spans []diff.EditSpan, off int, toEnd bool) int {
	delta := 0
	for _, sp := range spans {
		if off < sp.OldFrom || (toEnd && off == sp.OldFrom) {
			break
		}
		if off < sp.OldTo {
			if toEnd {
				return sp.NewTo
			}
			return sp.NewFrom
		}
		delta += (sp.NewTo - sp.NewFrom) - (sp.OldTo - sp.OldFrom)
	}
	return off + delta
}
