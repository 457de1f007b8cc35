package merge

import (
	"github.com/trimerge/trimerge/internal/diff"
	"github.com/trimerge/trimerge/internal/textpos"
)

// sideChanges diffs the base against one side and projects every edit span to
// line ranges through both snapshots' indexes, tagging the side. This is a pure
// projection step: no merging or classification happens here. Identical texts
// yield nil. Results are ordered by base start offset ascending.
func sideChanges(baseText, otherText string, side Side) []SideChange {
	spans := diff.DiffText(baseText, otherText).EditSpans()
	if len(spans) == 0 {
		return nil
	}

	baseIdx := textpos.Build(baseText)
	otherIdx := textpos.Build(otherText)

	changes := make([]SideChange, 0, len(spans))
	for _, sp := range spans {
		changes = append(changes, SideChange{
			Side:       side,
			BaseRange:  baseIdx.LineRangeOf(sp.OldFrom, sp.OldTo),
			OtherRange: otherIdx.LineRangeOf(sp.NewFrom, sp.NewTo),
			BasePos:    PosRange{From: sp.OldFrom, To: sp.OldTo},
			OtherPos:   PosRange{From: sp.NewFrom, To: sp.NewTo},
		})
	}
	return changes
}
