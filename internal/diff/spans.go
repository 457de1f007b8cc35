package diff

// EditSpan is one changed region reported by the diff, as byte offsets: the
// half-open span [OldFrom, OldTo) in the old text was replaced by [NewFrom,
// NewTo) in the new text. Pure inserts have OldFrom == OldTo; pure deletes have
// NewFrom == NewTo.
type EditSpan struct {
	OldFrom int
	OldTo   int
	NewFrom int
	NewTo   int
}

// EditSpans projects d's non-equal hunks to byte-offset spans, ordered by
// OldFrom ascending. Identical inputs produce no spans.
//
// Invariant: replacing old[OldFrom:OldTo] with new[NewFrom:NewTo] for every
// span (back to front) reconstructs NewText from OldText.
func (d Diff) EditSpans() []EditSpan {
	var spans []EditSpan
	oldOff, newOff := 0, 0
	for _, h := range d.Hunks {
		if h.Op != OpEqual {
			spans = append(spans, EditSpan{
				OldFrom: oldOff,
				OldTo:   oldOff + len(h.OldText),
				NewFrom: newOff,
				NewTo:   newOff + len(h.NewText),
			})
		}
		oldOff += len(h.OldText)
		newOff += len(h.NewText)
	}
	return spans
}
