package diff

import "fmt"

// validate checks the Diff invariants and returns an error on the first violation.
func (d Diff) validate() error {
	oldOff := 0
	newOff := 0
	for hi, h := range d.Hunks {
		switch h.Op {
		case OpEqual:
			if h.OldText != h.NewText {
				return fmt.Errorf("hunk[%d]: OpEqual requires OldText==NewText", hi)
			}
		case OpInsert:
			if h.OldText != "" || h.NewText == "" {
				return fmt.Errorf("hunk[%d]: OpInsert requires OldText==\"\" and NewText!=\"\"", hi)
			}
		case OpDelete:
			if h.OldText == "" || h.NewText != "" {
				return fmt.Errorf("hunk[%d]: OpDelete requires OldText!=\"\" and NewText==\"\"", hi)
			}
		case OpReplace:
			if h.OldText == "" || h.NewText == "" {
				return fmt.Errorf("hunk[%d]: OpReplace requires OldText!=\"\" and NewText!=\"\"", hi)
			}
		}

		if oldOff+len(h.OldText) > len(d.OldText) || d.OldText[oldOff:oldOff+len(h.OldText)] != h.OldText {
			return fmt.Errorf("hunk[%d]: OldText does not appear at offset %d of the original", hi, oldOff)
		}
		if newOff+len(h.NewText) > len(d.NewText) || d.NewText[newOff:newOff+len(h.NewText)] != h.NewText {
			return fmt.Errorf("hunk[%d]: NewText does not appear at offset %d of the revision", hi, newOff)
		}
		oldOff += len(h.OldText)
		newOff += len(h.NewText)
	}

	if oldOff != len(d.OldText) {
		return fmt.Errorf("diff: hunks do not reconstruct OldText")
	}
	if newOff != len(d.NewText) {
		return fmt.Errorf("diff: hunks do not reconstruct NewText")
	}
	return nil
}
