// Package diff computes line-level diffs between an "old" and a "new" string.
//
// Representation: A Diff holds the complete OldText/NewText and an ordered slice of hunks that, when concatenated, reconstruct both sides. Each hunk has an Op:
//   - OpEqual: unchanged region (OldText == NewText)
//   - OpInsert: text present only in the new side (OldText == "")
//   - OpDelete: text present only in the old side (NewText == "")
//   - OpReplace: text changed on both sides
//
// Invariants:
//   - concat(hunks.OldText) == Diff.OldText
//   - concat(hunks.NewText) == Diff.NewText
//
// Granularity: This package diffs whole lines only. Intra-line (word or character) granularity is out of scope; consumers that need finer detail should post-process
// hunk text themselves. The exact grouping of changes into hunks is a policy choice of DiffText and may evolve; consumers should rely on the invariants above rather
// than any particular chunking strategy.
//
// Getting a diff: Use DiffText to compute a Diff:
//
//	d := diff.DiffText(oldText, newText)
//	fmt.Println(d.RenderUnifiedDiff(false, "old.txt", "new.txt", 3))
//
// Offsets: Diff.EditSpans projects the non-equal hunks to byte-offset spans ((OldFrom, OldTo, NewFrom, NewTo) tuples in ascending old-text order). This is the form
// consumed by the merge engine.
//
// Newlines: This package treats '\n' as the line separator. The last line may not end with '\n'; that fact is preserved in hunk text.
package diff
