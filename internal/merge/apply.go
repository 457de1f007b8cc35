package merge

// Apply resolves one chunk against the base and returns the next base text. It
// is pure: no input is mutated, and the chunk keeps describing the
// pre-resolution base.
//
// ActionKeepBase and ActionManual return the base unchanged. ActionApplyLeft
// splices left's bytes for this chunk (empty when left never contributed) over
// the chunk's base span; ActionApplyRight is symmetric. Only bytes inside
// c.BasePos change; everything outside is preserved verbatim, including
// adjacent unmerged chunks.
//
// A chunk with no base position data degrades to a no-op rather than failing:
// this function sits on an interactive edit path and must not panic on
// malformed input.
func Apply(base, left, right string, c Chunk, action Action) string {
	switch action {
	case ActionApplyLeft:
		return splice(base, c.BasePos, left, c.LeftPos)
	case ActionApplyRight:
		return splice(base, c.BasePos, right, c.RightPos)
	default: // ActionKeepBase, ActionManual
		return base
	}
}

// splice replaces base[basePos] with other[otherPos]. Offsets clamp to the
// snapshot they index.
func splice(base string, basePos *PosRange, other string, otherPos *PosRange) string {
	if basePos == nil {
		return base
	}
	dst := clampPos(*basePos, len(base))
	repl := ""
	if otherPos != nil {
		src := clampPos(*otherPos, len(other))
		repl = other[src.From:src.To]
	}
	return base[:dst.From] + repl + base[dst.To:]
}

// clampPos forces r into [0, n] with From <= To.
func clampPos(r PosRange, n int) PosRange {
	if r.From < 0 {
		r.From = 0
	}
	if r.From > n {
		r.From = n
	}
	if r.To < r.From {
		r.To = r.From
	}
	if r.To > n {
		r.To = n
	}
	return r
}
