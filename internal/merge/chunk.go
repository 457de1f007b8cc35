package merge

import "github.com/trimerge/trimerge/internal/textpos"

// LineRange and PosRange alias the textpos types: every range in this package
// is a plain 0-based line or byte range into exactly one snapshot (base, left,
// or right), never mixed.
type (
	LineRange = textpos.LineRange
	PosRange  = textpos.PosRange
)

// Side identifies which derivative a change came from.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Kind classifies a chunk by which sides contributed and whether their base
// footprints collide.
type Kind int

const (
	KindLeftOnly Kind = iota
	KindRightOnly
	KindBoth
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindLeftOnly:
		return "left-only"
	case KindRightOnly:
		return "right-only"
	case KindBoth:
		return "both"
	case KindConflict:
		return "conflict"
	}
	return "unknown"
}

// Action is a caller-chosen resolution for one chunk. KeepBase and Manual are
// both no-ops at the text level; they differ only in caller-visible intent
// (Manual signals "the user will edit directly", KeepBase "explicitly
// ignored").
type Action int

const (
	ActionKeepBase Action = iota
	ActionApplyLeft
	ActionApplyRight
	ActionManual
)

func (a Action) String() string {
	switch a {
	case ActionKeepBase:
		return "keep-base"
	case ActionApplyLeft:
		return "apply-left"
	case ActionApplyRight:
		return "apply-right"
	case ActionManual:
		return "manual"
	}
	return "unknown"
}

// SideChange is one minimal edit span reported by the diff primitive between
// the base and one side, projected to line ranges of both snapshots. It is an
// intermediate value: BuildChunks folds SideChanges into Chunks.
type SideChange struct {
	Side       Side
	BaseRange  LineRange // lines touched in the base snapshot
	OtherRange LineRange // lines touched in the side snapshot
	BasePos    PosRange  // byte span in the base snapshot
	OtherPos   PosRange  // byte span in the side snapshot
}

// Chunk is one merged change region, the durable unit exposed to callers.
//
// BaseRange is the union of every folded SideChange's base range (contiguous or
// adjacent-merged; the merge tolerance is 1 line). LeftBaseRange and
// RightBaseRange record, independently, which base lines each side's edits
// touched; their overlap, not BaseRange, decides conflicts.
//
// Side fields are nil when that side never contributed; callers must nil-check
// before reading them.
//
// Ranges describe the pre-resolution base. Apply never mutates a chunk; after a
// resolution splice, rebuild chunks against the new base before trusting any
// positions.
type Chunk struct {
	ID string // "chunk-<n>" by creation order; valid within one computation only.

	BaseRange LineRange
	BasePos   *PosRange

	LeftRange     *LineRange
	LeftBaseRange *LineRange
	LeftPos       *PosRange

	RightRange     *LineRange
	RightBaseRange *LineRange
	RightPos       *PosRange

	Kind Kind

	// Action defaults to ActionKeepBase at creation and is mutated only by the
	// caller. The engine never assigns conflicts an automatic resolution.
	Action Action
}
