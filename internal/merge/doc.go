// Package merge implements a three-way line-level text merge engine.
//
// Given a common ancestor ("base") and two independently edited derivatives
// ("left" and "right"), BuildChunks computes the line-level edits each side made
// relative to the base and coalesces them into an ordered list of
// non-overlapping change regions (Chunks). Each chunk is classified by which
// sides contributed and whether their base-line footprints collide:
//   - KindLeftOnly / KindRightOnly: a single side edited this region.
//   - KindBoth: both sides edited, on disjoint base lines.
//   - KindConflict: both sides edited overlapping base lines.
//
// Apply resolves one chunk by splicing the chosen side's bytes over the chunk's
// base span, returning a new base text. The engine is stateless: chunks are
// recomputed from scratch on every BuildChunks call, their ranges describe the
// pre-resolution base, and after a splice the caller must rebuild before
// trusting any remaining chunk's positions (resolving one chunk shifts the
// offsets of everything after it).
//
// Errors: there are none. The engine sits on an interactive edit path, so it
// degrades silently instead of failing: malformed or missing position data
// makes Apply return the base unchanged, out-of-bounds offsets clamp, and
// identical inputs produce an empty chunk list.
//
// The line-level diff itself is a collaborator (package diff, backed by
// sergi/go-diff); this package only projects, merges, and classifies its edit
// spans.
package merge
