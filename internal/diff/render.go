package diff

import (
	"fmt"
	"strings"
)

// RenderUnifiedDiff returns a unified diff. If color, the diff will include ANSI color markers.
func (d Diff) RenderUnifiedDiff(color bool, fromFilename string, toFilename string, contextSize int) string {
	// Colors (ANSI). Applied only if color==true.
	const (
		reset    = "\x1b[0m"
		red      = "\x1b[31m"
		green    = "\x1b[32m"
		magenta  = "\x1b[35m"
		cyanBold = "\x1b[1;36m"
	)

	colorize := func(s, code string) string {
		if !color {
			return s
		}
		return code + s + reset
	}

	// Helper to count lines in a block of text using the diff's EOL.
	countLines := func(text string) int {
		if text == "" {
			return 0
		}
		return len(splitPreserveEOL(text, defaultEOL))
	}

	type outLine struct {
		tag  byte   // ' ', '+', '-'
		text string // line content without EOL
	}

	var out []string

	// File headers
	out = append(out, colorize("--- "+fromFilename, cyanBold))
	out = append(out, colorize("+++ "+toFilename, cyanBold))

	// Current 1-based line numbers in old and new files at the start of the next hunk.
	oldPos := 1
	newPos := 1

	i := 0
	for i < len(d.Hunks) {
		h := d.Hunks[i]
		if h.Op == OpEqual {
			// Advance positions over equal hunks; no output.
			n := countLines(h.OldText)
			oldPos += n
			newPos += n
			i++
			continue
		}

		// Start assembling one unified hunk covering one or more change hunks and
		// possibly small equal separators between them.
		var lines []outLine

		// Pre-context from previous equal hunk tail.
		preK := 0
		if i-1 >= 0 && d.Hunks[i-1].Op == OpEqual && contextSize > 0 {
			prevEqLines := splitPreserveEOL(d.Hunks[i-1].OldText, defaultEOL)
			if contextSize < len(prevEqLines) {
				preK = contextSize
			} else {
				preK = len(prevEqLines)
			}
			for _, ln := range prevEqLines[len(prevEqLines)-preK:] {
				core, _ := trimEOL(ln, defaultEOL)
				lines = append(lines, outLine{tag: ' ', text: core})
			}
		}

		// Record starting line numbers for header.
		oldStart := oldPos - preK
		if oldStart < 1 {
			oldStart = 1
		}
		newStart := newPos - preK
		if newStart < 1 {
			newStart = 1
		}

		// Helper to append a change hunk's lines and advance positions.
		appendChange := func(hk Hunk) {
			for _, ln := range splitPreserveEOL(hk.OldText, defaultEOL) {
				core, _ := trimEOL(ln, defaultEOL)
				lines = append(lines, outLine{tag: '-', text: core})
			}
			for _, ln := range splitPreserveEOL(hk.NewText, defaultEOL) {
				core, _ := trimEOL(ln, defaultEOL)
				lines = append(lines, outLine{tag: '+', text: core})
			}
			oldPos += countLines(hk.OldText)
			newPos += countLines(hk.NewText)
		}

		// Include the first change hunk at i.
		appendChange(h)

		// Possibly include bridging equals and subsequent change hunks if the
		// equal gap is small enough (<= 2*contextSize).
		j := i + 1
		for j < len(d.Hunks) {
			// If next is not equal, just append change and continue.
			if d.Hunks[j].Op != OpEqual {
				appendChange(d.Hunks[j])
				j++
				continue
			}
			// Next is equal. Decide whether to merge with following change.
			eqLines := splitPreserveEOL(d.Hunks[j].OldText, defaultEOL)
			if j+1 < len(d.Hunks) && d.Hunks[j+1].Op != OpEqual && len(eqLines) <= 2*contextSize {
				// Include entire equal as in-hunk context, then continue with next change.
				for _, ln := range eqLines {
					core, _ := trimEOL(ln, defaultEOL)
					lines = append(lines, outLine{tag: ' ', text: core})
				}
				oldPos += len(eqLines)
				newPos += len(eqLines)
				// Move to the change after this equal.
				j++
				appendChange(d.Hunks[j])
				j++
				continue
			}

			// Otherwise, include only post-context from the head of this equal and stop.
			postK := contextSize
			if postK > len(eqLines) {
				postK = len(eqLines)
			}
			for _, ln := range eqLines[:postK] {
				core, _ := trimEOL(ln, defaultEOL)
				lines = append(lines, outLine{tag: ' ', text: core})
			}
			oldPos += postK
			newPos += postK
			break
		}

		// Update i to continue after what we consumed. If we broke on an equal hunk (j points to it),
		// continue main loop from that equal hunk; otherwise from j.
		i = j

		// Compute header counts.
		oldCount := 0
		newCount := 0
		for _, ol := range lines {
			switch ol.tag {
			case ' ':
				oldCount++
				newCount++
			case '-':
				oldCount++
			case '+':
				newCount++
			}
		}

		// Emit hunk header and lines.
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", oldStart, oldCount, newStart, newCount)
		out = append(out, colorize(header, magenta))
		for _, ol := range lines {
			line := string(ol.tag) + ol.text
			switch ol.tag {
			case '+':
				out = append(out, colorize(line, green))
			case '-':
				out = append(out, colorize(line, red))
			default:
				out = append(out, line)
			}
		}
	}

	return strings.Join(out, "\n")
}
