package merge

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/trimerge/trimerge/internal/textpos"
)

// Summary renders one line per chunk: id, kind, base line span, and the line
// span of each contributing side. Line numbers are shown 1-based. If color, the
// kind column carries ANSI color markers (conflicts red).
func Summary(chunks []Chunk, color bool) string {
	const (
		reset  = "\x1b[0m"
		red    = "\x1b[31m"
		green  = "\x1b[32m"
		cyan   = "\x1b[36m"
		yellow = "\x1b[33m"
	)

	colorize := func(s, code string) string {
		if !color {
			return s
		}
		return code + s + reset
	}

	kindColor := func(k Kind) string {
		switch k {
		case KindConflict:
			return red
		case KindBoth:
			return yellow
		case KindLeftOnly:
			return green
		default:
			return cyan
		}
	}

	var out []string
	for _, c := range chunks {
		line := fmt.Sprintf("%-10s %s base %s", c.ID, colorize(fmt.Sprintf("%-10s", c.Kind), kindColor(c.Kind)), lineSpan(c.BaseRange))
		if c.LeftRange != nil {
			line += fmt.Sprintf("  left %s", lineSpan(*c.LeftRange))
		}
		if c.RightRange != nil {
			line += fmt.Sprintf("  right %s", lineSpan(*c.RightRange))
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// lineSpan formats an inclusive 0-based line range as 1-based "3" or "3-5".
func lineSpan(r LineRange) string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start+1)
	}
	return fmt.Sprintf("%d-%d", r.Start+1, r.End+1)
}

// RenderSideBySide renders each chunk's left, base, and right lines as three
// aligned columns, one chunk per block. width is the total output width; each
// pane gets an equal share and long lines are truncated to fit. Pane cells are
// padded by display width, so wide (CJK) characters keep the columns aligned.
func RenderSideBySide(base, left, right string, chunks []Chunk, width int) string {
	if width < 30 {
		width = 30
	}
	paneW := (width - 6) / 3 // two " | " separators

	baseIdx := textpos.Build(base)
	leftIdx := textpos.Build(left)
	rightIdx := textpos.Build(right)

	cell := func(s string) string {
		s = runewidth.Truncate(s, paneW, "…")
		return runewidth.FillRight(s, paneW)
	}

	var out []string
	for _, c := range chunks {
		out = append(out, fmt.Sprintf("%s (%s) base %s", c.ID, c.Kind, lineSpan(c.BaseRange)))

		leftLines := paneLines(leftIdx, left, c.LeftRange)
		baseLines := paneLines(baseIdx, base, &c.BaseRange)
		rightLines := paneLines(rightIdx, right, c.RightRange)

		rows := len(baseLines)
		if len(leftLines) > rows {
			rows = len(leftLines)
		}
		if len(rightLines) > rows {
			rows = len(rightLines)
		}
		for i := 0; i < rows; i++ {
			out = append(out, cell(lineOrEmpty(leftLines, i))+" | "+cell(lineOrEmpty(baseLines, i))+" | "+cell(lineOrEmpty(rightLines, i)))
		}
	}
	return strings.Join(out, "\n")
}

// paneLines returns the lines of r in text, without trailing newlines. A nil
// range means the side never contributed and yields no lines.
func paneLines(idx textpos.Index, text string, r *LineRange) []string {
	if r == nil {
		return nil
	}
	span := idx.PosOfLines(*r)
	slice := strings.TrimSuffix(text[span.From:span.To], "\n")
	if slice == "" {
		return []string{""}
	}
	return strings.Split(slice, "\n")
}

func lineOrEmpty(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
