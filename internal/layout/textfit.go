package layout

import (
	"strings"

	"github.com/tiMaxal/cardhatch/pkg/models"
)

// Ellipsis marks a truncated line.
const Ellipsis = "..."

// FontMetrics measures text for a font the caller has access to. The core
// never touches a font backend directly.
type FontMetrics interface {
	StringWidth(s string, font models.FontSpec) float64
	LineHeight(font models.FontSpec) float64
}

// FitText wraps text into a cell interior of width×height points. Hard
// breaks (CR, LF, CRLF) are honored as paragraph boundaries; within a
// paragraph, words wrap greedily so every line measures at most width.
// A single word wider than the cell gets its own line, unbroken.
//
// When the wrapped lines exceed the cell's line budget the block has
// overflowed: with truncate the result is cut to the budget and the last
// line ends in an ellipsis that still fits; without truncate all lines are
// returned untouched so the caller can report the failure. Overflowed is
// set in both cases.
func FitText(text string, font models.FontSpec, metrics FontMetrics, width, height float64, truncate bool) models.FittedText {
	lines := wrapParagraphs(normalizeBreaks(text), font, metrics, width)

	maxLines := int(height / metrics.LineHeight(font))
	if len(lines) <= maxLines {
		return models.FittedText{Lines: lines}
	}

	if !truncate {
		return models.FittedText{Lines: lines, Overflowed: true}
	}

	lines = lines[:maxLines]
	if len(lines) > 0 {
		lines[len(lines)-1] = truncateToWidth(lines[len(lines)-1], font, metrics, width)
	}
	return models.FittedText{Lines: lines, Overflowed: true}
}

func normalizeBreaks(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func wrapParagraphs(text string, font models.FontSpec, metrics FontMetrics, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapWords(strings.Fields(para), font, metrics, width)...)
	}
	return lines
}

func wrapWords(words []string, font models.FontSpec, metrics FontMetrics, width float64) []string {
	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if metrics.StringWidth(candidate, font) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		// An overlong word stands alone; mid-word hyphenation is not done.
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// truncateToWidth trims trailing runes until line+ellipsis measures within
// width. Degenerate widths collapse to the bare ellipsis.
func truncateToWidth(line string, font models.FontSpec, metrics FontMetrics, width float64) string {
	runes := []rune(line)
	for len(runes) > 0 {
		candidate := strings.TrimRight(string(runes), " ") + Ellipsis
		if metrics.StringWidth(candidate, font) <= width {
			return candidate
		}
		runes = runes[:len(runes)-1]
	}
	return Ellipsis
}
