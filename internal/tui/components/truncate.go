package components

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncateMiddle shortens s to width display cells by replacing its middle
// with "…". It handles wide characters correctly using runewidth.
func truncateMiddle(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}

	runes := []rune(s)
	budget := width - 1
	headBudget := (budget + 1) / 2
	tailBudget := budget - headBudget

	var head strings.Builder
	w := 0
	for _, r := range runes {
		rw := runewidth.RuneWidth(r)
		if w+rw > headBudget {
			break
		}
		head.WriteRune(r)
		w += rw
	}
	// Give what the head could not use to the tail.
	tailBudget += headBudget - w

	tail := make([]rune, 0, tailBudget)
	w = 0
	for i := len(runes) - 1; i >= 0; i-- {
		rw := runewidth.RuneWidth(runes[i])
		if w+rw > tailBudget {
			break
		}
		tail = append(tail, runes[i])
		w += rw
	}
	for i, j := 0, len(tail)-1; i < j; i, j = i+1, j-1 {
		tail[i], tail[j] = tail[j], tail[i]
	}

	return head.String() + "…" + string(tail)
}

// center pads s with spaces to exactly width display cells.
func center(s string, width int) string {
	s = truncateMiddle(s, width)
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// cutColumns returns display columns [from, to) of s. A wide character cut
// in half is replaced by spaces so the result is exactly to-from cells wide.
func cutColumns(s string, from, to int) string {
	if to <= from {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		end := col + rw
		switch {
		case end <= from || col >= to:
		case col >= from && end <= to:
			b.WriteRune(r)
		default:
			lo, hi := max(col, from), min(end, to)
			b.WriteString(strings.Repeat(" ", hi-lo))
		}
		col = end
	}
	if col < to {
		b.WriteString(strings.Repeat(" ", to-max(col, from)))
	}
	return b.String()
}
