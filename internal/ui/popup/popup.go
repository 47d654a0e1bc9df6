// Package popup frames modal content and composes it over the main view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/vidpeek/internal/ui/styles"
)

// Frame wraps content in a rounded border, capped to the screen width.
func Frame(content string, screenW int) string {
	width := min(maxLineWidth(content)+4, max(screenW-4, 8))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(0, 1).
		Width(width - 2).
		Render(content)
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

// Center pads box so that it sits in the middle of the screen.
func Center(box string, screenW, screenH int) string {
	lines := strings.Split(box, "\n")
	top := max((screenH-len(lines))/2, 0)
	left := max((screenW-maxLineWidth(box))/2, 0)

	var b strings.Builder
	for range top {
		b.WriteByte('\n')
	}
	pad := strings.Repeat(" ", left)
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pad)
		b.WriteString(line)
	}
	return b.String()
}

// Compose draws the non-blank part of every overlay line over base. It is
// ANSI aware: styles of both views are kept.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			continue
		}
		start := len(plain) - len(strings.TrimLeft(plain, " "))
		end := ansi.StringWidth(strings.TrimRight(plain, " "))

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}
		composed := ansi.Cut(under, 0, start) + ansi.Cut(line, start, end)
		if end < width {
			composed += ansi.Cut(under, end, width)
		}
		baseLines[i] = composed
	}
	return strings.Join(baseLines, "\n")
}
