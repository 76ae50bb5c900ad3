// Package textwrap provides width-aware greedy line wrapping.
//
// Widths are measured with go-runewidth so East Asian wide characters
// count as two columns, matching what the terminal renders.
package textwrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap rewraps text to the given width. Embedded newlines are hard
// breaks: each physical line is wrapped independently. Words longer than
// the width are placed on their own line rather than split.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	// Preserve leading indentation on every wrapped piece.
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var wrapped []string
	current := indent + words[0]
	for _, word := range words[1:] {
		if runewidth.StringWidth(current)+1+runewidth.StringWidth(word) > width {
			wrapped = append(wrapped, current)
			current = indent + word
			continue
		}
		current += " " + word
	}
	return append(wrapped, current)
}
