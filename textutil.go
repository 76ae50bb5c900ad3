package herald

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Indent prepends leader-based indentation to every line of text. Each
// line receives stops copies of leader; the first line receives
// first+stops copies (first may be negative to outdent it). Trailing
// whitespace on resulting lines is removed so indented blank lines stay
// empty.
func Indent(text, leader string, first, stops int) string {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		n := stops
		if i == 0 {
			n = first + stops
		}
		if n < 0 {
			n = 0
		}
		out[i] = strings.TrimRight(strings.Repeat(leader, n)+line, " \t")
	}
	return strings.Join(out, "\n")
}

// Conjoin joins the items like strings.Join, except that conj joins the
// final two items. Conjoin([]string{"a", "b", "c"}, " and ", ", ") yields
// "a, b and c".
func Conjoin(items []string, conj, sep string) string {
	if len(items) > 1 && conj != "" {
		items = append(append([]string{}, items[:len(items)-2]...),
			items[len(items)-2]+conj+items[len(items)-1])
	}
	return strings.Join(items, sep)
}

// Plural returns singular when count is 1 and plural otherwise. An empty
// plural is formed by appending "s" to singular.
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	if plural == "" {
		return singular + "s"
	}
	return plural
}

// FullStop appends a period unless the text already ends in terminating
// punctuation.
func FullStop(text string) string {
	if text == "" {
		return "."
	}
	switch text[len(text)-1] {
	case '.', '?', '!':
		return text
	}
	return text + "."
}

// Cull drops the values the policy judges unavailable. The policy takes
// the same forms as Remove; nil drops falsy values.
func Cull(items []any, policy any) []any {
	remove := removePolicy(policy)
	kept := make([]any, 0, len(items))
	for _, item := range items {
		if !remove(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

// Columns lays the items out in as many columns as fit within pagewidth,
// reading down the columns. Every line starts with leader. The result ends
// in a newline.
func Columns(items []string, pagewidth int, leader string) string {
	if len(items) == 0 {
		return ""
	}
	if pagewidth <= 0 {
		pagewidth = 79
	}
	widest := 0
	for _, item := range items {
		if w := runewidth.StringWidth(item); w > widest {
			widest = w
		}
	}
	colWidth := widest + 2
	cols := (pagewidth - len(leader)) / colWidth
	if cols < 1 {
		cols = 1
	}
	rows := (len(items) + cols - 1) / cols

	var b strings.Builder
	for r := 0; r < rows; r++ {
		line := leader
		for c := 0; c < cols; c++ {
			i := r + rows*c
			if i >= len(items) {
				break
			}
			line += runewidth.FillRight(items[i], colWidth)
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// cullStrings drops empty strings from the list.
func cullStrings(items []string) []string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			kept = append(kept, item)
		}
	}
	return kept
}

// renderValue converts an argument to its message text. Strings pass
// through, errors use their Error method, everything else is formatted
// with fmt.
func renderValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// isFalsy reports whether a value is "unavailable" under the default
// removal policy: nil, false, zero numbers, empty strings, and empty
// collections.
func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case bool:
		return !t
	case string:
		return t == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
