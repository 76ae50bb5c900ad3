package herald

import (
	"strings"

	"github.com/halverde/herald/internal/bracket"
	"github.com/halverde/herald/internal/textwrap"
)

// messageStop is one indentation stop.
const messageStop = "    "

// body composes the message text from the unnamed arguments and fields,
// without culprit, header, wrapping, or terminator.
//
// Without a template the arguments are stringified and joined with sep.
// With templates, the first candidate whose referenced values are all
// available is filled; when none qualify the last candidate is filled
// leniently.
func (m *Message) body() (string, error) {
	if len(m.templates) == 0 {
		parts := make([]string, len(m.Args))
		for i, arg := range m.Args {
			parts[i] = renderValue(arg)
		}
		return strings.Join(parts, m.sepOrDefault()), nil
	}

	remove := m.remove
	if remove == nil {
		remove = isFalsy
	}
	for _, candidate := range m.templates {
		usable, err := m.usable(candidate, remove)
		if err != nil {
			return "", err
		}
		if usable {
			return bracket.Fill(candidate, m.Args, m.Fields, false)
		}
	}
	// No candidate qualified; fall back to the last one, filled leniently.
	last := m.templates[len(m.templates)-1]
	return bracket.Fill(last, m.Args, m.Fields, true)
}

// usable reports whether every value the candidate references resolves,
// subscripts included, and no named field is excluded by the removal
// policy. Positional arguments are always available once present. A
// candidate never partially fills: one unavailable reference disqualifies
// it.
func (m *Message) usable(candidate string, remove func(any) bool) (bool, error) {
	refs, err := bracket.Refs(candidate)
	if err != nil {
		return false, err
	}
	for _, ref := range refs {
		val, ok := bracket.Resolve(ref, m.Args, m.Fields)
		if !ok {
			return false, nil
		}
		if !ref.Positional && remove(val) {
			return false, nil
		}
	}
	return true, nil
}

// codicilLines renders the codicil entries, each indented by the given
// number of stops.
func (m *Message) codicilLines(stops int) []string {
	lines := make([]string, 0, len(m.codicil))
	for _, entry := range m.codicil {
		lines = append(lines, Indent(renderValue(entry), messageStop, 0, stops))
	}
	return lines
}

// assemble builds the final text of a message from its composed body, the
// header, and the rendered culprit, applying the layout rules:
//
//   - short culprit, single-line body: "header culprit: body"
//   - multi-line body, or header+culprit over 40 columns: the prefix ends
//     the line and the body follows, indented one stop
//   - continuations drop the header and indent the body instead
func assemble(header, culprit, body string, wrap int) string {
	prefix := header
	if culprit != "" {
		prefix += culprit + ": "
	}
	var text string
	onOwnLine := strings.Contains(body, "\n") ||
		(culprit != "" && len(header)+len(culprit) > 40)
	if prefix != "" && onOwnLine {
		text = strings.TrimRight(prefix, " ") + "\n" + Indent(body, messageStop, 0, 1)
	} else {
		text = prefix + body
	}
	if wrap > 0 {
		text = textwrap.Wrap(text, wrap)
	}
	return text
}
