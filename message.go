package herald

import (
	"io"
	"reflect"
)

// defaultWrapWidth is used when wrapping is requested without a width.
const defaultWrapWidth = 70

// Option adjusts a single informant call or Err. Options are passed mixed
// into the argument list; any non-Option value is treated as message text.
type Option struct {
	apply func(*Message)
}

// Sep sets the string used to join the unnamed arguments (default " ").
func Sep(s string) Option {
	return Option{func(m *Message) { m.sep = &s }}
}

// End sets the message terminator (default "\n").
func End(s string) Option {
	return Option{func(m *Message) { m.end = &s }}
}

// Culprit attaches context labels (filenames, line numbers, keys) that are
// prefixed to the message. It overrides the culprit stack for this call.
func Culprit(parts ...any) Option {
	return Option{func(m *Message) {
		m.culprit = flattenCulprit(parts)
		m.culpritSet = true
	}}
}

// WithCodicil appends follow-up lines after the primary message.
func WithCodicil(lines ...any) Option {
	return Option{func(m *Message) { m.codicil = append(m.codicil, lines...) }}
}

// Template supplies one or more candidate templates. The first candidate
// whose referenced fields are all available is used; if none qualify the
// last is filled leniently.
func Template(candidates ...string) Option {
	return Option{func(m *Message) { m.templates = candidates }}
}

// Remove overrides the policy deciding which field values are
// "unavailable" during template selection. The policy may be a
// func(any) bool predicate, a slice of unacceptable literals, or a single
// literal. The default treats falsy values (nil, false, zero, empty) as
// unavailable.
func Remove(policy any) Option {
	return Option{func(m *Message) { m.remove = removePolicy(policy) }}
}

// Wrap enables rewrapping of the composed message to the given width.
// Wrap(0) requests the default width of 70.
func Wrap(width int) Option {
	return Option{func(m *Message) {
		if width <= 0 {
			width = defaultWrapWidth
		}
		m.wrap = width
	}}
}

// File redirects this call's output to the given writer, bypassing the
// stream policy.
func File(w io.Writer) Option {
	return Option{func(m *Message) { m.file = w }}
}

// Flush forces a flush of the destination stream after the write.
func Flush() Option {
	return Option{func(m *Message) { m.flush = true }}
}

// WithInformant binds an informant to an Err, selecting how the error is
// dispatched when reported. It has no effect on direct informant calls.
func WithInformant(inf *Informant) Option {
	return Option{func(m *Message) { m.informant = inf }}
}

// Urgency levels for desktop notifications.
type Urgency int

const (
	UrgencyNormal Urgency = iota
	UrgencyCritical
)

// WithUrgency overrides the urgency of the desktop notification produced
// by a notifying informant.
func WithUrgency(u Urgency) Option {
	return Option{func(m *Message) { m.urgency = &u }}
}

// Fields supplies named values for template substitution. Unknown names
// are also retrievable from an Err through Attr.
type Fields map[string]any

// Message is the ephemeral descriptor of a single informant call: the
// unnamed arguments, named fields, and per-call options.
type Message struct {
	Args   []any
	Fields Fields

	sep        *string
	end        *string
	templates  []string
	remove     func(any) bool
	wrap       int
	culprit    []any
	culpritSet bool
	codicil    []any
	file       io.Writer
	flush      bool
	informant  *Informant
	urgency    *Urgency
}

// newMessage separates options and fields from the message arguments.
func newMessage(args []any) *Message {
	m := &Message{}
	for _, arg := range args {
		switch t := arg.(type) {
		case Option:
			t.apply(m)
		case Fields:
			if m.Fields == nil {
				m.Fields = Fields{}
			}
			for k, v := range t {
				m.Fields[k] = v
			}
		default:
			m.Args = append(m.Args, arg)
		}
	}
	return m
}

// Sep and End accessors fall back to the defaults.
func (m *Message) sepOrDefault() string {
	if m.sep != nil {
		return *m.sep
	}
	return " "
}

func (m *Message) endOrDefault() string {
	if m.end != nil {
		return *m.end
	}
	return "\n"
}

// merge folds overrides into a copy of the message, used by Err.Reraise
// and Err.Report. Culprits prepend, codicils append, everything else
// replaces.
func (m *Message) merge(overrides *Message) *Message {
	merged := *m
	if len(overrides.Args) > 0 {
		merged.Args = append(append([]any{}, m.Args...), overrides.Args...)
	}
	if overrides.Fields != nil {
		merged.Fields = Fields{}
		for k, v := range m.Fields {
			merged.Fields[k] = v
		}
		for k, v := range overrides.Fields {
			merged.Fields[k] = v
		}
	}
	if overrides.sep != nil {
		merged.sep = overrides.sep
	}
	if overrides.end != nil {
		merged.end = overrides.end
	}
	if len(overrides.templates) > 0 {
		merged.templates = overrides.templates
	}
	if overrides.remove != nil {
		merged.remove = overrides.remove
	}
	if overrides.wrap != 0 {
		merged.wrap = overrides.wrap
	}
	if overrides.culpritSet {
		merged.culprit = append(append([]any{}, overrides.culprit...), m.culprit...)
		merged.culpritSet = true
	}
	if len(overrides.codicil) > 0 {
		merged.codicil = append(append([]any{}, m.codicil...), overrides.codicil...)
	}
	if overrides.file != nil {
		merged.file = overrides.file
	}
	if overrides.flush {
		merged.flush = true
	}
	if overrides.informant != nil {
		merged.informant = overrides.informant
	}
	if overrides.urgency != nil {
		merged.urgency = overrides.urgency
	}
	return &merged
}

// removePolicy converts a Remove argument into a predicate.
func removePolicy(policy any) func(any) bool {
	switch t := policy.(type) {
	case func(any) bool:
		return t
	case nil:
		return isFalsy
	}
	rv := reflect.ValueOf(policy)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		unwanted := make([]any, rv.Len())
		for i := range unwanted {
			unwanted[i] = rv.Index(i).Interface()
		}
		return func(v any) bool {
			for _, u := range unwanted {
				if v == u {
					return true
				}
			}
			return false
		}
	}
	return func(v any) bool { return v == policy }
}
