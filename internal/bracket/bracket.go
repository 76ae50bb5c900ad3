// Package bracket parses and fills brace-delimited message templates.
//
// A placeholder is "{}", "{2}", "{name}", or "{name[key]}", where the
// subscript indexes into a slice (numeric key) or a map (string key).
// Literal braces are written "{{" and "}}".
package bracket

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ErrBadTemplate reports a malformed template: an unterminated or empty
// nested placeholder, or a stray closing brace.
var ErrBadTemplate = errors.New("malformed template")

// Ref identifies one placeholder within a template.
type Ref struct {
	Auto       bool   // "{}": filled from the next unnamed argument
	Positional bool   // "{2}": filled from unnamed argument 2
	Index      int    // argument index when Positional
	Name       string // field name when neither Auto nor Positional
	Key        string // optional "[key]" subscript
}

type segment struct {
	literal string
	ref     Ref
	isRef   bool
}

func parse(template string) ([]segment, error) {
	var segs []segment
	var lit strings.Builder
	i := 0
	for i < len(template) {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				lit.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated placeholder in %q", ErrBadTemplate, template)
			}
			field := template[i+1 : i+end]
			ref, err := parseField(field)
			if err != nil {
				return nil, fmt.Errorf("%w: %v in %q", ErrBadTemplate, err, template)
			}
			if lit.Len() > 0 {
				segs = append(segs, segment{literal: lit.String()})
				lit.Reset()
			}
			segs = append(segs, segment{ref: ref, isRef: true})
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				lit.WriteByte('}')
				i += 2
				continue
			}
			return nil, fmt.Errorf("%w: single '}' in %q", ErrBadTemplate, template)
		default:
			lit.WriteByte(c)
			i++
		}
	}
	if lit.Len() > 0 {
		segs = append(segs, segment{literal: lit.String()})
	}
	return segs, nil
}

func parseField(field string) (Ref, error) {
	var ref Ref
	name := field
	if open := strings.IndexByte(field, '['); open >= 0 {
		if !strings.HasSuffix(field, "]") {
			return ref, fmt.Errorf("unterminated subscript in {%s}", field)
		}
		ref.Key = field[open+1 : len(field)-1]
		if ref.Key == "" {
			return ref, fmt.Errorf("empty subscript in {%s}", field)
		}
		name = field[:open]
	}
	switch {
	case name == "":
		ref.Auto = true
	case isDigits(name):
		ref.Positional = true
		ref.Index, _ = strconv.Atoi(name)
	default:
		ref.Name = name
	}
	return ref, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Refs returns the placeholders a template references, in order. Auto
// placeholders are assigned consecutive argument indexes.
func Refs(template string) ([]Ref, error) {
	segs, err := parse(template)
	if err != nil {
		return nil, err
	}
	var refs []Ref
	auto := 0
	for _, seg := range segs {
		if !seg.isRef {
			continue
		}
		ref := seg.ref
		if ref.Auto {
			ref.Positional = true
			ref.Index = auto
			auto++
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Fill substitutes arguments and fields into the template. When lenient,
// unresolvable placeholders become empty strings instead of errors.
func Fill(template string, args []any, fields map[string]any, lenient bool) (string, error) {
	segs, err := parse(template)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	auto := 0
	for _, seg := range segs {
		if !seg.isRef {
			out.WriteString(seg.literal)
			continue
		}
		ref := seg.ref
		if ref.Auto {
			ref.Positional = true
			ref.Index = auto
			auto++
		}
		val, ok := resolve(ref, args, fields)
		if !ok {
			if !lenient {
				return "", fmt.Errorf("%w: no value for {%s}", ErrBadTemplate, refName(ref))
			}
			continue
		}
		out.WriteString(render(val))
	}
	return out.String(), nil
}

func refName(ref Ref) string {
	name := ref.Name
	if ref.Positional {
		name = strconv.Itoa(ref.Index)
	}
	if ref.Key != "" {
		name += "[" + ref.Key + "]"
	}
	return name
}

// Resolve looks up the value a placeholder references, applying any
// subscript. ok is false when the argument, field, or subscript element
// is missing.
func Resolve(ref Ref, args []any, fields map[string]any) (any, bool) {
	return resolve(ref, args, fields)
}

func resolve(ref Ref, args []any, fields map[string]any) (any, bool) {
	var val any
	if ref.Positional {
		if ref.Index >= len(args) {
			return nil, false
		}
		val = args[ref.Index]
	} else {
		v, ok := fields[ref.Name]
		if !ok {
			return nil, false
		}
		val = v
	}
	if ref.Key == "" {
		return val, true
	}
	return subscript(val, ref.Key)
}

func subscript(val any, key string) (any, bool) {
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= rv.Len() {
			return nil, false
		}
		return rv.Index(idx).Interface(), true
	case reflect.Map:
		kv := reflect.ValueOf(key)
		if !kv.Type().AssignableTo(rv.Type().Key()) {
			return nil, false
		}
		elem := rv.MapIndex(kv)
		if !elem.IsValid() {
			return nil, false
		}
		return elem.Interface(), true
	}
	return nil, false
}

func render(val any) string {
	switch t := val.(type) {
	case string:
		return t
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(val)
	}
}
