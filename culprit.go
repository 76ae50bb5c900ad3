package herald

import "reflect"

// The culprit stack is process-wide, scoped lexically rather than to a
// session. Frames are pushed with SetCulprit or AddCulprit and popped by
// calling the returned restore function, normally with defer.
var culprits []any

// SetCulprit replaces the visible culprit, saving the current stack. The
// returned function restores the saved stack and must be called on scope
// exit:
//
//	defer herald.SetCulprit(filename)()
func SetCulprit(parts ...any) func() {
	saved := culprits
	culprits = flattenCulprit(parts)
	return func() { culprits = saved }
}

// AddCulprit appends entries on top of the current culprit. The returned
// function pops them.
func AddCulprit(parts ...any) func() {
	depth := len(culprits)
	culprits = append(culprits, flattenCulprit(parts)...)
	return func() { culprits = culprits[:depth] }
}

// GetCulprit returns the current culprit stack with extra appended.
func GetCulprit(extra ...any) []any {
	out := append([]any{}, culprits...)
	return append(out, flattenCulprit(extra)...)
}

// JoinCulprit renders culprit entries as a single string, joined with the
// default culprit separator. Nil entries are skipped.
func JoinCulprit(parts []any) string {
	return joinCulprit(parts, ", ")
}

func joinCulprit(parts []any, sep string) string {
	rendered := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == nil {
			continue
		}
		rendered = append(rendered, renderValue(part))
	}
	out := ""
	for i, r := range rendered {
		if i > 0 {
			out += sep
		}
		out += r
	}
	return out
}

// flattenCulprit flattens one level of slices so callers may pass either
// scalars or a collected tuple of entries.
func flattenCulprit(parts []any) []any {
	out := make([]any, 0, len(parts))
	for _, part := range parts {
		if part == nil {
			continue
		}
		rv := reflect.ValueOf(part)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				out = append(out, rv.Index(i).Interface())
			}
			continue
		}
		out = append(out, part)
	}
	return out
}
