package bracket

import (
	"errors"
	"reflect"
	"testing"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		fields   map[string]any
		want     string
	}{
		{"PlainText", "no placeholders", nil, nil, "no placeholders"},
		{"AutoNumbered", "{} and {}", []any{"salt", "pepper"}, nil, "salt and pepper"},
		{"Positional", "{1} before {0}", []any{"b", "a"}, nil, "a before b"},
		{"Named", "key is {key}", nil, map[string]any{"key": "value"}, "key is value"},
		{"Mixed", "{0}: {detail}", []any{"head"}, map[string]any{"detail": "tail"}, "head: tail"},
		{"SliceSubscript", "first is {v[0]}", nil, map[string]any{"v": []any{"x", "y"}}, "first is x"},
		{"MapSubscript", "msg is {d[msg]}", nil, map[string]any{"d": map[string]any{"msg": "hi"}}, "msg is hi"},
		{"EscapedBraces", "{{literal}}", nil, nil, "{literal}"},
		{"NumberRendering", "n = {}", []any{42}, nil, "n = 42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fill(tt.template, tt.args, tt.fields, false)
			if err != nil {
				t.Fatalf("Fill(%q) failed: %v", tt.template, err)
			}
			if got != tt.want {
				t.Errorf("Fill(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestFillMissing(t *testing.T) {
	if _, err := Fill("{absent}", nil, nil, false); !errors.Is(err, ErrBadTemplate) {
		t.Errorf("strict Fill with missing field: err = %v, want ErrBadTemplate", err)
	}
	got, err := Fill("x{absent}y", nil, nil, true)
	if err != nil {
		t.Fatalf("lenient Fill failed: %v", err)
	}
	if got != "xy" {
		t.Errorf("lenient Fill = %q, want %q", got, "xy")
	}
}

func TestFillMalformed(t *testing.T) {
	for _, template := range []string{"{unclosed", "stray } brace", "{v[}"} {
		if _, err := Fill(template, nil, nil, true); !errors.Is(err, ErrBadTemplate) {
			t.Errorf("Fill(%q): err = %v, want ErrBadTemplate", template, err)
		}
	}
}

func TestResolve(t *testing.T) {
	args := []any{"zero"}
	fields := map[string]any{
		"v": []any{"x"},
		"d": map[string]any{"k": "val"},
	}
	tests := []struct {
		name string
		ref  Ref
		want any
		ok   bool
	}{
		{"Positional", Ref{Positional: true, Index: 0}, "zero", true},
		{"PositionalMissing", Ref{Positional: true, Index: 1}, nil, false},
		{"Named", Ref{Name: "v"}, []any{"x"}, true},
		{"NamedMissing", Ref{Name: "absent"}, nil, false},
		{"SliceSubscript", Ref{Name: "v", Key: "0"}, "x", true},
		{"SliceSubscriptOutOfRange", Ref{Name: "v", Key: "3"}, nil, false},
		{"MapSubscript", Ref{Name: "d", Key: "k"}, "val", true},
		{"MapSubscriptMissing", Ref{Name: "d", Key: "absent"}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.ref, args, fields)
			if ok != tt.ok {
				t.Fatalf("Resolve ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRefs(t *testing.T) {
	refs, err := Refs("{} {2} {name} {v[0]}")
	if err != nil {
		t.Fatalf("Refs failed: %v", err)
	}
	if len(refs) != 4 {
		t.Fatalf("got %d refs, want 4", len(refs))
	}
	if !refs[0].Positional || refs[0].Index != 0 {
		t.Errorf("auto ref not numbered: %+v", refs[0])
	}
	if !refs[1].Positional || refs[1].Index != 2 {
		t.Errorf("positional ref wrong: %+v", refs[1])
	}
	if refs[2].Name != "name" {
		t.Errorf("named ref wrong: %+v", refs[2])
	}
	if refs[3].Name != "v" || refs[3].Key != "0" {
		t.Errorf("subscripted ref wrong: %+v", refs[3])
	}
}
