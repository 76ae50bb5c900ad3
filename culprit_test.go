package herald

import (
	"reflect"
	"testing"
)

func TestCulpritRoundTrip(t *testing.T) {
	if got := GetCulprit(); len(got) != 0 {
		t.Fatalf("culprit stack not empty at start: %v", got)
	}

	restore := SetCulprit("x")
	if got := GetCulprit(); !reflect.DeepEqual(got, []any{"x"}) {
		t.Errorf("after SetCulprit: %v, want [x]", got)
	}

	inner := AddCulprit(1)
	if got := GetCulprit(); !reflect.DeepEqual(got, []any{"x", 1}) {
		t.Errorf("after AddCulprit: %v, want [x 1]", got)
	}

	inner()
	if got := GetCulprit(); !reflect.DeepEqual(got, []any{"x"}) {
		t.Errorf("after restoring AddCulprit: %v, want [x]", got)
	}

	restore()
	if got := GetCulprit(); len(got) != 0 {
		t.Errorf("after restoring SetCulprit: %v, want empty", got)
	}
}

func TestSetCulpritReplaces(t *testing.T) {
	outer := SetCulprit("a")
	defer outer()

	middle := SetCulprit("b")
	if got := GetCulprit(); !reflect.DeepEqual(got, []any{"b"}) {
		t.Errorf("nested SetCulprit: %v, want [b]", got)
	}
	middle()
	if got := GetCulprit(); !reflect.DeepEqual(got, []any{"a"}) {
		t.Errorf("after nested restore: %v, want [a]", got)
	}
}

func TestAddCulpritStacks(t *testing.T) {
	a := AddCulprit("a")
	b := AddCulprit("b")
	c := AddCulprit("c")
	defer a()
	defer b()
	defer c()

	if got := GetCulprit(); !reflect.DeepEqual(got, []any{"a", "b", "c"}) {
		t.Errorf("stacked AddCulprit: %v, want [a b c]", got)
	}
	if got := GetCulprit("x"); !reflect.DeepEqual(got, []any{"a", "b", "c", "x"}) {
		t.Errorf("GetCulprit with extra: %v", got)
	}
	if got := GetCulprit([]any{"x", "y"}); !reflect.DeepEqual(got, []any{"a", "b", "c", "x", "y"}) {
		t.Errorf("GetCulprit with collected extras: %v", got)
	}
}

func TestJoinCulprit(t *testing.T) {
	tests := []struct {
		name  string
		parts []any
		want  string
	}{
		{"Empty", nil, ""},
		{"Single", []any{"nutz"}, "nutz"},
		{"Mixed", []any{"nutz", 347}, "nutz, 347"},
		{"NilsSkipped", []any{"a", nil, "b"}, "a, b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinCulprit(tt.parts); got != tt.want {
				t.Errorf("JoinCulprit(%v) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}
