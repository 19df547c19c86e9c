package natsort

import (
	"reflect"
	"testing"
)

func TestStrings(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "digit runs by magnitude",
			input: []string{"h2", "h10", "h1"},
			want:  []string{"h1", "h2", "h10"},
		},
		{
			name:  "case insensitive text",
			input: []string{"Switch-b", "switch-A", "SWITCH-c"},
			want:  []string{"switch-A", "Switch-b", "SWITCH-c"},
		},
		{
			name:  "multiple runs",
			input: []string{"r1-p10", "r1-p9", "r10-p1", "r2-p1"},
			want:  []string{"r1-p9", "r1-p10", "r2-p1", "r10-p1"},
		},
		{
			name:  "prefix shorter first",
			input: []string{"core10", "core"},
			want:  []string{"core", "core10"},
		},
		{
			name:  "huge digit run does not overflow",
			input: []string{"x99999999999999999999999", "x2"},
			want:  []string{"x2", "x99999999999999999999999"},
		},
		{
			name:  "empty",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strings(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Strings(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStrings_DoesNotMutateInput(t *testing.T) {
	in := []string{"b", "a"}
	_ = Strings(in)
	if in[0] != "b" || in[1] != "a" {
		t.Errorf("input mutated: %v", in)
	}
}

func TestSliceStable_PreservesEqualKeyOrder(t *testing.T) {
	type row struct {
		host string
		seq  int
	}
	rows := []row{
		{"SW10", 1}, {"sw2", 2}, {"SW2", 3}, {"sw10", 4}, {"sw1", 5},
	}
	SliceStable(rows, func(i int) string { return rows[i].host })

	want := []int{5, 2, 3, 1, 4}
	for i, r := range rows {
		if r.seq != want[i] {
			t.Fatalf("order = %v, want seq %v", rows, want)
		}
	}
}

func TestLess(t *testing.T) {
	if !Less("item2", "item10") {
		t.Error("item2 should sort before item10")
	}
	if Less("item10", "item2") {
		t.Error("item10 should not sort before item2")
	}
	if Less("abc", "ABC") || Less("ABC", "abc") {
		t.Error("case-only differences should compare equal")
	}
}
