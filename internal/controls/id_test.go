package controls

import (
	"errors"
	"sort"
	"testing"
)

func TestParseControlIDRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ControlID
		text  string
	}{
		{
			name:  "plain",
			input: "AC-2",
			want:  ControlID{Subject: "AC", Number: 2},
			text:  "AC-2",
		},
		{
			name:  "enhancement",
			input: "AC-2 (1)",
			want:  ControlID{Subject: "AC", Number: 2, Subnumber: 1},
			text:  "AC-2 (1)",
		},
		{
			name:  "unanchored match inside cell text",
			input: "see AU-12 (3) for details",
			want:  ControlID{Subject: "AU", Number: 12, Subnumber: 3},
			text:  "AU-12 (3)",
		},
		{
			name:  "subnumber zero renders without parentheses",
			input: "SC-7 (0)",
			want:  ControlID{Subject: "SC", Number: 7},
			text:  "SC-7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseControlID(tt.input)
			if err != nil {
				t.Fatalf("ParseControlID(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseControlID(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if got.String() != tt.text {
				t.Errorf("String() = %q, want %q", got.String(), tt.text)
			}
			if got.IsEmpty() {
				t.Errorf("IsEmpty() = true for parsed id %q", tt.input)
			}
		})
	}
}

func TestParseControlIDFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "no dash", input: "Access Control"},
		{name: "no number", input: "AC-"},
		{name: "number out of range", input: "AC-300"},
		{name: "subnumber out of range", input: "AC-2 (999)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseControlID(tt.input)
			if err == nil {
				t.Fatalf("ParseControlID(%q) succeeded, want error", tt.input)
			}
			var perr *IDParseError
			if !errors.As(err, &perr) {
				t.Errorf("error type = %T, want *IDParseError", err)
			}
		})
	}
}

func TestControlIDOrdering(t *testing.T) {
	// AC-1 < AC-2 < AC-2 (1) < AU-1
	ids := []ControlID{
		{Subject: "AU", Number: 1},
		{Subject: "AC", Number: 2, Subnumber: 1},
		{Subject: "AC", Number: 1},
		{Subject: "AC", Number: 2},
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })

	want := []string{"AC-1", "AC-2", "AC-2 (1)", "AU-1"}
	for i, id := range ids {
		if id.String() != want[i] {
			t.Errorf("sorted[%d] = %s, want %s", i, id, want[i])
		}
	}
}

func TestControlIDIsEmpty(t *testing.T) {
	if !(ControlID{}).IsEmpty() {
		t.Error("zero ControlID should be empty")
	}
	if !(ControlID{Subject: "AC"}).IsEmpty() {
		t.Error("number 0 should be empty")
	}
	if !(ControlID{Number: 1}).IsEmpty() {
		t.Error("missing subject should be empty")
	}
	if (ControlID{Subject: "AC", Number: 1}).IsEmpty() {
		t.Error("AC-1 should not be empty")
	}
}
