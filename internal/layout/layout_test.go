package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"crosswalk/internal/controls"
)

func singleControlSet(c *controls.Control) *controls.Controls {
	cs := controls.NewControls()
	cs.ByID[c.ID] = c
	return cs
}

func makeControl(high, moderate, low *controls.Parameters) *controls.Control {
	c := &controls.Control{
		ID:          controls.ControlID{Subject: "AC", Number: 2},
		Name:        "Account Management",
		Description: "desc",
		Discussion:  "disc",
	}
	c.Parameters[controls.High] = high
	c.Parameters[controls.Moderate] = moderate
	c.Parameters[controls.Low] = low
	return c
}

func TestTabulateHeaderRow(t *testing.T) {
	rows := Tabulate(controls.NewControls())
	if len(rows) != 1 {
		t.Fatalf("empty set: %d rows, want header only", len(rows))
	}
	var names []string
	for _, c := range rows[0].Cells {
		if !c.Header {
			t.Error("header row cells must be marked Header")
		}
		names = append(names, c.Text)
	}
	want := []string{"ID", "H", "M", "L", "Name", "Description", "Discussion",
		"Level", "Assignment", "Additional guidance"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("header names (-want +got):\n%s", diff)
	}
}

func TestTabulateSharedOnlyControl(t *testing.T) {
	// Same flattened parameters in High and Moderate: one physical row.
	c := makeControl(
		&controls.Parameters{Assignment: "Foo  Bar", Additional: "extra"},
		&controls.Parameters{Assignment: "Foo Bar", Additional: "extra"},
		nil,
	)
	rows := Tabulate(singleControlSet(c))

	if len(rows) != 2 {
		t.Fatalf("%d rows, want header + 1 shared", len(rows))
	}
	row := rows[1]
	if row.Class != "shared" {
		t.Errorf("Class = %q, want shared", row.Class)
	}
	if len(row.Cells) != 10 {
		t.Fatalf("%d cells, want 10 (shared + level + parameter pair)", len(row.Cells))
	}
	for i, cell := range row.Cells {
		if cell.RowSpan != 1 {
			t.Errorf("cell %d RowSpan = %d, want 1", i, cell.RowSpan)
		}
	}

	if row.Cells[0].Text != "AC-2" {
		t.Errorf("id cell = %q, want AC-2", row.Cells[0].Text)
	}
	// Presence ticks: High and Moderate populated, Low absent.
	ticks := []string{row.Cells[1].Text, row.Cells[2].Text, row.Cells[3].Text}
	if diff := cmp.Diff([]string{"✓", "✓", ""}, ticks); diff != "" {
		t.Errorf("presence ticks (-want +got):\n%s", diff)
	}
	// Parameter pair sourced from the first populated slot, raw text.
	if row.Cells[8].Text != "Foo  Bar" || row.Cells[9].Text != "extra" {
		t.Errorf("parameter cells = (%q, %q), want raw High slot text",
			row.Cells[8].Text, row.Cells[9].Text)
	}
}

func TestTabulateDistinctControl(t *testing.T) {
	c := makeControl(
		&controls.Parameters{Assignment: "Foo"},
		&controls.Parameters{Assignment: "Bar"},
		nil,
	)
	rows := Tabulate(singleControlSet(c))

	if len(rows) != 5 {
		t.Fatalf("%d rows, want header + shared + 3 detail rows", len(rows))
	}

	shared := rows[1]
	if len(shared.Cells) != 7 {
		t.Fatalf("shared row has %d cells, want 7 (no parameter cells)", len(shared.Cells))
	}
	for i, cell := range shared.Cells {
		if cell.RowSpan != 4 {
			t.Errorf("shared cell %d RowSpan = %d, want 4", i, cell.RowSpan)
		}
	}

	classes := []string{rows[2].Class, rows[3].Class, rows[4].Class}
	want := []string{"parameters High", "parameters Moderate", "parameters Low"}
	if diff := cmp.Diff(want, classes); diff != "" {
		t.Errorf("detail row classes (-want +got):\n%s", diff)
	}

	if got := rows[2].Cells[1].Text; got != "Foo" {
		t.Errorf("High detail assignment = %q, want Foo", got)
	}
	if got := rows[3].Cells[0].Text; got != "Moderate" {
		t.Errorf("Moderate detail label = %q", got)
	}
	// Absent baseline: placeholder row with no cells keeps the rowspan
	// arithmetic intact.
	if len(rows[4].Cells) != 0 {
		t.Errorf("Low detail row has %d cells, want empty placeholder", len(rows[4].Cells))
	}
}

func TestTabulateNameSeparatorRewrite(t *testing.T) {
	c := makeControl(&controls.Parameters{}, nil, nil)
	c.Name = "Policy | Procedures"
	rows := Tabulate(singleControlSet(c))
	if got := rows[1].Cells[4].Text; got != "Policy\nProcedures" {
		t.Errorf("name cell = %q, want separator rewritten to newline", got)
	}
}

func TestTabulateOrdering(t *testing.T) {
	cs := controls.NewControls()
	for _, id := range []controls.ControlID{
		{Subject: "AU", Number: 1},
		{Subject: "AC", Number: 2},
		{Subject: "AC", Number: 2, Subnumber: 1},
	} {
		cs.ByID[id] = &controls.Control{ID: id}
	}
	rows := Tabulate(cs)

	var ids []string
	for _, row := range rows[1:] {
		ids = append(ids, row.Cells[0].Text)
	}
	want := []string{"AC-2", "AC-2 (1)", "AU-1"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("row order (-want +got):\n%s", diff)
	}
}

func TestTabulateFilteredViewDropsBaseline(t *testing.T) {
	// High and Low differ, so the full view needs detail rows; with Low
	// filtered out only High's text remains and the control collapses to
	// a single shared row with no Low tick anywhere.
	c := makeControl(
		&controls.Parameters{Assignment: "Foo"},
		nil,
		&controls.Parameters{Assignment: "Bar"},
	)
	cs := singleControlSet(c)

	full := Tabulate(cs)
	if len(full) != 5 {
		t.Fatalf("full view: %d rows, want 5", len(full))
	}

	filtered := Tabulate(cs.WithoutBaseline(controls.Low))
	if len(filtered) != 2 {
		t.Fatalf("filtered view: %d rows, want 2", len(filtered))
	}
	row := filtered[1]
	if row.Cells[3].Text != "" {
		t.Error("filtered view must not show a Low presence tick")
	}
	if row.Cells[1].Text != "✓" {
		t.Error("High tick must survive filtering")
	}
	if row.Cells[8].Text != "Foo" {
		t.Errorf("parameter cell = %q, want the surviving High text", row.Cells[8].Text)
	}
}
