// Package layout turns a merged control set into a markup-agnostic table:
// an ordered sequence of rows of cells with rowspan attributes.
//
// The build runs in two passes. First, each control becomes a group — its
// shared cells plus zero or three per-baseline detail rows, depending on
// whether its parameter text actually differs between baselines. Then the
// groups are flattened into physical rows, and rowspan arithmetic is
// applied during flattening: shared cells span the group's full height, so
// the layout decision and the span mechanics stay independently testable.
package layout

import (
	"strings"

	"crosswalk/internal/controls"
)

// Cell is one table cell. RowSpan 1 means no spanning; Header marks
// heading cells so the renderer can pick the right cell element.
type Cell struct {
	Text    string
	RowSpan int
	Header  bool
}

// Row is one physical table row. Class carries the styling hook
// ("shared", "parameters High", ...); empty for the header row.
type Row struct {
	Class string
	Cells []Cell
}

// tick marks a populated baseline in the presence columns.
const tick = "✓"

// group is one control's rows before rowspan flattening.
type group struct {
	class   string
	shared  []Cell
	details []Row
}

// Tabulate lays out every control in cs in ascending identifier order,
// preceded by the fixed header row.
func Tabulate(cs *controls.Controls) []Row {
	rows := []Row{headerRow()}
	for _, id := range cs.SortedIDs() {
		rows = append(rows, buildGroup(cs.Get(id)).flatten()...)
	}
	return rows
}

func headerRow() Row {
	names := []string{
		"ID", "H", "M", "L",
		"Name", "Description", "Discussion",
		"Level", "Assignment", "Additional guidance",
	}
	cells := make([]Cell, len(names))
	for i, n := range names {
		cells[i] = Cell{Text: n, RowSpan: 1, Header: true}
	}
	return Row{Cells: cells}
}

// buildGroup computes one control's group: the shared cells, plus one
// detail row per baseline when the parameter text is distinct.
func buildGroup(c *controls.Control) group {
	g := group{class: "shared"}

	presence := func(level controls.Baseline) string {
		if c.Parameters[level] != nil {
			return tick
		}
		return ""
	}

	// The workbook encodes name line breaks as " | ".
	name := strings.ReplaceAll(c.Name, " | ", "\n")

	g.shared = []Cell{
		{Text: c.ID.String()},
		{Text: presence(controls.High)},
		{Text: presence(controls.Moderate)},
		{Text: presence(controls.Low)},
		{Text: name},
		{Text: c.Description},
		{Text: c.Discussion},
	}

	if !c.DistinctParameters() {
		// One shared parameter cell pair, sourced from whichever baseline
		// is populated first; the level column stays blank.
		var p controls.Parameters
		if first := c.FirstParameters(); first != nil {
			p = *first
		}
		g.shared = append(g.shared,
			Cell{Text: ""},
			Cell{Text: p.Assignment},
			Cell{Text: p.Additional},
		)
		return g
	}

	for _, level := range controls.AllBaselines {
		row := Row{Class: "parameters " + level.Short()}
		if p := c.Parameters[level]; p != nil {
			row.Cells = []Cell{
				{Text: level.Short(), RowSpan: 1},
				{Text: p.Assignment, RowSpan: 1},
				{Text: p.Additional, RowSpan: 1},
			}
		}
		// An unpopulated baseline still emits its (empty) row so the
		// shared cells' span stays correct.
		g.details = append(g.details, row)
	}
	return g
}

// flatten converts the group into physical rows, assigning every shared
// cell a span covering the shared row plus all detail rows.
func (g group) flatten() []Row {
	span := 1 + len(g.details)
	shared := Row{Class: g.class, Cells: make([]Cell, len(g.shared))}
	for i, c := range g.shared {
		c.RowSpan = span
		shared.Cells[i] = c
	}
	return append([]Row{shared}, g.details...)
}
