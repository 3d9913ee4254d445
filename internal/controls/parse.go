package controls

// parse.go — header-routed parsing of one baseline tab into a Controls map.
//
// The workbook tabs are semi-structured: a title row, a header row, then
// data rows, with header wording that drifts between workbook revisions.
// Routing therefore matches headers heuristically (exact, prefix, or
// substring, checked in that order) and is deliberately permissive: an
// unrecognized column, a blank cell, or a malformed identifier never
// aborts anything. The only way a row fails is ending up with an empty
// identifier, in which case it is silently dropped.

import (
	"strings"

	"crosswalk/internal/sheet"
)

// Fixed sheet shape: row 0 is the tab title, row 1 the column headers,
// data starts at row 2.
const (
	headerRow    = 1
	firstDataRow = 2
)

// ParseSheet reads one baseline tab into a Controls map. Every parsed
// control has exactly one populated parameter slot: the given baseline's,
// initialized present-but-empty so that a tab listing a control without
// parameter text still marks the baseline as covering it.
//
// Duplicate identifiers within one tab resolve last-row-wins.
func ParseSheet(grid *sheet.Grid, baseline Baseline) *Controls {
	out := NewControls()

	headers := make(map[int]string)
	for col := 0; col < grid.Width(); col++ {
		if v, ok := grid.Cell(headerRow, col).Text(); ok {
			headers[col] = whitespaceRun.ReplaceAllString(v, " ")
		}
	}

	for row := firstDataRow; row < grid.NumRows(); row++ {
		c := &Control{}
		params := &Parameters{}
		c.Parameters[baseline] = params

		for col, cell := range grid.Row(row) {
			name, ok := headers[col]
			if !ok {
				continue
			}
			value, ok := cell.Text()
			if !ok {
				continue
			}
			switch {
			case name == "ID":
				if id, err := ParseControlID(value); err == nil {
					c.ID = id
				}
			case name == "Control Name":
				c.Name = strings.TrimSpace(value)
			case strings.HasPrefix(name, "NIST Control Description"):
				c.Description = strings.TrimSpace(value)
			case strings.HasPrefix(name, "NIST Discussion"):
				c.Discussion = strings.TrimSpace(value)
			case strings.Contains(name, "Assignment / Selection"):
				params.Assignment = strings.TrimSpace(value)
			case strings.Contains(name, "Additional"):
				params.Additional = strings.TrimSpace(value)
			}
		}

		if !c.ID.IsEmpty() {
			out.ByID[c.ID] = c
		}
	}
	return out
}
