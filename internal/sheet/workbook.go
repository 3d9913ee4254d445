package sheet

// workbook.go — xlsx decoding via excelize.
//
// A Workbook wraps an open excelize file and hands out one Grid per
// worksheet tab. GetRows returns every cell pre-formatted as text, which
// is exactly the view the control parser wants: numbers and formula
// results become their displayed string, blanks become Empty cells.

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Workbook is an open xlsx workbook.
type Workbook struct {
	file *excelize.File
}

// OpenWorkbook decodes a workbook from r (e.g. a downloaded response body
// buffered in memory).
func OpenWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{file: f}, nil
}

// OpenWorkbookFile decodes a workbook from a file on disk.
func OpenWorkbookFile(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{file: f}, nil
}

// TabNames returns the workbook's worksheet names in workbook order.
func (w *Workbook) TabNames() []string {
	return w.file.GetSheetList()
}

// Grid reads the named tab into a Grid. Returns an error when the tab does
// not exist in the workbook.
func (w *Workbook) Grid(tab string) (*Grid, error) {
	rows, err := w.file.GetRows(tab)
	if err != nil {
		return nil, fmt.Errorf("read tab %q: %w", tab, err)
	}
	return GridFromRows(rows), nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}
