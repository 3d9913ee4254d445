// Package source retrieves the baseline workbook (HTTP or local file) and
// parses its baseline tabs into per-baseline control maps.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"crosswalk/internal/controls"
	"crosswalk/internal/sheet"
)

// Fetch downloads the workbook at url and opens it. The whole body is
// buffered: xlsx decoding needs random access.
func Fetch(ctx context.Context, url string) (*sheet.Workbook, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return sheet.OpenWorkbook(bytes.NewReader(body))
}

// Open opens a local copy of the workbook.
func Open(path string) (*sheet.Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("workbook %s: %w", path, err)
	}
	return sheet.OpenWorkbookFile(path)
}

// LoadBaselines parses each baseline's tab from wb. A baseline whose tab
// is not present in the workbook gets no map entry; warnings for skipped
// tabs go to warn (ignored when nil). Downstream merge handles partial
// maps, so a missing tab degrades the report instead of failing it.
func LoadBaselines(wb *sheet.Workbook, tabs map[controls.Baseline]string, warn io.Writer) map[controls.Baseline]*controls.Controls {
	out := make(map[controls.Baseline]*controls.Controls, len(controls.AllBaselines))
	for _, b := range controls.AllBaselines {
		grid, err := wb.Grid(tabs[b])
		if err != nil {
			if warn != nil {
				fmt.Fprintf(warn, "skipping %s: %v\n", b.Short(), err)
			}
			continue
		}
		out[b] = controls.ParseSheet(grid, b)
	}
	return out
}
