// Package report renders layout rows as a self-contained HTML page with
// three radio-button tab views, and writes the page plus its stylesheet
// to an output directory.
//
// Generation is pure (no files written) so the full page can be asserted
// on in tests; writing is a separate step.
package report

import (
	_ "embed"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"crosswalk/internal/layout"
)

//go:embed style.css
var styleCSS []byte

// View is one tab of the report: a label, a stable element id for the
// radio input, and the rows of its table. Exactly one view should be
// Checked (the tab shown on load).
type View struct {
	ID      string
	Label   string
	Checked bool
	Rows    []layout.Row
}

// GeneratePage builds the complete HTML document for the given views.
func GeneratePage(title string, views []View) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString(`<meta charset="utf-8"/>` + "\n")
	b.WriteString(`<link href="style.css" rel="stylesheet"/>` + "\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(`<div class="tabs">` + "\n")
	for _, v := range views {
		writeTab(&b, v)
	}
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

// writeTab emits one radio input, its label, and the view's table panel.
// The input/label/panel triple is what the stylesheet turns into tabs.
func writeTab(b *strings.Builder, v View) {
	checked := ""
	if v.Checked {
		checked = ` checked="checked"`
	}
	fmt.Fprintf(b, `<input name="tabs" type="radio" id="%s"%s class="input"/>`+"\n",
		html.EscapeString(v.ID), checked)
	fmt.Fprintf(b, `<label for="%s" class="label">%s</label>`+"\n",
		html.EscapeString(v.ID), html.EscapeString(v.Label))
	b.WriteString(`<div class="panel">` + "\n")
	writeTable(b, v.Rows)
	b.WriteString("</div>\n")
}

func writeTable(b *strings.Builder, rows []layout.Row) {
	b.WriteString("<table>\n")
	for _, row := range rows {
		if row.Class != "" {
			fmt.Fprintf(b, `<tr class="%s">`, html.EscapeString(row.Class))
		} else {
			b.WriteString("<tr>")
		}
		for _, cell := range row.Cells {
			b.WriteString(renderCell(cell))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
}

// renderCell emits one td/th. Rowspan is written only when the cell
// actually spans; cell text is escaped, with newlines as line breaks.
func renderCell(c layout.Cell) string {
	tag := "td"
	if c.Header {
		tag = "th"
	}
	attr := ""
	if c.RowSpan > 1 {
		attr = fmt.Sprintf(` rowspan="%d"`, c.RowSpan)
	}
	text := strings.ReplaceAll(html.EscapeString(c.Text), "\n", "<br/>")
	return fmt.Sprintf("<%s%s>%s</%s>", tag, attr, text, tag)
}

// WriteReport writes the page as index.html alongside the embedded
// stylesheet in dir, creating the directory if needed.
func WriteReport(dir, page string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	index := filepath.Join(dir, "index.html")
	if err := os.WriteFile(index, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", index, err)
	}
	css := filepath.Join(dir, "style.css")
	if err := os.WriteFile(css, styleCSS, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", css, err)
	}
	return nil
}
