package view

import (
	"fmt"
	"io"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeHTML replaces &, <, > and " with their entities in a single pass.
// Single quotes are left alone.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Markup renders the stats, table body and empty state of p as HTML.
func Markup(p Page) string {
	var b strings.Builder
	_ = WriteMarkup(&b, p)
	return b.String()
}

// WriteMarkup writes the markup of p to w.
func WriteMarkup(w io.Writer, p Page) error {
	ew := &errWriter{w: w}

	ew.printf("<section class=\"stats\">\n")
	ew.printf("  <span id=\"stat-total\">%d</span>\n", p.Stats.Total)
	ew.printf("  <span id=\"stat-published\">%d</span>\n", p.Stats.Published)
	ew.printf("  <span id=\"stat-unpublished\">%d</span>\n", p.Stats.Unpublished)
	ew.printf("</section>\n")

	if p.Empty() {
		ew.printf("<div id=\"empty-state\">No tutorials found.</div>\n")
		ew.printf("<table class=\"table\"><tbody id=\"table-body\"></tbody></table>\n")
		return ew.err
	}

	ew.printf("<table class=\"table\"><tbody id=\"table-body\">\n")
	for _, row := range p.Rows {
		writeRow(ew, row)
	}
	ew.printf("</tbody></table>\n")
	return ew.err
}

func writeRow(ew *errWriter, row Row) {
	ew.printf("<tr data-id=\"%d\">\n", row.ID)
	ew.printf("  <td class=\"text-muted\">%d</td>\n", row.ID)
	ew.printf("  <td><strong>%s</strong></td>\n", EscapeHTML(row.Title))
	ew.printf("  <td class=\"text-muted\">%s</td>\n", EscapeHTML(row.Description))
	ew.printf("  <td><span class=\"%s\">%s</span></td>\n", row.Badge.Class, row.Badge.Label)
	ew.printf("  <td>")
	for _, a := range row.Actions {
		ew.printf("<button class=\"btn btn-outline-%s btn-action\" data-action=\"%s\" data-id=\"%d\" title=\"%s\"><i class=\"fa fa-%s\"></i></button>",
			a.Variant, a.Kind, row.ID, a.Label, a.Icon)
	}
	ew.printf("</td>\n")
	ew.printf("</tr>\n")
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
