package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jung-kurt/gofpdf"

	"github.com/five82/tutordesk/internal/tutorials"
	"github.com/five82/tutordesk/internal/view"
)

// Formats lists the accepted values for Write.
var Formats = []string{"html", "text", "json", "pdf"}

// Write renders list in format to w.
func Write(w io.Writer, format string, list []tutorials.Tutorial) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "html", "":
		return writeHTML(w, list)
	case "text", "txt":
		return writeText(w, list)
	case "json":
		return writeJSON(w, list)
	case "pdf":
		return writePDF(w, list)
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

func writeHTML(w io.Writer, list []tutorials.Tutorial) error {
	var b bytes.Buffer
	b.WriteString("<!doctype html>\n<html>\n<head><meta charset=\"utf-8\"><title>Tutorials</title></head>\n<body>\n")
	if err := view.WriteMarkup(&b, view.Build(list)); err != nil {
		return err
	}
	b.WriteString("</body>\n</html>\n")
	_, err := w.Write(b.Bytes())
	return err
}

func writeText(w io.Writer, list []tutorials.Tutorial) error {
	page := view.Build(list)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tTITLE\tSTATUS\tDESCRIPTION\n")
	for _, row := range page.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", row.ID, oneLine(row.Title), row.Badge.Label, oneLine(row.Description))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d total, %d published, %d unpublished\n",
		page.Stats.Total, page.Stats.Published, page.Stats.Unpublished)
	return err
}

func writeJSON(w io.Writer, list []tutorials.Tutorial) error {
	if list == nil {
		list = []tutorials.Tutorial{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

func writePDF(w io.Writer, list []tutorials.Tutorial) error {
	page := view.Build(list)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Tutorials")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%d total, %d published, %d unpublished",
		page.Stats.Total, page.Stats.Published, page.Stats.Unpublished))
	pdf.Ln(10)

	if page.Empty() {
		pdf.Cell(0, 6, "No tutorials found.")
	}
	for _, row := range page.Rows {
		pdf.SetFont("Arial", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("#%d  %s  [%s]", row.ID, oneLine(row.Title), row.Badge.Label)), "0", "L", false)
		if desc := strings.TrimSpace(row.Description); desc != "" {
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, tr(desc), "0", "L", false)
		}
		pdf.Ln(2)
	}
	return pdf.Output(w)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
