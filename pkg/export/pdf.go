package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"mightyops-be/pkg/reporting"
)

const pdfMIME = "application/pdf"

const (
	pageMargin  = 14.0
	lineHeight  = 5.0
	fontName    = "Helvetica"
	breakBottom = 270.0 // portrait A4 near-bottom threshold
)

func buildDocument(schema *reporting.Schema, records []reporting.Record, opts Options) (*File, error) {
	if schema.Tabular {
		return buildTableDocument(schema, records, opts)
	}
	return buildDetailDocument(schema, records, opts)
}

// docWriter tracks the vertical cursor and starts a new page whenever the
// next line would cross the near-bottom threshold. Every section heading
// and every wrapped paragraph line goes through ensure, so a long record
// spans pages instead of clipping.
type docWriter struct {
	pdf       *fpdf.Fpdf
	threshold float64
	width     float64
	tr        func(string) string
}

func newDocWriter(pdf *fpdf.Fpdf, threshold float64) *docWriter {
	w, _ := pdf.GetPageSize()
	return &docWriter{
		pdf:       pdf,
		threshold: threshold,
		width:     w - 2*pageMargin,
		// Core fonts expect cp1252 bytes, not raw UTF-8.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (w *docWriter) ensure(height float64) {
	if w.pdf.GetY()+height > w.threshold {
		w.pdf.AddPage()
	}
}

func (w *docWriter) line(size float64, style, text string) {
	w.ensure(lineHeight)
	w.pdf.SetFont(fontName, style, size)
	w.pdf.SetX(pageMargin)
	w.pdf.CellFormat(w.width, lineHeight, w.tr(text), "", 1, "L", false, 0, "")
}

// wrapped writes a paragraph split to the page width, re-checking the
// page break before every produced line.
func (w *docWriter) wrapped(size float64, text string) {
	w.pdf.SetFont(fontName, "", size)
	for _, ln := range w.pdf.SplitText(text, w.width) {
		w.ensure(lineHeight)
		w.pdf.SetX(pageMargin)
		w.pdf.CellFormat(w.width, lineHeight, w.tr(ln), "", 1, "L", false, 0, "")
	}
}

func (w *docWriter) spacer(h float64) {
	w.pdf.SetY(w.pdf.GetY() + h)
}

func buildDetailDocument(schema *reporting.Schema, records []reporting.Record, opts Options) (*File, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLeftMargin(pageMargin)
	pdf.AddPage()

	w := newDocWriter(pdf, breakBottom)

	pdf.SetFont(fontName, "B", 18)
	pdf.SetX(pageMargin)
	pdf.CellFormat(w.width, 8, w.tr(schema.Title), "", 1, "L", false, 0, "")
	w.spacer(2)

	pdf.SetTextColor(80, 80, 80)
	w.line(10, "", "Generated: "+opts.formatTimestamp(opts.GeneratedAt))
	w.line(10, "", fmt.Sprintf("Total Records: %d", len(records)))
	if opts.FilterSummary != "" {
		w.wrapped(9, opts.FilterSummary)
	}
	pdf.SetTextColor(0, 0, 0)
	w.spacer(5)

	for i, r := range records {
		w.ensure(20)

		w.line(12, "B", fmt.Sprintf("%s %d: %s", schema.EntryNoun, i+1, r.Label(schema)))
		w.spacer(1)

		submitter := r.SubmittedBy
		if submitter == "" {
			submitter = "Unknown"
		}
		w.line(9, "", fmt.Sprintf("Date: %s | Submitted by: %s", opts.formatTimestamp(r.SubmittedAt), submitter))
		w.spacer(2)

		for _, section := range schema.Sections {
			if !sectionHasValues(section, r) {
				continue
			}
			w.ensure(12)
			w.line(10, "B", section.Title)
			w.spacer(1)
			for _, field := range section.Fields {
				if !r.HasValue(field.Name) {
					continue
				}
				switch field.Kind {
				case reporting.KindText:
					w.wrapped(9, field.Label+": "+r.StringValue(field.Name))
				case reporting.KindTag:
					w.wrapped(9, field.Label+": "+strings.Join(r.TagValues(field.Name), ", "))
				default:
					w.line(9, "", field.Label+": "+r.StringValue(field.Name))
				}
			}
			w.spacer(2)
		}

		if r.HasImage && opts.ImageURL != nil {
			w.ensure(lineHeight)
			pdf.SetFont(fontName, "", 9)
			pdf.SetTextColor(10, 100, 230)
			pdf.SetX(pageMargin)
			pdf.CellFormat(w.width, lineHeight, "View Photo", "", 1, "L", false, 0, opts.ImageURL(schema.Form, r.ID))
			pdf.SetTextColor(0, 0, 0)
		}

		if i < len(records)-1 {
			w.spacer(4)
			w.ensure(lineHeight)
			pdf.SetDrawColor(200, 200, 200)
			y := pdf.GetY()
			pdf.Line(pageMargin, y, pageMargin+w.width, y)
			w.spacer(4)
		}
	}

	return pdfFile(pdf, schema, opts)
}

func sectionHasValues(section reporting.Section, r reporting.Record) bool {
	for _, f := range section.Fields {
		if r.HasValue(f.Name) {
			return true
		}
	}
	return false
}

// tableColumn is one fixed column of the lightweight tabular layout.
type tableColumn struct {
	header string
	width  float64
	photo  bool
	value  func(r reporting.Record) string
}

// buildTableDocument renders one row per record in a landscape table with
// a repeated header row, alternating shading and a clickable photo cell.
// The link rect is whatever rect the cell was actually drawn at.
func buildTableDocument(schema *reporting.Schema, records []reporting.Record, opts Options) (*File, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLeftMargin(pageMargin)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	usable := pageW - 2*pageMargin
	threshold := pageH - 20

	anyImage := false
	for _, r := range records {
		if r.HasImage {
			anyImage = true
			break
		}
	}
	cols := tableColumns(schema, opts, anyImage, usable)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(fontName, "B", 18)
	pdf.CellFormat(usable, 9, tr(schema.Title), "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(usable, 6, "Generated: "+opts.formatTimestamp(opts.GeneratedAt), "", 1, "L", false, 0, "")
	pdf.CellFormat(usable, 6, tr(fmt.Sprintf("Total: %d  |  %s", len(records), opts.FilterSummary)), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(pdf.GetY() + 4)

	const rowH = 8.0
	writeHeader := func() {
		pdf.SetFont(fontName, "B", 8)
		pdf.SetFillColor(10, 10, 10)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetX(pageMargin)
		for _, c := range cols {
			pdf.CellFormat(c.width, rowH, tr(c.header), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(rowH)
		pdf.SetTextColor(0, 0, 0)
	}
	writeHeader()

	pdf.SetFont(fontName, "", 8)
	for i, r := range records {
		if pdf.GetY()+rowH > threshold {
			pdf.AddPage()
			writeHeader()
			pdf.SetFont(fontName, "", 8)
		}

		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		pdf.SetX(pageMargin)
		for _, c := range cols {
			if c.photo {
				link := ""
				text := ""
				if r.HasImage && opts.ImageURL != nil {
					link = opts.ImageURL(schema.Form, r.ID)
					text = "View Photo"
				}
				pdf.SetTextColor(10, 100, 230)
				pdf.CellFormat(c.width, rowH, text, "1", 0, "C", fill, 0, link)
				pdf.SetTextColor(0, 0, 0)
				continue
			}
			pdf.CellFormat(c.width, rowH, tr(truncateToWidth(pdf, c.value(r), c.width-2)), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(rowH)
	}

	return pdfFile(pdf, schema, opts)
}

func tableColumns(schema *reporting.Schema, opts Options, anyImage bool, usable float64) []tableColumn {
	cols := []tableColumn{{
		header: "Date/Time",
		width:  40,
		value:  func(r reporting.Record) string { return opts.formatTimestamp(r.SubmittedAt) },
	}}
	if schema.SiteSheets {
		cols = append(cols, tableColumn{
			header: "Site",
			width:  20,
			value:  func(r reporting.Record) string { return r.Location },
		})
	}
	for _, field := range schema.Fields() {
		f := field
		var width float64
		switch f.Kind {
		case reporting.KindText:
			width = 48
		case reporting.KindTag:
			width = 36
		case reporting.KindNumeric:
			width = 18
		default:
			width = 30
		}
		cols = append(cols, tableColumn{
			header: f.Label,
			width:  width,
			value:  func(r reporting.Record) string { return r.StringValue(f.Name) },
		})
	}
	if anyImage {
		cols = append(cols, tableColumn{header: "Photo", width: 22, photo: true})
	}

	// Scale fixed widths to exactly fill the printable width.
	var total float64
	for _, c := range cols {
		total += c.width
	}
	factor := usable / total
	for i := range cols {
		cols[i].width *= factor
	}
	return cols
}

func truncateToWidth(pdf *fpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > w {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

func pdfFile(pdf *fpdf.Fpdf, schema *reporting.Schema, opts Options) (*File, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	return &File{
		Name: opts.fileName(schema, "pdf"),
		MIME: pdfMIME,
		Data: buf.Bytes(),
	}, nil
}
