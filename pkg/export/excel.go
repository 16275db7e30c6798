package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"mightyops-be/pkg/reporting"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// column is one workbook column bound to a record accessor.
type column struct {
	header string
	width  float64
	value  func(r reporting.Record) any
	link   func(r reporting.Record) string
}

func buildWorkbook(schema *reporting.Schema, records []reporting.Record, opts Options) (*File, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, schema, records, opts); err != nil {
		return nil, err
	}

	anyImage := false
	for _, r := range records {
		if r.HasImage {
			anyImage = true
			break
		}
	}

	all := workbookColumns(schema, opts, anyImage, "", schema.SiteSheets)
	if err := writeRecordSheet(f, "All Records", all, records); err != nil {
		return nil, err
	}

	// One sheet per category value that has records.
	if schema.CategoryField != "" {
		order, counts := categoryCounts(schema, records)
		cols := workbookColumns(schema, opts, anyImage, schema.CategoryField, schema.SiteSheets)
		for _, value := range order {
			if counts[value] == 0 {
				continue
			}
			subset := make([]reporting.Record, 0, counts[value])
			for _, r := range records {
				if r.StringValue(schema.CategoryField) == value {
					subset = append(subset, r)
				}
			}
			if err := writeRecordSheet(f, sheetName(value), cols, subset); err != nil {
				return nil, err
			}
		}
	}

	// One sheet per site with data.
	if schema.SiteSheets {
		cols := workbookColumns(schema, opts, anyImage, "", false)
		for _, site := range sitesWithData(records) {
			var subset []reporting.Record
			for _, r := range records {
				if r.Location == site {
					subset = append(subset, r)
				}
			}
			if err := writeRecordSheet(f, sheetName(site), cols, subset); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return &File{
		Name: opts.fileName(schema, "xlsx"),
		MIME: xlsxMIME,
		Data: buf.Bytes(),
	}, nil
}

func writeSummarySheet(f *excelize.File, schema *reporting.Schema, records []reporting.Record, opts Options) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 60); err != nil {
		return err
	}

	rows := [][]any{
		{schema.Title + " - Summary"},
		{"Generated:", opts.GeneratedAt.In(opts.location()).Format("01/02/2006, 03:04:05 PM")},
		{},
		{"Total Records:", len(records)},
	}
	if schema.CategoryField != "" {
		order, counts := categoryCounts(schema, records)
		for _, value := range order {
			rows = append(rows, []any{value + ":", counts[value]})
		}
	}
	rows = append(rows, []any{}, []any{"Filters Applied:"}, []any{opts.FilterSummary})

	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 13}}); err == nil {
		_ = f.SetCellStyle(sheet, "A1", "A1", style)
	}
	return nil
}

func writeRecordSheet(f *excelize.File, sheet string, cols []column, records []reporting.Record) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.header); err != nil {
			return err
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, col.width); err != nil {
			return err
		}
	}
	if headerStyle != 0 {
		last, _ := excelize.CoordinatesToCellName(len(cols), 1)
		_ = f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for rowIdx, r := range records {
		for colIdx, col := range cols {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, col.value(r)); err != nil {
				return err
			}
			if col.link != nil {
				if url := col.link(r); url != "" {
					if err := f.SetCellHyperLink(sheet, cell, url, "External"); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// workbookColumns assembles the column set for one sheet. excludeField
// drops the breakout field on its own sheet; includeSite controls the
// Site column (dropped on per-site sheets and on forms without sites).
func workbookColumns(schema *reporting.Schema, opts Options, anyImage bool, excludeField string, includeSite bool) []column {
	cols := []column{{
		header: "Date/Time",
		width:  22,
		value:  func(r reporting.Record) any { return opts.formatTimestamp(r.SubmittedAt) },
	}}

	if includeSite {
		cols = append(cols, column{
			header: "Site",
			width:  12,
			value:  func(r reporting.Record) any { return r.Location },
		})
	}

	for _, field := range schema.Fields() {
		if field.Name == excludeField {
			continue
		}
		f := field
		cols = append(cols, column{
			header: f.Label,
			width:  fieldWidth(f.Kind),
			value:  func(r reporting.Record) any { return r.StringValue(f.Name) },
		})
	}

	cols = append(cols, column{
		header: "Submitted By",
		width:  18,
		value:  func(r reporting.Record) any { return r.SubmittedBy },
	})

	if anyImage {
		cols = append(cols, column{
			header: "Photo",
			width:  14,
			value: func(r reporting.Record) any {
				if r.HasImage {
					return "View Photo"
				}
				return ""
			},
			link: func(r reporting.Record) string {
				if r.HasImage && opts.ImageURL != nil {
					return opts.ImageURL(schema.Form, r.ID)
				}
				return ""
			},
		})
	}
	return cols
}

func fieldWidth(kind reporting.FieldKind) float64 {
	switch kind {
	case reporting.KindText:
		return 50
	case reporting.KindTag:
		return 30
	case reporting.KindNumeric:
		return 12
	case reporting.KindDate:
		return 14
	default:
		return 18
	}
}

// sheetName trims a value to a legal xlsx sheet name.
func sheetName(v string) string {
	replacer := strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ")
	name := strings.TrimSpace(replacer.Replace(v))
	if name == "" {
		name = "Sheet"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
