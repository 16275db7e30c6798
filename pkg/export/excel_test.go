package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mightyops-be/pkg/reporting"
)

func noteSchema(t *testing.T) *reporting.Schema {
	t.Helper()
	schema, ok := reporting.SchemaFor(reporting.FormViolationNotes)
	require.True(t, ok)
	return schema
}

func noteRecords() []reporting.Record {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return []reporting.Record{
		{
			ID: 1, Location: "Site #2", SubmittedBy: "jordan", SubmittedAt: at, HasImage: true,
			Values: map[string]any{"department": "Safety", "note_type": "PPE", "additional_notes": "left guard missing"},
		},
		{
			ID: 2, Location: "Site #10", SubmittedBy: "casey", SubmittedAt: at.Add(time.Hour),
			Values: map[string]any{"department": "Operations", "note_type": "Procedure"},
		},
		{
			ID: 3, Location: "Site #2", SubmittedBy: "jordan", SubmittedAt: at.Add(2 * time.Hour),
			Values: map[string]any{"department": "Safety", "note_type": "Spill"},
		},
	}
}

func TestExportEmptySetRefused(t *testing.T) {
	_, err := Export(noteSchema(t), nil, Options{Kind: KindSpreadsheet})
	assert.ErrorIs(t, err, ErrNothingToExport)

	_, err = Export(noteSchema(t), []reporting.Record{}, Options{Kind: KindDocument})
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestExportUnknownKind(t *testing.T) {
	_, err := Export(noteSchema(t), noteRecords(), Options{Kind: Kind("csv")})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestWorkbookSheets(t *testing.T) {
	opts := Options{
		Kind:          KindSpreadsheet,
		GeneratedAt:   time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		FilterSummary: "Sites: Site #2 | Date Range: All dates",
		ImageURL: func(form reporting.FormType, id int) string {
			return "https://example.test/records/" + string(form) + "/1/image"
		},
	}

	file, err := Export(noteSchema(t), noteRecords(), opts)
	require.NoError(t, err)
	assert.Equal(t, "Mighty_Note_Report_2026-03-15.xlsx", file.Name)
	assert.Equal(t, xlsxMIME, file.MIME)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	// Summary, the full list, one sheet per category with data, one per site.
	assert.Equal(t,
		[]string{"Summary", "All Records", "Operations", "Safety", "Site #2", "Site #10"},
		wb.GetSheetList())
}

func TestWorkbookSummarySheet(t *testing.T) {
	opts := Options{
		Kind:          KindSpreadsheet,
		GeneratedAt:   time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		FilterSummary: "Sites: All | Date Range: All dates",
	}

	file, err := Export(noteSchema(t), noteRecords(), opts)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	cell := func(ref string) string {
		v, err := wb.GetCellValue("Summary", ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Mighty Note - Violation Report - Summary", cell("A1"))
	assert.Equal(t, "Total Records:", cell("A4"))
	assert.Equal(t, "3", cell("B4"))

	// Category counts follow the schema's fixed ordering.
	assert.Equal(t, "Operations:", cell("A5"))
	assert.Equal(t, "1", cell("B5"))
	assert.Equal(t, "Safety:", cell("A6"))
	assert.Equal(t, "2", cell("B6"))
	assert.Equal(t, "Accounting:", cell("A7"))
	assert.Equal(t, "0", cell("B7"))

	assert.Equal(t, "Filters Applied:", cell("A9"))
	assert.Equal(t, "Sites: All | Date Range: All dates", cell("A10"))
}

func TestWorkbookRecordSheet(t *testing.T) {
	opts := Options{
		Kind:        KindSpreadsheet,
		GeneratedAt: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		ImageURL: func(form reporting.FormType, id int) string {
			return "https://example.test/image/1"
		},
	}

	file, err := Export(noteSchema(t), noteRecords(), opts)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("All Records")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t,
		[]string{"Date/Time", "Site", "Department", "Note Type", "Other Description", "Additional Notes", "Submitted By", "Photo"},
		rows[0])

	assert.Equal(t, "03/14/2026, 09:30:00 AM", rows[1][0])
	assert.Equal(t, "Site #2", rows[1][1])
	assert.Equal(t, "Safety", rows[1][2])
	assert.Equal(t, "View Photo", rows[1][7])

	ok, url, err := wb.GetCellHyperLink("All Records", "H2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://example.test/image/1", url)

	// No image, no link text.
	noPhoto, err := wb.GetCellValue("All Records", "H3")
	require.NoError(t, err)
	assert.Empty(t, noPhoto)
}

func TestWorkbookBreakoutSheetDropsCategoryColumn(t *testing.T) {
	opts := Options{Kind: KindSpreadsheet, GeneratedAt: time.Now()}

	file, err := Export(noteSchema(t), noteRecords(), opts)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Safety")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.NotContains(t, rows[0], "Department")
	assert.Contains(t, rows[0], "Note Type")
}

func TestWorkbookSiteSheetDropsSiteColumn(t *testing.T) {
	opts := Options{Kind: KindSpreadsheet, GeneratedAt: time.Now()}

	file, err := Export(noteSchema(t), noteRecords(), opts)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Site #10")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.NotContains(t, rows[0], "Site")
	assert.Contains(t, rows[1], "casey")
}

func TestFileNameUsesExportDate(t *testing.T) {
	schema, ok := reporting.SchemaFor(reporting.FormEvaluations)
	require.True(t, ok)

	opts := Options{GeneratedAt: time.Date(2026, 7, 4, 23, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Site_Evaluation_Report_2026-07-04.xlsx", opts.fileName(schema, "xlsx"))
	assert.Equal(t, "Site_Evaluation_Report_2026-07-04.pdf", opts.fileName(schema, "pdf"))
}

func TestSheetNameSanitized(t *testing.T) {
	assert.Equal(t, "A B", sheetName("A:B"))
	assert.Equal(t, "Sheet", sheetName("***"))
	assert.Len(t, sheetName("a very long category value that exceeds the cap"), 31)
}
