package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"mightyops-be/internal/config"
	"mightyops-be/internal/dto"
	"mightyops-be/internal/pkg/serverutils"
	"mightyops-be/pkg/export"
	"mightyops-be/pkg/reporting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubStore struct {
	records map[reporting.FormType][]reporting.Record
	deleted [][]int
}

func (s *stubStore) FetchRecords(_ context.Context, form reporting.FormType) ([]reporting.Record, error) {
	return s.records[form], nil
}

func (s *stubStore) DeleteRecords(_ context.Context, form reporting.FormType, ids []int) (int64, error) {
	s.deleted = append(s.deleted, ids)
	kept := s.records[form][:0:0]
	drop := make(map[int]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	for _, r := range s.records[form] {
		if !drop[r.ID] {
			kept = append(kept, r)
		}
	}
	deleted := int64(len(s.records[form]) - len(kept))
	s.records[form] = kept
	return deleted, nil
}

type stubMailer struct {
	to    string
	title string
	file  *export.File
}

func (m *stubMailer) SendReport(toEmail, reportTitle string, file *export.File) error {
	m.to = toEmail
	m.title = reportTitle
	m.file = file
	return nil
}

func noteRecord(id int, loc, dept string, at time.Time) reporting.Record {
	return reporting.Record{
		ID:          id,
		Location:    loc,
		SubmittedBy: "jordan",
		SubmittedAt: at,
		Values:      map[string]any{"department": dept, "note_type": "Blocked Exit"},
	}
}

func newTestReportService(t *testing.T) (IReportService, *stubStore, *stubMailer) {
	t.Helper()
	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	store := &stubStore{records: map[reporting.FormType][]reporting.Record{
		reporting.FormViolationNotes: {
			noteRecord(1, "Site #2", "Safety", base),
			noteRecord(2, "Site #10", "Operations", base.Add(time.Hour)),
			noteRecord(3, "Site #2", "Safety", base.Add(2*time.Hour)),
		},
	}}
	mailerStub := &stubMailer{}
	svc := NewReportService(store, mailerStub,
		config.AppConfig{BaseURL: "http://localhost:3000"},
		config.ReportConfig{Timezone: "UTC"},
	)
	return svc, store, mailerStub
}

func TestReportServiceGenerateFiltersAndSorts(t *testing.T) {
	svc, _, _ := newTestReportService(t)

	res, err := svc.Generate(context.Background(), reporting.FormViolationNotes, &dto.GenerateReportRequest{
		Filters: map[string][]string{"department": {"Safety"}},
		SortKey: "oldest",
	})
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	assert.Equal(t, 1, res.Records[0].Id)
	assert.Equal(t, 3, res.Records[1].Id)
	assert.Equal(t, 2, res.Total)
}

func TestReportServiceGenerateRejectsBadDates(t *testing.T) {
	svc, _, _ := newTestReportService(t)

	_, err := svc.Generate(context.Background(), reporting.FormViolationNotes, &dto.GenerateReportRequest{
		StartDate: "2026-06-02",
		EndDate:   "2026-06-01",
	})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestReportServiceUnknownForm(t *testing.T) {
	svc, _, _ := newTestReportService(t)

	_, err := svc.Generate(context.Background(), reporting.FormType("payroll"), &dto.GenerateReportRequest{})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestReportServiceDeleteFlow(t *testing.T) {
	svc, store, _ := newTestReportService(t)
	ctx := context.Background()
	form := reporting.FormViolationNotes

	_, err := svc.Generate(ctx, form, &dto.GenerateReportRequest{})
	require.NoError(t, err)

	_, err = svc.SetSelectMode(form, true)
	require.NoError(t, err)
	sum, err := svc.SelectAll(form, &dto.SelectAllRequest{On: true})
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Count)

	// Without confirmation nothing is deleted.
	_, err = svc.DeleteSelected(ctx, form, &dto.DeleteSelectedRequest{Confirm: false})
	require.Error(t, err)
	assert.Empty(t, store.deleted)

	res, err := svc.DeleteSelected(ctx, form, &dto.DeleteSelectedRequest{Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Deleted)
	assert.Empty(t, store.records[form])
}

func TestReportServiceExportBuildsArtifact(t *testing.T) {
	svc, _, _ := newTestReportService(t)
	ctx := context.Background()
	form := reporting.FormViolationNotes

	_, err := svc.Generate(ctx, form, &dto.GenerateReportRequest{})
	require.NoError(t, err)

	file, err := svc.Export(ctx, form, &dto.ExportRequest{Kind: "document", Scope: "all"})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.MIME)
	assert.Contains(t, file.Name, ".pdf")
	assert.NotEmpty(t, file.Data)
}

func TestReportServiceExportLinksPhotosUnderAPIPrefix(t *testing.T) {
	svc, store, _ := newTestReportService(t)
	ctx := context.Background()
	form := reporting.FormViolationNotes

	rec := noteRecord(4, "Site #2", "Safety", time.Date(2026, 6, 1, 13, 0, 0, 0, time.UTC))
	rec.HasImage = true
	store.records[form] = append(store.records[form], rec)

	_, err := svc.Generate(ctx, form, &dto.GenerateReportRequest{})
	require.NoError(t, err)

	file, err := svc.Export(ctx, form, &dto.ExportRequest{Kind: "spreadsheet", Scope: "all"})
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("All Records")
	require.NoError(t, err)

	// The photo hyperlink has to match the route the server actually
	// registers, which lives under the /api group.
	found := false
	for i, row := range rows {
		for j, v := range row {
			if v != "View Photo" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			ok, target, err := wb.GetCellHyperLink("All Records", cell)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "http://localhost:3000/api/records/v1/notes/4/image", target)
			found = true
		}
	}
	assert.True(t, found, "expected a View Photo cell on the All Records sheet")
}

func TestReportServiceExportNothingSelected(t *testing.T) {
	svc, _, _ := newTestReportService(t)
	ctx := context.Background()
	form := reporting.FormViolationNotes

	_, err := svc.Generate(ctx, form, &dto.GenerateReportRequest{})
	require.NoError(t, err)

	_, err = svc.Export(ctx, form, &dto.ExportRequest{Kind: "spreadsheet", Scope: "selected"})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "nothing to export", appErr.Message)
}

func TestReportServiceEmailExportAttachesFile(t *testing.T) {
	svc, _, mailerStub := newTestReportService(t)
	ctx := context.Background()
	form := reporting.FormViolationNotes

	_, err := svc.Generate(ctx, form, &dto.GenerateReportRequest{})
	require.NoError(t, err)

	err = svc.EmailExport(ctx, form, &dto.EmailExportRequest{
		To:   "ops@example.com",
		Kind: "spreadsheet",
	})
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", mailerStub.to)
	require.NotNil(t, mailerStub.file)
	assert.Contains(t, mailerStub.file.Name, ".xlsx")
}
