package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mightyops-be/internal/config"
	"mightyops-be/internal/dto"
	"mightyops-be/internal/metrics"
	"mightyops-be/internal/pkg/mailer"
	"mightyops-be/internal/pkg/serverutils"
	"mightyops-be/pkg/export"
	"mightyops-be/pkg/reporting"

	"github.com/gofiber/fiber/v2"
)

type IReportService interface {
	Generate(ctx context.Context, form reporting.FormType, req *dto.GenerateReportRequest) (*dto.ReportResponse, error)
	Resort(ctx context.Context, form reporting.FormType, req *dto.ResortRequest) (*dto.ReportResponse, error)

	SetSelectMode(form reporting.FormType, on bool) (*dto.SelectionSummaryResponse, error)
	ToggleSelection(form reporting.FormType, req *dto.ToggleSelectionRequest) (*dto.SelectionSummaryResponse, error)
	SelectAll(form reporting.FormType, req *dto.SelectAllRequest) (*dto.SelectionSummaryResponse, error)

	DeleteSelected(ctx context.Context, form reporting.FormType, req *dto.DeleteSelectedRequest) (*dto.DeleteSelectedResponse, error)

	Export(ctx context.Context, form reporting.FormType, req *dto.ExportRequest) (*export.File, error)
	EmailExport(ctx context.Context, form reporting.FormType, req *dto.EmailExportRequest) error
}

// reportService holds one live Report per form. Screen state (filters,
// sort, selection) is therefore shared by everyone looking at a form's
// dashboard, matching the single-operator usage this tool is built for.
type reportService struct {
	reports      map[reporting.FormType]*reporting.Report
	emailService mailer.IEmailService
	baseURL      string
	location     *time.Location
}

func NewReportService(store reporting.Store, emailService mailer.IEmailService, appCfg config.AppConfig, reportCfg config.ReportConfig) IReportService {
	loc, err := time.LoadLocation(reportCfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	reports := make(map[reporting.FormType]*reporting.Report)
	for _, form := range reporting.Forms() {
		schema, _ := reporting.SchemaFor(form)
		reports[form] = reporting.NewReport(schema, store)
	}

	return &reportService{
		reports:      reports,
		emailService: emailService,
		baseURL:      appCfg.BaseURL,
		location:     loc,
	}
}

func (s *reportService) report(form reporting.FormType) (*reporting.Report, error) {
	rep, ok := s.reports[form]
	if !ok {
		return nil, serverutils.NotFound("unknown form")
	}
	return rep, nil
}

func (s *reportService) parseSpec(req *dto.GenerateReportRequest) (reporting.FilterSpec, error) {
	spec := reporting.FilterSpec{Allowed: req.Filters}

	if req.StartDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.StartDate, s.location)
		if err != nil {
			return spec, serverutils.BadRequest("invalid start_date")
		}
		spec.StartDate = &t
	}
	if req.EndDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.EndDate, s.location)
		if err != nil {
			return spec, serverutils.BadRequest("invalid end_date")
		}
		spec.EndDate = &t
	}
	if spec.StartDate != nil && spec.EndDate != nil && spec.EndDate.Before(*spec.StartDate) {
		return spec, serverutils.BadRequest("end_date is before start_date")
	}
	return spec, nil
}

func (s *reportService) response(rep *reporting.Report, records []reporting.Record) *dto.ReportResponse {
	return &dto.ReportResponse{
		Records:   toRecordResponses(records),
		Total:     len(records),
		Selection: s.summary(rep),
	}
}

func (s *reportService) summary(rep *reporting.Report) dto.SelectionSummaryResponse {
	sum := rep.SelectionSummary()
	return dto.SelectionSummaryResponse{
		Count:        sum.Count,
		AllSelected:  sum.AllSelected,
		NoneSelected: sum.NoneSelected,
		SelectMode:   rep.InSelectMode(),
	}
}

func (s *reportService) Generate(ctx context.Context, form reporting.FormType, req *dto.GenerateReportRequest) (*dto.ReportResponse, error) {
	rep, err := s.report(form)
	if err != nil {
		return nil, err
	}

	spec, err := s.parseSpec(req)
	if err != nil {
		return nil, err
	}

	records, err := rep.Generate(ctx, spec, reporting.SortKey(req.SortKey))
	if err != nil {
		switch {
		case errors.Is(err, reporting.ErrUnknownSortKey):
			return nil, serverutils.BadRequest("unknown sort key")
		case errors.Is(err, reporting.ErrStale):
			return nil, serverutils.NewAppError(fiber.StatusConflict, "superseded by a newer report request", err)
		}
		return nil, err
	}

	metrics.ReportsGenerated.WithLabelValues(string(form)).Inc()
	return s.response(rep, records), nil
}

func (s *reportService) Resort(ctx context.Context, form reporting.FormType, req *dto.ResortRequest) (*dto.ReportResponse, error) {
	rep, err := s.report(form)
	if err != nil {
		return nil, err
	}
	records, err := rep.Resort(reporting.SortKey(req.SortKey))
	if err != nil {
		if errors.Is(err, reporting.ErrUnknownSortKey) {
			return nil, serverutils.BadRequest("unknown sort key")
		}
		return nil, err
	}
	return s.response(rep, records), nil
}

func (s *reportService) SetSelectMode(form reporting.FormType, on bool) (*dto.SelectionSummaryResponse, error) {
	rep, err := s.report(form)
	if err != nil {
		return nil, err
	}
	if on {
		rep.EnterSelectMode()
	} else {
		rep.ExitSelectMode()
	}
	sum := s.summary(rep)
	return &sum, nil
}

func (s *reportService) ToggleSelection(form reporting.FormType, req *dto.ToggleSelectionRequest) (*dto.SelectionSummaryResponse, error) {
	rep, err := s.report(form)
	if err != nil {
		return nil, err
	}
	rep.ToggleSelection(req.Id)
	sum := s.summary(rep)
	return &sum, nil
}

func (s *reportService) SelectAll(form reporting.FormType, req *dto.SelectAllRequest) (*dto.SelectionSummaryResponse, error) {
	rep, err := s.report(form)
	if err != nil {
		return nil, err
	}
	rep.SelectAll(req.On)
	sum := s.summary(rep)
	return &sum, nil
}

func (s *reportService) DeleteSelected(ctx context.Context, form reporting.FormType, req *dto.DeleteSelectedRequest) (*dto.DeleteSelectedResponse, error) {
	rep, err := s.report(form)
	if err != nil {
		return nil, err
	}

	deleted, err := rep.DeleteSelected(ctx, req.Confirm)
	if err != nil {
		switch {
		case errors.Is(err, reporting.ErrNoSelection):
			return nil, serverutils.BadRequest("no records selected")
		case errors.Is(err, reporting.ErrConfirmationRequired):
			return nil, serverutils.BadRequest("delete requires confirmation")
		}
		return nil, err
	}

	return &dto.DeleteSelectedResponse{Deleted: deleted}, nil
}

func (s *reportService) buildExport(rep *reporting.Report, form reporting.FormType, kind, scope string) (*export.File, error) {
	records, err := rep.ExportRecords(reporting.ExportScope(scope))
	if err != nil {
		if errors.Is(err, reporting.ErrUnknownScope) {
			return nil, serverutils.BadRequest("unknown export scope")
		}
		return nil, err
	}

	file, err := export.Export(rep.Schema(), records, export.Options{
		Kind:          export.Kind(kind),
		GeneratedAt:   time.Now(),
		FilterSummary: rep.Spec().Describe(),
		Location:      s.location,
		ImageURL: func(f reporting.FormType, id int) string {
			// Must mirror the registered route, including the /api group.
			return fmt.Sprintf("%s/api/records/v1/%s/%d/image", s.baseURL, f, id)
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, export.ErrNothingToExport):
			return nil, serverutils.BadRequest("nothing to export")
		case errors.Is(err, export.ErrUnknownKind):
			return nil, serverutils.BadRequest("unknown export kind")
		}
		return nil, err
	}

	metrics.Exports.WithLabelValues(string(form), kind).Inc()
	return file, nil
}

func (s *reportService) Export(ctx context.Context, form reporting.FormType, req *dto.ExportRequest) (*export.File, error) {
	rep, err := s.report(form)
	if err != nil {
		return nil, err
	}
	return s.buildExport(rep, form, req.Kind, req.Scope)
}

func (s *reportService) EmailExport(ctx context.Context, form reporting.FormType, req *dto.EmailExportRequest) error {
	rep, err := s.report(form)
	if err != nil {
		return err
	}
	file, err := s.buildExport(rep, form, req.Kind, req.Scope)
	if err != nil {
		return err
	}
	return s.emailService.SendReport(req.To, rep.Schema().Title, file)
}
