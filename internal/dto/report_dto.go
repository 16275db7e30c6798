package dto

// GenerateReportRequest refetches and rebuilds the displayed list.
// Filters maps field names to allowed values; an empty list for a
// field means that field is unconstrained. Dates are YYYY-MM-DD.
type GenerateReportRequest struct {
	Filters   map[string][]string `json:"filters"`
	StartDate string              `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string              `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	SortKey   string              `json:"sort_key"`
}

type ResortRequest struct {
	SortKey string `json:"sort_key" validate:"required"`
}

type ToggleSelectionRequest struct {
	Id int `json:"id" validate:"required"`
}

type SelectAllRequest struct {
	On bool `json:"on"`
}

type DeleteSelectedRequest struct {
	Confirm bool `json:"confirm"`
}

type ExportRequest struct {
	Kind  string `json:"kind" validate:"required,oneof=spreadsheet document"`
	Scope string `json:"scope" validate:"omitempty,oneof=all selected"`
}

type EmailExportRequest struct {
	To    string `json:"to" validate:"required,email"`
	Kind  string `json:"kind" validate:"required,oneof=spreadsheet document"`
	Scope string `json:"scope" validate:"omitempty,oneof=all selected"`
}

type SelectionSummaryResponse struct {
	Count        int  `json:"count"`
	AllSelected  bool `json:"all_selected"`
	NoneSelected bool `json:"none_selected"`
	SelectMode   bool `json:"select_mode"`
}

type ReportResponse struct {
	Records   []RecordResponse         `json:"records"`
	Total     int                      `json:"total"`
	Selection SelectionSummaryResponse `json:"selection"`
}

type DeleteSelectedResponse struct {
	Deleted int64 `json:"deleted"`
}
