// Package export turns a filtered record subset into user-facing report
// artifacts: a multi-sheet xlsx workbook or a paginated pdf document.
package export

import (
	"errors"
	"fmt"
	"time"

	"mightyops-be/pkg/reporting"
)

// ErrNothingToExport is returned for an empty record set; no file is
// produced in that case.
var ErrNothingToExport = errors.New("nothing to export")

var ErrUnknownKind = errors.New("unknown export kind")

// Kind selects the artifact format.
type Kind string

const (
	KindSpreadsheet Kind = "spreadsheet"
	KindDocument    Kind = "document"
)

// File is a finished artifact ready to be downloaded or attached.
type File struct {
	Name string
	MIME string
	Data []byte
}

// Options carries everything besides the records themselves.
type Options struct {
	Kind Kind

	// GeneratedAt stamps the header and the filename; the filename date
	// is the export moment, never any record's date.
	GeneratedAt time.Time

	// FilterSummary is the applied-filter line printed on the artifact.
	FilterSummary string

	// Location is the display timezone for timestamps. Nil means UTC.
	Location *time.Location

	// ImageURL resolves the clickable photo reference for a record that
	// carries an image. Nil disables photo links.
	ImageURL func(form reporting.FormType, id int) string
}

func (o Options) location() *time.Location {
	if o.Location != nil {
		return o.Location
	}
	return time.UTC
}

// formatTimestamp matches the dashboards' record timestamp rendering.
func (o Options) formatTimestamp(t time.Time) string {
	return t.In(o.location()).Format("01/02/2006, 03:04:05 PM")
}

func (o Options) fileName(schema *reporting.Schema, ext string) string {
	return fmt.Sprintf("%s_%s.%s", schema.ReportLabel, o.GeneratedAt.In(o.location()).Format("2006-01-02"), ext)
}

// Export builds the requested artifact from records. Both producers
// refuse an empty record set with ErrNothingToExport.
func Export(schema *reporting.Schema, records []reporting.Record, opts Options) (*File, error) {
	if len(records) == 0 {
		return nil, ErrNothingToExport
	}
	switch opts.Kind {
	case KindSpreadsheet:
		return buildWorkbook(schema, records, opts)
	case KindDocument:
		return buildDocument(schema, records, opts)
	default:
		return nil, ErrUnknownKind
	}
}

// categoryCounts tallies records per category value, seeded with the
// schema's fixed ordering and extended with unseen values in first-seen
// order.
func categoryCounts(schema *reporting.Schema, records []reporting.Record) ([]string, map[string]int) {
	counts := make(map[string]int)
	order := append([]string(nil), schema.CategoryValues...)
	known := make(map[string]struct{}, len(order))
	for _, v := range order {
		known[v] = struct{}{}
	}
	for _, r := range records {
		v := r.StringValue(schema.CategoryField)
		if v == "" {
			continue
		}
		if _, ok := known[v]; !ok {
			known[v] = struct{}{}
			order = append(order, v)
		}
		counts[v]++
	}
	return order, counts
}

// sitesWithData returns the distinct locations present, ordered by site
// number where possible.
func sitesWithData(records []reporting.Record) []string {
	seen := make(map[string]struct{})
	var sites []string
	for _, r := range records {
		if r.Location == "" {
			continue
		}
		if _, ok := seen[r.Location]; !ok {
			seen[r.Location] = struct{}{}
			sites = append(sites, r.Location)
		}
	}
	sorted := reporting.Sort(recordsForLocations(sites), reporting.SortLocation)
	out := make([]string, len(sorted))
	for i, r := range sorted {
		out[i] = r.Location
	}
	return out
}

func recordsForLocations(locs []string) []reporting.Record {
	out := make([]reporting.Record, len(locs))
	for i, l := range locs {
		out[i] = reporting.Record{Location: l}
	}
	return out
}
