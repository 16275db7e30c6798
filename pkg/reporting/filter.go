package reporting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FilterSpec is the combination of categorical allow-lists and an
// inclusive date range, built fresh from UI state on every report
// generation. An absent or empty allow-list means "all values pass".
type FilterSpec struct {
	// Allowed maps field name -> allowed values. The pseudo-fields
	// "location" and "submitted_by" address the record envelope; any
	// other name addresses a schema field. Unknown names are ignored.
	Allowed map[string][]string

	// StartDate and EndDate bound SubmittedAt inclusively. EndDate is
	// inclusive through the end of its calendar day, not just midnight.
	StartDate *time.Time
	EndDate   *time.Time
}

// Allow adds an allow-list for a field, replacing any existing one.
func (s *FilterSpec) Allow(field string, values ...string) {
	if s.Allowed == nil {
		s.Allowed = make(map[string][]string)
	}
	s.Allowed[field] = values
}

// endOfDay returns the last nanosecond of t's calendar day in t's location.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func (s FilterSpec) matchesDate(at time.Time) bool {
	if s.StartDate != nil && at.Before(*s.StartDate) {
		return false
	}
	if s.EndDate != nil && at.After(endOfDay(*s.EndDate)) {
		return false
	}
	return true
}

func (s FilterSpec) matchesField(r Record, field string, allowed []string) bool {
	// Empty allow-list is "no restriction".
	if len(allowed) == 0 {
		return true
	}

	var value string
	switch field {
	case "location":
		value = r.Location
	case "submitted_by":
		value = r.SubmittedBy
	default:
		// A record with no value for an optional field is never excluded
		// by that field's filter.
		if !r.HasValue(field) {
			return true
		}
		value = r.StringValue(field)
	}
	if value == "" {
		return true
	}

	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

// Matches reports whether a single record satisfies every predicate.
func (s FilterSpec) Matches(r Record) bool {
	if !s.matchesDate(r.SubmittedAt) {
		return false
	}
	for field, allowed := range s.Allowed {
		if !s.matchesField(r, field, allowed) {
			return false
		}
	}
	return true
}

// Filter returns the records matching spec, preserving input order.
// The result is a fresh slice; the input is never mutated.
func Filter(records []Record, spec FilterSpec) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if spec.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Describe renders the filter as the one-line summary printed on exports,
// e.g. "Sites: Site #1, Site #4 | Date Range: 2024-01-03 to 2024-01-08".
func (s FilterSpec) Describe() string {
	var parts []string

	fields := make([]string, 0, len(s.Allowed))
	for field := range s.Allowed {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		values := s.Allowed[field]
		if len(values) == 0 {
			continue
		}
		shown := values
		suffix := ""
		if len(shown) > 10 {
			shown = shown[:10]
			suffix = "..."
		}
		parts = append(parts, fmt.Sprintf("%s: %s%s", describeField(field), strings.Join(shown, ", "), suffix))
	}

	switch {
	case s.StartDate != nil && s.EndDate != nil:
		parts = append(parts, fmt.Sprintf("Date Range: %s to %s",
			s.StartDate.Format("2006-01-02"), s.EndDate.Format("2006-01-02")))
	case s.StartDate != nil:
		parts = append(parts, "Date Range: from "+s.StartDate.Format("2006-01-02"))
	case s.EndDate != nil:
		parts = append(parts, "Date Range: through "+s.EndDate.Format("2006-01-02"))
	default:
		parts = append(parts, "Date Range: All dates")
	}

	return strings.Join(parts, " | ")
}

func describeField(field string) string {
	switch field {
	case "location":
		return "Sites"
	case "submitted_by":
		return "Submitted By"
	}
	label := strings.ReplaceAll(field, "_", " ")
	return cases.Title(language.English).String(label)
}
