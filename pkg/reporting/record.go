package reporting

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is the flat list-view shape every form type reduces to. Values
// holds the schema-described fields: strings for categorical/text/date
// fields, int for numeric fields, []string for tag fields. A missing key
// means the submitter left the field blank.
type Record struct {
	ID          int
	Location    string
	SubmittedBy string
	SubmittedAt time.Time
	HasImage    bool
	Values      map[string]any
}

// Label returns the record's headline for detail blocks and list rows.
func (r Record) Label(schema *Schema) string {
	if schema != nil && schema.PrimaryField != "" {
		if v := r.StringValue(schema.PrimaryField); v != "" {
			return v
		}
		return "Unknown"
	}
	return r.Location
}

// StringValue returns the scalar value for a field, "" when absent.
func (r Record) StringValue(name string) string {
	v, ok := r.Values[name]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []string:
		return strings.Join(t, ", ")
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.Itoa(int(t))
	case time.Time:
		return t.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", t)
	}
}

// TagValues returns the tag list for a field, nil when absent.
func (r Record) TagValues(name string) []string {
	v, ok := r.Values[name]
	if !ok {
		return nil
	}
	if tags, ok := v.([]string); ok {
		return tags
	}
	return nil
}

// IntValue returns the numeric value for a field, 0 when absent or
// unparseable. Missing numeric ranks sort last by contract.
func (r Record) IntValue(name string) int {
	v, ok := r.Values[name]
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case string:
		n, _ := strconv.Atoi(t)
		return n
	}
	return 0
}

// HasValue reports whether the record carries any value for a field.
// Blank strings and empty tag lists count as "no value".
func (r Record) HasValue(name string) bool {
	v, ok := r.Values[name]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		return t != ""
	case []string:
		return len(t) > 0
	}
	return true
}

// locationRank extracts the numeric part of a site identifier ("Site #12",
// "Site 12" or "12"). ok is false for non-numeric locations.
func locationRank(loc string) (int, bool) {
	s := strings.TrimSpace(loc)
	s = strings.TrimSpace(strings.TrimPrefix(s, "Site"))
	s = strings.TrimSpace(strings.TrimPrefix(s, "#"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
