package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id int, dept string, day string) Record {
	ts, _ := time.Parse("2006-01-02", day)
	return Record{
		ID:          id,
		Location:    "Site 1",
		SubmittedAt: ts,
		Values:      map[string]any{"department": dept},
	}
}

func sampleRecords() []Record {
	return []Record{
		rec(1, "Safety", "2024-01-05"),
		rec(2, "Ops", "2024-01-10"),
		rec(3, "Safety", "2024-01-01"),
	}
}

func date(day string) *time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestFilterEmptySpecPassesEverything(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, FilterSpec{})
	require.Len(t, got, 3)
	// Order preserved, input untouched.
	assert.Equal(t, []int{1, 2, 3}, ids(got))
	assert.Equal(t, []int{1, 2, 3}, ids(records))
}

func TestFilterCategoricalMembership(t *testing.T) {
	spec := FilterSpec{}
	spec.Allow("department", "Safety")

	got := Filter(sampleRecords(), spec)
	assert.Equal(t, []int{1, 3}, ids(got))
}

func TestFilterEmptyAllowListMeansAll(t *testing.T) {
	spec := FilterSpec{Allowed: map[string][]string{"department": {}}}
	got := Filter(sampleRecords(), spec)
	assert.Len(t, got, 3)
}

func TestFilterMissingFieldValueAlwaysPasses(t *testing.T) {
	records := sampleRecords()
	records = append(records, Record{ID: 4, SubmittedAt: *date("2024-01-06"), Values: map[string]any{}})

	spec := FilterSpec{}
	spec.Allow("department", "Accounting")

	got := Filter(records, spec)
	// Only the record with no department survives an Accounting-only filter.
	assert.Equal(t, []int{4}, ids(got))
}

func TestFilterUnknownFieldIgnored(t *testing.T) {
	spec := FilterSpec{}
	spec.Allow("no_such_field", "x")
	got := Filter(sampleRecords(), spec)
	assert.Len(t, got, 3)
}

func TestFilterDateRangeEndInclusiveThroughEndOfDay(t *testing.T) {
	records := sampleRecords()
	spec := FilterSpec{StartDate: date("2024-01-03"), EndDate: date("2024-01-08")}

	got := Filter(records, spec)
	require.Equal(t, []int{1}, ids(got))

	// A record late on the end day still passes.
	late := Record{ID: 9, SubmittedAt: date("2024-01-08").Add(23*time.Hour + 59*time.Minute)}
	got = Filter(append(records, late), spec)
	assert.Equal(t, []int{1, 9}, ids(got))

	// Just past midnight of the next day does not.
	past := Record{ID: 10, SubmittedAt: date("2024-01-09").Add(time.Minute)}
	got = Filter(append(records, past), spec)
	assert.Equal(t, []int{1}, ids(got))
}

func TestFilterIsSubsequence(t *testing.T) {
	records := []Record{
		rec(5, "Safety", "2024-02-01"),
		rec(2, "Ops", "2024-02-02"),
		rec(8, "Safety", "2024-02-03"),
		rec(1, "Safety", "2024-02-04"),
	}
	spec := FilterSpec{}
	spec.Allow("department", "Safety")

	got := Filter(records, spec)
	assert.Equal(t, []int{5, 8, 1}, ids(got))
}

func TestFilterByLocation(t *testing.T) {
	records := sampleRecords()
	records[1].Location = "Site 2"

	spec := FilterSpec{}
	spec.Allow("location", "Site 2")

	got := Filter(records, spec)
	assert.Equal(t, []int{2}, ids(got))
}

func TestDescribe(t *testing.T) {
	spec := FilterSpec{StartDate: date("2024-01-03"), EndDate: date("2024-01-08")}
	spec.Allow("location", "Site 1", "Site 4")

	desc := spec.Describe()
	assert.Contains(t, desc, "Sites: Site 1, Site 4")
	assert.Contains(t, desc, "Date Range: 2024-01-03 to 2024-01-08")

	assert.Contains(t, FilterSpec{}.Describe(), "All dates")
}

func ids(records []Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
