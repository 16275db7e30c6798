package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortNewestOldest(t *testing.T) {
	records := sampleRecords()

	newest := Sort(records, SortNewest)
	assert.Equal(t, []int{2, 1, 3}, ids(newest))

	oldest := Sort(records, SortOldest)
	assert.Equal(t, []int{3, 1, 2}, ids(oldest))

	// Input order untouched.
	assert.Equal(t, []int{1, 2, 3}, ids(records))
}

func TestSortIsPermutationAndIdempotent(t *testing.T) {
	records := sampleRecords()
	once := Sort(records, SortNewest)
	twice := Sort(once, SortNewest)

	assert.ElementsMatch(t, ids(records), ids(once))
	assert.Equal(t, ids(once), ids(twice))
}

func TestSortStability(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []Record{
		{ID: 1, SubmittedAt: ts},
		{ID: 2, SubmittedAt: ts},
		{ID: 3, SubmittedAt: ts},
	}
	got := Sort(records, SortNewest)
	assert.Equal(t, []int{1, 2, 3}, ids(got))
}

func TestSortFilterThenOldestWorkedExample(t *testing.T) {
	records := sampleRecords()
	spec := FilterSpec{}
	spec.Allow("department", "Safety")

	got := Sort(Filter(records, spec), SortOldest)
	require.Equal(t, []int{3, 1}, ids(got))
}

func TestSortLocationNumericAware(t *testing.T) {
	records := []Record{
		{ID: 1, Location: "Site #10"},
		{ID: 2, Location: "Site #2"},
		{ID: 3, Location: "Site #1"},
	}
	asc := Sort(records, SortLocation)
	assert.Equal(t, []int{3, 2, 1}, ids(asc))

	desc := Sort(records, SortLocationDesc)
	assert.Equal(t, []int{1, 2, 3}, ids(desc))
}

func TestSortLocationLexicographicFallback(t *testing.T) {
	records := []Record{
		{ID: 1, Location: "Westside"},
		{ID: 2, Location: "Airport"},
	}
	got := Sort(records, SortLocation)
	assert.Equal(t, []int{2, 1}, ids(got))
}

func TestSortRatingOrderUnratedLast(t *testing.T) {
	records := []Record{
		{ID: 1, Values: map[string]any{"q18": "Poor"}},
		{ID: 2, Values: map[string]any{}},
		{ID: 3, Values: map[string]any{"q18": "Excellent"}},
		{ID: 4, Values: map[string]any{"q18": "Good"}},
		{ID: 5, Values: map[string]any{"q18": "Fair"}},
	}
	got := Sort(records, SortRating)
	assert.Equal(t, []int{3, 4, 5, 1, 2}, ids(got))
}

func TestSortImportanceDescendingMissingIsZero(t *testing.T) {
	records := []Record{
		{ID: 1, Values: map[string]any{"importance_ranking": 3}},
		{ID: 2, Values: map[string]any{}},
		{ID: 3, Values: map[string]any{"importance_ranking": 5}},
	}
	got := Sort(records, SortImportance)
	assert.Equal(t, []int{3, 1, 2}, ids(got))
}

func TestSortBrandLexicographic(t *testing.T) {
	records := []Record{
		{ID: 1, Values: map[string]any{"competitor_brand": "Zips"}},
		{ID: 2, Values: map[string]any{"competitor_brand": "Bluewave"}},
		{ID: 3, Values: map[string]any{}},
	}
	got := Sort(records, SortBrand)
	// Missing brand compares as the empty string, first under collation.
	assert.Equal(t, []int{3, 2, 1}, ids(got))
}
