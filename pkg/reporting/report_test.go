package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store; hooks let tests interleave calls.
type fakeStore struct {
	records   []Record
	fetchErr  error
	deleteErr error
	onFetch   func()
	deleted   [][]int
}

func (s *fakeStore) FetchRecords(_ context.Context, _ FormType) ([]Record, error) {
	if s.onFetch != nil {
		s.onFetch()
	}
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return copyRecords(s.records), nil
}

func (s *fakeStore) DeleteRecords(_ context.Context, _ FormType, ids []int) (int64, error) {
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}
	s.deleted = append(s.deleted, ids)
	var kept []Record
	var n int64
	for _, r := range s.records {
		drop := false
		for _, id := range ids {
			if r.ID == id {
				drop = true
				n++
				break
			}
		}
		if !drop {
			kept = append(kept, r)
		}
	}
	s.records = kept
	return n, nil
}

func newTestReport(records []Record) (*Report, *fakeStore) {
	store := &fakeStore{records: records}
	schema, _ := SchemaFor(FormViolationNotes)
	return NewReport(schema, store), store
}

func TestReportGenerate(t *testing.T) {
	r, _ := newTestReport(sampleRecords())

	spec := FilterSpec{}
	spec.Allow("department", "Safety")

	got, err := r.Generate(context.Background(), spec, SortOldest)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, ids(got))
	assert.Equal(t, []int{3, 1}, ids(r.Displayed()))
}

func TestReportGenerateRejectsUnknownSortKey(t *testing.T) {
	r, _ := newTestReport(sampleRecords())
	_, err := r.Generate(context.Background(), FilterSpec{}, SortKey("importance"))
	assert.ErrorIs(t, err, ErrUnknownSortKey)
}

func TestReportGenerateFailureKeepsPriorState(t *testing.T) {
	r, store := newTestReport(sampleRecords())
	_, err := r.Generate(context.Background(), FilterSpec{}, SortNewest)
	require.NoError(t, err)
	r.SelectAll(true)

	store.fetchErr = errors.New("store unavailable")
	_, err = r.Generate(context.Background(), FilterSpec{}, SortOldest)
	require.Error(t, err)

	assert.Equal(t, []int{2, 1, 3}, ids(r.Displayed()))
	assert.Equal(t, 3, r.SelectionSummary().Count)
}

func TestReportStaleGenerationDiscarded(t *testing.T) {
	r, store := newTestReport(sampleRecords())

	var second []Record
	fired := false
	store.onFetch = func() {
		if fired {
			return
		}
		fired = true
		// A newer request starts and completes while the first fetch is
		// still in flight.
		var err error
		second, err = r.Generate(context.Background(), FilterSpec{}, SortOldest)
		require.NoError(t, err)
	}

	_, err := r.Generate(context.Background(), FilterSpec{}, SortNewest)
	assert.ErrorIs(t, err, ErrStale)

	// The newer response owns the displayed list.
	assert.Equal(t, ids(second), ids(r.Displayed()))
	assert.Equal(t, []int{3, 1, 2}, ids(r.Displayed()))
}

func TestReportSelectionPrunedOnRegenerate(t *testing.T) {
	r, _ := newTestReport(sampleRecords())

	spec := FilterSpec{}
	spec.Allow("department", "Safety")
	_, err := r.Generate(context.Background(), spec, SortNewest)
	require.NoError(t, err)

	sum := r.SelectAll(true)
	require.Equal(t, 2, sum.Count)

	// Filter changes so neither selected record is displayed anymore;
	// the selection is pruned to empty rather than carrying stale ids.
	opsOnly := FilterSpec{}
	opsOnly.Allow("department", "Ops")
	_, err = r.Generate(context.Background(), opsOnly, SortNewest)
	require.NoError(t, err)

	sum = r.SelectionSummary()
	assert.Equal(t, 0, sum.Count)
	assert.True(t, sum.NoneSelected)
}

func TestReportExitSelectModeClearsSelection(t *testing.T) {
	r, _ := newTestReport(sampleRecords())
	_, err := r.Generate(context.Background(), FilterSpec{}, SortNewest)
	require.NoError(t, err)

	r.EnterSelectMode()
	r.SelectAll(true)
	require.True(t, r.InSelectMode())

	r.ExitSelectMode()
	assert.False(t, r.InSelectMode())
	assert.Equal(t, 0, r.SelectionSummary().Count)
}

func TestReportDeleteSelectedGuards(t *testing.T) {
	r, _ := newTestReport(sampleRecords())
	_, err := r.Generate(context.Background(), FilterSpec{}, SortNewest)
	require.NoError(t, err)

	_, err = r.DeleteSelected(context.Background(), true)
	assert.ErrorIs(t, err, ErrNoSelection)

	r.ToggleSelection(1)
	_, err = r.DeleteSelected(context.Background(), false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
}

func TestReportDeleteSelectedRefetches(t *testing.T) {
	r, store := newTestReport(sampleRecords())
	_, err := r.Generate(context.Background(), FilterSpec{}, SortNewest)
	require.NoError(t, err)

	r.ToggleSelection(1)
	r.ToggleSelection(3)

	deleted, err := r.DeleteSelected(context.Background(), true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)
	assert.Equal(t, [][]int{{1, 3}}, store.deleted)

	// Displayed reflects the refetched store, selection is gone.
	assert.Equal(t, []int{2}, ids(r.Displayed()))
	assert.Equal(t, 0, r.SelectionSummary().Count)
}

func TestReportDeleteFailureLeavesStateAlone(t *testing.T) {
	r, store := newTestReport(sampleRecords())
	_, err := r.Generate(context.Background(), FilterSpec{}, SortNewest)
	require.NoError(t, err)

	r.ToggleSelection(1)
	store.deleteErr = errors.New("store unavailable")

	_, err = r.DeleteSelected(context.Background(), true)
	require.Error(t, err)
	assert.Equal(t, []int{2, 1, 3}, ids(r.Displayed()))
	assert.Equal(t, 1, r.SelectionSummary().Count)
}

func TestReportExportScopes(t *testing.T) {
	r, _ := newTestReport(sampleRecords())
	_, err := r.Generate(context.Background(), FilterSpec{}, SortNewest)
	require.NoError(t, err)

	all, err := r.ExportRecords(ScopeAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	r.ToggleSelection(3)
	selected, err := r.ExportRecords(ScopeSelected)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids(selected))

	_, err = r.ExportRecords(ExportScope("everything"))
	assert.ErrorIs(t, err, ErrUnknownScope)
}

func TestReportResort(t *testing.T) {
	r, _ := newTestReport(sampleRecords())
	_, err := r.Generate(context.Background(), FilterSpec{}, SortNewest)
	require.NoError(t, err)

	got, err := r.Resort(SortOldest)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ids(got))
}
