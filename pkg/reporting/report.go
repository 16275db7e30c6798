package reporting

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrStale marks a Generate whose fetch was overtaken by a newer one.
	// The older response is discarded so it can never overwrite newer state.
	ErrStale = errors.New("report generation superseded by a newer request")

	// ErrNoSelection guards bulk actions against an empty selection.
	ErrNoSelection = errors.New("no records selected")

	// ErrConfirmationRequired is returned when a delete arrives without
	// the explicit confirmation flag.
	ErrConfirmationRequired = errors.New("delete requires confirmation")

	ErrUnknownScope   = errors.New("unknown export scope")
	ErrUnknownSortKey = errors.New("unknown sort key")
)

// ExportScope selects which subset of the displayed list an export covers.
type ExportScope string

const (
	ScopeAll      ExportScope = "all"
	ScopeSelected ExportScope = "selected"
)

// Store is the record-store collaborator the report depends on.
type Store interface {
	FetchRecords(ctx context.Context, form FormType) ([]Record, error)
	DeleteRecords(ctx context.Context, form FormType, ids []int) (int64, error)
}

// Report owns the full screen state for one form type: the fetched set,
// the displayed (filtered+sorted) list, the selection, and select mode.
// All mutation goes through its methods; collaborator failures leave the
// prior state untouched.
type Report struct {
	mu     sync.Mutex
	schema *Schema
	store  Store

	spec    FilterSpec
	sortKey SortKey

	all       []Record
	displayed []Record
	selection *Selection

	selectMode bool
	generation uint64
}

func NewReport(schema *Schema, store Store) *Report {
	return &Report{
		schema:    schema,
		store:     store,
		sortKey:   SortNewest,
		selection: NewSelection(),
	}
}

func (r *Report) Schema() *Schema {
	return r.schema
}

// Generate refetches, filters and sorts. Overlapping calls are serialized
// by generation: whichever call started last wins, and earlier in-flight
// responses return ErrStale without touching state. The selection is
// pruned to the new displayed list on every successful generation.
func (r *Report) Generate(ctx context.Context, spec FilterSpec, key SortKey) ([]Record, error) {
	if key == "" {
		key = SortNewest
	}
	if !r.schema.HasSortKey(key) {
		return nil, ErrUnknownSortKey
	}

	r.mu.Lock()
	r.generation++
	gen := r.generation
	r.mu.Unlock()

	records, err := r.store.FetchRecords(ctx, r.schema.Form)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.generation {
		return nil, ErrStale
	}

	r.spec = spec
	r.sortKey = key
	r.all = records
	r.displayed = Sort(Filter(records, spec), key)
	r.selection.Prune(r.displayed)

	return copyRecords(r.displayed), nil
}

// Resort reorders the current displayed list without refetching.
func (r *Report) Resort(key SortKey) ([]Record, error) {
	if !r.schema.HasSortKey(key) {
		return nil, ErrUnknownSortKey
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sortKey = key
	r.displayed = Sort(r.displayed, key)
	return copyRecords(r.displayed), nil
}

// Displayed returns a copy of the current filtered+sorted list.
func (r *Report) Displayed() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyRecords(r.displayed)
}

// Spec returns the filter spec of the last successful generation.
func (r *Report) Spec() FilterSpec {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.spec
}

func (r *Report) EnterSelectMode() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selectMode = true
}

// ExitSelectMode always clears the selection.
func (r *Report) ExitSelectMode() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selectMode = false
	r.selection.Clear()
}

func (r *Report) InSelectMode() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selectMode
}

func (r *Report) ToggleSelection(id int) SelectionSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selection.Toggle(id)
	return r.selection.Summary(r.displayed)
}

func (r *Report) SelectAll(on bool) SelectionSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selection.SelectAll(r.displayed, on)
	return r.selection.Summary(r.displayed)
}

func (r *Report) ClearSelection() SelectionSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selection.Clear()
	return r.selection.Summary(r.displayed)
}

func (r *Report) SelectionSummary() SelectionSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selection.Summary(r.displayed)
}

// DeleteSelected deletes the selected ids through the store, then
// regenerates from a full refetch rather than splicing locally, so the
// displayed list can never diverge from the backing store. On store
// failure the displayed list and selection are left as they were.
func (r *Report) DeleteSelected(ctx context.Context, confirm bool) (int64, error) {
	r.mu.Lock()
	ids := r.selection.IDs()
	spec := r.spec
	key := r.sortKey
	r.mu.Unlock()

	if len(ids) == 0 {
		return 0, ErrNoSelection
	}
	if !confirm {
		return 0, ErrConfirmationRequired
	}

	deleted, err := r.store.DeleteRecords(ctx, r.schema.Form, ids)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	r.selection.Clear()
	r.mu.Unlock()

	if _, err := r.Generate(ctx, spec, key); err != nil && !errors.Is(err, ErrStale) {
		return deleted, err
	}
	return deleted, nil
}

// ExportRecords resolves the record subset for an export scope.
func (r *Report) ExportRecords(scope ExportScope) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch scope {
	case ScopeAll, "":
		return copyRecords(r.displayed), nil
	case ScopeSelected:
		out := make([]Record, 0, len(r.displayed))
		for _, rec := range r.displayed {
			if r.selection.Has(rec.ID) {
				out = append(out, rec)
			}
		}
		return out, nil
	default:
		return nil, ErrUnknownScope
	}
}

func copyRecords(in []Record) []Record {
	out := make([]Record, len(in))
	copy(out, in)
	return out
}
