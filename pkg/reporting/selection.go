package reporting

import "sort"

// SelectionSummary is the derived state driving the tri-state
// "select all" control: checked when AllSelected, unchecked when
// NoneSelected, indeterminate otherwise.
type SelectionSummary struct {
	Count        int  `json:"count"`
	AllSelected  bool `json:"all_selected"`
	NoneSelected bool `json:"none_selected"`
}

// Selection tracks the set of record ids marked for bulk action against
// the currently displayed list. It is not safe for concurrent use; the
// owning Report serializes access.
type Selection struct {
	ids map[int]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[int]struct{})}
}

// Toggle flips membership of id.
func (s *Selection) Toggle(id int) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

// SelectAll adds every displayed id when on, otherwise removes every
// displayed id. Ids outside displayed are left alone; Prune handles those.
func (s *Selection) SelectAll(displayed []Record, on bool) {
	for _, r := range displayed {
		if on {
			s.ids[r.ID] = struct{}{}
		} else {
			delete(s.ids, r.ID)
		}
	}
}

// Clear empties the selection unconditionally.
func (s *Selection) Clear() {
	s.ids = make(map[int]struct{})
}

// Prune drops ids that are no longer in the displayed list, so a stale id
// can never be mistaken for a visible one after the list changes.
func (s *Selection) Prune(displayed []Record) {
	visible := make(map[int]struct{}, len(displayed))
	for _, r := range displayed {
		visible[r.ID] = struct{}{}
	}
	for id := range s.ids {
		if _, ok := visible[id]; !ok {
			delete(s.ids, id)
		}
	}
}

func (s *Selection) Has(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the selected ids in ascending order.
func (s *Selection) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Summary recomputes the aggregate state from scratch; counts are never
// stored redundantly.
func (s *Selection) Summary(displayed []Record) SelectionSummary {
	sum := SelectionSummary{Count: len(s.ids)}
	sum.NoneSelected = sum.Count == 0
	if len(displayed) == 0 {
		return sum
	}
	for _, r := range displayed {
		if !s.Has(r.ID) {
			return sum
		}
	}
	sum.AllSelected = true
	return sum
}
