package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func displayed(idList ...int) []Record {
	out := make([]Record, len(idList))
	for i, id := range idList {
		out[i] = Record{ID: id}
	}
	return out
}

func TestSelectionToggle(t *testing.T) {
	s := NewSelection()
	d := displayed(1, 2, 3)

	s.Toggle(2)
	assert.True(t, s.Has(2))
	assert.Equal(t, SelectionSummary{Count: 1}, s.Summary(d))

	s.Toggle(2)
	assert.False(t, s.Has(2))
	assert.Equal(t, SelectionSummary{Count: 0, NoneSelected: true}, s.Summary(d))
}

func TestSelectionSelectAllThenClear(t *testing.T) {
	s := NewSelection()
	d := displayed(1, 2, 3)

	s.SelectAll(d, true)
	sum := s.Summary(d)
	assert.True(t, sum.AllSelected)
	assert.Equal(t, len(d), sum.Count)

	s.Clear()
	sum = s.Summary(d)
	assert.Equal(t, 0, sum.Count)
	assert.True(t, sum.NoneSelected)
}

func TestSelectionIndeterminate(t *testing.T) {
	s := NewSelection()
	d := displayed(1, 2, 3)

	s.Toggle(1)
	sum := s.Summary(d)
	assert.False(t, sum.AllSelected)
	assert.False(t, sum.NoneSelected)
	assert.Equal(t, 1, sum.Count)
}

func TestSelectionAllSelectedRequiresNonEmptyDisplay(t *testing.T) {
	s := NewSelection()
	assert.False(t, s.Summary(nil).AllSelected)

	s.Toggle(1)
	assert.False(t, s.Summary(nil).AllSelected)
}

func TestSelectionSelectAllOffOnlyRemovesDisplayed(t *testing.T) {
	s := NewSelection()
	s.Toggle(1)
	s.Toggle(9) // not displayed

	s.SelectAll(displayed(1, 2), false)
	assert.False(t, s.Has(1))
	assert.True(t, s.Has(9))
}

func TestSelectionPrune(t *testing.T) {
	s := NewSelection()
	s.SelectAll(displayed(1, 3), true)

	s.Prune(displayed(2))
	assert.Equal(t, 0, s.Summary(displayed(2)).Count)
}

func TestSelectionIDsSorted(t *testing.T) {
	s := NewSelection()
	s.Toggle(5)
	s.Toggle(1)
	s.Toggle(3)
	assert.Equal(t, []int{1, 3, 5}, s.IDs())
}
