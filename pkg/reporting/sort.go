package reporting

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the total order applied after filtering.
type SortKey string

const (
	SortNewest       SortKey = "newest"
	SortOldest       SortKey = "oldest"
	SortLocation     SortKey = "location"
	SortLocationDesc SortKey = "location-desc"
	SortDepartment   SortKey = "department"
	SortBrand        SortKey = "brand"
	SortRating       SortKey = "rating"
	SortImportance   SortKey = "importance"
)

// Fixed priority for the site-evaluation overall rating; unrated sorts last.
var ratingOrder = map[string]int{
	"Excellent": 0,
	"Good":      1,
	"Fair":      2,
	"Poor":      3,
}

func ratingRank(r Record) int {
	if rank, ok := ratingOrder[r.StringValue("q18")]; ok {
		return rank
	}
	return len(ratingOrder)
}

// Sort returns a new ordering of records under key. The input slice is
// left untouched, and ties keep their relative input order.
func Sort(records []Record, key SortKey) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	var less func(a, b Record) bool
	switch key {
	case SortNewest:
		less = func(a, b Record) bool { return a.SubmittedAt.After(b.SubmittedAt) }
	case SortOldest:
		less = func(a, b Record) bool { return a.SubmittedAt.Before(b.SubmittedAt) }
	case SortLocation:
		less = locationLess(false)
	case SortLocationDesc:
		less = locationLess(true)
	case SortDepartment:
		less = fieldLess("department")
	case SortBrand:
		less = fieldLess("competitor_brand")
	case SortRating:
		less = func(a, b Record) bool { return ratingRank(a) < ratingRank(b) }
	case SortImportance:
		less = func(a, b Record) bool {
			return a.IntValue("importance_ranking") > b.IntValue("importance_ranking")
		}
	default:
		// Unknown keys fall back to newest-first, the dashboards' default.
		less = func(a, b Record) bool { return a.SubmittedAt.After(b.SubmittedAt) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// locationLess compares site identifiers numerically when both carry a
// site number, locale-aware lexicographically otherwise.
func locationLess(desc bool) func(a, b Record) bool {
	coll := collate.New(language.English)
	return func(a, b Record) bool {
		la, okA := locationRank(a.Location)
		lb, okB := locationRank(b.Location)
		var cmp int
		switch {
		case okA && okB:
			switch {
			case la < lb:
				cmp = -1
			case la > lb:
				cmp = 1
			}
		default:
			cmp = coll.CompareString(a.Location, b.Location)
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	}
}

func fieldLess(field string) func(a, b Record) bool {
	coll := collate.New(language.English)
	return func(a, b Record) bool {
		return coll.CompareString(a.StringValue(field), b.StringValue(field)) < 0
	}
}
