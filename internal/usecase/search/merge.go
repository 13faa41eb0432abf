package search

import (
	"sort"

	"github.com/harborline/invsearch/internal/domain/search/query"
	"github.com/harborline/invsearch/internal/domain/search/result"
)

// sortResults orders hits in place. The sort is stable: equal keys keep
// their adapter-concatenation order (assets, users, investments).
func sortResults(rs []result.Result, key query.SortKey, order query.Order) {
	less := lessFunc(key)
	if order == query.Desc {
		asc := less
		less = func(a, b *result.Result) bool { return asc(b, a) }
	}
	sort.SliceStable(rs, func(i, j int) bool { return less(&rs[i], &rs[j]) })
}

func lessFunc(key query.SortKey) func(a, b *result.Result) bool {
	switch key {
	case query.SortDate:
		return func(a, b *result.Result) bool { return a.CreatedAt().Before(b.CreatedAt()) }
	case query.SortName:
		return func(a, b *result.Result) bool { return a.Title() < b.Title() }
	case query.SortValue:
		return func(a, b *result.Result) bool { return a.Value() < b.Value() }
	default:
		return func(a, b *result.Result) bool { return a.Score() < b.Score() }
	}
}

// paginate slices [offset, offset+limit) out of the sorted hits.
// An offset past the end or a zero limit yields an empty page.
func paginate(rs []result.Result, offset, limit int) []result.Result {
	if offset >= len(rs) || limit <= 0 {
		return []result.Result{}
	}
	end := offset + limit
	if end > len(rs) {
		end = len(rs)
	}
	return rs[offset:end]
}
