package search

import (
	"reflect"
	"testing"
	"time"

	"github.com/harborline/invsearch/internal/domain/search/query"
	"github.com/harborline/invsearch/internal/domain/search/result"
)

func hit(id string, typ result.Type, title string, score float64, createdAt time.Time, meta result.Metadata) result.Result {
	return result.New(id, typ, title, "", score, "", "", createdAt, meta)
}

func ids(rs []result.Result) []string {
	out := make([]string, len(rs))
	for i := range rs {
		out[i] = rs[i].ID()
	}
	return out
}

func TestSortResults_DateAscending(t *testing.T) {
	rs := []result.Result{
		hit("c", result.TypeAsset, "c", 10, day(2025, time.March, 1), result.AssetMetadata{}),
		hit("a", result.TypeAsset, "a", 90, day(2025, time.January, 1), result.AssetMetadata{}),
		hit("b", result.TypeAsset, "b", 50, day(2025, time.February, 1), result.AssetMetadata{}),
	}
	sortResults(rs, query.SortDate, query.Asc)
	if got := ids(rs); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("date asc order = %v", got)
	}
}

func TestSortResults_RelevanceDescDefault(t *testing.T) {
	rs := []result.Result{
		hit("low", result.TypeAsset, "x", 25, time.Time{}, result.AssetMetadata{}),
		hit("high", result.TypeUser, "x", 90, time.Time{}, result.UserMetadata{}),
		hit("mid", result.TypeAsset, "x", 70, time.Time{}, result.AssetMetadata{}),
	}
	sortResults(rs, query.SortRelevance, query.Desc)
	if got := ids(rs); !reflect.DeepEqual(got, []string{"high", "mid", "low"}) {
		t.Errorf("relevance desc order = %v", got)
	}
}

func TestSortResults_Name(t *testing.T) {
	rs := []result.Result{
		hit("2", result.TypeAsset, "Rotterdam Grain", 0, time.Time{}, result.AssetMetadata{}),
		hit("1", result.TypeAsset, "Gulf Crude", 0, time.Time{}, result.AssetMetadata{}),
	}
	sortResults(rs, query.SortName, query.Asc)
	if rs[0].ID() != "1" {
		t.Errorf("name asc should put Gulf first, got %v", ids(rs))
	}
}

// Results without a monetary value sort together as 0 and, being equal,
// keep their concatenation order.
func TestSortResults_ValueStableForNonMonetary(t *testing.T) {
	rs := []result.Result{
		hit("asset", result.TypeAsset, "a", 0, time.Time{}, result.AssetMetadata{Value: "$100"}),
		hit("user-1", result.TypeUser, "u1", 0, time.Time{}, result.UserMetadata{}),
		hit("user-2", result.TypeUser, "u2", 0, time.Time{}, result.UserMetadata{}),
		hit("inv", result.TypeInvestment, "i", 0, time.Time{}, result.InvestmentMetadata{Amount: 50}),
	}
	sortResults(rs, query.SortValue, query.Asc)
	if got := ids(rs); !reflect.DeepEqual(got, []string{"user-1", "user-2", "inv", "asset"}) {
		t.Errorf("value asc order = %v", got)
	}

	sortResults(rs, query.SortValue, query.Desc)
	// Descending negates the comparison but equal keys still keep their
	// relative order from the previous state.
	if got := ids(rs); !reflect.DeepEqual(got, []string{"asset", "inv", "user-1", "user-2"}) {
		t.Errorf("value desc order = %v", got)
	}
}

func TestSortResults_StableOnEqualScores(t *testing.T) {
	rs := []result.Result{
		hit("first", result.TypeAsset, "a", 70, time.Time{}, result.AssetMetadata{}),
		hit("second", result.TypeUser, "b", 70, time.Time{}, result.UserMetadata{}),
		hit("third", result.TypeInvestment, "c", 70, time.Time{}, result.InvestmentMetadata{}),
	}
	sortResults(rs, query.SortRelevance, query.Desc)
	if got := ids(rs); !reflect.DeepEqual(got, []string{"first", "second", "third"}) {
		t.Errorf("equal scores must keep input order, got %v", got)
	}
}

func TestPaginate_Edges(t *testing.T) {
	rs := []result.Result{
		hit("a", result.TypeAsset, "a", 0, time.Time{}, result.AssetMetadata{}),
		hit("b", result.TypeAsset, "b", 0, time.Time{}, result.AssetMetadata{}),
		hit("c", result.TypeAsset, "c", 0, time.Time{}, result.AssetMetadata{}),
	}

	if got := paginate(rs, 0, 2); len(got) != 2 {
		t.Errorf("page 0: len = %d, want 2", len(got))
	}
	if got := paginate(rs, 2, 2); len(got) != 1 || got[0].ID() != "c" {
		t.Errorf("partial last page wrong: %v", ids(got))
	}
	if got := paginate(rs, 10, 2); len(got) != 0 {
		t.Errorf("offset past end must be empty, got %d", len(got))
	}
	if got := paginate(rs, 0, 0); len(got) != 0 {
		t.Errorf("zero limit must be empty, got %d", len(got))
	}
}

// Walking all pages reconstructs the full sorted set exactly once.
func TestPaginate_Exhaustive(t *testing.T) {
	var rs []result.Result
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		rs = append(rs, hit(id, result.TypeAsset, id, 0, time.Time{}, result.AssetMetadata{}))
	}

	const limit = 3
	var walked []string
	for offset := 0; ; offset += limit {
		page := paginate(rs, offset, limit)
		if len(page) == 0 {
			break
		}
		walked = append(walked, ids(page)...)
	}
	if !reflect.DeepEqual(walked, ids(rs)) {
		t.Errorf("page walk = %v, want %v", walked, ids(rs))
	}
}
