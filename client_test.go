package invsearch

import (
	"context"
	"testing"
)

func newMemoryClient(t *testing.T) *Client {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestSearch_InMemory(t *testing.T) {
	c := newMemoryClient(t)

	page, err := c.Search(context.Background(), "dubai", nil)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("total = %d, want 2", page.Total)
	}
	if page.Results[0].ID != "ast-006" {
		t.Errorf("first hit = %s, want ast-006", page.Results[0].ID)
	}
	if page.Results[0].Asset == nil || page.Results[0].Asset.Value != "$96,000" {
		t.Errorf("asset info = %+v", page.Results[0].Asset)
	}
	if page.Results[0].User != nil || page.Results[0].Investment != nil {
		t.Error("asset hit must not carry user or investment info")
	}
}

func TestSearch_TypedOptions(t *testing.T) {
	c := newMemoryClient(t)

	minValue := 100000.0
	page, err := c.Search(context.Background(), "", &SearchOptions{
		Type:     TypeInvestment,
		MinValue: &minValue,
		SortBy:   SortValue,
		Order:    Asc,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("total = %d, want 1", page.Total)
	}
	hit := page.Results[0]
	if hit.ID != "inv-003" || hit.Investment == nil || hit.Investment.Amount != 125000 {
		t.Errorf("hit = %+v", hit)
	}
}

func TestSearch_InvalidOptions(t *testing.T) {
	c := newMemoryClient(t)

	if _, err := c.Search(context.Background(), "", &SearchOptions{Type: "vessel"}); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestSearch_Pagination(t *testing.T) {
	c := newMemoryClient(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for offset := 0; ; offset += 5 {
		page, err := c.Search(ctx, "", &SearchOptions{Limit: 5, Offset: offset})
		if err != nil {
			t.Fatalf("search at offset %d: %v", offset, err)
		}
		if page.Total != 16 {
			t.Fatalf("total = %d, want 16", page.Total)
		}
		if len(page.Results) == 0 {
			break
		}
		for _, r := range page.Results {
			if seen[r.ID] {
				t.Errorf("duplicate hit %s across pages", r.ID)
			}
			seen[r.ID] = true
		}
	}
	if len(seen) != 16 {
		t.Errorf("walked %d unique hits, want 16", len(seen))
	}
}

func TestSuggestAndPopular(t *testing.T) {
	c := newMemoryClient(t)

	terms := c.Suggest("inv", 10)
	want := map[string]bool{"invoice financing": true, "investor": true, "direct investment": true, "pooled investment": true}
	if len(terms) != len(want) {
		t.Fatalf("terms = %v", terms)
	}
	for _, term := range terms {
		if !want[term] {
			t.Errorf("unexpected term %q", term)
		}
	}

	popular := c.Popular(2)
	if len(popular) != 2 || popular[0] != "container" || popular[1] != "dubai" {
		t.Errorf("popular = %v", popular)
	}
}
