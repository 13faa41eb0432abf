package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/harborline/invsearch/internal/domain"
)

func TestNew_Defaults(t *testing.T) {
	q, err := New("dubai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Scope() != TypeAll {
		t.Errorf("scope = %q, want all", q.Scope())
	}
	if q.Limit() != DefaultLimit {
		t.Errorf("limit = %d, want %d", q.Limit(), DefaultLimit)
	}
	if q.Offset() != 0 {
		t.Errorf("offset = %d, want 0", q.Offset())
	}
	if q.SortBy() != SortRelevance || q.Order() != Desc {
		t.Errorf("sort = %s %s, want relevance desc", q.SortBy(), q.Order())
	}
}

func TestNew_EmptyTextAllowed(t *testing.T) {
	if _, err := New(""); err != nil {
		t.Fatalf("empty query must be valid, got %v", err)
	}
}

func TestNew_TooLong(t *testing.T) {
	_, err := New(strings.Repeat("x", MaxQueryLength+1))
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestNew_Clamping(t *testing.T) {
	q, err := New("", WithLimit(-5), WithOffset(-3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Limit() != 0 || q.Offset() != 0 {
		t.Errorf("negative limit/offset must clamp to 0, got %d/%d", q.Limit(), q.Offset())
	}

	q, err = New("", WithLimit(MaxLimit+50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Limit() != MaxLimit {
		t.Errorf("limit = %d, want cap %d", q.Limit(), MaxLimit)
	}
}

func TestNew_ExplicitZeroLimit(t *testing.T) {
	q, err := New("", WithLimit(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Limit() != 0 {
		t.Errorf("explicit zero limit must stay 0, got %d", q.Limit())
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"bad type", []Option{WithType("vessel")}},
		{"bad sort key", []Option{WithSort("price", Desc)}},
		{"bad order", []Option{WithSort(SortDate, "down")}},
		{"inverted value range", []Option{WithValueRange(ptr(100.0), ptr(10.0))}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("q", tc.opts...)
			if !errors.Is(err, domain.ErrInvalidQuery) {
				t.Fatalf("expected ErrInvalidQuery, got %v", err)
			}
		})
	}
}

func TestScoped(t *testing.T) {
	q, _ := New("dubai", WithCategory("container"))
	scoped := q.Scoped(TypeAsset)
	if scoped.Scope() != TypeAsset {
		t.Errorf("scope = %q, want asset", scoped.Scope())
	}
	if q.Scope() != TypeAll {
		t.Error("Scoped must not mutate the original query")
	}
	if scoped.Category() != "container" {
		t.Error("Scoped must preserve other fields")
	}
}

func ptr(f float64) *float64 { return &f }
