// Package query holds the validated search query value object.
package query

import (
	"fmt"
	"time"

	"github.com/harborline/invsearch/internal/domain"
)

// Query parameter limits.
const (
	MaxQueryLength = 256
	DefaultLimit   = 20
	MaxLimit       = 100
)

// Type scopes a search to one record kind.
type Type string

const (
	TypeAll        Type = "all"
	TypeAsset      Type = "asset"
	TypeUser       Type = "user"
	TypeInvestment Type = "investment"
)

// IsValid reports whether t is a known scope.
func (t Type) IsValid() bool {
	switch t {
	case TypeAll, TypeAsset, TypeUser, TypeInvestment:
		return true
	}
	return false
}

// SortKey selects the sort dimension.
type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortDate      SortKey = "date"
	SortValue     SortKey = "value"
	SortName      SortKey = "name"
)

// IsValid reports whether k is a known sort key.
func (k SortKey) IsValid() bool {
	switch k {
	case SortRelevance, SortDate, SortValue, SortName:
		return true
	}
	return false
}

// Order is the sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// IsValid reports whether o is a known order.
func (o Order) IsValid() bool { return o == Asc || o == Desc }

// Query is a validated search query. The zero value is not usable; build
// one with New.
type Query struct {
	text     string
	scope    Type
	category string
	status   string
	minValue *float64
	maxValue *float64
	dateFrom *time.Time
	dateTo   *time.Time
	limit    int
	offset   int
	sortBy   SortKey
	order    Order
}

// Option configures a Query during construction.
type Option func(*Query)

// WithType scopes the search to one record kind (or TypeAll).
func WithType(t Type) Option {
	return func(q *Query) { q.scope = t }
}

// WithCategory filters on the record's natural category
// (asset type, user role, investment type).
func WithCategory(category string) Option {
	return func(q *Query) { q.category = category }
}

// WithStatus filters on the record's lifecycle status.
func WithStatus(status string) Option {
	return func(q *Query) { q.status = status }
}

// WithValueRange bounds the record's monetary value inclusively.
// Either bound may be nil for "no constraint on that side".
func WithValueRange(minValue, maxValue *float64) Option {
	return func(q *Query) {
		q.minValue = minValue
		q.maxValue = maxValue
	}
}

// WithDateRange bounds CreatedAt inclusively. Either bound may be nil.
func WithDateRange(from, to *time.Time) Option {
	return func(q *Query) {
		q.dateFrom = from
		q.dateTo = to
	}
}

// WithLimit sets the page size. Zero is a valid, empty page.
func WithLimit(limit int) Option {
	return func(q *Query) { q.limit = limit }
}

// WithOffset sets the page start.
func WithOffset(offset int) Option {
	return func(q *Query) { q.offset = offset }
}

// WithSort sets the sort key and direction.
func WithSort(key SortKey, order Order) Option {
	return func(q *Query) {
		q.sortBy = key
		q.order = order
	}
}

// New validates and normalizes a search query.
// Defaults: scope=all, limit=20, offset=0, sort=relevance desc.
// Negative limit/offset are clamped to 0; limit is capped at MaxLimit.
func New(text string, opts ...Option) (Query, error) {
	if len(text) > MaxQueryLength {
		return Query{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidQuery, MaxQueryLength)
	}

	q := Query{
		text:   text,
		scope:  TypeAll,
		limit:  DefaultLimit,
		sortBy: SortRelevance,
		order:  Desc,
	}
	for _, opt := range opts {
		opt(&q)
	}

	if !q.scope.IsValid() {
		return Query{}, fmt.Errorf("%w: unknown type %q", domain.ErrInvalidQuery, q.scope)
	}
	if !q.sortBy.IsValid() {
		return Query{}, fmt.Errorf("%w: unknown sort key %q", domain.ErrInvalidQuery, q.sortBy)
	}
	if !q.order.IsValid() {
		return Query{}, fmt.Errorf("%w: unknown sort order %q", domain.ErrInvalidQuery, q.order)
	}
	if q.minValue != nil && q.maxValue != nil && *q.minValue > *q.maxValue {
		return Query{}, fmt.Errorf("%w: min_value above max_value", domain.ErrInvalidQuery)
	}

	if q.limit < 0 {
		q.limit = 0
	}
	if q.limit > MaxLimit {
		q.limit = MaxLimit
	}
	if q.offset < 0 {
		q.offset = 0
	}

	return q, nil
}

// Scoped returns a copy of the query pinned to one record kind.
func (q Query) Scoped(t Type) Query {
	q.scope = t
	return q
}

// Text returns the free-text query. Empty matches everything.
func (q Query) Text() string { return q.text }

// Scope returns the record-kind scope.
func (q Query) Scope() Type { return q.scope }

// Category returns the category filter ("" = unset).
func (q Query) Category() string { return q.category }

// Status returns the status filter ("" = unset).
func (q Query) Status() string { return q.status }

// MinValue returns the inclusive lower monetary bound (nil = unset).
func (q Query) MinValue() *float64 { return q.minValue }

// MaxValue returns the inclusive upper monetary bound (nil = unset).
func (q Query) MaxValue() *float64 { return q.maxValue }

// DateFrom returns the inclusive lower CreatedAt bound (nil = unset).
func (q Query) DateFrom() *time.Time { return q.dateFrom }

// DateTo returns the inclusive upper CreatedAt bound (nil = unset).
func (q Query) DateTo() *time.Time { return q.dateTo }

// Limit returns the page size.
func (q Query) Limit() int { return q.limit }

// Offset returns the page start.
func (q Query) Offset() int { return q.offset }

// SortBy returns the sort key.
func (q Query) SortBy() SortKey { return q.sortBy }

// Order returns the sort direction.
func (q Query) Order() Order { return q.order }
