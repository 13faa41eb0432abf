package invsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/harborline/invsearch/internal/domain/search/query"
	"github.com/harborline/invsearch/internal/domain/search/result"
)

// EntityType scopes a search to one record kind.
type EntityType string

// Entity type constants.
const (
	TypeAll        EntityType = "all"
	TypeAsset      EntityType = "asset"
	TypeUser       EntityType = "user"
	TypeInvestment EntityType = "investment"
)

// SortKey selects the sort dimension.
type SortKey string

// Sort key constants.
const (
	SortRelevance SortKey = "relevance"
	SortDate      SortKey = "date"
	SortValue     SortKey = "value"
	SortName      SortKey = "name"
)

// SortOrder is the sort direction.
type SortOrder string

// Sort order constants.
const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// SearchOptions configures a search. The zero value searches all record
// kinds, sorted by relevance descending, first page.
type SearchOptions struct {
	Type     EntityType
	Category string
	Status   string
	MinValue *float64
	MaxValue *float64
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
	SortBy   SortKey
	Order    SortOrder
}

// SearchResult is a single search hit. Exactly one of Asset, User, or
// Investment is set, matching Type.
type SearchResult struct {
	ID          string
	Type        EntityType
	Title       string
	Description string
	Score       float64
	Category    string
	Status      string
	CreatedAt   time.Time

	Asset      *AssetInfo
	User       *UserInfo
	Investment *InvestmentInfo
}

// AssetInfo carries asset-specific result fields.
type AssetInfo struct {
	Value string
	APR   float64
	Risk  string
	Route string
	Cargo string
}

// UserInfo carries user-specific result fields.
type UserInfo struct {
	Email   string
	Role    string
	Country string
}

// InvestmentInfo carries investment-specific result fields.
type InvestmentInfo struct {
	AssetID string
	UserID  string
	Amount  float64
}

// SearchPage is one page of hits plus the pre-pagination match count.
type SearchPage struct {
	Results []SearchResult
	Total   int
}

// Search runs a free-text search with optional filters. opts may be nil.
func (c *Client) Search(ctx context.Context, text string, opts *SearchOptions) (SearchPage, error) {
	q, err := queryFromOptions(text, opts)
	if err != nil {
		return SearchPage{}, err
	}

	page, err := c.search.Search(ctx, q)
	if err != nil {
		return SearchPage{}, fmt.Errorf("search: %w", err)
	}

	results := make([]SearchResult, len(page.Results))
	for i := range page.Results {
		results[i] = resultFromInternal(&page.Results[i])
	}
	return SearchPage{Results: results, Total: page.Total}, nil
}

func queryFromOptions(text string, opts *SearchOptions) (query.Query, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}

	qopts := make([]query.Option, 0, 8)
	if opts.Type != "" {
		qopts = append(qopts, query.WithType(query.Type(opts.Type)))
	}
	if opts.Category != "" {
		qopts = append(qopts, query.WithCategory(opts.Category))
	}
	if opts.Status != "" {
		qopts = append(qopts, query.WithStatus(opts.Status))
	}
	if opts.MinValue != nil || opts.MaxValue != nil {
		qopts = append(qopts, query.WithValueRange(opts.MinValue, opts.MaxValue))
	}
	if opts.DateFrom != nil || opts.DateTo != nil {
		qopts = append(qopts, query.WithDateRange(opts.DateFrom, opts.DateTo))
	}
	if opts.Limit != 0 {
		qopts = append(qopts, query.WithLimit(opts.Limit))
	}
	if opts.Offset != 0 {
		qopts = append(qopts, query.WithOffset(opts.Offset))
	}
	if opts.SortBy != "" || opts.Order != "" {
		sortBy := query.SortRelevance
		if opts.SortBy != "" {
			sortBy = query.SortKey(opts.SortBy)
		}
		order := query.Desc
		if opts.Order != "" {
			order = query.Order(opts.Order)
		}
		qopts = append(qopts, query.WithSort(sortBy, order))
	}

	return query.New(text, qopts...)
}

func resultFromInternal(r *result.Result) SearchResult {
	out := SearchResult{
		ID:          r.ID(),
		Type:        EntityType(r.Type()),
		Title:       r.Title(),
		Description: r.Description(),
		Score:       r.Score(),
		Category:    r.Category(),
		Status:      r.Status(),
		CreatedAt:   r.CreatedAt(),
	}

	switch m := r.Meta().(type) {
	case result.AssetMetadata:
		out.Asset = &AssetInfo{Value: m.Value, APR: m.APR, Risk: m.Risk, Route: m.Route, Cargo: m.Cargo}
	case result.UserMetadata:
		out.User = &UserInfo{Email: m.Email, Role: m.Role, Country: m.Country}
	case result.InvestmentMetadata:
		out.Investment = &InvestmentInfo{AssetID: m.AssetID, UserID: m.UserID, Amount: m.Amount}
	}

	return out
}
