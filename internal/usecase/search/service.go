// Package search implements the cross-entity search engine: source
// selection with fallback, per-kind adapters, relevance scoring, and
// merge/sort/pagination.
package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/harborline/invsearch/internal/domain"
	"github.com/harborline/invsearch/internal/domain/search/query"
	"github.com/harborline/invsearch/internal/domain/search/result"
	"github.com/harborline/invsearch/internal/metrics"
)

// Page is one page of search hits plus the pre-pagination match count.
type Page struct {
	Results []result.Result
	Total   int
}

// Service executes searches over a primary record source with an in-memory
// fallback. Each call is stateless; the service holds no mutable state, so
// concurrent searches are safe.
type Service struct {
	primary  Source // nil when running fallback-only
	fallback Source
	logger   *zap.Logger
}

// New creates a search service. primary may be nil; fallback is required.
func New(primary, fallback Source, logger *zap.Logger) *Service {
	return &Service{primary: primary, fallback: fallback, logger: logger}
}

// Search runs the query against the primary source, falling back to the
// in-memory source on any primary failure. It returns an error only when
// both sources fail. Total counts every match before pagination.
func (s *Service) Search(ctx context.Context, q query.Query) (Page, error) {
	recs, err := s.fetch(ctx, q.Scope())
	if err != nil {
		return Page{}, err
	}

	merged := make([]result.Result, 0, len(recs.assets)+len(recs.users)+len(recs.investments))
	merged = append(merged, assetResults(recs.assets, q)...)
	merged = append(merged, userResults(recs.users, q)...)
	merged = append(merged, investmentResults(recs.investments, q)...)

	total := len(merged)
	sortResults(merged, q.SortBy(), q.Order())

	metrics.SearchExecuted(string(q.Scope()), total)

	return Page{Results: paginate(merged, q.Offset(), q.Limit()), Total: total}, nil
}

// SearchAssets is Search with the scope pinned to assets.
func (s *Service) SearchAssets(ctx context.Context, q query.Query) (Page, error) {
	return s.Search(ctx, q.Scoped(query.TypeAsset))
}

// SearchUsers is Search with the scope pinned to users.
func (s *Service) SearchUsers(ctx context.Context, q query.Query) (Page, error) {
	return s.Search(ctx, q.Scoped(query.TypeUser))
}

// SearchInvestments is Search with the scope pinned to investments.
func (s *Service) SearchInvestments(ctx context.Context, q query.Query) (Page, error) {
	return s.Search(ctx, q.Scoped(query.TypeInvestment))
}

// records bundles one consistent snapshot of the searched kinds.
type records struct {
	assets      []domain.Asset
	users       []domain.User
	investments []domain.Investment
}

// fetch tries the primary source once, then the fallback. No retries: a
// stale in-memory answer beats blocking on a broken store.
func (s *Service) fetch(ctx context.Context, scope query.Type) (records, error) {
	if s.primary != nil {
		recs, err := fetchAll(ctx, s.primary, scope)
		if err == nil {
			return recs, nil
		}
		s.logger.Warn("primary source failed, serving fallback",
			zap.String("scope", string(scope)), zap.Error(err))
		metrics.FallbackServed()
	}

	recs, err := fetchAll(ctx, s.fallback, scope)
	if err != nil {
		return records{}, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	return recs, nil
}

// fetchAll reads only the kinds the scope needs.
func fetchAll(ctx context.Context, src Source, scope query.Type) (records, error) {
	var recs records
	var err error

	if scope == query.TypeAll || scope == query.TypeAsset {
		if recs.assets, err = src.FetchAssets(ctx); err != nil {
			return records{}, fmt.Errorf("fetch assets: %w", err)
		}
	}
	if scope == query.TypeAll || scope == query.TypeUser {
		if recs.users, err = src.FetchUsers(ctx); err != nil {
			return records{}, fmt.Errorf("fetch users: %w", err)
		}
	}
	if scope == query.TypeAll || scope == query.TypeInvestment {
		if recs.investments, err = src.FetchInvestments(ctx); err != nil {
			return records{}, fmt.Errorf("fetch investments: %w", err)
		}
	}
	return recs, nil
}
