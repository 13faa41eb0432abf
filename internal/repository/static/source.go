// Package static serves the built-in demo dataset. It backs the search
// engine's fallback path and seeds the Redis catalog, so both paths answer
// with the same records.
package static

import (
	"context"

	"github.com/harborline/invsearch/internal/domain"
)

// Source implements usecase/search.Source over the demo dataset.
type Source struct{}

// New creates a static source.
func New() *Source { return &Source{} }

// FetchAssets returns the demo assets. Callers get a copy; the dataset
// itself is never mutated.
func (s *Source) FetchAssets(_ context.Context) ([]domain.Asset, error) {
	return append([]domain.Asset(nil), demoAssets...), nil
}

// FetchUsers returns the demo users.
func (s *Source) FetchUsers(_ context.Context) ([]domain.User, error) {
	return append([]domain.User(nil), demoUsers...), nil
}

// FetchInvestments returns the demo investments.
func (s *Source) FetchInvestments(_ context.Context) ([]domain.Investment, error) {
	return append([]domain.Investment(nil), demoInvestments...), nil
}

// Dataset returns the demo records for seeding the catalog store.
func Dataset() ([]domain.Asset, []domain.User, []domain.Investment) {
	return append([]domain.Asset(nil), demoAssets...),
		append([]domain.User(nil), demoUsers...),
		append([]domain.Investment(nil), demoInvestments...)
}
