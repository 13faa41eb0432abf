package search

import (
	"context"

	"github.com/harborline/invsearch/internal/domain"
)

// Source fetches the raw records a search runs over. The catalog repository
// implements it over Redis; the static repository implements it in memory.
type Source interface {
	FetchAssets(ctx context.Context) ([]domain.Asset, error)
	FetchUsers(ctx context.Context) ([]domain.User, error)
	FetchInvestments(ctx context.Context) ([]domain.Investment, error)
}
