// Package catalog reads platform records from Redis hashes and is the
// search engine's primary Source. Records live under
// {prefix}asset:{id}, {prefix}user:{id}, {prefix}investment:{id}.
package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/harborline/invsearch/internal/db"
	"github.com/harborline/invsearch/internal/domain"
)

// DefaultKeyPrefix namespaces catalog keys in a shared Redis.
const DefaultKeyPrefix = "invsearch:"

// store is the consumer interface for catalog operations (ISP).
type store interface {
	Scan(ctx context.Context, pattern string) ([]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
}

// Repo implements usecase/search.Source over a Redis store.
type Repo struct {
	store  store
	prefix string
}

// New creates a catalog repository. An empty prefix uses DefaultKeyPrefix.
func New(s store, prefix string) *Repo {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Repo{store: s, prefix: prefix}
}

// FetchAssets reads every asset record.
func (r *Repo) FetchAssets(ctx context.Context) ([]domain.Asset, error) {
	maps, err := r.fetchKind(ctx, "asset")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Asset, 0, len(maps))
	for _, m := range maps {
		if len(m) == 0 {
			// Key vanished between SCAN and HGETALL.
			continue
		}
		out = append(out, assetFromHash(m))
	}
	return out, nil
}

// FetchUsers reads every user record.
func (r *Repo) FetchUsers(ctx context.Context) ([]domain.User, error) {
	maps, err := r.fetchKind(ctx, "user")
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(maps))
	for _, m := range maps {
		if len(m) == 0 {
			continue
		}
		out = append(out, userFromHash(m))
	}
	return out, nil
}

// FetchInvestments reads every investment record.
func (r *Repo) FetchInvestments(ctx context.Context) ([]domain.Investment, error) {
	maps, err := r.fetchKind(ctx, "investment")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Investment, 0, len(maps))
	for _, m := range maps {
		if len(m) == 0 {
			continue
		}
		out = append(out, investmentFromHash(m))
	}
	return out, nil
}

// fetchKind lists and bulk-reads all hashes of one record kind. Keys are
// sorted before the read: SCAN order is unspecified, and the merge contract
// needs a deterministic source order.
func (r *Repo) fetchKind(ctx context.Context, kind string) ([]map[string]string, error) {
	keys, err := r.store.Scan(ctx, r.prefix+kind+":*")
	if err != nil {
		return nil, fmt.Errorf("scan %s keys: %w", kind, err)
	}
	sort.Strings(keys)

	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("read %s records: %w", kind, err)
	}
	return maps, nil
}

// Empty reports whether the catalog holds no asset records yet.
func (r *Repo) Empty(ctx context.Context) (bool, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"asset:*")
	if err != nil {
		return false, fmt.Errorf("scan asset keys: %w", err)
	}
	return len(keys) == 0, nil
}

// Seed writes a dataset into the catalog in one pipelined round-trip.
func (r *Repo) Seed(
	ctx context.Context,
	assets []domain.Asset, users []domain.User, investments []domain.Investment,
) error {
	items := make([]db.HashSetItem, 0, len(assets)+len(users)+len(investments))
	for _, a := range assets {
		items = append(items, db.HashSetItem{Key: r.prefix + "asset:" + a.ID, Fields: assetToHash(a)})
	}
	for _, u := range users {
		items = append(items, db.HashSetItem{Key: r.prefix + "user:" + u.ID, Fields: userToHash(u)})
	}
	for _, inv := range investments {
		items = append(items, db.HashSetItem{Key: r.prefix + "investment:" + inv.ID, Fields: investmentToHash(inv)})
	}

	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}
