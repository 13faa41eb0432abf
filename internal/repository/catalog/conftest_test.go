package catalog

import (
	"context"

	"github.com/harborline/invsearch/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	scanFn         func(ctx context.Context, pattern string) ([]string, error)
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	hsetMultiFn    func(ctx context.Context, items []db.HashSetItem) error
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) HSetMulti(ctx context.Context, items []db.HashSetItem) error {
	if m.hsetMultiFn != nil {
		return m.hsetMultiFn(ctx, items)
	}
	return nil
}

// hashStore is an in-memory hash map behaving like the real store, with
// deterministic (insertion-independent) key listing.
type hashStore struct {
	hashes map[string]map[string]string
}

func newHashStore() *hashStore {
	return &hashStore{hashes: make(map[string]map[string]string)}
}

func (h *hashStore) Scan(_ context.Context, pattern string) ([]string, error) {
	// Patterns used by the repo are always "prefix*".
	prefix := pattern[:len(pattern)-1]
	var keys []string
	for k := range h.hashes {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (h *hashStore) HGetAllMulti(_ context.Context, keys []string) ([]map[string]string, error) {
	out := make([]map[string]string, len(keys))
	for i, k := range keys {
		out[i] = h.hashes[k]
	}
	return out, nil
}

func (h *hashStore) HSetMulti(_ context.Context, items []db.HashSetItem) error {
	for _, item := range items {
		h.hashes[item.Key] = item.Fields
	}
	return nil
}
