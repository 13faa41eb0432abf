// Package invsearch provides an embeddable cross-entity search engine for
// investment platform records (assets, users, investments).
//
// The zero-configuration client searches a built-in demo dataset in memory:
//
//	client, _ := invsearch.New()
//	page, _ := client.Search(ctx, "dubai", nil)
//
// With a Redis catalog the store becomes the primary record source and the
// in-memory dataset serves as an automatic fallback:
//
//	client, _ := invsearch.New(
//	    invsearch.WithRedis("localhost:6379", ""),
//	    invsearch.WithDemoSeed(),
//	)
//	defer client.Close()
package invsearch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/harborline/invsearch/internal/db"
	dbRedis "github.com/harborline/invsearch/internal/db/redis"
	"github.com/harborline/invsearch/internal/repository/catalog"
	"github.com/harborline/invsearch/internal/repository/static"
	searchuc "github.com/harborline/invsearch/internal/usecase/search"
	suggestuc "github.com/harborline/invsearch/internal/usecase/suggest"
)

const defaultReadinessTimeout = 10 * time.Second

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs     []string
	password  string
	keyPrefix string
	seedDemo  bool
	logger    *zap.Logger
}

// WithRedis configures a Redis catalog as the primary record source.
// Without it the client searches the in-memory demo dataset only.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithKeyPrefix overrides the catalog key namespace.
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithDemoSeed seeds the demo dataset into an empty Redis catalog on startup.
func WithDemoSeed() Option {
	return optionFunc(func(c *clientConfig) {
		c.seedDemo = true
	})
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = logger
	})
}

// Client is the invsearch entry point.
type Client struct {
	store   db.Store
	search  *searchuc.Service
	suggest *suggestuc.Service
}

// New creates a Client. With no options it runs purely in memory.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{logger: zap.NewNop()}
	for _, o := range opts {
		o.apply(cfg)
	}

	fallback := static.New()

	if len(cfg.addrs) == 0 {
		return &Client{
			search:  searchuc.New(nil, fallback, cfg.logger),
			suggest: suggestuc.New(),
		}, nil
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("store not ready: %w", err)
	}

	repo := catalog.New(store, cfg.keyPrefix)
	if cfg.seedDemo {
		if err := seedIfEmpty(ctx, repo); err != nil {
			store.Close()
			return nil, err
		}
	}

	return &Client{
		store:   store,
		search:  searchuc.New(repo, fallback, cfg.logger),
		suggest: suggestuc.New(),
	}, nil
}

func seedIfEmpty(ctx context.Context, repo *catalog.Repo) error {
	empty, err := repo.Empty(ctx)
	if err != nil {
		return fmt.Errorf("check catalog: %w", err)
	}
	if !empty {
		return nil
	}
	assets, users, investments := static.Dataset()
	if err := repo.Seed(ctx, assets, users, investments); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	return nil
}

// Suggest returns vocabulary terms containing the query, case-insensitive.
func (c *Client) Suggest(query string, limit int) []string {
	return c.suggest.Suggest(query, limit)
}

// Popular returns the top popular search terms.
func (c *Client) Popular(limit int) []string {
	return c.suggest.Popular(limit)
}

// Close releases the store connection. Safe to call on a memory-only client.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}
