// Package searchlab embeds the product search lab in-process: a document
// store plus the keyword, fuzzy, and semantic rankers, without the HTTP
// layer. The zero-value options give a live-jitter engine seeded with the
// demo catalog.
package searchlab

import (
	"context"
	"fmt"

	"github.com/curio-labs/searchlab/internal/catalog"
	documentrepo "github.com/curio-labs/searchlab/internal/repository/document"
	searchuc "github.com/curio-labs/searchlab/internal/usecase/search"
)

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	seed        uint64
	zeroJitter  bool
	catalogPath string
	skipCatalog bool
}

// WithSeed makes semantic jitter reproducible.
func WithSeed(seed uint64) Option {
	return func(c *clientConfig) {
		c.seed = seed
	}
}

// WithZeroJitter disables semantic jitter entirely, making every score
// deterministic.
func WithZeroJitter() Option {
	return func(c *clientConfig) {
		c.zeroJitter = true
	}
}

// WithCatalogFile seeds the store from a YAML catalog instead of the
// built-in products.
func WithCatalogFile(path string) Option {
	return func(c *clientConfig) {
		c.catalogPath = path
	}
}

// WithoutCatalog starts with an empty store.
func WithoutCatalog() Option {
	return func(c *clientConfig) {
		c.skipCatalog = true
	}
}

// Client is the in-process search lab entry point.
type Client struct {
	svc *searchuc.Service
}

var _ SearchEngine = (*Client)(nil)

// New creates a Client, optionally seeding the demo catalog.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	store := documentrepo.New()
	svc := searchuc.New(store, buildNoise(cfg))
	c := &Client{svc: svc}

	if cfg.skipCatalog {
		return c, nil
	}

	products := catalog.Default()
	if cfg.catalogPath != "" {
		loaded, err := catalog.Load(cfg.catalogPath)
		if err != nil {
			return nil, fmt.Errorf("searchlab: %w", err)
		}
		products = loaded
	}

	docs, err := catalog.Documents(products)
	if err != nil {
		return nil, fmt.Errorf("searchlab: %w", err)
	}
	if err := svc.Index(context.Background(), docs); err != nil {
		return nil, fmt.Errorf("searchlab: seed catalog: %w", err)
	}
	return c, nil
}

func buildNoise(cfg *clientConfig) searchuc.Noise {
	if cfg.zeroJitter {
		return searchuc.ZeroNoise{}
	}
	if cfg.seed != 0 {
		return searchuc.NewSeededNoise(cfg.seed)
	}
	return searchuc.NewRandomNoise()
}
