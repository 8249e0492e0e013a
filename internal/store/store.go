// Package store defines the local persistence contract used by the
// resolver's second tier. Backends live in subpackages.
package store

import (
	"context"

	"github.com/idilsaglam/littlelemon/internal/model"
)

// Store is the three-operation persistence surface. Every call reports
// its own outcome; there is no shared availability flag.
type Store interface {
	// CreateSchema prepares the backend for reads and writes. It is
	// safe to call more than once.
	CreateSchema(ctx context.Context) error

	// WriteAll upserts items by ID.
	WriteAll(ctx context.Context, items []model.MenuItem) error

	// ReadAll returns every persisted item. An empty store returns an
	// empty slice and no error.
	ReadAll(ctx context.Context) ([]model.MenuItem, error)
}

// Searcher is an optional capability for stores that can filter on
// their own. An empty query or category means no constraint on that
// field. Title matching is case-insensitive substring.
type Searcher interface {
	Search(ctx context.Context, query, category string) ([]model.MenuItem, error)
}

// Closer is implemented by stores holding OS resources.
type Closer interface {
	Close() error
}
