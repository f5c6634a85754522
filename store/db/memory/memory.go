// Package memory implements the store driver on plain in-process maps.
// Intended for development and tests; every operation holds the single
// mutex, so per-record atomicity is trivial.
package memory

import (
	"context"
	"database/sql"
	"sync"

	"github.com/seekrhq/seekr/internal/profile"
	"github.com/seekrhq/seekr/store"
)

type DB struct {
	profile *profile.Profile

	mu            sync.RWMutex
	users         map[string]*store.User
	searches      map[string]*store.Search
	topics        map[string]*store.TrendingTopic
	spaces        map[string]*store.Space
	conversations map[string]*store.Conversation
	// messages is a slice so that insertion order survives as the
	// tie-break for equal created_ts.
	messages []*store.Message
}

func NewDB(profile *profile.Profile) (store.Driver, error) {
	return &DB{
		profile:       profile,
		users:         make(map[string]*store.User),
		searches:      make(map[string]*store.Search),
		topics:        make(map[string]*store.TrendingTopic),
		spaces:        make(map[string]*store.Space),
		conversations: make(map[string]*store.Conversation),
		messages:      make([]*store.Message, 0),
	}, nil
}

// GetDB returns nil; there is no relational medium behind this driver.
func (*DB) GetDB() *sql.DB {
	return nil
}

func (*DB) Close() error {
	return nil
}

func (*DB) IsInitialized(context.Context) (bool, error) {
	return true, nil
}
