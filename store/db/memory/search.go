package memory

import (
	"context"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) CreateSearch(ctx context.Context, create *store.Search) (*store.Search, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	search := *create
	d.searches[search.ID] = &search
	return create, nil
}

func (d *DB) GetSearch(ctx context.Context, find *store.FindSearch) (*store.Search, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if find.ID != nil {
		if search, ok := d.searches[*find.ID]; ok {
			s := *search
			return &s, nil
		}
	}
	return nil, nil
}
