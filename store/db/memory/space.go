package memory

import (
	"context"
	"sort"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) CreateSpace(ctx context.Context, create *store.Space) (*store.Space, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	space := *create
	d.spaces[space.ID] = &space
	return create, nil
}

func (d *DB) ListSpaces(ctx context.Context, find *store.FindSpace) ([]*store.Space, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	list := make([]*store.Space, 0)
	for _, space := range d.spaces {
		if find.IsActive != nil && space.IsActive != *find.IsActive {
			continue
		}
		if find.Category != nil && space.Category != *find.Category {
			continue
		}
		s := *space
		list = append(list, &s)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedTs != list[j].CreatedTs {
			return list[i].CreatedTs < list[j].CreatedTs
		}
		return list[i].ID < list[j].ID
	})
	if find.Limit > 0 && len(list) > find.Limit {
		list = list[:find.Limit]
	}
	return list, nil
}
