package badger

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) CreateSpace(ctx context.Context, create *store.Space) (*store.Space, error) {
	err := d.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, makeSpaceKey(create.ID), create)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create space")
	}
	return create, nil
}

func (d *DB) ListSpaces(ctx context.Context, find *store.FindSpace) ([]*store.Space, error) {
	list := make([]*store.Space, 0)
	err := d.db.View(func(txn *badger.Txn) error {
		return forEachValue(txn, []byte(spacePrefix+keySeparator), func(val []byte) error {
			space := &store.Space{}
			if err := json.Unmarshal(val, space); err != nil {
				return err
			}
			if find.IsActive != nil && space.IsActive != *find.IsActive {
				return nil
			}
			if find.Category != nil && space.Category != *find.Category {
				return nil
			}
			list = append(list, space)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spaces")
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
