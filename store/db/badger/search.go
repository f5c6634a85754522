package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) CreateSearch(ctx context.Context, create *store.Search) (*store.Search, error) {
	err := d.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, makeSearchKey(create.ID), create)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create search")
	}
	return create, nil
}

func (d *DB) GetSearch(ctx context.Context, find *store.FindSearch) (*store.Search, error) {
	if find.ID == nil {
		return nil, nil
	}
	search := &store.Search{}
	found := false
	err := d.db.View(func(txn *badger.Txn) error {
		ok, err := getJSON(txn, makeSearchKey(*find.ID), search)
		found = ok
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get search")
	}
	if !found {
		return nil, nil
	}
	return search, nil
}
