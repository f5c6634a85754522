package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) GetUser(ctx context.Context, find *store.FindUser) (*store.User, error) {
	user := &store.User{}
	found := false
	err := d.db.View(func(txn *badger.Txn) error {
		if find.ID != nil {
			ok, err := getJSON(txn, makeUserKey(*find.ID), user)
			found = ok
			return err
		}
		if find.Email != nil {
			item, err := txn.Get(makeUserEmailKey(*find.Email))
			if err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return nil
				}
				return err
			}
			var id string
			if err := item.Value(func(val []byte) error {
				id = string(val)
				return nil
			}); err != nil {
				return err
			}
			ok, err := getJSON(txn, makeUserKey(id), user)
			found = ok
			return err
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}
	if !found {
		return nil, nil
	}
	return user, nil
}

func (d *DB) UpsertUser(ctx context.Context, upsert *store.UpsertUser) (*store.User, error) {
	user := &store.User{}
	err := d.db.Update(func(txn *badger.Txn) error {
		// Email index doubles as the uniqueness check.
		if item, err := txn.Get(makeUserEmailKey(upsert.Email)); err == nil {
			var owner string
			if err := item.Value(func(val []byte) error {
				owner = string(val)
				return nil
			}); err != nil {
				return err
			}
			if owner != upsert.ID {
				return store.ErrEmailTaken
			}
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		existing := &store.User{}
		exists, err := getJSON(txn, makeUserKey(upsert.ID), existing)
		if err != nil {
			return err
		}

		user.ID = upsert.ID
		user.Email = upsert.Email
		user.CreatedTs = upsert.CreatedTs
		user.UpdatedTs = upsert.UpdatedTs
		if exists {
			user.CreatedTs = existing.CreatedTs
			user.PasswordHash = existing.PasswordHash
			user.FirstName = existing.FirstName
			user.LastName = existing.LastName
			user.ProfileImageURL = existing.ProfileImageURL
			if existing.Email != upsert.Email {
				if err := txn.Delete(makeUserEmailKey(existing.Email)); err != nil {
					return err
				}
			}
		}
		if upsert.PasswordHash != nil {
			user.PasswordHash = *upsert.PasswordHash
		}
		if upsert.FirstName != nil {
			user.FirstName = *upsert.FirstName
		}
		if upsert.LastName != nil {
			user.LastName = *upsert.LastName
		}
		if upsert.ProfileImageURL != nil {
			user.ProfileImageURL = *upsert.ProfileImageURL
		}

		if err := txn.Set(makeUserEmailKey(user.Email), []byte(user.ID)); err != nil {
			return err
		}
		return setJSON(txn, makeUserKey(user.ID), user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return nil, store.ErrEmailTaken
		}
		return nil, errors.Wrap(err, "failed to upsert user")
	}
	return user, nil
}
