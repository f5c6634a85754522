package badger

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) CreateConversation(ctx context.Context, create *store.Conversation) (*store.Conversation, error) {
	err := d.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, makeConversationKey(create.ID), create)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create conversation")
	}
	return create, nil
}

func (d *DB) GetConversation(ctx context.Context, id string) (*store.Conversation, error) {
	conversation := &store.Conversation{}
	found := false
	err := d.db.View(func(txn *badger.Txn) error {
		ok, err := getJSON(txn, makeConversationKey(id), conversation)
		found = ok
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get conversation")
	}
	if !found {
		return nil, nil
	}
	return conversation, nil
}

func (d *DB) UpdateConversation(ctx context.Context, update *store.UpdateConversation) (*store.Conversation, error) {
	conversation := &store.Conversation{}
	err := d.db.Update(func(txn *badger.Txn) error {
		found, err := getJSON(txn, makeConversationKey(update.ID), conversation)
		if err != nil {
			return err
		}
		if !found {
			return store.ErrConversationNotFound
		}
		if update.Title != nil {
			conversation.Title = *update.Title
		}
		if update.Summary != nil {
			conversation.Summary = *update.Summary
		}
		conversation.UpdatedTs = update.UpdatedTs
		return setJSON(txn, makeConversationKey(update.ID), conversation)
	})
	if err != nil {
		if errors.Is(err, store.ErrConversationNotFound) {
			return nil, store.ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "failed to update conversation")
	}
	return conversation, nil
}

func (d *DB) ListConversations(ctx context.Context, find *store.FindConversation) ([]*store.Conversation, error) {
	list := make([]*store.Conversation, 0)
	err := d.db.View(func(txn *badger.Txn) error {
		return forEachValue(txn, []byte(convPrefix+keySeparator), func(val []byte) error {
			conversation := &store.Conversation{}
			if err := json.Unmarshal(val, conversation); err != nil {
				return err
			}
			if find.UserID != nil && conversation.UserID != *find.UserID {
				return nil
			}
			list = append(list, conversation)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].UpdatedTs != list[j].UpdatedTs {
			return list[i].UpdatedTs > list[j].UpdatedTs
		}
		if list[i].CreatedTs != list[j].CreatedTs {
			return list[i].CreatedTs > list[j].CreatedTs
		}
		return list[i].ID < list[j].ID
	})
	if find.Limit > 0 && len(list) > find.Limit {
		list = list[:find.Limit]
	}
	return list, nil
}

func (d *DB) DeleteConversation(ctx context.Context, id string) error {
	err := d.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(makeConversationKey(id))
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete conversation")
	}
	return nil
}
