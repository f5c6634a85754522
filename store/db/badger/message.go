package badger

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) CreateMessage(ctx context.Context, create *store.Message) (*store.Message, error) {
	seq, err := d.nextMessageSeq()
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate message sequence")
	}

	err = d.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, makeMessageKey(create.ConversationID, seq), create)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create message")
	}
	return create, nil
}

func (d *DB) ListMessages(ctx context.Context, find *store.FindMessage) ([]*store.Message, error) {
	if find.ConversationID == nil {
		return nil, errors.New("conversation id required")
	}

	list := make([]*store.Message, 0)
	err := d.db.View(func(txn *badger.Txn) error {
		return forEachValue(txn, makeMessagePrefix(*find.ConversationID), func(val []byte) error {
			message := &store.Message{}
			if err := json.Unmarshal(val, message); err != nil {
				return err
			}
			list = append(list, message)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	// Prefix iteration already yields insertion order; the stable sort only
	// reorders across distinct created_ts values.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedTs < list[j].CreatedTs
	})
	return list, nil
}

func (d *DB) DeleteMessages(ctx context.Context, delete *store.DeleteMessage) error {
	if delete.ConversationID == nil {
		return errors.New("no condition to delete")
	}

	prefix := makeMessagePrefix(*delete.ConversationID)
	err := d.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		keys := make([][]byte, 0)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete messages")
	}
	return nil
}
