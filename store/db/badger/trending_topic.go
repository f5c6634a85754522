package badger

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) CreateTrendingTopic(ctx context.Context, create *store.TrendingTopic) (*store.TrendingTopic, error) {
	err := d.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, makeTopicKey(create.ID), create)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create trending_topic")
	}
	return create, nil
}

func (d *DB) ListTrendingTopics(ctx context.Context, find *store.FindTrendingTopic) ([]*store.TrendingTopic, error) {
	list := make([]*store.TrendingTopic, 0)
	err := d.db.View(func(txn *badger.Txn) error {
		return forEachValue(txn, []byte(topicPrefix+keySeparator), func(val []byte) error {
			topic := &store.TrendingTopic{}
			if err := json.Unmarshal(val, topic); err != nil {
				return err
			}
			if find.IsActive != nil && topic.IsActive != *find.IsActive {
				return nil
			}
			list = append(list, topic)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trending_topics")
	}

	// view_count descending; created_ts then id keep ties reproducible.
	sort.Slice(list, func(i, j int) bool {
		if list[i].ViewCount != list[j].ViewCount {
			return list[i].ViewCount > list[j].ViewCount
		}
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

// IncrementTopicViews is a read-modify-write inside one transaction, which
// BadgerDB serializes against conflicting writers.
func (d *DB) IncrementTopicViews(ctx context.Context, id string) error {
	err := d.db.Update(func(txn *badger.Txn) error {
		topic := &store.TrendingTopic{}
		found, err := getJSON(txn, makeTopicKey(id), topic)
		if err != nil {
			return err
		}
		if !found {
			return nil
		}
		topic.ViewCount++
		return setJSON(txn, makeTopicKey(id), topic)
	})
	if err != nil {
		return errors.Wrap(err, "failed to increment topic views")
	}
	return nil
}
