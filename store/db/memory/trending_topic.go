package memory

import (
	"context"
	"sort"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) CreateTrendingTopic(ctx context.Context, create *store.TrendingTopic) (*store.TrendingTopic, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	topic := *create
	d.topics[topic.ID] = &topic
	return create, nil
}

func (d *DB) ListTrendingTopics(ctx context.Context, find *store.FindTrendingTopic) ([]*store.TrendingTopic, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	list := make([]*store.TrendingTopic, 0)
	for _, topic := range d.topics {
		if find.IsActive != nil && topic.IsActive != *find.IsActive {
			continue
		}
		t := *topic
		list = append(list, &t)
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

func (d *DB) IncrementTopicViews(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if topic, ok := d.topics[id]; ok {
		topic.ViewCount++
	}
	return nil
}
