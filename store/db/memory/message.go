package memory

import (
	"context"
	"sort"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) CreateMessage(ctx context.Context, create *store.Message) (*store.Message, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	message := *create
	d.messages = append(d.messages, &message)
	return create, nil
}

func (d *DB) ListMessages(ctx context.Context, find *store.FindMessage) ([]*store.Message, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	list := make([]*store.Message, 0)
	for _, message := range d.messages {
		if find.ConversationID != nil && message.ConversationID != *find.ConversationID {
			continue
		}
		m := *message
		list = append(list, &m)
	}
	// Stable sort keeps insertion order for equal created_ts.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedTs < list[j].CreatedTs
	})
	return list, nil
}

func (d *DB) DeleteMessages(ctx context.Context, delete *store.DeleteMessage) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.messages[:0]
	for _, message := range d.messages {
		if delete.ConversationID != nil && message.ConversationID == *delete.ConversationID {
			continue
		}
		kept = append(kept, message)
	}
	d.messages = kept
	return nil
}
