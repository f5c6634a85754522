package memory

import (
	"context"
	"sort"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) CreateConversation(ctx context.Context, create *store.Conversation) (*store.Conversation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	conversation := *create
	d.conversations[conversation.ID] = &conversation
	return create, nil
}

func (d *DB) GetConversation(ctx context.Context, id string) (*store.Conversation, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if conversation, ok := d.conversations[id]; ok {
		c := *conversation
		return &c, nil
	}
	return nil, nil
}

func (d *DB) UpdateConversation(ctx context.Context, update *store.UpdateConversation) (*store.Conversation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	conversation, ok := d.conversations[update.ID]
	if !ok {
		return nil, store.ErrConversationNotFound
	}
	if update.Title != nil {
		conversation.Title = *update.Title
	}
	if update.Summary != nil {
		conversation.Summary = *update.Summary
	}
	conversation.UpdatedTs = update.UpdatedTs
	c := *conversation
	return &c, nil
}

func (d *DB) ListConversations(ctx context.Context, find *store.FindConversation) ([]*store.Conversation, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	list := make([]*store.Conversation, 0)
	for _, conversation := range d.conversations {
		if find.UserID != nil && conversation.UserID != *find.UserID {
			continue
		}
		c := *conversation
		list = append(list, &c)
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
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.conversations, id)
	return nil
}
