package memory

import (
	"context"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) GetUser(ctx context.Context, find *store.FindUser) (*store.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if find.ID != nil {
		if user, ok := d.users[*find.ID]; ok {
			u := *user
			return &u, nil
		}
		return nil, nil
	}
	if find.Email != nil {
		for _, user := range d.users {
			if user.Email == *find.Email {
				u := *user
				return &u, nil
			}
		}
	}
	return nil, nil
}

func (d *DB) UpsertUser(ctx context.Context, upsert *store.UpsertUser) (*store.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for id, user := range d.users {
		if id != upsert.ID && user.Email == upsert.Email {
			return nil, store.ErrEmailTaken
		}
	}

	existing, ok := d.users[upsert.ID]
	if !ok {
		user := &store.User{
			ID:        upsert.ID,
			Email:     upsert.Email,
			CreatedTs: upsert.CreatedTs,
			UpdatedTs: upsert.UpdatedTs,
		}
		applyUserFields(user, upsert)
		d.users[user.ID] = user
		u := *user
		return &u, nil
	}

	merged := *existing
	merged.Email = upsert.Email
	merged.UpdatedTs = upsert.UpdatedTs
	applyUserFields(&merged, upsert)
	d.users[merged.ID] = &merged
	u := merged
	return &u, nil
}

func applyUserFields(user *store.User, upsert *store.UpsertUser) {
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
}
