package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) GetUser(ctx context.Context, find *store.FindUser) (*store.User, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find.ID != nil {
		where, args = append(where, "id = ?"), append(args, *find.ID)
	}
	if find.Email != nil {
		where, args = append(where, "email = ?"), append(args, *find.Email)
	}

	query := `SELECT id, email, password_hash, first_name, last_name, profile_image_url, created_ts, updated_ts FROM "user" WHERE ` + strings.Join(where, " AND ") + ` LIMIT 1`
	user := &store.User{}
	err := d.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.ProfileImageURL, &user.CreatedTs, &user.UpdatedTs,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get user")
	}
	return user, nil
}

// UpsertUser runs select-then-write inside a transaction. With the single
// pooled connection this is atomic with respect to any other statement.
func (d *DB) UpsertUser(ctx context.Context, upsert *store.UpsertUser) (*store.User, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	var taken string
	err = tx.QueryRowContext(ctx, `SELECT id FROM "user" WHERE email = ? AND id != ?`, upsert.Email, upsert.ID).Scan(&taken)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}
	if err == nil {
		return nil, store.ErrEmailTaken
	}

	existing := &store.User{}
	err = tx.QueryRowContext(ctx, `SELECT id, email, password_hash, first_name, last_name, profile_image_url, created_ts, updated_ts FROM "user" WHERE id = ?`, upsert.ID).Scan(
		&existing.ID, &existing.Email, &existing.PasswordHash, &existing.FirstName, &existing.LastName, &existing.ProfileImageURL, &existing.CreatedTs, &existing.UpdatedTs,
	)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.Wrap(err, "failed to find user")
	}

	user := &store.User{
		ID:        upsert.ID,
		Email:     upsert.Email,
		CreatedTs: upsert.CreatedTs,
		UpdatedTs: upsert.UpdatedTs,
	}
	if err == nil {
		// Merge: unset fields keep their stored values.
		user.CreatedTs = existing.CreatedTs
		user.PasswordHash = existing.PasswordHash
		user.FirstName = existing.FirstName
		user.LastName = existing.LastName
		user.ProfileImageURL = existing.ProfileImageURL
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

	stmt := `INSERT INTO "user" (id, email, password_hash, first_name, last_name, profile_image_url, created_ts, updated_ts)
		VALUES (` + placeholders(8) + `)
		ON CONFLICT (id) DO UPDATE SET
			email = excluded.email,
			password_hash = excluded.password_hash,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			profile_image_url = excluded.profile_image_url,
			updated_ts = excluded.updated_ts`
	if _, err := tx.ExecContext(ctx, stmt,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.ProfileImageURL, user.CreatedTs, user.UpdatedTs,
	); err != nil {
		return nil, errors.Wrap(err, "failed to upsert user")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}
	return user, nil
}
