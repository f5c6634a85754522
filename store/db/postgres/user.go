package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/store"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaks.
const uniqueViolation = "23505"

func (d *DB) GetUser(ctx context.Context, find *store.FindUser) (*store.User, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find.ID != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *find.ID)
	}
	if find.Email != nil {
		where, args = append(where, "email = "+placeholder(len(args)+1)), append(args, *find.Email)
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

// UpsertUser is a single conditional write: ON CONFLICT merges the provided
// fields and preserves the rest, so concurrent calls for the same id can
// never create duplicates.
func (d *DB) UpsertUser(ctx context.Context, upsert *store.UpsertUser) (*store.User, error) {
	stmt := `INSERT INTO "user" (id, email, password_hash, first_name, last_name, profile_image_url, created_ts, updated_ts)
		VALUES ($1, $2, COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''), COALESCE($6, ''), $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			password_hash = COALESCE($3, "user".password_hash),
			first_name = COALESCE($4, "user".first_name),
			last_name = COALESCE($5, "user".last_name),
			profile_image_url = COALESCE($6, "user".profile_image_url),
			updated_ts = EXCLUDED.updated_ts
		RETURNING id, email, password_hash, first_name, last_name, profile_image_url, created_ts, updated_ts`

	user := &store.User{}
	err := d.db.QueryRowContext(ctx, stmt,
		upsert.ID, upsert.Email, upsert.PasswordHash, upsert.FirstName, upsert.LastName, upsert.ProfileImageURL, upsert.CreatedTs, upsert.UpdatedTs,
	).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.ProfileImageURL, &user.CreatedTs, &user.UpdatedTs,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, store.ErrEmailTaken
		}
		return nil, errors.Wrap(err, "failed to upsert user")
	}
	return user, nil
}
