package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) CreateSearch(ctx context.Context, create *store.Search) (*store.Search, error) {
	sources, err := marshalSources(create.Sources)
	if err != nil {
		return nil, err
	}

	fields := []string{"id", "user_id", "query", "response", "category", "sources", "created_ts"}
	args := []any{create.ID, create.UserID, create.Query, create.Response, create.Category, sources, create.CreatedTs}

	stmt := `INSERT INTO search (` + strings.Join(fields, ", ") + `) VALUES (` + placeholders(len(args)) + `)`
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return nil, errors.Wrap(err, "failed to create search")
	}
	return create, nil
}

func (d *DB) GetSearch(ctx context.Context, find *store.FindSearch) (*store.Search, error) {
	where, args := []string{"1 = 1"}, []any{}
	if find.ID != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *find.ID)
	}

	query := `SELECT id, user_id, query, response, category, sources, created_ts FROM search WHERE ` + strings.Join(where, " AND ") + ` LIMIT 1`
	search := &store.Search{}
	var sources string
	err := d.db.QueryRowContext(ctx, query, args...).Scan(
		&search.ID, &search.UserID, &search.Query, &search.Response, &search.Category, &sources, &search.CreatedTs,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get search")
	}
	if search.Sources, err = unmarshalSources(sources); err != nil {
		return nil, err
	}
	return search, nil
}
