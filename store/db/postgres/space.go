package postgres

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) CreateSpace(ctx context.Context, create *store.Space) (*store.Space, error) {
	tags, err := marshalTags(create.Tags)
	if err != nil {
		return nil, err
	}

	fields := []string{"id", "title", "description", "category", "template_count", "icon", "gradient", "tags", "is_active", "created_ts"}
	args := []any{create.ID, create.Title, create.Description, create.Category, create.TemplateCount, create.Icon, create.Gradient, tags, create.IsActive, create.CreatedTs}

	stmt := `INSERT INTO space (` + strings.Join(fields, ", ") + `) VALUES (` + placeholders(len(args)) + `)`
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return nil, errors.Wrap(err, "failed to create space")
	}
	return create, nil
}

func (d *DB) ListSpaces(ctx context.Context, find *store.FindSpace) ([]*store.Space, error) {
	where, args := []string{"1 = 1"}, []any{}
	if find.IsActive != nil {
		where, args = append(where, "is_active = "+placeholder(len(args)+1)), append(args, *find.IsActive)
	}
	if find.Category != nil {
		where, args = append(where, "category = "+placeholder(len(args)+1)), append(args, *find.Category)
	}

	query := `SELECT id, title, description, category, template_count, icon, gradient, tags, is_active, created_ts FROM space WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY created_ts ASC, id ASC`
	if find.Limit > 0 {
		query += ` LIMIT ` + placeholder(len(args)+1)
		args = append(args, find.Limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spaces")
	}
	defer rows.Close()

	list := make([]*store.Space, 0)
	for rows.Next() {
		space := &store.Space{}
		var tags string
		if err := rows.Scan(&space.ID, &space.Title, &space.Description, &space.Category, &space.TemplateCount, &space.Icon, &space.Gradient, &tags, &space.IsActive, &space.CreatedTs); err != nil {
			return nil, errors.Wrap(err, "failed to scan space")
		}
		if space.Tags, err = unmarshalTags(tags); err != nil {
			return nil, err
		}
		list = append(list, space)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate spaces")
	}
	return list, nil
}
