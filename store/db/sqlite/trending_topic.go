package sqlite

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/store"
)

func (d *DB) CreateTrendingTopic(ctx context.Context, create *store.TrendingTopic) (*store.TrendingTopic, error) {
	fields := []string{"id", "title", "description", "category", "read_time", "icon", "view_count", "is_active", "created_ts"}
	args := []any{create.ID, create.Title, create.Description, create.Category, create.ReadTime, create.Icon, create.ViewCount, create.IsActive, create.CreatedTs}

	stmt := `INSERT INTO trending_topic (` + strings.Join(fields, ", ") + `) VALUES (` + placeholders(len(args)) + `)`
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return nil, errors.Wrap(err, "failed to create trending_topic")
	}
	return create, nil
}

func (d *DB) ListTrendingTopics(ctx context.Context, find *store.FindTrendingTopic) ([]*store.TrendingTopic, error) {
	where, args := []string{"1 = 1"}, []any{}
	if find.IsActive != nil {
		where, args = append(where, "is_active = ?"), append(args, *find.IsActive)
	}

	query := `SELECT id, title, description, category, read_time, icon, view_count, is_active, created_ts FROM trending_topic WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY view_count DESC, created_ts ASC, id ASC`
	if find.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, find.Limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trending_topics")
	}
	defer rows.Close()

	list := make([]*store.TrendingTopic, 0)
	for rows.Next() {
		topic := &store.TrendingTopic{}
		if err := rows.Scan(&topic.ID, &topic.Title, &topic.Description, &topic.Category, &topic.ReadTime, &topic.Icon, &topic.ViewCount, &topic.IsActive, &topic.CreatedTs); err != nil {
			return nil, errors.Wrap(err, "failed to scan trending_topic")
		}
		list = append(list, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate trending_topics")
	}
	return list, nil
}

// IncrementTopicViews relies on the database to do the arithmetic so that
// concurrent increments never lose updates. Missing ids affect zero rows,
// which is deliberately not an error.
func (d *DB) IncrementTopicViews(ctx context.Context, id string) error {
	if _, err := d.db.ExecContext(ctx, `UPDATE trending_topic SET view_count = view_count + 1 WHERE id = ?`, id); err != nil {
		return errors.Wrap(err, "failed to increment topic views")
	}
	return nil
}
