package store

import (
	"context"
	"embed"
	"log/slog"

	"github.com/pkg/errors"
)

//go:embed migration
var migrationFS embed.FS

const latestSchemaFileName = "LATEST.sql"

// Migrate brings the backing medium up to a usable state: relational drivers
// get the embedded schema applied on first run, then reference data is
// seeded. Safe to call on every startup.
func (s *Store) Migrate(ctx context.Context) error {
	if db := s.driver.GetDB(); db != nil {
		initialized, err := s.driver.IsInitialized(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to check database initialization")
		}
		if !initialized {
			buf, err := migrationFS.ReadFile("migration/" + s.profile.Driver + "/" + latestSchemaFileName)
			if err != nil {
				return errors.Wrapf(err, "failed to read latest schema for driver %q", s.profile.Driver)
			}
			if _, err := db.ExecContext(ctx, string(buf)); err != nil {
				return errors.Wrap(err, "failed to apply latest schema")
			}
			slog.Info("database schema initialized", "driver", s.profile.Driver)
		}
	}

	if err := s.Seed(ctx); err != nil {
		return errors.Wrap(err, "failed to seed reference data")
	}
	return nil
}
