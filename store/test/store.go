package test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seekrhq/seekr/internal/profile"
	"github.com/seekrhq/seekr/store"
	"github.com/seekrhq/seekr/store/db"
)

// NewTestingStore builds a migrated, seeded store against the driver named
// by SEEKR_TEST_DRIVER (memory, sqlite, badger or postgres). The default is
// the in-process memory driver so the suite runs everywhere.
func NewTestingStore(ctx context.Context, t *testing.T) *store.Store {
	testingProfile := getTestingProfile(t)
	dbDriver, err := db.NewDBDriver(testingProfile)
	require.NoError(t, err)

	st := store.New(dbDriver, testingProfile)
	require.NoError(t, st.Migrate(ctx))
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Logf("failed to close store: %v", err)
		}
	})
	return st
}

func getTestingProfile(t *testing.T) *profile.Profile {
	driver := getDriverFromEnv()
	p := &profile.Profile{
		Mode:   "dev",
		Driver: driver,
	}
	switch driver {
	case "sqlite":
		p.Data = t.TempDir()
		p.DSN = filepath.Join(p.Data, "seekr_test.db")
	case "badger":
		// Empty DSN runs BadgerDB in memory.
		p.DSN = ""
	case "postgres":
		dsn := os.Getenv("POSTGRES_TEST_DSN")
		if dsn == "" {
			t.Skip("POSTGRES_TEST_DSN is not set")
		}
		p.DSN = dsn
	}
	return p
}

func getDriverFromEnv() string {
	driver := os.Getenv("SEEKR_TEST_DRIVER")
	if driver == "" {
		driver = "memory"
	}
	return driver
}
