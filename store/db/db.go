package db

import (
	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/internal/profile"
	"github.com/seekrhq/seekr/store"
	"github.com/seekrhq/seekr/store/db/badger"
	"github.com/seekrhq/seekr/store/db/memory"
	"github.com/seekrhq/seekr/store/db/postgres"
	"github.com/seekrhq/seekr/store/db/sqlite"
)

// NewDBDriver creates new db driver based on profile.
//
// "memory" holds everything in process and is the default for dev and tests.
// "sqlite" and "postgres" are the relational backends. "badger" keeps
// entities as JSON documents in an embedded key-value store.
func NewDBDriver(profile *profile.Profile) (store.Driver, error) {
	var driver store.Driver
	var err error

	switch profile.Driver {
	case "memory":
		driver, err = memory.NewDB(profile)
	case "sqlite":
		driver, err = sqlite.NewDB(profile)
	case "postgres":
		driver, err = postgres.NewDB(profile)
	case "badger":
		driver, err = badger.NewDB(profile)
	default:
		return nil, errors.New("unknown db driver: supported drivers are 'memory', 'sqlite', 'postgres' and 'badger'")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create db driver")
	}
	return driver, nil
}
