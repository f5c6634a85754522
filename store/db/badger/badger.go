// Package badger implements the store driver on BadgerDB, persisting each
// entity as a JSON document keyed by type prefix. Transactions give every
// operation per-record atomicity.
package badger

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/internal/profile"
	"github.com/seekrhq/seekr/store"
)

const messageSequenceBandwidth = 100

type DB struct {
	db      *badger.DB
	profile *profile.Profile
	// msgSeq hands out monotonically increasing message sequence numbers;
	// embedded big-endian in the message key, they preserve insertion
	// order under prefix iteration.
	msgSeq *badger.Sequence
}

// badgerLoggerAdapter adapts slog.Logger to the badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// NewDB opens the BadgerDB database at the profile DSN directory. An empty
// DSN opens an in-memory instance, which tests rely on.
func NewDB(profile *profile.Profile) (store.Driver, error) {
	var opts badger.Options
	if profile.DSN == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(profile.DSN)
	}
	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open badger database")
	}

	msgSeq, err := db.GetSequence([]byte(messageSeqKey), messageSequenceBandwidth)
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to open message sequence")
	}

	return &DB{db: db, profile: profile, msgSeq: msgSeq}, nil
}

// GetDB returns nil; there is no relational medium behind this driver.
func (*DB) GetDB() *sql.DB {
	return nil
}

func (d *DB) Close() error {
	if err := d.msgSeq.Release(); err != nil {
		return errors.Wrap(err, "failed to release message sequence")
	}
	return d.db.Close()
}

func (*DB) IsInitialized(context.Context) (bool, error) {
	return true, nil
}

// nextMessageSeq returns the next non-zero message sequence number.
func (d *DB) nextMessageSeq() (uint64, error) {
	seq, err := d.msgSeq.Next()
	if err != nil {
		return 0, err
	}
	// Sequences can return 0 on first use; skip it so zero stays invalid.
	if seq == 0 {
		seq, err = d.msgSeq.Next()
		if err != nil {
			return 0, err
		}
	}
	return seq, nil
}
