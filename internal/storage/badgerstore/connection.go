// Package badgerstore implements interfaces.Store (C12) over BadgerDB via
// badgerhold, mirroring the teacher's document-storage wiring but keyed on
// the capture pipeline's (projectName, filepath) identity.
package badgerstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/codescribe/internal/common"
)

// DB wraps the underlying badgerhold handle.
type DB struct {
	store  *badgerhold.Store
	logger arbor.ILogger
}

// Open opens (or creates) the Badger database at config.Path, optionally
// wiping it first when ResetOnStartup is set — used by test-db and one-shot
// re-capture runs.
func Open(config *common.BadgerConfig, logger arbor.ILogger) (*DB, error) {
	if config.ResetOnStartup {
		if _, err := os.Stat(config.Path); err == nil {
			logger.Debug().Str("path", config.Path).Msg("deleting existing store (reset_on_startup=true)")
			if err := os.RemoveAll(config.Path); err != nil {
				logger.Warn().Err(err).Str("path", config.Path).Msg("failed to delete store directory")
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(config.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = config.Path
	options.ValueDir = config.Path
	options.Logger = nil // disable badger's own logger; arbor owns this process's logs

	store, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store at %q: %w", config.Path, err)
	}

	logger.Debug().Str("path", config.Path).Msg("badger store opened")
	return &DB{store: store, logger: logger}, nil
}

func (db *DB) Close() error {
	if db.store == nil {
		return nil
	}
	return db.store.Close()
}
