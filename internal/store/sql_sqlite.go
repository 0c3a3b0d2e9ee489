package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/notes-keeper/internal/logger"
)

const sqliteInMemory = ":memory:"

// NewConnectSQLite opens the SQLite file at path. The file and its directory
// are created on first use.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if err := ensureSQLiteFile(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("cannot prepare database file")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	// one writer at a time, otherwise SQLITE_BUSY
	conn, err := openDB(ctx, dialectSQLite, path, func(db *sql.DB) { db.SetMaxOpenConns(1) }, log)
	if err != nil {
		return nil, err
	}

	return &DB{DB: conn, dialect: dialectSQLite, logger: log}, nil
}

func ensureSQLiteFile(path string) error {
	if path == sqliteInMemory {
		return nil
	}

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	return f.Close()
}
