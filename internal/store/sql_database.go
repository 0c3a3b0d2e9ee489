package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/migrations"
)

// Supported SQL dialects. The values double as goose dialect names.
const (
	dialectPostgres = "pgx"
	dialectSQLite   = "sqlite3"
)

// DB is a database/sql connection together with the dialect specific pieces
// the note repository needs.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// placeholder returns the squirrel placeholder style of the dialect.
func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.dialect == dialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// retryable reports whether err is a transient failure according to the
// dialect classifier.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// openDB opens a database/sql pool for dialect, applies tune and pings it.
// Failures are reported as [ErrStoreUnavailable].
func openDB(ctx context.Context, dialect, dsn string, tune func(*sql.DB), log *logger.Logger) (*sql.DB, error) {
	log = &logger.Logger{Logger: log.With().Str("dialect", dialect).Logger()}

	conn, err := sql.Open(dialect, dsn)
	if err != nil {
		log.Err(err).Str("func", "openDB").Msg("cannot open database")
		return nil, fmt.Errorf("%w: open %s: %w", ErrStoreUnavailable, dialect, err)
	}

	if tune != nil {
		tune(conn)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "openDB").Msg("database did not answer ping")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrStoreUnavailable, dialect, err)
	}

	log.Info().Str("func", "openDB").Msg("database connected")
	return conn, nil
}
