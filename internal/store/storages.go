package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/notes-keeper/internal/config"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/utils"
)

// Storages groups the server-side stores.
type Storages struct {
	Notes NoteStore
}

// NewStorages opens the note store selected by the scheme of cfg.DSN:
//   - mongodb:// and mongodb+srv:// connect to MongoDB;
//   - postgres:// and postgresql:// connect to PostgreSQL and run migrations;
//   - sqlite://<path> and file:<path> open a SQLite file and run migrations;
//   - memory:// keeps notes in process memory.
//
// Any connection failure is returned so that the caller can abort startup.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Str("backend", backendName(cfg.DSN)).Msg("creating new storages...")

	notes, err := newNoteStore(ctx, cfg.DSN, log)
	if err != nil {
		return nil, err
	}

	return &Storages{Notes: notes}, nil
}

// Close releases every store connection.
func (s *Storages) Close(ctx context.Context) error {
	return s.Notes.Close(ctx)
}

func newNoteStore(ctx context.Context, dsn string, log *logger.Logger) (NoteStore, error) {
	ids := utils.NewUUIDGenerator()

	switch backendName(dsn) {
	case "mongodb":
		return NewConnectMongo(ctx, dsn, log)
	case "postgres":
		db, err := NewConnectPostgres(ctx, dsn, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: migration failed: %w", ErrStoreUnavailable, err)
		}
		return NewNoteRepository(db, ids, log), nil
	case "sqlite":
		db, err := NewConnectSQLite(ctx, sqlitePath(dsn), log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: migration failed: %w", ErrStoreUnavailable, err)
		}
		return NewNoteRepository(db, ids, log), nil
	case "memory":
		return NewMemoryNoteStore(ids), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
}

// backendName maps the URL scheme of dsn to a backend name, or "" when the
// scheme is unknown.
func backendName(dsn string) string {
	scheme, _, ok := strings.Cut(dsn, ":")
	if !ok {
		return ""
	}

	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return "mongodb"
	case "postgres", "postgresql":
		return "postgres"
	case "sqlite", "sqlite3", "file":
		return "sqlite"
	case "memory":
		return "memory"
	default:
		return ""
	}
}

// sqlitePath turns sqlite:///abs/path, sqlite://rel/path and file:path into
// a filename accepted by go-sqlite3.
func sqlitePath(dsn string) string {
	if strings.HasPrefix(dsn, "file:") {
		return dsn
	}

	_, rest, _ := strings.Cut(dsn, "://")
	if rest == "" {
		return ":memory:"
	}
	return rest
}

// redactDSN hides credentials before the URL ends up in an error or log.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "<unparsable>"
	}
	return u.Redacted()
}
