package store

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notes-keeper/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps an existing *sql.DB the way NewConnectPostgres would.
func newDBFromSQL(db *sql.DB, dialect string) *DB {
	d := &DB{
		DB:      db,
		dialect: dialect,
		logger:  logger.Nop(),
	}
	if dialect == dialectPostgres {
		d.errorClassificator = NewPostgresErrorClassifier()
	}
	return d
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// sequenceIDs hands out "id-1", "id-2", ... in order.
type sequenceIDs struct {
	n int
}

func (g *sequenceIDs) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}
