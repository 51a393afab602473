package testutil

import (
	"database/sql"
	"testing"

	"github.com/taskdeck/taskdeck-go/internal/repository"
)

// OpenTestDB opens a named in-memory SQLite database with the schema
// applied. The shared cache keeps all pool connections on the same database.
// The DB is closed via t.Cleanup.
func OpenTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()

	db, err := repository.NewDB(repository.DriverSQLite, "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
