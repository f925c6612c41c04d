package testutil

import (
	"testing"

	"uni3_backend/internal/db"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenInMemoryDB opens a private in-memory SQLite database with the schema applied.
// Each call gets its own database; it is closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Shared cache keeps every pooled connection on the same in-memory database.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: db.NewLogger()})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := d.DB()
	if err != nil {
		t.Fatalf("test db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(d); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return d
}

// OpenSeededDB is OpenInMemoryDB plus the demo roles, users and packages
func OpenSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	d := OpenInMemoryDB(t)
	if err := db.Seed(d); err != nil {
		t.Fatalf("seed test db: %v", err)
	}
	return d
}
