package services_test

import (
	"testing"

	"nutritrack/config"
	"nutritrack/store"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test and hands back
// both the raw handle and the store over it.
func newTestDB(t *testing.T) (*gorm.DB, *store.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	// a second pooled connection would see its own empty :memory: db
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db, store.New(db)
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	_, st := newTestDB(t)
	return st
}
