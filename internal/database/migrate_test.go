package database

import (
	"testing"
)

func TestMigrate_Success(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	tables := []string{
		"user_settings", "verses", "todos", "actions", "journal_entries",
		"daily_snapshots", "tracker_templates", "daily_tracker_logs",
		"hobby_links", "goals", "category_data", "text_tool",
		"card_sections", "section_entries", "daily_goals", "contacts_websites",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("expected table %s to exist: %v", table, err)
		}
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("first migration: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("second migration should not fail: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("querying migrations: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 applied migrations, got %d", count)
	}
}

func TestMigrationVersion(t *testing.T) {
	version, err := migrationVersion("003_category_snapshots.up.sql")
	if err != nil {
		t.Fatalf("parsing version: %v", err)
	}
	if version != 3 {
		t.Errorf("expected version 3, got %d", version)
	}

	if _, err := migrationVersion("bogus.up.sql"); err == nil {
		t.Error("expected an error for a file without a version prefix")
	}
}
