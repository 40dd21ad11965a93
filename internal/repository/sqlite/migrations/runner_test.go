package migrations_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/obazhan/sportclub/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

func TestRunMigrations(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	// An in-memory database exists per connection; keep the pool at one.
	db.SetMaxOpenConns(1)

	// Enable foreign keys for consistency with production.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	ctx := context.Background()

	// First run should apply all migrations.
	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first migration run: %v", err)
	}

	// Verify the users table exists by inserting a row.
	_, err = db.ExecContext(ctx,
		`INSERT INTO users (full_name, email, password, created_at, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		"Test User", "test@example.com", "hash123",
	)
	if err != nil {
		t.Fatalf("insert into users: %v", err)
	}

	// Messages reference users, so the foreign key must hold.
	_, err = db.ExecContext(ctx,
		`INSERT INTO messages (sender_id, receiver_id, text, created_at, updated_at)
		 VALUES (999, 999, 'orphan', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
	)
	if err == nil {
		t.Fatal("expected foreign key violation for orphan message")
	}

	// Verify schema_migrations tracks the applied migrations.
	var count int
	err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	if err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count == 0 {
		t.Fatal("expected at least one migration recorded in schema_migrations")
	}
}
