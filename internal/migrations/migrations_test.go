package migrations_test

import (
	"context"
	"testing"

	"github.com/geoplay/geostats/internal/database"
	"github.com/geoplay/geostats/internal/migrations"
)

func TestMigrations(t *testing.T) {
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	for _, table := range []string{"reference_scores", "results"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q not found: %v", table, err)
		}
	}

	// The reference leaderboard ships seeded.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM reference_scores").Scan(&count); err != nil {
		t.Fatalf("counting reference scores: %v", err)
	}
	if count != 5 {
		t.Errorf("reference scores = %d, want 5", count)
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := migrations.Run(db); err != nil {
		t.Fatalf("second run (should be no-op): %v", err)
	}
}
