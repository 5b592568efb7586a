package database

import (
	"fmt"

	"fleet-dashboard/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Connect opens and pings the Postgres database at dbURL
func Connect(dbURL string, log *logger.Logger) (*sqlx.DB, error) {
	log.WithField("url_length", len(dbURL)).Info("🔌 Connecting to database")

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("✅ Database connection established")
	return db, nil
}

// Migrations creates the tables the dashboard backend owns. Fleet records
// are seeded in memory and have no tables.
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS session_storage (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at BIGINT NOT NULL DEFAULT EXTRACT(EPOCH FROM NOW())::BIGINT
	)`,
}

// Migrate runs every migration in order
func Migrate(db *sqlx.DB) error {
	for i, migration := range Migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
