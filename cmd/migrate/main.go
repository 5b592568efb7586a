// Command migrate prepares the Postgres database used for durable
// dashboard sessions.
//
//	./migrate [--database-url postgres://...]   # create tables
//	./migrate clear-sessions                    # drop every stored session
package main

import (
	"fmt"
	"os"

	"fleet-dashboard/internal/config"
	"fleet-dashboard/internal/database"
	"fleet-dashboard/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dbURL string
	log   = logger.New(&config.LoggerConfig{Level: "info"})
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the session storage tables",
	Long: `Create the tables the fleet dashboard backend owns in the
database named by --database-url (or DATABASE_URL). Migrations are
idempotent and safe to run on every deploy.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if dbURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable not set")
		}
		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return withDB(func(db *sqlx.DB) error {
			if err := database.Migrate(db); err != nil {
				return err
			}
			log.WithField("count", len(database.Migrations)).Info("✅ Migrations completed")
			return nil
		})
	},
}

var clearSessionsCmd = &cobra.Command{
	Use:   "clear-sessions",
	Short: "Delete every stored dashboard session",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withDB(func(db *sqlx.DB) error {
			res, err := db.Exec(`DELETE FROM session_storage`)
			if err != nil {
				return fmt.Errorf("clearing sessions: %w", err)
			}
			n, _ := res.RowsAffected()
			log.WithField("deleted", n).Info("🧹 Sessions cleared")
			return nil
		})
	},
}

func withDB(fn func(db *sqlx.DB) error) error {
	db, err := database.Connect(dbURL, log)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	rootCmd.PersistentFlags().StringVar(&dbURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection URL")
	rootCmd.AddCommand(clearSessionsCmd)

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("❌ Migration failed")
		os.Exit(1)
	}
}
