package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"barky/internal/logger"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_bookmarks",
		SQL: `CREATE TABLE IF NOT EXISTS bookmarks (
  id         BIGSERIAL   PRIMARY KEY,
  title      TEXT        NOT NULL CHECK (title <> ''),
  url        TEXT        NOT NULL CHECK (url <> ''),
  notes      TEXT,
  date_added TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_bookmarks_date_added",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_bookmarks_date_added ON bookmarks (date_added);`,
	},
	{
		Name: "create_table_snippets",
		SQL: `CREATE TABLE IF NOT EXISTS snippets (
  id           BIGSERIAL   PRIMARY KEY,
  title        TEXT        NOT NULL,
  language     TEXT        NOT NULL DEFAULT 'text',
  storage_path TEXT        NOT NULL UNIQUE,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_snippets_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_snippets_created_at ON snippets (created_at);`,
	},
}

const sentinelQuery = `SELECT to_regclass('public.bookmarks') IS NOT NULL AND to_regclass('public.snippets') IS NOT NULL`

// EnsureMigrated runs the schema steps unless both bookmarks and snippets tables already exist.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logger.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(logger.String("component", "database"), logger.String("db_host", dbHost))

	log.Info("db_migration_check")

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			logger.Error(err),
			logger.Int64("duration_ms", time.Since(start).Milliseconds()))
		return fmt.Errorf("failed to check sentinel tables: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			logger.String("detail", "schema already exists, skipping migration"),
			logger.Int64("duration_ms", time.Since(start).Milliseconds()))
		return nil
	}

	log.Info("db_migration_start")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				logger.String("migration_step", step.Name),
				logger.Error(err),
				logger.Int64("duration_ms", time.Since(start).Milliseconds()),
				logger.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()))
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			logger.String("migration_step", step.Name),
			logger.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()))
	}

	log.Info("db_migration_success", logger.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
