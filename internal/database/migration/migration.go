package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"blogapi/internal/config"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            BIGSERIAL   PRIMARY KEY,
  username      TEXT        NOT NULL UNIQUE,
  email         TEXT        NOT NULL UNIQUE,
  password_hash TEXT        NOT NULL,
  avatar_url    TEXT,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  last_login    TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_posts",
		SQL: `CREATE TABLE IF NOT EXISTS posts (
  id            BIGSERIAL   PRIMARY KEY,
  title         TEXT        NOT NULL,
  summary       TEXT,
  content_path  TEXT,
  author_id     BIGINT      NOT NULL REFERENCES users (id),
  cover_image   TEXT,
  is_published  BOOLEAN     NOT NULL DEFAULT FALSE,
  is_protected  BOOLEAN     NOT NULL DEFAULT FALSE,
  password_hash TEXT,
  uploader_name TEXT,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_projects",
		SQL: `CREATE TABLE IF NOT EXISTS projects (
  id            BIGSERIAL   PRIMARY KEY,
  name          TEXT        NOT NULL,
  description   TEXT,
  demo_url      TEXT,
  source_url    TEXT,
  cover_image   TEXT,
  author_id     BIGINT      NOT NULL REFERENCES users (id),
  content_path  TEXT,
  is_published  BOOLEAN     NOT NULL DEFAULT TRUE,
  is_protected  BOOLEAN     NOT NULL DEFAULT FALSE,
  password_hash TEXT,
  uploader_name TEXT,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_life_posts",
		SQL: `CREATE TABLE IF NOT EXISTS life_posts (
  id            BIGSERIAL   PRIMARY KEY,
  title         TEXT        NOT NULL,
  summary       TEXT,
  content_path  TEXT,
  is_published  BOOLEAN     NOT NULL DEFAULT TRUE,
  is_protected  BOOLEAN     NOT NULL DEFAULT FALSE,
  password_hash TEXT,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_tags",
		SQL: `CREATE TABLE IF NOT EXISTS tags (
  id         BIGSERIAL   PRIMARY KEY,
  name       TEXT        NOT NULL UNIQUE,
  slug       TEXT        NOT NULL UNIQUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_post_tags",
		SQL: `CREATE TABLE IF NOT EXISTS post_tags (
  id      BIGSERIAL PRIMARY KEY,
  post_id BIGINT    NOT NULL REFERENCES posts (id) ON DELETE CASCADE,
  tag_id  BIGINT    NOT NULL REFERENCES tags (id) ON DELETE CASCADE,
  CONSTRAINT uq_post_tag UNIQUE (post_id, tag_id)
);`,
	},
	{
		Name: "create_table_settings",
		SQL: `CREATE TABLE IF NOT EXISTS settings (
  id    BIGSERIAL PRIMARY KEY,
  key   TEXT      NOT NULL UNIQUE,
  value TEXT
);`,
	},
	{
		Name: "create_index_posts_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at);`,
	},
	{
		Name: "create_index_post_tags_post_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_post_tags_post_id ON post_tags (post_id);`,
	},
}

// EnsureMigrated checks if the 'posts' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.posts') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_done",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

// SeedAdmin upserts the singleton admin account from configuration. It runs
// once at process start, outside the request-handling path. An existing row
// with the configured username is left untouched.
func SeedAdmin(ctx context.Context, db *sql.DB, loc *time.Location, cfg config.AuthConfig) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		logJSON(loc, map[string]any{
			"component": "database",
			"event":     "admin_seed_skip",
			"status":    "success",
			"msg":       "admin credentials not configured, skipping seed",
		})
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	const q = `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING`
	if _, err := db.ExecContext(ctx, q, cfg.AdminUsername, cfg.AdminEmail, string(hash)); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "admin_seed_done",
		"status":    "success",
		"username":  cfg.AdminUsername,
	})
	return nil
}

func logJSON(loc *time.Location, fields map[string]any) {
	fields["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if b, err := json.Marshal(fields); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
