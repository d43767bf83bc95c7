package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

var createStatements = map[Dialect][]string{
	DialectSQLite: {
		`CREATE TABLE IF NOT EXISTS posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL DEFAULT 0,
			text TEXT NOT NULL,
			username TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			parent INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			text TEXT NOT NULL,
			username TEXT NOT NULL
		)`,
	},
	DialectPostgres: {
		`CREATE TABLE IF NOT EXISTS posts (
			id BIGSERIAL PRIMARY KEY,
			score INTEGER NOT NULL DEFAULT 0,
			text TEXT NOT NULL,
			username TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id BIGSERIAL PRIMARY KEY,
			parent BIGINT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			text TEXT NOT NULL,
			username TEXT NOT NULL
		)`,
	},
}

var indexStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_posts_username ON posts (username)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_parent ON comments (parent)`,
}

// EnsureSchema creates the posts and comments tables when missing. With reset
// set, both tables are dropped first and all stored data is lost.
func EnsureSchema(ctx context.Context, db *sql.DB, dialect Dialect, reset bool) error {
	creates, ok := createStatements[dialect]
	if !ok {
		return fmt.Errorf("unknown dialect %d", dialect)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if reset {
		slog.Warn("dropping posts and comments tables")
		for _, table := range []string{"posts", "comments"} {
			if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
				return fmt.Errorf("drop %s: %w", table, err)
			}
		}
	}

	for _, stmt := range append(creates, indexStatements...) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
