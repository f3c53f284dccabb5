// Package store keeps catalog entries in sqlite and serves them as asynchronous pagination content.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/glebarez/sqlite"

	"github.com/NickImpact/Impactor-sub004/pkg/catalog"
	"github.com/NickImpact/Impactor-sub004/pkg/pagination"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
	Logger *log.Logger
}

// Open opens the SQLite database and creates tables if needed
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, err
	}

	db := &DB{DB: sqlDB, Logger: log.New(os.Stdout, "", log.LstdFlags)}
	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS entries (
		position INTEGER PRIMARY KEY AUTOINCREMENT,
		item TEXT NOT NULL DEFAULT '',
		count INTEGER NOT NULL DEFAULT 1 CHECK (count BETWEEN 1 AND 99),
		label TEXT NOT NULL DEFAULT ''
	);
	`
	_, err := db.Exec(query)
	return err
}

// Save appends entries after the stored ones.
func (db *DB) Save(ctx context.Context, entries ...catalog.Entry) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insert(ctx, tx, entries); err != nil {
		return err
	}
	return tx.Commit()
}

// Replace swaps every stored entry for entries. Either all of them land or the
// stored entries are left untouched.
func (db *DB) Replace(ctx context.Context, entries ...catalog.Entry) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return err
	}
	if err := insert(ctx, tx, entries); err != nil {
		return err
	}
	return tx.Commit()
}

func insert(ctx context.Context, tx *sql.Tx, entries []catalog.Entry) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries (item, count, label) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Item, max(e.Count, 1), e.Label); err != nil {
			return fmt.Errorf("store: insert entry %d: %w", i, err)
		}
	}
	return nil
}

// Entries returns the stored entries in insertion order.
func (db *DB) Entries(ctx context.Context) ([]catalog.Entry, error) {
	rows, err := db.QueryContext(ctx, `SELECT item, count, label FROM entries ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []catalog.Entry
	for rows.Next() {
		var e catalog.Entry
		if err := rows.Scan(&e.Item, &e.Count, &e.Label); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of stored entries.
func (db *DB) Count(ctx context.Context) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}

// Source reads every entry when an async pagination opens. Entries that cannot
// be shown are logged and skipped; query errors fail the load.
func (db *DB) Source() pagination.ContentSource {
	return func(ctx context.Context) ([]*pagination.Icon, error) {
		entries, err := db.Entries(ctx)
		if err != nil {
			return nil, err
		}
		icons, err := catalog.Icons(entries)
		if err != nil {
			db.Logger.Println("store: skipped entries:", err)
		}
		return icons, nil
	}
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
