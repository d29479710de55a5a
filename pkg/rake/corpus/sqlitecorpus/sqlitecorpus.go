// Package sqlitecorpus stores a frequency corpus in a SQLite database.
// The database is an alternative encoding of the corpus table, loaded
// fully into memory at construction time; scoring never touches disk.
package sqlitecorpus

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/rake/pkg/rake/corpus"
)

const schema = `
CREATE TABLE IF NOT EXISTS word_freqs (
	word TEXT PRIMARY KEY,
	rank INTEGER NOT NULL,
	freq INTEGER NOT NULL
);`

// Load reads the whole corpus table from the database at path.
func Load(ctx context.Context, path string) (corpus.Map, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open corpus db: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT word, rank, freq FROM word_freqs")
	if err != nil {
		return nil, fmt.Errorf("query corpus db: %w", err)
	}
	defer rows.Close()

	m := corpus.Map{}
	for rows.Next() {
		var word string
		var e corpus.Entry
		if err := rows.Scan(&word, &e.Rank, &e.Freq); err != nil {
			return nil, fmt.Errorf("scan corpus row: %w", err)
		}
		m[word] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read corpus rows: %w", err)
	}
	return m, nil
}

// Save writes table to a SQLite database at path, replacing existing
// entries for the same words.
func Save(ctx context.Context, path string, table corpus.Map) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open corpus db: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init corpus schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin corpus import: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO word_freqs (word, rank, freq) VALUES (?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare corpus insert: %w", err)
	}
	defer stmt.Close()

	for word, e := range table {
		if _, err := stmt.ExecContext(ctx, word, e.Rank, e.Freq); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert corpus word %q: %w", word, err)
		}
	}
	return tx.Commit()
}
