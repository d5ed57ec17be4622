// Package store exports Barasa records to an SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/neocl/barasa"
)

const schema = `CREATE TABLE barasa (
	id        INTEGER PRIMARY KEY,
	synset    TEXT NOT NULL,
	lang      TEXT NOT NULL,
	goodness  TEXT NOT NULL,
	lemma     TEXT NOT NULL,
	pos_score TEXT NOT NULL,
	neg_score TEXT NOT NULL
)`

const lemmaIndex = `CREATE INDEX barasa_lemma ON barasa (lemma)`

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Replace drops any previous export and stores records, in order, within a
// single transaction.
func (s *Store) Replace(ctx context.Context, records []barasa.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS barasa`); err != nil {
		return fmt.Errorf("drop table: %w", err)
	}
	for _, q := range []string{schema, lemmaIndex} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO barasa (synset, lang, goodness, lemma, pos_score, neg_score) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			r.Synset, string(r.Lang), string(r.Goodness), r.Lemma, r.PosScore, r.NegScore); err != nil {
			return fmt.Errorf("insert %s/%s: %w", r.Synset, r.Lemma, err)
		}
	}
	return tx.Commit()
}

// Lookup returns every stored record of lemma in insertion order.
func (s *Store) Lookup(ctx context.Context, lemma string) ([]barasa.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT synset, lang, goodness, lemma, pos_score, neg_score FROM barasa WHERE lemma = ? ORDER BY id`, lemma)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []barasa.Record
	for rows.Next() {
		var (
			r              barasa.Record
			lang, goodness string
		)
		if err := rows.Scan(&r.Synset, &lang, &goodness, &r.Lemma, &r.PosScore, &r.NegScore); err != nil {
			return nil, err
		}
		r.Lang = barasa.Language(lang)
		r.Goodness = barasa.Goodness(goodness)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM barasa`).Scan(&n)
	return n, err
}
