// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists ingested documents in a local SQLite database
// with an FTS5 retrieval index.
//
// The store is a conventional upsert-and-query layer: the pipeline itself
// never touches it, the CLI opens a handle at run start and closes it at
// run end.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/burrows3/AnimalMind/pkg/types"
)

const defaultMaxResults = 20

// Store manages the document SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the document database at cfg.Path and creates the
// schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("store config: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			source TEXT,
			url TEXT,
			title TEXT,
			authors TEXT,
			date TEXT,
			snippet TEXT,
			doc_type TEXT,
			entities TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_source ON documents(source)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_doc_type ON documents(doc_type)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table over title and snippet, with sync triggers.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='documents_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE documents_fts USING fts5(title, snippet, content=documents, content_rowid=rowid)`,
			`CREATE TRIGGER documents_ai AFTER INSERT ON documents BEGIN
				INSERT INTO documents_fts(rowid, title, snippet) VALUES (new.rowid, new.title, new.snippet);
			END`,
			`CREATE TRIGGER documents_ad AFTER DELETE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, title, snippet) VALUES('delete', old.rowid, old.title, old.snippet);
			END`,
			`CREATE TRIGGER documents_au AFTER UPDATE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, title, snippet) VALUES('delete', old.rowid, old.title, old.snippet);
				INSERT INTO documents_fts(rowid, title, snippet) VALUES (new.rowid, new.title, new.snippet);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// UpsertSummary holds counts from one ingest.
type UpsertSummary struct {
	Inserted int
	Updated  int
}

// Total returns the number of documents processed.
func (u UpsertSummary) Total() int {
	return u.Inserted + u.Updated
}

// Upsert writes documents into the store, replacing records that share a
// document ID. The whole batch commits in one transaction.
func (s *Store) Upsert(ctx context.Context, docs []types.Document) (UpsertSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UpsertSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var summary UpsertSummary
	for _, doc := range docs {
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM documents WHERE id = ?`, doc.ID,
		).Scan(&exists)
		if err != nil {
			return UpsertSummary{}, fmt.Errorf("checking document %s: %w", doc.ID, err)
		}

		entitiesJSON, err := json.Marshal(doc.Entities)
		if err != nil {
			return UpsertSummary{}, fmt.Errorf("encoding entities for %s: %w", doc.ID, err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO documents (id, source, url, title, authors, date, snippet, doc_type, entities)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
				source=excluded.source, url=excluded.url, title=excluded.title,
				authors=excluded.authors, date=excluded.date, snippet=excluded.snippet,
				doc_type=excluded.doc_type, entities=excluded.entities`,
			doc.ID, doc.Source, doc.URL, doc.Title, doc.Authors,
			doc.Date, doc.AbstractOrSnippet, doc.DocType, string(entitiesJSON),
		)
		if err != nil {
			return UpsertSummary{}, fmt.Errorf("upserting document %s: %w", doc.ID, err)
		}

		if exists > 0 {
			summary.Updated++
		} else {
			summary.Inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return UpsertSummary{}, fmt.Errorf("committing: %w", err)
	}
	return summary, nil
}

// Get returns the document with the given ID, or sql.ErrNoRows.
func (s *Store) Get(ctx context.Context, id string) (types.Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, url, title, authors, date, snippet, doc_type, entities
		 FROM documents WHERE id = ?`, id)
	return scanDocument(row)
}

// Search runs an FTS5 query over document titles and snippets and returns
// matches in relevance order. A limit of 0 applies the configured default.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]types.Document, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT d.id, d.source, d.url, d.title, d.authors, d.date, d.snippet, d.doc_type, d.entities
		 FROM documents_fts f
		 JOIN documents d ON d.rowid = f.rowid
		 WHERE documents_fts MATCH ?
		 ORDER BY rank
		 LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []types.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Count returns the number of stored documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (types.Document, error) {
	var doc types.Document
	var entitiesJSON string
	err := row.Scan(&doc.ID, &doc.Source, &doc.URL, &doc.Title, &doc.Authors,
		&doc.Date, &doc.AbstractOrSnippet, &doc.DocType, &entitiesJSON)
	if err != nil {
		return types.Document{}, fmt.Errorf("scanning document: %w", err)
	}
	if entitiesJSON != "" {
		if err := json.Unmarshal([]byte(entitiesJSON), &doc.Entities); err != nil {
			return types.Document{}, fmt.Errorf("decoding entities for %s: %w", doc.ID, err)
		}
	}
	return doc, nil
}
