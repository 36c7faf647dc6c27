// Package store persists analyzed documents in SQLite, including the
// derived summary and highlight fields, with an FTS5 index over title
// and raw text for search.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

// Document is a stored document with its derived analysis fields.
type Document struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Path        string            `json:"path"`
	Filename    string            `json:"filename"`
	Format      string            `json:"format"`
	Category    string            `json:"category"`
	ContentHash string            `json:"content_hash"`
	Status      string            `json:"status"`
	RawText     string            `json:"raw_text,omitempty"`
	Overview    string            `json:"overview,omitempty"`
	KeyPoints   []string          `json:"key_points,omitempty"`
	Highlights  map[string]string `json:"highlights,omitempty"`
	Insights    []string          `json:"insights,omitempty"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// ListFilter narrows ListDocuments results. Zero values mean "no
// filter"; Search is an FTS5 match expression over title and raw text.
type ListFilter struct {
	Category string
	Status   string
	Search   string
	Limit    uint64
}

// Store wraps the SQLite database for all docmage persistence.
type Store struct {
	db *sql.DB
}

// New opens (or creates) a SQLite database at the given path and
// initialises the schema.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	// Connection pool settings for SQLite.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for advanced queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// UpsertDocument inserts or updates a document record keyed by path.
// Returns the document ID.
func (s *Store) UpsertDocument(ctx context.Context, doc Document) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (title, path, filename, format, category, content_hash, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			title = excluded.title,
			filename = excluded.filename,
			format = excluded.format,
			category = excluded.category,
			content_hash = excluded.content_hash,
			status = excluded.status,
			updated_at = CURRENT_TIMESTAMP
	`, doc.Title, doc.Path, doc.Filename, doc.Format, doc.Category, doc.ContentHash, doc.Status)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if id == 0 {
		// Updated an existing row; fetch its ID.
		existing, err := s.GetDocumentByPath(ctx, doc.Path)
		if err != nil {
			return 0, err
		}
		return existing.ID, nil
	}
	return id, nil
}

// SaveAnalysis stores the derived fields for a document and marks it
// ready.
func (s *Store) SaveAnalysis(ctx context.Context, id int64, rawText, overview string, keyPoints []string, highlights map[string]string, insights []string) error {
	kp, err := json.Marshal(keyPoints)
	if err != nil {
		return fmt.Errorf("marshaling key points: %w", err)
	}
	hl, err := json.Marshal(highlights)
	if err != nil {
		return fmt.Errorf("marshaling highlights: %w", err)
	}
	ins, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("marshaling insights: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE documents
		SET raw_text = ?, overview = ?, key_points = ?, highlights = ?, insights = ?,
		    status = 'ready', updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, rawText, overview, string(kp), string(hl), string(ins), id)
	return err
}

// UpdateDocumentStatus sets the status field for a document.
func (s *Store) UpdateDocumentStatus(ctx context.Context, id int64, status string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE documents SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, status, id)
	return err
}

const documentColumns = `id, title, path, filename, format, category, content_hash, status,
	COALESCE(raw_text, ''), COALESCE(overview, ''),
	COALESCE(key_points, '[]'), COALESCE(highlights, '{}'), COALESCE(insights, '[]'),
	created_at, updated_at`

func scanDocument(row interface{ Scan(...any) error }) (Document, error) {
	var d Document
	var kp, hl, ins string
	err := row.Scan(&d.ID, &d.Title, &d.Path, &d.Filename, &d.Format, &d.Category,
		&d.ContentHash, &d.Status, &d.RawText, &d.Overview, &kp, &hl, &ins,
		&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return Document{}, err
	}
	if err := json.Unmarshal([]byte(kp), &d.KeyPoints); err != nil {
		return Document{}, fmt.Errorf("unmarshaling key points: %w", err)
	}
	if err := json.Unmarshal([]byte(hl), &d.Highlights); err != nil {
		return Document{}, fmt.Errorf("unmarshaling highlights: %w", err)
	}
	if err := json.Unmarshal([]byte(ins), &d.Insights); err != nil {
		return Document{}, fmt.Errorf("unmarshaling insights: %w", err)
	}
	return d, nil
}

// GetDocument returns one document by ID.
func (s *Store) GetDocument(ctx context.Context, id int64) (Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = ?`, id)
	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return Document{}, fmt.Errorf("document %d: %w", id, sql.ErrNoRows)
	}
	return doc, err
}

// GetDocumentByPath returns one document by its absolute path.
func (s *Store) GetDocumentByPath(ctx context.Context, path string) (Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE path = ?`, path)
	return scanDocument(row)
}

// ListDocuments returns documents matching the filter, most recent
// first. The filter's Search term runs against the FTS index.
func (s *Store) ListDocuments(ctx context.Context, filter ListFilter) ([]Document, error) {
	builder := sq.Select(
		"d.id", "d.title", "d.path", "d.filename", "d.format", "d.category",
		"d.content_hash", "d.status",
		"COALESCE(d.raw_text, '')", "COALESCE(d.overview, '')",
		"COALESCE(d.key_points, '[]')", "COALESCE(d.highlights, '{}')", "COALESCE(d.insights, '[]')",
		"d.created_at", "d.updated_at",
	).From("documents d").OrderBy("d.created_at DESC", "d.id DESC")

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"d.category": filter.Category})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"d.status": filter.Status})
	}
	if filter.Search != "" {
		builder = builder.
			Join("documents_fts f ON f.rowid = d.id").
			Where("documents_fts MATCH ?", filter.Search)
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// DeleteDocument removes a document. Returns sql.ErrNoRows when the ID
// does not exist.
func (s *Store) DeleteDocument(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
