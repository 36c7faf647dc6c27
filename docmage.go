// Package docmage analyzes documents into category-aware highlights,
// an extractive summary, and rule-based insights, persisting results
// in SQLite.
package docmage

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docmage/docmage/gazetteer"
	"github.com/docmage/docmage/highlight"
	"github.com/docmage/docmage/ner"
	"github.com/docmage/docmage/parser"
	"github.com/docmage/docmage/report"
	"github.com/docmage/docmage/store"
	"github.com/docmage/docmage/summary"
)

// Engine is the main entry point for the document analyzer.
type Engine interface {
	// AnalyzeText runs the full analysis pipeline over raw text.
	// Nothing is persisted.
	AnalyzeText(ctx context.Context, text, category string) (*Analysis, error)

	// AnalyzeFile extracts text from a file, analyzes it, and persists
	// the result. Returns the document ID. Skips re-analysis if the
	// content hash is unchanged.
	AnalyzeFile(ctx context.Context, path, category string, opts ...AnalyzeOption) (int64, error)

	// GetDocument retrieves a stored document with its analysis.
	GetDocument(ctx context.Context, id int64) (Document, error)

	// ListDocuments returns stored documents, optionally filtered.
	ListDocuments(ctx context.Context, filter ListFilter) ([]Document, error)

	// DeleteDocument removes a document and its analysis.
	DeleteDocument(ctx context.Context, id int64) error

	// Report renders a stored document's analysis as an HTML report.
	Report(ctx context.Context, id int64) ([]byte, error)

	// Store returns the underlying store for diagnostic access.
	Store() *store.Store

	// Close cleanly shuts down the engine.
	Close() error
}

// Analysis is the result of running the pipeline over one document.
type Analysis struct {
	Category   string            `json:"category"`
	Highlights map[string]string `json:"highlights"`
	Overview   string            `json:"overview"`
	KeyPoints  []string          `json:"key_points"`
	Insights   []string          `json:"insights"`
	Entities   []ner.Entity      `json:"entities,omitempty"`
}

// Document is a stored document with its derived analysis fields.
type Document struct {
	ID         int64             `json:"id"`
	Title      string            `json:"title"`
	Path       string            `json:"path"`
	Filename   string            `json:"filename"`
	Format     string            `json:"format"`
	Category   string            `json:"category"`
	Status     string            `json:"status"`
	Overview   string            `json:"overview,omitempty"`
	KeyPoints  []string          `json:"key_points,omitempty"`
	Highlights map[string]string `json:"highlights,omitempty"`
	Insights   []string          `json:"insights,omitempty"`
	CreatedAt  string            `json:"created_at"`
	UpdatedAt  string            `json:"updated_at"`
}

// ListFilter narrows ListDocuments results. Zero values mean no filter.
type ListFilter struct {
	Category string
	Status   string
	Search   string
	Limit    uint64
}

// AnalyzeOption configures AnalyzeFile behavior.
type AnalyzeOption func(*analyzeOptions)

type analyzeOptions struct {
	title          string
	forceReanalyze bool
}

// WithTitle overrides the document title (default: the filename).
func WithTitle(title string) AnalyzeOption {
	return func(o *analyzeOptions) { o.title = title }
}

// WithForceReanalyze re-runs analysis even if the content hash is unchanged.
func WithForceReanalyze() AnalyzeOption {
	return func(o *analyzeOptions) { o.forceReanalyze = true }
}

// Option configures the engine at construction time.
type Option func(*engine)

// WithAnnotator replaces the built-in rule-based entity annotator.
func WithAnnotator(ann ner.Annotator) Option {
	return func(e *engine) { e.annotator = ann }
}

// engine is the concrete implementation of Engine.
type engine struct {
	cfg       Config
	store     *store.Store
	parsers   *parser.Registry
	annotator ner.Annotator
}

// New creates a new DocMage engine with the given configuration.
func New(cfg Config, opts ...Option) (Engine, error) {
	// Resolve database path from config (DBPath > DBName+StorageDir > default)
	dbPath := cfg.DatabasePath()

	s, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	e := &engine{
		cfg:       cfg,
		store:     s,
		parsers:   parser.NewRegistry(),
		annotator: ner.Default,
	}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// AnalyzeText runs highlight extraction, summarization, and insight
// rules over raw text without persisting anything.
func (e *engine) AnalyzeText(ctx context.Context, text, category string) (*Analysis, error) {
	cat := gazetteer.ParseCategory(category)

	entities := ner.ExtractEntitiesWith(e.annotator, text, cat)
	highlights := highlight.Extract(text, cat, entities)

	result, err := summary.Summarize(text, cat, e.annotator)
	if err != nil {
		return nil, fmt.Errorf("summarizing: %w", err)
	}

	return &Analysis{
		Category:   string(cat),
		Highlights: highlights,
		Overview:   result.Overview,
		KeyPoints:  result.KeyPoints,
		Insights:   result.Insights,
		Entities:   entities,
	}, nil
}

// AnalyzeFile extracts text from a file, runs the pipeline, and
// persists the result.
func (e *engine) AnalyzeFile(ctx context.Context, path, category string, opts ...AnalyzeOption) (int64, error) {
	options := &analyzeOptions{}
	for _, o := range opts {
		o(options)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return 0, fmt.Errorf("resolving path: %w", err)
	}

	hash, err := fileHash(absPath)
	if err != nil {
		return 0, fmt.Errorf("hashing file: %w", err)
	}

	cat := gazetteer.ParseCategory(category)

	// Skip if already analyzed with the same content.
	if !options.forceReanalyze {
		existing, err := e.store.GetDocumentByPath(ctx, absPath)
		if err == nil && existing.ContentHash == hash && existing.Status == "ready" &&
			existing.Category == string(cat) {
			return existing.ID, nil
		}
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(absPath), "."))
	filename := filepath.Base(absPath)
	title := options.title
	if title == "" {
		title = filename
	}

	docID, err := e.store.UpsertDocument(ctx, store.Document{
		Title:       title,
		Path:        absPath,
		Filename:    filename,
		Format:      format,
		Category:    string(cat),
		ContentHash: hash,
		Status:      "processing",
	})
	if err != nil {
		return 0, fmt.Errorf("upserting document: %w", err)
	}

	slog.Info("analyze: extracting text", "file", filename, "format", format, "doc_id", docID)
	start := time.Now()

	p, err := e.parsers.Get(format)
	if err != nil {
		e.store.UpdateDocumentStatus(ctx, docID, "error")
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	text, err := p.Parse(ctx, absPath)
	if err != nil {
		e.store.UpdateDocumentStatus(ctx, docID, "error")
		return 0, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		e.store.UpdateDocumentStatus(ctx, docID, "error")
		return 0, fmt.Errorf("%w: %s", ErrEmptyDocument, filename)
	}

	analysis, err := e.AnalyzeText(ctx, text, category)
	if err != nil {
		e.store.UpdateDocumentStatus(ctx, docID, "error")
		return 0, err
	}

	if err := e.store.SaveAnalysis(ctx, docID, text, analysis.Overview,
		analysis.KeyPoints, analysis.Highlights, analysis.Insights); err != nil {
		return 0, fmt.Errorf("saving analysis: %w", err)
	}

	slog.Info("analyze: document ready",
		"file", filename, "doc_id", docID, "category", analysis.Category,
		"highlights", len(analysis.Highlights), "key_points", len(analysis.KeyPoints),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return docID, nil
}

// GetDocument retrieves a stored document by ID.
func (e *engine) GetDocument(ctx context.Context, id int64) (Document, error) {
	doc, err := e.store.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, fmt.Errorf("%w: %d", ErrDocumentNotFound, id)
		}
		return Document{}, err
	}
	return toDocument(doc), nil
}

// ListDocuments returns stored documents matching the filter.
func (e *engine) ListDocuments(ctx context.Context, filter ListFilter) ([]Document, error) {
	docs, err := e.store.ListDocuments(ctx, store.ListFilter{
		Category: filter.Category,
		Status:   filter.Status,
		Search:   filter.Search,
		Limit:    filter.Limit,
	})
	if err != nil {
		return nil, err
	}

	result := make([]Document, len(docs))
	for i, d := range docs {
		result[i] = toDocument(d)
	}
	return result, nil
}

// DeleteDocument removes a document and its analysis.
func (e *engine) DeleteDocument(ctx context.Context, id int64) error {
	err := e.store.DeleteDocument(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %d", ErrDocumentNotFound, id)
	}
	return err
}

// Report renders a stored document's analysis as a standalone HTML page.
func (e *engine) Report(ctx context.Context, id int64) ([]byte, error) {
	doc, err := e.store.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrDocumentNotFound, id)
		}
		return nil, err
	}

	return report.Render(report.Data{
		Title:      doc.Title,
		Category:   doc.Category,
		Overview:   doc.Overview,
		KeyPoints:  doc.KeyPoints,
		Highlights: doc.Highlights,
		Insights:   doc.Insights,
		ToolName:   e.cfg.ToolName,
		Generated:  time.Now(),
	})
}

// Store returns the underlying store for diagnostic access.
func (e *engine) Store() *store.Store {
	return e.store
}

// Close shuts down the engine.
func (e *engine) Close() error {
	return e.store.Close()
}

func toDocument(d store.Document) Document {
	return Document{
		ID:         d.ID,
		Title:      d.Title,
		Path:       d.Path,
		Filename:   d.Filename,
		Format:     d.Format,
		Category:   d.Category,
		Status:     d.Status,
		Overview:   d.Overview,
		KeyPoints:  d.KeyPoints,
		Highlights: d.Highlights,
		Insights:   d.Insights,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// ExtractHighlights runs category-aware highlight extraction over text
// using the built-in rule annotator.
func ExtractHighlights(text, category string) map[string]string {
	cat := gazetteer.ParseCategory(category)
	entities := ner.ExtractEntities(text, cat)
	return highlight.Extract(text, cat, entities)
}

// ExtractEntities runs named-entity extraction over text, including
// the category-specific pattern add-ons.
func ExtractEntities(text, category string) []ner.Entity {
	return ner.ExtractEntities(text, gazetteer.ParseCategory(category))
}

// Summarize produces the overview, key points, and insights for text
// using the built-in rule annotator.
func Summarize(text, category string) (summary.Result, error) {
	return summary.Summarize(text, gazetteer.ParseCategory(category), ner.Default)
}

// fileHash computes the SHA-256 hash of a file's content.
func fileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
