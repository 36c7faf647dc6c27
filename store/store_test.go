package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testDoc(path string) Document {
	return Document{
		Title:       "Discharge Summary",
		Path:        path,
		Filename:    filepath.Base(path),
		Format:      "txt",
		Category:    "medical",
		ContentHash: "abc123",
		Status:      "processing",
	}
}

func TestUpsertAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.UpsertDocument(ctx, testDoc("/tmp/a.txt"))
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc.Title != "Discharge Summary" || doc.Category != "medical" {
		t.Errorf("got %+v", doc)
	}
	if doc.Status != "processing" {
		t.Errorf("status = %q, want processing", doc.Status)
	}
	if doc.KeyPoints == nil || len(doc.KeyPoints) != 0 {
		t.Errorf("KeyPoints = %v, want empty before analysis", doc.KeyPoints)
	}
}

func TestUpsertSamePathUpdates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.UpsertDocument(ctx, testDoc("/tmp/a.txt"))
	if err != nil {
		t.Fatal(err)
	}

	updated := testDoc("/tmp/a.txt")
	updated.ContentHash = "def456"
	second, err := s.UpsertDocument(ctx, updated)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("upsert by same path produced new id: %d vs %d", first, second)
	}

	doc, err := s.GetDocumentByPath(ctx, "/tmp/a.txt")
	if err != nil {
		t.Fatal(err)
	}
	if doc.ContentHash != "def456" {
		t.Errorf("hash = %q, want updated value", doc.ContentHash)
	}
}

func TestSaveAnalysis(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.UpsertDocument(ctx, testDoc("/tmp/a.txt"))
	if err != nil {
		t.Fatal(err)
	}

	highlights := map[string]string{"Conditions": "diabetes", "Dosage": "500 mg"}
	keyPoints := []string{"Patient diagnosed with diabetes.", "Metformin prescribed."}
	insights := []string{"Follow-up scheduled; monitor symptoms and adjust treatment as needed."}

	if err := s.SaveAnalysis(ctx, id, "raw document text", "An overview.", keyPoints, highlights, insights); err != nil {
		t.Fatalf("save analysis: %v", err)
	}

	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Status != "ready" {
		t.Errorf("status = %q, want ready after analysis", doc.Status)
	}
	if doc.Overview != "An overview." {
		t.Errorf("overview = %q", doc.Overview)
	}
	if len(doc.KeyPoints) != 2 || doc.KeyPoints[0] != keyPoints[0] {
		t.Errorf("key points = %v", doc.KeyPoints)
	}
	if doc.Highlights["Conditions"] != "diabetes" || doc.Highlights["Dosage"] != "500 mg" {
		t.Errorf("highlights = %v", doc.Highlights)
	}
	if len(doc.Insights) != 1 {
		t.Errorf("insights = %v", doc.Insights)
	}
}

func TestUpdateDocumentStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.UpsertDocument(ctx, testDoc("/tmp/a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateDocumentStatus(ctx, id, "error"); err != nil {
		t.Fatal(err)
	}
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Status != "error" {
		t.Errorf("status = %q, want error", doc.Status)
	}
}

func TestListDocumentsFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	docs := []Document{
		{Title: "MRI Report", Path: "/tmp/mri.txt", Filename: "mri.txt", Format: "txt", Category: "medical", ContentHash: "h1", Status: "ready"},
		{Title: "Service Agreement", Path: "/tmp/sa.txt", Filename: "sa.txt", Format: "txt", Category: "legal", ContentHash: "h2", Status: "ready"},
		{Title: "Q3 Results", Path: "/tmp/q3.txt", Filename: "q3.txt", Format: "txt", Category: "financial", ContentHash: "h3", Status: "processing"},
	}
	for _, d := range docs {
		if _, err := s.UpsertDocument(ctx, d); err != nil {
			t.Fatal(err)
		}
	}

	all, err := s.ListDocuments(ctx, ListFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d documents, want 3", len(all))
	}

	legal, err := s.ListDocuments(ctx, ListFilter{Category: "legal"})
	if err != nil {
		t.Fatal(err)
	}
	if len(legal) != 1 || legal[0].Title != "Service Agreement" {
		t.Errorf("legal filter = %v", legal)
	}

	ready, err := s.ListDocuments(ctx, ListFilter{Status: "ready"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ready) != 2 {
		t.Errorf("status filter returned %d, want 2", len(ready))
	}

	limited, err := s.ListDocuments(ctx, ListFilter{Limit: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Errorf("limit filter returned %d, want 1", len(limited))
	}
}

func TestListDocumentsSearch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.UpsertDocument(ctx, testDoc("/tmp/a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SaveAnalysis(ctx, id, "Patient treated for chronic migraine episodes.", "Overview.", nil, nil, nil); err != nil {
		t.Fatal(err)
	}
	other := testDoc("/tmp/b.txt")
	other.Title = "Unrelated Contract"
	if _, err := s.UpsertDocument(ctx, other); err != nil {
		t.Fatal(err)
	}

	got, err := s.ListDocuments(ctx, ListFilter{Search: "migraine"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != id {
		t.Errorf("search = %v, want only the migraine document", got)
	}
}

func TestDeleteDocument(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.UpsertDocument(ctx, testDoc("/tmp/a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteDocument(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetDocument(ctx, id); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("get after delete = %v, want ErrNoRows", err)
	}
	if err := s.DeleteDocument(ctx, id); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("second delete = %v, want ErrNoRows", err)
	}
}
