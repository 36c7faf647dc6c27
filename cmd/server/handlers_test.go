package main

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/docmage/docmage"
)

func newTestHandler(t *testing.T) *handler {
	t.Helper()
	cfg := docmage.DefaultConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "test.db")

	eng, err := docmage.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { eng.Close() })
	return newHandler(eng, filepath.Join(t.TempDir(), "uploads"))
}

func multipartUpload(t *testing.T, filename, content, category string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := mw.WriteField("category", category); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func uploadDocument(t *testing.T, h *handler, filename, content string) int64 {
	t.Helper()
	rec := httptest.NewRecorder()
	h.handleUploadDocument(rec, multipartUpload(t, filename, content, "general"))
	if rec.Code != http.StatusOK {
		t.Fatalf("upload status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		DocumentID int64 `json:"document_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return resp.DocumentID
}

func TestUploadSameFilenameDistinctDocuments(t *testing.T) {
	h := newTestHandler(t)

	id1 := uploadDocument(t, h, "note.txt",
		"The first memo covers the quarterly planning schedule in detail.")
	id2 := uploadDocument(t, h, "note.txt",
		"The second memo covers staffing changes for the coming year instead.")

	if id1 == id2 {
		t.Fatalf("different uploads with the same filename share document %d", id1)
	}

	docs, err := h.engine.ListDocuments(context.Background(), docmage.ListFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Errorf("stored %d documents, want 2", len(docs))
	}
}

func TestUploadedPathPersists(t *testing.T) {
	h := newTestHandler(t)

	id := uploadDocument(t, h, "note.txt",
		"A short note about the new project plan and timeline.")

	doc, err := h.engine.GetDocument(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(doc.Path); err != nil {
		t.Errorf("stored path %q does not resolve: %v", doc.Path, err)
	}
	if doc.Title != "note.txt" {
		t.Errorf("Title = %q, want original filename", doc.Title)
	}
}

func TestUploadIdenticalContentReusesDocument(t *testing.T) {
	h := newTestHandler(t)
	content := "The same memo uploaded twice should resolve to one document."

	id1 := uploadDocument(t, h, "note.txt", content)
	id2 := uploadDocument(t, h, "note.txt", content)
	if id1 != id2 {
		t.Errorf("identical re-upload created document %d, want %d", id2, id1)
	}
}
