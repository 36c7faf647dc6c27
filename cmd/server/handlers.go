package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/docmage/docmage"
)

type handler struct {
	engine    docmage.Engine
	uploadDir string
}

func newHandler(e docmage.Engine, uploadDir string) *handler {
	return &handler{engine: e, uploadDir: uploadDir}
}

// POST /analyze
// Analyzes raw text without persisting anything.
func (h *handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
	defer cancel()

	var req struct {
		Text     string `json:"text"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	analysis, err := h.engine.AnalyzeText(ctx, req.Text, req.Category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "analysis failed")
		slog.Error("analyze error", "category", req.Category, "error", err)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// POST /documents
// Accepts multipart file upload or JSON with file path. Runs the full
// pipeline and persists the result.
func (h *handler) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Minute)
	defer cancel()

	// Try multipart upload first
	if err := r.ParseMultipartForm(100 << 20); err == nil { // 100MB max
		file, header, err := r.FormFile("file")
		if err == nil {
			defer file.Close()

			category := r.FormValue("category")

			// Sanitise filename to prevent path traversal.
			safeName := filepath.Base(header.Filename)

			// Uploads persist under the upload directory keyed by
			// content hash, so the stored document path stays
			// resolvable and two uploads sharing a filename never
			// collide on the path-unique documents table.
			storedPath, err := h.saveUpload(file, safeName)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "failed to save file")
				slog.Error("saving uploaded file", "file", safeName, "error", err)
				return
			}

			docID, err := h.engine.AnalyzeFile(ctx, storedPath, category,
				docmage.WithTitle(safeName))
			if err != nil {
				writeAnalyzeError(w, err)
				slog.Error("analyze file error", "file", safeName, "error", err)
				return
			}

			writeJSON(w, http.StatusOK, map[string]interface{}{
				"document_id": docID,
				"filename":    safeName,
			})
			return
		}
	}

	// Try JSON body with path
	var req struct {
		Path     string `json:"path"`
		Category string `json:"category"`
		Title    string `json:"title,omitempty"`
		Force    bool   `json:"force,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: expected multipart file or JSON with 'path'")
		return
	}

	if req.Path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	// Validate that path is a real file (prevents directory traversal probing).
	absPath, err := filepath.Abs(req.Path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid path")
		return
	}
	info, err := os.Stat(absPath)
	if err != nil || info.IsDir() {
		writeError(w, http.StatusBadRequest, "path must be an existing file")
		return
	}

	var opts []docmage.AnalyzeOption
	if req.Title != "" {
		opts = append(opts, docmage.WithTitle(req.Title))
	}
	if req.Force {
		opts = append(opts, docmage.WithForceReanalyze())
	}

	docID, err := h.engine.AnalyzeFile(ctx, absPath, req.Category, opts...)
	if err != nil {
		writeAnalyzeError(w, err)
		slog.Error("analyze file error", "path", absPath, "error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"document_id": docID,
		"path":        absPath,
	})
}

// GET /documents?category=&status=&q=&limit=
func (h *handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	filter := docmage.ListFilter{
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
		Search:   r.URL.Query().Get("q"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			filter.Limit = n
		}
	}

	docs, err := h.engine.ListDocuments(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		slog.Error("list documents error", "error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"documents": docs,
	})
}

// GET /documents/{id}
func (h *handler) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	doc, err := h.engine.GetDocument(r.Context(), id)
	if err != nil {
		if errors.Is(err, docmage.ErrDocumentNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get document")
		slog.Error("get document error", "document_id", id, "error", err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// DELETE /documents/{id}
func (h *handler) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.engine.DeleteDocument(r.Context(), id); err != nil {
		if errors.Is(err, docmage.ErrDocumentNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "delete failed")
		slog.Error("delete error", "document_id", id, "error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// GET /documents/{id}/report
// Returns the analysis rendered as a standalone HTML page.
func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	html, err := h.engine.Report(r.Context(), id)
	if err != nil {
		if errors.Is(err, docmage.ErrDocumentNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "report failed")
		slog.Error("report error", "document_id", id, "error", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition",
		"attachment; filename=\"report-"+strconv.FormatInt(id, 10)+".html\"")
	w.WriteHeader(http.StatusOK)
	w.Write(html)
}

// GET /health
func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// saveUpload writes the uploaded stream into the upload directory and
// returns its final path, <hash12>-<name>. Re-uploading identical
// content under the same name lands on the same path, which lets the
// engine's content-hash skip apply.
func (h *handler) saveUpload(src io.Reader, name string) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(h.uploadDir, "upload-*")
	if err != nil {
		return "", err
	}
	digest := sha256.New()
	if _, err := io.Copy(io.MultiWriter(tmp, digest), src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	sum := hex.EncodeToString(digest.Sum(nil))
	finalPath := filepath.Join(h.uploadDir, sum[:12]+"-"+name)
	if err := os.Rename(tmp.Name(), finalPath); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return finalPath, nil
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid document id")
		return 0, false
	}
	return id, true
}

// writeAnalyzeError maps known pipeline errors to client-facing status codes.
func writeAnalyzeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, docmage.ErrUnsupportedFormat):
		writeError(w, http.StatusUnsupportedMediaType, "unsupported document format")
	case errors.Is(err, docmage.ErrEmptyDocument):
		writeError(w, http.StatusUnprocessableEntity, "document contains no extractable text")
	case errors.Is(err, docmage.ErrParsingFailed):
		writeError(w, http.StatusUnprocessableEntity, "failed to parse document")
	default:
		writeError(w, http.StatusInternalServerError, "analysis failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
