package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/paydoc/payfix/internal/docstat"
	"github.com/paydoc/payfix/internal/header"
	"github.com/paydoc/payfix/internal/parser"
	"github.com/paydoc/payfix/internal/pipeline"
)

// handleFix repairs one uploaded document synchronously and returns the
// fixed markdown alongside the detected fields.
func (s *Server) handleFix(w http.ResponseWriter, r *http.Request) {
	filename, data, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	p, err := parser.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	text, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, "parse: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	start := time.Now()
	res := pipeline.Fix(text, filename, s.cfg.Policy)
	s.orchestrator.Stats().Record(time.Since(start), res)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"filename":     filename,
		"markdown":     res.Text,
		"fields":       fieldMap(res.Fields),
		"rows_removed": res.RowsRemoved,
		"report":       docstat.Analyze(res.Text),
	})
}

// handleFixAsync queues a repair job and returns a poll URL.
func (s *Server) handleFixAsync(w http.ResponseWriter, r *http.Request) {
	filename, data, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	now := time.Now()
	job := &pipeline.Job{
		ID:        uuid.NewString(),
		Filename:  filename,
		Status:    pipeline.StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetFileData(data)

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	// A worker may already be mutating the job; read through the snapshot.
	snap := job.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"job_id":   snap.ID,
		"status":   snap.Status,
		"poll_url": fmt.Sprintf("/api/fix/%s/status", snap.ID),
	})
}

func (s *Server) handleFixStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(job.Snapshot())
}

// handleFixResult returns the repaired markdown of a completed job.
func (s *Server) handleFixResult(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	text := job.FixedText()
	if text == "" {
		jsonError(w, "result not ready", http.StatusConflict)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = io.WriteString(w, text)
}

// readUpload extracts and size-checks the multipart file field. On failure
// it writes the error response itself and returns ok=false.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return "", nil, false
	}
	defer r.MultipartForm.RemoveAll()

	file, fh, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return "", nil, false
	}
	defer file.Close()

	filename := sanitizeFilename(fh.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return "", nil, false
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return "", nil, false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return "", nil, false
	}
	return filename, data, true
}

// sanitizeFilename strips any path components from an uploaded filename.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	if name == "" || name == "." {
		name = "upload"
	}
	return name
}

// fieldMap renders the detected fields keyed by canonical name.
func fieldMap(h header.Fields) map[string]string {
	m := make(map[string]string, len(header.FieldOrder))
	for _, f := range header.FieldOrder {
		if v := h.Get(f); v != "" {
			m[string(f)] = v
		}
	}
	return m
}
