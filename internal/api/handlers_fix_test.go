package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paydoc/payfix/internal/config"
	"github.com/paydoc/payfix/internal/header"
	"github.com/paydoc/payfix/internal/pipeline"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Config{
		APIKey:         testAPIKey,
		WorkerCount:    1,
		MaxQueueSize:   4,
		MaxUploadBytes: 1 << 20,
		JobTTL:         time.Minute,
		Policy:         header.DefaultPolicy(),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	orch := pipeline.NewOrchestrator(cfg, log)
	orch.Start(context.Background())
	t.Cleanup(orch.Stop)
	return NewServer(orch, log, cfg)
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := io.WriteString(fw, content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestHandleFixAsync(t *testing.T) {
	srv := newTestServer(t)

	body, ctype := multipartUpload(t, "payslip.md", "Mainak Chhari\n\n| Earnings |\n")
	req := httptest.NewRequest(http.MethodPost, "/api/fix/async", body)
	req.Header.Set("Content-Type", ctype)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		JobID   string `json:"job_id"`
		Status  string `json:"status"`
		PollURL string `json:"poll_url"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.JobID == "" {
		t.Error("job_id is empty")
	}
	if resp.PollURL != "/api/fix/"+resp.JobID+"/status" {
		t.Errorf("poll_url = %q", resp.PollURL)
	}
	// The worker may have advanced the job already; any pipeline status is
	// valid here, an empty one means the response bypassed the snapshot.
	switch pipeline.JobStatus(resp.Status) {
	case pipeline.StatusQueued, pipeline.StatusParsing, pipeline.StatusFixing,
		pipeline.StatusWriting, pipeline.StatusCompleted, pipeline.StatusFailed:
	default:
		t.Errorf("status = %q, not a pipeline status", resp.Status)
	}
}

func TestHandleFixAsyncRequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	body, ctype := multipartUpload(t, "payslip.md", "x\n")
	req := httptest.NewRequest(http.MethodPost, "/api/fix/async", body)
	req.Header.Set("Content-Type", ctype)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
