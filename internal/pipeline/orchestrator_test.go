package pipeline

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/paydoc/payfix/internal/config"
	"github.com/paydoc/payfix/internal/header"
)

func newTestOrchestrator(workers, queueSize int) *Orchestrator {
	cfg := config.Config{
		WorkerCount:  workers,
		MaxQueueSize: queueSize,
		JobTTL:       time.Minute,
		Policy:       header.DefaultPolicy(),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewOrchestrator(cfg, log)
}

func TestOrchestratorSubmitAfterStop(t *testing.T) {
	o := newTestOrchestrator(1, 4)
	o.Start(context.Background())
	o.Stop()

	job := newTestJob("late")
	if err := o.Submit(job); err == nil {
		t.Fatal("Submit after Stop should fail")
	}
	if job.Snapshot().Status != StatusFailed {
		t.Errorf("Status = %q, want %q", job.Snapshot().Status, StatusFailed)
	}
}

func TestOrchestratorStopIdempotent(t *testing.T) {
	o := newTestOrchestrator(1, 4)
	o.Start(context.Background())
	o.Stop()
	o.Stop() // second Stop must not close the queue again
}

func TestOrchestratorQueueFull(t *testing.T) {
	// No workers started, so the queue never drains.
	o := newTestOrchestrator(1, 1)

	if err := o.Submit(newTestJob("first")); err != nil {
		t.Fatalf("first Submit error: %v", err)
	}
	overflow := newTestJob("overflow")
	if err := o.Submit(overflow); err == nil {
		t.Fatal("Submit on a full queue should fail")
	}
	if overflow.Snapshot().Status != StatusFailed {
		t.Errorf("Status = %q, want %q", overflow.Snapshot().Status, StatusFailed)
	}
	if o.QueueDepth() != 1 {
		t.Errorf("QueueDepth = %d, want 1", o.QueueDepth())
	}
}

func TestOrchestratorProcessesJob(t *testing.T) {
	o := newTestOrchestrator(1, 4)
	o.Start(context.Background())
	defer o.Stop()

	job := newTestJob("job-md")
	job.Filename = "MT_Payslip_6_2024_Mainak_Chhari_527564.md"
	job.SetFileData([]byte("Mainak Chhari\nABCDE1234F\n\n| Earnings |\n| --- |\n| Basic |\n"))

	if err := o.Submit(job); err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		snap := job.Snapshot()
		if snap.Status == StatusCompleted {
			if snap.Progress.FieldsDetected == 0 {
				t.Error("no fields detected")
			}
			return
		}
		if snap.Status == StatusFailed {
			t.Fatalf("job failed: %v", snap.Progress.Errors)
		}
		select {
		case <-deadline:
			t.Fatalf("job stuck in %q", snap.Status)
		case <-time.After(10 * time.Millisecond):
		}
	}
}
