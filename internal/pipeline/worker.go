package pipeline

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/paydoc/payfix/internal/docstat"
	"github.com/paydoc/payfix/internal/header"
	"github.com/paydoc/payfix/internal/parser"
)

// Worker processes a single document job: parse the upload into the text
// blob, repair it, and optionally write the result to the output directory.
type Worker struct {
	log    *slog.Logger
	policy header.Policy
	outDir string
	stats  *FixStats
}

func NewWorker(log *slog.Logger, policy header.Policy, outDir string, stats *FixStats) *Worker {
	return &Worker{
		log:    log,
		policy: policy,
		outDir: outDir,
		stats:  stats,
	}
}

// Process runs the full repair for a job.
func (w *Worker) Process(job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	text, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	job.SetStatus(StatusFixing, "fixing header")
	start := time.Now()
	res := Fix(text, job.Filename, w.policy)
	elapsed := time.Since(start)
	if w.stats != nil {
		w.stats.Record(elapsed, res)
	}
	job.SetResult(res, docstat.Analyze(res.Text))
	log.Info("repair complete",
		"fields_detected", res.Fields.Count(),
		"rows_removed", res.RowsRemoved,
		"duration_us", elapsed.Microseconds(),
	)

	if w.outDir != "" {
		job.SetStatus(StatusWriting, "writing output")
		path, err := WriteFixed(w.outDir, job.Filename, res.Text)
		if err != nil {
			log.Error("write failed", "error", err)
			job.AddError(fmt.Sprintf("write: %s", err))
			job.SetStatus(StatusFailed, "writing")
			return
		}
		job.SetOutputPath(path)
	}

	job.SetStatus(StatusCompleted, "done")
}
