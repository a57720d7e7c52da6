package pipeline

import (
	"sync"
	"time"

	"github.com/paydoc/payfix/internal/docstat"
	"github.com/paydoc/payfix/internal/header"
)

// JobStatus represents the state of a fix job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusParsing   JobStatus = "parsing"
	StatusFixing    JobStatus = "fixing"
	StatusWriting   JobStatus = "writing"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// Job tracks the state of a single document repair.
type Job struct {
	mu sync.Mutex

	ID       string `json:"job_id"`
	Filename string `json:"filename"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData   []byte
	fixedText  string
	fields     header.Fields
	report     docstat.Report
	outputPath string
	errors     []string
}

// Progress tracks repair progress and outcome counts.
type Progress struct {
	FieldsDetected int      `json:"fields_detected"`
	RowsRemoved    int      `json:"rows_removed"`
	Errors         []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetFileData sets the raw input bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw input bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// SetResult records the repair outcome.
func (j *Job) SetResult(res Result, report docstat.Report) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fixedText = res.Text
	j.fields = res.Fields
	j.report = report
	j.Progress.FieldsDetected = res.Fields.Count()
	j.Progress.RowsRemoved = res.RowsRemoved
	j.UpdatedAt = time.Now()
}

// FixedText returns the repaired document, or "" if not yet produced.
func (j *Job) FixedText() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fixedText
}

// SetOutputPath records where the repaired document was written.
func (j *Job) SetOutputPath(path string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.outputPath = path
	j.UpdatedAt = time.Now()
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID         string         `json:"job_id"`
	Filename   string         `json:"filename"`
	Status     JobStatus      `json:"status"`
	Phase      string         `json:"phase"`
	Progress   Progress       `json:"progress"`
	Report     docstat.Report `json:"report"`
	OutputPath string         `json:"output_path,omitempty"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:       j.ID,
		Filename: j.Filename,
		Status:   j.Status,
		Phase:    j.Phase,
		Progress: Progress{
			FieldsDetected: j.Progress.FieldsDetected,
			RowsRemoved:    j.Progress.RowsRemoved,
			Errors:         errs,
		},
		Report:     j.report,
		OutputPath: j.outputPath,
	}
}

// Fields returns a copy of the detected header fields.
func (j *Job) Fields() header.Fields {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fields
}
