package pipeline

import (
	"sort"
	"sync"
	"time"
)

type sample struct {
	timestamp  time.Time
	durationUs int64
}

// StatsSnapshot is a point-in-time aggregate of repair latencies and
// outcome counters.
type StatsSnapshot struct {
	Count       int     `json:"count"`
	MinUs       int64   `json:"min_us"`
	MaxUs       int64   `json:"max_us"`
	AvgUs       float64 `json:"avg_us"`
	P50Us       float64 `json:"p50_us"`
	P95Us       float64 `json:"p95_us"`
	P99Us       float64 `json:"p99_us"`
	RowsRemoved int64   `json:"rows_removed_total"`
	FieldsFound int64   `json:"fields_detected_total"`
}

// FixStats tracks recent repair latencies within a rolling window, plus
// running totals of what the repairs changed.
type FixStats struct {
	mu          sync.Mutex
	samples     []sample
	maxAge      time.Duration
	rowsRemoved int64
	fieldsFound int64
}

func NewFixStats(maxAge time.Duration) *FixStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &FixStats{
		samples: make([]sample, 0, 256),
		maxAge:  maxAge,
	}
}

// Record adds one repair outcome.
func (s *FixStats) Record(elapsed time.Duration, res Result) {
	us := elapsed.Microseconds()
	if us < 0 {
		us = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	s.samples = append(s.samples, sample{timestamp: now, durationUs: us})
	s.rowsRemoved += int64(res.RowsRemoved)
	s.fieldsFound += int64(res.Fields.Count())
}

func (s *FixStats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	if len(s.samples) == 0 {
		return StatsSnapshot{
			RowsRemoved: s.rowsRemoved,
			FieldsFound: s.fieldsFound,
		}
	}

	values := make([]int64, 0, len(s.samples))
	var sum int64
	for _, sm := range s.samples {
		values = append(values, sm.durationUs)
		sum += sm.durationUs
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return StatsSnapshot{
		Count:       len(values),
		MinUs:       values[0],
		MaxUs:       values[len(values)-1],
		AvgUs:       float64(sum) / float64(len(values)),
		P50Us:       percentile(values, 50),
		P95Us:       percentile(values, 95),
		P99Us:       percentile(values, 99),
		RowsRemoved: s.rowsRemoved,
		FieldsFound: s.fieldsFound,
	}
}

func (s *FixStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	writeIdx := 0
	for _, sm := range s.samples {
		if !sm.timestamp.Before(cutoff) {
			s.samples[writeIdx] = sm
			writeIdx++
		}
	}
	s.samples = s.samples[:writeIdx]
}

func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
