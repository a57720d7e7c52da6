// Package pipeline sequences the header repair over one document and runs
// batches of documents through a bounded worker pool. The repair itself is
// a pure function of the input text and source path; all I/O lives in the
// surrounding job machinery.
package pipeline

import (
	"github.com/paydoc/payfix/internal/header"
	"github.com/paydoc/payfix/internal/table"
)

// Result is the outcome of fixing one document.
type Result struct {
	// Text is the repaired document.
	Text string
	// Fields holds the header values that were detected.
	Fields header.Fields
	// RowsRemoved counts header-shaped rows excised from the first table.
	RowsRemoved int
}

// Fix runs the full repair over one in-memory document: locate the header
// region, extract fields (corroborated by filename hints), splice in the
// clean header block, and drop header-shaped rows from the first table.
//
// Fix is deterministic and touches no state, so callers may run any number
// of invocations concurrently. It is also idempotent: applied to its own
// output it changes nothing, since the rewritten header serializes the same
// way and no header-shaped table rows remain.
func Fix(text, sourcePath string, pol header.Policy) Result {
	hints := header.HintsFromPath(sourcePath)
	fields := header.Extract(text, hints, pol)
	fixed := header.Rewrite(text, fields)
	filtered, removed := table.Filter(fixed, header.Vocabulary())
	return Result{
		Text:        filtered,
		Fields:      fields,
		RowsRemoved: removed,
	}
}
