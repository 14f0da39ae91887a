package persistence

import "time"

// ValidationRecord is one stored outcome of checking a captured
// RunAgentInput payload file against the schema model. A file is keyed
// by path and modification time, so an edited file is re-checked while
// an unchanged one is skipped.
type ValidationRecord struct {
	Path       string
	ModifiedAt int64
	ThreadID   string
	RunID      string
	Valid      bool
	Violation  string
	CheckedAt  time.Time
}
