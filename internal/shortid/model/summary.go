package model

import (
	"bytes"
	"sort"
	"sync"
	"time"
)

// Summary accumulates block outcomes of one reconciliation pass. It is safe
// for concurrent use.
type Summary struct {
	mu             sync.Mutex
	outcomes       []Outcome
	skippedRecords []*RecordError
	Started        time.Time
	Finished       time.Time
}

// NewSummary creates an empty summary.
func NewSummary(started time.Time) *Summary {
	return &Summary{Started: started}
}

// Add records the outcome of one block.
func (s *Summary) Add(o Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = append(s.outcomes, o)
}

// AddSkippedRecords records observation files that were not parsed.
func (s *Summary) AddSkippedRecords(errs ...*RecordError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skippedRecords = append(s.skippedRecords, errs...)
}

// Outcomes returns every outcome ordered by block hash.
func (s *Summary) Outcomes() []Outcome {
	s.mu.Lock()
	out := append([]Outcome(nil), s.outcomes...)
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].BlockHash[:], out[j].BlockHash[:]) < 0
	})
	return out
}

// ByStatus returns the outcomes with the given status ordered by block hash.
func (s *Summary) ByStatus(status Status) []Outcome {
	var out []Outcome
	for _, o := range s.Outcomes() {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// Count returns how many blocks finished with status.
func (s *Summary) Count(status Status) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, o := range s.outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Skipped returns how many blocks never reached verification.
func (s *Summary) Skipped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, o := range s.outcomes {
		if o.Status.Skipped() {
			n++
		}
	}
	return n
}

// SkippedRecords returns the observation files that were not parsed.
func (s *Summary) SkippedRecords() []*RecordError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*RecordError(nil), s.skippedRecords...)
}

// Total returns the number of blocks with an outcome.
func (s *Summary) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.outcomes)
}
