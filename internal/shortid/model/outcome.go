package model

import (
	"errors"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Status is the final classification of one block in a reconciliation pass.
type Status string

const (
	StatusComplete    Status = "complete"
	StatusIncomplete  Status = "incomplete"
	StatusAmbiguous   Status = "ambiguous"
	StatusDuplicate   Status = "duplicate"
	StatusConflict    Status = "key_conflict"
	StatusUnavailable Status = "unavailable"
	StatusReadError   Status = "read_error"
	StatusFailed      Status = "failed"
)

// Statuses lists every status in report order.
var Statuses = []Status{
	StatusComplete,
	StatusIncomplete,
	StatusAmbiguous,
	StatusDuplicate,
	StatusConflict,
	StatusUnavailable,
	StatusReadError,
	StatusFailed,
}

// Skipped reports whether the block never reached verification.
func (s Status) Skipped() bool {
	switch s {
	case StatusConflict, StatusUnavailable, StatusReadError, StatusFailed:
		return true
	default:
		return false
	}
}

// StatusOf classifies the error a block pipeline finished with.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusComplete
	case errors.Is(err, ErrIncompleteResolution):
		return StatusIncomplete
	case errors.Is(err, ErrAmbiguousResolution):
		return StatusAmbiguous
	case errors.Is(err, ErrDuplicateResult):
		return StatusDuplicate
	case errors.Is(err, ErrKeyMaterialConflict):
		return StatusConflict
	case errors.Is(err, ErrBlockUnavailable):
		return StatusUnavailable
	case errors.Is(err, ErrBlockReadError):
		return StatusReadError
	default:
		return StatusFailed
	}
}

// Outcome records what happened to one block.
type Outcome struct {
	BlockHash     chainhash.Hash
	Status        Status
	ExpectedCount int
	ResolvedCount int
	Err           error
	Attempts      int
	ProcessedAt   time.Time
}

// Detail returns the error text, empty on success.
func (o Outcome) Detail() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
