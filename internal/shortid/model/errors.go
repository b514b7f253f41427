package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/samber/lo"
)

var (
	// ErrMalformedRecord marks an observation file that could not be parsed.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrRecordUnavailable marks an observation file that could not be read.
	ErrRecordUnavailable = errors.New("record unavailable")
	// ErrKeyMaterialConflict marks observations of one block recorded with different keys.
	ErrKeyMaterialConflict = errors.New("key material conflict")
	// ErrBlockUnavailable marks a block that is not (or no longer) known to the block store.
	ErrBlockUnavailable = errors.New("block unavailable")
	// ErrBlockReadError marks a block whose index exists but whose payload could not be read.
	ErrBlockReadError = errors.New("block read error")
	// ErrIncompleteResolution marks requested short ids that matched no transaction.
	ErrIncompleteResolution = errors.New("incomplete resolution")
	// ErrAmbiguousResolution marks requested short ids matched by more than one transaction.
	ErrAmbiguousResolution = errors.New("ambiguous resolution")
	// ErrDuplicateResult marks a block that already has a persisted result.
	ErrDuplicateResult = errors.New("duplicate result")
)

// RecordError describes a single observation file that was skipped.
type RecordError struct {
	Path string
	Kind error
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *RecordError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// KeyConflictError reports the two disagreeing key triples of a block.
type KeyConflictError struct {
	BlockHash chainhash.Hash
	Want      KeyMaterial
	Got       KeyMaterial
	Source    string
}

func (e *KeyConflictError) Error() string {
	return fmt.Sprintf("%s: block %s: %s has %s, expected %s",
		ErrKeyMaterialConflict, e.BlockHash, e.Source, e.Got, e.Want)
}

func (e *KeyConflictError) Unwrap() error {
	return ErrKeyMaterialConflict
}

// IncompleteError lists requested short ids that matched no transaction.
type IncompleteError struct {
	BlockHash     chainhash.Hash
	ExpectedCount int
	ResolvedCount int
	Unmatched     []uint64
	Collisions    map[uint64][]chainhash.Hash
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: block %s: resolved %d of %d, %d unmatched short ids %v",
		ErrIncompleteResolution, e.BlockHash, e.ResolvedCount, e.ExpectedCount, len(e.Unmatched), e.Unmatched)
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncompleteResolution
}

// AmbiguousError lists requested short ids matched by more than one transaction.
type AmbiguousError struct {
	BlockHash     chainhash.Hash
	ExpectedCount int
	ResolvedCount int
	Collisions    map[uint64][]chainhash.Hash
	Unmatched     []uint64
}

// CollidingIDs returns the colliding short ids in ascending order.
func (e *AmbiguousError) CollidingIDs() []uint64 {
	ids := lo.Keys(e.Collisions)
	slices.Sort(ids)
	return ids
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%s: block %s: resolved %d for %d requested, colliding short ids %v",
		ErrAmbiguousResolution, e.BlockHash, e.ResolvedCount, e.ExpectedCount, e.CollidingIDs())
}

func (e *AmbiguousError) Unwrap() error {
	return ErrAmbiguousResolution
}
