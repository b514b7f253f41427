// Package model defines domain models for short transaction id reconciliation.
package model

import (
	"fmt"
	"slices"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/samber/lo"
)

// BlockHashLength is the length of a hex encoded block hash.
const BlockHashLength = chainhash.MaxHashStringSize

// ShortIDSet is a set of 64-bit short transaction ids.
type ShortIDSet map[uint64]struct{}

// NewShortIDSet builds a set from the given ids, collapsing duplicates.
func NewShortIDSet(ids ...uint64) ShortIDSet {
	s := make(ShortIDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is a member of the set.
func (s ShortIDSet) Has(id uint64) bool {
	_, ok := s[id]
	return ok
}

// Add inserts every id of other into s.
func (s ShortIDSet) Add(other ShortIDSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Sorted returns the members in ascending order.
func (s ShortIDSet) Sorted() []uint64 {
	ids := lo.Keys(s)
	slices.Sort(ids)
	return ids
}

// KeyMaterial parameterizes the short id function for one block.
type KeyMaterial struct {
	Key0    uint64
	Key1    uint64
	Version uint64
}

func (k KeyMaterial) String() string {
	return fmt.Sprintf("k0=%d k1=%d version=%d", k.Key0, k.Key1, k.Version)
}

// BlockObservation is the content of one recorded observation file.
type BlockObservation struct {
	BlockHash         chainhash.Hash
	Keys              KeyMaterial
	RequestedShortIDs ShortIDSet
	Source            string
}

// BlockRequest is the aggregated unit of work for one block.
type BlockRequest struct {
	BlockHash         chainhash.Hash
	Keys              KeyMaterial
	RequestedShortIDs ShortIDSet
	Sources           []string
}

// ResolvedBlock holds the transactions whose short id was requested, in block order.
type ResolvedBlock struct {
	BlockHash        chainhash.Hash
	Keys             KeyMaterial
	Requested        ShortIDSet
	ResolvedTxHashes []chainhash.Hash
	// MatchedBy maps each requested short id to the transactions that produced it.
	MatchedBy map[uint64][]chainhash.Hash
}

// ExpectedCount is the number of distinct requested short ids.
func (b ResolvedBlock) ExpectedCount() int {
	return len(b.Requested)
}

// ResolvedCount is the number of matched transactions.
func (b ResolvedBlock) ResolvedCount() int {
	return len(b.ResolvedTxHashes)
}

// BlockRecords groups every observation file found for one block directory.
type BlockRecords struct {
	BlockHash    chainhash.Hash
	Dir          string
	Observations []BlockObservation
	Skipped      []*RecordError
}
