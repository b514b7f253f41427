package reconciler

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/model"
)

// Verify classifies a resolved block. It returns nil when every requested short
// id matched exactly one transaction, *model.IncompleteError when fewer
// transactions than requested ids were found and *model.AmbiguousError when a
// short id matched more than one transaction.
func Verify(block model.ResolvedBlock) error {
	var unmatched []uint64
	collisions := make(map[uint64][]chainhash.Hash)
	for _, id := range block.Requested.Sorted() {
		switch matches := block.MatchedBy[id]; len(matches) {
		case 0:
			unmatched = append(unmatched, id)
		case 1:
		default:
			collisions[id] = matches
		}
	}

	expected, resolved := block.ExpectedCount(), block.ResolvedCount()
	switch {
	case resolved < expected:
		return &model.IncompleteError{
			BlockHash:     block.BlockHash,
			ExpectedCount: expected,
			ResolvedCount: resolved,
			Unmatched:     unmatched,
			Collisions:    collisions,
		}
	case resolved > expected || len(collisions) > 0:
		// With equal counts a collision hides an unmatched id.
		return &model.AmbiguousError{
			BlockHash:     block.BlockHash,
			ExpectedCount: expected,
			ResolvedCount: resolved,
			Collisions:    collisions,
			Unmatched:     unmatched,
		}
	default:
		return nil
	}
}
