// Package chain defines the block store contract shared by reconciliation components.
package chain

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ShortIDFunc computes the keyed short id of a transaction hash.
type ShortIDFunc func(key0, key1, version uint64, txHash chainhash.Hash) uint64

// BlockIndex is a handle to a block known to a BlockStore.
type BlockIndex struct {
	Hash   chainhash.Hash
	Height int64
}

// Block is a canonical block reduced to what reconciliation needs.
type Block struct {
	// Header hash as computed from the payload, not the hash used for lookup.
	SelfHash chainhash.Hash
	Height   int64
	// Transactions holds transaction hashes in canonical block order.
	Transactions []chainhash.Hash
}

// Hash returns the block's own hash.
func (b *Block) Hash() chainhash.Hash {
	return b.SelfHash
}

// BlockStore provides read access to canonical blocks.
//
// LookupBlockIndex returns found=false when the block is not part of the
// canonical chain. ReadBlock errors are treated as payload read failures.
type BlockStore interface {
	LookupBlockIndex(ctx context.Context, hash chainhash.Hash) (idx BlockIndex, found bool, err error)
	ReadBlock(ctx context.Context, idx BlockIndex) (*Block, error)
}
