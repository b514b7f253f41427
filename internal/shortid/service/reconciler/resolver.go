package reconciler

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/chain"
	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/model"
)

// Resolver maps requested short ids back to transaction hashes by replaying
// the short id function over the canonical block.
type Resolver struct {
	store   BlockStore
	shortID chain.ShortIDFunc
}

// NewResolver constructs a Resolver.
func NewResolver(store BlockStore, shortID chain.ShortIDFunc) *Resolver {
	return &Resolver{store: store, shortID: shortID}
}

// Resolve returns the transactions of the requested block whose short id was
// requested, in block order. It does not judge completeness. Only a block that
// is missing from the index or replaced during the read is ErrBlockUnavailable;
// store failures are ErrBlockReadError.
func (r *Resolver) Resolve(ctx context.Context, req model.BlockRequest) (model.ResolvedBlock, error) {
	if err := ctx.Err(); err != nil {
		return model.ResolvedBlock{}, err
	}

	idx, found, err := r.store.LookupBlockIndex(ctx, req.BlockHash)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.ResolvedBlock{}, ctxErr
		}
		return model.ResolvedBlock{}, fmt.Errorf("%w: lookup block %s: %w", model.ErrBlockReadError, req.BlockHash, err)
	}
	if !found {
		return model.ResolvedBlock{}, fmt.Errorf("%w: block %s not in block index", model.ErrBlockUnavailable, req.BlockHash)
	}

	block, err := r.store.ReadBlock(ctx, idx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.ResolvedBlock{}, ctxErr
		}
		return model.ResolvedBlock{}, fmt.Errorf("%w: block %s: %w", model.ErrBlockReadError, req.BlockHash, err)
	}
	// The index entry may have been replaced between lookup and read.
	if block == nil || block.Hash() != req.BlockHash {
		return model.ResolvedBlock{}, fmt.Errorf("%w: block %s changed during read", model.ErrBlockUnavailable, req.BlockHash)
	}

	resolved := model.ResolvedBlock{
		BlockHash: req.BlockHash,
		Keys:      req.Keys,
		Requested: req.RequestedShortIDs,
		MatchedBy: make(map[uint64][]chainhash.Hash),
	}
	for _, txHash := range block.Transactions {
		id := r.shortID(req.Keys.Key0, req.Keys.Key1, req.Keys.Version, txHash)
		if !req.RequestedShortIDs.Has(id) {
			continue
		}
		resolved.ResolvedTxHashes = append(resolved.ResolvedTxHashes, txHash)
		resolved.MatchedBy[id] = append(resolved.MatchedBy[id], txHash)
	}
	return resolved, nil
}
