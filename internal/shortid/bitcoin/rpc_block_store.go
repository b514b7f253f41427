package bitcoin

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/chain"
)

var _ chain.BlockStore = (*RPCBlockStore)(nil)

// RPCBlockStore implements chain.BlockStore on top of a node's JSON-RPC interface.
type RPCBlockStore struct {
	rpc BlockRPC
}

// NewRPCBlockStore creates a block store backed by node RPC.
func NewRPCBlockStore(rpc BlockRPC) *RPCBlockStore {
	return &RPCBlockStore{rpc: rpc}
}

// LookupBlockIndex resolves a block hash to a main chain index entry.
func (s *RPCBlockStore) LookupBlockIndex(ctx context.Context, hash chainhash.Hash) (chain.BlockIndex, bool, error) {
	if err := ctx.Err(); err != nil {
		return chain.BlockIndex{}, false, err
	}

	header, err := s.rpc.GetBlockHeaderVerbose(&hash)
	if err != nil {
		if isBlockNotFound(err) {
			return chain.BlockIndex{}, false, nil
		}
		return chain.BlockIndex{}, false, fmt.Errorf("get block header %s: %w", hash, err)
	}
	// Stale blocks report negative confirmations.
	if header.Confirmations < 0 {
		return chain.BlockIndex{}, false, nil
	}

	return chain.BlockIndex{Hash: hash, Height: int64(header.Height)}, true, nil
}

// ReadBlock fetches the full block payload for an index entry.
func (s *RPCBlockStore) ReadBlock(ctx context.Context, idx chain.BlockIndex) (*chain.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	msg, err := s.rpc.GetBlock(&idx.Hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", idx.Hash, err)
	}
	if msg == nil {
		return nil, fmt.Errorf("get block %s: empty response", idx.Hash)
	}

	return BuildBlock(btcutil.NewBlock(msg), idx.Height), nil
}

func isBlockNotFound(err error) bool {
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Code == btcjson.ErrRPCBlockNotFound
	}
	return false
}
