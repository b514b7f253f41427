package bitcoin

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/chain"
)

// BuildBlock reduces a decoded block to its hash and ordered transaction hashes.
func BuildBlock(block *btcutil.Block, height int64) *chain.Block {
	txs := block.Transactions()
	hashes := make([]chainhash.Hash, 0, len(txs))
	for _, tx := range txs {
		hashes = append(hashes, *tx.Hash())
	}
	return &chain.Block{
		SelfHash:     *block.Hash(),
		Height:       height,
		Transactions: hashes,
	}
}
