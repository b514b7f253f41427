// Package bitcoin implements Bitcoin-specific block access and short id hashing.
package bitcoin

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/dchest/siphash"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/chain"
)

// sipHashVersion is the first short id version keyed with SipHash. Earlier
// versions use the unkeyed cheap hash of the transaction id.
const sipHashVersion = 2

var _ chain.ShortIDFunc = ShortID

// ShortID computes the 64-bit short id of txHash for the given key material.
func ShortID(key0, key1, version uint64, txHash chainhash.Hash) uint64 {
	if version < sipHashVersion {
		return CheapHash(txHash)
	}
	return siphash.Hash(key0, key1, txHash[:])
}

// CheapHash returns the first 8 bytes of the hash read as little-endian.
func CheapHash(h chainhash.Hash) uint64 {
	return binary.LittleEndian.Uint64(h[:8])
}
