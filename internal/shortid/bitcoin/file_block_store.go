package bitcoin

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/chain"
)

const (
	rawBlockExt = ".blk"
	hexBlockExt = ".hex"
)

var _ chain.BlockStore = (*FileBlockStore)(nil)

// FileBlockStore reads serialized blocks exported from a node, one file per
// block named <hash>.blk (raw bytes) or <hash>.hex (getblock verbosity 0 output).
type FileBlockStore struct {
	dir string
}

// NewFileBlockStore creates a block store over dir.
func NewFileBlockStore(dir string) (*FileBlockStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat blocks dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return &FileBlockStore{dir: dir}, nil
}

// LookupBlockIndex reports whether a block file exists for hash.
func (s *FileBlockStore) LookupBlockIndex(ctx context.Context, hash chainhash.Hash) (chain.BlockIndex, bool, error) {
	if err := ctx.Err(); err != nil {
		return chain.BlockIndex{}, false, err
	}
	for _, ext := range []string{rawBlockExt, hexBlockExt} {
		_, err := os.Stat(s.path(hash, ext))
		if err == nil {
			return chain.BlockIndex{Hash: hash, Height: -1}, true, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return chain.BlockIndex{}, false, fmt.Errorf("stat block %s: %w", hash, err)
		}
	}
	return chain.BlockIndex{}, false, nil
}

// ReadBlock decodes the block file for idx.
func (s *FileBlockStore) ReadBlock(ctx context.Context, idx chain.BlockIndex) (*chain.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := s.readRaw(idx.Hash)
	if err != nil {
		return nil, err
	}
	block, err := btcutil.NewBlockFromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decode block %s: %w", idx.Hash, err)
	}
	return BuildBlock(block, idx.Height), nil
}

func (s *FileBlockStore) readRaw(hash chainhash.Hash) ([]byte, error) {
	raw, err := os.ReadFile(s.path(hash, rawBlockExt))
	if err == nil {
		return raw, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read block %s: %w", hash, err)
	}

	encoded, err := os.ReadFile(s.path(hash, hexBlockExt))
	if err != nil {
		return nil, fmt.Errorf("read block %s: %w", hash, err)
	}
	raw, err = hex.DecodeString(strings.TrimSpace(string(encoded)))
	if err != nil {
		return nil, fmt.Errorf("decode hex block %s: %w", hash, err)
	}
	return raw, nil
}

func (s *FileBlockStore) path(hash chainhash.Hash, ext string) string {
	return filepath.Join(s.dir, hash.String()+ext)
}
