// Package record reads short id observations captured per block on disk.
package record

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/model"
)

// Scanner walks a record root laid out as <root>/<block hash>/<observation file>.
type Scanner struct {
	logger    *zap.Logger
	queueSize int
}

// NewScanner constructs a Scanner whose output channel buffers up to
// queueSize block directories.
func NewScanner(logger *zap.Logger, queueSize int) *Scanner {
	if queueSize < 0 {
		queueSize = 0
	}
	return &Scanner{logger: logger, queueSize: queueSize}
}

// Scan lists root and streams one BlockRecords per block directory. It fails
// only when root itself cannot be read; unreadable or malformed files are
// reported in BlockRecords.Skipped. The channel is closed when the walk ends or
// ctx is done. Scan must be called again to rescan.
func (s *Scanner) Scan(ctx context.Context, root string) (<-chan model.BlockRecords, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read record root %s: %w", root, err)
	}

	out := make(chan model.BlockRecords, s.queueSize)
	go func() {
		defer close(out)
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			hash, ok := ParseBlockHash(entry.Name())
			if !ok {
				s.logger.Debug("skipping non block directory", zap.String("dir", entry.Name()))
				continue
			}

			records := s.scanBlockDir(hash, filepath.Join(root, entry.Name()))
			select {
			case <-ctx.Done():
				return
			case out <- records:
			}
		}
	}()
	return out, nil
}

func (s *Scanner) scanBlockDir(hash chainhash.Hash, dir string) model.BlockRecords {
	records := model.BlockRecords{BlockHash: hash, Dir: dir}

	entries, err := os.ReadDir(dir)
	if err != nil {
		recErr := &model.RecordError{Path: dir, Kind: model.ErrRecordUnavailable, Err: err}
		s.logger.Warn("skipping unreadable block directory", zap.String("block", hash.String()), zap.Error(recErr))
		records.Skipped = append(records.Skipped, recErr)
		return records
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		obs, err := ParseFile(hash, path)
		if err != nil {
			var recErr *model.RecordError
			if !errors.As(err, &recErr) {
				recErr = &model.RecordError{Path: path, Kind: model.ErrMalformedRecord, Err: err}
			}
			s.logger.Warn("skipping observation file", zap.String("block", hash.String()), zap.Error(recErr))
			records.Skipped = append(records.Skipped, recErr)
			continue
		}
		records.Observations = append(records.Observations, obs)
	}
	return records
}
