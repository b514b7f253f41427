package reconciler

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/chain"
	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RecordScanner interface {
		Scan(ctx context.Context, root string) (<-chan model.BlockRecords, error)
	}
	BlockStore interface {
		LookupBlockIndex(ctx context.Context, hash chainhash.Hash) (chain.BlockIndex, bool, error)
		ReadBlock(ctx context.Context, idx chain.BlockIndex) (*chain.Block, error)
	}
	BlockResolver interface {
		Resolve(ctx context.Context, req model.BlockRequest) (model.ResolvedBlock, error)
	}
	ResultWriter interface {
		Write(ctx context.Context, block model.ResolvedBlock) error
	}
	BlockProcessor interface {
		Process(ctx context.Context, records model.BlockRecords) (model.Outcome, bool, error)
	}
	OutcomeRecorder interface {
		Start(ctx context.Context)
		Stop()
		Record(ctx context.Context, outcome model.Outcome) error
	}
	ResolutionRepository interface {
		InsertResolutions(ctx context.Context, outcomes []model.Outcome) error
	}
	ReconcilerMetrics interface {
		ObserveBlock(status model.Status, started time.Time)
		ObserveSkippedRecord(kind error)
		ObservePass(err error, blocks int, started time.Time)
	}
)
