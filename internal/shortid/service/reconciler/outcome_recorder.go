package reconciler

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/model"
	"github.com/goodnatureofminers/blockinsight7000-shortid/pkg/batcher"
)

// BatchOutcomeRecorder buffers block outcomes and stores them in batches.
type BatchOutcomeRecorder struct {
	repo           ResolutionRepository
	logger         *zap.Logger
	outcomeBatcher *batcher.Batcher[model.Outcome]
}

// NewBatchOutcomeRecorder creates a recorder flushing into repo.
func NewBatchOutcomeRecorder(repo ResolutionRepository, logger *zap.Logger) *BatchOutcomeRecorder {
	r := &BatchOutcomeRecorder{
		repo:   repo,
		logger: logger,
	}

	r.outcomeBatcher = batcher.New[model.Outcome](
		logger.Named("outcomeBatcher"),
		r.flush,
		outcomeBatcherCapacity,
		outcomeBatcherFlushInterval,
		outcomeBatcherRPS,
	)
	return r
}

func (r *BatchOutcomeRecorder) Start(ctx context.Context) {
	r.outcomeBatcher.Start(ctx)
}

func (r *BatchOutcomeRecorder) Stop() {
	r.outcomeBatcher.Stop()
}

func (r *BatchOutcomeRecorder) Record(ctx context.Context, outcome model.Outcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.outcomeBatcher.Add(ctx, outcome)
}

func (r *BatchOutcomeRecorder) flush(ctx context.Context, outcomes []model.Outcome) error {
	if err := r.repo.InsertResolutions(ctx, outcomes); err != nil {
		return err
	}
	r.logger.Debug("InsertResolutions", zap.Int("count", len(outcomes)))
	return nil
}
