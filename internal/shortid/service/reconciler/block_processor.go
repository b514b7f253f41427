package reconciler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/model"
)

type blockProcessor struct {
	resolver   BlockResolver
	writer     ResultWriter
	logger     *zap.Logger
	sleep      func(context.Context, time.Duration) error
	now        func() time.Time
	retries    int
	retryDelay time.Duration
}

// Process runs aggregate, resolve, verify and write for one block. Block level
// failures end up in the outcome; the returned error is only set when ctx is done.
// ok is false when the block had nothing to resolve.
func (p *blockProcessor) Process(ctx context.Context, records model.BlockRecords) (model.Outcome, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.Outcome{}, false, err
	}

	outcome := model.Outcome{BlockHash: records.BlockHash}
	logger := p.logger.With(zap.String("block", records.BlockHash.String()))

	req, ok, err := AggregateBlock(records.Observations)
	if err != nil {
		logger.Error("aggregate observations failed", zap.Error(err))
		return p.finish(outcome, err), true, nil
	}
	if !ok {
		logger.Info("no short ids to resolve",
			zap.Int("observations", len(records.Observations)),
			zap.Int("skipped_files", len(records.Skipped)))
		return model.Outcome{}, false, nil
	}
	outcome.ExpectedCount = len(req.RequestedShortIDs)

	resolved, attempts, err := p.resolve(ctx, req)
	outcome.Attempts = attempts
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.Outcome{}, false, ctxErr
		}
		logger.Error("resolve block failed", zap.Int("attempts", attempts), zap.Error(err))
		return p.finish(outcome, err), true, nil
	}
	outcome.ResolvedCount = resolved.ResolvedCount()

	if err := Verify(resolved); err != nil {
		logger.Warn("block not fully resolved",
			zap.Int("expected", outcome.ExpectedCount),
			zap.Int("resolved", outcome.ResolvedCount),
			zap.Error(err))
		return p.finish(outcome, err), true, nil
	}

	if err := p.writer.Write(ctx, resolved); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.Outcome{}, false, ctxErr
		}
		if errors.Is(err, model.ErrDuplicateResult) {
			logger.Info("result already written, leaving it untouched", zap.Error(err))
		} else {
			logger.Error("write result failed", zap.Error(err))
		}
		return p.finish(outcome, err), true, nil
	}

	logger.Debug("block resolved", zap.Int("tx_count", outcome.ResolvedCount))
	return p.finish(outcome, nil), true, nil
}

func (p *blockProcessor) resolve(ctx context.Context, req model.BlockRequest) (model.ResolvedBlock, int, error) {
	attempts := 0
	for {
		attempts++
		resolved, err := p.resolver.Resolve(ctx, req)
		if err == nil || !errors.Is(err, model.ErrBlockUnavailable) || attempts > p.retries {
			return resolved, attempts, err
		}
		delay := clock.Backoff(p.retryDelay, attempts, maxRetryDelay)
		p.logger.Debug("block unavailable, retrying",
			zap.String("block", req.BlockHash.String()),
			zap.Int("attempt", attempts),
			zap.Duration("sleep", delay),
			zap.Error(err))
		if sleepErr := p.sleep(ctx, delay); sleepErr != nil {
			return model.ResolvedBlock{}, attempts, sleepErr
		}
	}
}

func (p *blockProcessor) finish(outcome model.Outcome, err error) model.Outcome {
	outcome.Err = err
	outcome.Status = model.StatusOf(err)
	outcome.ProcessedAt = p.now()
	return outcome
}
