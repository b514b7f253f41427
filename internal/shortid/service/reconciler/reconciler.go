// Package reconciler resolves recorded short transaction ids back to full
// transaction hashes, one block per unit of work.
package reconciler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/chain"
	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/model"
	"github.com/goodnatureofminers/blockinsight7000-shortid/pkg/workerpool"
)

// Config holds the knobs of a reconciliation pass.
type Config struct {
	Root        string
	OutputRoot  string
	WorkerCount int
	Retries     int
	RetryDelay  time.Duration
}

// ReconcilerService runs reconciliation passes over a record root.
type ReconcilerService struct {
	logger         *zap.Logger
	root           string
	workerCount    int
	scanner        RecordScanner
	blockProcessor BlockProcessor
	recorder       OutcomeRecorder
	metrics        ReconcilerMetrics
	now            func() time.Time
}

// NewReconcilerService wires a reconciliation service. recorder may be nil.
func NewReconcilerService(
	cfg Config,
	scanner RecordScanner,
	store BlockStore,
	shortID chain.ShortIDFunc,
	recorder OutcomeRecorder,
	metrics ReconcilerMetrics,
	logger *zap.Logger,
) (*ReconcilerService, error) {
	if cfg.Root == "" {
		return nil, errors.New("record root is required")
	}
	if metrics == nil {
		return nil, errors.New("reconciler metrics is required")
	}
	if shortID == nil {
		return nil, errors.New("short id function is required")
	}
	if cfg.OutputRoot == "" {
		cfg.OutputRoot = cfg.Root
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = defaultWorkerCount
	}
	if cfg.Retries < 0 {
		cfg.Retries = defaultRetries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}

	return &ReconcilerService{
		logger:      logger,
		root:        cfg.Root,
		workerCount: cfg.WorkerCount,
		scanner:     scanner,
		blockProcessor: &blockProcessor{
			resolver:   NewResolver(store, shortID),
			writer:     NewFileResultWriter(cfg.OutputRoot),
			logger:     logger.Named("blockProcessor"),
			sleep:      clock.SleepWithContext,
			now:        time.Now,
			retries:    cfg.Retries,
			retryDelay: cfg.RetryDelay,
		},
		recorder: recorder,
		metrics:  metrics,
		now:      time.Now,
	}, nil
}

// Reconcile performs one pass. Only an unreadable root fails before any block is
// processed; otherwise the summary is returned together with ctx.Err() when
// the pass was cancelled.
func (s *ReconcilerService) Reconcile(ctx context.Context) (summary *model.Summary, err error) {
	started := s.now()
	summary = model.NewSummary(started)
	defer func() {
		if summary == nil {
			s.metrics.ObservePass(err, 0, started)
			return
		}
		summary.Finished = s.now()
		s.metrics.ObservePass(err, summary.Total(), started)
	}()

	s.logger.Info("reading short tx ids", zap.String("root", s.root))
	records, err := s.scanner.Scan(ctx, s.root)
	if err != nil {
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.Start(ctx)
		defer s.recorder.Stop()
	}

	s.logger.Info("finding full tx hashes", zap.Int("workers", s.workerCount))
	err = workerpool.Process(ctx, s.workerCount, records, func(ctx context.Context, rec model.BlockRecords) error {
		return s.processBlock(ctx, rec, summary)
	}, nil)

	s.logger.Info("reconciliation pass finished",
		zap.Int("blocks", summary.Total()),
		zap.Int("complete", summary.Count(model.StatusComplete)),
		zap.Int("incomplete", summary.Count(model.StatusIncomplete)),
		zap.Int("ambiguous", summary.Count(model.StatusAmbiguous)),
		zap.Int("duplicate", summary.Count(model.StatusDuplicate)),
		zap.Int("skipped", summary.Skipped()),
		zap.Int("skipped_files", len(summary.SkippedRecords())),
		zap.Duration("elapsed", s.now().Sub(started)))
	return summary, err
}

func (s *ReconcilerService) processBlock(ctx context.Context, rec model.BlockRecords, summary *model.Summary) error {
	started := s.now()
	for _, skipped := range rec.Skipped {
		s.metrics.ObserveSkippedRecord(skipped.Kind)
	}
	summary.AddSkippedRecords(rec.Skipped...)

	outcome, ok, err := s.blockProcessor.Process(ctx, rec)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	summary.Add(outcome)
	s.metrics.ObserveBlock(outcome.Status, started)
	if s.recorder != nil {
		if err := s.recorder.Record(ctx, outcome); err != nil {
			s.logger.Warn("record outcome failed", zap.String("block", outcome.BlockHash.String()), zap.Error(err))
		}
	}
	return nil
}
