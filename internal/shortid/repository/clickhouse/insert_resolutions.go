package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/model"
	"github.com/goodnatureofminers/blockinsight7000-shortid/pkg/safe"
)

const insertResolutionsQuery = `
INSERT INTO shortid_resolutions (
	network,
	block_hash,
	status,
	expected_count,
	resolved_count,
	attempts,
	detail,
	processed_at
) VALUES`

// InsertResolutions stores one row per block outcome.
func (r *Repository) InsertResolutions(ctx context.Context, outcomes []model.Outcome) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_resolutions", err, start)
	}()

	if len(outcomes) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertResolutionsQuery)
	if err != nil {
		return fmt.Errorf("prepare resolutions batch: %w", err)
	}

	for _, o := range outcomes {
		var row resolutionRow
		row, err = newResolutionRow(r.network, o)
		if err != nil {
			return err
		}
		if err = batch.Append(
			row.Network,
			row.BlockHash,
			row.Status,
			row.ExpectedCount,
			row.ResolvedCount,
			row.Attempts,
			row.Detail,
			row.ProcessedAt,
		); err != nil {
			return fmt.Errorf("append resolution: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert resolutions: %w", err)
	}
	return nil
}

type resolutionRow struct {
	Network       string
	BlockHash     string
	Status        string
	ExpectedCount uint32
	ResolvedCount uint32
	Attempts      uint32
	Detail        string
	ProcessedAt   time.Time
}

func newResolutionRow(network string, o model.Outcome) (resolutionRow, error) {
	expected, err := safe.Uint32(o.ExpectedCount)
	if err != nil {
		return resolutionRow{}, fmt.Errorf("block %s expected count: %w", o.BlockHash, err)
	}
	resolved, err := safe.Uint32(o.ResolvedCount)
	if err != nil {
		return resolutionRow{}, fmt.Errorf("block %s resolved count: %w", o.BlockHash, err)
	}
	attempts, err := safe.Uint32(o.Attempts)
	if err != nil {
		return resolutionRow{}, fmt.Errorf("block %s attempts: %w", o.BlockHash, err)
	}

	processedAt := o.ProcessedAt
	if processedAt.IsZero() {
		processedAt = time.Now()
	}
	return resolutionRow{
		Network:       network,
		BlockHash:     o.BlockHash.String(),
		Status:        string(o.Status),
		ExpectedCount: expected,
		ResolvedCount: resolved,
		Attempts:      attempts,
		Detail:        o.Detail(),
		ProcessedAt:   processedAt.UTC(),
	}, nil
}
