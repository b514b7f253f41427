// Package metrics exposes Prometheus collectors used by the reconciler and its dependencies.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/model"
)

var (
	reconcilerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "shortid_reconciler",
		Name:      "blocks_total",
		Help:      "Count of reconciled blocks by outcome.",
	}, []string{"network", "status"})
	reconcilerBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "shortid_reconciler",
		Name:      "block_duration_seconds",
		Help:      "Duration of a single block pipeline.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"network", "status"})
	reconcilerSkippedRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "shortid_reconciler",
		Name:      "skipped_records_total",
		Help:      "Count of observation files that were not parsed.",
	}, []string{"network", "reason"})
	reconcilerPassTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "shortid_reconciler",
		Name:      "pass_total",
		Help:      "Count of reconciliation passes.",
	}, []string{"network", "status"})
	reconcilerPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "shortid_reconciler",
		Name:      "pass_duration_seconds",
		Help:      "Duration of reconciliation passes.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800, 3600},
	}, []string{"network", "status"})
	reconcilerPassBlocks = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "shortid_reconciler",
		Name:      "pass_blocks",
		Help:      "Number of blocks with an outcome in the last pass.",
	}, []string{"network"})
)

// Reconciler tracks metrics for short id reconciliation passes.
type Reconciler struct {
	network string
}

// NewReconciler creates a Reconciler metrics collector.
func NewReconciler(network string) *Reconciler {
	if network == "" {
		network = "unknown"
	}
	return &Reconciler{network: network}
}

// ObserveBlock records the outcome and duration of one block.
func (m Reconciler) ObserveBlock(status model.Status, started time.Time) {
	reconcilerBlocksTotal.WithLabelValues(m.network, string(status)).Inc()
	reconcilerBlockDuration.WithLabelValues(m.network, string(status)).Observe(time.Since(started).Seconds())
}

// ObserveSkippedRecord counts an observation file that was not parsed.
func (m Reconciler) ObserveSkippedRecord(kind error) {
	reconcilerSkippedRecordsTotal.WithLabelValues(m.network, skipReason(kind)).Inc()
}

// ObservePass records a finished pass.
func (m Reconciler) ObservePass(err error, blocks int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	reconcilerPassTotal.WithLabelValues(m.network, status).Inc()
	reconcilerPassDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	reconcilerPassBlocks.WithLabelValues(m.network).Set(float64(blocks))
}

func skipReason(kind error) string {
	switch {
	case errors.Is(kind, model.ErrMalformedRecord):
		return "malformed"
	case errors.Is(kind, model.ErrRecordUnavailable):
		return "unavailable"
	default:
		return "other"
	}
}
