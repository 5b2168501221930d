// Package stats keeps the cross-mission action and error counters and the
// running averages reported in the end-of-game summary.
package stats

import (
	"context"
	"log/slog"

	"github.com/jwebster45206/orion-rescue/internal/storage"
)

// Aggregator appends finished-mission counters to the append-only logs and
// recomputes running averages by reading the full history back.
type Aggregator struct {
	store  storage.Storage
	logger *slog.Logger
}

func NewAggregator(store storage.Storage, logger *slog.Logger) *Aggregator {
	return &Aggregator{store: store, logger: logger}
}

// RecordResult appends a finished mission's final counters.
func (a *Aggregator) RecordResult(ctx context.Context, actionCount, errorCount int) error {
	if err := a.store.AppendStat(ctx, storage.StatActionCounts, actionCount); err != nil {
		return err
	}
	return a.store.AppendStat(ctx, storage.StatErrorCounts, errorCount)
}

// Averages returns the running averages over all recorded missions. ok is
// false when no missions have been recorded yet, so callers never divide by
// zero.
func (a *Aggregator) Averages(ctx context.Context) (actionAvg, errorAvg float64, ok bool, err error) {
	actions, err := a.store.ReadStats(ctx, storage.StatActionCounts)
	if err != nil {
		return 0, 0, false, err
	}
	errs, err := a.store.ReadStats(ctx, storage.StatErrorCounts)
	if err != nil {
		return 0, 0, false, err
	}
	if len(actions) == 0 || len(errs) == 0 {
		a.logger.Debug("No mission statistics recorded yet")
		return 0, 0, false, nil
	}
	return mean(actions), mean(errs), true, nil
}

func mean(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
