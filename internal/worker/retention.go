package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// TaxiFacade exposes the subset of application functionality required by the worker.
type TaxiFacade interface {
	CleanupOrders(ctx context.Context, maxAgeDays int) (removed, remaining int, err error)
}

// RetentionWorker periodically purges orders older than the retention window.
// With a non-positive window the worker stays idle and cleanup remains a
// manual admin operation, as in the original deployment.
type RetentionWorker struct {
	facade        TaxiFacade
	retentionDays int
	interval      time.Duration
	logger        *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewRetentionWorker constructs the retention sweep worker.
func NewRetentionWorker(facade TaxiFacade, retentionDays int, interval time.Duration, logger *slog.Logger) *RetentionWorker {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &RetentionWorker{
		facade:        facade,
		retentionDays: retentionDays,
		interval:      interval,
		logger:        logger,
	}
}

// Start launches background sweeping.
func (w *RetentionWorker) Start(ctx context.Context) {
	if w.retentionDays <= 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go w.run(runCtx)
}

// Stop waits for the sweep loop to finish.
func (w *RetentionWorker) Stop() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *RetentionWorker) run(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *RetentionWorker) sweep(ctx context.Context) {
	removed, remaining, err := w.facade.CleanupOrders(ctx, w.retentionDays)
	if err != nil {
		w.logger.Error("retention sweep failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		w.logger.Info("retention sweep removed old orders",
			slog.Int("removed", removed),
			slog.Int("remaining", remaining),
		)
	}
}
