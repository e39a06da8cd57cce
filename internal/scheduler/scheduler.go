package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// PromotionStore is the slice of the promotion repository the scheduler
// needs: the two window-driven bulk updates.
type PromotionStore interface {
	ActivateDue(ctx context.Context, now time.Time) (int64, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// Scheduler reconciles promotion active flags against wall-clock time. Each
// pass recomputes the flags from the stored windows, so a missed or failed
// tick is self-correcting: the next one converges to the same state.
type Scheduler struct {
	promotionRepo PromotionStore
	cron          *cron.Cron
	interval      time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

// New creates a scheduler that runs a reconciliation pass every interval.
func New(promotionRepo PromotionStore, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		promotionRepo: promotionRepo,
		cron:          cron.New(),
		interval:      interval,
		logger:        logger,
		now:           time.Now,
	}
}

// Start runs one pass immediately, then schedules the recurring job for the
// lifetime of the process.
func (s *Scheduler) Start() {
	s.Reconcile(context.Background())
	s.cron.Schedule(cron.Every(s.interval), cron.FuncJob(func() {
		s.Reconcile(context.Background())
	}))
	s.cron.Start()
	s.logger.Info("promotion scheduler started", "interval", s.interval)
}

// Stop gracefully stops the scheduler, waiting for a running pass to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("promotion scheduler stopped")
}

// Reconcile runs a single pass: activate promotions whose window contains
// now, deactivate those whose window has elapsed. Store errors are logged and
// the pass moves on; the next tick retries from scratch.
func (s *Scheduler) Reconcile(ctx context.Context) {
	now := s.now()

	activated, err := s.promotionRepo.ActivateDue(ctx, now)
	if err != nil {
		s.logger.Error("failed to activate due promotions", "error", err)
	} else if activated > 0 {
		s.logger.Info("activated promotions", "count", activated)
	}

	deactivated, err := s.promotionRepo.DeactivateExpired(ctx, now)
	if err != nil {
		s.logger.Error("failed to deactivate expired promotions", "error", err)
	} else if deactivated > 0 {
		s.logger.Info("deactivated promotions", "count", deactivated)
	}
}
