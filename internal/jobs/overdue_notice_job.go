package jobs

import (
	"context"
	"log/slog"
	"sync"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OverdueNoticeJob periodically scans for in-progress orders past their
// delivery due date with no delivery ever made and warns both parties.
// Each order is warned at most once per process lifetime.
type OverdueNoticeJob struct {
	uowFactory commands.OrderUoWFactory
	notifier   ports.Notifier
	cron       *cron.Cron
	logger     *slog.Logger

	mu       sync.Mutex
	notified map[kernel.UUID]struct{}
}

// NewOverdueNoticeJob creates a new job for overdue delivery notices.
func NewOverdueNoticeJob(
	uowFactory commands.OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) *OverdueNoticeJob {
	return &OverdueNoticeJob{
		uowFactory: uowFactory,
		notifier:   notifier,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "overdue_notice_job"),
		notified:   make(map[kernel.UUID]struct{}),
	}
}

// Start begins the overdue notice job to run every minute.
func (j *OverdueNoticeJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue notice job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue notice job started (running every minute)")
	return nil
}

// Stop stops the overdue notice job.
func (j *OverdueNoticeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue notice job stopped")
}

func (j *OverdueNoticeJob) run(ctx context.Context) error {
	uow := j.uowFactory.Create()

	overdue, err := uow.OrderRepository().GetAllOverdue(ctx)
	if err != nil {
		return err
	}

	for _, o := range overdue {
		if j.alreadyNotified(o.ID()) {
			continue
		}

		if err := j.notifier.DeliveryOverdue(ctx, o); err != nil {
			// Not marked as notified, so the next tick retries.
			j.logger.WarnContext(ctx, "Overdue notice failed",
				"orderId", o.ID().String(), "error", err)
			continue
		}

		j.markNotified(o.ID())
	}

	return nil
}

func (j *OverdueNoticeJob) alreadyNotified(id kernel.UUID) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	_, ok := j.notified[id]
	return ok
}

func (j *OverdueNoticeJob) markNotified(id kernel.UUID) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.notified[id] = struct{}{}
}
