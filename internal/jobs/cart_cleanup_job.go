package jobs

import (
	"context"
	"log/slog"
	"time"

	"booking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartCleanupJob periodically removes carts whose expiry time has passed.
// Expired carts are dead weight: they can no longer be mutated or checked
// out, so the job reclaims their rows in bulk.
type CartCleanupJob struct {
	handler  commands.CleanupExpiredCartsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCartCleanupJob creates the cleanup job. The schedule is a six-field
// cron expression with a seconds column, e.g. "0 */10 * * * *" for every
// ten minutes.
func NewCartCleanupJob(
	handler commands.CleanupExpiredCartsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *CartCleanupJob {
	return &CartCleanupJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "cart_cleanup_job"),
	}
}

// Start schedules the cleanup to run on the configured cron expression.
func (j *CartCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart cleanup job started", "schedule", j.schedule)
	return nil
}

// Stop stops the cleanup job.
func (j *CartCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart cleanup job stopped")
}

func (j *CartCleanupJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewCleanupExpiredCartsCommand(time.Now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Cart cleanup command is invalid", "error", err)
		return
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Cart cleanup job failed", "error", err)
		return
	}

	if removed > 0 {
		j.logger.InfoContext(ctx, "Removed expired carts", "count", removed)
	}
}
