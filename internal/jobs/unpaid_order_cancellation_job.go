package jobs

import (
	"context"
	"log/slog"
	"time"

	"vidstore/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// UnpaidOrderCancellationJob manages the scheduled sweep of unpaid orders.
// Runs every minute to cancel orders whose payment deadline has passed.
type UnpaidOrderCancellationJob struct {
	handler commands.CancelUnpaidOrdersCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewUnpaidOrderCancellationJob creates a new job for sweeping unpaid orders.
// Orders older than ttl that never received payment are canceled on each run.
func NewUnpaidOrderCancellationJob(
	handler commands.CancelUnpaidOrdersCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *UnpaidOrderCancellationJob {
	return &UnpaidOrderCancellationJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "unpaid_order_cancellation_job"),
	}
}

// Start begins the unpaid order sweep to run every minute.
func (j *UnpaidOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelUnpaidOrdersCommand(j.ttl)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Unpaid order sweep misconfigured", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Unpaid order sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unpaid order cancellation job started (running every minute)", "ttl", j.ttl)
	return nil
}

// Stop stops the unpaid order sweep.
func (j *UnpaidOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Unpaid order cancellation job stopped")
}
