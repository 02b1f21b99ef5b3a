package jobs

import (
	"context"
	"sync"
	"time"

	"orderflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultOutboxSchedule runs the relay every second.
const DefaultOutboxSchedule = "* * * * * *"

// OutboxPublisher is the command handler the relay drives.
type OutboxPublisher interface {
	Handle(ctx context.Context, command commands.PublishOutboxMessagesCommand) (int, error)
}

// OutboxRelayJob hands committed status events to the notification sink.
// Overlapping ticks are skipped, so a slow sink never runs two batches at
// once.
type OutboxRelayJob struct {
	handler   OutboxPublisher
	schedule  string
	batchSize int
	timeout   time.Duration
	cron      *cron.Cron
	logger    *zap.SugaredLogger

	mu      sync.Mutex
	failing bool
}

// NewOutboxRelayJob takes a six-field cron schedule (with seconds). An empty
// schedule means DefaultOutboxSchedule.
func NewOutboxRelayJob(
	handler OutboxPublisher,
	schedule string,
	batchSize int,
	timeout time.Duration,
	logger *zap.SugaredLogger,
) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxSchedule
	}
	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		timeout:   timeout,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := commands.NewPublishOutboxMessagesCommand(j.batchSize); err != nil {
		return err
	}
	if _, err := j.cron.AddFunc(j.schedule, j.RunOnce); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Infow("outbox_relay_started", "schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// RunOnce relays one batch. A failing sink is logged once when it starts
// failing and once when it recovers, not on every tick.
func (j *OutboxRelayJob) RunOnce() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	cmd, err := commands.NewPublishOutboxMessagesCommand(j.batchSize)
	if err != nil {
		j.logger.Errorw("outbox_relay_misconfigured", "error", err)
		return
	}

	published, err := j.handler.Handle(ctx, cmd)

	j.mu.Lock()
	defer j.mu.Unlock()
	switch {
	case err != nil && !j.failing:
		j.failing = true
		j.logger.Warnw("outbox_publish_failed", "published", published, "error", err)
	case err == nil && j.failing:
		j.failing = false
		j.logger.Infow("outbox_publish_recovered", "published", published)
	case err == nil && published > 0:
		j.logger.Debugw("outbox_batch_published", "published", published)
	}
}

// Stop waits for a running batch to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Infow("outbox_relay_stopped")
}
