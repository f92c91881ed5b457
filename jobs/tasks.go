package jobs

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/AMUDHAVALLI/Billing/internal/dashboard"
	jobmetrics "github.com/AMUDHAVALLI/Billing/internal/jobs"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskStatsWarmup refreshes the dashboard stats cache so interactive
	// requests hit warm data.
	TaskStatsWarmup = "dashboard:stats_warmup"
)

// NewStatsWarmupTask constructs the warmup task. It carries no payload;
// the handler recomputes everything from the database.
func NewStatsWarmupTask() *asynq.Task {
	return asynq.NewTask(TaskStatsWarmup, nil)
}

// NewStatsWarmupHandler binds the warmup task to the dashboard service.
func NewStatsWarmupHandler(logger *slog.Logger, svc *dashboard.Service, metrics *jobmetrics.Metrics) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		tracker := metrics.Track("stats_warmup")
		stats, err := svc.Refresh(ctx)
		if err != nil {
			logger.Error("stats warmup failed", slog.Any("error", err))
			return tracker.End(err)
		}
		logger.Info("stats cache warmed",
			slog.Int("total_invoices", stats.TotalInvoices),
			slog.Float64("total_revenue", stats.TotalRevenue))
		return tracker.End(nil)
	}
}

// Client submits jobs to the queue.
type Client struct {
	client *asynq.Client
}

// NewClient constructs an Asynq client.
func NewClient(redisOpts asynq.RedisClientOpt) (*Client, error) {
	return &Client{client: asynq.NewClient(redisOpts)}, nil
}

// EnqueueStatsWarmup queues an immediate stats refresh.
func (c *Client) EnqueueStatsWarmup(ctx context.Context) (*asynq.TaskInfo, error) {
	return c.client.EnqueueContext(ctx, NewStatsWarmupTask(), asynq.Queue(QueueDefault))
}

// Close releases the underlying Asynq client.
func (c *Client) Close() error {
	return c.client.Close()
}
