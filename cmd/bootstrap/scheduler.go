package bootstrap

import (
	"context"
	"log/slog"

	"compute-market/internal/pkg/config"
	"compute-market/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(func(*cron.Cron) {}),
)

// NewScheduler registers the settlement reconciliation job. The cron runs
// between the fx start and stop hooks; a running job is given until the
// stop context expires to finish.
func NewScheduler(lc fx.Lifecycle, cfg config.Config, settlements commands.SettlementCommands) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	jobCtx, cancel := context.WithCancel(context.Background())
	_, err := c.AddFunc(cfg.Settlement.Schedule, func() {
		result, err := settlements.ReconcilePending(jobCtx, cfg.Settlement.BatchSize)
		if err != nil {
			slog.Error("settlement reconciliation failed", "error", err.Error())
			return
		}
		if result.Checked > 0 {
			slog.Info("settlement reconciliation finished",
				"checked", result.Checked,
				"confirmed", result.Confirmed,
				"failed", result.Failed)
		}
	})
	if err != nil {
		cancel()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			slog.Info("starting settlement scheduler", "schedule", cfg.Settlement.Schedule)
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			done := c.Stop().Done()
			select {
			case <-done:
			case <-ctx.Done():
			}
			cancel()
			return nil
		},
	})
	return c, nil
}
