package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Run executes monitoring cycles until ctx is cancelled. A configured
// cron schedule wins over the plain monitoring interval. The first
// cycle runs immediately on startup.
func (c *Coordinator) Run(ctx context.Context) error {
	next, err := c.nextRunFunc()
	if err != nil {
		return err
	}

	for {
		result, err := c.RunMonitoringCycle(ctx, nil, nil)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			slog.Error("Monitoring cycle failed", "error", err)
		}

		runAt := next(time.Now())
		if result != nil {
			dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := c.store.SetWorkflowNextRun(dbCtx, result.WorkflowID, runAt); err != nil {
				slog.Warn("Failed to record next run", "workflow_id", result.WorkflowID, "error", err)
			}
			cancel()
		}
		slog.Info("Next monitoring cycle scheduled", "run_at", runAt)

		timer := time.NewTimer(time.Until(runAt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// nextRunFunc resolves the scheduling policy from configuration.
func (c *Coordinator) nextRunFunc() (func(time.Time) time.Time, error) {
	if spec := c.cfg.Workflow.Schedule; spec != "" {
		schedule, err := cron.ParseStandard(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid monitoring schedule %q: %w", spec, err)
		}
		return schedule.Next, nil
	}

	interval := c.cfg.Workflow.MonitoringInterval
	if interval <= 0 {
		interval = time.Hour
	}
	return func(t time.Time) time.Time { return t.Add(interval) }, nil
}
