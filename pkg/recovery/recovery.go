// Package recovery runs the maintenance daemon: it sweeps expired
// leases, scans for failed and stuck tasks, plans a recovery strategy
// per candidate, and executes the plan under the task's lease. It also
// purges old recovery rows and marks silent agents offline.
package recovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/redscout/redscout/ent"
	"github.com/redscout/redscout/ent/task"
	"github.com/redscout/redscout/ent/taskrecovery"
	"github.com/redscout/redscout/ent/workflow"
	"github.com/redscout/redscout/pkg/config"
	"github.com/redscout/redscout/pkg/taskstore"
)

// Daemon drives periodic recovery cycles.
type Daemon struct {
	cfg   *config.RecoveryConfig
	store *taskstore.Store
}

// New builds a Daemon.
func New(cfg *config.RecoveryConfig, store *taskstore.Store) *Daemon {
	return &Daemon{cfg: cfg, store: store}
}

// CycleStats summarises one recovery cycle.
type CycleStats struct {
	LeasesSwept      int
	Candidates       int
	Planned          int
	Executed         int
	Failed           int
	RecoveriesPurged int
	AgentsOffline    int
}

// Run executes recovery cycles every CheckInterval until ctx is
// cancelled. Individual cycle failures are logged, not fatal.
func (d *Daemon) Run(ctx context.Context) error {
	interval := d.cfg.CheckInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		stats, err := d.RunOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			slog.Error("Recovery cycle failed", "error", err)
		} else if stats.Candidates > 0 || stats.LeasesSwept > 0 {
			slog.Info("Recovery cycle completed",
				"leases_swept", stats.LeasesSwept,
				"candidates", stats.Candidates,
				"planned", stats.Planned,
				"executed", stats.Executed,
				"failed", stats.Failed)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce performs a single recovery cycle.
func (d *Daemon) RunOnce(ctx context.Context) (*CycleStats, error) {
	stats := &CycleStats{}

	swept, err := d.store.SweepExpiredLeases(ctx)
	if err != nil {
		return stats, err
	}
	stats.LeasesSwept = swept

	candidates, err := d.store.ScanForFailedTasks(ctx, taskstore.ScanWindow{
		MaxAge:            d.cfg.MaxTaskAge,
		StuckRunningAfter: d.cfg.StuckRunningAfter,
		StalePendingAfter: d.cfg.StalePendingAfter,
	})
	if err != nil {
		return stats, err
	}
	stats.Candidates = len(candidates)

	for _, t := range candidates {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		// A failed task inside its backoff window is not ripe yet.
		if t.Status == task.StatusFailed && t.NextRetryAt != nil && t.NextRetryAt.After(time.Now()) {
			continue
		}

		// A permanently failed task that already went through rollback
		// is settled; re-planning would record the same decision every
		// cycle until the task ages out of the scan window.
		if t.Status == task.StatusFailed && t.NextRetryAt == nil {
			rolledBack, err := d.store.HasRolledBack(ctx, t.ID)
			if err != nil {
				return stats, err
			}
			if rolledBack {
				continue
			}
		}

		active, err := d.store.ActiveRecoveryFor(ctx, t.ID)
		if err != nil {
			return stats, err
		}
		if active != nil {
			continue
		}

		strategy, reason, checkpoint := d.planFor(ctx, t)
		rec, err := d.store.CreateRecovery(ctx, t.ID, strategy, reason, checkpoint)
		if err != nil {
			if errors.Is(err, taskstore.ErrRecoveryExists) {
				continue
			}
			return stats, err
		}
		stats.Planned++

		if err := d.execute(ctx, rec, t); err != nil {
			stats.Failed++
			slog.Error("Recovery execution failed",
				"recovery_id", rec.ID,
				"task_id", t.ID,
				"strategy", strategy,
				"error", err)
			continue
		}
		stats.Executed++
	}

	// Recoveries deferred by lease contention in earlier cycles.
	pending, err := d.store.PendingRecoveries(ctx)
	if err != nil {
		return stats, err
	}
	for _, rec := range pending {
		if rec.RecoveryStatus != taskrecovery.RecoveryStatusPending {
			continue
		}
		t, err := d.store.GetTask(ctx, rec.OriginalTaskID)
		if err != nil {
			if markErr := d.store.MarkRecoveryFailed(ctx, rec.ID, err.Error()); markErr != nil {
				slog.Error("Failed to mark recovery failed", "recovery_id", rec.ID, "error", markErr)
			}
			continue
		}
		if err := d.execute(ctx, rec, t); err != nil {
			stats.Failed++
			slog.Error("Recovery execution failed",
				"recovery_id", rec.ID,
				"task_id", t.ID,
				"strategy", rec.RecoveryStrategy,
				"error", err)
			continue
		}
		stats.Executed++
	}

	purged, err := d.store.CleanupCompletedRecoveries(ctx, d.cfg.RecoveryRetentionAge)
	if err != nil {
		return stats, err
	}
	stats.RecoveriesPurged = purged

	offline, err := d.store.CleanupStaleAgents(ctx, d.cfg.AgentStalenessThreshold)
	if err != nil {
		return stats, err
	}
	stats.AgentsOffline = offline

	return stats, nil
}

// planFor picks a recovery strategy for a candidate task.
//
// A task whose workflow was cancelled is skipped outright. Failed tasks
// retry while attempts remain, resuming from partial results when the
// task saved any; exhausted or permanently failed tasks roll back to a
// terminal failure. Running tasks retry only once the worker is
// presumed crashed, and are otherwise left for an operator. Stale
// pending tasks retry.
func (d *Daemon) planFor(ctx context.Context, t *ent.Task) (taskrecovery.RecoveryStrategy, string, map[string]any) {
	reason := ""
	if t.ErrorMessage != nil {
		reason = *t.ErrorMessage
	}

	if t.WorkflowID != "" {
		wf, err := d.store.GetWorkflow(ctx, t.WorkflowID)
		if err == nil && wf.Status == workflow.StatusCancelled {
			return taskrecovery.RecoveryStrategySkip, "workflow cancelled", nil
		}
	}

	switch t.Status {
	case task.StatusFailed:
		if t.RetryCount >= t.MaxRetries {
			return taskrecovery.RecoveryStrategyRollback, "retries exhausted", nil
		}
		if t.NextRetryAt == nil {
			return taskrecovery.RecoveryStrategyRollback, "permanent failure", nil
		}
		if len(t.ResultData) > 0 {
			return taskrecovery.RecoveryStrategyCheckpoint, reason, t.ResultData
		}
		return taskrecovery.RecoveryStrategyRetry, reason, nil

	case task.StatusRunning:
		if t.StartedAt != nil && time.Since(*t.StartedAt) > d.cfg.CrashedRunningAfter {
			return taskrecovery.RecoveryStrategyRetry, "worker presumed crashed", nil
		}
		return taskrecovery.RecoveryStrategyManual, "long-running task may still be executing", nil

	default:
		return taskrecovery.RecoveryStrategyRetry, "task never started", nil
	}
}

// execute runs a planned recovery under the task's lease. Losing the
// lease race leaves the recovery pending for a later cycle.
func (d *Daemon) execute(ctx context.Context, rec *ent.TaskRecovery, t *ent.Task) error {
	// The task may have reached a terminal state since the plan was
	// made, most commonly for recoveries deferred by lease contention.
	if t.Status == task.StatusCompleted || t.Status == task.StatusCancelled {
		return d.store.MarkRecoveryCompleted(ctx, rec.ID)
	}

	token := uuid.NewString()
	acquired, err := d.store.AcquireLease(ctx, t.ID, token, d.cfg.LeaseTTL)
	if err != nil {
		return err
	}
	if !acquired {
		slog.Info("Task leased elsewhere, deferring recovery", "task_id", t.ID, "recovery_id", rec.ID)
		return nil
	}

	if err := d.store.MarkRecoveryStarted(ctx, rec.ID); err != nil {
		d.releaseLease(t.ID, token)
		return err
	}

	// Manual recoveries stay open as the operator's marker; leaving
	// them in recovering blocks re-planning on every later cycle.
	if rec.RecoveryStrategy == taskrecovery.RecoveryStrategyManual {
		slog.Warn("Task requires manual intervention",
			"task_id", t.ID,
			"agent_type", t.AgentType,
			"skill", t.SkillName,
			"recovery_id", rec.ID)
		d.releaseLease(t.ID, token)
		return nil
	}

	if err := d.applyStrategy(ctx, rec, t, token); err != nil {
		d.releaseLease(t.ID, token)
		if markErr := d.store.MarkRecoveryFailed(ctx, rec.ID, err.Error()); markErr != nil {
			slog.Error("Failed to mark recovery failed", "recovery_id", rec.ID, "error", markErr)
		}
		return err
	}

	return d.store.MarkRecoveryCompleted(ctx, rec.ID)
}

func (d *Daemon) applyStrategy(ctx context.Context, rec *ent.TaskRecovery, t *ent.Task, token string) error {
	switch rec.RecoveryStrategy {
	case taskrecovery.RecoveryStrategyRetry:
		// ResetForRetry clears the lease along with the rest of the
		// execution state.
		_, err := d.store.ResetForRetry(ctx, t.ID)
		return err

	case taskrecovery.RecoveryStrategyCheckpoint:
		if err := d.store.ApplyCheckpoint(ctx, t.ID, rec.CheckpointData); err != nil {
			return err
		}
		_, err := d.store.ResetForRetry(ctx, t.ID)
		return err

	case taskrecovery.RecoveryStrategyRollback:
		reason := "recovery rollback"
		if rec.FailureReason != nil {
			reason = "recovery: " + *rec.FailureReason
		}
		if err := d.store.MarkFailed(ctx, t.ID, reason, false); err != nil {
			return err
		}
		d.releaseLease(t.ID, token)
		return nil

	case taskrecovery.RecoveryStrategySkip:
		return d.store.MarkCancelled(ctx, t.ID)

	default:
		return fmt.Errorf("unknown recovery strategy %q", rec.RecoveryStrategy)
	}
}

func (d *Daemon) releaseLease(taskID, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := d.store.ReleaseLease(ctx, taskID, token); err != nil {
		slog.Error("Failed to release recovery lease", "task_id", taskID, "error", err)
	}
}
