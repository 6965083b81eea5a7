package taskstore

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/redscout/redscout/ent"
	"github.com/redscout/redscout/ent/predicate"
	"github.com/redscout/redscout/ent/taskrecovery"
)

// ActiveRecoveryFor returns the pending or in-flight recovery for the
// given original task, or nil when none exists.
func (s *Store) ActiveRecoveryFor(ctx context.Context, originalTaskID string) (*ent.TaskRecovery, error) {
	rec, err := s.client.TaskRecovery.Query().
		Where(
			taskrecovery.OriginalTaskIDEQ(originalTaskID),
			taskrecovery.RecoveryStatusIn(
				taskrecovery.RecoveryStatusPending,
				taskrecovery.RecoveryStatusRecovering,
			),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query active recovery for task %s: %w", originalTaskID, err)
	}
	return rec, nil
}

// CreateRecovery records a planned recovery for a task. The partial
// unique index on active recoveries rejects a second concurrent plan
// for the same task, surfaced as ErrRecoveryExists.
func (s *Store) CreateRecovery(ctx context.Context, originalTaskID string, strategy taskrecovery.RecoveryStrategy, failureReason string, checkpoint map[string]any) (*ent.TaskRecovery, error) {
	create := s.client.TaskRecovery.Create().
		SetID(uuid.NewString()).
		SetOriginalTaskID(originalTaskID).
		SetRecoveryStrategy(strategy).
		SetRecoveryStatus(taskrecovery.RecoveryStatusPending)

	if failureReason != "" {
		create = create.SetFailureReason(failureReason)
	}
	if checkpoint != nil {
		create = create.SetCheckpointData(checkpoint)
	}

	rec, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrRecoveryExists
		}
		return nil, fmt.Errorf("failed to create recovery for task %s: %w", originalTaskID, err)
	}
	return rec, nil
}

// HasRolledBack reports whether a completed rollback recovery already
// exists for the task.
func (s *Store) HasRolledBack(ctx context.Context, originalTaskID string) (bool, error) {
	exists, err := s.client.TaskRecovery.Query().
		Where(
			taskrecovery.OriginalTaskIDEQ(originalTaskID),
			taskrecovery.RecoveryStrategyEQ(taskrecovery.RecoveryStrategyRollback),
			taskrecovery.RecoveryStatusEQ(taskrecovery.RecoveryStatusCompleted),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query rollback history for task %s: %w", originalTaskID, err)
	}
	return exists, nil
}

// PendingRecoveries returns recoveries that still have attempts left,
// oldest first.
func (s *Store) PendingRecoveries(ctx context.Context) ([]*ent.TaskRecovery, error) {
	recs, err := s.client.TaskRecovery.Query().
		Where(
			taskrecovery.RecoveryStatusIn(
				taskrecovery.RecoveryStatusPending,
				taskrecovery.RecoveryStatusRecovering,
			),
			recoveryAttemptsRemaining(),
		).
		Order(ent.Asc(taskrecovery.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending recoveries: %w", err)
	}
	return recs, nil
}

// recoveryAttemptsRemaining matches rows where recovery_attempt is below
// max_recovery_attempts.
func recoveryAttemptsRemaining() predicate.TaskRecovery {
	return predicate.TaskRecovery(func(s *sql.Selector) {
		s.Where(sql.ColumnsLT(
			s.C(taskrecovery.FieldRecoveryAttempt),
			s.C(taskrecovery.FieldMaxRecoveryAttempts),
		))
	})
}

// MarkRecoveryStarted transitions a recovery to recovering and counts
// the attempt.
func (s *Store) MarkRecoveryStarted(ctx context.Context, recoveryID string) error {
	rec, err := s.client.TaskRecovery.Get(ctx, recoveryID)
	if err != nil {
		return fmt.Errorf("failed to load recovery %s: %w", recoveryID, err)
	}
	err = s.client.TaskRecovery.UpdateOneID(recoveryID).
		SetRecoveryStatus(taskrecovery.RecoveryStatusRecovering).
		SetRecoveryAttempt(rec.RecoveryAttempt + 1).
		SetRecoveryStartedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark recovery %s started: %w", recoveryID, err)
	}
	return nil
}

// MarkRecoveryCompleted transitions a recovery to its terminal completed
// state.
func (s *Store) MarkRecoveryCompleted(ctx context.Context, recoveryID string) error {
	err := s.client.TaskRecovery.UpdateOneID(recoveryID).
		SetRecoveryStatus(taskrecovery.RecoveryStatusCompleted).
		SetRecoveryCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark recovery %s completed: %w", recoveryID, err)
	}
	return nil
}

// MarkRecoveryFailed transitions a recovery to its terminal failed state
// with the execution error.
func (s *Store) MarkRecoveryFailed(ctx context.Context, recoveryID, recoveryError string) error {
	err := s.client.TaskRecovery.UpdateOneID(recoveryID).
		SetRecoveryStatus(taskrecovery.RecoveryStatusFailed).
		SetRecoveryCompletedAt(time.Now()).
		SetRecoveryError(recoveryError).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark recovery %s failed: %w", recoveryID, err)
	}
	return nil
}

// ApplyCheckpoint merges checkpoint data into the task's parameters and
// marks them as checkpoint-recovered so the skill handler can resume
// instead of restarting. The parameter hash is recomputed to keep the
// idempotency tuple consistent with the stored parameters.
func (s *Store) ApplyCheckpoint(ctx context.Context, taskID string, checkpoint map[string]any) error {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	merged := make(map[string]any, len(t.Parameters)+len(checkpoint)+1)
	for k, v := range t.Parameters {
		merged[k] = v
	}
	for k, v := range checkpoint {
		merged[k] = v
	}
	merged["_checkpoint_recovery"] = true

	hash, err := CanonicalHash(merged)
	if err != nil {
		return fmt.Errorf("failed to hash checkpointed parameters: %w", err)
	}

	err = s.client.Task.UpdateOneID(taskID).
		SetParameters(merged).
		SetParametersHash(hash).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply checkpoint to task %s: %w", taskID, err)
	}
	return nil
}

// CleanupCompletedRecoveries purges terminal recovery rows older than
// maxAge and returns the number removed.
func (s *Store) CleanupCompletedRecoveries(ctx context.Context, maxAge time.Duration) (int, error) {
	n, err := s.client.TaskRecovery.Delete().
		Where(
			taskrecovery.RecoveryStatusIn(
				taskrecovery.RecoveryStatusCompleted,
				taskrecovery.RecoveryStatusFailed,
			),
			taskrecovery.CreatedAtLT(time.Now().Add(-maxAge)),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup completed recoveries: %w", err)
	}
	return n, nil
}
