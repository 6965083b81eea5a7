// Package taskstore is the durable task and workflow store shared by the
// coordinator, the agent runtime, and the recovery daemon. It provides
// idempotent task creation keyed on a canonical parameter hash, content
// deduplication, distributed leases, and the scan queries the recovery
// daemon runs.
package taskstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/redscout/redscout/ent"
	"github.com/redscout/redscout/ent/task"
	"github.com/redscout/redscout/pkg/canonical"
)

// Store wraps the ent client with the store operations.
type Store struct {
	client *ent.Client
}

// New creates a Store over an ent client.
func New(client *ent.Client) *Store {
	return &Store{client: client}
}

// CanonicalHash returns the stable hex SHA-256 of params. Identical
// parameter maps hash identically regardless of key order.
func CanonicalHash(params map[string]any) (string, error) {
	return canonical.Hash(params)
}

// CreateTaskInput carries the arguments for CreateIdempotentTask.
type CreateTaskInput struct {
	AgentType      string
	SkillName      string
	Parameters     map[string]any
	WorkflowID     string // empty for standalone tasks
	IdempotencyKey string
	CorrelationID  string
	Priority       int // 0 means default (5)
	MaxRetries     int // 0 means default (3)
}

// CreateIdempotentTask creates a task unless a non-terminal task with the
// same (agent_type, skill_name, parameters_hash, workflow_id) already
// exists, in which case the existing task is returned with isNew=false.
// Failed and cancelled tasks do not block a new attempt.
//
// A partial unique index backs the lookup, so two concurrent creators
// cannot both insert; the loser re-reads and returns the winner's row.
func (s *Store) CreateIdempotentTask(ctx context.Context, in CreateTaskInput) (*ent.Task, bool, error) {
	hash, err := CanonicalHash(in.Parameters)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash task parameters: %w", err)
	}

	// 1. Fast path: return an existing non-terminal task.
	existing, err := s.findActiveTask(ctx, in.AgentType, in.SkillName, hash, in.WorkflowID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	// 2. Insert. A concurrent creator may win the race; the partial unique
	//    index rejects the second insert and we fall back to its row.
	create := s.client.Task.Create().
		SetID(uuid.NewString()).
		SetAgentType(in.AgentType).
		SetSkillName(in.SkillName).
		SetParameters(in.Parameters).
		SetParametersHash(hash).
		SetWorkflowID(in.WorkflowID).
		SetStatus(task.StatusPending)

	if in.IdempotencyKey != "" {
		create = create.SetIdempotencyKey(in.IdempotencyKey)
	}
	if in.CorrelationID != "" {
		create = create.SetCorrelationID(in.CorrelationID)
	}
	if in.Priority != 0 {
		create = create.SetPriority(in.Priority)
	}
	if in.MaxRetries != 0 {
		create = create.SetMaxRetries(in.MaxRetries)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			winner, lookupErr := s.findActiveTask(ctx, in.AgentType, in.SkillName, hash, in.WorkflowID)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			if winner != nil {
				return winner, false, nil
			}
		}
		return nil, false, fmt.Errorf("failed to create task: %w", err)
	}

	return created, true, nil
}

// findActiveTask returns the non-terminal task matching the idempotency
// tuple, or nil when none exists.
func (s *Store) findActiveTask(ctx context.Context, agentType, skillName, hash, workflowID string) (*ent.Task, error) {
	found, err := s.client.Task.Query().
		Where(
			task.AgentTypeEQ(agentType),
			task.SkillNameEQ(skillName),
			task.ParametersHashEQ(hash),
			task.WorkflowIDEQ(workflowID),
			task.StatusIn(task.StatusPending, task.StatusRunning, task.StatusCompleted),
		).
		Order(ent.Asc(task.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query for existing task: %w", err)
	}
	return found, nil
}

// GetTask loads a task by ID.
func (s *Store) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to load task %s: %w", taskID, err)
	}
	return t, nil
}

// MarkRunning transitions a task to running and stamps started_at.
func (s *Store) MarkRunning(ctx context.Context, taskID string) error {
	err := s.client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark task %s running: %w", taskID, err)
	}
	return nil
}

// MarkCompleted stores the result and transitions the task to completed.
func (s *Store) MarkCompleted(ctx context.Context, taskID string, result map[string]any) error {
	resultHash, err := CanonicalHash(result)
	if err != nil {
		return fmt.Errorf("failed to hash task result: %w", err)
	}
	err = s.client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusCompleted).
		SetResultData(result).
		SetResultHash(resultHash).
		SetCompletedAt(time.Now()).
		ClearErrorMessage().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark task %s completed: %w", taskID, err)
	}
	return nil
}

// MarkFailed transitions a task to failed. When retriable is true and the
// task has retries left, next_retry_at is set so the recovery daemon can
// re-drive it; otherwise the failure is terminal.
func (s *Store) MarkFailed(ctx context.Context, taskID, errorMessage string, retriable bool) error {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	update := s.client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusFailed).
		SetErrorMessage(errorMessage).
		SetCompletedAt(time.Now())

	if retriable && t.RetryCount < t.MaxRetries {
		update = update.SetNextRetryAt(time.Now().Add(Backoff(t.RetryCount)))
	} else {
		// Terminal failure: a stale next_retry_at from an earlier
		// retriable failure must not re-queue the task.
		update = update.ClearNextRetryAt()
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark task %s failed: %w", taskID, err)
	}
	return nil
}

// MarkCancelled transitions a task to cancelled and releases its lease.
func (s *Store) MarkCancelled(ctx context.Context, taskID string) error {
	err := s.client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusCancelled).
		SetCompletedAt(time.Now()).
		ClearLockToken().
		ClearLockExpiresAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark task %s cancelled: %w", taskID, err)
	}
	return nil
}

// ResetForRetry returns a failed or stuck task to pending: the lease,
// timing fields and error message are cleared, retry_count is
// incremented, and next_retry_at is set from the backoff schedule.
func (s *Store) ResetForRetry(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	updated, err := s.client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusPending).
		ClearLockToken().
		ClearLockExpiresAt().
		ClearStartedAt().
		ClearCompletedAt().
		ClearErrorMessage().
		SetRetryCount(t.RetryCount + 1).
		SetNextRetryAt(time.Now().Add(Backoff(t.RetryCount + 1))).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset task %s for retry: %w", taskID, err)
	}
	return updated, nil
}

// Backoff returns the retry delay for the given attempt number:
// min(2^n, 60) minutes.
func Backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	minutes := 1
	for i := 0; i < attempt && minutes < 60; i++ {
		minutes *= 2
	}
	if minutes > 60 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}
