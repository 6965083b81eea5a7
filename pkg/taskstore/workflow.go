package taskstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/redscout/redscout/ent"
	"github.com/redscout/redscout/ent/task"
	"github.com/redscout/redscout/ent/workflow"
)

// CreateWorkflowInput carries the arguments for CreateWorkflow.
type CreateWorkflowInput struct {
	ID           string // empty generates a UUID
	WorkflowType string
	Config       map[string]any
	Schedule     string
}

// CreateWorkflow records a new pipeline execution in status pending.
func (s *Store) CreateWorkflow(ctx context.Context, in CreateWorkflowInput) (*ent.Workflow, error) {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	create := s.client.Workflow.Create().
		SetID(id).
		SetWorkflowType(in.WorkflowType).
		SetStatus(workflow.StatusPending)
	if in.Config != nil {
		create = create.SetConfig(in.Config)
	}
	if in.Schedule != "" {
		create = create.SetSchedule(in.Schedule)
	}

	wf, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}
	return wf, nil
}

// GetWorkflow loads a workflow by ID.
func (s *Store) GetWorkflow(ctx context.Context, workflowID string) (*ent.Workflow, error) {
	wf, err := s.client.Workflow.Get(ctx, workflowID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrWorkflowNotFound
		}
		return nil, fmt.Errorf("failed to load workflow %s: %w", workflowID, err)
	}
	return wf, nil
}

// MarkWorkflowRunning transitions a workflow to running and counts the
// run.
func (s *Store) MarkWorkflowRunning(ctx context.Context, workflowID string) error {
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return err
	}
	now := time.Now()
	err = s.client.Workflow.UpdateOneID(workflowID).
		SetStatus(workflow.StatusRunning).
		SetStartedAt(now).
		SetLastRun(now).
		SetRunCount(wf.RunCount + 1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark workflow %s running: %w", workflowID, err)
	}
	return nil
}

// WorkflowCounters carries the per-cycle pipeline totals.
type WorkflowCounters struct {
	PostsProcessed    int
	CommentsProcessed int
	RelevantItems     int
	SummariesCreated  int
	AlertsSent        int
}

// CompleteWorkflow transitions a workflow to completed with its final
// counters.
func (s *Store) CompleteWorkflow(ctx context.Context, workflowID string, counters WorkflowCounters) error {
	err := s.client.Workflow.UpdateOneID(workflowID).
		SetStatus(workflow.StatusCompleted).
		SetPostsProcessed(counters.PostsProcessed).
		SetCommentsProcessed(counters.CommentsProcessed).
		SetRelevantItems(counters.RelevantItems).
		SetSummariesCreated(counters.SummariesCreated).
		SetAlertsSent(counters.AlertsSent).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete workflow %s: %w", workflowID, err)
	}
	return nil
}

// FailWorkflow transitions a workflow to failed with the stage error.
func (s *Store) FailWorkflow(ctx context.Context, workflowID, errorMessage string) error {
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return err
	}
	err = s.client.Workflow.UpdateOneID(workflowID).
		SetStatus(workflow.StatusFailed).
		SetErrorMessage(errorMessage).
		SetErrorCount(wf.ErrorCount + 1).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark workflow %s failed: %w", workflowID, err)
	}
	return nil
}

// CancelWorkflow transitions a workflow to cancelled and releases every
// lease its non-terminal tasks still hold. Completed stages keep their
// results.
func (s *Store) CancelWorkflow(ctx context.Context, workflowID string) error {
	err := s.client.Workflow.UpdateOneID(workflowID).
		SetStatus(workflow.StatusCancelled).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel workflow %s: %w", workflowID, err)
	}

	_, err = s.client.Task.Update().
		Where(
			task.WorkflowIDEQ(workflowID),
			task.StatusIn(task.StatusPending, task.StatusRunning),
		).
		SetStatus(task.StatusCancelled).
		SetCompletedAt(time.Now()).
		ClearLockToken().
		ClearLockExpiresAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel tasks of workflow %s: %w", workflowID, err)
	}
	return nil
}

// SetWorkflowNextRun records when the scheduler intends to run next.
func (s *Store) SetWorkflowNextRun(ctx context.Context, workflowID string, nextRun time.Time) error {
	err := s.client.Workflow.UpdateOneID(workflowID).
		SetNextRun(nextRun).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set next run for workflow %s: %w", workflowID, err)
	}
	return nil
}

// WorkflowTasks returns every task of a workflow, oldest first.
func (s *Store) WorkflowTasks(ctx context.Context, workflowID string) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.WorkflowIDEQ(workflowID)).
		Order(ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks of workflow %s: %w", workflowID, err)
	}
	return tasks, nil
}
