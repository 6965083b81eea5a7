package taskstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redscout/redscout/ent"
	"github.com/redscout/redscout/ent/agentstate"
)

// HeartbeatInput carries an agent's liveness report.
type HeartbeatInput struct {
	AgentID       string
	AgentType     string
	Status        agentstate.Status
	Capabilities  []string
	CurrentTaskID string
	StateData     map[string]any
}

// UpsertAgentHeartbeat creates or refreshes the agent's state row.
// Last-writer-wins is fine here: the heartbeat timestamp only moves
// forward.
func (s *Store) UpsertAgentHeartbeat(ctx context.Context, in HeartbeatInput) error {
	now := time.Now()

	update := s.client.AgentState.UpdateOneID(in.AgentID).
		SetAgentType(in.AgentType).
		SetStatus(in.Status).
		SetHeartbeatAt(now)
	if in.Capabilities != nil {
		update = update.SetCapabilities(in.Capabilities)
	}
	if in.CurrentTaskID != "" {
		update = update.SetCurrentTaskID(in.CurrentTaskID)
	} else {
		update = update.ClearCurrentTaskID()
	}
	if in.StateData != nil {
		update = update.SetStateData(in.StateData)
	}

	err := update.Exec(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("failed to update agent state %s: %w", in.AgentID, err)
	}

	create := s.client.AgentState.Create().
		SetID(in.AgentID).
		SetAgentType(in.AgentType).
		SetStatus(in.Status).
		SetHeartbeatAt(now)
	if in.Capabilities != nil {
		create = create.SetCapabilities(in.Capabilities)
	}
	if in.CurrentTaskID != "" {
		create = create.SetCurrentTaskID(in.CurrentTaskID)
	}
	if in.StateData != nil {
		create = create.SetStateData(in.StateData)
	}

	if err := create.Exec(ctx); err != nil {
		// Concurrent first heartbeat; the other writer's row stands.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to create agent state %s: %w", in.AgentID, err)
	}
	return nil
}

// RecordTaskOutcome bumps the agent's completion counters after a skill
// invocation.
func (s *Store) RecordTaskOutcome(ctx context.Context, agentID string, succeeded bool, executionTime time.Duration) error {
	state, err := s.client.AgentState.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to load agent state %s: %w", agentID, err)
	}

	completed := state.TasksCompleted
	failed := state.TasksFailed
	if succeeded {
		completed++
	} else {
		failed++
	}

	// Running average over all completed and failed invocations.
	total := completed + failed
	prevAvg := 0.0
	if state.AvgExecutionTimeMs != nil {
		prevAvg = *state.AvgExecutionTimeMs
	}
	avg := (prevAvg*float64(total-1) + float64(executionTime.Milliseconds())) / float64(total)

	err = s.client.AgentState.UpdateOneID(agentID).
		SetTasksCompleted(completed).
		SetTasksFailed(failed).
		SetAvgExecutionTimeMs(avg).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record task outcome for agent %s: %w", agentID, err)
	}
	return nil
}

// CleanupStaleAgents marks agents without a recent heartbeat as offline
// and returns the number transitioned.
func (s *Store) CleanupStaleAgents(ctx context.Context, staleness time.Duration) (int, error) {
	n, err := s.client.AgentState.Update().
		Where(
			agentstate.StatusNEQ(agentstate.StatusOffline),
			agentstate.HeartbeatAtLT(time.Now().Add(-staleness)),
		).
		SetStatus(agentstate.StatusOffline).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup stale agents: %w", err)
	}
	return n, nil
}
