// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/redscout/redscout/ent/agentstate"
)

// AgentStateCreate is the builder for creating a AgentState entity.
type AgentStateCreate struct {
	config
	mutation *AgentStateMutation
	hooks    []Hook
}

// SetAgentType sets the "agent_type" field.
func (_c *AgentStateCreate) SetAgentType(v string) *AgentStateCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentStateCreate) SetStatus(v agentstate.Status) *AgentStateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableStatus(v *agentstate.Status) *AgentStateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStateData sets the "state_data" field.
func (_c *AgentStateCreate) SetStateData(v map[string]interface{}) *AgentStateCreate {
	_c.mutation.SetStateData(v)
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *AgentStateCreate) SetCapabilities(v []string) *AgentStateCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetCurrentTaskID sets the "current_task_id" field.
func (_c *AgentStateCreate) SetCurrentTaskID(v string) *AgentStateCreate {
	_c.mutation.SetCurrentTaskID(v)
	return _c
}

// SetNillableCurrentTaskID sets the "current_task_id" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableCurrentTaskID(v *string) *AgentStateCreate {
	if v != nil {
		_c.SetCurrentTaskID(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *AgentStateCreate) SetHeartbeatAt(v time.Time) *AgentStateCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableHeartbeatAt(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *AgentStateCreate) SetErrorCount(v int) *AgentStateCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableErrorCount(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *AgentStateCreate) SetLastError(v string) *AgentStateCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableLastError(v *string) *AgentStateCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_c *AgentStateCreate) SetTasksCompleted(v int) *AgentStateCreate {
	_c.mutation.SetTasksCompleted(v)
	return _c
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableTasksCompleted(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetTasksCompleted(*v)
	}
	return _c
}

// SetTasksFailed sets the "tasks_failed" field.
func (_c *AgentStateCreate) SetTasksFailed(v int) *AgentStateCreate {
	_c.mutation.SetTasksFailed(v)
	return _c
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableTasksFailed(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetTasksFailed(*v)
	}
	return _c
}

// SetAvgExecutionTimeMs sets the "avg_execution_time_ms" field.
func (_c *AgentStateCreate) SetAvgExecutionTimeMs(v float64) *AgentStateCreate {
	_c.mutation.SetAvgExecutionTimeMs(v)
	return _c
}

// SetNillableAvgExecutionTimeMs sets the "avg_execution_time_ms" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableAvgExecutionTimeMs(v *float64) *AgentStateCreate {
	if v != nil {
		_c.SetAvgExecutionTimeMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentStateCreate) SetCreatedAt(v time.Time) *AgentStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableCreatedAt(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *AgentStateCreate) SetLastUpdated(v time.Time) *AgentStateCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableLastUpdated(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentStateCreate) SetID(v string) *AgentStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentStateMutation object of the builder.
func (_c *AgentStateCreate) Mutation() *AgentStateMutation {
	return _c.mutation
}

// Save creates the AgentState in the database.
func (_c *AgentStateCreate) Save(ctx context.Context) (*AgentState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentStateCreate) SaveX(ctx context.Context) *AgentState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentStateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentstate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.HeartbeatAt(); !ok {
		v := agentstate.DefaultHeartbeatAt()
		_c.mutation.SetHeartbeatAt(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := agentstate.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.TasksCompleted(); !ok {
		v := agentstate.DefaultTasksCompleted
		_c.mutation.SetTasksCompleted(v)
	}
	if _, ok := _c.mutation.TasksFailed(); !ok {
		v := agentstate.DefaultTasksFailed
		_c.mutation.SetTasksFailed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := agentstate.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentStateCreate) check() error {
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "AgentState.agent_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentState.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentState.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HeartbeatAt(); !ok {
		return &ValidationError{Name: "heartbeat_at", err: errors.New(`ent: missing required field "AgentState.heartbeat_at"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "AgentState.error_count"`)}
	}
	if _, ok := _c.mutation.TasksCompleted(); !ok {
		return &ValidationError{Name: "tasks_completed", err: errors.New(`ent: missing required field "AgentState.tasks_completed"`)}
	}
	if _, ok := _c.mutation.TasksFailed(); !ok {
		return &ValidationError{Name: "tasks_failed", err: errors.New(`ent: missing required field "AgentState.tasks_failed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentState.created_at"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "AgentState.last_updated"`)}
	}
	return nil
}

func (_c *AgentStateCreate) sqlSave(ctx context.Context) (*AgentState, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentStateCreate) createSpec() (*AgentState, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentstate.Table, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(agentstate.FieldAgentType, field.TypeString, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentstate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StateData(); ok {
		_spec.SetField(agentstate.FieldStateData, field.TypeJSON, value)
		_node.StateData = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(agentstate.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.CurrentTaskID(); ok {
		_spec.SetField(agentstate.FieldCurrentTaskID, field.TypeString, value)
		_node.CurrentTaskID = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(agentstate.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(agentstate.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(agentstate.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.TasksCompleted(); ok {
		_spec.SetField(agentstate.FieldTasksCompleted, field.TypeInt, value)
		_node.TasksCompleted = value
	}
	if value, ok := _c.mutation.TasksFailed(); ok {
		_spec.SetField(agentstate.FieldTasksFailed, field.TypeInt, value)
		_node.TasksFailed = value
	}
	if value, ok := _c.mutation.AvgExecutionTimeMs(); ok {
		_spec.SetField(agentstate.FieldAvgExecutionTimeMs, field.TypeFloat64, value)
		_node.AvgExecutionTimeMs = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(agentstate.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// AgentStateCreateBulk is the builder for creating many AgentState entities in bulk.
type AgentStateCreateBulk struct {
	config
	err      error
	builders []*AgentStateCreate
}

// Save creates the AgentState entities in the database.
func (_c *AgentStateCreateBulk) Save(ctx context.Context) ([]*AgentState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentStateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentStateCreateBulk) SaveX(ctx context.Context) []*AgentState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
