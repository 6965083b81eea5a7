// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/redscout/redscout/ent/agentstate"
	"github.com/redscout/redscout/ent/predicate"
)

// AgentStateUpdate is the builder for updating AgentState entities.
type AgentStateUpdate struct {
	config
	hooks    []Hook
	mutation *AgentStateMutation
}

// Where appends a list predicates to the AgentStateUpdate builder.
func (_u *AgentStateUpdate) Where(ps ...predicate.AgentState) *AgentStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentStateUpdate) SetAgentType(v string) *AgentStateUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableAgentType(v *string) *AgentStateUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentStateUpdate) SetStatus(v agentstate.Status) *AgentStateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableStatus(v *agentstate.Status) *AgentStateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStateData sets the "state_data" field.
func (_u *AgentStateUpdate) SetStateData(v map[string]interface{}) *AgentStateUpdate {
	_u.mutation.SetStateData(v)
	return _u
}

// ClearStateData clears the value of the "state_data" field.
func (_u *AgentStateUpdate) ClearStateData() *AgentStateUpdate {
	_u.mutation.ClearStateData()
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentStateUpdate) SetCapabilities(v []string) *AgentStateUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentStateUpdate) AppendCapabilities(v []string) *AgentStateUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *AgentStateUpdate) ClearCapabilities() *AgentStateUpdate {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetCurrentTaskID sets the "current_task_id" field.
func (_u *AgentStateUpdate) SetCurrentTaskID(v string) *AgentStateUpdate {
	_u.mutation.SetCurrentTaskID(v)
	return _u
}

// SetNillableCurrentTaskID sets the "current_task_id" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableCurrentTaskID(v *string) *AgentStateUpdate {
	if v != nil {
		_u.SetCurrentTaskID(*v)
	}
	return _u
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (_u *AgentStateUpdate) ClearCurrentTaskID() *AgentStateUpdate {
	_u.mutation.ClearCurrentTaskID()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *AgentStateUpdate) SetHeartbeatAt(v time.Time) *AgentStateUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableHeartbeatAt(v *time.Time) *AgentStateUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *AgentStateUpdate) SetErrorCount(v int) *AgentStateUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableErrorCount(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *AgentStateUpdate) AddErrorCount(v int) *AgentStateUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *AgentStateUpdate) SetLastError(v string) *AgentStateUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableLastError(v *string) *AgentStateUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *AgentStateUpdate) ClearLastError() *AgentStateUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_u *AgentStateUpdate) SetTasksCompleted(v int) *AgentStateUpdate {
	_u.mutation.ResetTasksCompleted()
	_u.mutation.SetTasksCompleted(v)
	return _u
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableTasksCompleted(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetTasksCompleted(*v)
	}
	return _u
}

// AddTasksCompleted adds value to the "tasks_completed" field.
func (_u *AgentStateUpdate) AddTasksCompleted(v int) *AgentStateUpdate {
	_u.mutation.AddTasksCompleted(v)
	return _u
}

// SetTasksFailed sets the "tasks_failed" field.
func (_u *AgentStateUpdate) SetTasksFailed(v int) *AgentStateUpdate {
	_u.mutation.ResetTasksFailed()
	_u.mutation.SetTasksFailed(v)
	return _u
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableTasksFailed(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetTasksFailed(*v)
	}
	return _u
}

// AddTasksFailed adds value to the "tasks_failed" field.
func (_u *AgentStateUpdate) AddTasksFailed(v int) *AgentStateUpdate {
	_u.mutation.AddTasksFailed(v)
	return _u
}

// SetAvgExecutionTimeMs sets the "avg_execution_time_ms" field.
func (_u *AgentStateUpdate) SetAvgExecutionTimeMs(v float64) *AgentStateUpdate {
	_u.mutation.ResetAvgExecutionTimeMs()
	_u.mutation.SetAvgExecutionTimeMs(v)
	return _u
}

// SetNillableAvgExecutionTimeMs sets the "avg_execution_time_ms" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableAvgExecutionTimeMs(v *float64) *AgentStateUpdate {
	if v != nil {
		_u.SetAvgExecutionTimeMs(*v)
	}
	return _u
}

// AddAvgExecutionTimeMs adds value to the "avg_execution_time_ms" field.
func (_u *AgentStateUpdate) AddAvgExecutionTimeMs(v float64) *AgentStateUpdate {
	_u.mutation.AddAvgExecutionTimeMs(v)
	return _u
}

// ClearAvgExecutionTimeMs clears the value of the "avg_execution_time_ms" field.
func (_u *AgentStateUpdate) ClearAvgExecutionTimeMs() *AgentStateUpdate {
	_u.mutation.ClearAvgExecutionTimeMs()
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *AgentStateUpdate) SetLastUpdated(v time.Time) *AgentStateUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the AgentStateMutation object of the builder.
func (_u *AgentStateUpdate) Mutation() *AgentStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentStateUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := agentstate.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentState.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstate.Table, agentstate.Columns, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agentstate.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StateData(); ok {
		_spec.SetField(agentstate.FieldStateData, field.TypeJSON, value)
	}
	if _u.mutation.StateDataCleared() {
		_spec.ClearField(agentstate.FieldStateData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agentstate.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentstate.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(agentstate.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentTaskID(); ok {
		_spec.SetField(agentstate.FieldCurrentTaskID, field.TypeString, value)
	}
	if _u.mutation.CurrentTaskIDCleared() {
		_spec.ClearField(agentstate.FieldCurrentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(agentstate.FieldHeartbeatAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(agentstate.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(agentstate.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(agentstate.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(agentstate.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.TasksCompleted(); ok {
		_spec.SetField(agentstate.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCompleted(); ok {
		_spec.AddField(agentstate.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TasksFailed(); ok {
		_spec.SetField(agentstate.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksFailed(); ok {
		_spec.AddField(agentstate.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgExecutionTimeMs(); ok {
		_spec.SetField(agentstate.FieldAvgExecutionTimeMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgExecutionTimeMs(); ok {
		_spec.AddField(agentstate.FieldAvgExecutionTimeMs, field.TypeFloat64, value)
	}
	if _u.mutation.AvgExecutionTimeMsCleared() {
		_spec.ClearField(agentstate.FieldAvgExecutionTimeMs, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(agentstate.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentStateUpdateOne is the builder for updating a single AgentState entity.
type AgentStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentStateMutation
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentStateUpdateOne) SetAgentType(v string) *AgentStateUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableAgentType(v *string) *AgentStateUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentStateUpdateOne) SetStatus(v agentstate.Status) *AgentStateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableStatus(v *agentstate.Status) *AgentStateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStateData sets the "state_data" field.
func (_u *AgentStateUpdateOne) SetStateData(v map[string]interface{}) *AgentStateUpdateOne {
	_u.mutation.SetStateData(v)
	return _u
}

// ClearStateData clears the value of the "state_data" field.
func (_u *AgentStateUpdateOne) ClearStateData() *AgentStateUpdateOne {
	_u.mutation.ClearStateData()
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentStateUpdateOne) SetCapabilities(v []string) *AgentStateUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentStateUpdateOne) AppendCapabilities(v []string) *AgentStateUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *AgentStateUpdateOne) ClearCapabilities() *AgentStateUpdateOne {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetCurrentTaskID sets the "current_task_id" field.
func (_u *AgentStateUpdateOne) SetCurrentTaskID(v string) *AgentStateUpdateOne {
	_u.mutation.SetCurrentTaskID(v)
	return _u
}

// SetNillableCurrentTaskID sets the "current_task_id" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableCurrentTaskID(v *string) *AgentStateUpdateOne {
	if v != nil {
		_u.SetCurrentTaskID(*v)
	}
	return _u
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (_u *AgentStateUpdateOne) ClearCurrentTaskID() *AgentStateUpdateOne {
	_u.mutation.ClearCurrentTaskID()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *AgentStateUpdateOne) SetHeartbeatAt(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableHeartbeatAt(v *time.Time) *AgentStateUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *AgentStateUpdateOne) SetErrorCount(v int) *AgentStateUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableErrorCount(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *AgentStateUpdateOne) AddErrorCount(v int) *AgentStateUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *AgentStateUpdateOne) SetLastError(v string) *AgentStateUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableLastError(v *string) *AgentStateUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *AgentStateUpdateOne) ClearLastError() *AgentStateUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_u *AgentStateUpdateOne) SetTasksCompleted(v int) *AgentStateUpdateOne {
	_u.mutation.ResetTasksCompleted()
	_u.mutation.SetTasksCompleted(v)
	return _u
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableTasksCompleted(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetTasksCompleted(*v)
	}
	return _u
}

// AddTasksCompleted adds value to the "tasks_completed" field.
func (_u *AgentStateUpdateOne) AddTasksCompleted(v int) *AgentStateUpdateOne {
	_u.mutation.AddTasksCompleted(v)
	return _u
}

// SetTasksFailed sets the "tasks_failed" field.
func (_u *AgentStateUpdateOne) SetTasksFailed(v int) *AgentStateUpdateOne {
	_u.mutation.ResetTasksFailed()
	_u.mutation.SetTasksFailed(v)
	return _u
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableTasksFailed(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetTasksFailed(*v)
	}
	return _u
}

// AddTasksFailed adds value to the "tasks_failed" field.
func (_u *AgentStateUpdateOne) AddTasksFailed(v int) *AgentStateUpdateOne {
	_u.mutation.AddTasksFailed(v)
	return _u
}

// SetAvgExecutionTimeMs sets the "avg_execution_time_ms" field.
func (_u *AgentStateUpdateOne) SetAvgExecutionTimeMs(v float64) *AgentStateUpdateOne {
	_u.mutation.ResetAvgExecutionTimeMs()
	_u.mutation.SetAvgExecutionTimeMs(v)
	return _u
}

// SetNillableAvgExecutionTimeMs sets the "avg_execution_time_ms" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableAvgExecutionTimeMs(v *float64) *AgentStateUpdateOne {
	if v != nil {
		_u.SetAvgExecutionTimeMs(*v)
	}
	return _u
}

// AddAvgExecutionTimeMs adds value to the "avg_execution_time_ms" field.
func (_u *AgentStateUpdateOne) AddAvgExecutionTimeMs(v float64) *AgentStateUpdateOne {
	_u.mutation.AddAvgExecutionTimeMs(v)
	return _u
}

// ClearAvgExecutionTimeMs clears the value of the "avg_execution_time_ms" field.
func (_u *AgentStateUpdateOne) ClearAvgExecutionTimeMs() *AgentStateUpdateOne {
	_u.mutation.ClearAvgExecutionTimeMs()
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *AgentStateUpdateOne) SetLastUpdated(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the AgentStateMutation object of the builder.
func (_u *AgentStateUpdateOne) Mutation() *AgentStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentStateUpdate builder.
func (_u *AgentStateUpdateOne) Where(ps ...predicate.AgentState) *AgentStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentStateUpdateOne) Select(field string, fields ...string) *AgentStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentState entity.
func (_u *AgentStateUpdateOne) Save(ctx context.Context) (*AgentState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStateUpdateOne) SaveX(ctx context.Context) *AgentState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentStateUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := agentstate.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentState.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentStateUpdateOne) sqlSave(ctx context.Context) (_node *AgentState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstate.Table, agentstate.Columns, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentstate.FieldID)
		for _, f := range fields {
			if !agentstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agentstate.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StateData(); ok {
		_spec.SetField(agentstate.FieldStateData, field.TypeJSON, value)
	}
	if _u.mutation.StateDataCleared() {
		_spec.ClearField(agentstate.FieldStateData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agentstate.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentstate.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(agentstate.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentTaskID(); ok {
		_spec.SetField(agentstate.FieldCurrentTaskID, field.TypeString, value)
	}
	if _u.mutation.CurrentTaskIDCleared() {
		_spec.ClearField(agentstate.FieldCurrentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(agentstate.FieldHeartbeatAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(agentstate.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(agentstate.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(agentstate.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(agentstate.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.TasksCompleted(); ok {
		_spec.SetField(agentstate.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCompleted(); ok {
		_spec.AddField(agentstate.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TasksFailed(); ok {
		_spec.SetField(agentstate.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksFailed(); ok {
		_spec.AddField(agentstate.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgExecutionTimeMs(); ok {
		_spec.SetField(agentstate.FieldAvgExecutionTimeMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgExecutionTimeMs(); ok {
		_spec.AddField(agentstate.FieldAvgExecutionTimeMs, field.TypeFloat64, value)
	}
	if _u.mutation.AvgExecutionTimeMsCleared() {
		_spec.ClearField(agentstate.FieldAvgExecutionTimeMs, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(agentstate.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &AgentState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
