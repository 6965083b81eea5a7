// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/redscout/redscout/ent/predicate"
	"github.com/redscout/redscout/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *TaskUpdate) SetAgentType(v string) *TaskUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAgentType(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetSkillName sets the "skill_name" field.
func (_u *TaskUpdate) SetSkillName(v string) *TaskUpdate {
	_u.mutation.SetSkillName(v)
	return _u
}

// SetNillableSkillName sets the "skill_name" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSkillName(v *string) *TaskUpdate {
	if v != nil {
		_u.SetSkillName(*v)
	}
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *TaskUpdate) SetParameters(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *TaskUpdate) ClearParameters() *TaskUpdate {
	_u.mutation.ClearParameters()
	return _u
}

// SetParametersHash sets the "parameters_hash" field.
func (_u *TaskUpdate) SetParametersHash(v string) *TaskUpdate {
	_u.mutation.SetParametersHash(v)
	return _u
}

// SetNillableParametersHash sets the "parameters_hash" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableParametersHash(v *string) *TaskUpdate {
	if v != nil {
		_u.SetParametersHash(*v)
	}
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *TaskUpdate) SetWorkflowID(v string) *TaskUpdate {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableWorkflowID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (_u *TaskUpdate) ClearWorkflowID() *TaskUpdate {
	_u.mutation.ClearWorkflowID()
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *TaskUpdate) SetIdempotencyKey(v string) *TaskUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIdempotencyKey(v *string) *TaskUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *TaskUpdate) ClearIdempotencyKey() *TaskUpdate {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *TaskUpdate) SetCorrelationID(v string) *TaskUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCorrelationID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *TaskUpdate) ClearCorrelationID() *TaskUpdate {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v int) *TaskUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskUpdate) AddPriority(v int) *TaskUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TaskUpdate) SetRetryCount(v int) *TaskUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRetryCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TaskUpdate) AddRetryCount(v int) *TaskUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *TaskUpdate) SetMaxRetries(v int) *TaskUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMaxRetries(v *int) *TaskUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *TaskUpdate) AddMaxRetries(v int) *TaskUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *TaskUpdate) SetNextRetryAt(v time.Time) *TaskUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableNextRetryAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *TaskUpdate) ClearNextRetryAt() *TaskUpdate {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetLockToken sets the "lock_token" field.
func (_u *TaskUpdate) SetLockToken(v string) *TaskUpdate {
	_u.mutation.SetLockToken(v)
	return _u
}

// SetNillableLockToken sets the "lock_token" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLockToken(v *string) *TaskUpdate {
	if v != nil {
		_u.SetLockToken(*v)
	}
	return _u
}

// ClearLockToken clears the value of the "lock_token" field.
func (_u *TaskUpdate) ClearLockToken() *TaskUpdate {
	_u.mutation.ClearLockToken()
	return _u
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (_u *TaskUpdate) SetLockExpiresAt(v time.Time) *TaskUpdate {
	_u.mutation.SetLockExpiresAt(v)
	return _u
}

// SetNillableLockExpiresAt sets the "lock_expires_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLockExpiresAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetLockExpiresAt(*v)
	}
	return _u
}

// ClearLockExpiresAt clears the value of the "lock_expires_at" field.
func (_u *TaskUpdate) ClearLockExpiresAt() *TaskUpdate {
	_u.mutation.ClearLockExpiresAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdate) SetErrorMessage(v string) *TaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableErrorMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdate) ClearErrorMessage() *TaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResultData sets the "result_data" field.
func (_u *TaskUpdate) SetResultData(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetResultData(v)
	return _u
}

// ClearResultData clears the value of the "result_data" field.
func (_u *TaskUpdate) ClearResultData() *TaskUpdate {
	_u.mutation.ClearResultData()
	return _u
}

// SetResultHash sets the "result_hash" field.
func (_u *TaskUpdate) SetResultHash(v string) *TaskUpdate {
	_u.mutation.SetResultHash(v)
	return _u
}

// SetNillableResultHash sets the "result_hash" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableResultHash(v *string) *TaskUpdate {
	if v != nil {
		_u.SetResultHash(*v)
	}
	return _u
}

// ClearResultHash clears the value of the "result_hash" field.
func (_u *TaskUpdate) ClearResultHash() *TaskUpdate {
	_u.mutation.ClearResultHash()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(task.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillName(); ok {
		_spec.SetField(task.FieldSkillName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(task.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(task.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParametersHash(); ok {
		_spec.SetField(task.FieldParametersHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(task.FieldWorkflowID, field.TypeString, value)
	}
	if _u.mutation.WorkflowIDCleared() {
		_spec.ClearField(task.FieldWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(task.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(task.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(task.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(task.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(task.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(task.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LockToken(); ok {
		_spec.SetField(task.FieldLockToken, field.TypeString, value)
	}
	if _u.mutation.LockTokenCleared() {
		_spec.ClearField(task.FieldLockToken, field.TypeString)
	}
	if value, ok := _u.mutation.LockExpiresAt(); ok {
		_spec.SetField(task.FieldLockExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LockExpiresAtCleared() {
		_spec.ClearField(task.FieldLockExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResultData(); ok {
		_spec.SetField(task.FieldResultData, field.TypeJSON, value)
	}
	if _u.mutation.ResultDataCleared() {
		_spec.ClearField(task.FieldResultData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResultHash(); ok {
		_spec.SetField(task.FieldResultHash, field.TypeString, value)
	}
	if _u.mutation.ResultHashCleared() {
		_spec.ClearField(task.FieldResultHash, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetAgentType sets the "agent_type" field.
func (_u *TaskUpdateOne) SetAgentType(v string) *TaskUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAgentType(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetSkillName sets the "skill_name" field.
func (_u *TaskUpdateOne) SetSkillName(v string) *TaskUpdateOne {
	_u.mutation.SetSkillName(v)
	return _u
}

// SetNillableSkillName sets the "skill_name" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSkillName(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetSkillName(*v)
	}
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *TaskUpdateOne) SetParameters(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *TaskUpdateOne) ClearParameters() *TaskUpdateOne {
	_u.mutation.ClearParameters()
	return _u
}

// SetParametersHash sets the "parameters_hash" field.
func (_u *TaskUpdateOne) SetParametersHash(v string) *TaskUpdateOne {
	_u.mutation.SetParametersHash(v)
	return _u
}

// SetNillableParametersHash sets the "parameters_hash" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableParametersHash(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetParametersHash(*v)
	}
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *TaskUpdateOne) SetWorkflowID(v string) *TaskUpdateOne {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableWorkflowID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (_u *TaskUpdateOne) ClearWorkflowID() *TaskUpdateOne {
	_u.mutation.ClearWorkflowID()
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *TaskUpdateOne) SetIdempotencyKey(v string) *TaskUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIdempotencyKey(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *TaskUpdateOne) ClearIdempotencyKey() *TaskUpdateOne {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *TaskUpdateOne) SetCorrelationID(v string) *TaskUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCorrelationID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *TaskUpdateOne) ClearCorrelationID() *TaskUpdateOne {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v int) *TaskUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskUpdateOne) AddPriority(v int) *TaskUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TaskUpdateOne) SetRetryCount(v int) *TaskUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRetryCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TaskUpdateOne) AddRetryCount(v int) *TaskUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *TaskUpdateOne) SetMaxRetries(v int) *TaskUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMaxRetries(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *TaskUpdateOne) AddMaxRetries(v int) *TaskUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *TaskUpdateOne) SetNextRetryAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableNextRetryAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *TaskUpdateOne) ClearNextRetryAt() *TaskUpdateOne {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetLockToken sets the "lock_token" field.
func (_u *TaskUpdateOne) SetLockToken(v string) *TaskUpdateOne {
	_u.mutation.SetLockToken(v)
	return _u
}

// SetNillableLockToken sets the "lock_token" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLockToken(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetLockToken(*v)
	}
	return _u
}

// ClearLockToken clears the value of the "lock_token" field.
func (_u *TaskUpdateOne) ClearLockToken() *TaskUpdateOne {
	_u.mutation.ClearLockToken()
	return _u
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (_u *TaskUpdateOne) SetLockExpiresAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetLockExpiresAt(v)
	return _u
}

// SetNillableLockExpiresAt sets the "lock_expires_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLockExpiresAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetLockExpiresAt(*v)
	}
	return _u
}

// ClearLockExpiresAt clears the value of the "lock_expires_at" field.
func (_u *TaskUpdateOne) ClearLockExpiresAt() *TaskUpdateOne {
	_u.mutation.ClearLockExpiresAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdateOne) SetErrorMessage(v string) *TaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableErrorMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdateOne) ClearErrorMessage() *TaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResultData sets the "result_data" field.
func (_u *TaskUpdateOne) SetResultData(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetResultData(v)
	return _u
}

// ClearResultData clears the value of the "result_data" field.
func (_u *TaskUpdateOne) ClearResultData() *TaskUpdateOne {
	_u.mutation.ClearResultData()
	return _u
}

// SetResultHash sets the "result_hash" field.
func (_u *TaskUpdateOne) SetResultHash(v string) *TaskUpdateOne {
	_u.mutation.SetResultHash(v)
	return _u
}

// SetNillableResultHash sets the "result_hash" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableResultHash(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetResultHash(*v)
	}
	return _u
}

// ClearResultHash clears the value of the "result_hash" field.
func (_u *TaskUpdateOne) ClearResultHash() *TaskUpdateOne {
	_u.mutation.ClearResultHash()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
		_spec.SetField(task.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillName(); ok {
		_spec.SetField(task.FieldSkillName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(task.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(task.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParametersHash(); ok {
		_spec.SetField(task.FieldParametersHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(task.FieldWorkflowID, field.TypeString, value)
	}
	if _u.mutation.WorkflowIDCleared() {
		_spec.ClearField(task.FieldWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(task.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(task.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(task.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(task.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(task.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(task.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LockToken(); ok {
		_spec.SetField(task.FieldLockToken, field.TypeString, value)
	}
	if _u.mutation.LockTokenCleared() {
		_spec.ClearField(task.FieldLockToken, field.TypeString)
	}
	if value, ok := _u.mutation.LockExpiresAt(); ok {
		_spec.SetField(task.FieldLockExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LockExpiresAtCleared() {
		_spec.ClearField(task.FieldLockExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResultData(); ok {
		_spec.SetField(task.FieldResultData, field.TypeJSON, value)
	}
	if _u.mutation.ResultDataCleared() {
		_spec.ClearField(task.FieldResultData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResultHash(); ok {
		_spec.SetField(task.FieldResultHash, field.TypeString, value)
	}
	if _u.mutation.ResultHashCleared() {
		_spec.ClearField(task.FieldResultHash, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
