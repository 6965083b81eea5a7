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
	"github.com/redscout/redscout/ent/taskrecovery"
)

// TaskRecoveryUpdate is the builder for updating TaskRecovery entities.
type TaskRecoveryUpdate struct {
	config
	hooks    []Hook
	mutation *TaskRecoveryMutation
}

// Where appends a list predicates to the TaskRecoveryUpdate builder.
func (_u *TaskRecoveryUpdate) Where(ps ...predicate.TaskRecovery) *TaskRecoveryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOriginalTaskID sets the "original_task_id" field.
func (_u *TaskRecoveryUpdate) SetOriginalTaskID(v string) *TaskRecoveryUpdate {
	_u.mutation.SetOriginalTaskID(v)
	return _u
}

// SetNillableOriginalTaskID sets the "original_task_id" field if the given value is not nil.
func (_u *TaskRecoveryUpdate) SetNillableOriginalTaskID(v *string) *TaskRecoveryUpdate {
	if v != nil {
		_u.SetOriginalTaskID(*v)
	}
	return _u
}

// SetRecoveryStrategy sets the "recovery_strategy" field.
func (_u *TaskRecoveryUpdate) SetRecoveryStrategy(v taskrecovery.RecoveryStrategy) *TaskRecoveryUpdate {
	_u.mutation.SetRecoveryStrategy(v)
	return _u
}

// SetNillableRecoveryStrategy sets the "recovery_strategy" field if the given value is not nil.
func (_u *TaskRecoveryUpdate) SetNillableRecoveryStrategy(v *taskrecovery.RecoveryStrategy) *TaskRecoveryUpdate {
	if v != nil {
		_u.SetRecoveryStrategy(*v)
	}
	return _u
}

// SetRecoveryStatus sets the "recovery_status" field.
func (_u *TaskRecoveryUpdate) SetRecoveryStatus(v taskrecovery.RecoveryStatus) *TaskRecoveryUpdate {
	_u.mutation.SetRecoveryStatus(v)
	return _u
}

// SetNillableRecoveryStatus sets the "recovery_status" field if the given value is not nil.
func (_u *TaskRecoveryUpdate) SetNillableRecoveryStatus(v *taskrecovery.RecoveryStatus) *TaskRecoveryUpdate {
	if v != nil {
		_u.SetRecoveryStatus(*v)
	}
	return _u
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_u *TaskRecoveryUpdate) SetRecoveryAttempt(v int) *TaskRecoveryUpdate {
	_u.mutation.ResetRecoveryAttempt()
	_u.mutation.SetRecoveryAttempt(v)
	return _u
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_u *TaskRecoveryUpdate) SetNillableRecoveryAttempt(v *int) *TaskRecoveryUpdate {
	if v != nil {
		_u.SetRecoveryAttempt(*v)
	}
	return _u
}

// AddRecoveryAttempt adds value to the "recovery_attempt" field.
func (_u *TaskRecoveryUpdate) AddRecoveryAttempt(v int) *TaskRecoveryUpdate {
	_u.mutation.AddRecoveryAttempt(v)
	return _u
}

// SetMaxRecoveryAttempts sets the "max_recovery_attempts" field.
func (_u *TaskRecoveryUpdate) SetMaxRecoveryAttempts(v int) *TaskRecoveryUpdate {
	_u.mutation.ResetMaxRecoveryAttempts()
	_u.mutation.SetMaxRecoveryAttempts(v)
	return _u
}

// SetNillableMaxRecoveryAttempts sets the "max_recovery_attempts" field if the given value is not nil.
func (_u *TaskRecoveryUpdate) SetNillableMaxRecoveryAttempts(v *int) *TaskRecoveryUpdate {
	if v != nil {
		_u.SetMaxRecoveryAttempts(*v)
	}
	return _u
}

// AddMaxRecoveryAttempts adds value to the "max_recovery_attempts" field.
func (_u *TaskRecoveryUpdate) AddMaxRecoveryAttempts(v int) *TaskRecoveryUpdate {
	_u.mutation.AddMaxRecoveryAttempts(v)
	return _u
}

// SetCheckpointData sets the "checkpoint_data" field.
func (_u *TaskRecoveryUpdate) SetCheckpointData(v map[string]interface{}) *TaskRecoveryUpdate {
	_u.mutation.SetCheckpointData(v)
	return _u
}

// ClearCheckpointData clears the value of the "checkpoint_data" field.
func (_u *TaskRecoveryUpdate) ClearCheckpointData() *TaskRecoveryUpdate {
	_u.mutation.ClearCheckpointData()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *TaskRecoveryUpdate) SetFailureReason(v string) *TaskRecoveryUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *TaskRecoveryUpdate) SetNillableFailureReason(v *string) *TaskRecoveryUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *TaskRecoveryUpdate) ClearFailureReason() *TaskRecoveryUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetRecoveryStartedAt sets the "recovery_started_at" field.
func (_u *TaskRecoveryUpdate) SetRecoveryStartedAt(v time.Time) *TaskRecoveryUpdate {
	_u.mutation.SetRecoveryStartedAt(v)
	return _u
}

// SetNillableRecoveryStartedAt sets the "recovery_started_at" field if the given value is not nil.
func (_u *TaskRecoveryUpdate) SetNillableRecoveryStartedAt(v *time.Time) *TaskRecoveryUpdate {
	if v != nil {
		_u.SetRecoveryStartedAt(*v)
	}
	return _u
}

// ClearRecoveryStartedAt clears the value of the "recovery_started_at" field.
func (_u *TaskRecoveryUpdate) ClearRecoveryStartedAt() *TaskRecoveryUpdate {
	_u.mutation.ClearRecoveryStartedAt()
	return _u
}

// SetRecoveryCompletedAt sets the "recovery_completed_at" field.
func (_u *TaskRecoveryUpdate) SetRecoveryCompletedAt(v time.Time) *TaskRecoveryUpdate {
	_u.mutation.SetRecoveryCompletedAt(v)
	return _u
}

// SetNillableRecoveryCompletedAt sets the "recovery_completed_at" field if the given value is not nil.
func (_u *TaskRecoveryUpdate) SetNillableRecoveryCompletedAt(v *time.Time) *TaskRecoveryUpdate {
	if v != nil {
		_u.SetRecoveryCompletedAt(*v)
	}
	return _u
}

// ClearRecoveryCompletedAt clears the value of the "recovery_completed_at" field.
func (_u *TaskRecoveryUpdate) ClearRecoveryCompletedAt() *TaskRecoveryUpdate {
	_u.mutation.ClearRecoveryCompletedAt()
	return _u
}

// SetRecoveryError sets the "recovery_error" field.
func (_u *TaskRecoveryUpdate) SetRecoveryError(v string) *TaskRecoveryUpdate {
	_u.mutation.SetRecoveryError(v)
	return _u
}

// SetNillableRecoveryError sets the "recovery_error" field if the given value is not nil.
func (_u *TaskRecoveryUpdate) SetNillableRecoveryError(v *string) *TaskRecoveryUpdate {
	if v != nil {
		_u.SetRecoveryError(*v)
	}
	return _u
}

// ClearRecoveryError clears the value of the "recovery_error" field.
func (_u *TaskRecoveryUpdate) ClearRecoveryError() *TaskRecoveryUpdate {
	_u.mutation.ClearRecoveryError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskRecoveryUpdate) SetUpdatedAt(v time.Time) *TaskRecoveryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskRecoveryMutation object of the builder.
func (_u *TaskRecoveryUpdate) Mutation() *TaskRecoveryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskRecoveryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskRecoveryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskRecoveryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskRecoveryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskRecoveryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := taskrecovery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskRecoveryUpdate) check() error {
	if v, ok := _u.mutation.RecoveryStrategy(); ok {
		if err := taskrecovery.RecoveryStrategyValidator(v); err != nil {
			return &ValidationError{Name: "recovery_strategy", err: fmt.Errorf(`ent: validator failed for field "TaskRecovery.recovery_strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecoveryStatus(); ok {
		if err := taskrecovery.RecoveryStatusValidator(v); err != nil {
			return &ValidationError{Name: "recovery_status", err: fmt.Errorf(`ent: validator failed for field "TaskRecovery.recovery_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskRecoveryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskrecovery.Table, taskrecovery.Columns, sqlgraph.NewFieldSpec(taskrecovery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OriginalTaskID(); ok {
		_spec.SetField(taskrecovery.FieldOriginalTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecoveryStrategy(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecoveryStatus(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecoveryAttempt(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempt(); ok {
		_spec.AddField(taskrecovery.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRecoveryAttempts(); ok {
		_spec.SetField(taskrecovery.FieldMaxRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRecoveryAttempts(); ok {
		_spec.AddField(taskrecovery.FieldMaxRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CheckpointData(); ok {
		_spec.SetField(taskrecovery.FieldCheckpointData, field.TypeJSON, value)
	}
	if _u.mutation.CheckpointDataCleared() {
		_spec.ClearField(taskrecovery.FieldCheckpointData, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(taskrecovery.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(taskrecovery.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.RecoveryStartedAt(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryStartedAt, field.TypeTime, value)
	}
	if _u.mutation.RecoveryStartedAtCleared() {
		_spec.ClearField(taskrecovery.FieldRecoveryStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RecoveryCompletedAt(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.RecoveryCompletedAtCleared() {
		_spec.ClearField(taskrecovery.FieldRecoveryCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RecoveryError(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryError, field.TypeString, value)
	}
	if _u.mutation.RecoveryErrorCleared() {
		_spec.ClearField(taskrecovery.FieldRecoveryError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(taskrecovery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskrecovery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskRecoveryUpdateOne is the builder for updating a single TaskRecovery entity.
type TaskRecoveryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskRecoveryMutation
}

// SetOriginalTaskID sets the "original_task_id" field.
func (_u *TaskRecoveryUpdateOne) SetOriginalTaskID(v string) *TaskRecoveryUpdateOne {
	_u.mutation.SetOriginalTaskID(v)
	return _u
}

// SetNillableOriginalTaskID sets the "original_task_id" field if the given value is not nil.
func (_u *TaskRecoveryUpdateOne) SetNillableOriginalTaskID(v *string) *TaskRecoveryUpdateOne {
	if v != nil {
		_u.SetOriginalTaskID(*v)
	}
	return _u
}

// SetRecoveryStrategy sets the "recovery_strategy" field.
func (_u *TaskRecoveryUpdateOne) SetRecoveryStrategy(v taskrecovery.RecoveryStrategy) *TaskRecoveryUpdateOne {
	_u.mutation.SetRecoveryStrategy(v)
	return _u
}

// SetNillableRecoveryStrategy sets the "recovery_strategy" field if the given value is not nil.
func (_u *TaskRecoveryUpdateOne) SetNillableRecoveryStrategy(v *taskrecovery.RecoveryStrategy) *TaskRecoveryUpdateOne {
	if v != nil {
		_u.SetRecoveryStrategy(*v)
	}
	return _u
}

// SetRecoveryStatus sets the "recovery_status" field.
func (_u *TaskRecoveryUpdateOne) SetRecoveryStatus(v taskrecovery.RecoveryStatus) *TaskRecoveryUpdateOne {
	_u.mutation.SetRecoveryStatus(v)
	return _u
}

// SetNillableRecoveryStatus sets the "recovery_status" field if the given value is not nil.
func (_u *TaskRecoveryUpdateOne) SetNillableRecoveryStatus(v *taskrecovery.RecoveryStatus) *TaskRecoveryUpdateOne {
	if v != nil {
		_u.SetRecoveryStatus(*v)
	}
	return _u
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_u *TaskRecoveryUpdateOne) SetRecoveryAttempt(v int) *TaskRecoveryUpdateOne {
	_u.mutation.ResetRecoveryAttempt()
	_u.mutation.SetRecoveryAttempt(v)
	return _u
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_u *TaskRecoveryUpdateOne) SetNillableRecoveryAttempt(v *int) *TaskRecoveryUpdateOne {
	if v != nil {
		_u.SetRecoveryAttempt(*v)
	}
	return _u
}

// AddRecoveryAttempt adds value to the "recovery_attempt" field.
func (_u *TaskRecoveryUpdateOne) AddRecoveryAttempt(v int) *TaskRecoveryUpdateOne {
	_u.mutation.AddRecoveryAttempt(v)
	return _u
}

// SetMaxRecoveryAttempts sets the "max_recovery_attempts" field.
func (_u *TaskRecoveryUpdateOne) SetMaxRecoveryAttempts(v int) *TaskRecoveryUpdateOne {
	_u.mutation.ResetMaxRecoveryAttempts()
	_u.mutation.SetMaxRecoveryAttempts(v)
	return _u
}

// SetNillableMaxRecoveryAttempts sets the "max_recovery_attempts" field if the given value is not nil.
func (_u *TaskRecoveryUpdateOne) SetNillableMaxRecoveryAttempts(v *int) *TaskRecoveryUpdateOne {
	if v != nil {
		_u.SetMaxRecoveryAttempts(*v)
	}
	return _u
}

// AddMaxRecoveryAttempts adds value to the "max_recovery_attempts" field.
func (_u *TaskRecoveryUpdateOne) AddMaxRecoveryAttempts(v int) *TaskRecoveryUpdateOne {
	_u.mutation.AddMaxRecoveryAttempts(v)
	return _u
}

// SetCheckpointData sets the "checkpoint_data" field.
func (_u *TaskRecoveryUpdateOne) SetCheckpointData(v map[string]interface{}) *TaskRecoveryUpdateOne {
	_u.mutation.SetCheckpointData(v)
	return _u
}

// ClearCheckpointData clears the value of the "checkpoint_data" field.
func (_u *TaskRecoveryUpdateOne) ClearCheckpointData() *TaskRecoveryUpdateOne {
	_u.mutation.ClearCheckpointData()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *TaskRecoveryUpdateOne) SetFailureReason(v string) *TaskRecoveryUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *TaskRecoveryUpdateOne) SetNillableFailureReason(v *string) *TaskRecoveryUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *TaskRecoveryUpdateOne) ClearFailureReason() *TaskRecoveryUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetRecoveryStartedAt sets the "recovery_started_at" field.
func (_u *TaskRecoveryUpdateOne) SetRecoveryStartedAt(v time.Time) *TaskRecoveryUpdateOne {
	_u.mutation.SetRecoveryStartedAt(v)
	return _u
}

// SetNillableRecoveryStartedAt sets the "recovery_started_at" field if the given value is not nil.
func (_u *TaskRecoveryUpdateOne) SetNillableRecoveryStartedAt(v *time.Time) *TaskRecoveryUpdateOne {
	if v != nil {
		_u.SetRecoveryStartedAt(*v)
	}
	return _u
}

// ClearRecoveryStartedAt clears the value of the "recovery_started_at" field.
func (_u *TaskRecoveryUpdateOne) ClearRecoveryStartedAt() *TaskRecoveryUpdateOne {
	_u.mutation.ClearRecoveryStartedAt()
	return _u
}

// SetRecoveryCompletedAt sets the "recovery_completed_at" field.
func (_u *TaskRecoveryUpdateOne) SetRecoveryCompletedAt(v time.Time) *TaskRecoveryUpdateOne {
	_u.mutation.SetRecoveryCompletedAt(v)
	return _u
}

// SetNillableRecoveryCompletedAt sets the "recovery_completed_at" field if the given value is not nil.
func (_u *TaskRecoveryUpdateOne) SetNillableRecoveryCompletedAt(v *time.Time) *TaskRecoveryUpdateOne {
	if v != nil {
		_u.SetRecoveryCompletedAt(*v)
	}
	return _u
}

// ClearRecoveryCompletedAt clears the value of the "recovery_completed_at" field.
func (_u *TaskRecoveryUpdateOne) ClearRecoveryCompletedAt() *TaskRecoveryUpdateOne {
	_u.mutation.ClearRecoveryCompletedAt()
	return _u
}

// SetRecoveryError sets the "recovery_error" field.
func (_u *TaskRecoveryUpdateOne) SetRecoveryError(v string) *TaskRecoveryUpdateOne {
	_u.mutation.SetRecoveryError(v)
	return _u
}

// SetNillableRecoveryError sets the "recovery_error" field if the given value is not nil.
func (_u *TaskRecoveryUpdateOne) SetNillableRecoveryError(v *string) *TaskRecoveryUpdateOne {
	if v != nil {
		_u.SetRecoveryError(*v)
	}
	return _u
}

// ClearRecoveryError clears the value of the "recovery_error" field.
func (_u *TaskRecoveryUpdateOne) ClearRecoveryError() *TaskRecoveryUpdateOne {
	_u.mutation.ClearRecoveryError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskRecoveryUpdateOne) SetUpdatedAt(v time.Time) *TaskRecoveryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskRecoveryMutation object of the builder.
func (_u *TaskRecoveryUpdateOne) Mutation() *TaskRecoveryMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskRecoveryUpdate builder.
func (_u *TaskRecoveryUpdateOne) Where(ps ...predicate.TaskRecovery) *TaskRecoveryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskRecoveryUpdateOne) Select(field string, fields ...string) *TaskRecoveryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskRecovery entity.
func (_u *TaskRecoveryUpdateOne) Save(ctx context.Context) (*TaskRecovery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskRecoveryUpdateOne) SaveX(ctx context.Context) *TaskRecovery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskRecoveryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskRecoveryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskRecoveryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := taskrecovery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskRecoveryUpdateOne) check() error {
	if v, ok := _u.mutation.RecoveryStrategy(); ok {
		if err := taskrecovery.RecoveryStrategyValidator(v); err != nil {
			return &ValidationError{Name: "recovery_strategy", err: fmt.Errorf(`ent: validator failed for field "TaskRecovery.recovery_strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecoveryStatus(); ok {
		if err := taskrecovery.RecoveryStatusValidator(v); err != nil {
			return &ValidationError{Name: "recovery_status", err: fmt.Errorf(`ent: validator failed for field "TaskRecovery.recovery_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskRecoveryUpdateOne) sqlSave(ctx context.Context) (_node *TaskRecovery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskrecovery.Table, taskrecovery.Columns, sqlgraph.NewFieldSpec(taskrecovery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskRecovery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskrecovery.FieldID)
		for _, f := range fields {
			if !taskrecovery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskrecovery.FieldID {
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
	if value, ok := _u.mutation.OriginalTaskID(); ok {
		_spec.SetField(taskrecovery.FieldOriginalTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecoveryStrategy(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecoveryStatus(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecoveryAttempt(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempt(); ok {
		_spec.AddField(taskrecovery.FieldRecoveryAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRecoveryAttempts(); ok {
		_spec.SetField(taskrecovery.FieldMaxRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRecoveryAttempts(); ok {
		_spec.AddField(taskrecovery.FieldMaxRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CheckpointData(); ok {
		_spec.SetField(taskrecovery.FieldCheckpointData, field.TypeJSON, value)
	}
	if _u.mutation.CheckpointDataCleared() {
		_spec.ClearField(taskrecovery.FieldCheckpointData, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(taskrecovery.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(taskrecovery.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.RecoveryStartedAt(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryStartedAt, field.TypeTime, value)
	}
	if _u.mutation.RecoveryStartedAtCleared() {
		_spec.ClearField(taskrecovery.FieldRecoveryStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RecoveryCompletedAt(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.RecoveryCompletedAtCleared() {
		_spec.ClearField(taskrecovery.FieldRecoveryCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RecoveryError(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryError, field.TypeString, value)
	}
	if _u.mutation.RecoveryErrorCleared() {
		_spec.ClearField(taskrecovery.FieldRecoveryError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(taskrecovery.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TaskRecovery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskrecovery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
