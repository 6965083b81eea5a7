// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/redscout/redscout/ent/taskrecovery"
)

// TaskRecoveryCreate is the builder for creating a TaskRecovery entity.
type TaskRecoveryCreate struct {
	config
	mutation *TaskRecoveryMutation
	hooks    []Hook
}

// SetOriginalTaskID sets the "original_task_id" field.
func (_c *TaskRecoveryCreate) SetOriginalTaskID(v string) *TaskRecoveryCreate {
	_c.mutation.SetOriginalTaskID(v)
	return _c
}

// SetRecoveryStrategy sets the "recovery_strategy" field.
func (_c *TaskRecoveryCreate) SetRecoveryStrategy(v taskrecovery.RecoveryStrategy) *TaskRecoveryCreate {
	_c.mutation.SetRecoveryStrategy(v)
	return _c
}

// SetRecoveryStatus sets the "recovery_status" field.
func (_c *TaskRecoveryCreate) SetRecoveryStatus(v taskrecovery.RecoveryStatus) *TaskRecoveryCreate {
	_c.mutation.SetRecoveryStatus(v)
	return _c
}

// SetNillableRecoveryStatus sets the "recovery_status" field if the given value is not nil.
func (_c *TaskRecoveryCreate) SetNillableRecoveryStatus(v *taskrecovery.RecoveryStatus) *TaskRecoveryCreate {
	if v != nil {
		_c.SetRecoveryStatus(*v)
	}
	return _c
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (_c *TaskRecoveryCreate) SetRecoveryAttempt(v int) *TaskRecoveryCreate {
	_c.mutation.SetRecoveryAttempt(v)
	return _c
}

// SetNillableRecoveryAttempt sets the "recovery_attempt" field if the given value is not nil.
func (_c *TaskRecoveryCreate) SetNillableRecoveryAttempt(v *int) *TaskRecoveryCreate {
	if v != nil {
		_c.SetRecoveryAttempt(*v)
	}
	return _c
}

// SetMaxRecoveryAttempts sets the "max_recovery_attempts" field.
func (_c *TaskRecoveryCreate) SetMaxRecoveryAttempts(v int) *TaskRecoveryCreate {
	_c.mutation.SetMaxRecoveryAttempts(v)
	return _c
}

// SetNillableMaxRecoveryAttempts sets the "max_recovery_attempts" field if the given value is not nil.
func (_c *TaskRecoveryCreate) SetNillableMaxRecoveryAttempts(v *int) *TaskRecoveryCreate {
	if v != nil {
		_c.SetMaxRecoveryAttempts(*v)
	}
	return _c
}

// SetCheckpointData sets the "checkpoint_data" field.
func (_c *TaskRecoveryCreate) SetCheckpointData(v map[string]interface{}) *TaskRecoveryCreate {
	_c.mutation.SetCheckpointData(v)
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *TaskRecoveryCreate) SetFailureReason(v string) *TaskRecoveryCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *TaskRecoveryCreate) SetNillableFailureReason(v *string) *TaskRecoveryCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetRecoveryStartedAt sets the "recovery_started_at" field.
func (_c *TaskRecoveryCreate) SetRecoveryStartedAt(v time.Time) *TaskRecoveryCreate {
	_c.mutation.SetRecoveryStartedAt(v)
	return _c
}

// SetNillableRecoveryStartedAt sets the "recovery_started_at" field if the given value is not nil.
func (_c *TaskRecoveryCreate) SetNillableRecoveryStartedAt(v *time.Time) *TaskRecoveryCreate {
	if v != nil {
		_c.SetRecoveryStartedAt(*v)
	}
	return _c
}

// SetRecoveryCompletedAt sets the "recovery_completed_at" field.
func (_c *TaskRecoveryCreate) SetRecoveryCompletedAt(v time.Time) *TaskRecoveryCreate {
	_c.mutation.SetRecoveryCompletedAt(v)
	return _c
}

// SetNillableRecoveryCompletedAt sets the "recovery_completed_at" field if the given value is not nil.
func (_c *TaskRecoveryCreate) SetNillableRecoveryCompletedAt(v *time.Time) *TaskRecoveryCreate {
	if v != nil {
		_c.SetRecoveryCompletedAt(*v)
	}
	return _c
}

// SetRecoveryError sets the "recovery_error" field.
func (_c *TaskRecoveryCreate) SetRecoveryError(v string) *TaskRecoveryCreate {
	_c.mutation.SetRecoveryError(v)
	return _c
}

// SetNillableRecoveryError sets the "recovery_error" field if the given value is not nil.
func (_c *TaskRecoveryCreate) SetNillableRecoveryError(v *string) *TaskRecoveryCreate {
	if v != nil {
		_c.SetRecoveryError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskRecoveryCreate) SetCreatedAt(v time.Time) *TaskRecoveryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskRecoveryCreate) SetNillableCreatedAt(v *time.Time) *TaskRecoveryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskRecoveryCreate) SetUpdatedAt(v time.Time) *TaskRecoveryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskRecoveryCreate) SetNillableUpdatedAt(v *time.Time) *TaskRecoveryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskRecoveryCreate) SetID(v string) *TaskRecoveryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TaskRecoveryMutation object of the builder.
func (_c *TaskRecoveryCreate) Mutation() *TaskRecoveryMutation {
	return _c.mutation
}

// Save creates the TaskRecovery in the database.
func (_c *TaskRecoveryCreate) Save(ctx context.Context) (*TaskRecovery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskRecoveryCreate) SaveX(ctx context.Context) *TaskRecovery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskRecoveryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskRecoveryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskRecoveryCreate) defaults() {
	if _, ok := _c.mutation.RecoveryStatus(); !ok {
		v := taskrecovery.DefaultRecoveryStatus
		_c.mutation.SetRecoveryStatus(v)
	}
	if _, ok := _c.mutation.RecoveryAttempt(); !ok {
		v := taskrecovery.DefaultRecoveryAttempt
		_c.mutation.SetRecoveryAttempt(v)
	}
	if _, ok := _c.mutation.MaxRecoveryAttempts(); !ok {
		v := taskrecovery.DefaultMaxRecoveryAttempts
		_c.mutation.SetMaxRecoveryAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskrecovery.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := taskrecovery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskRecoveryCreate) check() error {
	if _, ok := _c.mutation.OriginalTaskID(); !ok {
		return &ValidationError{Name: "original_task_id", err: errors.New(`ent: missing required field "TaskRecovery.original_task_id"`)}
	}
	if _, ok := _c.mutation.RecoveryStrategy(); !ok {
		return &ValidationError{Name: "recovery_strategy", err: errors.New(`ent: missing required field "TaskRecovery.recovery_strategy"`)}
	}
	if v, ok := _c.mutation.RecoveryStrategy(); ok {
		if err := taskrecovery.RecoveryStrategyValidator(v); err != nil {
			return &ValidationError{Name: "recovery_strategy", err: fmt.Errorf(`ent: validator failed for field "TaskRecovery.recovery_strategy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecoveryStatus(); !ok {
		return &ValidationError{Name: "recovery_status", err: errors.New(`ent: missing required field "TaskRecovery.recovery_status"`)}
	}
	if v, ok := _c.mutation.RecoveryStatus(); ok {
		if err := taskrecovery.RecoveryStatusValidator(v); err != nil {
			return &ValidationError{Name: "recovery_status", err: fmt.Errorf(`ent: validator failed for field "TaskRecovery.recovery_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecoveryAttempt(); !ok {
		return &ValidationError{Name: "recovery_attempt", err: errors.New(`ent: missing required field "TaskRecovery.recovery_attempt"`)}
	}
	if _, ok := _c.mutation.MaxRecoveryAttempts(); !ok {
		return &ValidationError{Name: "max_recovery_attempts", err: errors.New(`ent: missing required field "TaskRecovery.max_recovery_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskRecovery.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TaskRecovery.updated_at"`)}
	}
	return nil
}

func (_c *TaskRecoveryCreate) sqlSave(ctx context.Context) (*TaskRecovery, error) {
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
			return nil, fmt.Errorf("unexpected TaskRecovery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskRecoveryCreate) createSpec() (*TaskRecovery, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskRecovery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskrecovery.Table, sqlgraph.NewFieldSpec(taskrecovery.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OriginalTaskID(); ok {
		_spec.SetField(taskrecovery.FieldOriginalTaskID, field.TypeString, value)
		_node.OriginalTaskID = value
	}
	if value, ok := _c.mutation.RecoveryStrategy(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryStrategy, field.TypeEnum, value)
		_node.RecoveryStrategy = value
	}
	if value, ok := _c.mutation.RecoveryStatus(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryStatus, field.TypeEnum, value)
		_node.RecoveryStatus = value
	}
	if value, ok := _c.mutation.RecoveryAttempt(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryAttempt, field.TypeInt, value)
		_node.RecoveryAttempt = value
	}
	if value, ok := _c.mutation.MaxRecoveryAttempts(); ok {
		_spec.SetField(taskrecovery.FieldMaxRecoveryAttempts, field.TypeInt, value)
		_node.MaxRecoveryAttempts = value
	}
	if value, ok := _c.mutation.CheckpointData(); ok {
		_spec.SetField(taskrecovery.FieldCheckpointData, field.TypeJSON, value)
		_node.CheckpointData = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(taskrecovery.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.RecoveryStartedAt(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryStartedAt, field.TypeTime, value)
		_node.RecoveryStartedAt = &value
	}
	if value, ok := _c.mutation.RecoveryCompletedAt(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryCompletedAt, field.TypeTime, value)
		_node.RecoveryCompletedAt = &value
	}
	if value, ok := _c.mutation.RecoveryError(); ok {
		_spec.SetField(taskrecovery.FieldRecoveryError, field.TypeString, value)
		_node.RecoveryError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskrecovery.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(taskrecovery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TaskRecoveryCreateBulk is the builder for creating many TaskRecovery entities in bulk.
type TaskRecoveryCreateBulk struct {
	config
	err      error
	builders []*TaskRecoveryCreate
}

// Save creates the TaskRecovery entities in the database.
func (_c *TaskRecoveryCreateBulk) Save(ctx context.Context) ([]*TaskRecovery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskRecovery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskRecoveryMutation)
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
func (_c *TaskRecoveryCreateBulk) SaveX(ctx context.Context) []*TaskRecovery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskRecoveryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskRecoveryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
