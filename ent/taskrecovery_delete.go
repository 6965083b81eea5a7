// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/redscout/redscout/ent/predicate"
	"github.com/redscout/redscout/ent/taskrecovery"
)

// TaskRecoveryDelete is the builder for deleting a TaskRecovery entity.
type TaskRecoveryDelete struct {
	config
	hooks    []Hook
	mutation *TaskRecoveryMutation
}

// Where appends a list predicates to the TaskRecoveryDelete builder.
func (_d *TaskRecoveryDelete) Where(ps ...predicate.TaskRecovery) *TaskRecoveryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TaskRecoveryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TaskRecoveryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TaskRecoveryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(taskrecovery.Table, sqlgraph.NewFieldSpec(taskrecovery.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// TaskRecoveryDeleteOne is the builder for deleting a single TaskRecovery entity.
type TaskRecoveryDeleteOne struct {
	_d *TaskRecoveryDelete
}

// Where appends a list predicates to the TaskRecoveryDelete builder.
func (_d *TaskRecoveryDeleteOne) Where(ps ...predicate.TaskRecovery) *TaskRecoveryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TaskRecoveryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{taskrecovery.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TaskRecoveryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
