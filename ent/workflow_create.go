// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/redscout/redscout/ent/workflow"
)

// WorkflowCreate is the builder for creating a Workflow entity.
type WorkflowCreate struct {
	config
	mutation *WorkflowMutation
	hooks    []Hook
}

// SetWorkflowType sets the "workflow_type" field.
func (_c *WorkflowCreate) SetWorkflowType(v string) *WorkflowCreate {
	_c.mutation.SetWorkflowType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowCreate) SetStatus(v workflow.Status) *WorkflowCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableStatus(v *workflow.Status) *WorkflowCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *WorkflowCreate) SetConfig(v map[string]interface{}) *WorkflowCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetSchedule sets the "schedule" field.
func (_c *WorkflowCreate) SetSchedule(v string) *WorkflowCreate {
	_c.mutation.SetSchedule(v)
	return _c
}

// SetNillableSchedule sets the "schedule" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableSchedule(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetSchedule(*v)
	}
	return _c
}

// SetLastRun sets the "last_run" field.
func (_c *WorkflowCreate) SetLastRun(v time.Time) *WorkflowCreate {
	_c.mutation.SetLastRun(v)
	return _c
}

// SetNillableLastRun sets the "last_run" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableLastRun(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetLastRun(*v)
	}
	return _c
}

// SetNextRun sets the "next_run" field.
func (_c *WorkflowCreate) SetNextRun(v time.Time) *WorkflowCreate {
	_c.mutation.SetNextRun(v)
	return _c
}

// SetNillableNextRun sets the "next_run" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableNextRun(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetNextRun(*v)
	}
	return _c
}

// SetRunCount sets the "run_count" field.
func (_c *WorkflowCreate) SetRunCount(v int) *WorkflowCreate {
	_c.mutation.SetRunCount(v)
	return _c
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableRunCount(v *int) *WorkflowCreate {
	if v != nil {
		_c.SetRunCount(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *WorkflowCreate) SetErrorCount(v int) *WorkflowCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableErrorCount(v *int) *WorkflowCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetPostsProcessed sets the "posts_processed" field.
func (_c *WorkflowCreate) SetPostsProcessed(v int) *WorkflowCreate {
	_c.mutation.SetPostsProcessed(v)
	return _c
}

// SetNillablePostsProcessed sets the "posts_processed" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillablePostsProcessed(v *int) *WorkflowCreate {
	if v != nil {
		_c.SetPostsProcessed(*v)
	}
	return _c
}

// SetCommentsProcessed sets the "comments_processed" field.
func (_c *WorkflowCreate) SetCommentsProcessed(v int) *WorkflowCreate {
	_c.mutation.SetCommentsProcessed(v)
	return _c
}

// SetNillableCommentsProcessed sets the "comments_processed" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCommentsProcessed(v *int) *WorkflowCreate {
	if v != nil {
		_c.SetCommentsProcessed(*v)
	}
	return _c
}

// SetRelevantItems sets the "relevant_items" field.
func (_c *WorkflowCreate) SetRelevantItems(v int) *WorkflowCreate {
	_c.mutation.SetRelevantItems(v)
	return _c
}

// SetNillableRelevantItems sets the "relevant_items" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableRelevantItems(v *int) *WorkflowCreate {
	if v != nil {
		_c.SetRelevantItems(*v)
	}
	return _c
}

// SetSummariesCreated sets the "summaries_created" field.
func (_c *WorkflowCreate) SetSummariesCreated(v int) *WorkflowCreate {
	_c.mutation.SetSummariesCreated(v)
	return _c
}

// SetNillableSummariesCreated sets the "summaries_created" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableSummariesCreated(v *int) *WorkflowCreate {
	if v != nil {
		_c.SetSummariesCreated(*v)
	}
	return _c
}

// SetAlertsSent sets the "alerts_sent" field.
func (_c *WorkflowCreate) SetAlertsSent(v int) *WorkflowCreate {
	_c.mutation.SetAlertsSent(v)
	return _c
}

// SetNillableAlertsSent sets the "alerts_sent" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableAlertsSent(v *int) *WorkflowCreate {
	if v != nil {
		_c.SetAlertsSent(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkflowCreate) SetErrorMessage(v string) *WorkflowCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableErrorMessage(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *WorkflowCreate) SetStartedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableStartedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *WorkflowCreate) SetCompletedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCompletedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowCreate) SetCreatedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCreatedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowCreate) SetUpdatedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowCreate) SetID(v string) *WorkflowCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WorkflowMutation object of the builder.
func (_c *WorkflowCreate) Mutation() *WorkflowMutation {
	return _c.mutation
}

// Save creates the Workflow in the database.
func (_c *WorkflowCreate) Save(ctx context.Context) (*Workflow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowCreate) SaveX(ctx context.Context) *Workflow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workflow.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RunCount(); !ok {
		v := workflow.DefaultRunCount
		_c.mutation.SetRunCount(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := workflow.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.PostsProcessed(); !ok {
		v := workflow.DefaultPostsProcessed
		_c.mutation.SetPostsProcessed(v)
	}
	if _, ok := _c.mutation.CommentsProcessed(); !ok {
		v := workflow.DefaultCommentsProcessed
		_c.mutation.SetCommentsProcessed(v)
	}
	if _, ok := _c.mutation.RelevantItems(); !ok {
		v := workflow.DefaultRelevantItems
		_c.mutation.SetRelevantItems(v)
	}
	if _, ok := _c.mutation.SummariesCreated(); !ok {
		v := workflow.DefaultSummariesCreated
		_c.mutation.SetSummariesCreated(v)
	}
	if _, ok := _c.mutation.AlertsSent(); !ok {
		v := workflow.DefaultAlertsSent
		_c.mutation.SetAlertsSent(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := workflow.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflow.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflow.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowCreate) check() error {
	if _, ok := _c.mutation.WorkflowType(); !ok {
		return &ValidationError{Name: "workflow_type", err: errors.New(`ent: missing required field "Workflow.workflow_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Workflow.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RunCount(); !ok {
		return &ValidationError{Name: "run_count", err: errors.New(`ent: missing required field "Workflow.run_count"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "Workflow.error_count"`)}
	}
	if _, ok := _c.mutation.PostsProcessed(); !ok {
		return &ValidationError{Name: "posts_processed", err: errors.New(`ent: missing required field "Workflow.posts_processed"`)}
	}
	if _, ok := _c.mutation.CommentsProcessed(); !ok {
		return &ValidationError{Name: "comments_processed", err: errors.New(`ent: missing required field "Workflow.comments_processed"`)}
	}
	if _, ok := _c.mutation.RelevantItems(); !ok {
		return &ValidationError{Name: "relevant_items", err: errors.New(`ent: missing required field "Workflow.relevant_items"`)}
	}
	if _, ok := _c.mutation.SummariesCreated(); !ok {
		return &ValidationError{Name: "summaries_created", err: errors.New(`ent: missing required field "Workflow.summaries_created"`)}
	}
	if _, ok := _c.mutation.AlertsSent(); !ok {
		return &ValidationError{Name: "alerts_sent", err: errors.New(`ent: missing required field "Workflow.alerts_sent"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Workflow.started_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Workflow.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Workflow.updated_at"`)}
	}
	return nil
}

func (_c *WorkflowCreate) sqlSave(ctx context.Context) (*Workflow, error) {
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
			return nil, fmt.Errorf("unexpected Workflow.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowCreate) createSpec() (*Workflow, *sqlgraph.CreateSpec) {
	var (
		_node = &Workflow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflow.Table, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkflowType(); ok {
		_spec.SetField(workflow.FieldWorkflowType, field.TypeString, value)
		_node.WorkflowType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(workflow.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Schedule(); ok {
		_spec.SetField(workflow.FieldSchedule, field.TypeString, value)
		_node.Schedule = &value
	}
	if value, ok := _c.mutation.LastRun(); ok {
		_spec.SetField(workflow.FieldLastRun, field.TypeTime, value)
		_node.LastRun = &value
	}
	if value, ok := _c.mutation.NextRun(); ok {
		_spec.SetField(workflow.FieldNextRun, field.TypeTime, value)
		_node.NextRun = &value
	}
	if value, ok := _c.mutation.RunCount(); ok {
		_spec.SetField(workflow.FieldRunCount, field.TypeInt, value)
		_node.RunCount = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(workflow.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.PostsProcessed(); ok {
		_spec.SetField(workflow.FieldPostsProcessed, field.TypeInt, value)
		_node.PostsProcessed = value
	}
	if value, ok := _c.mutation.CommentsProcessed(); ok {
		_spec.SetField(workflow.FieldCommentsProcessed, field.TypeInt, value)
		_node.CommentsProcessed = value
	}
	if value, ok := _c.mutation.RelevantItems(); ok {
		_spec.SetField(workflow.FieldRelevantItems, field.TypeInt, value)
		_node.RelevantItems = value
	}
	if value, ok := _c.mutation.SummariesCreated(); ok {
		_spec.SetField(workflow.FieldSummariesCreated, field.TypeInt, value)
		_node.SummariesCreated = value
	}
	if value, ok := _c.mutation.AlertsSent(); ok {
		_spec.SetField(workflow.FieldAlertsSent, field.TypeInt, value)
		_node.AlertsSent = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workflow.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(workflow.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflow.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WorkflowCreateBulk is the builder for creating many Workflow entities in bulk.
type WorkflowCreateBulk struct {
	config
	err      error
	builders []*WorkflowCreate
}

// Save creates the Workflow entities in the database.
func (_c *WorkflowCreateBulk) Save(ctx context.Context) ([]*Workflow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Workflow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowMutation)
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
func (_c *WorkflowCreateBulk) SaveX(ctx context.Context) []*Workflow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
