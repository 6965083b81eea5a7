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
	"github.com/redscout/redscout/ent/workflow"
)

// WorkflowUpdate is the builder for updating Workflow entities.
type WorkflowUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowMutation
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdate) Where(ps ...predicate.Workflow) *WorkflowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkflowType sets the "workflow_type" field.
func (_u *WorkflowUpdate) SetWorkflowType(v string) *WorkflowUpdate {
	_u.mutation.SetWorkflowType(v)
	return _u
}

// SetNillableWorkflowType sets the "workflow_type" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableWorkflowType(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetWorkflowType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowUpdate) SetStatus(v workflow.Status) *WorkflowUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableStatus(v *workflow.Status) *WorkflowUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *WorkflowUpdate) SetConfig(v map[string]interface{}) *WorkflowUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *WorkflowUpdate) ClearConfig() *WorkflowUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *WorkflowUpdate) SetSchedule(v string) *WorkflowUpdate {
	_u.mutation.SetSchedule(v)
	return _u
}

// SetNillableSchedule sets the "schedule" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableSchedule(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetSchedule(*v)
	}
	return _u
}

// ClearSchedule clears the value of the "schedule" field.
func (_u *WorkflowUpdate) ClearSchedule() *WorkflowUpdate {
	_u.mutation.ClearSchedule()
	return _u
}

// SetLastRun sets the "last_run" field.
func (_u *WorkflowUpdate) SetLastRun(v time.Time) *WorkflowUpdate {
	_u.mutation.SetLastRun(v)
	return _u
}

// SetNillableLastRun sets the "last_run" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableLastRun(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetLastRun(*v)
	}
	return _u
}

// ClearLastRun clears the value of the "last_run" field.
func (_u *WorkflowUpdate) ClearLastRun() *WorkflowUpdate {
	_u.mutation.ClearLastRun()
	return _u
}

// SetNextRun sets the "next_run" field.
func (_u *WorkflowUpdate) SetNextRun(v time.Time) *WorkflowUpdate {
	_u.mutation.SetNextRun(v)
	return _u
}

// SetNillableNextRun sets the "next_run" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableNextRun(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetNextRun(*v)
	}
	return _u
}

// ClearNextRun clears the value of the "next_run" field.
func (_u *WorkflowUpdate) ClearNextRun() *WorkflowUpdate {
	_u.mutation.ClearNextRun()
	return _u
}

// SetRunCount sets the "run_count" field.
func (_u *WorkflowUpdate) SetRunCount(v int) *WorkflowUpdate {
	_u.mutation.ResetRunCount()
	_u.mutation.SetRunCount(v)
	return _u
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableRunCount(v *int) *WorkflowUpdate {
	if v != nil {
		_u.SetRunCount(*v)
	}
	return _u
}

// AddRunCount adds value to the "run_count" field.
func (_u *WorkflowUpdate) AddRunCount(v int) *WorkflowUpdate {
	_u.mutation.AddRunCount(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *WorkflowUpdate) SetErrorCount(v int) *WorkflowUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableErrorCount(v *int) *WorkflowUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *WorkflowUpdate) AddErrorCount(v int) *WorkflowUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetPostsProcessed sets the "posts_processed" field.
func (_u *WorkflowUpdate) SetPostsProcessed(v int) *WorkflowUpdate {
	_u.mutation.ResetPostsProcessed()
	_u.mutation.SetPostsProcessed(v)
	return _u
}

// SetNillablePostsProcessed sets the "posts_processed" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillablePostsProcessed(v *int) *WorkflowUpdate {
	if v != nil {
		_u.SetPostsProcessed(*v)
	}
	return _u
}

// AddPostsProcessed adds value to the "posts_processed" field.
func (_u *WorkflowUpdate) AddPostsProcessed(v int) *WorkflowUpdate {
	_u.mutation.AddPostsProcessed(v)
	return _u
}

// SetCommentsProcessed sets the "comments_processed" field.
func (_u *WorkflowUpdate) SetCommentsProcessed(v int) *WorkflowUpdate {
	_u.mutation.ResetCommentsProcessed()
	_u.mutation.SetCommentsProcessed(v)
	return _u
}

// SetNillableCommentsProcessed sets the "comments_processed" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableCommentsProcessed(v *int) *WorkflowUpdate {
	if v != nil {
		_u.SetCommentsProcessed(*v)
	}
	return _u
}

// AddCommentsProcessed adds value to the "comments_processed" field.
func (_u *WorkflowUpdate) AddCommentsProcessed(v int) *WorkflowUpdate {
	_u.mutation.AddCommentsProcessed(v)
	return _u
}

// SetRelevantItems sets the "relevant_items" field.
func (_u *WorkflowUpdate) SetRelevantItems(v int) *WorkflowUpdate {
	_u.mutation.ResetRelevantItems()
	_u.mutation.SetRelevantItems(v)
	return _u
}

// SetNillableRelevantItems sets the "relevant_items" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableRelevantItems(v *int) *WorkflowUpdate {
	if v != nil {
		_u.SetRelevantItems(*v)
	}
	return _u
}

// AddRelevantItems adds value to the "relevant_items" field.
func (_u *WorkflowUpdate) AddRelevantItems(v int) *WorkflowUpdate {
	_u.mutation.AddRelevantItems(v)
	return _u
}

// SetSummariesCreated sets the "summaries_created" field.
func (_u *WorkflowUpdate) SetSummariesCreated(v int) *WorkflowUpdate {
	_u.mutation.ResetSummariesCreated()
	_u.mutation.SetSummariesCreated(v)
	return _u
}

// SetNillableSummariesCreated sets the "summaries_created" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableSummariesCreated(v *int) *WorkflowUpdate {
	if v != nil {
		_u.SetSummariesCreated(*v)
	}
	return _u
}

// AddSummariesCreated adds value to the "summaries_created" field.
func (_u *WorkflowUpdate) AddSummariesCreated(v int) *WorkflowUpdate {
	_u.mutation.AddSummariesCreated(v)
	return _u
}

// SetAlertsSent sets the "alerts_sent" field.
func (_u *WorkflowUpdate) SetAlertsSent(v int) *WorkflowUpdate {
	_u.mutation.ResetAlertsSent()
	_u.mutation.SetAlertsSent(v)
	return _u
}

// SetNillableAlertsSent sets the "alerts_sent" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableAlertsSent(v *int) *WorkflowUpdate {
	if v != nil {
		_u.SetAlertsSent(*v)
	}
	return _u
}

// AddAlertsSent adds value to the "alerts_sent" field.
func (_u *WorkflowUpdate) AddAlertsSent(v int) *WorkflowUpdate {
	_u.mutation.AddAlertsSent(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowUpdate) SetErrorMessage(v string) *WorkflowUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableErrorMessage(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowUpdate) ClearErrorMessage() *WorkflowUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowUpdate) SetStartedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableStartedAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowUpdate) SetCompletedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowUpdate) ClearCompletedAt() *WorkflowUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdate) SetUpdatedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdate) Mutation() *WorkflowMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkflowType(); ok {
		_spec.SetField(workflow.FieldWorkflowType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(workflow.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(workflow.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(workflow.FieldSchedule, field.TypeString, value)
	}
	if _u.mutation.ScheduleCleared() {
		_spec.ClearField(workflow.FieldSchedule, field.TypeString)
	}
	if value, ok := _u.mutation.LastRun(); ok {
		_spec.SetField(workflow.FieldLastRun, field.TypeTime, value)
	}
	if _u.mutation.LastRunCleared() {
		_spec.ClearField(workflow.FieldLastRun, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRun(); ok {
		_spec.SetField(workflow.FieldNextRun, field.TypeTime, value)
	}
	if _u.mutation.NextRunCleared() {
		_spec.ClearField(workflow.FieldNextRun, field.TypeTime)
	}
	if value, ok := _u.mutation.RunCount(); ok {
		_spec.SetField(workflow.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRunCount(); ok {
		_spec.AddField(workflow.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(workflow.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(workflow.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PostsProcessed(); ok {
		_spec.SetField(workflow.FieldPostsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPostsProcessed(); ok {
		_spec.AddField(workflow.FieldPostsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommentsProcessed(); ok {
		_spec.SetField(workflow.FieldCommentsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommentsProcessed(); ok {
		_spec.AddField(workflow.FieldCommentsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelevantItems(); ok {
		_spec.SetField(workflow.FieldRelevantItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRelevantItems(); ok {
		_spec.AddField(workflow.FieldRelevantItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SummariesCreated(); ok {
		_spec.SetField(workflow.FieldSummariesCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSummariesCreated(); ok {
		_spec.AddField(workflow.FieldSummariesCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AlertsSent(); ok {
		_spec.SetField(workflow.FieldAlertsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAlertsSent(); ok {
		_spec.AddField(workflow.FieldAlertsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflow.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflow.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflow.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflow.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowUpdateOne is the builder for updating a single Workflow entity.
type WorkflowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowMutation
}

// SetWorkflowType sets the "workflow_type" field.
func (_u *WorkflowUpdateOne) SetWorkflowType(v string) *WorkflowUpdateOne {
	_u.mutation.SetWorkflowType(v)
	return _u
}

// SetNillableWorkflowType sets the "workflow_type" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableWorkflowType(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetWorkflowType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowUpdateOne) SetStatus(v workflow.Status) *WorkflowUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableStatus(v *workflow.Status) *WorkflowUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *WorkflowUpdateOne) SetConfig(v map[string]interface{}) *WorkflowUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *WorkflowUpdateOne) ClearConfig() *WorkflowUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *WorkflowUpdateOne) SetSchedule(v string) *WorkflowUpdateOne {
	_u.mutation.SetSchedule(v)
	return _u
}

// SetNillableSchedule sets the "schedule" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableSchedule(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetSchedule(*v)
	}
	return _u
}

// ClearSchedule clears the value of the "schedule" field.
func (_u *WorkflowUpdateOne) ClearSchedule() *WorkflowUpdateOne {
	_u.mutation.ClearSchedule()
	return _u
}

// SetLastRun sets the "last_run" field.
func (_u *WorkflowUpdateOne) SetLastRun(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetLastRun(v)
	return _u
}

// SetNillableLastRun sets the "last_run" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableLastRun(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetLastRun(*v)
	}
	return _u
}

// ClearLastRun clears the value of the "last_run" field.
func (_u *WorkflowUpdateOne) ClearLastRun() *WorkflowUpdateOne {
	_u.mutation.ClearLastRun()
	return _u
}

// SetNextRun sets the "next_run" field.
func (_u *WorkflowUpdateOne) SetNextRun(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetNextRun(v)
	return _u
}

// SetNillableNextRun sets the "next_run" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableNextRun(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetNextRun(*v)
	}
	return _u
}

// ClearNextRun clears the value of the "next_run" field.
func (_u *WorkflowUpdateOne) ClearNextRun() *WorkflowUpdateOne {
	_u.mutation.ClearNextRun()
	return _u
}

// SetRunCount sets the "run_count" field.
func (_u *WorkflowUpdateOne) SetRunCount(v int) *WorkflowUpdateOne {
	_u.mutation.ResetRunCount()
	_u.mutation.SetRunCount(v)
	return _u
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableRunCount(v *int) *WorkflowUpdateOne {
	if v != nil {
		_u.SetRunCount(*v)
	}
	return _u
}

// AddRunCount adds value to the "run_count" field.
func (_u *WorkflowUpdateOne) AddRunCount(v int) *WorkflowUpdateOne {
	_u.mutation.AddRunCount(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *WorkflowUpdateOne) SetErrorCount(v int) *WorkflowUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableErrorCount(v *int) *WorkflowUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *WorkflowUpdateOne) AddErrorCount(v int) *WorkflowUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetPostsProcessed sets the "posts_processed" field.
func (_u *WorkflowUpdateOne) SetPostsProcessed(v int) *WorkflowUpdateOne {
	_u.mutation.ResetPostsProcessed()
	_u.mutation.SetPostsProcessed(v)
	return _u
}

// SetNillablePostsProcessed sets the "posts_processed" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillablePostsProcessed(v *int) *WorkflowUpdateOne {
	if v != nil {
		_u.SetPostsProcessed(*v)
	}
	return _u
}

// AddPostsProcessed adds value to the "posts_processed" field.
func (_u *WorkflowUpdateOne) AddPostsProcessed(v int) *WorkflowUpdateOne {
	_u.mutation.AddPostsProcessed(v)
	return _u
}

// SetCommentsProcessed sets the "comments_processed" field.
func (_u *WorkflowUpdateOne) SetCommentsProcessed(v int) *WorkflowUpdateOne {
	_u.mutation.ResetCommentsProcessed()
	_u.mutation.SetCommentsProcessed(v)
	return _u
}

// SetNillableCommentsProcessed sets the "comments_processed" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableCommentsProcessed(v *int) *WorkflowUpdateOne {
	if v != nil {
		_u.SetCommentsProcessed(*v)
	}
	return _u
}

// AddCommentsProcessed adds value to the "comments_processed" field.
func (_u *WorkflowUpdateOne) AddCommentsProcessed(v int) *WorkflowUpdateOne {
	_u.mutation.AddCommentsProcessed(v)
	return _u
}

// SetRelevantItems sets the "relevant_items" field.
func (_u *WorkflowUpdateOne) SetRelevantItems(v int) *WorkflowUpdateOne {
	_u.mutation.ResetRelevantItems()
	_u.mutation.SetRelevantItems(v)
	return _u
}

// SetNillableRelevantItems sets the "relevant_items" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableRelevantItems(v *int) *WorkflowUpdateOne {
	if v != nil {
		_u.SetRelevantItems(*v)
	}
	return _u
}

// AddRelevantItems adds value to the "relevant_items" field.
func (_u *WorkflowUpdateOne) AddRelevantItems(v int) *WorkflowUpdateOne {
	_u.mutation.AddRelevantItems(v)
	return _u
}

// SetSummariesCreated sets the "summaries_created" field.
func (_u *WorkflowUpdateOne) SetSummariesCreated(v int) *WorkflowUpdateOne {
	_u.mutation.ResetSummariesCreated()
	_u.mutation.SetSummariesCreated(v)
	return _u
}

// SetNillableSummariesCreated sets the "summaries_created" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableSummariesCreated(v *int) *WorkflowUpdateOne {
	if v != nil {
		_u.SetSummariesCreated(*v)
	}
	return _u
}

// AddSummariesCreated adds value to the "summaries_created" field.
func (_u *WorkflowUpdateOne) AddSummariesCreated(v int) *WorkflowUpdateOne {
	_u.mutation.AddSummariesCreated(v)
	return _u
}

// SetAlertsSent sets the "alerts_sent" field.
func (_u *WorkflowUpdateOne) SetAlertsSent(v int) *WorkflowUpdateOne {
	_u.mutation.ResetAlertsSent()
	_u.mutation.SetAlertsSent(v)
	return _u
}

// SetNillableAlertsSent sets the "alerts_sent" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableAlertsSent(v *int) *WorkflowUpdateOne {
	if v != nil {
		_u.SetAlertsSent(*v)
	}
	return _u
}

// AddAlertsSent adds value to the "alerts_sent" field.
func (_u *WorkflowUpdateOne) AddAlertsSent(v int) *WorkflowUpdateOne {
	_u.mutation.AddAlertsSent(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowUpdateOne) SetErrorMessage(v string) *WorkflowUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableErrorMessage(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowUpdateOne) ClearErrorMessage() *WorkflowUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowUpdateOne) SetStartedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowUpdateOne) SetCompletedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowUpdateOne) ClearCompletedAt() *WorkflowUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdateOne) SetUpdatedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdateOne) Mutation() *WorkflowMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdateOne) Where(ps ...predicate.Workflow) *WorkflowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowUpdateOne) Select(field string, fields ...string) *WorkflowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workflow entity.
func (_u *WorkflowUpdateOne) Save(ctx context.Context) (*Workflow, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdateOne) SaveX(ctx context.Context) *Workflow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowUpdateOne) sqlSave(ctx context.Context) (_node *Workflow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workflow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflow.FieldID)
		for _, f := range fields {
			if !workflow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflow.FieldID {
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
	if value, ok := _u.mutation.WorkflowType(); ok {
		_spec.SetField(workflow.FieldWorkflowType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(workflow.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(workflow.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(workflow.FieldSchedule, field.TypeString, value)
	}
	if _u.mutation.ScheduleCleared() {
		_spec.ClearField(workflow.FieldSchedule, field.TypeString)
	}
	if value, ok := _u.mutation.LastRun(); ok {
		_spec.SetField(workflow.FieldLastRun, field.TypeTime, value)
	}
	if _u.mutation.LastRunCleared() {
		_spec.ClearField(workflow.FieldLastRun, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRun(); ok {
		_spec.SetField(workflow.FieldNextRun, field.TypeTime, value)
	}
	if _u.mutation.NextRunCleared() {
		_spec.ClearField(workflow.FieldNextRun, field.TypeTime)
	}
	if value, ok := _u.mutation.RunCount(); ok {
		_spec.SetField(workflow.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRunCount(); ok {
		_spec.AddField(workflow.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(workflow.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(workflow.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PostsProcessed(); ok {
		_spec.SetField(workflow.FieldPostsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPostsProcessed(); ok {
		_spec.AddField(workflow.FieldPostsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommentsProcessed(); ok {
		_spec.SetField(workflow.FieldCommentsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommentsProcessed(); ok {
		_spec.AddField(workflow.FieldCommentsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelevantItems(); ok {
		_spec.SetField(workflow.FieldRelevantItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRelevantItems(); ok {
		_spec.AddField(workflow.FieldRelevantItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SummariesCreated(); ok {
		_spec.SetField(workflow.FieldSummariesCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSummariesCreated(); ok {
		_spec.AddField(workflow.FieldSummariesCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AlertsSent(); ok {
		_spec.SetField(workflow.FieldAlertsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAlertsSent(); ok {
		_spec.AddField(workflow.FieldAlertsSent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflow.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflow.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflow.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflow.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Workflow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
