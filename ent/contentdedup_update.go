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
	"github.com/redscout/redscout/ent/contentdedup"
	"github.com/redscout/redscout/ent/predicate"
)

// ContentDedupUpdate is the builder for updating ContentDedup entities.
type ContentDedupUpdate struct {
	config
	hooks    []Hook
	mutation *ContentDedupMutation
}

// Where appends a list predicates to the ContentDedupUpdate builder.
func (_u *ContentDedupUpdate) Where(ps ...predicate.ContentDedup) *ContentDedupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ContentDedupUpdate) SetContentHash(v string) *ContentDedupUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ContentDedupUpdate) SetNillableContentHash(v *string) *ContentDedupUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *ContentDedupUpdate) SetContentType(v contentdedup.ContentType) *ContentDedupUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *ContentDedupUpdate) SetNillableContentType(v *contentdedup.ContentType) *ContentDedupUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *ContentDedupUpdate) SetExternalID(v string) *ContentDedupUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *ContentDedupUpdate) SetNillableExternalID(v *string) *ContentDedupUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *ContentDedupUpdate) SetProcessingStatus(v contentdedup.ProcessingStatus) *ContentDedupUpdate {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *ContentDedupUpdate) SetNillableProcessingStatus(v *contentdedup.ProcessingStatus) *ContentDedupUpdate {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ContentDedupUpdate) SetProcessedAt(v time.Time) *ContentDedupUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ContentDedupUpdate) SetNillableProcessedAt(v *time.Time) *ContentDedupUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ContentDedupUpdate) ClearProcessedAt() *ContentDedupUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetSourceAgent sets the "source_agent" field.
func (_u *ContentDedupUpdate) SetSourceAgent(v string) *ContentDedupUpdate {
	_u.mutation.SetSourceAgent(v)
	return _u
}

// SetNillableSourceAgent sets the "source_agent" field if the given value is not nil.
func (_u *ContentDedupUpdate) SetNillableSourceAgent(v *string) *ContentDedupUpdate {
	if v != nil {
		_u.SetSourceAgent(*v)
	}
	return _u
}

// ClearSourceAgent clears the value of the "source_agent" field.
func (_u *ContentDedupUpdate) ClearSourceAgent() *ContentDedupUpdate {
	_u.mutation.ClearSourceAgent()
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *ContentDedupUpdate) SetWorkflowID(v string) *ContentDedupUpdate {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *ContentDedupUpdate) SetNillableWorkflowID(v *string) *ContentDedupUpdate {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (_u *ContentDedupUpdate) ClearWorkflowID() *ContentDedupUpdate {
	_u.mutation.ClearWorkflowID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ContentDedupUpdate) SetMetadata(v map[string]interface{}) *ContentDedupUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ContentDedupUpdate) ClearMetadata() *ContentDedupUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ContentDedupMutation object of the builder.
func (_u *ContentDedupUpdate) Mutation() *ContentDedupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentDedupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentDedupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentDedupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentDedupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentDedupUpdate) check() error {
	if v, ok := _u.mutation.ContentType(); ok {
		if err := contentdedup.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "ContentDedup.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := contentdedup.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "ContentDedup.processing_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentDedupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentdedup.Table, contentdedup.Columns, sqlgraph.NewFieldSpec(contentdedup.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(contentdedup.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(contentdedup.FieldContentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(contentdedup.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(contentdedup.FieldProcessingStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(contentdedup.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(contentdedup.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceAgent(); ok {
		_spec.SetField(contentdedup.FieldSourceAgent, field.TypeString, value)
	}
	if _u.mutation.SourceAgentCleared() {
		_spec.ClearField(contentdedup.FieldSourceAgent, field.TypeString)
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(contentdedup.FieldWorkflowID, field.TypeString, value)
	}
	if _u.mutation.WorkflowIDCleared() {
		_spec.ClearField(contentdedup.FieldWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(contentdedup.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(contentdedup.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentdedup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentDedupUpdateOne is the builder for updating a single ContentDedup entity.
type ContentDedupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentDedupMutation
}

// SetContentHash sets the "content_hash" field.
func (_u *ContentDedupUpdateOne) SetContentHash(v string) *ContentDedupUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ContentDedupUpdateOne) SetNillableContentHash(v *string) *ContentDedupUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *ContentDedupUpdateOne) SetContentType(v contentdedup.ContentType) *ContentDedupUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *ContentDedupUpdateOne) SetNillableContentType(v *contentdedup.ContentType) *ContentDedupUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *ContentDedupUpdateOne) SetExternalID(v string) *ContentDedupUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *ContentDedupUpdateOne) SetNillableExternalID(v *string) *ContentDedupUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *ContentDedupUpdateOne) SetProcessingStatus(v contentdedup.ProcessingStatus) *ContentDedupUpdateOne {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *ContentDedupUpdateOne) SetNillableProcessingStatus(v *contentdedup.ProcessingStatus) *ContentDedupUpdateOne {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ContentDedupUpdateOne) SetProcessedAt(v time.Time) *ContentDedupUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ContentDedupUpdateOne) SetNillableProcessedAt(v *time.Time) *ContentDedupUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ContentDedupUpdateOne) ClearProcessedAt() *ContentDedupUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetSourceAgent sets the "source_agent" field.
func (_u *ContentDedupUpdateOne) SetSourceAgent(v string) *ContentDedupUpdateOne {
	_u.mutation.SetSourceAgent(v)
	return _u
}

// SetNillableSourceAgent sets the "source_agent" field if the given value is not nil.
func (_u *ContentDedupUpdateOne) SetNillableSourceAgent(v *string) *ContentDedupUpdateOne {
	if v != nil {
		_u.SetSourceAgent(*v)
	}
	return _u
}

// ClearSourceAgent clears the value of the "source_agent" field.
func (_u *ContentDedupUpdateOne) ClearSourceAgent() *ContentDedupUpdateOne {
	_u.mutation.ClearSourceAgent()
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *ContentDedupUpdateOne) SetWorkflowID(v string) *ContentDedupUpdateOne {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *ContentDedupUpdateOne) SetNillableWorkflowID(v *string) *ContentDedupUpdateOne {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (_u *ContentDedupUpdateOne) ClearWorkflowID() *ContentDedupUpdateOne {
	_u.mutation.ClearWorkflowID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ContentDedupUpdateOne) SetMetadata(v map[string]interface{}) *ContentDedupUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ContentDedupUpdateOne) ClearMetadata() *ContentDedupUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ContentDedupMutation object of the builder.
func (_u *ContentDedupUpdateOne) Mutation() *ContentDedupMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContentDedupUpdate builder.
func (_u *ContentDedupUpdateOne) Where(ps ...predicate.ContentDedup) *ContentDedupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentDedupUpdateOne) Select(field string, fields ...string) *ContentDedupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentDedup entity.
func (_u *ContentDedupUpdateOne) Save(ctx context.Context) (*ContentDedup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentDedupUpdateOne) SaveX(ctx context.Context) *ContentDedup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentDedupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentDedupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentDedupUpdateOne) check() error {
	if v, ok := _u.mutation.ContentType(); ok {
		if err := contentdedup.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "ContentDedup.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := contentdedup.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "ContentDedup.processing_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentDedupUpdateOne) sqlSave(ctx context.Context) (_node *ContentDedup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentdedup.Table, contentdedup.Columns, sqlgraph.NewFieldSpec(contentdedup.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentDedup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentdedup.FieldID)
		for _, f := range fields {
			if !contentdedup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentdedup.FieldID {
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
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(contentdedup.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(contentdedup.FieldContentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(contentdedup.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(contentdedup.FieldProcessingStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(contentdedup.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(contentdedup.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceAgent(); ok {
		_spec.SetField(contentdedup.FieldSourceAgent, field.TypeString, value)
	}
	if _u.mutation.SourceAgentCleared() {
		_spec.ClearField(contentdedup.FieldSourceAgent, field.TypeString)
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(contentdedup.FieldWorkflowID, field.TypeString, value)
	}
	if _u.mutation.WorkflowIDCleared() {
		_spec.ClearField(contentdedup.FieldWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(contentdedup.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(contentdedup.FieldMetadata, field.TypeJSON)
	}
	_node = &ContentDedup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentdedup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
