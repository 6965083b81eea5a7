// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/redscout/redscout/ent/contentdedup"
)

// ContentDedupCreate is the builder for creating a ContentDedup entity.
type ContentDedupCreate struct {
	config
	mutation *ContentDedupMutation
	hooks    []Hook
}

// SetContentHash sets the "content_hash" field.
func (_c *ContentDedupCreate) SetContentHash(v string) *ContentDedupCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *ContentDedupCreate) SetContentType(v contentdedup.ContentType) *ContentDedupCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *ContentDedupCreate) SetExternalID(v string) *ContentDedupCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetProcessingStatus sets the "processing_status" field.
func (_c *ContentDedupCreate) SetProcessingStatus(v contentdedup.ProcessingStatus) *ContentDedupCreate {
	_c.mutation.SetProcessingStatus(v)
	return _c
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_c *ContentDedupCreate) SetNillableProcessingStatus(v *contentdedup.ProcessingStatus) *ContentDedupCreate {
	if v != nil {
		_c.SetProcessingStatus(*v)
	}
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *ContentDedupCreate) SetFirstSeenAt(v time.Time) *ContentDedupCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *ContentDedupCreate) SetNillableFirstSeenAt(v *time.Time) *ContentDedupCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ContentDedupCreate) SetProcessedAt(v time.Time) *ContentDedupCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ContentDedupCreate) SetNillableProcessedAt(v *time.Time) *ContentDedupCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetSourceAgent sets the "source_agent" field.
func (_c *ContentDedupCreate) SetSourceAgent(v string) *ContentDedupCreate {
	_c.mutation.SetSourceAgent(v)
	return _c
}

// SetNillableSourceAgent sets the "source_agent" field if the given value is not nil.
func (_c *ContentDedupCreate) SetNillableSourceAgent(v *string) *ContentDedupCreate {
	if v != nil {
		_c.SetSourceAgent(*v)
	}
	return _c
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *ContentDedupCreate) SetWorkflowID(v string) *ContentDedupCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_c *ContentDedupCreate) SetNillableWorkflowID(v *string) *ContentDedupCreate {
	if v != nil {
		_c.SetWorkflowID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ContentDedupCreate) SetMetadata(v map[string]interface{}) *ContentDedupCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ContentDedupCreate) SetID(v string) *ContentDedupCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ContentDedupMutation object of the builder.
func (_c *ContentDedupCreate) Mutation() *ContentDedupMutation {
	return _c.mutation
}

// Save creates the ContentDedup in the database.
func (_c *ContentDedupCreate) Save(ctx context.Context) (*ContentDedup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentDedupCreate) SaveX(ctx context.Context) *ContentDedup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentDedupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentDedupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentDedupCreate) defaults() {
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		v := contentdedup.DefaultProcessingStatus
		_c.mutation.SetProcessingStatus(v)
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := contentdedup.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.WorkflowID(); !ok {
		v := contentdedup.DefaultWorkflowID
		_c.mutation.SetWorkflowID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentDedupCreate) check() error {
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "ContentDedup.content_hash"`)}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "ContentDedup.content_type"`)}
	}
	if v, ok := _c.mutation.ContentType(); ok {
		if err := contentdedup.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "ContentDedup.content_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "ContentDedup.external_id"`)}
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "ContentDedup.processing_status"`)}
	}
	if v, ok := _c.mutation.ProcessingStatus(); ok {
		if err := contentdedup.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "ContentDedup.processing_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "ContentDedup.first_seen_at"`)}
	}
	return nil
}

func (_c *ContentDedupCreate) sqlSave(ctx context.Context) (*ContentDedup, error) {
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
			return nil, fmt.Errorf("unexpected ContentDedup.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContentDedupCreate) createSpec() (*ContentDedup, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentDedup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentdedup.Table, sqlgraph.NewFieldSpec(contentdedup.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(contentdedup.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(contentdedup.FieldContentType, field.TypeEnum, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(contentdedup.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.ProcessingStatus(); ok {
		_spec.SetField(contentdedup.FieldProcessingStatus, field.TypeEnum, value)
		_node.ProcessingStatus = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(contentdedup.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(contentdedup.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.SourceAgent(); ok {
		_spec.SetField(contentdedup.FieldSourceAgent, field.TypeString, value)
		_node.SourceAgent = &value
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(contentdedup.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(contentdedup.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// ContentDedupCreateBulk is the builder for creating many ContentDedup entities in bulk.
type ContentDedupCreateBulk struct {
	config
	err      error
	builders []*ContentDedupCreate
}

// Save creates the ContentDedup entities in the database.
func (_c *ContentDedupCreateBulk) Save(ctx context.Context) ([]*ContentDedup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentDedup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentDedupMutation)
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
func (_c *ContentDedupCreateBulk) SaveX(ctx context.Context) []*ContentDedup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentDedupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentDedupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
