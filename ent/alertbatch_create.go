// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/redscout/redscout/ent/alertbatch"
	"github.com/redscout/redscout/ent/alertdelivery"
)

// AlertBatchCreate is the builder for creating a AlertBatch entity.
type AlertBatchCreate struct {
	config
	mutation *AlertBatchMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *AlertBatchCreate) SetTitle(v string) *AlertBatchCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *AlertBatchCreate) SetSummary(v string) *AlertBatchCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *AlertBatchCreate) SetNillableSummary(v *string) *AlertBatchCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetTotalItems sets the "total_items" field.
func (_c *AlertBatchCreate) SetTotalItems(v int) *AlertBatchCreate {
	_c.mutation.SetTotalItems(v)
	return _c
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_c *AlertBatchCreate) SetNillableTotalItems(v *int) *AlertBatchCreate {
	if v != nil {
		_c.SetTotalItems(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *AlertBatchCreate) SetPriority(v int) *AlertBatchCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *AlertBatchCreate) SetNillablePriority(v *int) *AlertBatchCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetChannels sets the "channels" field.
func (_c *AlertBatchCreate) SetChannels(v []string) *AlertBatchCreate {
	_c.mutation.SetChannels(v)
	return _c
}

// SetScheduleType sets the "schedule_type" field.
func (_c *AlertBatchCreate) SetScheduleType(v alertbatch.ScheduleType) *AlertBatchCreate {
	_c.mutation.SetScheduleType(v)
	return _c
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_c *AlertBatchCreate) SetNillableScheduleType(v *alertbatch.ScheduleType) *AlertBatchCreate {
	if v != nil {
		_c.SetScheduleType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AlertBatchCreate) SetStatus(v alertbatch.Status) *AlertBatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AlertBatchCreate) SetNillableStatus(v *alertbatch.Status) *AlertBatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *AlertBatchCreate) SetSentAt(v time.Time) *AlertBatchCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *AlertBatchCreate) SetNillableSentAt(v *time.Time) *AlertBatchCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (_c *AlertBatchCreate) SetDeliveryAttempts(v int) *AlertBatchCreate {
	_c.mutation.SetDeliveryAttempts(v)
	return _c
}

// SetNillableDeliveryAttempts sets the "delivery_attempts" field if the given value is not nil.
func (_c *AlertBatchCreate) SetNillableDeliveryAttempts(v *int) *AlertBatchCreate {
	if v != nil {
		_c.SetDeliveryAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *AlertBatchCreate) SetLastError(v string) *AlertBatchCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *AlertBatchCreate) SetNillableLastError(v *string) *AlertBatchCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlertBatchCreate) SetCreatedAt(v time.Time) *AlertBatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlertBatchCreate) SetNillableCreatedAt(v *time.Time) *AlertBatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AlertBatchCreate) SetUpdatedAt(v time.Time) *AlertBatchCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AlertBatchCreate) SetNillableUpdatedAt(v *time.Time) *AlertBatchCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlertBatchCreate) SetID(v string) *AlertBatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddDeliveryIDs adds the "deliveries" edge to the AlertDelivery entity by IDs.
func (_c *AlertBatchCreate) AddDeliveryIDs(ids ...string) *AlertBatchCreate {
	_c.mutation.AddDeliveryIDs(ids...)
	return _c
}

// AddDeliveries adds the "deliveries" edges to the AlertDelivery entity.
func (_c *AlertBatchCreate) AddDeliveries(v ...*AlertDelivery) *AlertBatchCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeliveryIDs(ids...)
}

// Mutation returns the AlertBatchMutation object of the builder.
func (_c *AlertBatchCreate) Mutation() *AlertBatchMutation {
	return _c.mutation
}

// Save creates the AlertBatch in the database.
func (_c *AlertBatchCreate) Save(ctx context.Context) (*AlertBatch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertBatchCreate) SaveX(ctx context.Context) *AlertBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertBatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertBatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertBatchCreate) defaults() {
	if _, ok := _c.mutation.TotalItems(); !ok {
		v := alertbatch.DefaultTotalItems
		_c.mutation.SetTotalItems(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := alertbatch.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.ScheduleType(); !ok {
		v := alertbatch.DefaultScheduleType
		_c.mutation.SetScheduleType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := alertbatch.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DeliveryAttempts(); !ok {
		v := alertbatch.DefaultDeliveryAttempts
		_c.mutation.SetDeliveryAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := alertbatch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := alertbatch.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertBatchCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "AlertBatch.title"`)}
	}
	if _, ok := _c.mutation.TotalItems(); !ok {
		return &ValidationError{Name: "total_items", err: errors.New(`ent: missing required field "AlertBatch.total_items"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "AlertBatch.priority"`)}
	}
	if _, ok := _c.mutation.ScheduleType(); !ok {
		return &ValidationError{Name: "schedule_type", err: errors.New(`ent: missing required field "AlertBatch.schedule_type"`)}
	}
	if v, ok := _c.mutation.ScheduleType(); ok {
		if err := alertbatch.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "AlertBatch.schedule_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AlertBatch.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := alertbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlertBatch.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeliveryAttempts(); !ok {
		return &ValidationError{Name: "delivery_attempts", err: errors.New(`ent: missing required field "AlertBatch.delivery_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AlertBatch.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AlertBatch.updated_at"`)}
	}
	return nil
}

func (_c *AlertBatchCreate) sqlSave(ctx context.Context) (*AlertBatch, error) {
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
			return nil, fmt.Errorf("unexpected AlertBatch.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlertBatchCreate) createSpec() (*AlertBatch, *sqlgraph.CreateSpec) {
	var (
		_node = &AlertBatch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alertbatch.Table, sqlgraph.NewFieldSpec(alertbatch.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(alertbatch.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(alertbatch.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.TotalItems(); ok {
		_spec.SetField(alertbatch.FieldTotalItems, field.TypeInt, value)
		_node.TotalItems = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(alertbatch.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Channels(); ok {
		_spec.SetField(alertbatch.FieldChannels, field.TypeJSON, value)
		_node.Channels = value
	}
	if value, ok := _c.mutation.ScheduleType(); ok {
		_spec.SetField(alertbatch.FieldScheduleType, field.TypeEnum, value)
		_node.ScheduleType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(alertbatch.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(alertbatch.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.DeliveryAttempts(); ok {
		_spec.SetField(alertbatch.FieldDeliveryAttempts, field.TypeInt, value)
		_node.DeliveryAttempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(alertbatch.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(alertbatch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(alertbatch.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DeliveriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertbatch.DeliveriesTable,
			Columns: []string{alertbatch.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AlertBatchCreateBulk is the builder for creating many AlertBatch entities in bulk.
type AlertBatchCreateBulk struct {
	config
	err      error
	builders []*AlertBatchCreate
}

// Save creates the AlertBatch entities in the database.
func (_c *AlertBatchCreateBulk) Save(ctx context.Context) ([]*AlertBatch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AlertBatch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertBatchMutation)
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
func (_c *AlertBatchCreateBulk) SaveX(ctx context.Context) []*AlertBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertBatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertBatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
