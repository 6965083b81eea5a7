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

// AlertDeliveryCreate is the builder for creating a AlertDelivery entity.
type AlertDeliveryCreate struct {
	config
	mutation *AlertDeliveryMutation
	hooks    []Hook
}

// SetAlertBatchID sets the "alert_batch_id" field.
func (_c *AlertDeliveryCreate) SetAlertBatchID(v string) *AlertDeliveryCreate {
	_c.mutation.SetAlertBatchID(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *AlertDeliveryCreate) SetChannel(v string) *AlertDeliveryCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AlertDeliveryCreate) SetStatus(v alertdelivery.Status) *AlertDeliveryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AlertDeliveryCreate) SetNillableStatus(v *alertdelivery.Status) *AlertDeliveryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRecipient sets the "recipient" field.
func (_c *AlertDeliveryCreate) SetRecipient(v string) *AlertDeliveryCreate {
	_c.mutation.SetRecipient(v)
	return _c
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_c *AlertDeliveryCreate) SetNillableRecipient(v *string) *AlertDeliveryCreate {
	if v != nil {
		_c.SetRecipient(*v)
	}
	return _c
}

// SetWebhookURL sets the "webhook_url" field.
func (_c *AlertDeliveryCreate) SetWebhookURL(v string) *AlertDeliveryCreate {
	_c.mutation.SetWebhookURL(v)
	return _c
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_c *AlertDeliveryCreate) SetNillableWebhookURL(v *string) *AlertDeliveryCreate {
	if v != nil {
		_c.SetWebhookURL(*v)
	}
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *AlertDeliveryCreate) SetMessageID(v string) *AlertDeliveryCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_c *AlertDeliveryCreate) SetNillableMessageID(v *string) *AlertDeliveryCreate {
	if v != nil {
		_c.SetMessageID(*v)
	}
	return _c
}

// SetDedupHash sets the "dedup_hash" field.
func (_c *AlertDeliveryCreate) SetDedupHash(v string) *AlertDeliveryCreate {
	_c.mutation.SetDedupHash(v)
	return _c
}

// SetNillableDedupHash sets the "dedup_hash" field if the given value is not nil.
func (_c *AlertDeliveryCreate) SetNillableDedupHash(v *string) *AlertDeliveryCreate {
	if v != nil {
		_c.SetDedupHash(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *AlertDeliveryCreate) SetSentAt(v time.Time) *AlertDeliveryCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *AlertDeliveryCreate) SetNillableSentAt(v *time.Time) *AlertDeliveryCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetDeliveryTimeMs sets the "delivery_time_ms" field.
func (_c *AlertDeliveryCreate) SetDeliveryTimeMs(v int) *AlertDeliveryCreate {
	_c.mutation.SetDeliveryTimeMs(v)
	return _c
}

// SetNillableDeliveryTimeMs sets the "delivery_time_ms" field if the given value is not nil.
func (_c *AlertDeliveryCreate) SetNillableDeliveryTimeMs(v *int) *AlertDeliveryCreate {
	if v != nil {
		_c.SetDeliveryTimeMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AlertDeliveryCreate) SetErrorMessage(v string) *AlertDeliveryCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AlertDeliveryCreate) SetNillableErrorMessage(v *string) *AlertDeliveryCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *AlertDeliveryCreate) SetRetryCount(v int) *AlertDeliveryCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *AlertDeliveryCreate) SetNillableRetryCount(v *int) *AlertDeliveryCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlertDeliveryCreate) SetCreatedAt(v time.Time) *AlertDeliveryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlertDeliveryCreate) SetNillableCreatedAt(v *time.Time) *AlertDeliveryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlertDeliveryCreate) SetID(v string) *AlertDeliveryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetBatchID sets the "batch" edge to the AlertBatch entity by ID.
func (_c *AlertDeliveryCreate) SetBatchID(id string) *AlertDeliveryCreate {
	_c.mutation.SetBatchID(id)
	return _c
}

// SetBatch sets the "batch" edge to the AlertBatch entity.
func (_c *AlertDeliveryCreate) SetBatch(v *AlertBatch) *AlertDeliveryCreate {
	return _c.SetBatchID(v.ID)
}

// Mutation returns the AlertDeliveryMutation object of the builder.
func (_c *AlertDeliveryCreate) Mutation() *AlertDeliveryMutation {
	return _c.mutation
}

// Save creates the AlertDelivery in the database.
func (_c *AlertDeliveryCreate) Save(ctx context.Context) (*AlertDelivery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertDeliveryCreate) SaveX(ctx context.Context) *AlertDelivery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertDeliveryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertDeliveryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertDeliveryCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := alertdelivery.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Recipient(); !ok {
		v := alertdelivery.DefaultRecipient
		_c.mutation.SetRecipient(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := alertdelivery.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := alertdelivery.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertDeliveryCreate) check() error {
	if _, ok := _c.mutation.AlertBatchID(); !ok {
		return &ValidationError{Name: "alert_batch_id", err: errors.New(`ent: missing required field "AlertDelivery.alert_batch_id"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "AlertDelivery.channel"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AlertDelivery.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := alertdelivery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlertDelivery.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "AlertDelivery.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AlertDelivery.created_at"`)}
	}
	if len(_c.mutation.BatchIDs()) == 0 {
		return &ValidationError{Name: "batch", err: errors.New(`ent: missing required edge "AlertDelivery.batch"`)}
	}
	return nil
}

func (_c *AlertDeliveryCreate) sqlSave(ctx context.Context) (*AlertDelivery, error) {
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
			return nil, fmt.Errorf("unexpected AlertDelivery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlertDeliveryCreate) createSpec() (*AlertDelivery, *sqlgraph.CreateSpec) {
	var (
		_node = &AlertDelivery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alertdelivery.Table, sqlgraph.NewFieldSpec(alertdelivery.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(alertdelivery.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(alertdelivery.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Recipient(); ok {
		_spec.SetField(alertdelivery.FieldRecipient, field.TypeString, value)
		_node.Recipient = value
	}
	if value, ok := _c.mutation.WebhookURL(); ok {
		_spec.SetField(alertdelivery.FieldWebhookURL, field.TypeString, value)
		_node.WebhookURL = &value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(alertdelivery.FieldMessageID, field.TypeString, value)
		_node.MessageID = &value
	}
	if value, ok := _c.mutation.DedupHash(); ok {
		_spec.SetField(alertdelivery.FieldDedupHash, field.TypeString, value)
		_node.DedupHash = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(alertdelivery.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.DeliveryTimeMs(); ok {
		_spec.SetField(alertdelivery.FieldDeliveryTimeMs, field.TypeInt, value)
		_node.DeliveryTimeMs = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(alertdelivery.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(alertdelivery.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(alertdelivery.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alertdelivery.BatchTable,
			Columns: []string{alertdelivery.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertbatch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AlertBatchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AlertDeliveryCreateBulk is the builder for creating many AlertDelivery entities in bulk.
type AlertDeliveryCreateBulk struct {
	config
	err      error
	builders []*AlertDeliveryCreate
}

// Save creates the AlertDelivery entities in the database.
func (_c *AlertDeliveryCreateBulk) Save(ctx context.Context) ([]*AlertDelivery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AlertDelivery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertDeliveryMutation)
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
func (_c *AlertDeliveryCreateBulk) SaveX(ctx context.Context) []*AlertDelivery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertDeliveryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertDeliveryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
