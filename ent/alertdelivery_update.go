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
	"github.com/redscout/redscout/ent/alertdelivery"
	"github.com/redscout/redscout/ent/predicate"
)

// AlertDeliveryUpdate is the builder for updating AlertDelivery entities.
type AlertDeliveryUpdate struct {
	config
	hooks    []Hook
	mutation *AlertDeliveryMutation
}

// Where appends a list predicates to the AlertDeliveryUpdate builder.
func (_u *AlertDeliveryUpdate) Where(ps ...predicate.AlertDelivery) *AlertDeliveryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannel sets the "channel" field.
func (_u *AlertDeliveryUpdate) SetChannel(v string) *AlertDeliveryUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *AlertDeliveryUpdate) SetNillableChannel(v *string) *AlertDeliveryUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertDeliveryUpdate) SetStatus(v alertdelivery.Status) *AlertDeliveryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertDeliveryUpdate) SetNillableStatus(v *alertdelivery.Status) *AlertDeliveryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRecipient sets the "recipient" field.
func (_u *AlertDeliveryUpdate) SetRecipient(v string) *AlertDeliveryUpdate {
	_u.mutation.SetRecipient(v)
	return _u
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_u *AlertDeliveryUpdate) SetNillableRecipient(v *string) *AlertDeliveryUpdate {
	if v != nil {
		_u.SetRecipient(*v)
	}
	return _u
}

// ClearRecipient clears the value of the "recipient" field.
func (_u *AlertDeliveryUpdate) ClearRecipient() *AlertDeliveryUpdate {
	_u.mutation.ClearRecipient()
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *AlertDeliveryUpdate) SetWebhookURL(v string) *AlertDeliveryUpdate {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *AlertDeliveryUpdate) SetNillableWebhookURL(v *string) *AlertDeliveryUpdate {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *AlertDeliveryUpdate) ClearWebhookURL() *AlertDeliveryUpdate {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *AlertDeliveryUpdate) SetMessageID(v string) *AlertDeliveryUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *AlertDeliveryUpdate) SetNillableMessageID(v *string) *AlertDeliveryUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *AlertDeliveryUpdate) ClearMessageID() *AlertDeliveryUpdate {
	_u.mutation.ClearMessageID()
	return _u
}

// SetDedupHash sets the "dedup_hash" field.
func (_u *AlertDeliveryUpdate) SetDedupHash(v string) *AlertDeliveryUpdate {
	_u.mutation.SetDedupHash(v)
	return _u
}

// SetNillableDedupHash sets the "dedup_hash" field if the given value is not nil.
func (_u *AlertDeliveryUpdate) SetNillableDedupHash(v *string) *AlertDeliveryUpdate {
	if v != nil {
		_u.SetDedupHash(*v)
	}
	return _u
}

// ClearDedupHash clears the value of the "dedup_hash" field.
func (_u *AlertDeliveryUpdate) ClearDedupHash() *AlertDeliveryUpdate {
	_u.mutation.ClearDedupHash()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *AlertDeliveryUpdate) SetSentAt(v time.Time) *AlertDeliveryUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *AlertDeliveryUpdate) SetNillableSentAt(v *time.Time) *AlertDeliveryUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *AlertDeliveryUpdate) ClearSentAt() *AlertDeliveryUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetDeliveryTimeMs sets the "delivery_time_ms" field.
func (_u *AlertDeliveryUpdate) SetDeliveryTimeMs(v int) *AlertDeliveryUpdate {
	_u.mutation.ResetDeliveryTimeMs()
	_u.mutation.SetDeliveryTimeMs(v)
	return _u
}

// SetNillableDeliveryTimeMs sets the "delivery_time_ms" field if the given value is not nil.
func (_u *AlertDeliveryUpdate) SetNillableDeliveryTimeMs(v *int) *AlertDeliveryUpdate {
	if v != nil {
		_u.SetDeliveryTimeMs(*v)
	}
	return _u
}

// AddDeliveryTimeMs adds value to the "delivery_time_ms" field.
func (_u *AlertDeliveryUpdate) AddDeliveryTimeMs(v int) *AlertDeliveryUpdate {
	_u.mutation.AddDeliveryTimeMs(v)
	return _u
}

// ClearDeliveryTimeMs clears the value of the "delivery_time_ms" field.
func (_u *AlertDeliveryUpdate) ClearDeliveryTimeMs() *AlertDeliveryUpdate {
	_u.mutation.ClearDeliveryTimeMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AlertDeliveryUpdate) SetErrorMessage(v string) *AlertDeliveryUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AlertDeliveryUpdate) SetNillableErrorMessage(v *string) *AlertDeliveryUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AlertDeliveryUpdate) ClearErrorMessage() *AlertDeliveryUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *AlertDeliveryUpdate) SetRetryCount(v int) *AlertDeliveryUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *AlertDeliveryUpdate) SetNillableRetryCount(v *int) *AlertDeliveryUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *AlertDeliveryUpdate) AddRetryCount(v int) *AlertDeliveryUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// Mutation returns the AlertDeliveryMutation object of the builder.
func (_u *AlertDeliveryUpdate) Mutation() *AlertDeliveryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertDeliveryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertDeliveryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertDeliveryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertDeliveryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertDeliveryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := alertdelivery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlertDelivery.status": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AlertDelivery.batch"`)
	}
	return nil
}

func (_u *AlertDeliveryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alertdelivery.Table, alertdelivery.Columns, sqlgraph.NewFieldSpec(alertdelivery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(alertdelivery.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alertdelivery.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Recipient(); ok {
		_spec.SetField(alertdelivery.FieldRecipient, field.TypeString, value)
	}
	if _u.mutation.RecipientCleared() {
		_spec.ClearField(alertdelivery.FieldRecipient, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(alertdelivery.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(alertdelivery.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(alertdelivery.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(alertdelivery.FieldMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.DedupHash(); ok {
		_spec.SetField(alertdelivery.FieldDedupHash, field.TypeString, value)
	}
	if _u.mutation.DedupHashCleared() {
		_spec.ClearField(alertdelivery.FieldDedupHash, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(alertdelivery.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(alertdelivery.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveryTimeMs(); ok {
		_spec.SetField(alertdelivery.FieldDeliveryTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveryTimeMs(); ok {
		_spec.AddField(alertdelivery.FieldDeliveryTimeMs, field.TypeInt, value)
	}
	if _u.mutation.DeliveryTimeMsCleared() {
		_spec.ClearField(alertdelivery.FieldDeliveryTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(alertdelivery.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(alertdelivery.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(alertdelivery.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(alertdelivery.FieldRetryCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertDeliveryUpdateOne is the builder for updating a single AlertDelivery entity.
type AlertDeliveryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertDeliveryMutation
}

// SetChannel sets the "channel" field.
func (_u *AlertDeliveryUpdateOne) SetChannel(v string) *AlertDeliveryUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *AlertDeliveryUpdateOne) SetNillableChannel(v *string) *AlertDeliveryUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertDeliveryUpdateOne) SetStatus(v alertdelivery.Status) *AlertDeliveryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertDeliveryUpdateOne) SetNillableStatus(v *alertdelivery.Status) *AlertDeliveryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRecipient sets the "recipient" field.
func (_u *AlertDeliveryUpdateOne) SetRecipient(v string) *AlertDeliveryUpdateOne {
	_u.mutation.SetRecipient(v)
	return _u
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_u *AlertDeliveryUpdateOne) SetNillableRecipient(v *string) *AlertDeliveryUpdateOne {
	if v != nil {
		_u.SetRecipient(*v)
	}
	return _u
}

// ClearRecipient clears the value of the "recipient" field.
func (_u *AlertDeliveryUpdateOne) ClearRecipient() *AlertDeliveryUpdateOne {
	_u.mutation.ClearRecipient()
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *AlertDeliveryUpdateOne) SetWebhookURL(v string) *AlertDeliveryUpdateOne {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *AlertDeliveryUpdateOne) SetNillableWebhookURL(v *string) *AlertDeliveryUpdateOne {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *AlertDeliveryUpdateOne) ClearWebhookURL() *AlertDeliveryUpdateOne {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *AlertDeliveryUpdateOne) SetMessageID(v string) *AlertDeliveryUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *AlertDeliveryUpdateOne) SetNillableMessageID(v *string) *AlertDeliveryUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *AlertDeliveryUpdateOne) ClearMessageID() *AlertDeliveryUpdateOne {
	_u.mutation.ClearMessageID()
	return _u
}

// SetDedupHash sets the "dedup_hash" field.
func (_u *AlertDeliveryUpdateOne) SetDedupHash(v string) *AlertDeliveryUpdateOne {
	_u.mutation.SetDedupHash(v)
	return _u
}

// SetNillableDedupHash sets the "dedup_hash" field if the given value is not nil.
func (_u *AlertDeliveryUpdateOne) SetNillableDedupHash(v *string) *AlertDeliveryUpdateOne {
	if v != nil {
		_u.SetDedupHash(*v)
	}
	return _u
}

// ClearDedupHash clears the value of the "dedup_hash" field.
func (_u *AlertDeliveryUpdateOne) ClearDedupHash() *AlertDeliveryUpdateOne {
	_u.mutation.ClearDedupHash()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *AlertDeliveryUpdateOne) SetSentAt(v time.Time) *AlertDeliveryUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *AlertDeliveryUpdateOne) SetNillableSentAt(v *time.Time) *AlertDeliveryUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *AlertDeliveryUpdateOne) ClearSentAt() *AlertDeliveryUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetDeliveryTimeMs sets the "delivery_time_ms" field.
func (_u *AlertDeliveryUpdateOne) SetDeliveryTimeMs(v int) *AlertDeliveryUpdateOne {
	_u.mutation.ResetDeliveryTimeMs()
	_u.mutation.SetDeliveryTimeMs(v)
	return _u
}

// SetNillableDeliveryTimeMs sets the "delivery_time_ms" field if the given value is not nil.
func (_u *AlertDeliveryUpdateOne) SetNillableDeliveryTimeMs(v *int) *AlertDeliveryUpdateOne {
	if v != nil {
		_u.SetDeliveryTimeMs(*v)
	}
	return _u
}

// AddDeliveryTimeMs adds value to the "delivery_time_ms" field.
func (_u *AlertDeliveryUpdateOne) AddDeliveryTimeMs(v int) *AlertDeliveryUpdateOne {
	_u.mutation.AddDeliveryTimeMs(v)
	return _u
}

// ClearDeliveryTimeMs clears the value of the "delivery_time_ms" field.
func (_u *AlertDeliveryUpdateOne) ClearDeliveryTimeMs() *AlertDeliveryUpdateOne {
	_u.mutation.ClearDeliveryTimeMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AlertDeliveryUpdateOne) SetErrorMessage(v string) *AlertDeliveryUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AlertDeliveryUpdateOne) SetNillableErrorMessage(v *string) *AlertDeliveryUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AlertDeliveryUpdateOne) ClearErrorMessage() *AlertDeliveryUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *AlertDeliveryUpdateOne) SetRetryCount(v int) *AlertDeliveryUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *AlertDeliveryUpdateOne) SetNillableRetryCount(v *int) *AlertDeliveryUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *AlertDeliveryUpdateOne) AddRetryCount(v int) *AlertDeliveryUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// Mutation returns the AlertDeliveryMutation object of the builder.
func (_u *AlertDeliveryUpdateOne) Mutation() *AlertDeliveryMutation {
	return _u.mutation
}

// Where appends a list predicates to the AlertDeliveryUpdate builder.
func (_u *AlertDeliveryUpdateOne) Where(ps ...predicate.AlertDelivery) *AlertDeliveryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertDeliveryUpdateOne) Select(field string, fields ...string) *AlertDeliveryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AlertDelivery entity.
func (_u *AlertDeliveryUpdateOne) Save(ctx context.Context) (*AlertDelivery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertDeliveryUpdateOne) SaveX(ctx context.Context) *AlertDelivery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertDeliveryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertDeliveryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertDeliveryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := alertdelivery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlertDelivery.status": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AlertDelivery.batch"`)
	}
	return nil
}

func (_u *AlertDeliveryUpdateOne) sqlSave(ctx context.Context) (_node *AlertDelivery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alertdelivery.Table, alertdelivery.Columns, sqlgraph.NewFieldSpec(alertdelivery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AlertDelivery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alertdelivery.FieldID)
		for _, f := range fields {
			if !alertdelivery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alertdelivery.FieldID {
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
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(alertdelivery.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alertdelivery.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Recipient(); ok {
		_spec.SetField(alertdelivery.FieldRecipient, field.TypeString, value)
	}
	if _u.mutation.RecipientCleared() {
		_spec.ClearField(alertdelivery.FieldRecipient, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(alertdelivery.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(alertdelivery.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(alertdelivery.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(alertdelivery.FieldMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.DedupHash(); ok {
		_spec.SetField(alertdelivery.FieldDedupHash, field.TypeString, value)
	}
	if _u.mutation.DedupHashCleared() {
		_spec.ClearField(alertdelivery.FieldDedupHash, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(alertdelivery.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(alertdelivery.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveryTimeMs(); ok {
		_spec.SetField(alertdelivery.FieldDeliveryTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveryTimeMs(); ok {
		_spec.AddField(alertdelivery.FieldDeliveryTimeMs, field.TypeInt, value)
	}
	if _u.mutation.DeliveryTimeMsCleared() {
		_spec.ClearField(alertdelivery.FieldDeliveryTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(alertdelivery.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(alertdelivery.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(alertdelivery.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(alertdelivery.FieldRetryCount, field.TypeInt, value)
	}
	_node = &AlertDelivery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
