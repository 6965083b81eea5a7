// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/redscout/redscout/ent/alertbatch"
	"github.com/redscout/redscout/ent/alertdelivery"
	"github.com/redscout/redscout/ent/predicate"
)

// AlertBatchUpdate is the builder for updating AlertBatch entities.
type AlertBatchUpdate struct {
	config
	hooks    []Hook
	mutation *AlertBatchMutation
}

// Where appends a list predicates to the AlertBatchUpdate builder.
func (_u *AlertBatchUpdate) Where(ps ...predicate.AlertBatch) *AlertBatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *AlertBatchUpdate) SetTitle(v string) *AlertBatchUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AlertBatchUpdate) SetNillableTitle(v *string) *AlertBatchUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AlertBatchUpdate) SetSummary(v string) *AlertBatchUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AlertBatchUpdate) SetNillableSummary(v *string) *AlertBatchUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AlertBatchUpdate) ClearSummary() *AlertBatchUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetTotalItems sets the "total_items" field.
func (_u *AlertBatchUpdate) SetTotalItems(v int) *AlertBatchUpdate {
	_u.mutation.ResetTotalItems()
	_u.mutation.SetTotalItems(v)
	return _u
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_u *AlertBatchUpdate) SetNillableTotalItems(v *int) *AlertBatchUpdate {
	if v != nil {
		_u.SetTotalItems(*v)
	}
	return _u
}

// AddTotalItems adds value to the "total_items" field.
func (_u *AlertBatchUpdate) AddTotalItems(v int) *AlertBatchUpdate {
	_u.mutation.AddTotalItems(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AlertBatchUpdate) SetPriority(v int) *AlertBatchUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AlertBatchUpdate) SetNillablePriority(v *int) *AlertBatchUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *AlertBatchUpdate) AddPriority(v int) *AlertBatchUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetChannels sets the "channels" field.
func (_u *AlertBatchUpdate) SetChannels(v []string) *AlertBatchUpdate {
	_u.mutation.SetChannels(v)
	return _u
}

// AppendChannels appends value to the "channels" field.
func (_u *AlertBatchUpdate) AppendChannels(v []string) *AlertBatchUpdate {
	_u.mutation.AppendChannels(v)
	return _u
}

// ClearChannels clears the value of the "channels" field.
func (_u *AlertBatchUpdate) ClearChannels() *AlertBatchUpdate {
	_u.mutation.ClearChannels()
	return _u
}

// SetScheduleType sets the "schedule_type" field.
func (_u *AlertBatchUpdate) SetScheduleType(v alertbatch.ScheduleType) *AlertBatchUpdate {
	_u.mutation.SetScheduleType(v)
	return _u
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_u *AlertBatchUpdate) SetNillableScheduleType(v *alertbatch.ScheduleType) *AlertBatchUpdate {
	if v != nil {
		_u.SetScheduleType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertBatchUpdate) SetStatus(v alertbatch.Status) *AlertBatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertBatchUpdate) SetNillableStatus(v *alertbatch.Status) *AlertBatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *AlertBatchUpdate) SetSentAt(v time.Time) *AlertBatchUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *AlertBatchUpdate) SetNillableSentAt(v *time.Time) *AlertBatchUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *AlertBatchUpdate) ClearSentAt() *AlertBatchUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (_u *AlertBatchUpdate) SetDeliveryAttempts(v int) *AlertBatchUpdate {
	_u.mutation.ResetDeliveryAttempts()
	_u.mutation.SetDeliveryAttempts(v)
	return _u
}

// SetNillableDeliveryAttempts sets the "delivery_attempts" field if the given value is not nil.
func (_u *AlertBatchUpdate) SetNillableDeliveryAttempts(v *int) *AlertBatchUpdate {
	if v != nil {
		_u.SetDeliveryAttempts(*v)
	}
	return _u
}

// AddDeliveryAttempts adds value to the "delivery_attempts" field.
func (_u *AlertBatchUpdate) AddDeliveryAttempts(v int) *AlertBatchUpdate {
	_u.mutation.AddDeliveryAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *AlertBatchUpdate) SetLastError(v string) *AlertBatchUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *AlertBatchUpdate) SetNillableLastError(v *string) *AlertBatchUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *AlertBatchUpdate) ClearLastError() *AlertBatchUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AlertBatchUpdate) SetUpdatedAt(v time.Time) *AlertBatchUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDeliveryIDs adds the "deliveries" edge to the AlertDelivery entity by IDs.
func (_u *AlertBatchUpdate) AddDeliveryIDs(ids ...string) *AlertBatchUpdate {
	_u.mutation.AddDeliveryIDs(ids...)
	return _u
}

// AddDeliveries adds the "deliveries" edges to the AlertDelivery entity.
func (_u *AlertBatchUpdate) AddDeliveries(v ...*AlertDelivery) *AlertBatchUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryIDs(ids...)
}

// Mutation returns the AlertBatchMutation object of the builder.
func (_u *AlertBatchUpdate) Mutation() *AlertBatchMutation {
	return _u.mutation
}

// ClearDeliveries clears all "deliveries" edges to the AlertDelivery entity.
func (_u *AlertBatchUpdate) ClearDeliveries() *AlertBatchUpdate {
	_u.mutation.ClearDeliveries()
	return _u
}

// RemoveDeliveryIDs removes the "deliveries" edge to AlertDelivery entities by IDs.
func (_u *AlertBatchUpdate) RemoveDeliveryIDs(ids ...string) *AlertBatchUpdate {
	_u.mutation.RemoveDeliveryIDs(ids...)
	return _u
}

// RemoveDeliveries removes "deliveries" edges to AlertDelivery entities.
func (_u *AlertBatchUpdate) RemoveDeliveries(v ...*AlertDelivery) *AlertBatchUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertBatchUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertBatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertBatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertBatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AlertBatchUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := alertbatch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertBatchUpdate) check() error {
	if v, ok := _u.mutation.ScheduleType(); ok {
		if err := alertbatch.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "AlertBatch.schedule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := alertbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlertBatch.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertBatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alertbatch.Table, alertbatch.Columns, sqlgraph.NewFieldSpec(alertbatch.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(alertbatch.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(alertbatch.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(alertbatch.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.TotalItems(); ok {
		_spec.SetField(alertbatch.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalItems(); ok {
		_spec.AddField(alertbatch.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(alertbatch.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(alertbatch.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Channels(); ok {
		_spec.SetField(alertbatch.FieldChannels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChannels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, alertbatch.FieldChannels, value)
		})
	}
	if _u.mutation.ChannelsCleared() {
		_spec.ClearField(alertbatch.FieldChannels, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduleType(); ok {
		_spec.SetField(alertbatch.FieldScheduleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alertbatch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(alertbatch.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(alertbatch.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveryAttempts(); ok {
		_spec.SetField(alertbatch.FieldDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveryAttempts(); ok {
		_spec.AddField(alertbatch.FieldDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(alertbatch.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(alertbatch.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(alertbatch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveriesIDs(); len(nodes) > 0 && !_u.mutation.DeliveriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertBatchUpdateOne is the builder for updating a single AlertBatch entity.
type AlertBatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertBatchMutation
}

// SetTitle sets the "title" field.
func (_u *AlertBatchUpdateOne) SetTitle(v string) *AlertBatchUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AlertBatchUpdateOne) SetNillableTitle(v *string) *AlertBatchUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AlertBatchUpdateOne) SetSummary(v string) *AlertBatchUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AlertBatchUpdateOne) SetNillableSummary(v *string) *AlertBatchUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AlertBatchUpdateOne) ClearSummary() *AlertBatchUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetTotalItems sets the "total_items" field.
func (_u *AlertBatchUpdateOne) SetTotalItems(v int) *AlertBatchUpdateOne {
	_u.mutation.ResetTotalItems()
	_u.mutation.SetTotalItems(v)
	return _u
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_u *AlertBatchUpdateOne) SetNillableTotalItems(v *int) *AlertBatchUpdateOne {
	if v != nil {
		_u.SetTotalItems(*v)
	}
	return _u
}

// AddTotalItems adds value to the "total_items" field.
func (_u *AlertBatchUpdateOne) AddTotalItems(v int) *AlertBatchUpdateOne {
	_u.mutation.AddTotalItems(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AlertBatchUpdateOne) SetPriority(v int) *AlertBatchUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AlertBatchUpdateOne) SetNillablePriority(v *int) *AlertBatchUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *AlertBatchUpdateOne) AddPriority(v int) *AlertBatchUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetChannels sets the "channels" field.
func (_u *AlertBatchUpdateOne) SetChannels(v []string) *AlertBatchUpdateOne {
	_u.mutation.SetChannels(v)
	return _u
}

// AppendChannels appends value to the "channels" field.
func (_u *AlertBatchUpdateOne) AppendChannels(v []string) *AlertBatchUpdateOne {
	_u.mutation.AppendChannels(v)
	return _u
}

// ClearChannels clears the value of the "channels" field.
func (_u *AlertBatchUpdateOne) ClearChannels() *AlertBatchUpdateOne {
	_u.mutation.ClearChannels()
	return _u
}

// SetScheduleType sets the "schedule_type" field.
func (_u *AlertBatchUpdateOne) SetScheduleType(v alertbatch.ScheduleType) *AlertBatchUpdateOne {
	_u.mutation.SetScheduleType(v)
	return _u
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_u *AlertBatchUpdateOne) SetNillableScheduleType(v *alertbatch.ScheduleType) *AlertBatchUpdateOne {
	if v != nil {
		_u.SetScheduleType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertBatchUpdateOne) SetStatus(v alertbatch.Status) *AlertBatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertBatchUpdateOne) SetNillableStatus(v *alertbatch.Status) *AlertBatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *AlertBatchUpdateOne) SetSentAt(v time.Time) *AlertBatchUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *AlertBatchUpdateOne) SetNillableSentAt(v *time.Time) *AlertBatchUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *AlertBatchUpdateOne) ClearSentAt() *AlertBatchUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (_u *AlertBatchUpdateOne) SetDeliveryAttempts(v int) *AlertBatchUpdateOne {
	_u.mutation.ResetDeliveryAttempts()
	_u.mutation.SetDeliveryAttempts(v)
	return _u
}

// SetNillableDeliveryAttempts sets the "delivery_attempts" field if the given value is not nil.
func (_u *AlertBatchUpdateOne) SetNillableDeliveryAttempts(v *int) *AlertBatchUpdateOne {
	if v != nil {
		_u.SetDeliveryAttempts(*v)
	}
	return _u
}

// AddDeliveryAttempts adds value to the "delivery_attempts" field.
func (_u *AlertBatchUpdateOne) AddDeliveryAttempts(v int) *AlertBatchUpdateOne {
	_u.mutation.AddDeliveryAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *AlertBatchUpdateOne) SetLastError(v string) *AlertBatchUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *AlertBatchUpdateOne) SetNillableLastError(v *string) *AlertBatchUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *AlertBatchUpdateOne) ClearLastError() *AlertBatchUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AlertBatchUpdateOne) SetUpdatedAt(v time.Time) *AlertBatchUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDeliveryIDs adds the "deliveries" edge to the AlertDelivery entity by IDs.
func (_u *AlertBatchUpdateOne) AddDeliveryIDs(ids ...string) *AlertBatchUpdateOne {
	_u.mutation.AddDeliveryIDs(ids...)
	return _u
}

// AddDeliveries adds the "deliveries" edges to the AlertDelivery entity.
func (_u *AlertBatchUpdateOne) AddDeliveries(v ...*AlertDelivery) *AlertBatchUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryIDs(ids...)
}

// Mutation returns the AlertBatchMutation object of the builder.
func (_u *AlertBatchUpdateOne) Mutation() *AlertBatchMutation {
	return _u.mutation
}

// ClearDeliveries clears all "deliveries" edges to the AlertDelivery entity.
func (_u *AlertBatchUpdateOne) ClearDeliveries() *AlertBatchUpdateOne {
	_u.mutation.ClearDeliveries()
	return _u
}

// RemoveDeliveryIDs removes the "deliveries" edge to AlertDelivery entities by IDs.
func (_u *AlertBatchUpdateOne) RemoveDeliveryIDs(ids ...string) *AlertBatchUpdateOne {
	_u.mutation.RemoveDeliveryIDs(ids...)
	return _u
}

// RemoveDeliveries removes "deliveries" edges to AlertDelivery entities.
func (_u *AlertBatchUpdateOne) RemoveDeliveries(v ...*AlertDelivery) *AlertBatchUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryIDs(ids...)
}

// Where appends a list predicates to the AlertBatchUpdate builder.
func (_u *AlertBatchUpdateOne) Where(ps ...predicate.AlertBatch) *AlertBatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertBatchUpdateOne) Select(field string, fields ...string) *AlertBatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AlertBatch entity.
func (_u *AlertBatchUpdateOne) Save(ctx context.Context) (*AlertBatch, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertBatchUpdateOne) SaveX(ctx context.Context) *AlertBatch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertBatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertBatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AlertBatchUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := alertbatch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertBatchUpdateOne) check() error {
	if v, ok := _u.mutation.ScheduleType(); ok {
		if err := alertbatch.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "AlertBatch.schedule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := alertbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlertBatch.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertBatchUpdateOne) sqlSave(ctx context.Context) (_node *AlertBatch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alertbatch.Table, alertbatch.Columns, sqlgraph.NewFieldSpec(alertbatch.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AlertBatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alertbatch.FieldID)
		for _, f := range fields {
			if !alertbatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alertbatch.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(alertbatch.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(alertbatch.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(alertbatch.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.TotalItems(); ok {
		_spec.SetField(alertbatch.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalItems(); ok {
		_spec.AddField(alertbatch.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(alertbatch.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(alertbatch.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Channels(); ok {
		_spec.SetField(alertbatch.FieldChannels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChannels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, alertbatch.FieldChannels, value)
		})
	}
	if _u.mutation.ChannelsCleared() {
		_spec.ClearField(alertbatch.FieldChannels, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduleType(); ok {
		_spec.SetField(alertbatch.FieldScheduleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alertbatch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(alertbatch.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(alertbatch.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveryAttempts(); ok {
		_spec.SetField(alertbatch.FieldDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveryAttempts(); ok {
		_spec.AddField(alertbatch.FieldDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(alertbatch.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(alertbatch.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(alertbatch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveriesIDs(); len(nodes) > 0 && !_u.mutation.DeliveriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AlertBatch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
