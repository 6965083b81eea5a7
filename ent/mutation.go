// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/redscout/redscout/ent/agentstate"
	"github.com/redscout/redscout/ent/alertbatch"
	"github.com/redscout/redscout/ent/alertdelivery"
	"github.com/redscout/redscout/ent/contentdedup"
	"github.com/redscout/redscout/ent/predicate"
	"github.com/redscout/redscout/ent/task"
	"github.com/redscout/redscout/ent/taskrecovery"
	"github.com/redscout/redscout/ent/workflow"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentState    = "AgentState"
	TypeAlertBatch    = "AlertBatch"
	TypeAlertDelivery = "AlertDelivery"
	TypeContentDedup  = "ContentDedup"
	TypeTask          = "Task"
	TypeTaskRecovery  = "TaskRecovery"
	TypeWorkflow      = "Workflow"
)

// AgentStateMutation represents an operation that mutates the AgentState nodes in the graph.
type AgentStateMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	agent_type               *string
	status                   *agentstate.Status
	state_data               *map[string]interface{}
	capabilities             *[]string
	appendcapabilities       []string
	current_task_id          *string
	heartbeat_at             *time.Time
	error_count              *int
	adderror_count           *int
	last_error               *string
	tasks_completed          *int
	addtasks_completed       *int
	tasks_failed             *int
	addtasks_failed          *int
	avg_execution_time_ms    *float64
	addavg_execution_time_ms *float64
	created_at               *time.Time
	last_updated             *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*AgentState, error)
	predicates               []predicate.AgentState
}

var _ ent.Mutation = (*AgentStateMutation)(nil)

// agentstateOption allows management of the mutation configuration using functional options.
type agentstateOption func(*AgentStateMutation)

// newAgentStateMutation creates new mutation for the AgentState entity.
func newAgentStateMutation(c config, op Op, opts ...agentstateOption) *AgentStateMutation {
	m := &AgentStateMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentStateID sets the ID field of the mutation.
func withAgentStateID(id string) agentstateOption {
	return func(m *AgentStateMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentState
		)
		m.oldValue = func(ctx context.Context) (*AgentState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentState sets the old AgentState of the mutation.
func withAgentState(node *AgentState) agentstateOption {
	return func(m *AgentStateMutation) {
		m.oldValue = func(context.Context) (*AgentState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentState entities.
func (m *AgentStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentType sets the "agent_type" field.
func (m *AgentStateMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *AgentStateMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *AgentStateMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetStatus sets the "status" field.
func (m *AgentStateMutation) SetStatus(a agentstate.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentStateMutation) Status() (r agentstate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldStatus(ctx context.Context) (v agentstate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentStateMutation) ResetStatus() {
	m.status = nil
}

// SetStateData sets the "state_data" field.
func (m *AgentStateMutation) SetStateData(value map[string]interface{}) {
	m.state_data = &value
}

// StateData returns the value of the "state_data" field in the mutation.
func (m *AgentStateMutation) StateData() (r map[string]interface{}, exists bool) {
	v := m.state_data
	if v == nil {
		return
	}
	return *v, true
}

// OldStateData returns the old "state_data" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldStateData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateData: %w", err)
	}
	return oldValue.StateData, nil
}

// ClearStateData clears the value of the "state_data" field.
func (m *AgentStateMutation) ClearStateData() {
	m.state_data = nil
	m.clearedFields[agentstate.FieldStateData] = struct{}{}
}

// StateDataCleared returns if the "state_data" field was cleared in this mutation.
func (m *AgentStateMutation) StateDataCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldStateData]
	return ok
}

// ResetStateData resets all changes to the "state_data" field.
func (m *AgentStateMutation) ResetStateData() {
	m.state_data = nil
	delete(m.clearedFields, agentstate.FieldStateData)
}

// SetCapabilities sets the "capabilities" field.
func (m *AgentStateMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *AgentStateMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *AgentStateMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *AgentStateMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *AgentStateMutation) ClearCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	m.clearedFields[agentstate.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *AgentStateMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *AgentStateMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	delete(m.clearedFields, agentstate.FieldCapabilities)
}

// SetCurrentTaskID sets the "current_task_id" field.
func (m *AgentStateMutation) SetCurrentTaskID(s string) {
	m.current_task_id = &s
}

// CurrentTaskID returns the value of the "current_task_id" field in the mutation.
func (m *AgentStateMutation) CurrentTaskID() (r string, exists bool) {
	v := m.current_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentTaskID returns the old "current_task_id" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldCurrentTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentTaskID: %w", err)
	}
	return oldValue.CurrentTaskID, nil
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (m *AgentStateMutation) ClearCurrentTaskID() {
	m.current_task_id = nil
	m.clearedFields[agentstate.FieldCurrentTaskID] = struct{}{}
}

// CurrentTaskIDCleared returns if the "current_task_id" field was cleared in this mutation.
func (m *AgentStateMutation) CurrentTaskIDCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldCurrentTaskID]
	return ok
}

// ResetCurrentTaskID resets all changes to the "current_task_id" field.
func (m *AgentStateMutation) ResetCurrentTaskID() {
	m.current_task_id = nil
	delete(m.clearedFields, agentstate.FieldCurrentTaskID)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *AgentStateMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *AgentStateMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldHeartbeatAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *AgentStateMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
}

// SetErrorCount sets the "error_count" field.
func (m *AgentStateMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *AgentStateMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *AgentStateMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *AgentStateMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *AgentStateMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetLastError sets the "last_error" field.
func (m *AgentStateMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *AgentStateMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *AgentStateMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[agentstate.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *AgentStateMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *AgentStateMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, agentstate.FieldLastError)
}

// SetTasksCompleted sets the "tasks_completed" field.
func (m *AgentStateMutation) SetTasksCompleted(i int) {
	m.tasks_completed = &i
	m.addtasks_completed = nil
}

// TasksCompleted returns the value of the "tasks_completed" field in the mutation.
func (m *AgentStateMutation) TasksCompleted() (r int, exists bool) {
	v := m.tasks_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksCompleted returns the old "tasks_completed" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldTasksCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksCompleted: %w", err)
	}
	return oldValue.TasksCompleted, nil
}

// AddTasksCompleted adds i to the "tasks_completed" field.
func (m *AgentStateMutation) AddTasksCompleted(i int) {
	if m.addtasks_completed != nil {
		*m.addtasks_completed += i
	} else {
		m.addtasks_completed = &i
	}
}

// AddedTasksCompleted returns the value that was added to the "tasks_completed" field in this mutation.
func (m *AgentStateMutation) AddedTasksCompleted() (r int, exists bool) {
	v := m.addtasks_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksCompleted resets all changes to the "tasks_completed" field.
func (m *AgentStateMutation) ResetTasksCompleted() {
	m.tasks_completed = nil
	m.addtasks_completed = nil
}

// SetTasksFailed sets the "tasks_failed" field.
func (m *AgentStateMutation) SetTasksFailed(i int) {
	m.tasks_failed = &i
	m.addtasks_failed = nil
}

// TasksFailed returns the value of the "tasks_failed" field in the mutation.
func (m *AgentStateMutation) TasksFailed() (r int, exists bool) {
	v := m.tasks_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksFailed returns the old "tasks_failed" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldTasksFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksFailed: %w", err)
	}
	return oldValue.TasksFailed, nil
}

// AddTasksFailed adds i to the "tasks_failed" field.
func (m *AgentStateMutation) AddTasksFailed(i int) {
	if m.addtasks_failed != nil {
		*m.addtasks_failed += i
	} else {
		m.addtasks_failed = &i
	}
}

// AddedTasksFailed returns the value that was added to the "tasks_failed" field in this mutation.
func (m *AgentStateMutation) AddedTasksFailed() (r int, exists bool) {
	v := m.addtasks_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksFailed resets all changes to the "tasks_failed" field.
func (m *AgentStateMutation) ResetTasksFailed() {
	m.tasks_failed = nil
	m.addtasks_failed = nil
}

// SetAvgExecutionTimeMs sets the "avg_execution_time_ms" field.
func (m *AgentStateMutation) SetAvgExecutionTimeMs(f float64) {
	m.avg_execution_time_ms = &f
	m.addavg_execution_time_ms = nil
}

// AvgExecutionTimeMs returns the value of the "avg_execution_time_ms" field in the mutation.
func (m *AgentStateMutation) AvgExecutionTimeMs() (r float64, exists bool) {
	v := m.avg_execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgExecutionTimeMs returns the old "avg_execution_time_ms" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldAvgExecutionTimeMs(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgExecutionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgExecutionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgExecutionTimeMs: %w", err)
	}
	return oldValue.AvgExecutionTimeMs, nil
}

// AddAvgExecutionTimeMs adds f to the "avg_execution_time_ms" field.
func (m *AgentStateMutation) AddAvgExecutionTimeMs(f float64) {
	if m.addavg_execution_time_ms != nil {
		*m.addavg_execution_time_ms += f
	} else {
		m.addavg_execution_time_ms = &f
	}
}

// AddedAvgExecutionTimeMs returns the value that was added to the "avg_execution_time_ms" field in this mutation.
func (m *AgentStateMutation) AddedAvgExecutionTimeMs() (r float64, exists bool) {
	v := m.addavg_execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearAvgExecutionTimeMs clears the value of the "avg_execution_time_ms" field.
func (m *AgentStateMutation) ClearAvgExecutionTimeMs() {
	m.avg_execution_time_ms = nil
	m.addavg_execution_time_ms = nil
	m.clearedFields[agentstate.FieldAvgExecutionTimeMs] = struct{}{}
}

// AvgExecutionTimeMsCleared returns if the "avg_execution_time_ms" field was cleared in this mutation.
func (m *AgentStateMutation) AvgExecutionTimeMsCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldAvgExecutionTimeMs]
	return ok
}

// ResetAvgExecutionTimeMs resets all changes to the "avg_execution_time_ms" field.
func (m *AgentStateMutation) ResetAvgExecutionTimeMs() {
	m.avg_execution_time_ms = nil
	m.addavg_execution_time_ms = nil
	delete(m.clearedFields, agentstate.FieldAvgExecutionTimeMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *AgentStateMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *AgentStateMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *AgentStateMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// Where appends a list predicates to the AgentStateMutation builder.
func (m *AgentStateMutation) Where(ps ...predicate.AgentState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentState).
func (m *AgentStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentStateMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.agent_type != nil {
		fields = append(fields, agentstate.FieldAgentType)
	}
	if m.status != nil {
		fields = append(fields, agentstate.FieldStatus)
	}
	if m.state_data != nil {
		fields = append(fields, agentstate.FieldStateData)
	}
	if m.capabilities != nil {
		fields = append(fields, agentstate.FieldCapabilities)
	}
	if m.current_task_id != nil {
		fields = append(fields, agentstate.FieldCurrentTaskID)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, agentstate.FieldHeartbeatAt)
	}
	if m.error_count != nil {
		fields = append(fields, agentstate.FieldErrorCount)
	}
	if m.last_error != nil {
		fields = append(fields, agentstate.FieldLastError)
	}
	if m.tasks_completed != nil {
		fields = append(fields, agentstate.FieldTasksCompleted)
	}
	if m.tasks_failed != nil {
		fields = append(fields, agentstate.FieldTasksFailed)
	}
	if m.avg_execution_time_ms != nil {
		fields = append(fields, agentstate.FieldAvgExecutionTimeMs)
	}
	if m.created_at != nil {
		fields = append(fields, agentstate.FieldCreatedAt)
	}
	if m.last_updated != nil {
		fields = append(fields, agentstate.FieldLastUpdated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentstate.FieldAgentType:
		return m.AgentType()
	case agentstate.FieldStatus:
		return m.Status()
	case agentstate.FieldStateData:
		return m.StateData()
	case agentstate.FieldCapabilities:
		return m.Capabilities()
	case agentstate.FieldCurrentTaskID:
		return m.CurrentTaskID()
	case agentstate.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case agentstate.FieldErrorCount:
		return m.ErrorCount()
	case agentstate.FieldLastError:
		return m.LastError()
	case agentstate.FieldTasksCompleted:
		return m.TasksCompleted()
	case agentstate.FieldTasksFailed:
		return m.TasksFailed()
	case agentstate.FieldAvgExecutionTimeMs:
		return m.AvgExecutionTimeMs()
	case agentstate.FieldCreatedAt:
		return m.CreatedAt()
	case agentstate.FieldLastUpdated:
		return m.LastUpdated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentstate.FieldAgentType:
		return m.OldAgentType(ctx)
	case agentstate.FieldStatus:
		return m.OldStatus(ctx)
	case agentstate.FieldStateData:
		return m.OldStateData(ctx)
	case agentstate.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case agentstate.FieldCurrentTaskID:
		return m.OldCurrentTaskID(ctx)
	case agentstate.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case agentstate.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case agentstate.FieldLastError:
		return m.OldLastError(ctx)
	case agentstate.FieldTasksCompleted:
		return m.OldTasksCompleted(ctx)
	case agentstate.FieldTasksFailed:
		return m.OldTasksFailed(ctx)
	case agentstate.FieldAvgExecutionTimeMs:
		return m.OldAvgExecutionTimeMs(ctx)
	case agentstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentstate.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	}
	return nil, fmt.Errorf("unknown AgentState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentstate.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case agentstate.FieldStatus:
		v, ok := value.(agentstate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentstate.FieldStateData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateData(v)
		return nil
	case agentstate.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case agentstate.FieldCurrentTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentTaskID(v)
		return nil
	case agentstate.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case agentstate.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case agentstate.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case agentstate.FieldTasksCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksCompleted(v)
		return nil
	case agentstate.FieldTasksFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksFailed(v)
		return nil
	case agentstate.FieldAvgExecutionTimeMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgExecutionTimeMs(v)
		return nil
	case agentstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentstate.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown AgentState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentStateMutation) AddedFields() []string {
	var fields []string
	if m.adderror_count != nil {
		fields = append(fields, agentstate.FieldErrorCount)
	}
	if m.addtasks_completed != nil {
		fields = append(fields, agentstate.FieldTasksCompleted)
	}
	if m.addtasks_failed != nil {
		fields = append(fields, agentstate.FieldTasksFailed)
	}
	if m.addavg_execution_time_ms != nil {
		fields = append(fields, agentstate.FieldAvgExecutionTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentstate.FieldErrorCount:
		return m.AddedErrorCount()
	case agentstate.FieldTasksCompleted:
		return m.AddedTasksCompleted()
	case agentstate.FieldTasksFailed:
		return m.AddedTasksFailed()
	case agentstate.FieldAvgExecutionTimeMs:
		return m.AddedAvgExecutionTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentstate.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	case agentstate.FieldTasksCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksCompleted(v)
		return nil
	case agentstate.FieldTasksFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksFailed(v)
		return nil
	case agentstate.FieldAvgExecutionTimeMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgExecutionTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown AgentState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentstate.FieldStateData) {
		fields = append(fields, agentstate.FieldStateData)
	}
	if m.FieldCleared(agentstate.FieldCapabilities) {
		fields = append(fields, agentstate.FieldCapabilities)
	}
	if m.FieldCleared(agentstate.FieldCurrentTaskID) {
		fields = append(fields, agentstate.FieldCurrentTaskID)
	}
	if m.FieldCleared(agentstate.FieldLastError) {
		fields = append(fields, agentstate.FieldLastError)
	}
	if m.FieldCleared(agentstate.FieldAvgExecutionTimeMs) {
		fields = append(fields, agentstate.FieldAvgExecutionTimeMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentStateMutation) ClearField(name string) error {
	switch name {
	case agentstate.FieldStateData:
		m.ClearStateData()
		return nil
	case agentstate.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case agentstate.FieldCurrentTaskID:
		m.ClearCurrentTaskID()
		return nil
	case agentstate.FieldLastError:
		m.ClearLastError()
		return nil
	case agentstate.FieldAvgExecutionTimeMs:
		m.ClearAvgExecutionTimeMs()
		return nil
	}
	return fmt.Errorf("unknown AgentState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentStateMutation) ResetField(name string) error {
	switch name {
	case agentstate.FieldAgentType:
		m.ResetAgentType()
		return nil
	case agentstate.FieldStatus:
		m.ResetStatus()
		return nil
	case agentstate.FieldStateData:
		m.ResetStateData()
		return nil
	case agentstate.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case agentstate.FieldCurrentTaskID:
		m.ResetCurrentTaskID()
		return nil
	case agentstate.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case agentstate.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case agentstate.FieldLastError:
		m.ResetLastError()
		return nil
	case agentstate.FieldTasksCompleted:
		m.ResetTasksCompleted()
		return nil
	case agentstate.FieldTasksFailed:
		m.ResetTasksFailed()
		return nil
	case agentstate.FieldAvgExecutionTimeMs:
		m.ResetAvgExecutionTimeMs()
		return nil
	case agentstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentstate.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown AgentState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentState edge %s", name)
}

// AlertBatchMutation represents an operation that mutates the AlertBatch nodes in the graph.
type AlertBatchMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	title                *string
	summary              *string
	total_items          *int
	addtotal_items       *int
	priority             *int
	addpriority          *int
	channels             *[]string
	appendchannels       []string
	schedule_type        *alertbatch.ScheduleType
	status               *alertbatch.Status
	sent_at              *time.Time
	delivery_attempts    *int
	adddelivery_attempts *int
	last_error           *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	deliveries           map[string]struct{}
	removeddeliveries    map[string]struct{}
	cleareddeliveries    bool
	done                 bool
	oldValue             func(context.Context) (*AlertBatch, error)
	predicates           []predicate.AlertBatch
}

var _ ent.Mutation = (*AlertBatchMutation)(nil)

// alertbatchOption allows management of the mutation configuration using functional options.
type alertbatchOption func(*AlertBatchMutation)

// newAlertBatchMutation creates new mutation for the AlertBatch entity.
func newAlertBatchMutation(c config, op Op, opts ...alertbatchOption) *AlertBatchMutation {
	m := &AlertBatchMutation{
		config:        c,
		op:            op,
		typ:           TypeAlertBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertBatchID sets the ID field of the mutation.
func withAlertBatchID(id string) alertbatchOption {
	return func(m *AlertBatchMutation) {
		var (
			err   error
			once  sync.Once
			value *AlertBatch
		)
		m.oldValue = func(ctx context.Context) (*AlertBatch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AlertBatch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlertBatch sets the old AlertBatch of the mutation.
func withAlertBatch(node *AlertBatch) alertbatchOption {
	return func(m *AlertBatchMutation) {
		m.oldValue = func(context.Context) (*AlertBatch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertBatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertBatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AlertBatch entities.
func (m *AlertBatchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertBatchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertBatchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AlertBatch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *AlertBatchMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *AlertBatchMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the AlertBatch entity.
// If the AlertBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertBatchMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *AlertBatchMutation) ResetTitle() {
	m.title = nil
}

// SetSummary sets the "summary" field.
func (m *AlertBatchMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *AlertBatchMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the AlertBatch entity.
// If the AlertBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertBatchMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *AlertBatchMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[alertbatch.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *AlertBatchMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[alertbatch.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *AlertBatchMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, alertbatch.FieldSummary)
}

// SetTotalItems sets the "total_items" field.
func (m *AlertBatchMutation) SetTotalItems(i int) {
	m.total_items = &i
	m.addtotal_items = nil
}

// TotalItems returns the value of the "total_items" field in the mutation.
func (m *AlertBatchMutation) TotalItems() (r int, exists bool) {
	v := m.total_items
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalItems returns the old "total_items" field's value of the AlertBatch entity.
// If the AlertBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertBatchMutation) OldTotalItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalItems: %w", err)
	}
	return oldValue.TotalItems, nil
}

// AddTotalItems adds i to the "total_items" field.
func (m *AlertBatchMutation) AddTotalItems(i int) {
	if m.addtotal_items != nil {
		*m.addtotal_items += i
	} else {
		m.addtotal_items = &i
	}
}

// AddedTotalItems returns the value that was added to the "total_items" field in this mutation.
func (m *AlertBatchMutation) AddedTotalItems() (r int, exists bool) {
	v := m.addtotal_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalItems resets all changes to the "total_items" field.
func (m *AlertBatchMutation) ResetTotalItems() {
	m.total_items = nil
	m.addtotal_items = nil
}

// SetPriority sets the "priority" field.
func (m *AlertBatchMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *AlertBatchMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the AlertBatch entity.
// If the AlertBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertBatchMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *AlertBatchMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *AlertBatchMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *AlertBatchMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetChannels sets the "channels" field.
func (m *AlertBatchMutation) SetChannels(s []string) {
	m.channels = &s
	m.appendchannels = nil
}

// Channels returns the value of the "channels" field in the mutation.
func (m *AlertBatchMutation) Channels() (r []string, exists bool) {
	v := m.channels
	if v == nil {
		return
	}
	return *v, true
}

// OldChannels returns the old "channels" field's value of the AlertBatch entity.
// If the AlertBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertBatchMutation) OldChannels(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannels: %w", err)
	}
	return oldValue.Channels, nil
}

// AppendChannels adds s to the "channels" field.
func (m *AlertBatchMutation) AppendChannels(s []string) {
	m.appendchannels = append(m.appendchannels, s...)
}

// AppendedChannels returns the list of values that were appended to the "channels" field in this mutation.
func (m *AlertBatchMutation) AppendedChannels() ([]string, bool) {
	if len(m.appendchannels) == 0 {
		return nil, false
	}
	return m.appendchannels, true
}

// ClearChannels clears the value of the "channels" field.
func (m *AlertBatchMutation) ClearChannels() {
	m.channels = nil
	m.appendchannels = nil
	m.clearedFields[alertbatch.FieldChannels] = struct{}{}
}

// ChannelsCleared returns if the "channels" field was cleared in this mutation.
func (m *AlertBatchMutation) ChannelsCleared() bool {
	_, ok := m.clearedFields[alertbatch.FieldChannels]
	return ok
}

// ResetChannels resets all changes to the "channels" field.
func (m *AlertBatchMutation) ResetChannels() {
	m.channels = nil
	m.appendchannels = nil
	delete(m.clearedFields, alertbatch.FieldChannels)
}

// SetScheduleType sets the "schedule_type" field.
func (m *AlertBatchMutation) SetScheduleType(at alertbatch.ScheduleType) {
	m.schedule_type = &at
}

// ScheduleType returns the value of the "schedule_type" field in the mutation.
func (m *AlertBatchMutation) ScheduleType() (r alertbatch.ScheduleType, exists bool) {
	v := m.schedule_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleType returns the old "schedule_type" field's value of the AlertBatch entity.
// If the AlertBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertBatchMutation) OldScheduleType(ctx context.Context) (v alertbatch.ScheduleType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleType: %w", err)
	}
	return oldValue.ScheduleType, nil
}

// ResetScheduleType resets all changes to the "schedule_type" field.
func (m *AlertBatchMutation) ResetScheduleType() {
	m.schedule_type = nil
}

// SetStatus sets the "status" field.
func (m *AlertBatchMutation) SetStatus(a alertbatch.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AlertBatchMutation) Status() (r alertbatch.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AlertBatch entity.
// If the AlertBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertBatchMutation) OldStatus(ctx context.Context) (v alertbatch.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AlertBatchMutation) ResetStatus() {
	m.status = nil
}

// SetSentAt sets the "sent_at" field.
func (m *AlertBatchMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *AlertBatchMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the AlertBatch entity.
// If the AlertBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertBatchMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *AlertBatchMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[alertbatch.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *AlertBatchMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[alertbatch.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *AlertBatchMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, alertbatch.FieldSentAt)
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (m *AlertBatchMutation) SetDeliveryAttempts(i int) {
	m.delivery_attempts = &i
	m.adddelivery_attempts = nil
}

// DeliveryAttempts returns the value of the "delivery_attempts" field in the mutation.
func (m *AlertBatchMutation) DeliveryAttempts() (r int, exists bool) {
	v := m.delivery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryAttempts returns the old "delivery_attempts" field's value of the AlertBatch entity.
// If the AlertBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertBatchMutation) OldDeliveryAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryAttempts: %w", err)
	}
	return oldValue.DeliveryAttempts, nil
}

// AddDeliveryAttempts adds i to the "delivery_attempts" field.
func (m *AlertBatchMutation) AddDeliveryAttempts(i int) {
	if m.adddelivery_attempts != nil {
		*m.adddelivery_attempts += i
	} else {
		m.adddelivery_attempts = &i
	}
}

// AddedDeliveryAttempts returns the value that was added to the "delivery_attempts" field in this mutation.
func (m *AlertBatchMutation) AddedDeliveryAttempts() (r int, exists bool) {
	v := m.adddelivery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeliveryAttempts resets all changes to the "delivery_attempts" field.
func (m *AlertBatchMutation) ResetDeliveryAttempts() {
	m.delivery_attempts = nil
	m.adddelivery_attempts = nil
}

// SetLastError sets the "last_error" field.
func (m *AlertBatchMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *AlertBatchMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the AlertBatch entity.
// If the AlertBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertBatchMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *AlertBatchMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[alertbatch.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *AlertBatchMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[alertbatch.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *AlertBatchMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, alertbatch.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *AlertBatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlertBatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AlertBatch entity.
// If the AlertBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertBatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlertBatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AlertBatchMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AlertBatchMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AlertBatch entity.
// If the AlertBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertBatchMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AlertBatchMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDeliveryIDs adds the "deliveries" edge to the AlertDelivery entity by ids.
func (m *AlertBatchMutation) AddDeliveryIDs(ids ...string) {
	if m.deliveries == nil {
		m.deliveries = make(map[string]struct{})
	}
	for i := range ids {
		m.deliveries[ids[i]] = struct{}{}
	}
}

// ClearDeliveries clears the "deliveries" edge to the AlertDelivery entity.
func (m *AlertBatchMutation) ClearDeliveries() {
	m.cleareddeliveries = true
}

// DeliveriesCleared reports if the "deliveries" edge to the AlertDelivery entity was cleared.
func (m *AlertBatchMutation) DeliveriesCleared() bool {
	return m.cleareddeliveries
}

// RemoveDeliveryIDs removes the "deliveries" edge to the AlertDelivery entity by IDs.
func (m *AlertBatchMutation) RemoveDeliveryIDs(ids ...string) {
	if m.removeddeliveries == nil {
		m.removeddeliveries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.deliveries, ids[i])
		m.removeddeliveries[ids[i]] = struct{}{}
	}
}

// RemovedDeliveries returns the removed IDs of the "deliveries" edge to the AlertDelivery entity.
func (m *AlertBatchMutation) RemovedDeliveriesIDs() (ids []string) {
	for id := range m.removeddeliveries {
		ids = append(ids, id)
	}
	return
}

// DeliveriesIDs returns the "deliveries" edge IDs in the mutation.
func (m *AlertBatchMutation) DeliveriesIDs() (ids []string) {
	for id := range m.deliveries {
		ids = append(ids, id)
	}
	return
}

// ResetDeliveries resets all changes to the "deliveries" edge.
func (m *AlertBatchMutation) ResetDeliveries() {
	m.deliveries = nil
	m.cleareddeliveries = false
	m.removeddeliveries = nil
}

// Where appends a list predicates to the AlertBatchMutation builder.
func (m *AlertBatchMutation) Where(ps ...predicate.AlertBatch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertBatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertBatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AlertBatch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertBatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertBatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AlertBatch).
func (m *AlertBatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertBatchMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.title != nil {
		fields = append(fields, alertbatch.FieldTitle)
	}
	if m.summary != nil {
		fields = append(fields, alertbatch.FieldSummary)
	}
	if m.total_items != nil {
		fields = append(fields, alertbatch.FieldTotalItems)
	}
	if m.priority != nil {
		fields = append(fields, alertbatch.FieldPriority)
	}
	if m.channels != nil {
		fields = append(fields, alertbatch.FieldChannels)
	}
	if m.schedule_type != nil {
		fields = append(fields, alertbatch.FieldScheduleType)
	}
	if m.status != nil {
		fields = append(fields, alertbatch.FieldStatus)
	}
	if m.sent_at != nil {
		fields = append(fields, alertbatch.FieldSentAt)
	}
	if m.delivery_attempts != nil {
		fields = append(fields, alertbatch.FieldDeliveryAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, alertbatch.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, alertbatch.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, alertbatch.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertBatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alertbatch.FieldTitle:
		return m.Title()
	case alertbatch.FieldSummary:
		return m.Summary()
	case alertbatch.FieldTotalItems:
		return m.TotalItems()
	case alertbatch.FieldPriority:
		return m.Priority()
	case alertbatch.FieldChannels:
		return m.Channels()
	case alertbatch.FieldScheduleType:
		return m.ScheduleType()
	case alertbatch.FieldStatus:
		return m.Status()
	case alertbatch.FieldSentAt:
		return m.SentAt()
	case alertbatch.FieldDeliveryAttempts:
		return m.DeliveryAttempts()
	case alertbatch.FieldLastError:
		return m.LastError()
	case alertbatch.FieldCreatedAt:
		return m.CreatedAt()
	case alertbatch.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertBatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alertbatch.FieldTitle:
		return m.OldTitle(ctx)
	case alertbatch.FieldSummary:
		return m.OldSummary(ctx)
	case alertbatch.FieldTotalItems:
		return m.OldTotalItems(ctx)
	case alertbatch.FieldPriority:
		return m.OldPriority(ctx)
	case alertbatch.FieldChannels:
		return m.OldChannels(ctx)
	case alertbatch.FieldScheduleType:
		return m.OldScheduleType(ctx)
	case alertbatch.FieldStatus:
		return m.OldStatus(ctx)
	case alertbatch.FieldSentAt:
		return m.OldSentAt(ctx)
	case alertbatch.FieldDeliveryAttempts:
		return m.OldDeliveryAttempts(ctx)
	case alertbatch.FieldLastError:
		return m.OldLastError(ctx)
	case alertbatch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case alertbatch.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AlertBatch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertBatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alertbatch.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case alertbatch.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case alertbatch.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalItems(v)
		return nil
	case alertbatch.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case alertbatch.FieldChannels:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannels(v)
		return nil
	case alertbatch.FieldScheduleType:
		v, ok := value.(alertbatch.ScheduleType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleType(v)
		return nil
	case alertbatch.FieldStatus:
		v, ok := value.(alertbatch.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case alertbatch.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case alertbatch.FieldDeliveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryAttempts(v)
		return nil
	case alertbatch.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case alertbatch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case alertbatch.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AlertBatch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertBatchMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_items != nil {
		fields = append(fields, alertbatch.FieldTotalItems)
	}
	if m.addpriority != nil {
		fields = append(fields, alertbatch.FieldPriority)
	}
	if m.adddelivery_attempts != nil {
		fields = append(fields, alertbatch.FieldDeliveryAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertBatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case alertbatch.FieldTotalItems:
		return m.AddedTotalItems()
	case alertbatch.FieldPriority:
		return m.AddedPriority()
	case alertbatch.FieldDeliveryAttempts:
		return m.AddedDeliveryAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertBatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case alertbatch.FieldTotalItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalItems(v)
		return nil
	case alertbatch.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case alertbatch.FieldDeliveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeliveryAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown AlertBatch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertBatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alertbatch.FieldSummary) {
		fields = append(fields, alertbatch.FieldSummary)
	}
	if m.FieldCleared(alertbatch.FieldChannels) {
		fields = append(fields, alertbatch.FieldChannels)
	}
	if m.FieldCleared(alertbatch.FieldSentAt) {
		fields = append(fields, alertbatch.FieldSentAt)
	}
	if m.FieldCleared(alertbatch.FieldLastError) {
		fields = append(fields, alertbatch.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertBatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertBatchMutation) ClearField(name string) error {
	switch name {
	case alertbatch.FieldSummary:
		m.ClearSummary()
		return nil
	case alertbatch.FieldChannels:
		m.ClearChannels()
		return nil
	case alertbatch.FieldSentAt:
		m.ClearSentAt()
		return nil
	case alertbatch.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown AlertBatch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertBatchMutation) ResetField(name string) error {
	switch name {
	case alertbatch.FieldTitle:
		m.ResetTitle()
		return nil
	case alertbatch.FieldSummary:
		m.ResetSummary()
		return nil
	case alertbatch.FieldTotalItems:
		m.ResetTotalItems()
		return nil
	case alertbatch.FieldPriority:
		m.ResetPriority()
		return nil
	case alertbatch.FieldChannels:
		m.ResetChannels()
		return nil
	case alertbatch.FieldScheduleType:
		m.ResetScheduleType()
		return nil
	case alertbatch.FieldStatus:
		m.ResetStatus()
		return nil
	case alertbatch.FieldSentAt:
		m.ResetSentAt()
		return nil
	case alertbatch.FieldDeliveryAttempts:
		m.ResetDeliveryAttempts()
		return nil
	case alertbatch.FieldLastError:
		m.ResetLastError()
		return nil
	case alertbatch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case alertbatch.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AlertBatch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertBatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.deliveries != nil {
		edges = append(edges, alertbatch.EdgeDeliveries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertBatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alertbatch.EdgeDeliveries:
		ids := make([]ent.Value, 0, len(m.deliveries))
		for id := range m.deliveries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertBatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddeliveries != nil {
		edges = append(edges, alertbatch.EdgeDeliveries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertBatchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case alertbatch.EdgeDeliveries:
		ids := make([]ent.Value, 0, len(m.removeddeliveries))
		for id := range m.removeddeliveries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertBatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddeliveries {
		edges = append(edges, alertbatch.EdgeDeliveries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertBatchMutation) EdgeCleared(name string) bool {
	switch name {
	case alertbatch.EdgeDeliveries:
		return m.cleareddeliveries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertBatchMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AlertBatch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertBatchMutation) ResetEdge(name string) error {
	switch name {
	case alertbatch.EdgeDeliveries:
		m.ResetDeliveries()
		return nil
	}
	return fmt.Errorf("unknown AlertBatch edge %s", name)
}

// AlertDeliveryMutation represents an operation that mutates the AlertDelivery nodes in the graph.
type AlertDeliveryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	channel             *string
	status              *alertdelivery.Status
	recipient           *string
	webhook_url         *string
	message_id          *string
	dedup_hash          *string
	sent_at             *time.Time
	delivery_time_ms    *int
	adddelivery_time_ms *int
	error_message       *string
	retry_count         *int
	addretry_count      *int
	created_at          *time.Time
	clearedFields       map[string]struct{}
	batch               *string
	clearedbatch        bool
	done                bool
	oldValue            func(context.Context) (*AlertDelivery, error)
	predicates          []predicate.AlertDelivery
}

var _ ent.Mutation = (*AlertDeliveryMutation)(nil)

// alertdeliveryOption allows management of the mutation configuration using functional options.
type alertdeliveryOption func(*AlertDeliveryMutation)

// newAlertDeliveryMutation creates new mutation for the AlertDelivery entity.
func newAlertDeliveryMutation(c config, op Op, opts ...alertdeliveryOption) *AlertDeliveryMutation {
	m := &AlertDeliveryMutation{
		config:        c,
		op:            op,
		typ:           TypeAlertDelivery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertDeliveryID sets the ID field of the mutation.
func withAlertDeliveryID(id string) alertdeliveryOption {
	return func(m *AlertDeliveryMutation) {
		var (
			err   error
			once  sync.Once
			value *AlertDelivery
		)
		m.oldValue = func(ctx context.Context) (*AlertDelivery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AlertDelivery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlertDelivery sets the old AlertDelivery of the mutation.
func withAlertDelivery(node *AlertDelivery) alertdeliveryOption {
	return func(m *AlertDeliveryMutation) {
		m.oldValue = func(context.Context) (*AlertDelivery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertDeliveryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertDeliveryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AlertDelivery entities.
func (m *AlertDeliveryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertDeliveryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertDeliveryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AlertDelivery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAlertBatchID sets the "alert_batch_id" field.
func (m *AlertDeliveryMutation) SetAlertBatchID(s string) {
	m.batch = &s
}

// AlertBatchID returns the value of the "alert_batch_id" field in the mutation.
func (m *AlertDeliveryMutation) AlertBatchID() (r string, exists bool) {
	v := m.batch
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertBatchID returns the old "alert_batch_id" field's value of the AlertDelivery entity.
// If the AlertDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertDeliveryMutation) OldAlertBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertBatchID: %w", err)
	}
	return oldValue.AlertBatchID, nil
}

// ResetAlertBatchID resets all changes to the "alert_batch_id" field.
func (m *AlertDeliveryMutation) ResetAlertBatchID() {
	m.batch = nil
}

// SetChannel sets the "channel" field.
func (m *AlertDeliveryMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *AlertDeliveryMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the AlertDelivery entity.
// If the AlertDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertDeliveryMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *AlertDeliveryMutation) ResetChannel() {
	m.channel = nil
}

// SetStatus sets the "status" field.
func (m *AlertDeliveryMutation) SetStatus(a alertdelivery.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AlertDeliveryMutation) Status() (r alertdelivery.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AlertDelivery entity.
// If the AlertDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertDeliveryMutation) OldStatus(ctx context.Context) (v alertdelivery.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AlertDeliveryMutation) ResetStatus() {
	m.status = nil
}

// SetRecipient sets the "recipient" field.
func (m *AlertDeliveryMutation) SetRecipient(s string) {
	m.recipient = &s
}

// Recipient returns the value of the "recipient" field in the mutation.
func (m *AlertDeliveryMutation) Recipient() (r string, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipient returns the old "recipient" field's value of the AlertDelivery entity.
// If the AlertDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertDeliveryMutation) OldRecipient(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipient: %w", err)
	}
	return oldValue.Recipient, nil
}

// ClearRecipient clears the value of the "recipient" field.
func (m *AlertDeliveryMutation) ClearRecipient() {
	m.recipient = nil
	m.clearedFields[alertdelivery.FieldRecipient] = struct{}{}
}

// RecipientCleared returns if the "recipient" field was cleared in this mutation.
func (m *AlertDeliveryMutation) RecipientCleared() bool {
	_, ok := m.clearedFields[alertdelivery.FieldRecipient]
	return ok
}

// ResetRecipient resets all changes to the "recipient" field.
func (m *AlertDeliveryMutation) ResetRecipient() {
	m.recipient = nil
	delete(m.clearedFields, alertdelivery.FieldRecipient)
}

// SetWebhookURL sets the "webhook_url" field.
func (m *AlertDeliveryMutation) SetWebhookURL(s string) {
	m.webhook_url = &s
}

// WebhookURL returns the value of the "webhook_url" field in the mutation.
func (m *AlertDeliveryMutation) WebhookURL() (r string, exists bool) {
	v := m.webhook_url
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookURL returns the old "webhook_url" field's value of the AlertDelivery entity.
// If the AlertDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertDeliveryMutation) OldWebhookURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookURL: %w", err)
	}
	return oldValue.WebhookURL, nil
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (m *AlertDeliveryMutation) ClearWebhookURL() {
	m.webhook_url = nil
	m.clearedFields[alertdelivery.FieldWebhookURL] = struct{}{}
}

// WebhookURLCleared returns if the "webhook_url" field was cleared in this mutation.
func (m *AlertDeliveryMutation) WebhookURLCleared() bool {
	_, ok := m.clearedFields[alertdelivery.FieldWebhookURL]
	return ok
}

// ResetWebhookURL resets all changes to the "webhook_url" field.
func (m *AlertDeliveryMutation) ResetWebhookURL() {
	m.webhook_url = nil
	delete(m.clearedFields, alertdelivery.FieldWebhookURL)
}

// SetMessageID sets the "message_id" field.
func (m *AlertDeliveryMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *AlertDeliveryMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the AlertDelivery entity.
// If the AlertDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertDeliveryMutation) OldMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ClearMessageID clears the value of the "message_id" field.
func (m *AlertDeliveryMutation) ClearMessageID() {
	m.message_id = nil
	m.clearedFields[alertdelivery.FieldMessageID] = struct{}{}
}

// MessageIDCleared returns if the "message_id" field was cleared in this mutation.
func (m *AlertDeliveryMutation) MessageIDCleared() bool {
	_, ok := m.clearedFields[alertdelivery.FieldMessageID]
	return ok
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *AlertDeliveryMutation) ResetMessageID() {
	m.message_id = nil
	delete(m.clearedFields, alertdelivery.FieldMessageID)
}

// SetDedupHash sets the "dedup_hash" field.
func (m *AlertDeliveryMutation) SetDedupHash(s string) {
	m.dedup_hash = &s
}

// DedupHash returns the value of the "dedup_hash" field in the mutation.
func (m *AlertDeliveryMutation) DedupHash() (r string, exists bool) {
	v := m.dedup_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupHash returns the old "dedup_hash" field's value of the AlertDelivery entity.
// If the AlertDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertDeliveryMutation) OldDedupHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupHash: %w", err)
	}
	return oldValue.DedupHash, nil
}

// ClearDedupHash clears the value of the "dedup_hash" field.
func (m *AlertDeliveryMutation) ClearDedupHash() {
	m.dedup_hash = nil
	m.clearedFields[alertdelivery.FieldDedupHash] = struct{}{}
}

// DedupHashCleared returns if the "dedup_hash" field was cleared in this mutation.
func (m *AlertDeliveryMutation) DedupHashCleared() bool {
	_, ok := m.clearedFields[alertdelivery.FieldDedupHash]
	return ok
}

// ResetDedupHash resets all changes to the "dedup_hash" field.
func (m *AlertDeliveryMutation) ResetDedupHash() {
	m.dedup_hash = nil
	delete(m.clearedFields, alertdelivery.FieldDedupHash)
}

// SetSentAt sets the "sent_at" field.
func (m *AlertDeliveryMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *AlertDeliveryMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the AlertDelivery entity.
// If the AlertDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertDeliveryMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *AlertDeliveryMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[alertdelivery.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *AlertDeliveryMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[alertdelivery.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *AlertDeliveryMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, alertdelivery.FieldSentAt)
}

// SetDeliveryTimeMs sets the "delivery_time_ms" field.
func (m *AlertDeliveryMutation) SetDeliveryTimeMs(i int) {
	m.delivery_time_ms = &i
	m.adddelivery_time_ms = nil
}

// DeliveryTimeMs returns the value of the "delivery_time_ms" field in the mutation.
func (m *AlertDeliveryMutation) DeliveryTimeMs() (r int, exists bool) {
	v := m.delivery_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryTimeMs returns the old "delivery_time_ms" field's value of the AlertDelivery entity.
// If the AlertDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertDeliveryMutation) OldDeliveryTimeMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryTimeMs: %w", err)
	}
	return oldValue.DeliveryTimeMs, nil
}

// AddDeliveryTimeMs adds i to the "delivery_time_ms" field.
func (m *AlertDeliveryMutation) AddDeliveryTimeMs(i int) {
	if m.adddelivery_time_ms != nil {
		*m.adddelivery_time_ms += i
	} else {
		m.adddelivery_time_ms = &i
	}
}

// AddedDeliveryTimeMs returns the value that was added to the "delivery_time_ms" field in this mutation.
func (m *AlertDeliveryMutation) AddedDeliveryTimeMs() (r int, exists bool) {
	v := m.adddelivery_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeliveryTimeMs clears the value of the "delivery_time_ms" field.
func (m *AlertDeliveryMutation) ClearDeliveryTimeMs() {
	m.delivery_time_ms = nil
	m.adddelivery_time_ms = nil
	m.clearedFields[alertdelivery.FieldDeliveryTimeMs] = struct{}{}
}

// DeliveryTimeMsCleared returns if the "delivery_time_ms" field was cleared in this mutation.
func (m *AlertDeliveryMutation) DeliveryTimeMsCleared() bool {
	_, ok := m.clearedFields[alertdelivery.FieldDeliveryTimeMs]
	return ok
}

// ResetDeliveryTimeMs resets all changes to the "delivery_time_ms" field.
func (m *AlertDeliveryMutation) ResetDeliveryTimeMs() {
	m.delivery_time_ms = nil
	m.adddelivery_time_ms = nil
	delete(m.clearedFields, alertdelivery.FieldDeliveryTimeMs)
}

// SetErrorMessage sets the "error_message" field.
func (m *AlertDeliveryMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AlertDeliveryMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AlertDelivery entity.
// If the AlertDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertDeliveryMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AlertDeliveryMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[alertdelivery.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AlertDeliveryMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[alertdelivery.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AlertDeliveryMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, alertdelivery.FieldErrorMessage)
}

// SetRetryCount sets the "retry_count" field.
func (m *AlertDeliveryMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *AlertDeliveryMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the AlertDelivery entity.
// If the AlertDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertDeliveryMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *AlertDeliveryMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *AlertDeliveryMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *AlertDeliveryMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AlertDeliveryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlertDeliveryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AlertDelivery entity.
// If the AlertDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertDeliveryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlertDeliveryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetBatchID sets the "batch" edge to the AlertBatch entity by id.
func (m *AlertDeliveryMutation) SetBatchID(id string) {
	m.batch = &id
}

// ClearBatch clears the "batch" edge to the AlertBatch entity.
func (m *AlertDeliveryMutation) ClearBatch() {
	m.clearedbatch = true
	m.clearedFields[alertdelivery.FieldAlertBatchID] = struct{}{}
}

// BatchCleared reports if the "batch" edge to the AlertBatch entity was cleared.
func (m *AlertDeliveryMutation) BatchCleared() bool {
	return m.clearedbatch
}

// BatchID returns the "batch" edge ID in the mutation.
func (m *AlertDeliveryMutation) BatchID() (id string, exists bool) {
	if m.batch != nil {
		return *m.batch, true
	}
	return
}

// BatchIDs returns the "batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BatchID instead. It exists only for internal usage by the builders.
func (m *AlertDeliveryMutation) BatchIDs() (ids []string) {
	if id := m.batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBatch resets all changes to the "batch" edge.
func (m *AlertDeliveryMutation) ResetBatch() {
	m.batch = nil
	m.clearedbatch = false
}

// Where appends a list predicates to the AlertDeliveryMutation builder.
func (m *AlertDeliveryMutation) Where(ps ...predicate.AlertDelivery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertDeliveryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertDeliveryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AlertDelivery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertDeliveryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertDeliveryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AlertDelivery).
func (m *AlertDeliveryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertDeliveryMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.batch != nil {
		fields = append(fields, alertdelivery.FieldAlertBatchID)
	}
	if m.channel != nil {
		fields = append(fields, alertdelivery.FieldChannel)
	}
	if m.status != nil {
		fields = append(fields, alertdelivery.FieldStatus)
	}
	if m.recipient != nil {
		fields = append(fields, alertdelivery.FieldRecipient)
	}
	if m.webhook_url != nil {
		fields = append(fields, alertdelivery.FieldWebhookURL)
	}
	if m.message_id != nil {
		fields = append(fields, alertdelivery.FieldMessageID)
	}
	if m.dedup_hash != nil {
		fields = append(fields, alertdelivery.FieldDedupHash)
	}
	if m.sent_at != nil {
		fields = append(fields, alertdelivery.FieldSentAt)
	}
	if m.delivery_time_ms != nil {
		fields = append(fields, alertdelivery.FieldDeliveryTimeMs)
	}
	if m.error_message != nil {
		fields = append(fields, alertdelivery.FieldErrorMessage)
	}
	if m.retry_count != nil {
		fields = append(fields, alertdelivery.FieldRetryCount)
	}
	if m.created_at != nil {
		fields = append(fields, alertdelivery.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertDeliveryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alertdelivery.FieldAlertBatchID:
		return m.AlertBatchID()
	case alertdelivery.FieldChannel:
		return m.Channel()
	case alertdelivery.FieldStatus:
		return m.Status()
	case alertdelivery.FieldRecipient:
		return m.Recipient()
	case alertdelivery.FieldWebhookURL:
		return m.WebhookURL()
	case alertdelivery.FieldMessageID:
		return m.MessageID()
	case alertdelivery.FieldDedupHash:
		return m.DedupHash()
	case alertdelivery.FieldSentAt:
		return m.SentAt()
	case alertdelivery.FieldDeliveryTimeMs:
		return m.DeliveryTimeMs()
	case alertdelivery.FieldErrorMessage:
		return m.ErrorMessage()
	case alertdelivery.FieldRetryCount:
		return m.RetryCount()
	case alertdelivery.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertDeliveryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alertdelivery.FieldAlertBatchID:
		return m.OldAlertBatchID(ctx)
	case alertdelivery.FieldChannel:
		return m.OldChannel(ctx)
	case alertdelivery.FieldStatus:
		return m.OldStatus(ctx)
	case alertdelivery.FieldRecipient:
		return m.OldRecipient(ctx)
	case alertdelivery.FieldWebhookURL:
		return m.OldWebhookURL(ctx)
	case alertdelivery.FieldMessageID:
		return m.OldMessageID(ctx)
	case alertdelivery.FieldDedupHash:
		return m.OldDedupHash(ctx)
	case alertdelivery.FieldSentAt:
		return m.OldSentAt(ctx)
	case alertdelivery.FieldDeliveryTimeMs:
		return m.OldDeliveryTimeMs(ctx)
	case alertdelivery.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case alertdelivery.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case alertdelivery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AlertDelivery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertDeliveryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alertdelivery.FieldAlertBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertBatchID(v)
		return nil
	case alertdelivery.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case alertdelivery.FieldStatus:
		v, ok := value.(alertdelivery.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case alertdelivery.FieldRecipient:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipient(v)
		return nil
	case alertdelivery.FieldWebhookURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookURL(v)
		return nil
	case alertdelivery.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case alertdelivery.FieldDedupHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupHash(v)
		return nil
	case alertdelivery.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case alertdelivery.FieldDeliveryTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryTimeMs(v)
		return nil
	case alertdelivery.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case alertdelivery.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case alertdelivery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AlertDelivery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertDeliveryMutation) AddedFields() []string {
	var fields []string
	if m.adddelivery_time_ms != nil {
		fields = append(fields, alertdelivery.FieldDeliveryTimeMs)
	}
	if m.addretry_count != nil {
		fields = append(fields, alertdelivery.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertDeliveryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case alertdelivery.FieldDeliveryTimeMs:
		return m.AddedDeliveryTimeMs()
	case alertdelivery.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertDeliveryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case alertdelivery.FieldDeliveryTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeliveryTimeMs(v)
		return nil
	case alertdelivery.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown AlertDelivery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertDeliveryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alertdelivery.FieldRecipient) {
		fields = append(fields, alertdelivery.FieldRecipient)
	}
	if m.FieldCleared(alertdelivery.FieldWebhookURL) {
		fields = append(fields, alertdelivery.FieldWebhookURL)
	}
	if m.FieldCleared(alertdelivery.FieldMessageID) {
		fields = append(fields, alertdelivery.FieldMessageID)
	}
	if m.FieldCleared(alertdelivery.FieldDedupHash) {
		fields = append(fields, alertdelivery.FieldDedupHash)
	}
	if m.FieldCleared(alertdelivery.FieldSentAt) {
		fields = append(fields, alertdelivery.FieldSentAt)
	}
	if m.FieldCleared(alertdelivery.FieldDeliveryTimeMs) {
		fields = append(fields, alertdelivery.FieldDeliveryTimeMs)
	}
	if m.FieldCleared(alertdelivery.FieldErrorMessage) {
		fields = append(fields, alertdelivery.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertDeliveryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertDeliveryMutation) ClearField(name string) error {
	switch name {
	case alertdelivery.FieldRecipient:
		m.ClearRecipient()
		return nil
	case alertdelivery.FieldWebhookURL:
		m.ClearWebhookURL()
		return nil
	case alertdelivery.FieldMessageID:
		m.ClearMessageID()
		return nil
	case alertdelivery.FieldDedupHash:
		m.ClearDedupHash()
		return nil
	case alertdelivery.FieldSentAt:
		m.ClearSentAt()
		return nil
	case alertdelivery.FieldDeliveryTimeMs:
		m.ClearDeliveryTimeMs()
		return nil
	case alertdelivery.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AlertDelivery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertDeliveryMutation) ResetField(name string) error {
	switch name {
	case alertdelivery.FieldAlertBatchID:
		m.ResetAlertBatchID()
		return nil
	case alertdelivery.FieldChannel:
		m.ResetChannel()
		return nil
	case alertdelivery.FieldStatus:
		m.ResetStatus()
		return nil
	case alertdelivery.FieldRecipient:
		m.ResetRecipient()
		return nil
	case alertdelivery.FieldWebhookURL:
		m.ResetWebhookURL()
		return nil
	case alertdelivery.FieldMessageID:
		m.ResetMessageID()
		return nil
	case alertdelivery.FieldDedupHash:
		m.ResetDedupHash()
		return nil
	case alertdelivery.FieldSentAt:
		m.ResetSentAt()
		return nil
	case alertdelivery.FieldDeliveryTimeMs:
		m.ResetDeliveryTimeMs()
		return nil
	case alertdelivery.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case alertdelivery.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case alertdelivery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AlertDelivery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertDeliveryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.batch != nil {
		edges = append(edges, alertdelivery.EdgeBatch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertDeliveryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alertdelivery.EdgeBatch:
		if id := m.batch; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertDeliveryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertDeliveryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertDeliveryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbatch {
		edges = append(edges, alertdelivery.EdgeBatch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertDeliveryMutation) EdgeCleared(name string) bool {
	switch name {
	case alertdelivery.EdgeBatch:
		return m.clearedbatch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertDeliveryMutation) ClearEdge(name string) error {
	switch name {
	case alertdelivery.EdgeBatch:
		m.ClearBatch()
		return nil
	}
	return fmt.Errorf("unknown AlertDelivery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertDeliveryMutation) ResetEdge(name string) error {
	switch name {
	case alertdelivery.EdgeBatch:
		m.ResetBatch()
		return nil
	}
	return fmt.Errorf("unknown AlertDelivery edge %s", name)
}

// ContentDedupMutation represents an operation that mutates the ContentDedup nodes in the graph.
type ContentDedupMutation struct {
	config
	op                Op
	typ               string
	id                *string
	content_hash      *string
	content_type      *contentdedup.ContentType
	external_id       *string
	processing_status *contentdedup.ProcessingStatus
	first_seen_at     *time.Time
	processed_at      *time.Time
	source_agent      *string
	workflow_id       *string
	metadata          *map[string]interface{}
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ContentDedup, error)
	predicates        []predicate.ContentDedup
}

var _ ent.Mutation = (*ContentDedupMutation)(nil)

// contentdedupOption allows management of the mutation configuration using functional options.
type contentdedupOption func(*ContentDedupMutation)

// newContentDedupMutation creates new mutation for the ContentDedup entity.
func newContentDedupMutation(c config, op Op, opts ...contentdedupOption) *ContentDedupMutation {
	m := &ContentDedupMutation{
		config:        c,
		op:            op,
		typ:           TypeContentDedup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContentDedupID sets the ID field of the mutation.
func withContentDedupID(id string) contentdedupOption {
	return func(m *ContentDedupMutation) {
		var (
			err   error
			once  sync.Once
			value *ContentDedup
		)
		m.oldValue = func(ctx context.Context) (*ContentDedup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContentDedup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContentDedup sets the old ContentDedup of the mutation.
func withContentDedup(node *ContentDedup) contentdedupOption {
	return func(m *ContentDedupMutation) {
		m.oldValue = func(context.Context) (*ContentDedup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContentDedupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContentDedupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContentDedup entities.
func (m *ContentDedupMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContentDedupMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContentDedupMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContentDedup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContentHash sets the "content_hash" field.
func (m *ContentDedupMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ContentDedupMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the ContentDedup entity.
// If the ContentDedup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentDedupMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ContentDedupMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetContentType sets the "content_type" field.
func (m *ContentDedupMutation) SetContentType(ct contentdedup.ContentType) {
	m.content_type = &ct
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *ContentDedupMutation) ContentType() (r contentdedup.ContentType, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the ContentDedup entity.
// If the ContentDedup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentDedupMutation) OldContentType(ctx context.Context) (v contentdedup.ContentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *ContentDedupMutation) ResetContentType() {
	m.content_type = nil
}

// SetExternalID sets the "external_id" field.
func (m *ContentDedupMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *ContentDedupMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the ContentDedup entity.
// If the ContentDedup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentDedupMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *ContentDedupMutation) ResetExternalID() {
	m.external_id = nil
}

// SetProcessingStatus sets the "processing_status" field.
func (m *ContentDedupMutation) SetProcessingStatus(cs contentdedup.ProcessingStatus) {
	m.processing_status = &cs
}

// ProcessingStatus returns the value of the "processing_status" field in the mutation.
func (m *ContentDedupMutation) ProcessingStatus() (r contentdedup.ProcessingStatus, exists bool) {
	v := m.processing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStatus returns the old "processing_status" field's value of the ContentDedup entity.
// If the ContentDedup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentDedupMutation) OldProcessingStatus(ctx context.Context) (v contentdedup.ProcessingStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStatus: %w", err)
	}
	return oldValue.ProcessingStatus, nil
}

// ResetProcessingStatus resets all changes to the "processing_status" field.
func (m *ContentDedupMutation) ResetProcessingStatus() {
	m.processing_status = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *ContentDedupMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *ContentDedupMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the ContentDedup entity.
// If the ContentDedup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentDedupMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *ContentDedupMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *ContentDedupMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ContentDedupMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the ContentDedup entity.
// If the ContentDedup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentDedupMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *ContentDedupMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[contentdedup.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *ContentDedupMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[contentdedup.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ContentDedupMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, contentdedup.FieldProcessedAt)
}

// SetSourceAgent sets the "source_agent" field.
func (m *ContentDedupMutation) SetSourceAgent(s string) {
	m.source_agent = &s
}

// SourceAgent returns the value of the "source_agent" field in the mutation.
func (m *ContentDedupMutation) SourceAgent() (r string, exists bool) {
	v := m.source_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceAgent returns the old "source_agent" field's value of the ContentDedup entity.
// If the ContentDedup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentDedupMutation) OldSourceAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceAgent: %w", err)
	}
	return oldValue.SourceAgent, nil
}

// ClearSourceAgent clears the value of the "source_agent" field.
func (m *ContentDedupMutation) ClearSourceAgent() {
	m.source_agent = nil
	m.clearedFields[contentdedup.FieldSourceAgent] = struct{}{}
}

// SourceAgentCleared returns if the "source_agent" field was cleared in this mutation.
func (m *ContentDedupMutation) SourceAgentCleared() bool {
	_, ok := m.clearedFields[contentdedup.FieldSourceAgent]
	return ok
}

// ResetSourceAgent resets all changes to the "source_agent" field.
func (m *ContentDedupMutation) ResetSourceAgent() {
	m.source_agent = nil
	delete(m.clearedFields, contentdedup.FieldSourceAgent)
}

// SetWorkflowID sets the "workflow_id" field.
func (m *ContentDedupMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *ContentDedupMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the ContentDedup entity.
// If the ContentDedup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentDedupMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (m *ContentDedupMutation) ClearWorkflowID() {
	m.workflow_id = nil
	m.clearedFields[contentdedup.FieldWorkflowID] = struct{}{}
}

// WorkflowIDCleared returns if the "workflow_id" field was cleared in this mutation.
func (m *ContentDedupMutation) WorkflowIDCleared() bool {
	_, ok := m.clearedFields[contentdedup.FieldWorkflowID]
	return ok
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *ContentDedupMutation) ResetWorkflowID() {
	m.workflow_id = nil
	delete(m.clearedFields, contentdedup.FieldWorkflowID)
}

// SetMetadata sets the "metadata" field.
func (m *ContentDedupMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ContentDedupMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ContentDedup entity.
// If the ContentDedup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentDedupMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ContentDedupMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[contentdedup.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ContentDedupMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[contentdedup.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ContentDedupMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, contentdedup.FieldMetadata)
}

// Where appends a list predicates to the ContentDedupMutation builder.
func (m *ContentDedupMutation) Where(ps ...predicate.ContentDedup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContentDedupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContentDedupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContentDedup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContentDedupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContentDedupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContentDedup).
func (m *ContentDedupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContentDedupMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.content_hash != nil {
		fields = append(fields, contentdedup.FieldContentHash)
	}
	if m.content_type != nil {
		fields = append(fields, contentdedup.FieldContentType)
	}
	if m.external_id != nil {
		fields = append(fields, contentdedup.FieldExternalID)
	}
	if m.processing_status != nil {
		fields = append(fields, contentdedup.FieldProcessingStatus)
	}
	if m.first_seen_at != nil {
		fields = append(fields, contentdedup.FieldFirstSeenAt)
	}
	if m.processed_at != nil {
		fields = append(fields, contentdedup.FieldProcessedAt)
	}
	if m.source_agent != nil {
		fields = append(fields, contentdedup.FieldSourceAgent)
	}
	if m.workflow_id != nil {
		fields = append(fields, contentdedup.FieldWorkflowID)
	}
	if m.metadata != nil {
		fields = append(fields, contentdedup.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContentDedupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contentdedup.FieldContentHash:
		return m.ContentHash()
	case contentdedup.FieldContentType:
		return m.ContentType()
	case contentdedup.FieldExternalID:
		return m.ExternalID()
	case contentdedup.FieldProcessingStatus:
		return m.ProcessingStatus()
	case contentdedup.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case contentdedup.FieldProcessedAt:
		return m.ProcessedAt()
	case contentdedup.FieldSourceAgent:
		return m.SourceAgent()
	case contentdedup.FieldWorkflowID:
		return m.WorkflowID()
	case contentdedup.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContentDedupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contentdedup.FieldContentHash:
		return m.OldContentHash(ctx)
	case contentdedup.FieldContentType:
		return m.OldContentType(ctx)
	case contentdedup.FieldExternalID:
		return m.OldExternalID(ctx)
	case contentdedup.FieldProcessingStatus:
		return m.OldProcessingStatus(ctx)
	case contentdedup.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case contentdedup.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case contentdedup.FieldSourceAgent:
		return m.OldSourceAgent(ctx)
	case contentdedup.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case contentdedup.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown ContentDedup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentDedupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contentdedup.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case contentdedup.FieldContentType:
		v, ok := value.(contentdedup.ContentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case contentdedup.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case contentdedup.FieldProcessingStatus:
		v, ok := value.(contentdedup.ProcessingStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStatus(v)
		return nil
	case contentdedup.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case contentdedup.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case contentdedup.FieldSourceAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceAgent(v)
		return nil
	case contentdedup.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case contentdedup.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown ContentDedup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContentDedupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContentDedupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentDedupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContentDedup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContentDedupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contentdedup.FieldProcessedAt) {
		fields = append(fields, contentdedup.FieldProcessedAt)
	}
	if m.FieldCleared(contentdedup.FieldSourceAgent) {
		fields = append(fields, contentdedup.FieldSourceAgent)
	}
	if m.FieldCleared(contentdedup.FieldWorkflowID) {
		fields = append(fields, contentdedup.FieldWorkflowID)
	}
	if m.FieldCleared(contentdedup.FieldMetadata) {
		fields = append(fields, contentdedup.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContentDedupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContentDedupMutation) ClearField(name string) error {
	switch name {
	case contentdedup.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case contentdedup.FieldSourceAgent:
		m.ClearSourceAgent()
		return nil
	case contentdedup.FieldWorkflowID:
		m.ClearWorkflowID()
		return nil
	case contentdedup.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ContentDedup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContentDedupMutation) ResetField(name string) error {
	switch name {
	case contentdedup.FieldContentHash:
		m.ResetContentHash()
		return nil
	case contentdedup.FieldContentType:
		m.ResetContentType()
		return nil
	case contentdedup.FieldExternalID:
		m.ResetExternalID()
		return nil
	case contentdedup.FieldProcessingStatus:
		m.ResetProcessingStatus()
		return nil
	case contentdedup.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case contentdedup.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case contentdedup.FieldSourceAgent:
		m.ResetSourceAgent()
		return nil
	case contentdedup.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case contentdedup.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown ContentDedup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContentDedupMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContentDedupMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContentDedupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContentDedupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContentDedupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContentDedupMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContentDedupMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ContentDedup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContentDedupMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ContentDedup edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op              Op
	typ             string
	id              *string
	agent_type      *string
	skill_name      *string
	parameters      *map[string]interface{}
	parameters_hash *string
	workflow_id     *string
	idempotency_key *string
	correlation_id  *string
	priority        *int
	addpriority     *int
	status          *task.Status
	retry_count     *int
	addretry_count  *int
	max_retries     *int
	addmax_retries  *int
	next_retry_at   *time.Time
	lock_token      *string
	lock_expires_at *time.Time
	started_at      *time.Time
	completed_at    *time.Time
	error_message   *string
	result_data     *map[string]interface{}
	result_hash     *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Task, error)
	predicates      []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentType sets the "agent_type" field.
func (m *TaskMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *TaskMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *TaskMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetSkillName sets the "skill_name" field.
func (m *TaskMutation) SetSkillName(s string) {
	m.skill_name = &s
}

// SkillName returns the value of the "skill_name" field in the mutation.
func (m *TaskMutation) SkillName() (r string, exists bool) {
	v := m.skill_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillName returns the old "skill_name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSkillName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillName: %w", err)
	}
	return oldValue.SkillName, nil
}

// ResetSkillName resets all changes to the "skill_name" field.
func (m *TaskMutation) ResetSkillName() {
	m.skill_name = nil
}

// SetParameters sets the "parameters" field.
func (m *TaskMutation) SetParameters(value map[string]interface{}) {
	m.parameters = &value
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *TaskMutation) Parameters() (r map[string]interface{}, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ClearParameters clears the value of the "parameters" field.
func (m *TaskMutation) ClearParameters() {
	m.parameters = nil
	m.clearedFields[task.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *TaskMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[task.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *TaskMutation) ResetParameters() {
	m.parameters = nil
	delete(m.clearedFields, task.FieldParameters)
}

// SetParametersHash sets the "parameters_hash" field.
func (m *TaskMutation) SetParametersHash(s string) {
	m.parameters_hash = &s
}

// ParametersHash returns the value of the "parameters_hash" field in the mutation.
func (m *TaskMutation) ParametersHash() (r string, exists bool) {
	v := m.parameters_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldParametersHash returns the old "parameters_hash" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParametersHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParametersHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParametersHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParametersHash: %w", err)
	}
	return oldValue.ParametersHash, nil
}

// ResetParametersHash resets all changes to the "parameters_hash" field.
func (m *TaskMutation) ResetParametersHash() {
	m.parameters_hash = nil
}

// SetWorkflowID sets the "workflow_id" field.
func (m *TaskMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *TaskMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (m *TaskMutation) ClearWorkflowID() {
	m.workflow_id = nil
	m.clearedFields[task.FieldWorkflowID] = struct{}{}
}

// WorkflowIDCleared returns if the "workflow_id" field was cleared in this mutation.
func (m *TaskMutation) WorkflowIDCleared() bool {
	_, ok := m.clearedFields[task.FieldWorkflowID]
	return ok
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *TaskMutation) ResetWorkflowID() {
	m.workflow_id = nil
	delete(m.clearedFields, task.FieldWorkflowID)
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *TaskMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *TaskMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIdempotencyKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (m *TaskMutation) ClearIdempotencyKey() {
	m.idempotency_key = nil
	m.clearedFields[task.FieldIdempotencyKey] = struct{}{}
}

// IdempotencyKeyCleared returns if the "idempotency_key" field was cleared in this mutation.
func (m *TaskMutation) IdempotencyKeyCleared() bool {
	_, ok := m.clearedFields[task.FieldIdempotencyKey]
	return ok
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *TaskMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
	delete(m.clearedFields, task.FieldIdempotencyKey)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *TaskMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *TaskMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCorrelationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *TaskMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[task.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *TaskMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[task.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *TaskMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, task.FieldCorrelationID)
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *TaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *TaskMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *TaskMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *TaskMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *TaskMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *TaskMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *TaskMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *TaskMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *TaskMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *TaskMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *TaskMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *TaskMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *TaskMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (m *TaskMutation) ClearNextRetryAt() {
	m.next_retry_at = nil
	m.clearedFields[task.FieldNextRetryAt] = struct{}{}
}

// NextRetryAtCleared returns if the "next_retry_at" field was cleared in this mutation.
func (m *TaskMutation) NextRetryAtCleared() bool {
	_, ok := m.clearedFields[task.FieldNextRetryAt]
	return ok
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *TaskMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
	delete(m.clearedFields, task.FieldNextRetryAt)
}

// SetLockToken sets the "lock_token" field.
func (m *TaskMutation) SetLockToken(s string) {
	m.lock_token = &s
}

// LockToken returns the value of the "lock_token" field in the mutation.
func (m *TaskMutation) LockToken() (r string, exists bool) {
	v := m.lock_token
	if v == nil {
		return
	}
	return *v, true
}

// OldLockToken returns the old "lock_token" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLockToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockToken: %w", err)
	}
	return oldValue.LockToken, nil
}

// ClearLockToken clears the value of the "lock_token" field.
func (m *TaskMutation) ClearLockToken() {
	m.lock_token = nil
	m.clearedFields[task.FieldLockToken] = struct{}{}
}

// LockTokenCleared returns if the "lock_token" field was cleared in this mutation.
func (m *TaskMutation) LockTokenCleared() bool {
	_, ok := m.clearedFields[task.FieldLockToken]
	return ok
}

// ResetLockToken resets all changes to the "lock_token" field.
func (m *TaskMutation) ResetLockToken() {
	m.lock_token = nil
	delete(m.clearedFields, task.FieldLockToken)
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (m *TaskMutation) SetLockExpiresAt(t time.Time) {
	m.lock_expires_at = &t
}

// LockExpiresAt returns the value of the "lock_expires_at" field in the mutation.
func (m *TaskMutation) LockExpiresAt() (r time.Time, exists bool) {
	v := m.lock_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLockExpiresAt returns the old "lock_expires_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLockExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockExpiresAt: %w", err)
	}
	return oldValue.LockExpiresAt, nil
}

// ClearLockExpiresAt clears the value of the "lock_expires_at" field.
func (m *TaskMutation) ClearLockExpiresAt() {
	m.lock_expires_at = nil
	m.clearedFields[task.FieldLockExpiresAt] = struct{}{}
}

// LockExpiresAtCleared returns if the "lock_expires_at" field was cleared in this mutation.
func (m *TaskMutation) LockExpiresAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLockExpiresAt]
	return ok
}

// ResetLockExpiresAt resets all changes to the "lock_expires_at" field.
func (m *TaskMutation) ResetLockExpiresAt() {
	m.lock_expires_at = nil
	delete(m.clearedFields, task.FieldLockExpiresAt)
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetResultData sets the "result_data" field.
func (m *TaskMutation) SetResultData(value map[string]interface{}) {
	m.result_data = &value
}

// ResultData returns the value of the "result_data" field in the mutation.
func (m *TaskMutation) ResultData() (r map[string]interface{}, exists bool) {
	v := m.result_data
	if v == nil {
		return
	}
	return *v, true
}

// OldResultData returns the old "result_data" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResultData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultData: %w", err)
	}
	return oldValue.ResultData, nil
}

// ClearResultData clears the value of the "result_data" field.
func (m *TaskMutation) ClearResultData() {
	m.result_data = nil
	m.clearedFields[task.FieldResultData] = struct{}{}
}

// ResultDataCleared returns if the "result_data" field was cleared in this mutation.
func (m *TaskMutation) ResultDataCleared() bool {
	_, ok := m.clearedFields[task.FieldResultData]
	return ok
}

// ResetResultData resets all changes to the "result_data" field.
func (m *TaskMutation) ResetResultData() {
	m.result_data = nil
	delete(m.clearedFields, task.FieldResultData)
}

// SetResultHash sets the "result_hash" field.
func (m *TaskMutation) SetResultHash(s string) {
	m.result_hash = &s
}

// ResultHash returns the value of the "result_hash" field in the mutation.
func (m *TaskMutation) ResultHash() (r string, exists bool) {
	v := m.result_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldResultHash returns the old "result_hash" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResultHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultHash: %w", err)
	}
	return oldValue.ResultHash, nil
}

// ClearResultHash clears the value of the "result_hash" field.
func (m *TaskMutation) ClearResultHash() {
	m.result_hash = nil
	m.clearedFields[task.FieldResultHash] = struct{}{}
}

// ResultHashCleared returns if the "result_hash" field was cleared in this mutation.
func (m *TaskMutation) ResultHashCleared() bool {
	_, ok := m.clearedFields[task.FieldResultHash]
	return ok
}

// ResetResultHash resets all changes to the "result_hash" field.
func (m *TaskMutation) ResetResultHash() {
	m.result_hash = nil
	delete(m.clearedFields, task.FieldResultHash)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.agent_type != nil {
		fields = append(fields, task.FieldAgentType)
	}
	if m.skill_name != nil {
		fields = append(fields, task.FieldSkillName)
	}
	if m.parameters != nil {
		fields = append(fields, task.FieldParameters)
	}
	if m.parameters_hash != nil {
		fields = append(fields, task.FieldParametersHash)
	}
	if m.workflow_id != nil {
		fields = append(fields, task.FieldWorkflowID)
	}
	if m.idempotency_key != nil {
		fields = append(fields, task.FieldIdempotencyKey)
	}
	if m.correlation_id != nil {
		fields = append(fields, task.FieldCorrelationID)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, task.FieldMaxRetries)
	}
	if m.next_retry_at != nil {
		fields = append(fields, task.FieldNextRetryAt)
	}
	if m.lock_token != nil {
		fields = append(fields, task.FieldLockToken)
	}
	if m.lock_expires_at != nil {
		fields = append(fields, task.FieldLockExpiresAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.result_data != nil {
		fields = append(fields, task.FieldResultData)
	}
	if m.result_hash != nil {
		fields = append(fields, task.FieldResultHash)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldAgentType:
		return m.AgentType()
	case task.FieldSkillName:
		return m.SkillName()
	case task.FieldParameters:
		return m.Parameters()
	case task.FieldParametersHash:
		return m.ParametersHash()
	case task.FieldWorkflowID:
		return m.WorkflowID()
	case task.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case task.FieldCorrelationID:
		return m.CorrelationID()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldStatus:
		return m.Status()
	case task.FieldRetryCount:
		return m.RetryCount()
	case task.FieldMaxRetries:
		return m.MaxRetries()
	case task.FieldNextRetryAt:
		return m.NextRetryAt()
	case task.FieldLockToken:
		return m.LockToken()
	case task.FieldLockExpiresAt:
		return m.LockExpiresAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldResultData:
		return m.ResultData()
	case task.FieldResultHash:
		return m.ResultHash()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldAgentType:
		return m.OldAgentType(ctx)
	case task.FieldSkillName:
		return m.OldSkillName(ctx)
	case task.FieldParameters:
		return m.OldParameters(ctx)
	case task.FieldParametersHash:
		return m.OldParametersHash(ctx)
	case task.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case task.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case task.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case task.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case task.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case task.FieldLockToken:
		return m.OldLockToken(ctx)
	case task.FieldLockExpiresAt:
		return m.OldLockExpiresAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldResultData:
		return m.OldResultData(ctx)
	case task.FieldResultHash:
		return m.OldResultHash(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case task.FieldSkillName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillName(v)
		return nil
	case task.FieldParameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case task.FieldParametersHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParametersHash(v)
		return nil
	case task.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case task.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case task.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case task.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case task.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case task.FieldLockToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockToken(v)
		return nil
	case task.FieldLockExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockExpiresAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldResultData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultData(v)
		return nil
	case task.FieldResultHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultHash(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.addretry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, task.FieldMaxRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPriority:
		return m.AddedPriority()
	case task.FieldRetryCount:
		return m.AddedRetryCount()
	case task.FieldMaxRetries:
		return m.AddedMaxRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case task.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldParameters) {
		fields = append(fields, task.FieldParameters)
	}
	if m.FieldCleared(task.FieldWorkflowID) {
		fields = append(fields, task.FieldWorkflowID)
	}
	if m.FieldCleared(task.FieldIdempotencyKey) {
		fields = append(fields, task.FieldIdempotencyKey)
	}
	if m.FieldCleared(task.FieldCorrelationID) {
		fields = append(fields, task.FieldCorrelationID)
	}
	if m.FieldCleared(task.FieldNextRetryAt) {
		fields = append(fields, task.FieldNextRetryAt)
	}
	if m.FieldCleared(task.FieldLockToken) {
		fields = append(fields, task.FieldLockToken)
	}
	if m.FieldCleared(task.FieldLockExpiresAt) {
		fields = append(fields, task.FieldLockExpiresAt)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldResultData) {
		fields = append(fields, task.FieldResultData)
	}
	if m.FieldCleared(task.FieldResultHash) {
		fields = append(fields, task.FieldResultHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldParameters:
		m.ClearParameters()
		return nil
	case task.FieldWorkflowID:
		m.ClearWorkflowID()
		return nil
	case task.FieldIdempotencyKey:
		m.ClearIdempotencyKey()
		return nil
	case task.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	case task.FieldNextRetryAt:
		m.ClearNextRetryAt()
		return nil
	case task.FieldLockToken:
		m.ClearLockToken()
		return nil
	case task.FieldLockExpiresAt:
		m.ClearLockExpiresAt()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldResultData:
		m.ClearResultData()
		return nil
	case task.FieldResultHash:
		m.ClearResultHash()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldAgentType:
		m.ResetAgentType()
		return nil
	case task.FieldSkillName:
		m.ResetSkillName()
		return nil
	case task.FieldParameters:
		m.ResetParameters()
		return nil
	case task.FieldParametersHash:
		m.ResetParametersHash()
		return nil
	case task.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case task.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case task.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case task.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case task.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case task.FieldLockToken:
		m.ResetLockToken()
		return nil
	case task.FieldLockExpiresAt:
		m.ResetLockExpiresAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldResultData:
		m.ResetResultData()
		return nil
	case task.FieldResultHash:
		m.ResetResultHash()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskRecoveryMutation represents an operation that mutates the TaskRecovery nodes in the graph.
type TaskRecoveryMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	original_task_id         *string
	recovery_strategy        *taskrecovery.RecoveryStrategy
	recovery_status          *taskrecovery.RecoveryStatus
	recovery_attempt         *int
	addrecovery_attempt      *int
	max_recovery_attempts    *int
	addmax_recovery_attempts *int
	checkpoint_data          *map[string]interface{}
	failure_reason           *string
	recovery_started_at      *time.Time
	recovery_completed_at    *time.Time
	recovery_error           *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*TaskRecovery, error)
	predicates               []predicate.TaskRecovery
}

var _ ent.Mutation = (*TaskRecoveryMutation)(nil)

// taskrecoveryOption allows management of the mutation configuration using functional options.
type taskrecoveryOption func(*TaskRecoveryMutation)

// newTaskRecoveryMutation creates new mutation for the TaskRecovery entity.
func newTaskRecoveryMutation(c config, op Op, opts ...taskrecoveryOption) *TaskRecoveryMutation {
	m := &TaskRecoveryMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskRecovery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskRecoveryID sets the ID field of the mutation.
func withTaskRecoveryID(id string) taskrecoveryOption {
	return func(m *TaskRecoveryMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskRecovery
		)
		m.oldValue = func(ctx context.Context) (*TaskRecovery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskRecovery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskRecovery sets the old TaskRecovery of the mutation.
func withTaskRecovery(node *TaskRecovery) taskrecoveryOption {
	return func(m *TaskRecoveryMutation) {
		m.oldValue = func(context.Context) (*TaskRecovery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskRecoveryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskRecoveryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskRecovery entities.
func (m *TaskRecoveryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskRecoveryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskRecoveryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskRecovery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOriginalTaskID sets the "original_task_id" field.
func (m *TaskRecoveryMutation) SetOriginalTaskID(s string) {
	m.original_task_id = &s
}

// OriginalTaskID returns the value of the "original_task_id" field in the mutation.
func (m *TaskRecoveryMutation) OriginalTaskID() (r string, exists bool) {
	v := m.original_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalTaskID returns the old "original_task_id" field's value of the TaskRecovery entity.
// If the TaskRecovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecoveryMutation) OldOriginalTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalTaskID: %w", err)
	}
	return oldValue.OriginalTaskID, nil
}

// ResetOriginalTaskID resets all changes to the "original_task_id" field.
func (m *TaskRecoveryMutation) ResetOriginalTaskID() {
	m.original_task_id = nil
}

// SetRecoveryStrategy sets the "recovery_strategy" field.
func (m *TaskRecoveryMutation) SetRecoveryStrategy(ts taskrecovery.RecoveryStrategy) {
	m.recovery_strategy = &ts
}

// RecoveryStrategy returns the value of the "recovery_strategy" field in the mutation.
func (m *TaskRecoveryMutation) RecoveryStrategy() (r taskrecovery.RecoveryStrategy, exists bool) {
	v := m.recovery_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryStrategy returns the old "recovery_strategy" field's value of the TaskRecovery entity.
// If the TaskRecovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecoveryMutation) OldRecoveryStrategy(ctx context.Context) (v taskrecovery.RecoveryStrategy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryStrategy: %w", err)
	}
	return oldValue.RecoveryStrategy, nil
}

// ResetRecoveryStrategy resets all changes to the "recovery_strategy" field.
func (m *TaskRecoveryMutation) ResetRecoveryStrategy() {
	m.recovery_strategy = nil
}

// SetRecoveryStatus sets the "recovery_status" field.
func (m *TaskRecoveryMutation) SetRecoveryStatus(ts taskrecovery.RecoveryStatus) {
	m.recovery_status = &ts
}

// RecoveryStatus returns the value of the "recovery_status" field in the mutation.
func (m *TaskRecoveryMutation) RecoveryStatus() (r taskrecovery.RecoveryStatus, exists bool) {
	v := m.recovery_status
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryStatus returns the old "recovery_status" field's value of the TaskRecovery entity.
// If the TaskRecovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecoveryMutation) OldRecoveryStatus(ctx context.Context) (v taskrecovery.RecoveryStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryStatus: %w", err)
	}
	return oldValue.RecoveryStatus, nil
}

// ResetRecoveryStatus resets all changes to the "recovery_status" field.
func (m *TaskRecoveryMutation) ResetRecoveryStatus() {
	m.recovery_status = nil
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (m *TaskRecoveryMutation) SetRecoveryAttempt(i int) {
	m.recovery_attempt = &i
	m.addrecovery_attempt = nil
}

// RecoveryAttempt returns the value of the "recovery_attempt" field in the mutation.
func (m *TaskRecoveryMutation) RecoveryAttempt() (r int, exists bool) {
	v := m.recovery_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryAttempt returns the old "recovery_attempt" field's value of the TaskRecovery entity.
// If the TaskRecovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecoveryMutation) OldRecoveryAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryAttempt: %w", err)
	}
	return oldValue.RecoveryAttempt, nil
}

// AddRecoveryAttempt adds i to the "recovery_attempt" field.
func (m *TaskRecoveryMutation) AddRecoveryAttempt(i int) {
	if m.addrecovery_attempt != nil {
		*m.addrecovery_attempt += i
	} else {
		m.addrecovery_attempt = &i
	}
}

// AddedRecoveryAttempt returns the value that was added to the "recovery_attempt" field in this mutation.
func (m *TaskRecoveryMutation) AddedRecoveryAttempt() (r int, exists bool) {
	v := m.addrecovery_attempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecoveryAttempt resets all changes to the "recovery_attempt" field.
func (m *TaskRecoveryMutation) ResetRecoveryAttempt() {
	m.recovery_attempt = nil
	m.addrecovery_attempt = nil
}

// SetMaxRecoveryAttempts sets the "max_recovery_attempts" field.
func (m *TaskRecoveryMutation) SetMaxRecoveryAttempts(i int) {
	m.max_recovery_attempts = &i
	m.addmax_recovery_attempts = nil
}

// MaxRecoveryAttempts returns the value of the "max_recovery_attempts" field in the mutation.
func (m *TaskRecoveryMutation) MaxRecoveryAttempts() (r int, exists bool) {
	v := m.max_recovery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRecoveryAttempts returns the old "max_recovery_attempts" field's value of the TaskRecovery entity.
// If the TaskRecovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecoveryMutation) OldMaxRecoveryAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRecoveryAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRecoveryAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRecoveryAttempts: %w", err)
	}
	return oldValue.MaxRecoveryAttempts, nil
}

// AddMaxRecoveryAttempts adds i to the "max_recovery_attempts" field.
func (m *TaskRecoveryMutation) AddMaxRecoveryAttempts(i int) {
	if m.addmax_recovery_attempts != nil {
		*m.addmax_recovery_attempts += i
	} else {
		m.addmax_recovery_attempts = &i
	}
}

// AddedMaxRecoveryAttempts returns the value that was added to the "max_recovery_attempts" field in this mutation.
func (m *TaskRecoveryMutation) AddedMaxRecoveryAttempts() (r int, exists bool) {
	v := m.addmax_recovery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRecoveryAttempts resets all changes to the "max_recovery_attempts" field.
func (m *TaskRecoveryMutation) ResetMaxRecoveryAttempts() {
	m.max_recovery_attempts = nil
	m.addmax_recovery_attempts = nil
}

// SetCheckpointData sets the "checkpoint_data" field.
func (m *TaskRecoveryMutation) SetCheckpointData(value map[string]interface{}) {
	m.checkpoint_data = &value
}

// CheckpointData returns the value of the "checkpoint_data" field in the mutation.
func (m *TaskRecoveryMutation) CheckpointData() (r map[string]interface{}, exists bool) {
	v := m.checkpoint_data
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointData returns the old "checkpoint_data" field's value of the TaskRecovery entity.
// If the TaskRecovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecoveryMutation) OldCheckpointData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointData: %w", err)
	}
	return oldValue.CheckpointData, nil
}

// ClearCheckpointData clears the value of the "checkpoint_data" field.
func (m *TaskRecoveryMutation) ClearCheckpointData() {
	m.checkpoint_data = nil
	m.clearedFields[taskrecovery.FieldCheckpointData] = struct{}{}
}

// CheckpointDataCleared returns if the "checkpoint_data" field was cleared in this mutation.
func (m *TaskRecoveryMutation) CheckpointDataCleared() bool {
	_, ok := m.clearedFields[taskrecovery.FieldCheckpointData]
	return ok
}

// ResetCheckpointData resets all changes to the "checkpoint_data" field.
func (m *TaskRecoveryMutation) ResetCheckpointData() {
	m.checkpoint_data = nil
	delete(m.clearedFields, taskrecovery.FieldCheckpointData)
}

// SetFailureReason sets the "failure_reason" field.
func (m *TaskRecoveryMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *TaskRecoveryMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the TaskRecovery entity.
// If the TaskRecovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecoveryMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *TaskRecoveryMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[taskrecovery.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *TaskRecoveryMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[taskrecovery.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *TaskRecoveryMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, taskrecovery.FieldFailureReason)
}

// SetRecoveryStartedAt sets the "recovery_started_at" field.
func (m *TaskRecoveryMutation) SetRecoveryStartedAt(t time.Time) {
	m.recovery_started_at = &t
}

// RecoveryStartedAt returns the value of the "recovery_started_at" field in the mutation.
func (m *TaskRecoveryMutation) RecoveryStartedAt() (r time.Time, exists bool) {
	v := m.recovery_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryStartedAt returns the old "recovery_started_at" field's value of the TaskRecovery entity.
// If the TaskRecovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecoveryMutation) OldRecoveryStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryStartedAt: %w", err)
	}
	return oldValue.RecoveryStartedAt, nil
}

// ClearRecoveryStartedAt clears the value of the "recovery_started_at" field.
func (m *TaskRecoveryMutation) ClearRecoveryStartedAt() {
	m.recovery_started_at = nil
	m.clearedFields[taskrecovery.FieldRecoveryStartedAt] = struct{}{}
}

// RecoveryStartedAtCleared returns if the "recovery_started_at" field was cleared in this mutation.
func (m *TaskRecoveryMutation) RecoveryStartedAtCleared() bool {
	_, ok := m.clearedFields[taskrecovery.FieldRecoveryStartedAt]
	return ok
}

// ResetRecoveryStartedAt resets all changes to the "recovery_started_at" field.
func (m *TaskRecoveryMutation) ResetRecoveryStartedAt() {
	m.recovery_started_at = nil
	delete(m.clearedFields, taskrecovery.FieldRecoveryStartedAt)
}

// SetRecoveryCompletedAt sets the "recovery_completed_at" field.
func (m *TaskRecoveryMutation) SetRecoveryCompletedAt(t time.Time) {
	m.recovery_completed_at = &t
}

// RecoveryCompletedAt returns the value of the "recovery_completed_at" field in the mutation.
func (m *TaskRecoveryMutation) RecoveryCompletedAt() (r time.Time, exists bool) {
	v := m.recovery_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryCompletedAt returns the old "recovery_completed_at" field's value of the TaskRecovery entity.
// If the TaskRecovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecoveryMutation) OldRecoveryCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryCompletedAt: %w", err)
	}
	return oldValue.RecoveryCompletedAt, nil
}

// ClearRecoveryCompletedAt clears the value of the "recovery_completed_at" field.
func (m *TaskRecoveryMutation) ClearRecoveryCompletedAt() {
	m.recovery_completed_at = nil
	m.clearedFields[taskrecovery.FieldRecoveryCompletedAt] = struct{}{}
}

// RecoveryCompletedAtCleared returns if the "recovery_completed_at" field was cleared in this mutation.
func (m *TaskRecoveryMutation) RecoveryCompletedAtCleared() bool {
	_, ok := m.clearedFields[taskrecovery.FieldRecoveryCompletedAt]
	return ok
}

// ResetRecoveryCompletedAt resets all changes to the "recovery_completed_at" field.
func (m *TaskRecoveryMutation) ResetRecoveryCompletedAt() {
	m.recovery_completed_at = nil
	delete(m.clearedFields, taskrecovery.FieldRecoveryCompletedAt)
}

// SetRecoveryError sets the "recovery_error" field.
func (m *TaskRecoveryMutation) SetRecoveryError(s string) {
	m.recovery_error = &s
}

// RecoveryError returns the value of the "recovery_error" field in the mutation.
func (m *TaskRecoveryMutation) RecoveryError() (r string, exists bool) {
	v := m.recovery_error
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryError returns the old "recovery_error" field's value of the TaskRecovery entity.
// If the TaskRecovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecoveryMutation) OldRecoveryError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryError: %w", err)
	}
	return oldValue.RecoveryError, nil
}

// ClearRecoveryError clears the value of the "recovery_error" field.
func (m *TaskRecoveryMutation) ClearRecoveryError() {
	m.recovery_error = nil
	m.clearedFields[taskrecovery.FieldRecoveryError] = struct{}{}
}

// RecoveryErrorCleared returns if the "recovery_error" field was cleared in this mutation.
func (m *TaskRecoveryMutation) RecoveryErrorCleared() bool {
	_, ok := m.clearedFields[taskrecovery.FieldRecoveryError]
	return ok
}

// ResetRecoveryError resets all changes to the "recovery_error" field.
func (m *TaskRecoveryMutation) ResetRecoveryError() {
	m.recovery_error = nil
	delete(m.clearedFields, taskrecovery.FieldRecoveryError)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskRecoveryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskRecoveryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskRecovery entity.
// If the TaskRecovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecoveryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskRecoveryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskRecoveryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskRecoveryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TaskRecovery entity.
// If the TaskRecovery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecoveryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskRecoveryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TaskRecoveryMutation builder.
func (m *TaskRecoveryMutation) Where(ps ...predicate.TaskRecovery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskRecoveryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskRecoveryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskRecovery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskRecoveryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskRecoveryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskRecovery).
func (m *TaskRecoveryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskRecoveryMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.original_task_id != nil {
		fields = append(fields, taskrecovery.FieldOriginalTaskID)
	}
	if m.recovery_strategy != nil {
		fields = append(fields, taskrecovery.FieldRecoveryStrategy)
	}
	if m.recovery_status != nil {
		fields = append(fields, taskrecovery.FieldRecoveryStatus)
	}
	if m.recovery_attempt != nil {
		fields = append(fields, taskrecovery.FieldRecoveryAttempt)
	}
	if m.max_recovery_attempts != nil {
		fields = append(fields, taskrecovery.FieldMaxRecoveryAttempts)
	}
	if m.checkpoint_data != nil {
		fields = append(fields, taskrecovery.FieldCheckpointData)
	}
	if m.failure_reason != nil {
		fields = append(fields, taskrecovery.FieldFailureReason)
	}
	if m.recovery_started_at != nil {
		fields = append(fields, taskrecovery.FieldRecoveryStartedAt)
	}
	if m.recovery_completed_at != nil {
		fields = append(fields, taskrecovery.FieldRecoveryCompletedAt)
	}
	if m.recovery_error != nil {
		fields = append(fields, taskrecovery.FieldRecoveryError)
	}
	if m.created_at != nil {
		fields = append(fields, taskrecovery.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, taskrecovery.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskRecoveryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskrecovery.FieldOriginalTaskID:
		return m.OriginalTaskID()
	case taskrecovery.FieldRecoveryStrategy:
		return m.RecoveryStrategy()
	case taskrecovery.FieldRecoveryStatus:
		return m.RecoveryStatus()
	case taskrecovery.FieldRecoveryAttempt:
		return m.RecoveryAttempt()
	case taskrecovery.FieldMaxRecoveryAttempts:
		return m.MaxRecoveryAttempts()
	case taskrecovery.FieldCheckpointData:
		return m.CheckpointData()
	case taskrecovery.FieldFailureReason:
		return m.FailureReason()
	case taskrecovery.FieldRecoveryStartedAt:
		return m.RecoveryStartedAt()
	case taskrecovery.FieldRecoveryCompletedAt:
		return m.RecoveryCompletedAt()
	case taskrecovery.FieldRecoveryError:
		return m.RecoveryError()
	case taskrecovery.FieldCreatedAt:
		return m.CreatedAt()
	case taskrecovery.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskRecoveryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskrecovery.FieldOriginalTaskID:
		return m.OldOriginalTaskID(ctx)
	case taskrecovery.FieldRecoveryStrategy:
		return m.OldRecoveryStrategy(ctx)
	case taskrecovery.FieldRecoveryStatus:
		return m.OldRecoveryStatus(ctx)
	case taskrecovery.FieldRecoveryAttempt:
		return m.OldRecoveryAttempt(ctx)
	case taskrecovery.FieldMaxRecoveryAttempts:
		return m.OldMaxRecoveryAttempts(ctx)
	case taskrecovery.FieldCheckpointData:
		return m.OldCheckpointData(ctx)
	case taskrecovery.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case taskrecovery.FieldRecoveryStartedAt:
		return m.OldRecoveryStartedAt(ctx)
	case taskrecovery.FieldRecoveryCompletedAt:
		return m.OldRecoveryCompletedAt(ctx)
	case taskrecovery.FieldRecoveryError:
		return m.OldRecoveryError(ctx)
	case taskrecovery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case taskrecovery.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskRecovery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskRecoveryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskrecovery.FieldOriginalTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalTaskID(v)
		return nil
	case taskrecovery.FieldRecoveryStrategy:
		v, ok := value.(taskrecovery.RecoveryStrategy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryStrategy(v)
		return nil
	case taskrecovery.FieldRecoveryStatus:
		v, ok := value.(taskrecovery.RecoveryStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryStatus(v)
		return nil
	case taskrecovery.FieldRecoveryAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryAttempt(v)
		return nil
	case taskrecovery.FieldMaxRecoveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRecoveryAttempts(v)
		return nil
	case taskrecovery.FieldCheckpointData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointData(v)
		return nil
	case taskrecovery.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case taskrecovery.FieldRecoveryStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryStartedAt(v)
		return nil
	case taskrecovery.FieldRecoveryCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryCompletedAt(v)
		return nil
	case taskrecovery.FieldRecoveryError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryError(v)
		return nil
	case taskrecovery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case taskrecovery.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskRecovery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskRecoveryMutation) AddedFields() []string {
	var fields []string
	if m.addrecovery_attempt != nil {
		fields = append(fields, taskrecovery.FieldRecoveryAttempt)
	}
	if m.addmax_recovery_attempts != nil {
		fields = append(fields, taskrecovery.FieldMaxRecoveryAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskRecoveryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskrecovery.FieldRecoveryAttempt:
		return m.AddedRecoveryAttempt()
	case taskrecovery.FieldMaxRecoveryAttempts:
		return m.AddedMaxRecoveryAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskRecoveryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskrecovery.FieldRecoveryAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecoveryAttempt(v)
		return nil
	case taskrecovery.FieldMaxRecoveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRecoveryAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown TaskRecovery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskRecoveryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskrecovery.FieldCheckpointData) {
		fields = append(fields, taskrecovery.FieldCheckpointData)
	}
	if m.FieldCleared(taskrecovery.FieldFailureReason) {
		fields = append(fields, taskrecovery.FieldFailureReason)
	}
	if m.FieldCleared(taskrecovery.FieldRecoveryStartedAt) {
		fields = append(fields, taskrecovery.FieldRecoveryStartedAt)
	}
	if m.FieldCleared(taskrecovery.FieldRecoveryCompletedAt) {
		fields = append(fields, taskrecovery.FieldRecoveryCompletedAt)
	}
	if m.FieldCleared(taskrecovery.FieldRecoveryError) {
		fields = append(fields, taskrecovery.FieldRecoveryError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskRecoveryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskRecoveryMutation) ClearField(name string) error {
	switch name {
	case taskrecovery.FieldCheckpointData:
		m.ClearCheckpointData()
		return nil
	case taskrecovery.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case taskrecovery.FieldRecoveryStartedAt:
		m.ClearRecoveryStartedAt()
		return nil
	case taskrecovery.FieldRecoveryCompletedAt:
		m.ClearRecoveryCompletedAt()
		return nil
	case taskrecovery.FieldRecoveryError:
		m.ClearRecoveryError()
		return nil
	}
	return fmt.Errorf("unknown TaskRecovery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskRecoveryMutation) ResetField(name string) error {
	switch name {
	case taskrecovery.FieldOriginalTaskID:
		m.ResetOriginalTaskID()
		return nil
	case taskrecovery.FieldRecoveryStrategy:
		m.ResetRecoveryStrategy()
		return nil
	case taskrecovery.FieldRecoveryStatus:
		m.ResetRecoveryStatus()
		return nil
	case taskrecovery.FieldRecoveryAttempt:
		m.ResetRecoveryAttempt()
		return nil
	case taskrecovery.FieldMaxRecoveryAttempts:
		m.ResetMaxRecoveryAttempts()
		return nil
	case taskrecovery.FieldCheckpointData:
		m.ResetCheckpointData()
		return nil
	case taskrecovery.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case taskrecovery.FieldRecoveryStartedAt:
		m.ResetRecoveryStartedAt()
		return nil
	case taskrecovery.FieldRecoveryCompletedAt:
		m.ResetRecoveryCompletedAt()
		return nil
	case taskrecovery.FieldRecoveryError:
		m.ResetRecoveryError()
		return nil
	case taskrecovery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case taskrecovery.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskRecovery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskRecoveryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskRecoveryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskRecoveryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskRecoveryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskRecoveryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskRecoveryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskRecoveryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskRecovery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskRecoveryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskRecovery edge %s", name)
}

// WorkflowMutation represents an operation that mutates the Workflow nodes in the graph.
type WorkflowMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	workflow_type         *string
	status                *workflow.Status
	_config               *map[string]interface{}
	schedule              *string
	last_run              *time.Time
	next_run              *time.Time
	run_count             *int
	addrun_count          *int
	error_count           *int
	adderror_count        *int
	posts_processed       *int
	addposts_processed    *int
	comments_processed    *int
	addcomments_processed *int
	relevant_items        *int
	addrelevant_items     *int
	summaries_created     *int
	addsummaries_created  *int
	alerts_sent           *int
	addalerts_sent        *int
	error_message         *string
	started_at            *time.Time
	completed_at          *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Workflow, error)
	predicates            []predicate.Workflow
}

var _ ent.Mutation = (*WorkflowMutation)(nil)

// workflowOption allows management of the mutation configuration using functional options.
type workflowOption func(*WorkflowMutation)

// newWorkflowMutation creates new mutation for the Workflow entity.
func newWorkflowMutation(c config, op Op, opts ...workflowOption) *WorkflowMutation {
	m := &WorkflowMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowID sets the ID field of the mutation.
func withWorkflowID(id string) workflowOption {
	return func(m *WorkflowMutation) {
		var (
			err   error
			once  sync.Once
			value *Workflow
		)
		m.oldValue = func(ctx context.Context) (*Workflow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workflow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflow sets the old Workflow of the mutation.
func withWorkflow(node *Workflow) workflowOption {
	return func(m *WorkflowMutation) {
		m.oldValue = func(context.Context) (*Workflow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workflow entities.
func (m *WorkflowMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workflow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowType sets the "workflow_type" field.
func (m *WorkflowMutation) SetWorkflowType(s string) {
	m.workflow_type = &s
}

// WorkflowType returns the value of the "workflow_type" field in the mutation.
func (m *WorkflowMutation) WorkflowType() (r string, exists bool) {
	v := m.workflow_type
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowType returns the old "workflow_type" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldWorkflowType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowType: %w", err)
	}
	return oldValue.WorkflowType, nil
}

// ResetWorkflowType resets all changes to the "workflow_type" field.
func (m *WorkflowMutation) ResetWorkflowType() {
	m.workflow_type = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowMutation) SetStatus(w workflow.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowMutation) Status() (r workflow.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldStatus(ctx context.Context) (v workflow.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowMutation) ResetStatus() {
	m.status = nil
}

// SetConfig sets the "config" field.
func (m *WorkflowMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *WorkflowMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *WorkflowMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[workflow.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *WorkflowMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[workflow.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *WorkflowMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, workflow.FieldConfig)
}

// SetSchedule sets the "schedule" field.
func (m *WorkflowMutation) SetSchedule(s string) {
	m.schedule = &s
}

// Schedule returns the value of the "schedule" field in the mutation.
func (m *WorkflowMutation) Schedule() (r string, exists bool) {
	v := m.schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldSchedule returns the old "schedule" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldSchedule(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchedule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchedule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchedule: %w", err)
	}
	return oldValue.Schedule, nil
}

// ClearSchedule clears the value of the "schedule" field.
func (m *WorkflowMutation) ClearSchedule() {
	m.schedule = nil
	m.clearedFields[workflow.FieldSchedule] = struct{}{}
}

// ScheduleCleared returns if the "schedule" field was cleared in this mutation.
func (m *WorkflowMutation) ScheduleCleared() bool {
	_, ok := m.clearedFields[workflow.FieldSchedule]
	return ok
}

// ResetSchedule resets all changes to the "schedule" field.
func (m *WorkflowMutation) ResetSchedule() {
	m.schedule = nil
	delete(m.clearedFields, workflow.FieldSchedule)
}

// SetLastRun sets the "last_run" field.
func (m *WorkflowMutation) SetLastRun(t time.Time) {
	m.last_run = &t
}

// LastRun returns the value of the "last_run" field in the mutation.
func (m *WorkflowMutation) LastRun() (r time.Time, exists bool) {
	v := m.last_run
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRun returns the old "last_run" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldLastRun(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRun is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRun requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRun: %w", err)
	}
	return oldValue.LastRun, nil
}

// ClearLastRun clears the value of the "last_run" field.
func (m *WorkflowMutation) ClearLastRun() {
	m.last_run = nil
	m.clearedFields[workflow.FieldLastRun] = struct{}{}
}

// LastRunCleared returns if the "last_run" field was cleared in this mutation.
func (m *WorkflowMutation) LastRunCleared() bool {
	_, ok := m.clearedFields[workflow.FieldLastRun]
	return ok
}

// ResetLastRun resets all changes to the "last_run" field.
func (m *WorkflowMutation) ResetLastRun() {
	m.last_run = nil
	delete(m.clearedFields, workflow.FieldLastRun)
}

// SetNextRun sets the "next_run" field.
func (m *WorkflowMutation) SetNextRun(t time.Time) {
	m.next_run = &t
}

// NextRun returns the value of the "next_run" field in the mutation.
func (m *WorkflowMutation) NextRun() (r time.Time, exists bool) {
	v := m.next_run
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRun returns the old "next_run" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldNextRun(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRun is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRun requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRun: %w", err)
	}
	return oldValue.NextRun, nil
}

// ClearNextRun clears the value of the "next_run" field.
func (m *WorkflowMutation) ClearNextRun() {
	m.next_run = nil
	m.clearedFields[workflow.FieldNextRun] = struct{}{}
}

// NextRunCleared returns if the "next_run" field was cleared in this mutation.
func (m *WorkflowMutation) NextRunCleared() bool {
	_, ok := m.clearedFields[workflow.FieldNextRun]
	return ok
}

// ResetNextRun resets all changes to the "next_run" field.
func (m *WorkflowMutation) ResetNextRun() {
	m.next_run = nil
	delete(m.clearedFields, workflow.FieldNextRun)
}

// SetRunCount sets the "run_count" field.
func (m *WorkflowMutation) SetRunCount(i int) {
	m.run_count = &i
	m.addrun_count = nil
}

// RunCount returns the value of the "run_count" field in the mutation.
func (m *WorkflowMutation) RunCount() (r int, exists bool) {
	v := m.run_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRunCount returns the old "run_count" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldRunCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunCount: %w", err)
	}
	return oldValue.RunCount, nil
}

// AddRunCount adds i to the "run_count" field.
func (m *WorkflowMutation) AddRunCount(i int) {
	if m.addrun_count != nil {
		*m.addrun_count += i
	} else {
		m.addrun_count = &i
	}
}

// AddedRunCount returns the value that was added to the "run_count" field in this mutation.
func (m *WorkflowMutation) AddedRunCount() (r int, exists bool) {
	v := m.addrun_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRunCount resets all changes to the "run_count" field.
func (m *WorkflowMutation) ResetRunCount() {
	m.run_count = nil
	m.addrun_count = nil
}

// SetErrorCount sets the "error_count" field.
func (m *WorkflowMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *WorkflowMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *WorkflowMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *WorkflowMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *WorkflowMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetPostsProcessed sets the "posts_processed" field.
func (m *WorkflowMutation) SetPostsProcessed(i int) {
	m.posts_processed = &i
	m.addposts_processed = nil
}

// PostsProcessed returns the value of the "posts_processed" field in the mutation.
func (m *WorkflowMutation) PostsProcessed() (r int, exists bool) {
	v := m.posts_processed
	if v == nil {
		return
	}
	return *v, true
}

// OldPostsProcessed returns the old "posts_processed" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldPostsProcessed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostsProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostsProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostsProcessed: %w", err)
	}
	return oldValue.PostsProcessed, nil
}

// AddPostsProcessed adds i to the "posts_processed" field.
func (m *WorkflowMutation) AddPostsProcessed(i int) {
	if m.addposts_processed != nil {
		*m.addposts_processed += i
	} else {
		m.addposts_processed = &i
	}
}

// AddedPostsProcessed returns the value that was added to the "posts_processed" field in this mutation.
func (m *WorkflowMutation) AddedPostsProcessed() (r int, exists bool) {
	v := m.addposts_processed
	if v == nil {
		return
	}
	return *v, true
}

// ResetPostsProcessed resets all changes to the "posts_processed" field.
func (m *WorkflowMutation) ResetPostsProcessed() {
	m.posts_processed = nil
	m.addposts_processed = nil
}

// SetCommentsProcessed sets the "comments_processed" field.
func (m *WorkflowMutation) SetCommentsProcessed(i int) {
	m.comments_processed = &i
	m.addcomments_processed = nil
}

// CommentsProcessed returns the value of the "comments_processed" field in the mutation.
func (m *WorkflowMutation) CommentsProcessed() (r int, exists bool) {
	v := m.comments_processed
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentsProcessed returns the old "comments_processed" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCommentsProcessed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentsProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentsProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentsProcessed: %w", err)
	}
	return oldValue.CommentsProcessed, nil
}

// AddCommentsProcessed adds i to the "comments_processed" field.
func (m *WorkflowMutation) AddCommentsProcessed(i int) {
	if m.addcomments_processed != nil {
		*m.addcomments_processed += i
	} else {
		m.addcomments_processed = &i
	}
}

// AddedCommentsProcessed returns the value that was added to the "comments_processed" field in this mutation.
func (m *WorkflowMutation) AddedCommentsProcessed() (r int, exists bool) {
	v := m.addcomments_processed
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommentsProcessed resets all changes to the "comments_processed" field.
func (m *WorkflowMutation) ResetCommentsProcessed() {
	m.comments_processed = nil
	m.addcomments_processed = nil
}

// SetRelevantItems sets the "relevant_items" field.
func (m *WorkflowMutation) SetRelevantItems(i int) {
	m.relevant_items = &i
	m.addrelevant_items = nil
}

// RelevantItems returns the value of the "relevant_items" field in the mutation.
func (m *WorkflowMutation) RelevantItems() (r int, exists bool) {
	v := m.relevant_items
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevantItems returns the old "relevant_items" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldRelevantItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevantItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevantItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevantItems: %w", err)
	}
	return oldValue.RelevantItems, nil
}

// AddRelevantItems adds i to the "relevant_items" field.
func (m *WorkflowMutation) AddRelevantItems(i int) {
	if m.addrelevant_items != nil {
		*m.addrelevant_items += i
	} else {
		m.addrelevant_items = &i
	}
}

// AddedRelevantItems returns the value that was added to the "relevant_items" field in this mutation.
func (m *WorkflowMutation) AddedRelevantItems() (r int, exists bool) {
	v := m.addrelevant_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevantItems resets all changes to the "relevant_items" field.
func (m *WorkflowMutation) ResetRelevantItems() {
	m.relevant_items = nil
	m.addrelevant_items = nil
}

// SetSummariesCreated sets the "summaries_created" field.
func (m *WorkflowMutation) SetSummariesCreated(i int) {
	m.summaries_created = &i
	m.addsummaries_created = nil
}

// SummariesCreated returns the value of the "summaries_created" field in the mutation.
func (m *WorkflowMutation) SummariesCreated() (r int, exists bool) {
	v := m.summaries_created
	if v == nil {
		return
	}
	return *v, true
}

// OldSummariesCreated returns the old "summaries_created" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldSummariesCreated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummariesCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummariesCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummariesCreated: %w", err)
	}
	return oldValue.SummariesCreated, nil
}

// AddSummariesCreated adds i to the "summaries_created" field.
func (m *WorkflowMutation) AddSummariesCreated(i int) {
	if m.addsummaries_created != nil {
		*m.addsummaries_created += i
	} else {
		m.addsummaries_created = &i
	}
}

// AddedSummariesCreated returns the value that was added to the "summaries_created" field in this mutation.
func (m *WorkflowMutation) AddedSummariesCreated() (r int, exists bool) {
	v := m.addsummaries_created
	if v == nil {
		return
	}
	return *v, true
}

// ResetSummariesCreated resets all changes to the "summaries_created" field.
func (m *WorkflowMutation) ResetSummariesCreated() {
	m.summaries_created = nil
	m.addsummaries_created = nil
}

// SetAlertsSent sets the "alerts_sent" field.
func (m *WorkflowMutation) SetAlertsSent(i int) {
	m.alerts_sent = &i
	m.addalerts_sent = nil
}

// AlertsSent returns the value of the "alerts_sent" field in the mutation.
func (m *WorkflowMutation) AlertsSent() (r int, exists bool) {
	v := m.alerts_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertsSent returns the old "alerts_sent" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldAlertsSent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertsSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertsSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertsSent: %w", err)
	}
	return oldValue.AlertsSent, nil
}

// AddAlertsSent adds i to the "alerts_sent" field.
func (m *WorkflowMutation) AddAlertsSent(i int) {
	if m.addalerts_sent != nil {
		*m.addalerts_sent += i
	} else {
		m.addalerts_sent = &i
	}
}

// AddedAlertsSent returns the value that was added to the "alerts_sent" field in this mutation.
func (m *WorkflowMutation) AddedAlertsSent() (r int, exists bool) {
	v := m.addalerts_sent
	if v == nil {
		return
	}
	return *v, true
}

// ResetAlertsSent resets all changes to the "alerts_sent" field.
func (m *WorkflowMutation) ResetAlertsSent() {
	m.alerts_sent = nil
	m.addalerts_sent = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflow.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflow.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflow.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflow.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflow.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WorkflowMutation builder.
func (m *WorkflowMutation) Where(ps ...predicate.Workflow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workflow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workflow).
func (m *WorkflowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.workflow_type != nil {
		fields = append(fields, workflow.FieldWorkflowType)
	}
	if m.status != nil {
		fields = append(fields, workflow.FieldStatus)
	}
	if m._config != nil {
		fields = append(fields, workflow.FieldConfig)
	}
	if m.schedule != nil {
		fields = append(fields, workflow.FieldSchedule)
	}
	if m.last_run != nil {
		fields = append(fields, workflow.FieldLastRun)
	}
	if m.next_run != nil {
		fields = append(fields, workflow.FieldNextRun)
	}
	if m.run_count != nil {
		fields = append(fields, workflow.FieldRunCount)
	}
	if m.error_count != nil {
		fields = append(fields, workflow.FieldErrorCount)
	}
	if m.posts_processed != nil {
		fields = append(fields, workflow.FieldPostsProcessed)
	}
	if m.comments_processed != nil {
		fields = append(fields, workflow.FieldCommentsProcessed)
	}
	if m.relevant_items != nil {
		fields = append(fields, workflow.FieldRelevantItems)
	}
	if m.summaries_created != nil {
		fields = append(fields, workflow.FieldSummariesCreated)
	}
	if m.alerts_sent != nil {
		fields = append(fields, workflow.FieldAlertsSent)
	}
	if m.error_message != nil {
		fields = append(fields, workflow.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, workflow.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflow.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, workflow.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflow.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldWorkflowType:
		return m.WorkflowType()
	case workflow.FieldStatus:
		return m.Status()
	case workflow.FieldConfig:
		return m.Config()
	case workflow.FieldSchedule:
		return m.Schedule()
	case workflow.FieldLastRun:
		return m.LastRun()
	case workflow.FieldNextRun:
		return m.NextRun()
	case workflow.FieldRunCount:
		return m.RunCount()
	case workflow.FieldErrorCount:
		return m.ErrorCount()
	case workflow.FieldPostsProcessed:
		return m.PostsProcessed()
	case workflow.FieldCommentsProcessed:
		return m.CommentsProcessed()
	case workflow.FieldRelevantItems:
		return m.RelevantItems()
	case workflow.FieldSummariesCreated:
		return m.SummariesCreated()
	case workflow.FieldAlertsSent:
		return m.AlertsSent()
	case workflow.FieldErrorMessage:
		return m.ErrorMessage()
	case workflow.FieldStartedAt:
		return m.StartedAt()
	case workflow.FieldCompletedAt:
		return m.CompletedAt()
	case workflow.FieldCreatedAt:
		return m.CreatedAt()
	case workflow.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflow.FieldWorkflowType:
		return m.OldWorkflowType(ctx)
	case workflow.FieldStatus:
		return m.OldStatus(ctx)
	case workflow.FieldConfig:
		return m.OldConfig(ctx)
	case workflow.FieldSchedule:
		return m.OldSchedule(ctx)
	case workflow.FieldLastRun:
		return m.OldLastRun(ctx)
	case workflow.FieldNextRun:
		return m.OldNextRun(ctx)
	case workflow.FieldRunCount:
		return m.OldRunCount(ctx)
	case workflow.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case workflow.FieldPostsProcessed:
		return m.OldPostsProcessed(ctx)
	case workflow.FieldCommentsProcessed:
		return m.OldCommentsProcessed(ctx)
	case workflow.FieldRelevantItems:
		return m.OldRelevantItems(ctx)
	case workflow.FieldSummariesCreated:
		return m.OldSummariesCreated(ctx)
	case workflow.FieldAlertsSent:
		return m.OldAlertsSent(ctx)
	case workflow.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflow.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflow.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case workflow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflow.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workflow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldWorkflowType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowType(v)
		return nil
	case workflow.FieldStatus:
		v, ok := value.(workflow.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflow.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case workflow.FieldSchedule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchedule(v)
		return nil
	case workflow.FieldLastRun:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRun(v)
		return nil
	case workflow.FieldNextRun:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRun(v)
		return nil
	case workflow.FieldRunCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunCount(v)
		return nil
	case workflow.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case workflow.FieldPostsProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostsProcessed(v)
		return nil
	case workflow.FieldCommentsProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentsProcessed(v)
		return nil
	case workflow.FieldRelevantItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevantItems(v)
		return nil
	case workflow.FieldSummariesCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummariesCreated(v)
		return nil
	case workflow.FieldAlertsSent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertsSent(v)
		return nil
	case workflow.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflow.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflow.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case workflow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflow.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowMutation) AddedFields() []string {
	var fields []string
	if m.addrun_count != nil {
		fields = append(fields, workflow.FieldRunCount)
	}
	if m.adderror_count != nil {
		fields = append(fields, workflow.FieldErrorCount)
	}
	if m.addposts_processed != nil {
		fields = append(fields, workflow.FieldPostsProcessed)
	}
	if m.addcomments_processed != nil {
		fields = append(fields, workflow.FieldCommentsProcessed)
	}
	if m.addrelevant_items != nil {
		fields = append(fields, workflow.FieldRelevantItems)
	}
	if m.addsummaries_created != nil {
		fields = append(fields, workflow.FieldSummariesCreated)
	}
	if m.addalerts_sent != nil {
		fields = append(fields, workflow.FieldAlertsSent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldRunCount:
		return m.AddedRunCount()
	case workflow.FieldErrorCount:
		return m.AddedErrorCount()
	case workflow.FieldPostsProcessed:
		return m.AddedPostsProcessed()
	case workflow.FieldCommentsProcessed:
		return m.AddedCommentsProcessed()
	case workflow.FieldRelevantItems:
		return m.AddedRelevantItems()
	case workflow.FieldSummariesCreated:
		return m.AddedSummariesCreated()
	case workflow.FieldAlertsSent:
		return m.AddedAlertsSent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldRunCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRunCount(v)
		return nil
	case workflow.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	case workflow.FieldPostsProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPostsProcessed(v)
		return nil
	case workflow.FieldCommentsProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommentsProcessed(v)
		return nil
	case workflow.FieldRelevantItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevantItems(v)
		return nil
	case workflow.FieldSummariesCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSummariesCreated(v)
		return nil
	case workflow.FieldAlertsSent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAlertsSent(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflow.FieldConfig) {
		fields = append(fields, workflow.FieldConfig)
	}
	if m.FieldCleared(workflow.FieldSchedule) {
		fields = append(fields, workflow.FieldSchedule)
	}
	if m.FieldCleared(workflow.FieldLastRun) {
		fields = append(fields, workflow.FieldLastRun)
	}
	if m.FieldCleared(workflow.FieldNextRun) {
		fields = append(fields, workflow.FieldNextRun)
	}
	if m.FieldCleared(workflow.FieldErrorMessage) {
		fields = append(fields, workflow.FieldErrorMessage)
	}
	if m.FieldCleared(workflow.FieldCompletedAt) {
		fields = append(fields, workflow.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowMutation) ClearField(name string) error {
	switch name {
	case workflow.FieldConfig:
		m.ClearConfig()
		return nil
	case workflow.FieldSchedule:
		m.ClearSchedule()
		return nil
	case workflow.FieldLastRun:
		m.ClearLastRun()
		return nil
	case workflow.FieldNextRun:
		m.ClearNextRun()
		return nil
	case workflow.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflow.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowMutation) ResetField(name string) error {
	switch name {
	case workflow.FieldWorkflowType:
		m.ResetWorkflowType()
		return nil
	case workflow.FieldStatus:
		m.ResetStatus()
		return nil
	case workflow.FieldConfig:
		m.ResetConfig()
		return nil
	case workflow.FieldSchedule:
		m.ResetSchedule()
		return nil
	case workflow.FieldLastRun:
		m.ResetLastRun()
		return nil
	case workflow.FieldNextRun:
		m.ResetNextRun()
		return nil
	case workflow.FieldRunCount:
		m.ResetRunCount()
		return nil
	case workflow.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case workflow.FieldPostsProcessed:
		m.ResetPostsProcessed()
		return nil
	case workflow.FieldCommentsProcessed:
		m.ResetCommentsProcessed()
		return nil
	case workflow.FieldRelevantItems:
		m.ResetRelevantItems()
		return nil
	case workflow.FieldSummariesCreated:
		m.ResetSummariesCreated()
		return nil
	case workflow.FieldAlertsSent:
		m.ResetAlertsSent()
		return nil
	case workflow.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflow.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflow.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case workflow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflow.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Workflow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Workflow edge %s", name)
}
