// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/redscout/redscout/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/redscout/redscout/ent/agentstate"
	"github.com/redscout/redscout/ent/alertbatch"
	"github.com/redscout/redscout/ent/alertdelivery"
	"github.com/redscout/redscout/ent/contentdedup"
	"github.com/redscout/redscout/ent/task"
	"github.com/redscout/redscout/ent/taskrecovery"
	"github.com/redscout/redscout/ent/workflow"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentState is the client for interacting with the AgentState builders.
	AgentState *AgentStateClient
	// AlertBatch is the client for interacting with the AlertBatch builders.
	AlertBatch *AlertBatchClient
	// AlertDelivery is the client for interacting with the AlertDelivery builders.
	AlertDelivery *AlertDeliveryClient
	// ContentDedup is the client for interacting with the ContentDedup builders.
	ContentDedup *ContentDedupClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskRecovery is the client for interacting with the TaskRecovery builders.
	TaskRecovery *TaskRecoveryClient
	// Workflow is the client for interacting with the Workflow builders.
	Workflow *WorkflowClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentState = NewAgentStateClient(c.config)
	c.AlertBatch = NewAlertBatchClient(c.config)
	c.AlertDelivery = NewAlertDeliveryClient(c.config)
	c.ContentDedup = NewContentDedupClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskRecovery = NewTaskRecoveryClient(c.config)
	c.Workflow = NewWorkflowClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		AgentState:    NewAgentStateClient(cfg),
		AlertBatch:    NewAlertBatchClient(cfg),
		AlertDelivery: NewAlertDeliveryClient(cfg),
		ContentDedup:  NewContentDedupClient(cfg),
		Task:          NewTaskClient(cfg),
		TaskRecovery:  NewTaskRecoveryClient(cfg),
		Workflow:      NewWorkflowClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		AgentState:    NewAgentStateClient(cfg),
		AlertBatch:    NewAlertBatchClient(cfg),
		AlertDelivery: NewAlertDeliveryClient(cfg),
		ContentDedup:  NewContentDedupClient(cfg),
		Task:          NewTaskClient(cfg),
		TaskRecovery:  NewTaskRecoveryClient(cfg),
		Workflow:      NewWorkflowClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentState.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentState, c.AlertBatch, c.AlertDelivery, c.ContentDedup, c.Task,
		c.TaskRecovery, c.Workflow,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentState, c.AlertBatch, c.AlertDelivery, c.ContentDedup, c.Task,
		c.TaskRecovery, c.Workflow,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentStateMutation:
		return c.AgentState.mutate(ctx, m)
	case *AlertBatchMutation:
		return c.AlertBatch.mutate(ctx, m)
	case *AlertDeliveryMutation:
		return c.AlertDelivery.mutate(ctx, m)
	case *ContentDedupMutation:
		return c.ContentDedup.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskRecoveryMutation:
		return c.TaskRecovery.mutate(ctx, m)
	case *WorkflowMutation:
		return c.Workflow.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentStateClient is a client for the AgentState schema.
type AgentStateClient struct {
	config
}

// NewAgentStateClient returns a client for the AgentState from the given config.
func NewAgentStateClient(c config) *AgentStateClient {
	return &AgentStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentstate.Hooks(f(g(h())))`.
func (c *AgentStateClient) Use(hooks ...Hook) {
	c.hooks.AgentState = append(c.hooks.AgentState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentstate.Intercept(f(g(h())))`.
func (c *AgentStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentState = append(c.inters.AgentState, interceptors...)
}

// Create returns a builder for creating a AgentState entity.
func (c *AgentStateClient) Create() *AgentStateCreate {
	mutation := newAgentStateMutation(c.config, OpCreate)
	return &AgentStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentState entities.
func (c *AgentStateClient) CreateBulk(builders ...*AgentStateCreate) *AgentStateCreateBulk {
	return &AgentStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentStateClient) MapCreateBulk(slice any, setFunc func(*AgentStateCreate, int)) *AgentStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentStateCreateBulk{err: fmt.Errorf("calling to AgentStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentState.
func (c *AgentStateClient) Update() *AgentStateUpdate {
	mutation := newAgentStateMutation(c.config, OpUpdate)
	return &AgentStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentStateClient) UpdateOne(_m *AgentState) *AgentStateUpdateOne {
	mutation := newAgentStateMutation(c.config, OpUpdateOne, withAgentState(_m))
	return &AgentStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentStateClient) UpdateOneID(id string) *AgentStateUpdateOne {
	mutation := newAgentStateMutation(c.config, OpUpdateOne, withAgentStateID(id))
	return &AgentStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentState.
func (c *AgentStateClient) Delete() *AgentStateDelete {
	mutation := newAgentStateMutation(c.config, OpDelete)
	return &AgentStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentStateClient) DeleteOne(_m *AgentState) *AgentStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentStateClient) DeleteOneID(id string) *AgentStateDeleteOne {
	builder := c.Delete().Where(agentstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentStateDeleteOne{builder}
}

// Query returns a query builder for AgentState.
func (c *AgentStateClient) Query() *AgentStateQuery {
	return &AgentStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentState},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentState entity by its id.
func (c *AgentStateClient) Get(ctx context.Context, id string) (*AgentState, error) {
	return c.Query().Where(agentstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentStateClient) GetX(ctx context.Context, id string) *AgentState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentStateClient) Hooks() []Hook {
	return c.hooks.AgentState
}

// Interceptors returns the client interceptors.
func (c *AgentStateClient) Interceptors() []Interceptor {
	return c.inters.AgentState
}

func (c *AgentStateClient) mutate(ctx context.Context, m *AgentStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentState mutation op: %q", m.Op())
	}
}

// AlertBatchClient is a client for the AlertBatch schema.
type AlertBatchClient struct {
	config
}

// NewAlertBatchClient returns a client for the AlertBatch from the given config.
func NewAlertBatchClient(c config) *AlertBatchClient {
	return &AlertBatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alertbatch.Hooks(f(g(h())))`.
func (c *AlertBatchClient) Use(hooks ...Hook) {
	c.hooks.AlertBatch = append(c.hooks.AlertBatch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alertbatch.Intercept(f(g(h())))`.
func (c *AlertBatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.AlertBatch = append(c.inters.AlertBatch, interceptors...)
}

// Create returns a builder for creating a AlertBatch entity.
func (c *AlertBatchClient) Create() *AlertBatchCreate {
	mutation := newAlertBatchMutation(c.config, OpCreate)
	return &AlertBatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AlertBatch entities.
func (c *AlertBatchClient) CreateBulk(builders ...*AlertBatchCreate) *AlertBatchCreateBulk {
	return &AlertBatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertBatchClient) MapCreateBulk(slice any, setFunc func(*AlertBatchCreate, int)) *AlertBatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertBatchCreateBulk{err: fmt.Errorf("calling to AlertBatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertBatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertBatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AlertBatch.
func (c *AlertBatchClient) Update() *AlertBatchUpdate {
	mutation := newAlertBatchMutation(c.config, OpUpdate)
	return &AlertBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertBatchClient) UpdateOne(_m *AlertBatch) *AlertBatchUpdateOne {
	mutation := newAlertBatchMutation(c.config, OpUpdateOne, withAlertBatch(_m))
	return &AlertBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertBatchClient) UpdateOneID(id string) *AlertBatchUpdateOne {
	mutation := newAlertBatchMutation(c.config, OpUpdateOne, withAlertBatchID(id))
	return &AlertBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AlertBatch.
func (c *AlertBatchClient) Delete() *AlertBatchDelete {
	mutation := newAlertBatchMutation(c.config, OpDelete)
	return &AlertBatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertBatchClient) DeleteOne(_m *AlertBatch) *AlertBatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertBatchClient) DeleteOneID(id string) *AlertBatchDeleteOne {
	builder := c.Delete().Where(alertbatch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertBatchDeleteOne{builder}
}

// Query returns a query builder for AlertBatch.
func (c *AlertBatchClient) Query() *AlertBatchQuery {
	return &AlertBatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlertBatch},
		inters: c.Interceptors(),
	}
}

// Get returns a AlertBatch entity by its id.
func (c *AlertBatchClient) Get(ctx context.Context, id string) (*AlertBatch, error) {
	return c.Query().Where(alertbatch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertBatchClient) GetX(ctx context.Context, id string) *AlertBatch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDeliveries queries the deliveries edge of a AlertBatch.
func (c *AlertBatchClient) QueryDeliveries(_m *AlertBatch) *AlertDeliveryQuery {
	query := (&AlertDeliveryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertbatch.Table, alertbatch.FieldID, id),
			sqlgraph.To(alertdelivery.Table, alertdelivery.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, alertbatch.DeliveriesTable, alertbatch.DeliveriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AlertBatchClient) Hooks() []Hook {
	return c.hooks.AlertBatch
}

// Interceptors returns the client interceptors.
func (c *AlertBatchClient) Interceptors() []Interceptor {
	return c.inters.AlertBatch
}

func (c *AlertBatchClient) mutate(ctx context.Context, m *AlertBatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertBatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertBatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AlertBatch mutation op: %q", m.Op())
	}
}

// AlertDeliveryClient is a client for the AlertDelivery schema.
type AlertDeliveryClient struct {
	config
}

// NewAlertDeliveryClient returns a client for the AlertDelivery from the given config.
func NewAlertDeliveryClient(c config) *AlertDeliveryClient {
	return &AlertDeliveryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alertdelivery.Hooks(f(g(h())))`.
func (c *AlertDeliveryClient) Use(hooks ...Hook) {
	c.hooks.AlertDelivery = append(c.hooks.AlertDelivery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alertdelivery.Intercept(f(g(h())))`.
func (c *AlertDeliveryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AlertDelivery = append(c.inters.AlertDelivery, interceptors...)
}

// Create returns a builder for creating a AlertDelivery entity.
func (c *AlertDeliveryClient) Create() *AlertDeliveryCreate {
	mutation := newAlertDeliveryMutation(c.config, OpCreate)
	return &AlertDeliveryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AlertDelivery entities.
func (c *AlertDeliveryClient) CreateBulk(builders ...*AlertDeliveryCreate) *AlertDeliveryCreateBulk {
	return &AlertDeliveryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertDeliveryClient) MapCreateBulk(slice any, setFunc func(*AlertDeliveryCreate, int)) *AlertDeliveryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertDeliveryCreateBulk{err: fmt.Errorf("calling to AlertDeliveryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertDeliveryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertDeliveryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AlertDelivery.
func (c *AlertDeliveryClient) Update() *AlertDeliveryUpdate {
	mutation := newAlertDeliveryMutation(c.config, OpUpdate)
	return &AlertDeliveryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertDeliveryClient) UpdateOne(_m *AlertDelivery) *AlertDeliveryUpdateOne {
	mutation := newAlertDeliveryMutation(c.config, OpUpdateOne, withAlertDelivery(_m))
	return &AlertDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertDeliveryClient) UpdateOneID(id string) *AlertDeliveryUpdateOne {
	mutation := newAlertDeliveryMutation(c.config, OpUpdateOne, withAlertDeliveryID(id))
	return &AlertDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AlertDelivery.
func (c *AlertDeliveryClient) Delete() *AlertDeliveryDelete {
	mutation := newAlertDeliveryMutation(c.config, OpDelete)
	return &AlertDeliveryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertDeliveryClient) DeleteOne(_m *AlertDelivery) *AlertDeliveryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertDeliveryClient) DeleteOneID(id string) *AlertDeliveryDeleteOne {
	builder := c.Delete().Where(alertdelivery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertDeliveryDeleteOne{builder}
}

// Query returns a query builder for AlertDelivery.
func (c *AlertDeliveryClient) Query() *AlertDeliveryQuery {
	return &AlertDeliveryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlertDelivery},
		inters: c.Interceptors(),
	}
}

// Get returns a AlertDelivery entity by its id.
func (c *AlertDeliveryClient) Get(ctx context.Context, id string) (*AlertDelivery, error) {
	return c.Query().Where(alertdelivery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertDeliveryClient) GetX(ctx context.Context, id string) *AlertDelivery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBatch queries the batch edge of a AlertDelivery.
func (c *AlertDeliveryClient) QueryBatch(_m *AlertDelivery) *AlertBatchQuery {
	query := (&AlertBatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertdelivery.Table, alertdelivery.FieldID, id),
			sqlgraph.To(alertbatch.Table, alertbatch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, alertdelivery.BatchTable, alertdelivery.BatchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AlertDeliveryClient) Hooks() []Hook {
	return c.hooks.AlertDelivery
}

// Interceptors returns the client interceptors.
func (c *AlertDeliveryClient) Interceptors() []Interceptor {
	return c.inters.AlertDelivery
}

func (c *AlertDeliveryClient) mutate(ctx context.Context, m *AlertDeliveryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertDeliveryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertDeliveryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertDeliveryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AlertDelivery mutation op: %q", m.Op())
	}
}

// ContentDedupClient is a client for the ContentDedup schema.
type ContentDedupClient struct {
	config
}

// NewContentDedupClient returns a client for the ContentDedup from the given config.
func NewContentDedupClient(c config) *ContentDedupClient {
	return &ContentDedupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contentdedup.Hooks(f(g(h())))`.
func (c *ContentDedupClient) Use(hooks ...Hook) {
	c.hooks.ContentDedup = append(c.hooks.ContentDedup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contentdedup.Intercept(f(g(h())))`.
func (c *ContentDedupClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentDedup = append(c.inters.ContentDedup, interceptors...)
}

// Create returns a builder for creating a ContentDedup entity.
func (c *ContentDedupClient) Create() *ContentDedupCreate {
	mutation := newContentDedupMutation(c.config, OpCreate)
	return &ContentDedupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentDedup entities.
func (c *ContentDedupClient) CreateBulk(builders ...*ContentDedupCreate) *ContentDedupCreateBulk {
	return &ContentDedupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentDedupClient) MapCreateBulk(slice any, setFunc func(*ContentDedupCreate, int)) *ContentDedupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentDedupCreateBulk{err: fmt.Errorf("calling to ContentDedupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentDedupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentDedupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentDedup.
func (c *ContentDedupClient) Update() *ContentDedupUpdate {
	mutation := newContentDedupMutation(c.config, OpUpdate)
	return &ContentDedupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentDedupClient) UpdateOne(_m *ContentDedup) *ContentDedupUpdateOne {
	mutation := newContentDedupMutation(c.config, OpUpdateOne, withContentDedup(_m))
	return &ContentDedupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentDedupClient) UpdateOneID(id string) *ContentDedupUpdateOne {
	mutation := newContentDedupMutation(c.config, OpUpdateOne, withContentDedupID(id))
	return &ContentDedupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentDedup.
func (c *ContentDedupClient) Delete() *ContentDedupDelete {
	mutation := newContentDedupMutation(c.config, OpDelete)
	return &ContentDedupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentDedupClient) DeleteOne(_m *ContentDedup) *ContentDedupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentDedupClient) DeleteOneID(id string) *ContentDedupDeleteOne {
	builder := c.Delete().Where(contentdedup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentDedupDeleteOne{builder}
}

// Query returns a query builder for ContentDedup.
func (c *ContentDedupClient) Query() *ContentDedupQuery {
	return &ContentDedupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentDedup},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentDedup entity by its id.
func (c *ContentDedupClient) Get(ctx context.Context, id string) (*ContentDedup, error) {
	return c.Query().Where(contentdedup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentDedupClient) GetX(ctx context.Context, id string) *ContentDedup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContentDedupClient) Hooks() []Hook {
	return c.hooks.ContentDedup
}

// Interceptors returns the client interceptors.
func (c *ContentDedupClient) Interceptors() []Interceptor {
	return c.inters.ContentDedup
}

func (c *ContentDedupClient) mutate(ctx context.Context, m *ContentDedupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentDedupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentDedupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentDedupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentDedupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContentDedup mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskRecoveryClient is a client for the TaskRecovery schema.
type TaskRecoveryClient struct {
	config
}

// NewTaskRecoveryClient returns a client for the TaskRecovery from the given config.
func NewTaskRecoveryClient(c config) *TaskRecoveryClient {
	return &TaskRecoveryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskrecovery.Hooks(f(g(h())))`.
func (c *TaskRecoveryClient) Use(hooks ...Hook) {
	c.hooks.TaskRecovery = append(c.hooks.TaskRecovery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskrecovery.Intercept(f(g(h())))`.
func (c *TaskRecoveryClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskRecovery = append(c.inters.TaskRecovery, interceptors...)
}

// Create returns a builder for creating a TaskRecovery entity.
func (c *TaskRecoveryClient) Create() *TaskRecoveryCreate {
	mutation := newTaskRecoveryMutation(c.config, OpCreate)
	return &TaskRecoveryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskRecovery entities.
func (c *TaskRecoveryClient) CreateBulk(builders ...*TaskRecoveryCreate) *TaskRecoveryCreateBulk {
	return &TaskRecoveryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskRecoveryClient) MapCreateBulk(slice any, setFunc func(*TaskRecoveryCreate, int)) *TaskRecoveryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskRecoveryCreateBulk{err: fmt.Errorf("calling to TaskRecoveryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskRecoveryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskRecoveryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskRecovery.
func (c *TaskRecoveryClient) Update() *TaskRecoveryUpdate {
	mutation := newTaskRecoveryMutation(c.config, OpUpdate)
	return &TaskRecoveryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskRecoveryClient) UpdateOne(_m *TaskRecovery) *TaskRecoveryUpdateOne {
	mutation := newTaskRecoveryMutation(c.config, OpUpdateOne, withTaskRecovery(_m))
	return &TaskRecoveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskRecoveryClient) UpdateOneID(id string) *TaskRecoveryUpdateOne {
	mutation := newTaskRecoveryMutation(c.config, OpUpdateOne, withTaskRecoveryID(id))
	return &TaskRecoveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskRecovery.
func (c *TaskRecoveryClient) Delete() *TaskRecoveryDelete {
	mutation := newTaskRecoveryMutation(c.config, OpDelete)
	return &TaskRecoveryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskRecoveryClient) DeleteOne(_m *TaskRecovery) *TaskRecoveryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskRecoveryClient) DeleteOneID(id string) *TaskRecoveryDeleteOne {
	builder := c.Delete().Where(taskrecovery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskRecoveryDeleteOne{builder}
}

// Query returns a query builder for TaskRecovery.
func (c *TaskRecoveryClient) Query() *TaskRecoveryQuery {
	return &TaskRecoveryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskRecovery},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskRecovery entity by its id.
func (c *TaskRecoveryClient) Get(ctx context.Context, id string) (*TaskRecovery, error) {
	return c.Query().Where(taskrecovery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskRecoveryClient) GetX(ctx context.Context, id string) *TaskRecovery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskRecoveryClient) Hooks() []Hook {
	return c.hooks.TaskRecovery
}

// Interceptors returns the client interceptors.
func (c *TaskRecoveryClient) Interceptors() []Interceptor {
	return c.inters.TaskRecovery
}

func (c *TaskRecoveryClient) mutate(ctx context.Context, m *TaskRecoveryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskRecoveryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskRecoveryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskRecoveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskRecoveryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskRecovery mutation op: %q", m.Op())
	}
}

// WorkflowClient is a client for the Workflow schema.
type WorkflowClient struct {
	config
}

// NewWorkflowClient returns a client for the Workflow from the given config.
func NewWorkflowClient(c config) *WorkflowClient {
	return &WorkflowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflow.Hooks(f(g(h())))`.
func (c *WorkflowClient) Use(hooks ...Hook) {
	c.hooks.Workflow = append(c.hooks.Workflow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflow.Intercept(f(g(h())))`.
func (c *WorkflowClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workflow = append(c.inters.Workflow, interceptors...)
}

// Create returns a builder for creating a Workflow entity.
func (c *WorkflowClient) Create() *WorkflowCreate {
	mutation := newWorkflowMutation(c.config, OpCreate)
	return &WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workflow entities.
func (c *WorkflowClient) CreateBulk(builders ...*WorkflowCreate) *WorkflowCreateBulk {
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowClient) MapCreateBulk(slice any, setFunc func(*WorkflowCreate, int)) *WorkflowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowCreateBulk{err: fmt.Errorf("calling to WorkflowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workflow.
func (c *WorkflowClient) Update() *WorkflowUpdate {
	mutation := newWorkflowMutation(c.config, OpUpdate)
	return &WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowClient) UpdateOne(_m *Workflow) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflow(_m))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowClient) UpdateOneID(id string) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflowID(id))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workflow.
func (c *WorkflowClient) Delete() *WorkflowDelete {
	mutation := newWorkflowMutation(c.config, OpDelete)
	return &WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowClient) DeleteOne(_m *Workflow) *WorkflowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowClient) DeleteOneID(id string) *WorkflowDeleteOne {
	builder := c.Delete().Where(workflow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowDeleteOne{builder}
}

// Query returns a query builder for Workflow.
func (c *WorkflowClient) Query() *WorkflowQuery {
	return &WorkflowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflow},
		inters: c.Interceptors(),
	}
}

// Get returns a Workflow entity by its id.
func (c *WorkflowClient) Get(ctx context.Context, id string) (*Workflow, error) {
	return c.Query().Where(workflow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowClient) GetX(ctx context.Context, id string) *Workflow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkflowClient) Hooks() []Hook {
	return c.hooks.Workflow
}

// Interceptors returns the client interceptors.
func (c *WorkflowClient) Interceptors() []Interceptor {
	return c.inters.Workflow
}

func (c *WorkflowClient) mutate(ctx context.Context, m *WorkflowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workflow mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentState, AlertBatch, AlertDelivery, ContentDedup, Task, TaskRecovery,
		Workflow []ent.Hook
	}
	inters struct {
		AgentState, AlertBatch, AlertDelivery, ContentDedup, Task, TaskRecovery,
		Workflow []ent.Interceptor
	}
)
