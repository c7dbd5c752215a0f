// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/itemforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/itemforge/ent/oraclerequestevent"
	"github.com/abhisek/itemforge/ent/pipelinerunevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// OracleRequestEvent is the client for interacting with the OracleRequestEvent builders.
	OracleRequestEvent *OracleRequestEventClient
	// PipelineRunEvent is the client for interacting with the PipelineRunEvent builders.
	PipelineRunEvent *PipelineRunEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.OracleRequestEvent = NewOracleRequestEventClient(c.config)
	c.PipelineRunEvent = NewPipelineRunEventClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		OracleRequestEvent: NewOracleRequestEventClient(cfg),
		PipelineRunEvent:   NewPipelineRunEventClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		OracleRequestEvent: NewOracleRequestEventClient(cfg),
		PipelineRunEvent:   NewPipelineRunEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		OracleRequestEvent.
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
	c.OracleRequestEvent.Use(hooks...)
	c.PipelineRunEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.OracleRequestEvent.Intercept(interceptors...)
	c.PipelineRunEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *OracleRequestEventMutation:
		return c.OracleRequestEvent.mutate(ctx, m)
	case *PipelineRunEventMutation:
		return c.PipelineRunEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// OracleRequestEventClient is a client for the OracleRequestEvent schema.
type OracleRequestEventClient struct {
	config
}

// NewOracleRequestEventClient returns a client for the OracleRequestEvent from the given config.
func NewOracleRequestEventClient(c config) *OracleRequestEventClient {
	return &OracleRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `oraclerequestevent.Hooks(f(g(h())))`.
func (c *OracleRequestEventClient) Use(hooks ...Hook) {
	c.hooks.OracleRequestEvent = append(c.hooks.OracleRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `oraclerequestevent.Intercept(f(g(h())))`.
func (c *OracleRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.OracleRequestEvent = append(c.inters.OracleRequestEvent, interceptors...)
}

// Create returns a builder for creating a OracleRequestEvent entity.
func (c *OracleRequestEventClient) Create() *OracleRequestEventCreate {
	mutation := newOracleRequestEventMutation(c.config, OpCreate)
	return &OracleRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OracleRequestEvent entities.
func (c *OracleRequestEventClient) CreateBulk(builders ...*OracleRequestEventCreate) *OracleRequestEventCreateBulk {
	return &OracleRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OracleRequestEventClient) MapCreateBulk(slice any, setFunc func(*OracleRequestEventCreate, int)) *OracleRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OracleRequestEventCreateBulk{err: fmt.Errorf("calling to OracleRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OracleRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OracleRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OracleRequestEvent.
func (c *OracleRequestEventClient) Update() *OracleRequestEventUpdate {
	mutation := newOracleRequestEventMutation(c.config, OpUpdate)
	return &OracleRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OracleRequestEventClient) UpdateOne(_m *OracleRequestEvent) *OracleRequestEventUpdateOne {
	mutation := newOracleRequestEventMutation(c.config, OpUpdateOne, withOracleRequestEvent(_m))
	return &OracleRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OracleRequestEventClient) UpdateOneID(id int) *OracleRequestEventUpdateOne {
	mutation := newOracleRequestEventMutation(c.config, OpUpdateOne, withOracleRequestEventID(id))
	return &OracleRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OracleRequestEvent.
func (c *OracleRequestEventClient) Delete() *OracleRequestEventDelete {
	mutation := newOracleRequestEventMutation(c.config, OpDelete)
	return &OracleRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OracleRequestEventClient) DeleteOne(_m *OracleRequestEvent) *OracleRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OracleRequestEventClient) DeleteOneID(id int) *OracleRequestEventDeleteOne {
	builder := c.Delete().Where(oraclerequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OracleRequestEventDeleteOne{builder}
}

// Query returns a query builder for OracleRequestEvent.
func (c *OracleRequestEventClient) Query() *OracleRequestEventQuery {
	return &OracleRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOracleRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a OracleRequestEvent entity by its id.
func (c *OracleRequestEventClient) Get(ctx context.Context, id int) (*OracleRequestEvent, error) {
	return c.Query().Where(oraclerequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OracleRequestEventClient) GetX(ctx context.Context, id int) *OracleRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OracleRequestEventClient) Hooks() []Hook {
	return c.hooks.OracleRequestEvent
}

// Interceptors returns the client interceptors.
func (c *OracleRequestEventClient) Interceptors() []Interceptor {
	return c.inters.OracleRequestEvent
}

func (c *OracleRequestEventClient) mutate(ctx context.Context, m *OracleRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OracleRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OracleRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OracleRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OracleRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OracleRequestEvent mutation op: %q", m.Op())
	}
}

// PipelineRunEventClient is a client for the PipelineRunEvent schema.
type PipelineRunEventClient struct {
	config
}

// NewPipelineRunEventClient returns a client for the PipelineRunEvent from the given config.
func NewPipelineRunEventClient(c config) *PipelineRunEventClient {
	return &PipelineRunEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinerunevent.Hooks(f(g(h())))`.
func (c *PipelineRunEventClient) Use(hooks ...Hook) {
	c.hooks.PipelineRunEvent = append(c.hooks.PipelineRunEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinerunevent.Intercept(f(g(h())))`.
func (c *PipelineRunEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineRunEvent = append(c.inters.PipelineRunEvent, interceptors...)
}

// Create returns a builder for creating a PipelineRunEvent entity.
func (c *PipelineRunEventClient) Create() *PipelineRunEventCreate {
	mutation := newPipelineRunEventMutation(c.config, OpCreate)
	return &PipelineRunEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineRunEvent entities.
func (c *PipelineRunEventClient) CreateBulk(builders ...*PipelineRunEventCreate) *PipelineRunEventCreateBulk {
	return &PipelineRunEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineRunEventClient) MapCreateBulk(slice any, setFunc func(*PipelineRunEventCreate, int)) *PipelineRunEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineRunEventCreateBulk{err: fmt.Errorf("calling to PipelineRunEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineRunEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineRunEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineRunEvent.
func (c *PipelineRunEventClient) Update() *PipelineRunEventUpdate {
	mutation := newPipelineRunEventMutation(c.config, OpUpdate)
	return &PipelineRunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineRunEventClient) UpdateOne(_m *PipelineRunEvent) *PipelineRunEventUpdateOne {
	mutation := newPipelineRunEventMutation(c.config, OpUpdateOne, withPipelineRunEvent(_m))
	return &PipelineRunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineRunEventClient) UpdateOneID(id int) *PipelineRunEventUpdateOne {
	mutation := newPipelineRunEventMutation(c.config, OpUpdateOne, withPipelineRunEventID(id))
	return &PipelineRunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineRunEvent.
func (c *PipelineRunEventClient) Delete() *PipelineRunEventDelete {
	mutation := newPipelineRunEventMutation(c.config, OpDelete)
	return &PipelineRunEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineRunEventClient) DeleteOne(_m *PipelineRunEvent) *PipelineRunEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineRunEventClient) DeleteOneID(id int) *PipelineRunEventDeleteOne {
	builder := c.Delete().Where(pipelinerunevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineRunEventDeleteOne{builder}
}

// Query returns a query builder for PipelineRunEvent.
func (c *PipelineRunEventClient) Query() *PipelineRunEventQuery {
	return &PipelineRunEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineRunEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineRunEvent entity by its id.
func (c *PipelineRunEventClient) Get(ctx context.Context, id int) (*PipelineRunEvent, error) {
	return c.Query().Where(pipelinerunevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineRunEventClient) GetX(ctx context.Context, id int) *PipelineRunEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineRunEventClient) Hooks() []Hook {
	return c.hooks.PipelineRunEvent
}

// Interceptors returns the client interceptors.
func (c *PipelineRunEventClient) Interceptors() []Interceptor {
	return c.inters.PipelineRunEvent
}

func (c *PipelineRunEventClient) mutate(ctx context.Context, m *PipelineRunEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineRunEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineRunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineRunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineRunEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineRunEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		OracleRequestEvent, PipelineRunEvent []ent.Hook
	}
	inters struct {
		OracleRequestEvent, PipelineRunEvent []ent.Interceptor
	}
)
