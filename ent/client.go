// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fairlens/fairlens/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fairlens/fairlens/ent/analysisstatus"
	"github.com/fairlens/fairlens/ent/analyzedchunk"
	"github.com/fairlens/fairlens/ent/emailmapping"
	"github.com/fairlens/fairlens/ent/event"
	"github.com/fairlens/fairlens/ent/teamparticipation"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisStatus is the client for interacting with the AnalysisStatus builders.
	AnalysisStatus *AnalysisStatusClient
	// AnalyzedChunk is the client for interacting with the AnalyzedChunk builders.
	AnalyzedChunk *AnalyzedChunkClient
	// EmailMapping is the client for interacting with the EmailMapping builders.
	EmailMapping *EmailMappingClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// TeamParticipation is the client for interacting with the TeamParticipation builders.
	TeamParticipation *TeamParticipationClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisStatus = NewAnalysisStatusClient(c.config)
	c.AnalyzedChunk = NewAnalyzedChunkClient(c.config)
	c.EmailMapping = NewEmailMappingClient(c.config)
	c.Event = NewEventClient(c.config)
	c.TeamParticipation = NewTeamParticipationClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		AnalysisStatus:    NewAnalysisStatusClient(cfg),
		AnalyzedChunk:     NewAnalyzedChunkClient(cfg),
		EmailMapping:      NewEmailMappingClient(cfg),
		Event:             NewEventClient(cfg),
		TeamParticipation: NewTeamParticipationClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		AnalysisStatus:    NewAnalysisStatusClient(cfg),
		AnalyzedChunk:     NewAnalyzedChunkClient(cfg),
		EmailMapping:      NewEmailMappingClient(cfg),
		Event:             NewEventClient(cfg),
		TeamParticipation: NewTeamParticipationClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisStatus.
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
	c.AnalysisStatus.Use(hooks...)
	c.AnalyzedChunk.Use(hooks...)
	c.EmailMapping.Use(hooks...)
	c.Event.Use(hooks...)
	c.TeamParticipation.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnalysisStatus.Intercept(interceptors...)
	c.AnalyzedChunk.Intercept(interceptors...)
	c.EmailMapping.Intercept(interceptors...)
	c.Event.Intercept(interceptors...)
	c.TeamParticipation.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisStatusMutation:
		return c.AnalysisStatus.mutate(ctx, m)
	case *AnalyzedChunkMutation:
		return c.AnalyzedChunk.mutate(ctx, m)
	case *EmailMappingMutation:
		return c.EmailMapping.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *TeamParticipationMutation:
		return c.TeamParticipation.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisStatusClient is a client for the AnalysisStatus schema.
type AnalysisStatusClient struct {
	config
}

// NewAnalysisStatusClient returns a client for the AnalysisStatus from the given config.
func NewAnalysisStatusClient(c config) *AnalysisStatusClient {
	return &AnalysisStatusClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisstatus.Hooks(f(g(h())))`.
func (c *AnalysisStatusClient) Use(hooks ...Hook) {
	c.hooks.AnalysisStatus = append(c.hooks.AnalysisStatus, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisstatus.Intercept(f(g(h())))`.
func (c *AnalysisStatusClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisStatus = append(c.inters.AnalysisStatus, interceptors...)
}

// Create returns a builder for creating a AnalysisStatus entity.
func (c *AnalysisStatusClient) Create() *AnalysisStatusCreate {
	mutation := newAnalysisStatusMutation(c.config, OpCreate)
	return &AnalysisStatusCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisStatus entities.
func (c *AnalysisStatusClient) CreateBulk(builders ...*AnalysisStatusCreate) *AnalysisStatusCreateBulk {
	return &AnalysisStatusCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisStatusClient) MapCreateBulk(slice any, setFunc func(*AnalysisStatusCreate, int)) *AnalysisStatusCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisStatusCreateBulk{err: fmt.Errorf("calling to AnalysisStatusClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisStatusCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisStatusCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisStatus.
func (c *AnalysisStatusClient) Update() *AnalysisStatusUpdate {
	mutation := newAnalysisStatusMutation(c.config, OpUpdate)
	return &AnalysisStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisStatusClient) UpdateOne(_m *AnalysisStatus) *AnalysisStatusUpdateOne {
	mutation := newAnalysisStatusMutation(c.config, OpUpdateOne, withAnalysisStatus(_m))
	return &AnalysisStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisStatusClient) UpdateOneID(id int) *AnalysisStatusUpdateOne {
	mutation := newAnalysisStatusMutation(c.config, OpUpdateOne, withAnalysisStatusID(id))
	return &AnalysisStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisStatus.
func (c *AnalysisStatusClient) Delete() *AnalysisStatusDelete {
	mutation := newAnalysisStatusMutation(c.config, OpDelete)
	return &AnalysisStatusDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisStatusClient) DeleteOne(_m *AnalysisStatus) *AnalysisStatusDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisStatusClient) DeleteOneID(id int) *AnalysisStatusDeleteOne {
	builder := c.Delete().Where(analysisstatus.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisStatusDeleteOne{builder}
}

// Query returns a query builder for AnalysisStatus.
func (c *AnalysisStatusClient) Query() *AnalysisStatusQuery {
	return &AnalysisStatusQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisStatus},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisStatus entity by its id.
func (c *AnalysisStatusClient) Get(ctx context.Context, id int) (*AnalysisStatus, error) {
	return c.Query().Where(analysisstatus.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisStatusClient) GetX(ctx context.Context, id int) *AnalysisStatus {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnalysisStatusClient) Hooks() []Hook {
	return c.hooks.AnalysisStatus
}

// Interceptors returns the client interceptors.
func (c *AnalysisStatusClient) Interceptors() []Interceptor {
	return c.inters.AnalysisStatus
}

func (c *AnalysisStatusClient) mutate(ctx context.Context, m *AnalysisStatusMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisStatusCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisStatusDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisStatus mutation op: %q", m.Op())
	}
}

// AnalyzedChunkClient is a client for the AnalyzedChunk schema.
type AnalyzedChunkClient struct {
	config
}

// NewAnalyzedChunkClient returns a client for the AnalyzedChunk from the given config.
func NewAnalyzedChunkClient(c config) *AnalyzedChunkClient {
	return &AnalyzedChunkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analyzedchunk.Hooks(f(g(h())))`.
func (c *AnalyzedChunkClient) Use(hooks ...Hook) {
	c.hooks.AnalyzedChunk = append(c.hooks.AnalyzedChunk, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analyzedchunk.Intercept(f(g(h())))`.
func (c *AnalyzedChunkClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalyzedChunk = append(c.inters.AnalyzedChunk, interceptors...)
}

// Create returns a builder for creating a AnalyzedChunk entity.
func (c *AnalyzedChunkClient) Create() *AnalyzedChunkCreate {
	mutation := newAnalyzedChunkMutation(c.config, OpCreate)
	return &AnalyzedChunkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalyzedChunk entities.
func (c *AnalyzedChunkClient) CreateBulk(builders ...*AnalyzedChunkCreate) *AnalyzedChunkCreateBulk {
	return &AnalyzedChunkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalyzedChunkClient) MapCreateBulk(slice any, setFunc func(*AnalyzedChunkCreate, int)) *AnalyzedChunkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalyzedChunkCreateBulk{err: fmt.Errorf("calling to AnalyzedChunkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalyzedChunkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalyzedChunkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalyzedChunk.
func (c *AnalyzedChunkClient) Update() *AnalyzedChunkUpdate {
	mutation := newAnalyzedChunkMutation(c.config, OpUpdate)
	return &AnalyzedChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalyzedChunkClient) UpdateOne(_m *AnalyzedChunk) *AnalyzedChunkUpdateOne {
	mutation := newAnalyzedChunkMutation(c.config, OpUpdateOne, withAnalyzedChunk(_m))
	return &AnalyzedChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalyzedChunkClient) UpdateOneID(id int) *AnalyzedChunkUpdateOne {
	mutation := newAnalyzedChunkMutation(c.config, OpUpdateOne, withAnalyzedChunkID(id))
	return &AnalyzedChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalyzedChunk.
func (c *AnalyzedChunkClient) Delete() *AnalyzedChunkDelete {
	mutation := newAnalyzedChunkMutation(c.config, OpDelete)
	return &AnalyzedChunkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalyzedChunkClient) DeleteOne(_m *AnalyzedChunk) *AnalyzedChunkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalyzedChunkClient) DeleteOneID(id int) *AnalyzedChunkDeleteOne {
	builder := c.Delete().Where(analyzedchunk.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalyzedChunkDeleteOne{builder}
}

// Query returns a query builder for AnalyzedChunk.
func (c *AnalyzedChunkClient) Query() *AnalyzedChunkQuery {
	return &AnalyzedChunkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalyzedChunk},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalyzedChunk entity by its id.
func (c *AnalyzedChunkClient) Get(ctx context.Context, id int) (*AnalyzedChunk, error) {
	return c.Query().Where(analyzedchunk.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalyzedChunkClient) GetX(ctx context.Context, id int) *AnalyzedChunk {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParticipation queries the participation edge of a AnalyzedChunk.
func (c *AnalyzedChunkClient) QueryParticipation(_m *AnalyzedChunk) *TeamParticipationQuery {
	query := (&TeamParticipationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analyzedchunk.Table, analyzedchunk.FieldID, id),
			sqlgraph.To(teamparticipation.Table, teamparticipation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analyzedchunk.ParticipationTable, analyzedchunk.ParticipationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalyzedChunkClient) Hooks() []Hook {
	return c.hooks.AnalyzedChunk
}

// Interceptors returns the client interceptors.
func (c *AnalyzedChunkClient) Interceptors() []Interceptor {
	return c.inters.AnalyzedChunk
}

func (c *AnalyzedChunkClient) mutate(ctx context.Context, m *AnalyzedChunkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalyzedChunkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalyzedChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalyzedChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalyzedChunkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalyzedChunk mutation op: %q", m.Op())
	}
}

// EmailMappingClient is a client for the EmailMapping schema.
type EmailMappingClient struct {
	config
}

// NewEmailMappingClient returns a client for the EmailMapping from the given config.
func NewEmailMappingClient(c config) *EmailMappingClient {
	return &EmailMappingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emailmapping.Hooks(f(g(h())))`.
func (c *EmailMappingClient) Use(hooks ...Hook) {
	c.hooks.EmailMapping = append(c.hooks.EmailMapping, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emailmapping.Intercept(f(g(h())))`.
func (c *EmailMappingClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmailMapping = append(c.inters.EmailMapping, interceptors...)
}

// Create returns a builder for creating a EmailMapping entity.
func (c *EmailMappingClient) Create() *EmailMappingCreate {
	mutation := newEmailMappingMutation(c.config, OpCreate)
	return &EmailMappingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmailMapping entities.
func (c *EmailMappingClient) CreateBulk(builders ...*EmailMappingCreate) *EmailMappingCreateBulk {
	return &EmailMappingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmailMappingClient) MapCreateBulk(slice any, setFunc func(*EmailMappingCreate, int)) *EmailMappingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmailMappingCreateBulk{err: fmt.Errorf("calling to EmailMappingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmailMappingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmailMappingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmailMapping.
func (c *EmailMappingClient) Update() *EmailMappingUpdate {
	mutation := newEmailMappingMutation(c.config, OpUpdate)
	return &EmailMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmailMappingClient) UpdateOne(_m *EmailMapping) *EmailMappingUpdateOne {
	mutation := newEmailMappingMutation(c.config, OpUpdateOne, withEmailMapping(_m))
	return &EmailMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmailMappingClient) UpdateOneID(id int) *EmailMappingUpdateOne {
	mutation := newEmailMappingMutation(c.config, OpUpdateOne, withEmailMappingID(id))
	return &EmailMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmailMapping.
func (c *EmailMappingClient) Delete() *EmailMappingDelete {
	mutation := newEmailMappingMutation(c.config, OpDelete)
	return &EmailMappingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmailMappingClient) DeleteOne(_m *EmailMapping) *EmailMappingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmailMappingClient) DeleteOneID(id int) *EmailMappingDeleteOne {
	builder := c.Delete().Where(emailmapping.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmailMappingDeleteOne{builder}
}

// Query returns a query builder for EmailMapping.
func (c *EmailMappingClient) Query() *EmailMappingQuery {
	return &EmailMappingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmailMapping},
		inters: c.Interceptors(),
	}
}

// Get returns a EmailMapping entity by its id.
func (c *EmailMappingClient) Get(ctx context.Context, id int) (*EmailMapping, error) {
	return c.Query().Where(emailmapping.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmailMappingClient) GetX(ctx context.Context, id int) *EmailMapping {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EmailMappingClient) Hooks() []Hook {
	return c.hooks.EmailMapping
}

// Interceptors returns the client interceptors.
func (c *EmailMappingClient) Interceptors() []Interceptor {
	return c.inters.EmailMapping
}

func (c *EmailMappingClient) mutate(ctx context.Context, m *EmailMappingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmailMappingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmailMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmailMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmailMappingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmailMapping mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// TeamParticipationClient is a client for the TeamParticipation schema.
type TeamParticipationClient struct {
	config
}

// NewTeamParticipationClient returns a client for the TeamParticipation from the given config.
func NewTeamParticipationClient(c config) *TeamParticipationClient {
	return &TeamParticipationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `teamparticipation.Hooks(f(g(h())))`.
func (c *TeamParticipationClient) Use(hooks ...Hook) {
	c.hooks.TeamParticipation = append(c.hooks.TeamParticipation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `teamparticipation.Intercept(f(g(h())))`.
func (c *TeamParticipationClient) Intercept(interceptors ...Interceptor) {
	c.inters.TeamParticipation = append(c.inters.TeamParticipation, interceptors...)
}

// Create returns a builder for creating a TeamParticipation entity.
func (c *TeamParticipationClient) Create() *TeamParticipationCreate {
	mutation := newTeamParticipationMutation(c.config, OpCreate)
	return &TeamParticipationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TeamParticipation entities.
func (c *TeamParticipationClient) CreateBulk(builders ...*TeamParticipationCreate) *TeamParticipationCreateBulk {
	return &TeamParticipationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TeamParticipationClient) MapCreateBulk(slice any, setFunc func(*TeamParticipationCreate, int)) *TeamParticipationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TeamParticipationCreateBulk{err: fmt.Errorf("calling to TeamParticipationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TeamParticipationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TeamParticipationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TeamParticipation.
func (c *TeamParticipationClient) Update() *TeamParticipationUpdate {
	mutation := newTeamParticipationMutation(c.config, OpUpdate)
	return &TeamParticipationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TeamParticipationClient) UpdateOne(_m *TeamParticipation) *TeamParticipationUpdateOne {
	mutation := newTeamParticipationMutation(c.config, OpUpdateOne, withTeamParticipation(_m))
	return &TeamParticipationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TeamParticipationClient) UpdateOneID(id int) *TeamParticipationUpdateOne {
	mutation := newTeamParticipationMutation(c.config, OpUpdateOne, withTeamParticipationID(id))
	return &TeamParticipationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TeamParticipation.
func (c *TeamParticipationClient) Delete() *TeamParticipationDelete {
	mutation := newTeamParticipationMutation(c.config, OpDelete)
	return &TeamParticipationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TeamParticipationClient) DeleteOne(_m *TeamParticipation) *TeamParticipationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TeamParticipationClient) DeleteOneID(id int) *TeamParticipationDeleteOne {
	builder := c.Delete().Where(teamparticipation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TeamParticipationDeleteOne{builder}
}

// Query returns a query builder for TeamParticipation.
func (c *TeamParticipationClient) Query() *TeamParticipationQuery {
	return &TeamParticipationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTeamParticipation},
		inters: c.Interceptors(),
	}
}

// Get returns a TeamParticipation entity by its id.
func (c *TeamParticipationClient) Get(ctx context.Context, id int) (*TeamParticipation, error) {
	return c.Query().Where(teamparticipation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TeamParticipationClient) GetX(ctx context.Context, id int) *TeamParticipation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChunks queries the chunks edge of a TeamParticipation.
func (c *TeamParticipationClient) QueryChunks(_m *TeamParticipation) *AnalyzedChunkQuery {
	query := (&AnalyzedChunkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(teamparticipation.Table, teamparticipation.FieldID, id),
			sqlgraph.To(analyzedchunk.Table, analyzedchunk.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, teamparticipation.ChunksTable, teamparticipation.ChunksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TeamParticipationClient) Hooks() []Hook {
	return c.hooks.TeamParticipation
}

// Interceptors returns the client interceptors.
func (c *TeamParticipationClient) Interceptors() []Interceptor {
	return c.inters.TeamParticipation
}

func (c *TeamParticipationClient) mutate(ctx context.Context, m *TeamParticipationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TeamParticipationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TeamParticipationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TeamParticipationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TeamParticipationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TeamParticipation mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisStatus, AnalyzedChunk, EmailMapping, Event, TeamParticipation []ent.Hook
	}
	inters struct {
		AnalysisStatus, AnalyzedChunk, EmailMapping, Event,
		TeamParticipation []ent.Interceptor
	}
)
