// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/soltrack/soltrack/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/soltrack/soltrack/ent/assessmentattempt"
	"github.com/soltrack/soltrack/ent/assessmentitem"
	"github.com/soltrack/soltrack/ent/llmrequestevent"
	"github.com/soltrack/soltrack/ent/standard"
	"github.com/soltrack/soltrack/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AssessmentAttempt is the client for interacting with the AssessmentAttempt builders.
	AssessmentAttempt *AssessmentAttemptClient
	// AssessmentItem is the client for interacting with the AssessmentItem builders.
	AssessmentItem *AssessmentItemClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Standard is the client for interacting with the Standard builders.
	Standard *StandardClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AssessmentAttempt = NewAssessmentAttemptClient(c.config)
	c.AssessmentItem = NewAssessmentItemClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Standard = NewStandardClient(c.config)
	c.User = NewUserClient(c.config)
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
		AssessmentAttempt: NewAssessmentAttemptClient(cfg),
		AssessmentItem:    NewAssessmentItemClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		Standard:          NewStandardClient(cfg),
		User:              NewUserClient(cfg),
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
		AssessmentAttempt: NewAssessmentAttemptClient(cfg),
		AssessmentItem:    NewAssessmentItemClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		Standard:          NewStandardClient(cfg),
		User:              NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AssessmentAttempt.
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
	c.AssessmentAttempt.Use(hooks...)
	c.AssessmentItem.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.Standard.Use(hooks...)
	c.User.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AssessmentAttempt.Intercept(interceptors...)
	c.AssessmentItem.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.Standard.Intercept(interceptors...)
	c.User.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssessmentAttemptMutation:
		return c.AssessmentAttempt.mutate(ctx, m)
	case *AssessmentItemMutation:
		return c.AssessmentItem.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *StandardMutation:
		return c.Standard.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssessmentAttemptClient is a client for the AssessmentAttempt schema.
type AssessmentAttemptClient struct {
	config
}

// NewAssessmentAttemptClient returns a client for the AssessmentAttempt from the given config.
func NewAssessmentAttemptClient(c config) *AssessmentAttemptClient {
	return &AssessmentAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentattempt.Hooks(f(g(h())))`.
func (c *AssessmentAttemptClient) Use(hooks ...Hook) {
	c.hooks.AssessmentAttempt = append(c.hooks.AssessmentAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentattempt.Intercept(f(g(h())))`.
func (c *AssessmentAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentAttempt = append(c.inters.AssessmentAttempt, interceptors...)
}

// Create returns a builder for creating a AssessmentAttempt entity.
func (c *AssessmentAttemptClient) Create() *AssessmentAttemptCreate {
	mutation := newAssessmentAttemptMutation(c.config, OpCreate)
	return &AssessmentAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentAttempt entities.
func (c *AssessmentAttemptClient) CreateBulk(builders ...*AssessmentAttemptCreate) *AssessmentAttemptCreateBulk {
	return &AssessmentAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentAttemptClient) MapCreateBulk(slice any, setFunc func(*AssessmentAttemptCreate, int)) *AssessmentAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentAttemptCreateBulk{err: fmt.Errorf("calling to AssessmentAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentAttempt.
func (c *AssessmentAttemptClient) Update() *AssessmentAttemptUpdate {
	mutation := newAssessmentAttemptMutation(c.config, OpUpdate)
	return &AssessmentAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentAttemptClient) UpdateOne(_m *AssessmentAttempt) *AssessmentAttemptUpdateOne {
	mutation := newAssessmentAttemptMutation(c.config, OpUpdateOne, withAssessmentAttempt(_m))
	return &AssessmentAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentAttemptClient) UpdateOneID(id string) *AssessmentAttemptUpdateOne {
	mutation := newAssessmentAttemptMutation(c.config, OpUpdateOne, withAssessmentAttemptID(id))
	return &AssessmentAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentAttempt.
func (c *AssessmentAttemptClient) Delete() *AssessmentAttemptDelete {
	mutation := newAssessmentAttemptMutation(c.config, OpDelete)
	return &AssessmentAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentAttemptClient) DeleteOne(_m *AssessmentAttempt) *AssessmentAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentAttemptClient) DeleteOneID(id string) *AssessmentAttemptDeleteOne {
	builder := c.Delete().Where(assessmentattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentAttemptDeleteOne{builder}
}

// Query returns a query builder for AssessmentAttempt.
func (c *AssessmentAttemptClient) Query() *AssessmentAttemptQuery {
	return &AssessmentAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentAttempt entity by its id.
func (c *AssessmentAttemptClient) Get(ctx context.Context, id string) (*AssessmentAttempt, error) {
	return c.Query().Where(assessmentattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentAttemptClient) GetX(ctx context.Context, id string) *AssessmentAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a AssessmentAttempt.
func (c *AssessmentAttemptClient) QueryUser(_m *AssessmentAttempt) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentattempt.Table, assessmentattempt.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assessmentattempt.UserTable, assessmentattempt.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItem queries the item edge of a AssessmentAttempt.
func (c *AssessmentAttemptClient) QueryItem(_m *AssessmentAttempt) *AssessmentItemQuery {
	query := (&AssessmentItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentattempt.Table, assessmentattempt.FieldID, id),
			sqlgraph.To(assessmentitem.Table, assessmentitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assessmentattempt.ItemTable, assessmentattempt.ItemColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStandard queries the standard edge of a AssessmentAttempt.
func (c *AssessmentAttemptClient) QueryStandard(_m *AssessmentAttempt) *StandardQuery {
	query := (&StandardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentattempt.Table, assessmentattempt.FieldID, id),
			sqlgraph.To(standard.Table, standard.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assessmentattempt.StandardTable, assessmentattempt.StandardColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AssessmentAttemptClient) Hooks() []Hook {
	return c.hooks.AssessmentAttempt
}

// Interceptors returns the client interceptors.
func (c *AssessmentAttemptClient) Interceptors() []Interceptor {
	return c.inters.AssessmentAttempt
}

func (c *AssessmentAttemptClient) mutate(ctx context.Context, m *AssessmentAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssessmentAttempt mutation op: %q", m.Op())
	}
}

// AssessmentItemClient is a client for the AssessmentItem schema.
type AssessmentItemClient struct {
	config
}

// NewAssessmentItemClient returns a client for the AssessmentItem from the given config.
func NewAssessmentItemClient(c config) *AssessmentItemClient {
	return &AssessmentItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentitem.Hooks(f(g(h())))`.
func (c *AssessmentItemClient) Use(hooks ...Hook) {
	c.hooks.AssessmentItem = append(c.hooks.AssessmentItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentitem.Intercept(f(g(h())))`.
func (c *AssessmentItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentItem = append(c.inters.AssessmentItem, interceptors...)
}

// Create returns a builder for creating a AssessmentItem entity.
func (c *AssessmentItemClient) Create() *AssessmentItemCreate {
	mutation := newAssessmentItemMutation(c.config, OpCreate)
	return &AssessmentItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentItem entities.
func (c *AssessmentItemClient) CreateBulk(builders ...*AssessmentItemCreate) *AssessmentItemCreateBulk {
	return &AssessmentItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentItemClient) MapCreateBulk(slice any, setFunc func(*AssessmentItemCreate, int)) *AssessmentItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentItemCreateBulk{err: fmt.Errorf("calling to AssessmentItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentItem.
func (c *AssessmentItemClient) Update() *AssessmentItemUpdate {
	mutation := newAssessmentItemMutation(c.config, OpUpdate)
	return &AssessmentItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentItemClient) UpdateOne(_m *AssessmentItem) *AssessmentItemUpdateOne {
	mutation := newAssessmentItemMutation(c.config, OpUpdateOne, withAssessmentItem(_m))
	return &AssessmentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentItemClient) UpdateOneID(id string) *AssessmentItemUpdateOne {
	mutation := newAssessmentItemMutation(c.config, OpUpdateOne, withAssessmentItemID(id))
	return &AssessmentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentItem.
func (c *AssessmentItemClient) Delete() *AssessmentItemDelete {
	mutation := newAssessmentItemMutation(c.config, OpDelete)
	return &AssessmentItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentItemClient) DeleteOne(_m *AssessmentItem) *AssessmentItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentItemClient) DeleteOneID(id string) *AssessmentItemDeleteOne {
	builder := c.Delete().Where(assessmentitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentItemDeleteOne{builder}
}

// Query returns a query builder for AssessmentItem.
func (c *AssessmentItemClient) Query() *AssessmentItemQuery {
	return &AssessmentItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentItem},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentItem entity by its id.
func (c *AssessmentItemClient) Get(ctx context.Context, id string) (*AssessmentItem, error) {
	return c.Query().Where(assessmentitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentItemClient) GetX(ctx context.Context, id string) *AssessmentItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStandard queries the standard edge of a AssessmentItem.
func (c *AssessmentItemClient) QueryStandard(_m *AssessmentItem) *StandardQuery {
	query := (&StandardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentitem.Table, assessmentitem.FieldID, id),
			sqlgraph.To(standard.Table, standard.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assessmentitem.StandardTable, assessmentitem.StandardColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttempts queries the attempts edge of a AssessmentItem.
func (c *AssessmentItemClient) QueryAttempts(_m *AssessmentItem) *AssessmentAttemptQuery {
	query := (&AssessmentAttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentitem.Table, assessmentitem.FieldID, id),
			sqlgraph.To(assessmentattempt.Table, assessmentattempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assessmentitem.AttemptsTable, assessmentitem.AttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AssessmentItemClient) Hooks() []Hook {
	return c.hooks.AssessmentItem
}

// Interceptors returns the client interceptors.
func (c *AssessmentItemClient) Interceptors() []Interceptor {
	return c.inters.AssessmentItem
}

func (c *AssessmentItemClient) mutate(ctx context.Context, m *AssessmentItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssessmentItem mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// StandardClient is a client for the Standard schema.
type StandardClient struct {
	config
}

// NewStandardClient returns a client for the Standard from the given config.
func NewStandardClient(c config) *StandardClient {
	return &StandardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `standard.Hooks(f(g(h())))`.
func (c *StandardClient) Use(hooks ...Hook) {
	c.hooks.Standard = append(c.hooks.Standard, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `standard.Intercept(f(g(h())))`.
func (c *StandardClient) Intercept(interceptors ...Interceptor) {
	c.inters.Standard = append(c.inters.Standard, interceptors...)
}

// Create returns a builder for creating a Standard entity.
func (c *StandardClient) Create() *StandardCreate {
	mutation := newStandardMutation(c.config, OpCreate)
	return &StandardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Standard entities.
func (c *StandardClient) CreateBulk(builders ...*StandardCreate) *StandardCreateBulk {
	return &StandardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StandardClient) MapCreateBulk(slice any, setFunc func(*StandardCreate, int)) *StandardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StandardCreateBulk{err: fmt.Errorf("calling to StandardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StandardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StandardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Standard.
func (c *StandardClient) Update() *StandardUpdate {
	mutation := newStandardMutation(c.config, OpUpdate)
	return &StandardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StandardClient) UpdateOne(_m *Standard) *StandardUpdateOne {
	mutation := newStandardMutation(c.config, OpUpdateOne, withStandard(_m))
	return &StandardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StandardClient) UpdateOneID(id string) *StandardUpdateOne {
	mutation := newStandardMutation(c.config, OpUpdateOne, withStandardID(id))
	return &StandardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Standard.
func (c *StandardClient) Delete() *StandardDelete {
	mutation := newStandardMutation(c.config, OpDelete)
	return &StandardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StandardClient) DeleteOne(_m *Standard) *StandardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StandardClient) DeleteOneID(id string) *StandardDeleteOne {
	builder := c.Delete().Where(standard.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StandardDeleteOne{builder}
}

// Query returns a query builder for Standard.
func (c *StandardClient) Query() *StandardQuery {
	return &StandardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStandard},
		inters: c.Interceptors(),
	}
}

// Get returns a Standard entity by its id.
func (c *StandardClient) Get(ctx context.Context, id string) (*Standard, error) {
	return c.Query().Where(standard.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StandardClient) GetX(ctx context.Context, id string) *Standard {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a Standard.
func (c *StandardClient) QueryItems(_m *Standard) *AssessmentItemQuery {
	query := (&AssessmentItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(standard.Table, standard.FieldID, id),
			sqlgraph.To(assessmentitem.Table, assessmentitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, standard.ItemsTable, standard.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttempts queries the attempts edge of a Standard.
func (c *StandardClient) QueryAttempts(_m *Standard) *AssessmentAttemptQuery {
	query := (&AssessmentAttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(standard.Table, standard.FieldID, id),
			sqlgraph.To(assessmentattempt.Table, assessmentattempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, standard.AttemptsTable, standard.AttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StandardClient) Hooks() []Hook {
	return c.hooks.Standard
}

// Interceptors returns the client interceptors.
func (c *StandardClient) Interceptors() []Interceptor {
	return c.inters.Standard
}

func (c *StandardClient) mutate(ctx context.Context, m *StandardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StandardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StandardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StandardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StandardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Standard mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAttempts queries the attempts edge of a User.
func (c *UserClient) QueryAttempts(_m *User) *AssessmentAttemptQuery {
	query := (&AssessmentAttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(assessmentattempt.Table, assessmentattempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.AttemptsTable, user.AttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AssessmentAttempt, AssessmentItem, LLMRequestEvent, Standard, User []ent.Hook
	}
	inters struct {
		AssessmentAttempt, AssessmentItem, LLMRequestEvent, Standard,
		User []ent.Interceptor
	}
)
