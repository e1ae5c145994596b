// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"agriplot.io/agriplot/ent/migrate"

	"agriplot.io/agriplot/ent/agentprofile"
	"agriplot.io/agriplot/ent/emaillog"
	"agriplot.io/agriplot/ent/landownerprofile"
	"agriplot.io/agriplot/ent/notification"
	"agriplot.io/agriplot/ent/plot"
	"agriplot.io/agriplot/ent/user"
	"agriplot.io/agriplot/ent/verificationlogentry"
	"agriplot.io/agriplot/ent/verificationrecord"
	"agriplot.io/agriplot/ent/verificationtask"
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentProfile is the client for interacting with the AgentProfile builders.
	AgentProfile *AgentProfileClient
	// EmailLog is the client for interacting with the EmailLog builders.
	EmailLog *EmailLogClient
	// LandownerProfile is the client for interacting with the LandownerProfile builders.
	LandownerProfile *LandownerProfileClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// Plot is the client for interacting with the Plot builders.
	Plot *PlotClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// VerificationLogEntry is the client for interacting with the VerificationLogEntry builders.
	VerificationLogEntry *VerificationLogEntryClient
	// VerificationRecord is the client for interacting with the VerificationRecord builders.
	VerificationRecord *VerificationRecordClient
	// VerificationTask is the client for interacting with the VerificationTask builders.
	VerificationTask *VerificationTaskClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentProfile = NewAgentProfileClient(c.config)
	c.EmailLog = NewEmailLogClient(c.config)
	c.LandownerProfile = NewLandownerProfileClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.Plot = NewPlotClient(c.config)
	c.User = NewUserClient(c.config)
	c.VerificationLogEntry = NewVerificationLogEntryClient(c.config)
	c.VerificationRecord = NewVerificationRecordClient(c.config)
	c.VerificationTask = NewVerificationTaskClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		AgentProfile:         NewAgentProfileClient(cfg),
		EmailLog:             NewEmailLogClient(cfg),
		LandownerProfile:     NewLandownerProfileClient(cfg),
		Notification:         NewNotificationClient(cfg),
		Plot:                 NewPlotClient(cfg),
		User:                 NewUserClient(cfg),
		VerificationLogEntry: NewVerificationLogEntryClient(cfg),
		VerificationRecord:   NewVerificationRecordClient(cfg),
		VerificationTask:     NewVerificationTaskClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		AgentProfile:         NewAgentProfileClient(cfg),
		EmailLog:             NewEmailLogClient(cfg),
		LandownerProfile:     NewLandownerProfileClient(cfg),
		Notification:         NewNotificationClient(cfg),
		Plot:                 NewPlotClient(cfg),
		User:                 NewUserClient(cfg),
		VerificationLogEntry: NewVerificationLogEntryClient(cfg),
		VerificationRecord:   NewVerificationRecordClient(cfg),
		VerificationTask:     NewVerificationTaskClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentProfile.
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
		c.AgentProfile, c.EmailLog, c.LandownerProfile, c.Notification, c.Plot, c.User,
		c.VerificationLogEntry, c.VerificationRecord, c.VerificationTask,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentProfile, c.EmailLog, c.LandownerProfile, c.Notification, c.Plot, c.User,
		c.VerificationLogEntry, c.VerificationRecord, c.VerificationTask,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentProfileMutation:
		return c.AgentProfile.mutate(ctx, m)
	case *EmailLogMutation:
		return c.EmailLog.mutate(ctx, m)
	case *LandownerProfileMutation:
		return c.LandownerProfile.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *PlotMutation:
		return c.Plot.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *VerificationLogEntryMutation:
		return c.VerificationLogEntry.mutate(ctx, m)
	case *VerificationRecordMutation:
		return c.VerificationRecord.mutate(ctx, m)
	case *VerificationTaskMutation:
		return c.VerificationTask.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentProfileClient is a client for the AgentProfile schema.
type AgentProfileClient struct {
	config
}

// NewAgentProfileClient returns a client for the AgentProfile from the given config.
func NewAgentProfileClient(c config) *AgentProfileClient {
	return &AgentProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentprofile.Hooks(f(g(h())))`.
func (c *AgentProfileClient) Use(hooks ...Hook) {
	c.hooks.AgentProfile = append(c.hooks.AgentProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentprofile.Intercept(f(g(h())))`.
func (c *AgentProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentProfile = append(c.inters.AgentProfile, interceptors...)
}

// Create returns a builder for creating a AgentProfile entity.
func (c *AgentProfileClient) Create() *AgentProfileCreate {
	mutation := newAgentProfileMutation(c.config, OpCreate)
	return &AgentProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentProfile entities.
func (c *AgentProfileClient) CreateBulk(builders ...*AgentProfileCreate) *AgentProfileCreateBulk {
	return &AgentProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentProfileClient) MapCreateBulk(slice any, setFunc func(*AgentProfileCreate, int)) *AgentProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentProfileCreateBulk{err: fmt.Errorf("calling to AgentProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentProfile.
func (c *AgentProfileClient) Update() *AgentProfileUpdate {
	mutation := newAgentProfileMutation(c.config, OpUpdate)
	return &AgentProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentProfileClient) UpdateOne(_m *AgentProfile) *AgentProfileUpdateOne {
	mutation := newAgentProfileMutation(c.config, OpUpdateOne, withAgentProfile(_m))
	return &AgentProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentProfileClient) UpdateOneID(id string) *AgentProfileUpdateOne {
	mutation := newAgentProfileMutation(c.config, OpUpdateOne, withAgentProfileID(id))
	return &AgentProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentProfile.
func (c *AgentProfileClient) Delete() *AgentProfileDelete {
	mutation := newAgentProfileMutation(c.config, OpDelete)
	return &AgentProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentProfileClient) DeleteOne(_m *AgentProfile) *AgentProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentProfileClient) DeleteOneID(id string) *AgentProfileDeleteOne {
	builder := c.Delete().Where(agentprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentProfileDeleteOne{builder}
}

// Query returns a query builder for AgentProfile.
func (c *AgentProfileClient) Query() *AgentProfileQuery {
	return &AgentProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentProfile entity by its id.
func (c *AgentProfileClient) Get(ctx context.Context, id string) (*AgentProfile, error) {
	return c.Query().Where(agentprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentProfileClient) GetX(ctx context.Context, id string) *AgentProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentProfileClient) Hooks() []Hook {
	return c.hooks.AgentProfile
}

// Interceptors returns the client interceptors.
func (c *AgentProfileClient) Interceptors() []Interceptor {
	return c.inters.AgentProfile
}

func (c *AgentProfileClient) mutate(ctx context.Context, m *AgentProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentProfile mutation op: %q", m.Op())
	}
}

// EmailLogClient is a client for the EmailLog schema.
type EmailLogClient struct {
	config
}

// NewEmailLogClient returns a client for the EmailLog from the given config.
func NewEmailLogClient(c config) *EmailLogClient {
	return &EmailLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emaillog.Hooks(f(g(h())))`.
func (c *EmailLogClient) Use(hooks ...Hook) {
	c.hooks.EmailLog = append(c.hooks.EmailLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emaillog.Intercept(f(g(h())))`.
func (c *EmailLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmailLog = append(c.inters.EmailLog, interceptors...)
}

// Create returns a builder for creating a EmailLog entity.
func (c *EmailLogClient) Create() *EmailLogCreate {
	mutation := newEmailLogMutation(c.config, OpCreate)
	return &EmailLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmailLog entities.
func (c *EmailLogClient) CreateBulk(builders ...*EmailLogCreate) *EmailLogCreateBulk {
	return &EmailLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmailLogClient) MapCreateBulk(slice any, setFunc func(*EmailLogCreate, int)) *EmailLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmailLogCreateBulk{err: fmt.Errorf("calling to EmailLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmailLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmailLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmailLog.
func (c *EmailLogClient) Update() *EmailLogUpdate {
	mutation := newEmailLogMutation(c.config, OpUpdate)
	return &EmailLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmailLogClient) UpdateOne(_m *EmailLog) *EmailLogUpdateOne {
	mutation := newEmailLogMutation(c.config, OpUpdateOne, withEmailLog(_m))
	return &EmailLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmailLogClient) UpdateOneID(id string) *EmailLogUpdateOne {
	mutation := newEmailLogMutation(c.config, OpUpdateOne, withEmailLogID(id))
	return &EmailLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmailLog.
func (c *EmailLogClient) Delete() *EmailLogDelete {
	mutation := newEmailLogMutation(c.config, OpDelete)
	return &EmailLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmailLogClient) DeleteOne(_m *EmailLog) *EmailLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmailLogClient) DeleteOneID(id string) *EmailLogDeleteOne {
	builder := c.Delete().Where(emaillog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmailLogDeleteOne{builder}
}

// Query returns a query builder for EmailLog.
func (c *EmailLogClient) Query() *EmailLogQuery {
	return &EmailLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmailLog},
		inters: c.Interceptors(),
	}
}

// Get returns a EmailLog entity by its id.
func (c *EmailLogClient) Get(ctx context.Context, id string) (*EmailLog, error) {
	return c.Query().Where(emaillog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmailLogClient) GetX(ctx context.Context, id string) *EmailLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EmailLogClient) Hooks() []Hook {
	return c.hooks.EmailLog
}

// Interceptors returns the client interceptors.
func (c *EmailLogClient) Interceptors() []Interceptor {
	return c.inters.EmailLog
}

func (c *EmailLogClient) mutate(ctx context.Context, m *EmailLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmailLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmailLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmailLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmailLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmailLog mutation op: %q", m.Op())
	}
}

// LandownerProfileClient is a client for the LandownerProfile schema.
type LandownerProfileClient struct {
	config
}

// NewLandownerProfileClient returns a client for the LandownerProfile from the given config.
func NewLandownerProfileClient(c config) *LandownerProfileClient {
	return &LandownerProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `landownerprofile.Hooks(f(g(h())))`.
func (c *LandownerProfileClient) Use(hooks ...Hook) {
	c.hooks.LandownerProfile = append(c.hooks.LandownerProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `landownerprofile.Intercept(f(g(h())))`.
func (c *LandownerProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.LandownerProfile = append(c.inters.LandownerProfile, interceptors...)
}

// Create returns a builder for creating a LandownerProfile entity.
func (c *LandownerProfileClient) Create() *LandownerProfileCreate {
	mutation := newLandownerProfileMutation(c.config, OpCreate)
	return &LandownerProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LandownerProfile entities.
func (c *LandownerProfileClient) CreateBulk(builders ...*LandownerProfileCreate) *LandownerProfileCreateBulk {
	return &LandownerProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LandownerProfileClient) MapCreateBulk(slice any, setFunc func(*LandownerProfileCreate, int)) *LandownerProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LandownerProfileCreateBulk{err: fmt.Errorf("calling to LandownerProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LandownerProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LandownerProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LandownerProfile.
func (c *LandownerProfileClient) Update() *LandownerProfileUpdate {
	mutation := newLandownerProfileMutation(c.config, OpUpdate)
	return &LandownerProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LandownerProfileClient) UpdateOne(_m *LandownerProfile) *LandownerProfileUpdateOne {
	mutation := newLandownerProfileMutation(c.config, OpUpdateOne, withLandownerProfile(_m))
	return &LandownerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LandownerProfileClient) UpdateOneID(id string) *LandownerProfileUpdateOne {
	mutation := newLandownerProfileMutation(c.config, OpUpdateOne, withLandownerProfileID(id))
	return &LandownerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LandownerProfile.
func (c *LandownerProfileClient) Delete() *LandownerProfileDelete {
	mutation := newLandownerProfileMutation(c.config, OpDelete)
	return &LandownerProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LandownerProfileClient) DeleteOne(_m *LandownerProfile) *LandownerProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LandownerProfileClient) DeleteOneID(id string) *LandownerProfileDeleteOne {
	builder := c.Delete().Where(landownerprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LandownerProfileDeleteOne{builder}
}

// Query returns a query builder for LandownerProfile.
func (c *LandownerProfileClient) Query() *LandownerProfileQuery {
	return &LandownerProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLandownerProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a LandownerProfile entity by its id.
func (c *LandownerProfileClient) Get(ctx context.Context, id string) (*LandownerProfile, error) {
	return c.Query().Where(landownerprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LandownerProfileClient) GetX(ctx context.Context, id string) *LandownerProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LandownerProfileClient) Hooks() []Hook {
	return c.hooks.LandownerProfile
}

// Interceptors returns the client interceptors.
func (c *LandownerProfileClient) Interceptors() []Interceptor {
	return c.inters.LandownerProfile
}

func (c *LandownerProfileClient) mutate(ctx context.Context, m *LandownerProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LandownerProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LandownerProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LandownerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LandownerProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LandownerProfile mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id string) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id string) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id string) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id string) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Notification.
func (c *NotificationClient) QueryUser(_m *Notification) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(notification.Table, notification.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, notification.UserTable, notification.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Notification mutation op: %q", m.Op())
	}
}

// PlotClient is a client for the Plot schema.
type PlotClient struct {
	config
}

// NewPlotClient returns a client for the Plot from the given config.
func NewPlotClient(c config) *PlotClient {
	return &PlotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `plot.Hooks(f(g(h())))`.
func (c *PlotClient) Use(hooks ...Hook) {
	c.hooks.Plot = append(c.hooks.Plot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `plot.Intercept(f(g(h())))`.
func (c *PlotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Plot = append(c.inters.Plot, interceptors...)
}

// Create returns a builder for creating a Plot entity.
func (c *PlotClient) Create() *PlotCreate {
	mutation := newPlotMutation(c.config, OpCreate)
	return &PlotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Plot entities.
func (c *PlotClient) CreateBulk(builders ...*PlotCreate) *PlotCreateBulk {
	return &PlotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlotClient) MapCreateBulk(slice any, setFunc func(*PlotCreate, int)) *PlotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlotCreateBulk{err: fmt.Errorf("calling to PlotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Plot.
func (c *PlotClient) Update() *PlotUpdate {
	mutation := newPlotMutation(c.config, OpUpdate)
	return &PlotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlotClient) UpdateOne(_m *Plot) *PlotUpdateOne {
	mutation := newPlotMutation(c.config, OpUpdateOne, withPlot(_m))
	return &PlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlotClient) UpdateOneID(id string) *PlotUpdateOne {
	mutation := newPlotMutation(c.config, OpUpdateOne, withPlotID(id))
	return &PlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Plot.
func (c *PlotClient) Delete() *PlotDelete {
	mutation := newPlotMutation(c.config, OpDelete)
	return &PlotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlotClient) DeleteOne(_m *Plot) *PlotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlotClient) DeleteOneID(id string) *PlotDeleteOne {
	builder := c.Delete().Where(plot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlotDeleteOne{builder}
}

// Query returns a query builder for Plot.
func (c *PlotClient) Query() *PlotQuery {
	return &PlotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlot},
		inters: c.Interceptors(),
	}
}

// Get returns a Plot entity by its id.
func (c *PlotClient) Get(ctx context.Context, id string) (*Plot, error) {
	return c.Query().Where(plot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlotClient) GetX(ctx context.Context, id string) *Plot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTasks queries the tasks edge of a Plot.
func (c *PlotClient) QueryTasks(_m *Plot) *VerificationTaskQuery {
	query := (&VerificationTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(plot.Table, plot.FieldID, id),
			sqlgraph.To(verificationtask.Table, verificationtask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, plot.TasksTable, plot.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PlotClient) Hooks() []Hook {
	return c.hooks.Plot
}

// Interceptors returns the client interceptors.
func (c *PlotClient) Interceptors() []Interceptor {
	return c.inters.Plot
}

func (c *PlotClient) mutate(ctx context.Context, m *PlotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Plot mutation op: %q", m.Op())
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

// QueryNotifications queries the notifications edge of a User.
func (c *UserClient) QueryNotifications(_m *User) *NotificationQuery {
	query := (&NotificationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(notification.Table, notification.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.NotificationsTable, user.NotificationsColumn),
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

// VerificationLogEntryClient is a client for the VerificationLogEntry schema.
type VerificationLogEntryClient struct {
	config
}

// NewVerificationLogEntryClient returns a client for the VerificationLogEntry from the given config.
func NewVerificationLogEntryClient(c config) *VerificationLogEntryClient {
	return &VerificationLogEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verificationlogentry.Hooks(f(g(h())))`.
func (c *VerificationLogEntryClient) Use(hooks ...Hook) {
	c.hooks.VerificationLogEntry = append(c.hooks.VerificationLogEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verificationlogentry.Intercept(f(g(h())))`.
func (c *VerificationLogEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerificationLogEntry = append(c.inters.VerificationLogEntry, interceptors...)
}

// Create returns a builder for creating a VerificationLogEntry entity.
func (c *VerificationLogEntryClient) Create() *VerificationLogEntryCreate {
	mutation := newVerificationLogEntryMutation(c.config, OpCreate)
	return &VerificationLogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerificationLogEntry entities.
func (c *VerificationLogEntryClient) CreateBulk(builders ...*VerificationLogEntryCreate) *VerificationLogEntryCreateBulk {
	return &VerificationLogEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerificationLogEntryClient) MapCreateBulk(slice any, setFunc func(*VerificationLogEntryCreate, int)) *VerificationLogEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerificationLogEntryCreateBulk{err: fmt.Errorf("calling to VerificationLogEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerificationLogEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerificationLogEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerificationLogEntry.
func (c *VerificationLogEntryClient) Update() *VerificationLogEntryUpdate {
	mutation := newVerificationLogEntryMutation(c.config, OpUpdate)
	return &VerificationLogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerificationLogEntryClient) UpdateOne(_m *VerificationLogEntry) *VerificationLogEntryUpdateOne {
	mutation := newVerificationLogEntryMutation(c.config, OpUpdateOne, withVerificationLogEntry(_m))
	return &VerificationLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerificationLogEntryClient) UpdateOneID(id string) *VerificationLogEntryUpdateOne {
	mutation := newVerificationLogEntryMutation(c.config, OpUpdateOne, withVerificationLogEntryID(id))
	return &VerificationLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerificationLogEntry.
func (c *VerificationLogEntryClient) Delete() *VerificationLogEntryDelete {
	mutation := newVerificationLogEntryMutation(c.config, OpDelete)
	return &VerificationLogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerificationLogEntryClient) DeleteOne(_m *VerificationLogEntry) *VerificationLogEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerificationLogEntryClient) DeleteOneID(id string) *VerificationLogEntryDeleteOne {
	builder := c.Delete().Where(verificationlogentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerificationLogEntryDeleteOne{builder}
}

// Query returns a query builder for VerificationLogEntry.
func (c *VerificationLogEntryClient) Query() *VerificationLogEntryQuery {
	return &VerificationLogEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerificationLogEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a VerificationLogEntry entity by its id.
func (c *VerificationLogEntryClient) Get(ctx context.Context, id string) (*VerificationLogEntry, error) {
	return c.Query().Where(verificationlogentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerificationLogEntryClient) GetX(ctx context.Context, id string) *VerificationLogEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VerificationLogEntryClient) Hooks() []Hook {
	return c.hooks.VerificationLogEntry
}

// Interceptors returns the client interceptors.
func (c *VerificationLogEntryClient) Interceptors() []Interceptor {
	return c.inters.VerificationLogEntry
}

func (c *VerificationLogEntryClient) mutate(ctx context.Context, m *VerificationLogEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerificationLogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerificationLogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerificationLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerificationLogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerificationLogEntry mutation op: %q", m.Op())
	}
}

// VerificationRecordClient is a client for the VerificationRecord schema.
type VerificationRecordClient struct {
	config
}

// NewVerificationRecordClient returns a client for the VerificationRecord from the given config.
func NewVerificationRecordClient(c config) *VerificationRecordClient {
	return &VerificationRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verificationrecord.Hooks(f(g(h())))`.
func (c *VerificationRecordClient) Use(hooks ...Hook) {
	c.hooks.VerificationRecord = append(c.hooks.VerificationRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verificationrecord.Intercept(f(g(h())))`.
func (c *VerificationRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerificationRecord = append(c.inters.VerificationRecord, interceptors...)
}

// Create returns a builder for creating a VerificationRecord entity.
func (c *VerificationRecordClient) Create() *VerificationRecordCreate {
	mutation := newVerificationRecordMutation(c.config, OpCreate)
	return &VerificationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerificationRecord entities.
func (c *VerificationRecordClient) CreateBulk(builders ...*VerificationRecordCreate) *VerificationRecordCreateBulk {
	return &VerificationRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerificationRecordClient) MapCreateBulk(slice any, setFunc func(*VerificationRecordCreate, int)) *VerificationRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerificationRecordCreateBulk{err: fmt.Errorf("calling to VerificationRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerificationRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerificationRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerificationRecord.
func (c *VerificationRecordClient) Update() *VerificationRecordUpdate {
	mutation := newVerificationRecordMutation(c.config, OpUpdate)
	return &VerificationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerificationRecordClient) UpdateOne(_m *VerificationRecord) *VerificationRecordUpdateOne {
	mutation := newVerificationRecordMutation(c.config, OpUpdateOne, withVerificationRecord(_m))
	return &VerificationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerificationRecordClient) UpdateOneID(id string) *VerificationRecordUpdateOne {
	mutation := newVerificationRecordMutation(c.config, OpUpdateOne, withVerificationRecordID(id))
	return &VerificationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerificationRecord.
func (c *VerificationRecordClient) Delete() *VerificationRecordDelete {
	mutation := newVerificationRecordMutation(c.config, OpDelete)
	return &VerificationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerificationRecordClient) DeleteOne(_m *VerificationRecord) *VerificationRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerificationRecordClient) DeleteOneID(id string) *VerificationRecordDeleteOne {
	builder := c.Delete().Where(verificationrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerificationRecordDeleteOne{builder}
}

// Query returns a query builder for VerificationRecord.
func (c *VerificationRecordClient) Query() *VerificationRecordQuery {
	return &VerificationRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerificationRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a VerificationRecord entity by its id.
func (c *VerificationRecordClient) Get(ctx context.Context, id string) (*VerificationRecord, error) {
	return c.Query().Where(verificationrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerificationRecordClient) GetX(ctx context.Context, id string) *VerificationRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VerificationRecordClient) Hooks() []Hook {
	return c.hooks.VerificationRecord
}

// Interceptors returns the client interceptors.
func (c *VerificationRecordClient) Interceptors() []Interceptor {
	return c.inters.VerificationRecord
}

func (c *VerificationRecordClient) mutate(ctx context.Context, m *VerificationRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerificationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerificationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerificationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerificationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerificationRecord mutation op: %q", m.Op())
	}
}

// VerificationTaskClient is a client for the VerificationTask schema.
type VerificationTaskClient struct {
	config
}

// NewVerificationTaskClient returns a client for the VerificationTask from the given config.
func NewVerificationTaskClient(c config) *VerificationTaskClient {
	return &VerificationTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verificationtask.Hooks(f(g(h())))`.
func (c *VerificationTaskClient) Use(hooks ...Hook) {
	c.hooks.VerificationTask = append(c.hooks.VerificationTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verificationtask.Intercept(f(g(h())))`.
func (c *VerificationTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerificationTask = append(c.inters.VerificationTask, interceptors...)
}

// Create returns a builder for creating a VerificationTask entity.
func (c *VerificationTaskClient) Create() *VerificationTaskCreate {
	mutation := newVerificationTaskMutation(c.config, OpCreate)
	return &VerificationTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerificationTask entities.
func (c *VerificationTaskClient) CreateBulk(builders ...*VerificationTaskCreate) *VerificationTaskCreateBulk {
	return &VerificationTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerificationTaskClient) MapCreateBulk(slice any, setFunc func(*VerificationTaskCreate, int)) *VerificationTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerificationTaskCreateBulk{err: fmt.Errorf("calling to VerificationTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerificationTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerificationTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerificationTask.
func (c *VerificationTaskClient) Update() *VerificationTaskUpdate {
	mutation := newVerificationTaskMutation(c.config, OpUpdate)
	return &VerificationTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerificationTaskClient) UpdateOne(_m *VerificationTask) *VerificationTaskUpdateOne {
	mutation := newVerificationTaskMutation(c.config, OpUpdateOne, withVerificationTask(_m))
	return &VerificationTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerificationTaskClient) UpdateOneID(id string) *VerificationTaskUpdateOne {
	mutation := newVerificationTaskMutation(c.config, OpUpdateOne, withVerificationTaskID(id))
	return &VerificationTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerificationTask.
func (c *VerificationTaskClient) Delete() *VerificationTaskDelete {
	mutation := newVerificationTaskMutation(c.config, OpDelete)
	return &VerificationTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerificationTaskClient) DeleteOne(_m *VerificationTask) *VerificationTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerificationTaskClient) DeleteOneID(id string) *VerificationTaskDeleteOne {
	builder := c.Delete().Where(verificationtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerificationTaskDeleteOne{builder}
}

// Query returns a query builder for VerificationTask.
func (c *VerificationTaskClient) Query() *VerificationTaskQuery {
	return &VerificationTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerificationTask},
		inters: c.Interceptors(),
	}
}

// Get returns a VerificationTask entity by its id.
func (c *VerificationTaskClient) Get(ctx context.Context, id string) (*VerificationTask, error) {
	return c.Query().Where(verificationtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerificationTaskClient) GetX(ctx context.Context, id string) *VerificationTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPlot queries the plot edge of a VerificationTask.
func (c *VerificationTaskClient) QueryPlot(_m *VerificationTask) *PlotQuery {
	query := (&PlotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verificationtask.Table, verificationtask.FieldID, id),
			sqlgraph.To(plot.Table, plot.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, verificationtask.PlotTable, verificationtask.PlotColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VerificationTaskClient) Hooks() []Hook {
	return c.hooks.VerificationTask
}

// Interceptors returns the client interceptors.
func (c *VerificationTaskClient) Interceptors() []Interceptor {
	return c.inters.VerificationTask
}

func (c *VerificationTaskClient) mutate(ctx context.Context, m *VerificationTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerificationTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerificationTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerificationTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerificationTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerificationTask mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentProfile, EmailLog, LandownerProfile, Notification, Plot, User,
		VerificationLogEntry, VerificationRecord, VerificationTask []ent.Hook
	}
	inters struct {
		AgentProfile, EmailLog, LandownerProfile, Notification, Plot, User,
		VerificationLogEntry, VerificationRecord, VerificationTask []ent.Interceptor
	}
)
