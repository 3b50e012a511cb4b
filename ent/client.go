// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/arogya-labs/aushadhi/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/arogya-labs/aushadhi/ent/auditlogentry"
	"github.com/arogya-labs/aushadhi/ent/medicine"
	"github.com/arogya-labs/aushadhi/ent/order"
	"github.com/arogya-labs/aushadhi/ent/orderline"
	"github.com/arogya-labs/aushadhi/ent/patient"
	"github.com/arogya-labs/aushadhi/ent/refillprediction"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditLogEntry is the client for interacting with the AuditLogEntry builders.
	AuditLogEntry *AuditLogEntryClient
	// Medicine is the client for interacting with the Medicine builders.
	Medicine *MedicineClient
	// Order is the client for interacting with the Order builders.
	Order *OrderClient
	// OrderLine is the client for interacting with the OrderLine builders.
	OrderLine *OrderLineClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// RefillPrediction is the client for interacting with the RefillPrediction builders.
	RefillPrediction *RefillPredictionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditLogEntry = NewAuditLogEntryClient(c.config)
	c.Medicine = NewMedicineClient(c.config)
	c.Order = NewOrderClient(c.config)
	c.OrderLine = NewOrderLineClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.RefillPrediction = NewRefillPredictionClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AuditLogEntry:    NewAuditLogEntryClient(cfg),
		Medicine:         NewMedicineClient(cfg),
		Order:            NewOrderClient(cfg),
		OrderLine:        NewOrderLineClient(cfg),
		Patient:          NewPatientClient(cfg),
		RefillPrediction: NewRefillPredictionClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AuditLogEntry:    NewAuditLogEntryClient(cfg),
		Medicine:         NewMedicineClient(cfg),
		Order:            NewOrderClient(cfg),
		OrderLine:        NewOrderLineClient(cfg),
		Patient:          NewPatientClient(cfg),
		RefillPrediction: NewRefillPredictionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditLogEntry.
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
		c.AuditLogEntry, c.Medicine, c.Order, c.OrderLine, c.Patient,
		c.RefillPrediction,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditLogEntry, c.Medicine, c.Order, c.OrderLine, c.Patient,
		c.RefillPrediction,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditLogEntryMutation:
		return c.AuditLogEntry.mutate(ctx, m)
	case *MedicineMutation:
		return c.Medicine.mutate(ctx, m)
	case *OrderMutation:
		return c.Order.mutate(ctx, m)
	case *OrderLineMutation:
		return c.OrderLine.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *RefillPredictionMutation:
		return c.RefillPrediction.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditLogEntryClient is a client for the AuditLogEntry schema.
type AuditLogEntryClient struct {
	config
}

// NewAuditLogEntryClient returns a client for the AuditLogEntry from the given config.
func NewAuditLogEntryClient(c config) *AuditLogEntryClient {
	return &AuditLogEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlogentry.Hooks(f(g(h())))`.
func (c *AuditLogEntryClient) Use(hooks ...Hook) {
	c.hooks.AuditLogEntry = append(c.hooks.AuditLogEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlogentry.Intercept(f(g(h())))`.
func (c *AuditLogEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLogEntry = append(c.inters.AuditLogEntry, interceptors...)
}

// Create returns a builder for creating a AuditLogEntry entity.
func (c *AuditLogEntryClient) Create() *AuditLogEntryCreate {
	mutation := newAuditLogEntryMutation(c.config, OpCreate)
	return &AuditLogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLogEntry entities.
func (c *AuditLogEntryClient) CreateBulk(builders ...*AuditLogEntryCreate) *AuditLogEntryCreateBulk {
	return &AuditLogEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogEntryClient) MapCreateBulk(slice any, setFunc func(*AuditLogEntryCreate, int)) *AuditLogEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogEntryCreateBulk{err: fmt.Errorf("calling to AuditLogEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLogEntry.
func (c *AuditLogEntryClient) Update() *AuditLogEntryUpdate {
	mutation := newAuditLogEntryMutation(c.config, OpUpdate)
	return &AuditLogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogEntryClient) UpdateOne(_m *AuditLogEntry) *AuditLogEntryUpdateOne {
	mutation := newAuditLogEntryMutation(c.config, OpUpdateOne, withAuditLogEntry(_m))
	return &AuditLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogEntryClient) UpdateOneID(id int) *AuditLogEntryUpdateOne {
	mutation := newAuditLogEntryMutation(c.config, OpUpdateOne, withAuditLogEntryID(id))
	return &AuditLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLogEntry.
func (c *AuditLogEntryClient) Delete() *AuditLogEntryDelete {
	mutation := newAuditLogEntryMutation(c.config, OpDelete)
	return &AuditLogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogEntryClient) DeleteOne(_m *AuditLogEntry) *AuditLogEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogEntryClient) DeleteOneID(id int) *AuditLogEntryDeleteOne {
	builder := c.Delete().Where(auditlogentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogEntryDeleteOne{builder}
}

// Query returns a query builder for AuditLogEntry.
func (c *AuditLogEntryClient) Query() *AuditLogEntryQuery {
	return &AuditLogEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLogEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLogEntry entity by its id.
func (c *AuditLogEntryClient) Get(ctx context.Context, id int) (*AuditLogEntry, error) {
	return c.Query().Where(auditlogentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogEntryClient) GetX(ctx context.Context, id int) *AuditLogEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrder queries the order edge of a AuditLogEntry.
func (c *AuditLogEntryClient) QueryOrder(_m *AuditLogEntry) *OrderQuery {
	query := (&OrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditlogentry.Table, auditlogentry.FieldID, id),
			sqlgraph.To(order.Table, order.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditlogentry.OrderTable, auditlogentry.OrderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditLogEntryClient) Hooks() []Hook {
	return c.hooks.AuditLogEntry
}

// Interceptors returns the client interceptors.
func (c *AuditLogEntryClient) Interceptors() []Interceptor {
	return c.inters.AuditLogEntry
}

func (c *AuditLogEntryClient) mutate(ctx context.Context, m *AuditLogEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLogEntry mutation op: %q", m.Op())
	}
}

// MedicineClient is a client for the Medicine schema.
type MedicineClient struct {
	config
}

// NewMedicineClient returns a client for the Medicine from the given config.
func NewMedicineClient(c config) *MedicineClient {
	return &MedicineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `medicine.Hooks(f(g(h())))`.
func (c *MedicineClient) Use(hooks ...Hook) {
	c.hooks.Medicine = append(c.hooks.Medicine, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `medicine.Intercept(f(g(h())))`.
func (c *MedicineClient) Intercept(interceptors ...Interceptor) {
	c.inters.Medicine = append(c.inters.Medicine, interceptors...)
}

// Create returns a builder for creating a Medicine entity.
func (c *MedicineClient) Create() *MedicineCreate {
	mutation := newMedicineMutation(c.config, OpCreate)
	return &MedicineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Medicine entities.
func (c *MedicineClient) CreateBulk(builders ...*MedicineCreate) *MedicineCreateBulk {
	return &MedicineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MedicineClient) MapCreateBulk(slice any, setFunc func(*MedicineCreate, int)) *MedicineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MedicineCreateBulk{err: fmt.Errorf("calling to MedicineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MedicineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MedicineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Medicine.
func (c *MedicineClient) Update() *MedicineUpdate {
	mutation := newMedicineMutation(c.config, OpUpdate)
	return &MedicineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MedicineClient) UpdateOne(_m *Medicine) *MedicineUpdateOne {
	mutation := newMedicineMutation(c.config, OpUpdateOne, withMedicine(_m))
	return &MedicineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MedicineClient) UpdateOneID(id int) *MedicineUpdateOne {
	mutation := newMedicineMutation(c.config, OpUpdateOne, withMedicineID(id))
	return &MedicineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Medicine.
func (c *MedicineClient) Delete() *MedicineDelete {
	mutation := newMedicineMutation(c.config, OpDelete)
	return &MedicineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MedicineClient) DeleteOne(_m *Medicine) *MedicineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MedicineClient) DeleteOneID(id int) *MedicineDeleteOne {
	builder := c.Delete().Where(medicine.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MedicineDeleteOne{builder}
}

// Query returns a query builder for Medicine.
func (c *MedicineClient) Query() *MedicineQuery {
	return &MedicineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedicine},
		inters: c.Interceptors(),
	}
}

// Get returns a Medicine entity by its id.
func (c *MedicineClient) Get(ctx context.Context, id int) (*Medicine, error) {
	return c.Query().Where(medicine.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MedicineClient) GetX(ctx context.Context, id int) *Medicine {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MedicineClient) Hooks() []Hook {
	return c.hooks.Medicine
}

// Interceptors returns the client interceptors.
func (c *MedicineClient) Interceptors() []Interceptor {
	return c.inters.Medicine
}

func (c *MedicineClient) mutate(ctx context.Context, m *MedicineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MedicineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MedicineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MedicineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MedicineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Medicine mutation op: %q", m.Op())
	}
}

// OrderClient is a client for the Order schema.
type OrderClient struct {
	config
}

// NewOrderClient returns a client for the Order from the given config.
func NewOrderClient(c config) *OrderClient {
	return &OrderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `order.Hooks(f(g(h())))`.
func (c *OrderClient) Use(hooks ...Hook) {
	c.hooks.Order = append(c.hooks.Order, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `order.Intercept(f(g(h())))`.
func (c *OrderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Order = append(c.inters.Order, interceptors...)
}

// Create returns a builder for creating a Order entity.
func (c *OrderClient) Create() *OrderCreate {
	mutation := newOrderMutation(c.config, OpCreate)
	return &OrderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Order entities.
func (c *OrderClient) CreateBulk(builders ...*OrderCreate) *OrderCreateBulk {
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderClient) MapCreateBulk(slice any, setFunc func(*OrderCreate, int)) *OrderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderCreateBulk{err: fmt.Errorf("calling to OrderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Order.
func (c *OrderClient) Update() *OrderUpdate {
	mutation := newOrderMutation(c.config, OpUpdate)
	return &OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderClient) UpdateOne(_m *Order) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrder(_m))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderClient) UpdateOneID(id string) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrderID(id))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Order.
func (c *OrderClient) Delete() *OrderDelete {
	mutation := newOrderMutation(c.config, OpDelete)
	return &OrderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderClient) DeleteOne(_m *Order) *OrderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderClient) DeleteOneID(id string) *OrderDeleteOne {
	builder := c.Delete().Where(order.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderDeleteOne{builder}
}

// Query returns a query builder for Order.
func (c *OrderClient) Query() *OrderQuery {
	return &OrderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrder},
		inters: c.Interceptors(),
	}
}

// Get returns a Order entity by its id.
func (c *OrderClient) Get(ctx context.Context, id string) (*Order, error) {
	return c.Query().Where(order.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderClient) GetX(ctx context.Context, id string) *Order {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLines queries the lines edge of a Order.
func (c *OrderClient) QueryLines(_m *Order) *OrderLineQuery {
	query := (&OrderLineClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(order.Table, order.FieldID, id),
			sqlgraph.To(orderline.Table, orderline.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, order.LinesTable, order.LinesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuditEntries queries the audit_entries edge of a Order.
func (c *OrderClient) QueryAuditEntries(_m *Order) *AuditLogEntryQuery {
	query := (&AuditLogEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(order.Table, order.FieldID, id),
			sqlgraph.To(auditlogentry.Table, auditlogentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, order.AuditEntriesTable, order.AuditEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderClient) Hooks() []Hook {
	return c.hooks.Order
}

// Interceptors returns the client interceptors.
func (c *OrderClient) Interceptors() []Interceptor {
	return c.inters.Order
}

func (c *OrderClient) mutate(ctx context.Context, m *OrderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Order mutation op: %q", m.Op())
	}
}

// OrderLineClient is a client for the OrderLine schema.
type OrderLineClient struct {
	config
}

// NewOrderLineClient returns a client for the OrderLine from the given config.
func NewOrderLineClient(c config) *OrderLineClient {
	return &OrderLineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderline.Hooks(f(g(h())))`.
func (c *OrderLineClient) Use(hooks ...Hook) {
	c.hooks.OrderLine = append(c.hooks.OrderLine, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderline.Intercept(f(g(h())))`.
func (c *OrderLineClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderLine = append(c.inters.OrderLine, interceptors...)
}

// Create returns a builder for creating a OrderLine entity.
func (c *OrderLineClient) Create() *OrderLineCreate {
	mutation := newOrderLineMutation(c.config, OpCreate)
	return &OrderLineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderLine entities.
func (c *OrderLineClient) CreateBulk(builders ...*OrderLineCreate) *OrderLineCreateBulk {
	return &OrderLineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderLineClient) MapCreateBulk(slice any, setFunc func(*OrderLineCreate, int)) *OrderLineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderLineCreateBulk{err: fmt.Errorf("calling to OrderLineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderLineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderLineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderLine.
func (c *OrderLineClient) Update() *OrderLineUpdate {
	mutation := newOrderLineMutation(c.config, OpUpdate)
	return &OrderLineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderLineClient) UpdateOne(_m *OrderLine) *OrderLineUpdateOne {
	mutation := newOrderLineMutation(c.config, OpUpdateOne, withOrderLine(_m))
	return &OrderLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderLineClient) UpdateOneID(id int) *OrderLineUpdateOne {
	mutation := newOrderLineMutation(c.config, OpUpdateOne, withOrderLineID(id))
	return &OrderLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderLine.
func (c *OrderLineClient) Delete() *OrderLineDelete {
	mutation := newOrderLineMutation(c.config, OpDelete)
	return &OrderLineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderLineClient) DeleteOne(_m *OrderLine) *OrderLineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderLineClient) DeleteOneID(id int) *OrderLineDeleteOne {
	builder := c.Delete().Where(orderline.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderLineDeleteOne{builder}
}

// Query returns a query builder for OrderLine.
func (c *OrderLineClient) Query() *OrderLineQuery {
	return &OrderLineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderLine},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderLine entity by its id.
func (c *OrderLineClient) Get(ctx context.Context, id int) (*OrderLine, error) {
	return c.Query().Where(orderline.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderLineClient) GetX(ctx context.Context, id int) *OrderLine {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrder queries the order edge of a OrderLine.
func (c *OrderLineClient) QueryOrder(_m *OrderLine) *OrderQuery {
	query := (&OrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderline.Table, orderline.FieldID, id),
			sqlgraph.To(order.Table, order.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, orderline.OrderTable, orderline.OrderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMedicine queries the medicine edge of a OrderLine.
func (c *OrderLineClient) QueryMedicine(_m *OrderLine) *MedicineQuery {
	query := (&MedicineClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderline.Table, orderline.FieldID, id),
			sqlgraph.To(medicine.Table, medicine.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, orderline.MedicineTable, orderline.MedicineColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderLineClient) Hooks() []Hook {
	return c.hooks.OrderLine
}

// Interceptors returns the client interceptors.
func (c *OrderLineClient) Interceptors() []Interceptor {
	return c.inters.OrderLine
}

func (c *OrderLineClient) mutate(ctx context.Context, m *OrderLineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderLineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderLineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderLineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrderLine mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id int) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id int) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id int) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id int) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Patient mutation op: %q", m.Op())
	}
}

// RefillPredictionClient is a client for the RefillPrediction schema.
type RefillPredictionClient struct {
	config
}

// NewRefillPredictionClient returns a client for the RefillPrediction from the given config.
func NewRefillPredictionClient(c config) *RefillPredictionClient {
	return &RefillPredictionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `refillprediction.Hooks(f(g(h())))`.
func (c *RefillPredictionClient) Use(hooks ...Hook) {
	c.hooks.RefillPrediction = append(c.hooks.RefillPrediction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `refillprediction.Intercept(f(g(h())))`.
func (c *RefillPredictionClient) Intercept(interceptors ...Interceptor) {
	c.inters.RefillPrediction = append(c.inters.RefillPrediction, interceptors...)
}

// Create returns a builder for creating a RefillPrediction entity.
func (c *RefillPredictionClient) Create() *RefillPredictionCreate {
	mutation := newRefillPredictionMutation(c.config, OpCreate)
	return &RefillPredictionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RefillPrediction entities.
func (c *RefillPredictionClient) CreateBulk(builders ...*RefillPredictionCreate) *RefillPredictionCreateBulk {
	return &RefillPredictionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RefillPredictionClient) MapCreateBulk(slice any, setFunc func(*RefillPredictionCreate, int)) *RefillPredictionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RefillPredictionCreateBulk{err: fmt.Errorf("calling to RefillPredictionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RefillPredictionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RefillPredictionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RefillPrediction.
func (c *RefillPredictionClient) Update() *RefillPredictionUpdate {
	mutation := newRefillPredictionMutation(c.config, OpUpdate)
	return &RefillPredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RefillPredictionClient) UpdateOne(_m *RefillPrediction) *RefillPredictionUpdateOne {
	mutation := newRefillPredictionMutation(c.config, OpUpdateOne, withRefillPrediction(_m))
	return &RefillPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RefillPredictionClient) UpdateOneID(id int) *RefillPredictionUpdateOne {
	mutation := newRefillPredictionMutation(c.config, OpUpdateOne, withRefillPredictionID(id))
	return &RefillPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RefillPrediction.
func (c *RefillPredictionClient) Delete() *RefillPredictionDelete {
	mutation := newRefillPredictionMutation(c.config, OpDelete)
	return &RefillPredictionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RefillPredictionClient) DeleteOne(_m *RefillPrediction) *RefillPredictionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RefillPredictionClient) DeleteOneID(id int) *RefillPredictionDeleteOne {
	builder := c.Delete().Where(refillprediction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RefillPredictionDeleteOne{builder}
}

// Query returns a query builder for RefillPrediction.
func (c *RefillPredictionClient) Query() *RefillPredictionQuery {
	return &RefillPredictionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRefillPrediction},
		inters: c.Interceptors(),
	}
}

// Get returns a RefillPrediction entity by its id.
func (c *RefillPredictionClient) Get(ctx context.Context, id int) (*RefillPrediction, error) {
	return c.Query().Where(refillprediction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RefillPredictionClient) GetX(ctx context.Context, id int) *RefillPrediction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RefillPredictionClient) Hooks() []Hook {
	return c.hooks.RefillPrediction
}

// Interceptors returns the client interceptors.
func (c *RefillPredictionClient) Interceptors() []Interceptor {
	return c.inters.RefillPrediction
}

func (c *RefillPredictionClient) mutate(ctx context.Context, m *RefillPredictionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RefillPredictionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RefillPredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RefillPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RefillPredictionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RefillPrediction mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditLogEntry, Medicine, Order, OrderLine, Patient, RefillPrediction []ent.Hook
	}
	inters struct {
		AuditLogEntry, Medicine, Order, OrderLine, Patient,
		RefillPrediction []ent.Interceptor
	}
)
