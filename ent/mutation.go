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
	"github.com/arogya-labs/aushadhi/ent/auditlogentry"
	"github.com/arogya-labs/aushadhi/ent/medicine"
	"github.com/arogya-labs/aushadhi/ent/order"
	"github.com/arogya-labs/aushadhi/ent/orderline"
	"github.com/arogya-labs/aushadhi/ent/patient"
	"github.com/arogya-labs/aushadhi/ent/predicate"
	"github.com/arogya-labs/aushadhi/ent/refillprediction"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLogEntry    = "AuditLogEntry"
	TypeMedicine         = "Medicine"
	TypeOrder            = "Order"
	TypeOrderLine        = "OrderLine"
	TypePatient          = "Patient"
	TypeRefillPrediction = "RefillPrediction"
)

// AuditLogEntryMutation represents an operation that mutates the AuditLogEntry nodes in the graph.
type AuditLogEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	agent_name    *string
	decision      *string
	reasoning     *string
	confidence    *float64
	addconfidence *float64
	extra_data    *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	_order        *string
	cleared_order bool
	done          bool
	oldValue      func(context.Context) (*AuditLogEntry, error)
	predicates    []predicate.AuditLogEntry
}

var _ ent.Mutation = (*AuditLogEntryMutation)(nil)

// auditlogentryOption allows management of the mutation configuration using functional options.
type auditlogentryOption func(*AuditLogEntryMutation)

// newAuditLogEntryMutation creates new mutation for the AuditLogEntry entity.
func newAuditLogEntryMutation(c config, op Op, opts ...auditlogentryOption) *AuditLogEntryMutation {
	m := &AuditLogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogEntryID sets the ID field of the mutation.
func withAuditLogEntryID(id int) auditlogentryOption {
	return func(m *AuditLogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLogEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditLogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLogEntry sets the old AuditLogEntry of the mutation.
func withAuditLogEntry(node *AuditLogEntry) auditlogentryOption {
	return func(m *AuditLogEntryMutation) {
		m.oldValue = func(context.Context) (*AuditLogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentName sets the "agent_name" field.
func (m *AuditLogEntryMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AuditLogEntryMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AuditLogEntryMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetDecision sets the "decision" field.
func (m *AuditLogEntryMutation) SetDecision(s string) {
	m.decision = &s
}

// Decision returns the value of the "decision" field in the mutation.
func (m *AuditLogEntryMutation) Decision() (r string, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) OldDecision(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *AuditLogEntryMutation) ResetDecision() {
	m.decision = nil
}

// SetReasoning sets the "reasoning" field.
func (m *AuditLogEntryMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *AuditLogEntryMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *AuditLogEntryMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[auditlogentry.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *AuditLogEntryMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[auditlogentry.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *AuditLogEntryMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, auditlogentry.FieldReasoning)
}

// SetConfidence sets the "confidence" field.
func (m *AuditLogEntryMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AuditLogEntryMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AuditLogEntryMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AuditLogEntryMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AuditLogEntryMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetExtraData sets the "extra_data" field.
func (m *AuditLogEntryMutation) SetExtraData(value map[string]interface{}) {
	m.extra_data = &value
}

// ExtraData returns the value of the "extra_data" field in the mutation.
func (m *AuditLogEntryMutation) ExtraData() (r map[string]interface{}, exists bool) {
	v := m.extra_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtraData returns the old "extra_data" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) OldExtraData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtraData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtraData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtraData: %w", err)
	}
	return oldValue.ExtraData, nil
}

// ClearExtraData clears the value of the "extra_data" field.
func (m *AuditLogEntryMutation) ClearExtraData() {
	m.extra_data = nil
	m.clearedFields[auditlogentry.FieldExtraData] = struct{}{}
}

// ExtraDataCleared returns if the "extra_data" field was cleared in this mutation.
func (m *AuditLogEntryMutation) ExtraDataCleared() bool {
	_, ok := m.clearedFields[auditlogentry.FieldExtraData]
	return ok
}

// ResetExtraData resets all changes to the "extra_data" field.
func (m *AuditLogEntryMutation) ResetExtraData() {
	m.extra_data = nil
	delete(m.clearedFields, auditlogentry.FieldExtraData)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AuditLogEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetOrderID sets the "order_id" field.
func (m *AuditLogEntryMutation) SetOrderID(s string) {
	m._order = &s
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *AuditLogEntryMutation) OrderID() (r string, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) OldOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ClearOrderID clears the value of the "order_id" field.
func (m *AuditLogEntryMutation) ClearOrderID() {
	m._order = nil
	m.clearedFields[auditlogentry.FieldOrderID] = struct{}{}
}

// OrderIDCleared returns if the "order_id" field was cleared in this mutation.
func (m *AuditLogEntryMutation) OrderIDCleared() bool {
	_, ok := m.clearedFields[auditlogentry.FieldOrderID]
	return ok
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *AuditLogEntryMutation) ResetOrderID() {
	m._order = nil
	delete(m.clearedFields, auditlogentry.FieldOrderID)
}

// ClearOrder clears the "order" edge to the Order entity.
func (m *AuditLogEntryMutation) ClearOrder() {
	m.cleared_order = true
	m.clearedFields[auditlogentry.FieldOrderID] = struct{}{}
}

// OrderCleared reports if the "order" edge to the Order entity was cleared.
func (m *AuditLogEntryMutation) OrderCleared() bool {
	return m.OrderIDCleared() || m.cleared_order
}

// OrderIDs returns the "order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrderID instead. It exists only for internal usage by the builders.
func (m *AuditLogEntryMutation) OrderIDs() (ids []string) {
	if id := m._order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrder resets all changes to the "order" edge.
func (m *AuditLogEntryMutation) ResetOrder() {
	m._order = nil
	m.cleared_order = false
}

// Where appends a list predicates to the AuditLogEntryMutation builder.
func (m *AuditLogEntryMutation) Where(ps ...predicate.AuditLogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLogEntry).
func (m *AuditLogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.agent_name != nil {
		fields = append(fields, auditlogentry.FieldAgentName)
	}
	if m.decision != nil {
		fields = append(fields, auditlogentry.FieldDecision)
	}
	if m.reasoning != nil {
		fields = append(fields, auditlogentry.FieldReasoning)
	}
	if m.confidence != nil {
		fields = append(fields, auditlogentry.FieldConfidence)
	}
	if m.extra_data != nil {
		fields = append(fields, auditlogentry.FieldExtraData)
	}
	if m.created_at != nil {
		fields = append(fields, auditlogentry.FieldCreatedAt)
	}
	if m._order != nil {
		fields = append(fields, auditlogentry.FieldOrderID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlogentry.FieldAgentName:
		return m.AgentName()
	case auditlogentry.FieldDecision:
		return m.Decision()
	case auditlogentry.FieldReasoning:
		return m.Reasoning()
	case auditlogentry.FieldConfidence:
		return m.Confidence()
	case auditlogentry.FieldExtraData:
		return m.ExtraData()
	case auditlogentry.FieldCreatedAt:
		return m.CreatedAt()
	case auditlogentry.FieldOrderID:
		return m.OrderID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlogentry.FieldAgentName:
		return m.OldAgentName(ctx)
	case auditlogentry.FieldDecision:
		return m.OldDecision(ctx)
	case auditlogentry.FieldReasoning:
		return m.OldReasoning(ctx)
	case auditlogentry.FieldConfidence:
		return m.OldConfidence(ctx)
	case auditlogentry.FieldExtraData:
		return m.OldExtraData(ctx)
	case auditlogentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case auditlogentry.FieldOrderID:
		return m.OldOrderID(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlogentry.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case auditlogentry.FieldDecision:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case auditlogentry.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case auditlogentry.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case auditlogentry.FieldExtraData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtraData(v)
		return nil
	case auditlogentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case auditlogentry.FieldOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogEntryMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, auditlogentry.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditlogentry.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditlogentry.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlogentry.FieldReasoning) {
		fields = append(fields, auditlogentry.FieldReasoning)
	}
	if m.FieldCleared(auditlogentry.FieldExtraData) {
		fields = append(fields, auditlogentry.FieldExtraData)
	}
	if m.FieldCleared(auditlogentry.FieldOrderID) {
		fields = append(fields, auditlogentry.FieldOrderID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogEntryMutation) ClearField(name string) error {
	switch name {
	case auditlogentry.FieldReasoning:
		m.ClearReasoning()
		return nil
	case auditlogentry.FieldExtraData:
		m.ClearExtraData()
		return nil
	case auditlogentry.FieldOrderID:
		m.ClearOrderID()
		return nil
	}
	return fmt.Errorf("unknown AuditLogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogEntryMutation) ResetField(name string) error {
	switch name {
	case auditlogentry.FieldAgentName:
		m.ResetAgentName()
		return nil
	case auditlogentry.FieldDecision:
		m.ResetDecision()
		return nil
	case auditlogentry.FieldReasoning:
		m.ResetReasoning()
		return nil
	case auditlogentry.FieldConfidence:
		m.ResetConfidence()
		return nil
	case auditlogentry.FieldExtraData:
		m.ResetExtraData()
		return nil
	case auditlogentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case auditlogentry.FieldOrderID:
		m.ResetOrderID()
		return nil
	}
	return fmt.Errorf("unknown AuditLogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._order != nil {
		edges = append(edges, auditlogentry.EdgeOrder)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditlogentry.EdgeOrder:
		if id := m._order; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_order {
		edges = append(edges, auditlogentry.EdgeOrder)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case auditlogentry.EdgeOrder:
		return m.cleared_order
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogEntryMutation) ClearEdge(name string) error {
	switch name {
	case auditlogentry.EdgeOrder:
		m.ClearOrder()
		return nil
	}
	return fmt.Errorf("unknown AuditLogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogEntryMutation) ResetEdge(name string) error {
	switch name {
	case auditlogentry.EdgeOrder:
		m.ResetOrder()
		return nil
	}
	return fmt.Errorf("unknown AuditLogEntry edge %s", name)
}

// MedicineMutation represents an operation that mutates the Medicine nodes in the graph.
type MedicineMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	name                     *string
	category                 *string
	price                    *float64
	addprice                 *float64
	stock                    *int
	addstock                 *int
	requires_prescription    *bool
	active_ingredients       *[]string
	appendactive_ingredients []string
	generic_equivalent       *string
	contraindications        *[]string
	appendcontraindications  []string
	strength                 *string
	dosage_form              *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*Medicine, error)
	predicates               []predicate.Medicine
}

var _ ent.Mutation = (*MedicineMutation)(nil)

// medicineOption allows management of the mutation configuration using functional options.
type medicineOption func(*MedicineMutation)

// newMedicineMutation creates new mutation for the Medicine entity.
func newMedicineMutation(c config, op Op, opts ...medicineOption) *MedicineMutation {
	m := &MedicineMutation{
		config:        c,
		op:            op,
		typ:           TypeMedicine,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMedicineID sets the ID field of the mutation.
func withMedicineID(id int) medicineOption {
	return func(m *MedicineMutation) {
		var (
			err   error
			once  sync.Once
			value *Medicine
		)
		m.oldValue = func(ctx context.Context) (*Medicine, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Medicine.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMedicine sets the old Medicine of the mutation.
func withMedicine(node *Medicine) medicineOption {
	return func(m *MedicineMutation) {
		m.oldValue = func(context.Context) (*Medicine, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MedicineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MedicineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MedicineMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MedicineMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Medicine.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *MedicineMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MedicineMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Medicine entity.
// If the Medicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicineMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MedicineMutation) ResetName() {
	m.name = nil
}

// SetCategory sets the "category" field.
func (m *MedicineMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *MedicineMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Medicine entity.
// If the Medicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicineMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *MedicineMutation) ResetCategory() {
	m.category = nil
}

// SetPrice sets the "price" field.
func (m *MedicineMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *MedicineMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Medicine entity.
// If the Medicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicineMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *MedicineMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *MedicineMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *MedicineMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetStock sets the "stock" field.
func (m *MedicineMutation) SetStock(i int) {
	m.stock = &i
	m.addstock = nil
}

// Stock returns the value of the "stock" field in the mutation.
func (m *MedicineMutation) Stock() (r int, exists bool) {
	v := m.stock
	if v == nil {
		return
	}
	return *v, true
}

// OldStock returns the old "stock" field's value of the Medicine entity.
// If the Medicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicineMutation) OldStock(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStock is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStock requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStock: %w", err)
	}
	return oldValue.Stock, nil
}

// AddStock adds i to the "stock" field.
func (m *MedicineMutation) AddStock(i int) {
	if m.addstock != nil {
		*m.addstock += i
	} else {
		m.addstock = &i
	}
}

// AddedStock returns the value that was added to the "stock" field in this mutation.
func (m *MedicineMutation) AddedStock() (r int, exists bool) {
	v := m.addstock
	if v == nil {
		return
	}
	return *v, true
}

// ResetStock resets all changes to the "stock" field.
func (m *MedicineMutation) ResetStock() {
	m.stock = nil
	m.addstock = nil
}

// SetRequiresPrescription sets the "requires_prescription" field.
func (m *MedicineMutation) SetRequiresPrescription(b bool) {
	m.requires_prescription = &b
}

// RequiresPrescription returns the value of the "requires_prescription" field in the mutation.
func (m *MedicineMutation) RequiresPrescription() (r bool, exists bool) {
	v := m.requires_prescription
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresPrescription returns the old "requires_prescription" field's value of the Medicine entity.
// If the Medicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicineMutation) OldRequiresPrescription(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresPrescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresPrescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresPrescription: %w", err)
	}
	return oldValue.RequiresPrescription, nil
}

// ResetRequiresPrescription resets all changes to the "requires_prescription" field.
func (m *MedicineMutation) ResetRequiresPrescription() {
	m.requires_prescription = nil
}

// SetActiveIngredients sets the "active_ingredients" field.
func (m *MedicineMutation) SetActiveIngredients(s []string) {
	m.active_ingredients = &s
	m.appendactive_ingredients = nil
}

// ActiveIngredients returns the value of the "active_ingredients" field in the mutation.
func (m *MedicineMutation) ActiveIngredients() (r []string, exists bool) {
	v := m.active_ingredients
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveIngredients returns the old "active_ingredients" field's value of the Medicine entity.
// If the Medicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicineMutation) OldActiveIngredients(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveIngredients is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveIngredients requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveIngredients: %w", err)
	}
	return oldValue.ActiveIngredients, nil
}

// AppendActiveIngredients adds s to the "active_ingredients" field.
func (m *MedicineMutation) AppendActiveIngredients(s []string) {
	m.appendactive_ingredients = append(m.appendactive_ingredients, s...)
}

// AppendedActiveIngredients returns the list of values that were appended to the "active_ingredients" field in this mutation.
func (m *MedicineMutation) AppendedActiveIngredients() ([]string, bool) {
	if len(m.appendactive_ingredients) == 0 {
		return nil, false
	}
	return m.appendactive_ingredients, true
}

// ClearActiveIngredients clears the value of the "active_ingredients" field.
func (m *MedicineMutation) ClearActiveIngredients() {
	m.active_ingredients = nil
	m.appendactive_ingredients = nil
	m.clearedFields[medicine.FieldActiveIngredients] = struct{}{}
}

// ActiveIngredientsCleared returns if the "active_ingredients" field was cleared in this mutation.
func (m *MedicineMutation) ActiveIngredientsCleared() bool {
	_, ok := m.clearedFields[medicine.FieldActiveIngredients]
	return ok
}

// ResetActiveIngredients resets all changes to the "active_ingredients" field.
func (m *MedicineMutation) ResetActiveIngredients() {
	m.active_ingredients = nil
	m.appendactive_ingredients = nil
	delete(m.clearedFields, medicine.FieldActiveIngredients)
}

// SetGenericEquivalent sets the "generic_equivalent" field.
func (m *MedicineMutation) SetGenericEquivalent(s string) {
	m.generic_equivalent = &s
}

// GenericEquivalent returns the value of the "generic_equivalent" field in the mutation.
func (m *MedicineMutation) GenericEquivalent() (r string, exists bool) {
	v := m.generic_equivalent
	if v == nil {
		return
	}
	return *v, true
}

// OldGenericEquivalent returns the old "generic_equivalent" field's value of the Medicine entity.
// If the Medicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicineMutation) OldGenericEquivalent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenericEquivalent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenericEquivalent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenericEquivalent: %w", err)
	}
	return oldValue.GenericEquivalent, nil
}

// ClearGenericEquivalent clears the value of the "generic_equivalent" field.
func (m *MedicineMutation) ClearGenericEquivalent() {
	m.generic_equivalent = nil
	m.clearedFields[medicine.FieldGenericEquivalent] = struct{}{}
}

// GenericEquivalentCleared returns if the "generic_equivalent" field was cleared in this mutation.
func (m *MedicineMutation) GenericEquivalentCleared() bool {
	_, ok := m.clearedFields[medicine.FieldGenericEquivalent]
	return ok
}

// ResetGenericEquivalent resets all changes to the "generic_equivalent" field.
func (m *MedicineMutation) ResetGenericEquivalent() {
	m.generic_equivalent = nil
	delete(m.clearedFields, medicine.FieldGenericEquivalent)
}

// SetContraindications sets the "contraindications" field.
func (m *MedicineMutation) SetContraindications(s []string) {
	m.contraindications = &s
	m.appendcontraindications = nil
}

// Contraindications returns the value of the "contraindications" field in the mutation.
func (m *MedicineMutation) Contraindications() (r []string, exists bool) {
	v := m.contraindications
	if v == nil {
		return
	}
	return *v, true
}

// OldContraindications returns the old "contraindications" field's value of the Medicine entity.
// If the Medicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicineMutation) OldContraindications(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContraindications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContraindications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContraindications: %w", err)
	}
	return oldValue.Contraindications, nil
}

// AppendContraindications adds s to the "contraindications" field.
func (m *MedicineMutation) AppendContraindications(s []string) {
	m.appendcontraindications = append(m.appendcontraindications, s...)
}

// AppendedContraindications returns the list of values that were appended to the "contraindications" field in this mutation.
func (m *MedicineMutation) AppendedContraindications() ([]string, bool) {
	if len(m.appendcontraindications) == 0 {
		return nil, false
	}
	return m.appendcontraindications, true
}

// ClearContraindications clears the value of the "contraindications" field.
func (m *MedicineMutation) ClearContraindications() {
	m.contraindications = nil
	m.appendcontraindications = nil
	m.clearedFields[medicine.FieldContraindications] = struct{}{}
}

// ContraindicationsCleared returns if the "contraindications" field was cleared in this mutation.
func (m *MedicineMutation) ContraindicationsCleared() bool {
	_, ok := m.clearedFields[medicine.FieldContraindications]
	return ok
}

// ResetContraindications resets all changes to the "contraindications" field.
func (m *MedicineMutation) ResetContraindications() {
	m.contraindications = nil
	m.appendcontraindications = nil
	delete(m.clearedFields, medicine.FieldContraindications)
}

// SetStrength sets the "strength" field.
func (m *MedicineMutation) SetStrength(s string) {
	m.strength = &s
}

// Strength returns the value of the "strength" field in the mutation.
func (m *MedicineMutation) Strength() (r string, exists bool) {
	v := m.strength
	if v == nil {
		return
	}
	return *v, true
}

// OldStrength returns the old "strength" field's value of the Medicine entity.
// If the Medicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicineMutation) OldStrength(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrength: %w", err)
	}
	return oldValue.Strength, nil
}

// ClearStrength clears the value of the "strength" field.
func (m *MedicineMutation) ClearStrength() {
	m.strength = nil
	m.clearedFields[medicine.FieldStrength] = struct{}{}
}

// StrengthCleared returns if the "strength" field was cleared in this mutation.
func (m *MedicineMutation) StrengthCleared() bool {
	_, ok := m.clearedFields[medicine.FieldStrength]
	return ok
}

// ResetStrength resets all changes to the "strength" field.
func (m *MedicineMutation) ResetStrength() {
	m.strength = nil
	delete(m.clearedFields, medicine.FieldStrength)
}

// SetDosageForm sets the "dosage_form" field.
func (m *MedicineMutation) SetDosageForm(s string) {
	m.dosage_form = &s
}

// DosageForm returns the value of the "dosage_form" field in the mutation.
func (m *MedicineMutation) DosageForm() (r string, exists bool) {
	v := m.dosage_form
	if v == nil {
		return
	}
	return *v, true
}

// OldDosageForm returns the old "dosage_form" field's value of the Medicine entity.
// If the Medicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicineMutation) OldDosageForm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDosageForm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDosageForm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDosageForm: %w", err)
	}
	return oldValue.DosageForm, nil
}

// ClearDosageForm clears the value of the "dosage_form" field.
func (m *MedicineMutation) ClearDosageForm() {
	m.dosage_form = nil
	m.clearedFields[medicine.FieldDosageForm] = struct{}{}
}

// DosageFormCleared returns if the "dosage_form" field was cleared in this mutation.
func (m *MedicineMutation) DosageFormCleared() bool {
	_, ok := m.clearedFields[medicine.FieldDosageForm]
	return ok
}

// ResetDosageForm resets all changes to the "dosage_form" field.
func (m *MedicineMutation) ResetDosageForm() {
	m.dosage_form = nil
	delete(m.clearedFields, medicine.FieldDosageForm)
}

// SetCreatedAt sets the "created_at" field.
func (m *MedicineMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MedicineMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Medicine entity.
// If the Medicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicineMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MedicineMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MedicineMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MedicineMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Medicine entity.
// If the Medicine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicineMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MedicineMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MedicineMutation builder.
func (m *MedicineMutation) Where(ps ...predicate.Medicine) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MedicineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MedicineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Medicine, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MedicineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MedicineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Medicine).
func (m *MedicineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MedicineMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.name != nil {
		fields = append(fields, medicine.FieldName)
	}
	if m.category != nil {
		fields = append(fields, medicine.FieldCategory)
	}
	if m.price != nil {
		fields = append(fields, medicine.FieldPrice)
	}
	if m.stock != nil {
		fields = append(fields, medicine.FieldStock)
	}
	if m.requires_prescription != nil {
		fields = append(fields, medicine.FieldRequiresPrescription)
	}
	if m.active_ingredients != nil {
		fields = append(fields, medicine.FieldActiveIngredients)
	}
	if m.generic_equivalent != nil {
		fields = append(fields, medicine.FieldGenericEquivalent)
	}
	if m.contraindications != nil {
		fields = append(fields, medicine.FieldContraindications)
	}
	if m.strength != nil {
		fields = append(fields, medicine.FieldStrength)
	}
	if m.dosage_form != nil {
		fields = append(fields, medicine.FieldDosageForm)
	}
	if m.created_at != nil {
		fields = append(fields, medicine.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, medicine.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MedicineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case medicine.FieldName:
		return m.Name()
	case medicine.FieldCategory:
		return m.Category()
	case medicine.FieldPrice:
		return m.Price()
	case medicine.FieldStock:
		return m.Stock()
	case medicine.FieldRequiresPrescription:
		return m.RequiresPrescription()
	case medicine.FieldActiveIngredients:
		return m.ActiveIngredients()
	case medicine.FieldGenericEquivalent:
		return m.GenericEquivalent()
	case medicine.FieldContraindications:
		return m.Contraindications()
	case medicine.FieldStrength:
		return m.Strength()
	case medicine.FieldDosageForm:
		return m.DosageForm()
	case medicine.FieldCreatedAt:
		return m.CreatedAt()
	case medicine.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MedicineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case medicine.FieldName:
		return m.OldName(ctx)
	case medicine.FieldCategory:
		return m.OldCategory(ctx)
	case medicine.FieldPrice:
		return m.OldPrice(ctx)
	case medicine.FieldStock:
		return m.OldStock(ctx)
	case medicine.FieldRequiresPrescription:
		return m.OldRequiresPrescription(ctx)
	case medicine.FieldActiveIngredients:
		return m.OldActiveIngredients(ctx)
	case medicine.FieldGenericEquivalent:
		return m.OldGenericEquivalent(ctx)
	case medicine.FieldContraindications:
		return m.OldContraindications(ctx)
	case medicine.FieldStrength:
		return m.OldStrength(ctx)
	case medicine.FieldDosageForm:
		return m.OldDosageForm(ctx)
	case medicine.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case medicine.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Medicine field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case medicine.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case medicine.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case medicine.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case medicine.FieldStock:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStock(v)
		return nil
	case medicine.FieldRequiresPrescription:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresPrescription(v)
		return nil
	case medicine.FieldActiveIngredients:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveIngredients(v)
		return nil
	case medicine.FieldGenericEquivalent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenericEquivalent(v)
		return nil
	case medicine.FieldContraindications:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContraindications(v)
		return nil
	case medicine.FieldStrength:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrength(v)
		return nil
	case medicine.FieldDosageForm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDosageForm(v)
		return nil
	case medicine.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case medicine.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Medicine field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MedicineMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, medicine.FieldPrice)
	}
	if m.addstock != nil {
		fields = append(fields, medicine.FieldStock)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MedicineMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case medicine.FieldPrice:
		return m.AddedPrice()
	case medicine.FieldStock:
		return m.AddedStock()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicineMutation) AddField(name string, value ent.Value) error {
	switch name {
	case medicine.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case medicine.FieldStock:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStock(v)
		return nil
	}
	return fmt.Errorf("unknown Medicine numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MedicineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(medicine.FieldActiveIngredients) {
		fields = append(fields, medicine.FieldActiveIngredients)
	}
	if m.FieldCleared(medicine.FieldGenericEquivalent) {
		fields = append(fields, medicine.FieldGenericEquivalent)
	}
	if m.FieldCleared(medicine.FieldContraindications) {
		fields = append(fields, medicine.FieldContraindications)
	}
	if m.FieldCleared(medicine.FieldStrength) {
		fields = append(fields, medicine.FieldStrength)
	}
	if m.FieldCleared(medicine.FieldDosageForm) {
		fields = append(fields, medicine.FieldDosageForm)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MedicineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MedicineMutation) ClearField(name string) error {
	switch name {
	case medicine.FieldActiveIngredients:
		m.ClearActiveIngredients()
		return nil
	case medicine.FieldGenericEquivalent:
		m.ClearGenericEquivalent()
		return nil
	case medicine.FieldContraindications:
		m.ClearContraindications()
		return nil
	case medicine.FieldStrength:
		m.ClearStrength()
		return nil
	case medicine.FieldDosageForm:
		m.ClearDosageForm()
		return nil
	}
	return fmt.Errorf("unknown Medicine nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MedicineMutation) ResetField(name string) error {
	switch name {
	case medicine.FieldName:
		m.ResetName()
		return nil
	case medicine.FieldCategory:
		m.ResetCategory()
		return nil
	case medicine.FieldPrice:
		m.ResetPrice()
		return nil
	case medicine.FieldStock:
		m.ResetStock()
		return nil
	case medicine.FieldRequiresPrescription:
		m.ResetRequiresPrescription()
		return nil
	case medicine.FieldActiveIngredients:
		m.ResetActiveIngredients()
		return nil
	case medicine.FieldGenericEquivalent:
		m.ResetGenericEquivalent()
		return nil
	case medicine.FieldContraindications:
		m.ResetContraindications()
		return nil
	case medicine.FieldStrength:
		m.ResetStrength()
		return nil
	case medicine.FieldDosageForm:
		m.ResetDosageForm()
		return nil
	case medicine.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case medicine.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Medicine field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MedicineMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MedicineMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MedicineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MedicineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MedicineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MedicineMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MedicineMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Medicine unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MedicineMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Medicine edge %s", name)
}

// OrderMutation represents an operation that mutates the Order nodes in the graph.
type OrderMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	user_id              *string
	status               *order.Status
	pharmacist_decision  *order.PharmacistDecision
	safety_issues        *[]string
	appendsafety_issues  []string
	total_amount         *float64
	addtotal_amount      *float64
	created_at           *time.Time
	clearedFields        map[string]struct{}
	lines                map[int]struct{}
	removedlines         map[int]struct{}
	clearedlines         bool
	audit_entries        map[int]struct{}
	removedaudit_entries map[int]struct{}
	clearedaudit_entries bool
	done                 bool
	oldValue             func(context.Context) (*Order, error)
	predicates           []predicate.Order
}

var _ ent.Mutation = (*OrderMutation)(nil)

// orderOption allows management of the mutation configuration using functional options.
type orderOption func(*OrderMutation)

// newOrderMutation creates new mutation for the Order entity.
func newOrderMutation(c config, op Op, opts ...orderOption) *OrderMutation {
	m := &OrderMutation{
		config:        c,
		op:            op,
		typ:           TypeOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderID sets the ID field of the mutation.
func withOrderID(id string) orderOption {
	return func(m *OrderMutation) {
		var (
			err   error
			once  sync.Once
			value *Order
		)
		m.oldValue = func(ctx context.Context) (*Order, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Order.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrder sets the old Order of the mutation.
func withOrder(node *Order) orderOption {
	return func(m *OrderMutation) {
		m.oldValue = func(context.Context) (*Order, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Order entities.
func (m *OrderMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Order.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *OrderMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *OrderMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *OrderMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *OrderMutation) SetStatus(o order.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OrderMutation) Status() (r order.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldStatus(ctx context.Context) (v order.Status, err error) {
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
func (m *OrderMutation) ResetStatus() {
	m.status = nil
}

// SetPharmacistDecision sets the "pharmacist_decision" field.
func (m *OrderMutation) SetPharmacistDecision(od order.PharmacistDecision) {
	m.pharmacist_decision = &od
}

// PharmacistDecision returns the value of the "pharmacist_decision" field in the mutation.
func (m *OrderMutation) PharmacistDecision() (r order.PharmacistDecision, exists bool) {
	v := m.pharmacist_decision
	if v == nil {
		return
	}
	return *v, true
}

// OldPharmacistDecision returns the old "pharmacist_decision" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldPharmacistDecision(ctx context.Context) (v order.PharmacistDecision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPharmacistDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPharmacistDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPharmacistDecision: %w", err)
	}
	return oldValue.PharmacistDecision, nil
}

// ResetPharmacistDecision resets all changes to the "pharmacist_decision" field.
func (m *OrderMutation) ResetPharmacistDecision() {
	m.pharmacist_decision = nil
}

// SetSafetyIssues sets the "safety_issues" field.
func (m *OrderMutation) SetSafetyIssues(s []string) {
	m.safety_issues = &s
	m.appendsafety_issues = nil
}

// SafetyIssues returns the value of the "safety_issues" field in the mutation.
func (m *OrderMutation) SafetyIssues() (r []string, exists bool) {
	v := m.safety_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldSafetyIssues returns the old "safety_issues" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldSafetyIssues(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSafetyIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSafetyIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSafetyIssues: %w", err)
	}
	return oldValue.SafetyIssues, nil
}

// AppendSafetyIssues adds s to the "safety_issues" field.
func (m *OrderMutation) AppendSafetyIssues(s []string) {
	m.appendsafety_issues = append(m.appendsafety_issues, s...)
}

// AppendedSafetyIssues returns the list of values that were appended to the "safety_issues" field in this mutation.
func (m *OrderMutation) AppendedSafetyIssues() ([]string, bool) {
	if len(m.appendsafety_issues) == 0 {
		return nil, false
	}
	return m.appendsafety_issues, true
}

// ClearSafetyIssues clears the value of the "safety_issues" field.
func (m *OrderMutation) ClearSafetyIssues() {
	m.safety_issues = nil
	m.appendsafety_issues = nil
	m.clearedFields[order.FieldSafetyIssues] = struct{}{}
}

// SafetyIssuesCleared returns if the "safety_issues" field was cleared in this mutation.
func (m *OrderMutation) SafetyIssuesCleared() bool {
	_, ok := m.clearedFields[order.FieldSafetyIssues]
	return ok
}

// ResetSafetyIssues resets all changes to the "safety_issues" field.
func (m *OrderMutation) ResetSafetyIssues() {
	m.safety_issues = nil
	m.appendsafety_issues = nil
	delete(m.clearedFields, order.FieldSafetyIssues)
}

// SetTotalAmount sets the "total_amount" field.
func (m *OrderMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *OrderMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldTotalAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *OrderMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *OrderMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *OrderMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddLineIDs adds the "lines" edge to the OrderLine entity by ids.
func (m *OrderMutation) AddLineIDs(ids ...int) {
	if m.lines == nil {
		m.lines = make(map[int]struct{})
	}
	for i := range ids {
		m.lines[ids[i]] = struct{}{}
	}
}

// ClearLines clears the "lines" edge to the OrderLine entity.
func (m *OrderMutation) ClearLines() {
	m.clearedlines = true
}

// LinesCleared reports if the "lines" edge to the OrderLine entity was cleared.
func (m *OrderMutation) LinesCleared() bool {
	return m.clearedlines
}

// RemoveLineIDs removes the "lines" edge to the OrderLine entity by IDs.
func (m *OrderMutation) RemoveLineIDs(ids ...int) {
	if m.removedlines == nil {
		m.removedlines = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.lines, ids[i])
		m.removedlines[ids[i]] = struct{}{}
	}
}

// RemovedLines returns the removed IDs of the "lines" edge to the OrderLine entity.
func (m *OrderMutation) RemovedLinesIDs() (ids []int) {
	for id := range m.removedlines {
		ids = append(ids, id)
	}
	return
}

// LinesIDs returns the "lines" edge IDs in the mutation.
func (m *OrderMutation) LinesIDs() (ids []int) {
	for id := range m.lines {
		ids = append(ids, id)
	}
	return
}

// ResetLines resets all changes to the "lines" edge.
func (m *OrderMutation) ResetLines() {
	m.lines = nil
	m.clearedlines = false
	m.removedlines = nil
}

// AddAuditEntryIDs adds the "audit_entries" edge to the AuditLogEntry entity by ids.
func (m *OrderMutation) AddAuditEntryIDs(ids ...int) {
	if m.audit_entries == nil {
		m.audit_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.audit_entries[ids[i]] = struct{}{}
	}
}

// ClearAuditEntries clears the "audit_entries" edge to the AuditLogEntry entity.
func (m *OrderMutation) ClearAuditEntries() {
	m.clearedaudit_entries = true
}

// AuditEntriesCleared reports if the "audit_entries" edge to the AuditLogEntry entity was cleared.
func (m *OrderMutation) AuditEntriesCleared() bool {
	return m.clearedaudit_entries
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to the AuditLogEntry entity by IDs.
func (m *OrderMutation) RemoveAuditEntryIDs(ids ...int) {
	if m.removedaudit_entries == nil {
		m.removedaudit_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.audit_entries, ids[i])
		m.removedaudit_entries[ids[i]] = struct{}{}
	}
}

// RemovedAuditEntries returns the removed IDs of the "audit_entries" edge to the AuditLogEntry entity.
func (m *OrderMutation) RemovedAuditEntriesIDs() (ids []int) {
	for id := range m.removedaudit_entries {
		ids = append(ids, id)
	}
	return
}

// AuditEntriesIDs returns the "audit_entries" edge IDs in the mutation.
func (m *OrderMutation) AuditEntriesIDs() (ids []int) {
	for id := range m.audit_entries {
		ids = append(ids, id)
	}
	return
}

// ResetAuditEntries resets all changes to the "audit_entries" edge.
func (m *OrderMutation) ResetAuditEntries() {
	m.audit_entries = nil
	m.clearedaudit_entries = false
	m.removedaudit_entries = nil
}

// Where appends a list predicates to the OrderMutation builder.
func (m *OrderMutation) Where(ps ...predicate.Order) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Order, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Order).
func (m *OrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, order.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, order.FieldStatus)
	}
	if m.pharmacist_decision != nil {
		fields = append(fields, order.FieldPharmacistDecision)
	}
	if m.safety_issues != nil {
		fields = append(fields, order.FieldSafetyIssues)
	}
	if m.total_amount != nil {
		fields = append(fields, order.FieldTotalAmount)
	}
	if m.created_at != nil {
		fields = append(fields, order.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case order.FieldUserID:
		return m.UserID()
	case order.FieldStatus:
		return m.Status()
	case order.FieldPharmacistDecision:
		return m.PharmacistDecision()
	case order.FieldSafetyIssues:
		return m.SafetyIssues()
	case order.FieldTotalAmount:
		return m.TotalAmount()
	case order.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case order.FieldUserID:
		return m.OldUserID(ctx)
	case order.FieldStatus:
		return m.OldStatus(ctx)
	case order.FieldPharmacistDecision:
		return m.OldPharmacistDecision(ctx)
	case order.FieldSafetyIssues:
		return m.OldSafetyIssues(ctx)
	case order.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case order.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Order field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case order.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case order.FieldStatus:
		v, ok := value.(order.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case order.FieldPharmacistDecision:
		v, ok := value.(order.PharmacistDecision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPharmacistDecision(v)
		return nil
	case order.FieldSafetyIssues:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSafetyIssues(v)
		return nil
	case order.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case order.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, order.FieldTotalAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case order.FieldTotalAmount:
		return m.AddedTotalAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case order.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Order numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(order.FieldSafetyIssues) {
		fields = append(fields, order.FieldSafetyIssues)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderMutation) ClearField(name string) error {
	switch name {
	case order.FieldSafetyIssues:
		m.ClearSafetyIssues()
		return nil
	}
	return fmt.Errorf("unknown Order nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderMutation) ResetField(name string) error {
	switch name {
	case order.FieldUserID:
		m.ResetUserID()
		return nil
	case order.FieldStatus:
		m.ResetStatus()
		return nil
	case order.FieldPharmacistDecision:
		m.ResetPharmacistDecision()
		return nil
	case order.FieldSafetyIssues:
		m.ResetSafetyIssues()
		return nil
	case order.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case order.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.lines != nil {
		edges = append(edges, order.EdgeLines)
	}
	if m.audit_entries != nil {
		edges = append(edges, order.EdgeAuditEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeLines:
		ids := make([]ent.Value, 0, len(m.lines))
		for id := range m.lines {
			ids = append(ids, id)
		}
		return ids
	case order.EdgeAuditEntries:
		ids := make([]ent.Value, 0, len(m.audit_entries))
		for id := range m.audit_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlines != nil {
		edges = append(edges, order.EdgeLines)
	}
	if m.removedaudit_entries != nil {
		edges = append(edges, order.EdgeAuditEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeLines:
		ids := make([]ent.Value, 0, len(m.removedlines))
		for id := range m.removedlines {
			ids = append(ids, id)
		}
		return ids
	case order.EdgeAuditEntries:
		ids := make([]ent.Value, 0, len(m.removedaudit_entries))
		for id := range m.removedaudit_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlines {
		edges = append(edges, order.EdgeLines)
	}
	if m.clearedaudit_entries {
		edges = append(edges, order.EdgeAuditEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderMutation) EdgeCleared(name string) bool {
	switch name {
	case order.EdgeLines:
		return m.clearedlines
	case order.EdgeAuditEntries:
		return m.clearedaudit_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Order unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderMutation) ResetEdge(name string) error {
	switch name {
	case order.EdgeLines:
		m.ResetLines()
		return nil
	case order.EdgeAuditEntries:
		m.ResetAuditEntries()
		return nil
	}
	return fmt.Errorf("unknown Order edge %s", name)
}

// OrderLineMutation represents an operation that mutates the OrderLine nodes in the graph.
type OrderLineMutation struct {
	config
	op              Op
	typ             string
	id              *int
	medicine_name   *string
	dosage          *string
	quantity        *int
	addquantity     *int
	unit_price      *float64
	addunit_price   *float64
	clearedFields   map[string]struct{}
	_order          *string
	cleared_order   bool
	medicine        *int
	clearedmedicine bool
	done            bool
	oldValue        func(context.Context) (*OrderLine, error)
	predicates      []predicate.OrderLine
}

var _ ent.Mutation = (*OrderLineMutation)(nil)

// orderlineOption allows management of the mutation configuration using functional options.
type orderlineOption func(*OrderLineMutation)

// newOrderLineMutation creates new mutation for the OrderLine entity.
func newOrderLineMutation(c config, op Op, opts ...orderlineOption) *OrderLineMutation {
	m := &OrderLineMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderLine,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderLineID sets the ID field of the mutation.
func withOrderLineID(id int) orderlineOption {
	return func(m *OrderLineMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderLine
		)
		m.oldValue = func(ctx context.Context) (*OrderLine, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderLine.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderLine sets the old OrderLine of the mutation.
func withOrderLine(node *OrderLine) orderlineOption {
	return func(m *OrderLineMutation) {
		m.oldValue = func(context.Context) (*OrderLine, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderLineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderLineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderLineMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderLineMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderLine.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMedicineName sets the "medicine_name" field.
func (m *OrderLineMutation) SetMedicineName(s string) {
	m.medicine_name = &s
}

// MedicineName returns the value of the "medicine_name" field in the mutation.
func (m *OrderLineMutation) MedicineName() (r string, exists bool) {
	v := m.medicine_name
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicineName returns the old "medicine_name" field's value of the OrderLine entity.
// If the OrderLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderLineMutation) OldMedicineName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicineName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicineName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicineName: %w", err)
	}
	return oldValue.MedicineName, nil
}

// ResetMedicineName resets all changes to the "medicine_name" field.
func (m *OrderLineMutation) ResetMedicineName() {
	m.medicine_name = nil
}

// SetDosage sets the "dosage" field.
func (m *OrderLineMutation) SetDosage(s string) {
	m.dosage = &s
}

// Dosage returns the value of the "dosage" field in the mutation.
func (m *OrderLineMutation) Dosage() (r string, exists bool) {
	v := m.dosage
	if v == nil {
		return
	}
	return *v, true
}

// OldDosage returns the old "dosage" field's value of the OrderLine entity.
// If the OrderLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderLineMutation) OldDosage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDosage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDosage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDosage: %w", err)
	}
	return oldValue.Dosage, nil
}

// ClearDosage clears the value of the "dosage" field.
func (m *OrderLineMutation) ClearDosage() {
	m.dosage = nil
	m.clearedFields[orderline.FieldDosage] = struct{}{}
}

// DosageCleared returns if the "dosage" field was cleared in this mutation.
func (m *OrderLineMutation) DosageCleared() bool {
	_, ok := m.clearedFields[orderline.FieldDosage]
	return ok
}

// ResetDosage resets all changes to the "dosage" field.
func (m *OrderLineMutation) ResetDosage() {
	m.dosage = nil
	delete(m.clearedFields, orderline.FieldDosage)
}

// SetQuantity sets the "quantity" field.
func (m *OrderLineMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *OrderLineMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the OrderLine entity.
// If the OrderLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderLineMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *OrderLineMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *OrderLineMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *OrderLineMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *OrderLineMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *OrderLineMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the OrderLine entity.
// If the OrderLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderLineMutation) OldUnitPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *OrderLineMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *OrderLineMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *OrderLineMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
}

// SetOrderID sets the "order_id" field.
func (m *OrderLineMutation) SetOrderID(s string) {
	m._order = &s
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *OrderLineMutation) OrderID() (r string, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the OrderLine entity.
// If the OrderLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderLineMutation) OldOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *OrderLineMutation) ResetOrderID() {
	m._order = nil
}

// ClearOrder clears the "order" edge to the Order entity.
func (m *OrderLineMutation) ClearOrder() {
	m.cleared_order = true
	m.clearedFields[orderline.FieldOrderID] = struct{}{}
}

// OrderCleared reports if the "order" edge to the Order entity was cleared.
func (m *OrderLineMutation) OrderCleared() bool {
	return m.cleared_order
}

// OrderIDs returns the "order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrderID instead. It exists only for internal usage by the builders.
func (m *OrderLineMutation) OrderIDs() (ids []string) {
	if id := m._order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrder resets all changes to the "order" edge.
func (m *OrderLineMutation) ResetOrder() {
	m._order = nil
	m.cleared_order = false
}

// SetMedicineID sets the "medicine" edge to the Medicine entity by id.
func (m *OrderLineMutation) SetMedicineID(id int) {
	m.medicine = &id
}

// ClearMedicine clears the "medicine" edge to the Medicine entity.
func (m *OrderLineMutation) ClearMedicine() {
	m.clearedmedicine = true
}

// MedicineCleared reports if the "medicine" edge to the Medicine entity was cleared.
func (m *OrderLineMutation) MedicineCleared() bool {
	return m.clearedmedicine
}

// MedicineID returns the "medicine" edge ID in the mutation.
func (m *OrderLineMutation) MedicineID() (id int, exists bool) {
	if m.medicine != nil {
		return *m.medicine, true
	}
	return
}

// MedicineIDs returns the "medicine" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MedicineID instead. It exists only for internal usage by the builders.
func (m *OrderLineMutation) MedicineIDs() (ids []int) {
	if id := m.medicine; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMedicine resets all changes to the "medicine" edge.
func (m *OrderLineMutation) ResetMedicine() {
	m.medicine = nil
	m.clearedmedicine = false
}

// Where appends a list predicates to the OrderLineMutation builder.
func (m *OrderLineMutation) Where(ps ...predicate.OrderLine) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderLineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderLineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderLine, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderLineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderLineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderLine).
func (m *OrderLineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderLineMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.medicine_name != nil {
		fields = append(fields, orderline.FieldMedicineName)
	}
	if m.dosage != nil {
		fields = append(fields, orderline.FieldDosage)
	}
	if m.quantity != nil {
		fields = append(fields, orderline.FieldQuantity)
	}
	if m.unit_price != nil {
		fields = append(fields, orderline.FieldUnitPrice)
	}
	if m._order != nil {
		fields = append(fields, orderline.FieldOrderID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderLineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderline.FieldMedicineName:
		return m.MedicineName()
	case orderline.FieldDosage:
		return m.Dosage()
	case orderline.FieldQuantity:
		return m.Quantity()
	case orderline.FieldUnitPrice:
		return m.UnitPrice()
	case orderline.FieldOrderID:
		return m.OrderID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderLineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderline.FieldMedicineName:
		return m.OldMedicineName(ctx)
	case orderline.FieldDosage:
		return m.OldDosage(ctx)
	case orderline.FieldQuantity:
		return m.OldQuantity(ctx)
	case orderline.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case orderline.FieldOrderID:
		return m.OldOrderID(ctx)
	}
	return nil, fmt.Errorf("unknown OrderLine field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderLineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderline.FieldMedicineName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicineName(v)
		return nil
	case orderline.FieldDosage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDosage(v)
		return nil
	case orderline.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case orderline.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case orderline.FieldOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	}
	return fmt.Errorf("unknown OrderLine field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderLineMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, orderline.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, orderline.FieldUnitPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderLineMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orderline.FieldQuantity:
		return m.AddedQuantity()
	case orderline.FieldUnitPrice:
		return m.AddedUnitPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderLineMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orderline.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case orderline.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	}
	return fmt.Errorf("unknown OrderLine numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderLineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orderline.FieldDosage) {
		fields = append(fields, orderline.FieldDosage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderLineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderLineMutation) ClearField(name string) error {
	switch name {
	case orderline.FieldDosage:
		m.ClearDosage()
		return nil
	}
	return fmt.Errorf("unknown OrderLine nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderLineMutation) ResetField(name string) error {
	switch name {
	case orderline.FieldMedicineName:
		m.ResetMedicineName()
		return nil
	case orderline.FieldDosage:
		m.ResetDosage()
		return nil
	case orderline.FieldQuantity:
		m.ResetQuantity()
		return nil
	case orderline.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case orderline.FieldOrderID:
		m.ResetOrderID()
		return nil
	}
	return fmt.Errorf("unknown OrderLine field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderLineMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m._order != nil {
		edges = append(edges, orderline.EdgeOrder)
	}
	if m.medicine != nil {
		edges = append(edges, orderline.EdgeMedicine)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderLineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderline.EdgeOrder:
		if id := m._order; id != nil {
			return []ent.Value{*id}
		}
	case orderline.EdgeMedicine:
		if id := m.medicine; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderLineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderLineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderLineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleared_order {
		edges = append(edges, orderline.EdgeOrder)
	}
	if m.clearedmedicine {
		edges = append(edges, orderline.EdgeMedicine)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderLineMutation) EdgeCleared(name string) bool {
	switch name {
	case orderline.EdgeOrder:
		return m.cleared_order
	case orderline.EdgeMedicine:
		return m.clearedmedicine
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderLineMutation) ClearEdge(name string) error {
	switch name {
	case orderline.EdgeOrder:
		m.ClearOrder()
		return nil
	case orderline.EdgeMedicine:
		m.ClearMedicine()
		return nil
	}
	return fmt.Errorf("unknown OrderLine unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderLineMutation) ResetEdge(name string) error {
	switch name {
	case orderline.EdgeOrder:
		m.ResetOrder()
		return nil
	case orderline.EdgeMedicine:
		m.ResetMedicine()
		return nil
	}
	return fmt.Errorf("unknown OrderLine edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	pid                *string
	phone              *string
	name               *string
	age                *int
	addage             *int
	allergies          *[]string
	appendallergies    []string
	conditions         *[]string
	appendconditions   []string
	risk_score         *int
	addrisk_score      *int
	risk_level         *patient.RiskLevel
	risk_flags         *[]string
	appendrisk_flags   []string
	risk_updated_at    *time.Time
	flagged_for_review *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Patient, error)
	predicates         []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id int) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPid sets the "pid" field.
func (m *PatientMutation) SetPid(s string) {
	m.pid = &s
}

// Pid returns the value of the "pid" field in the mutation.
func (m *PatientMutation) Pid() (r string, exists bool) {
	v := m.pid
	if v == nil {
		return
	}
	return *v, true
}

// OldPid returns the old "pid" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPid: %w", err)
	}
	return oldValue.Pid, nil
}

// ResetPid resets all changes to the "pid" field.
func (m *PatientMutation) ResetPid() {
	m.pid = nil
}

// SetPhone sets the "phone" field.
func (m *PatientMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *PatientMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *PatientMutation) ResetPhone() {
	m.phone = nil
}

// SetName sets the "name" field.
func (m *PatientMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PatientMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *PatientMutation) ClearName() {
	m.name = nil
	m.clearedFields[patient.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *PatientMutation) NameCleared() bool {
	_, ok := m.clearedFields[patient.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *PatientMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, patient.FieldName)
}

// SetAge sets the "age" field.
func (m *PatientMutation) SetAge(i int) {
	m.age = &i
	m.addage = nil
}

// Age returns the value of the "age" field in the mutation.
func (m *PatientMutation) Age() (r int, exists bool) {
	v := m.age
	if v == nil {
		return
	}
	return *v, true
}

// OldAge returns the old "age" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldAge(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAge: %w", err)
	}
	return oldValue.Age, nil
}

// AddAge adds i to the "age" field.
func (m *PatientMutation) AddAge(i int) {
	if m.addage != nil {
		*m.addage += i
	} else {
		m.addage = &i
	}
}

// AddedAge returns the value that was added to the "age" field in this mutation.
func (m *PatientMutation) AddedAge() (r int, exists bool) {
	v := m.addage
	if v == nil {
		return
	}
	return *v, true
}

// ClearAge clears the value of the "age" field.
func (m *PatientMutation) ClearAge() {
	m.age = nil
	m.addage = nil
	m.clearedFields[patient.FieldAge] = struct{}{}
}

// AgeCleared returns if the "age" field was cleared in this mutation.
func (m *PatientMutation) AgeCleared() bool {
	_, ok := m.clearedFields[patient.FieldAge]
	return ok
}

// ResetAge resets all changes to the "age" field.
func (m *PatientMutation) ResetAge() {
	m.age = nil
	m.addage = nil
	delete(m.clearedFields, patient.FieldAge)
}

// SetAllergies sets the "allergies" field.
func (m *PatientMutation) SetAllergies(s []string) {
	m.allergies = &s
	m.appendallergies = nil
}

// Allergies returns the value of the "allergies" field in the mutation.
func (m *PatientMutation) Allergies() (r []string, exists bool) {
	v := m.allergies
	if v == nil {
		return
	}
	return *v, true
}

// OldAllergies returns the old "allergies" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldAllergies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllergies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllergies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllergies: %w", err)
	}
	return oldValue.Allergies, nil
}

// AppendAllergies adds s to the "allergies" field.
func (m *PatientMutation) AppendAllergies(s []string) {
	m.appendallergies = append(m.appendallergies, s...)
}

// AppendedAllergies returns the list of values that were appended to the "allergies" field in this mutation.
func (m *PatientMutation) AppendedAllergies() ([]string, bool) {
	if len(m.appendallergies) == 0 {
		return nil, false
	}
	return m.appendallergies, true
}

// ClearAllergies clears the value of the "allergies" field.
func (m *PatientMutation) ClearAllergies() {
	m.allergies = nil
	m.appendallergies = nil
	m.clearedFields[patient.FieldAllergies] = struct{}{}
}

// AllergiesCleared returns if the "allergies" field was cleared in this mutation.
func (m *PatientMutation) AllergiesCleared() bool {
	_, ok := m.clearedFields[patient.FieldAllergies]
	return ok
}

// ResetAllergies resets all changes to the "allergies" field.
func (m *PatientMutation) ResetAllergies() {
	m.allergies = nil
	m.appendallergies = nil
	delete(m.clearedFields, patient.FieldAllergies)
}

// SetConditions sets the "conditions" field.
func (m *PatientMutation) SetConditions(s []string) {
	m.conditions = &s
	m.appendconditions = nil
}

// Conditions returns the value of the "conditions" field in the mutation.
func (m *PatientMutation) Conditions() (r []string, exists bool) {
	v := m.conditions
	if v == nil {
		return
	}
	return *v, true
}

// OldConditions returns the old "conditions" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldConditions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditions: %w", err)
	}
	return oldValue.Conditions, nil
}

// AppendConditions adds s to the "conditions" field.
func (m *PatientMutation) AppendConditions(s []string) {
	m.appendconditions = append(m.appendconditions, s...)
}

// AppendedConditions returns the list of values that were appended to the "conditions" field in this mutation.
func (m *PatientMutation) AppendedConditions() ([]string, bool) {
	if len(m.appendconditions) == 0 {
		return nil, false
	}
	return m.appendconditions, true
}

// ClearConditions clears the value of the "conditions" field.
func (m *PatientMutation) ClearConditions() {
	m.conditions = nil
	m.appendconditions = nil
	m.clearedFields[patient.FieldConditions] = struct{}{}
}

// ConditionsCleared returns if the "conditions" field was cleared in this mutation.
func (m *PatientMutation) ConditionsCleared() bool {
	_, ok := m.clearedFields[patient.FieldConditions]
	return ok
}

// ResetConditions resets all changes to the "conditions" field.
func (m *PatientMutation) ResetConditions() {
	m.conditions = nil
	m.appendconditions = nil
	delete(m.clearedFields, patient.FieldConditions)
}

// SetRiskScore sets the "risk_score" field.
func (m *PatientMutation) SetRiskScore(i int) {
	m.risk_score = &i
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *PatientMutation) RiskScore() (r int, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldRiskScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds i to the "risk_score" field.
func (m *PatientMutation) AddRiskScore(i int) {
	if m.addrisk_score != nil {
		*m.addrisk_score += i
	} else {
		m.addrisk_score = &i
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *PatientMutation) AddedRiskScore() (r int, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *PatientMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *PatientMutation) SetRiskLevel(pl patient.RiskLevel) {
	m.risk_level = &pl
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *PatientMutation) RiskLevel() (r patient.RiskLevel, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldRiskLevel(ctx context.Context) (v patient.RiskLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *PatientMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetRiskFlags sets the "risk_flags" field.
func (m *PatientMutation) SetRiskFlags(s []string) {
	m.risk_flags = &s
	m.appendrisk_flags = nil
}

// RiskFlags returns the value of the "risk_flags" field in the mutation.
func (m *PatientMutation) RiskFlags() (r []string, exists bool) {
	v := m.risk_flags
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskFlags returns the old "risk_flags" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldRiskFlags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskFlags: %w", err)
	}
	return oldValue.RiskFlags, nil
}

// AppendRiskFlags adds s to the "risk_flags" field.
func (m *PatientMutation) AppendRiskFlags(s []string) {
	m.appendrisk_flags = append(m.appendrisk_flags, s...)
}

// AppendedRiskFlags returns the list of values that were appended to the "risk_flags" field in this mutation.
func (m *PatientMutation) AppendedRiskFlags() ([]string, bool) {
	if len(m.appendrisk_flags) == 0 {
		return nil, false
	}
	return m.appendrisk_flags, true
}

// ClearRiskFlags clears the value of the "risk_flags" field.
func (m *PatientMutation) ClearRiskFlags() {
	m.risk_flags = nil
	m.appendrisk_flags = nil
	m.clearedFields[patient.FieldRiskFlags] = struct{}{}
}

// RiskFlagsCleared returns if the "risk_flags" field was cleared in this mutation.
func (m *PatientMutation) RiskFlagsCleared() bool {
	_, ok := m.clearedFields[patient.FieldRiskFlags]
	return ok
}

// ResetRiskFlags resets all changes to the "risk_flags" field.
func (m *PatientMutation) ResetRiskFlags() {
	m.risk_flags = nil
	m.appendrisk_flags = nil
	delete(m.clearedFields, patient.FieldRiskFlags)
}

// SetRiskUpdatedAt sets the "risk_updated_at" field.
func (m *PatientMutation) SetRiskUpdatedAt(t time.Time) {
	m.risk_updated_at = &t
}

// RiskUpdatedAt returns the value of the "risk_updated_at" field in the mutation.
func (m *PatientMutation) RiskUpdatedAt() (r time.Time, exists bool) {
	v := m.risk_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskUpdatedAt returns the old "risk_updated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldRiskUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskUpdatedAt: %w", err)
	}
	return oldValue.RiskUpdatedAt, nil
}

// ClearRiskUpdatedAt clears the value of the "risk_updated_at" field.
func (m *PatientMutation) ClearRiskUpdatedAt() {
	m.risk_updated_at = nil
	m.clearedFields[patient.FieldRiskUpdatedAt] = struct{}{}
}

// RiskUpdatedAtCleared returns if the "risk_updated_at" field was cleared in this mutation.
func (m *PatientMutation) RiskUpdatedAtCleared() bool {
	_, ok := m.clearedFields[patient.FieldRiskUpdatedAt]
	return ok
}

// ResetRiskUpdatedAt resets all changes to the "risk_updated_at" field.
func (m *PatientMutation) ResetRiskUpdatedAt() {
	m.risk_updated_at = nil
	delete(m.clearedFields, patient.FieldRiskUpdatedAt)
}

// SetFlaggedForReview sets the "flagged_for_review" field.
func (m *PatientMutation) SetFlaggedForReview(b bool) {
	m.flagged_for_review = &b
}

// FlaggedForReview returns the value of the "flagged_for_review" field in the mutation.
func (m *PatientMutation) FlaggedForReview() (r bool, exists bool) {
	v := m.flagged_for_review
	if v == nil {
		return
	}
	return *v, true
}

// OldFlaggedForReview returns the old "flagged_for_review" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldFlaggedForReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlaggedForReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlaggedForReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlaggedForReview: %w", err)
	}
	return oldValue.FlaggedForReview, nil
}

// ResetFlaggedForReview resets all changes to the "flagged_for_review" field.
func (m *PatientMutation) ResetFlaggedForReview() {
	m.flagged_for_review = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.pid != nil {
		fields = append(fields, patient.FieldPid)
	}
	if m.phone != nil {
		fields = append(fields, patient.FieldPhone)
	}
	if m.name != nil {
		fields = append(fields, patient.FieldName)
	}
	if m.age != nil {
		fields = append(fields, patient.FieldAge)
	}
	if m.allergies != nil {
		fields = append(fields, patient.FieldAllergies)
	}
	if m.conditions != nil {
		fields = append(fields, patient.FieldConditions)
	}
	if m.risk_score != nil {
		fields = append(fields, patient.FieldRiskScore)
	}
	if m.risk_level != nil {
		fields = append(fields, patient.FieldRiskLevel)
	}
	if m.risk_flags != nil {
		fields = append(fields, patient.FieldRiskFlags)
	}
	if m.risk_updated_at != nil {
		fields = append(fields, patient.FieldRiskUpdatedAt)
	}
	if m.flagged_for_review != nil {
		fields = append(fields, patient.FieldFlaggedForReview)
	}
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldPid:
		return m.Pid()
	case patient.FieldPhone:
		return m.Phone()
	case patient.FieldName:
		return m.Name()
	case patient.FieldAge:
		return m.Age()
	case patient.FieldAllergies:
		return m.Allergies()
	case patient.FieldConditions:
		return m.Conditions()
	case patient.FieldRiskScore:
		return m.RiskScore()
	case patient.FieldRiskLevel:
		return m.RiskLevel()
	case patient.FieldRiskFlags:
		return m.RiskFlags()
	case patient.FieldRiskUpdatedAt:
		return m.RiskUpdatedAt()
	case patient.FieldFlaggedForReview:
		return m.FlaggedForReview()
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldPid:
		return m.OldPid(ctx)
	case patient.FieldPhone:
		return m.OldPhone(ctx)
	case patient.FieldName:
		return m.OldName(ctx)
	case patient.FieldAge:
		return m.OldAge(ctx)
	case patient.FieldAllergies:
		return m.OldAllergies(ctx)
	case patient.FieldConditions:
		return m.OldConditions(ctx)
	case patient.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case patient.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case patient.FieldRiskFlags:
		return m.OldRiskFlags(ctx)
	case patient.FieldRiskUpdatedAt:
		return m.OldRiskUpdatedAt(ctx)
	case patient.FieldFlaggedForReview:
		return m.OldFlaggedForReview(ctx)
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldPid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPid(v)
		return nil
	case patient.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case patient.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case patient.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAge(v)
		return nil
	case patient.FieldAllergies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllergies(v)
		return nil
	case patient.FieldConditions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditions(v)
		return nil
	case patient.FieldRiskScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case patient.FieldRiskLevel:
		v, ok := value.(patient.RiskLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case patient.FieldRiskFlags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskFlags(v)
		return nil
	case patient.FieldRiskUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskUpdatedAt(v)
		return nil
	case patient.FieldFlaggedForReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlaggedForReview(v)
		return nil
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	var fields []string
	if m.addage != nil {
		fields = append(fields, patient.FieldAge)
	}
	if m.addrisk_score != nil {
		fields = append(fields, patient.FieldRiskScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldAge:
		return m.AddedAge()
	case patient.FieldRiskScore:
		return m.AddedRiskScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patient.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAge(v)
		return nil
	case patient.FieldRiskScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldName) {
		fields = append(fields, patient.FieldName)
	}
	if m.FieldCleared(patient.FieldAge) {
		fields = append(fields, patient.FieldAge)
	}
	if m.FieldCleared(patient.FieldAllergies) {
		fields = append(fields, patient.FieldAllergies)
	}
	if m.FieldCleared(patient.FieldConditions) {
		fields = append(fields, patient.FieldConditions)
	}
	if m.FieldCleared(patient.FieldRiskFlags) {
		fields = append(fields, patient.FieldRiskFlags)
	}
	if m.FieldCleared(patient.FieldRiskUpdatedAt) {
		fields = append(fields, patient.FieldRiskUpdatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldName:
		m.ClearName()
		return nil
	case patient.FieldAge:
		m.ClearAge()
		return nil
	case patient.FieldAllergies:
		m.ClearAllergies()
		return nil
	case patient.FieldConditions:
		m.ClearConditions()
		return nil
	case patient.FieldRiskFlags:
		m.ClearRiskFlags()
		return nil
	case patient.FieldRiskUpdatedAt:
		m.ClearRiskUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldPid:
		m.ResetPid()
		return nil
	case patient.FieldPhone:
		m.ResetPhone()
		return nil
	case patient.FieldName:
		m.ResetName()
		return nil
	case patient.FieldAge:
		m.ResetAge()
		return nil
	case patient.FieldAllergies:
		m.ResetAllergies()
		return nil
	case patient.FieldConditions:
		m.ResetConditions()
		return nil
	case patient.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case patient.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case patient.FieldRiskFlags:
		m.ResetRiskFlags()
		return nil
	case patient.FieldRiskUpdatedAt:
		m.ResetRiskUpdatedAt()
		return nil
	case patient.FieldFlaggedForReview:
		m.ResetFlaggedForReview()
		return nil
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Patient edge %s", name)
}

// RefillPredictionMutation represents an operation that mutates the RefillPrediction nodes in the graph.
type RefillPredictionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	user_id                  *string
	medicine_name            *string
	predicted_depletion_date *time.Time
	confidence               *float64
	addconfidence            *float64
	reminder_sent            *bool
	refill_confirmed         *bool
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*RefillPrediction, error)
	predicates               []predicate.RefillPrediction
}

var _ ent.Mutation = (*RefillPredictionMutation)(nil)

// refillpredictionOption allows management of the mutation configuration using functional options.
type refillpredictionOption func(*RefillPredictionMutation)

// newRefillPredictionMutation creates new mutation for the RefillPrediction entity.
func newRefillPredictionMutation(c config, op Op, opts ...refillpredictionOption) *RefillPredictionMutation {
	m := &RefillPredictionMutation{
		config:        c,
		op:            op,
		typ:           TypeRefillPrediction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRefillPredictionID sets the ID field of the mutation.
func withRefillPredictionID(id int) refillpredictionOption {
	return func(m *RefillPredictionMutation) {
		var (
			err   error
			once  sync.Once
			value *RefillPrediction
		)
		m.oldValue = func(ctx context.Context) (*RefillPrediction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RefillPrediction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRefillPrediction sets the old RefillPrediction of the mutation.
func withRefillPrediction(node *RefillPrediction) refillpredictionOption {
	return func(m *RefillPredictionMutation) {
		m.oldValue = func(context.Context) (*RefillPrediction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RefillPredictionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RefillPredictionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RefillPredictionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RefillPredictionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RefillPrediction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *RefillPredictionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RefillPredictionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the RefillPrediction entity.
// If the RefillPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefillPredictionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RefillPredictionMutation) ResetUserID() {
	m.user_id = nil
}

// SetMedicineName sets the "medicine_name" field.
func (m *RefillPredictionMutation) SetMedicineName(s string) {
	m.medicine_name = &s
}

// MedicineName returns the value of the "medicine_name" field in the mutation.
func (m *RefillPredictionMutation) MedicineName() (r string, exists bool) {
	v := m.medicine_name
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicineName returns the old "medicine_name" field's value of the RefillPrediction entity.
// If the RefillPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefillPredictionMutation) OldMedicineName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicineName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicineName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicineName: %w", err)
	}
	return oldValue.MedicineName, nil
}

// ResetMedicineName resets all changes to the "medicine_name" field.
func (m *RefillPredictionMutation) ResetMedicineName() {
	m.medicine_name = nil
}

// SetPredictedDepletionDate sets the "predicted_depletion_date" field.
func (m *RefillPredictionMutation) SetPredictedDepletionDate(t time.Time) {
	m.predicted_depletion_date = &t
}

// PredictedDepletionDate returns the value of the "predicted_depletion_date" field in the mutation.
func (m *RefillPredictionMutation) PredictedDepletionDate() (r time.Time, exists bool) {
	v := m.predicted_depletion_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictedDepletionDate returns the old "predicted_depletion_date" field's value of the RefillPrediction entity.
// If the RefillPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefillPredictionMutation) OldPredictedDepletionDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictedDepletionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictedDepletionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictedDepletionDate: %w", err)
	}
	return oldValue.PredictedDepletionDate, nil
}

// ResetPredictedDepletionDate resets all changes to the "predicted_depletion_date" field.
func (m *RefillPredictionMutation) ResetPredictedDepletionDate() {
	m.predicted_depletion_date = nil
}

// SetConfidence sets the "confidence" field.
func (m *RefillPredictionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *RefillPredictionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the RefillPrediction entity.
// If the RefillPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefillPredictionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *RefillPredictionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *RefillPredictionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *RefillPredictionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetReminderSent sets the "reminder_sent" field.
func (m *RefillPredictionMutation) SetReminderSent(b bool) {
	m.reminder_sent = &b
}

// ReminderSent returns the value of the "reminder_sent" field in the mutation.
func (m *RefillPredictionMutation) ReminderSent() (r bool, exists bool) {
	v := m.reminder_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldReminderSent returns the old "reminder_sent" field's value of the RefillPrediction entity.
// If the RefillPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefillPredictionMutation) OldReminderSent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReminderSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReminderSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReminderSent: %w", err)
	}
	return oldValue.ReminderSent, nil
}

// ResetReminderSent resets all changes to the "reminder_sent" field.
func (m *RefillPredictionMutation) ResetReminderSent() {
	m.reminder_sent = nil
}

// SetRefillConfirmed sets the "refill_confirmed" field.
func (m *RefillPredictionMutation) SetRefillConfirmed(b bool) {
	m.refill_confirmed = &b
}

// RefillConfirmed returns the value of the "refill_confirmed" field in the mutation.
func (m *RefillPredictionMutation) RefillConfirmed() (r bool, exists bool) {
	v := m.refill_confirmed
	if v == nil {
		return
	}
	return *v, true
}

// OldRefillConfirmed returns the old "refill_confirmed" field's value of the RefillPrediction entity.
// If the RefillPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefillPredictionMutation) OldRefillConfirmed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefillConfirmed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefillConfirmed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefillConfirmed: %w", err)
	}
	return oldValue.RefillConfirmed, nil
}

// ResetRefillConfirmed resets all changes to the "refill_confirmed" field.
func (m *RefillPredictionMutation) ResetRefillConfirmed() {
	m.refill_confirmed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RefillPredictionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RefillPredictionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RefillPrediction entity.
// If the RefillPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefillPredictionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RefillPredictionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RefillPredictionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RefillPredictionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RefillPrediction entity.
// If the RefillPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefillPredictionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RefillPredictionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RefillPredictionMutation builder.
func (m *RefillPredictionMutation) Where(ps ...predicate.RefillPrediction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RefillPredictionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RefillPredictionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RefillPrediction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RefillPredictionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RefillPredictionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RefillPrediction).
func (m *RefillPredictionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RefillPredictionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, refillprediction.FieldUserID)
	}
	if m.medicine_name != nil {
		fields = append(fields, refillprediction.FieldMedicineName)
	}
	if m.predicted_depletion_date != nil {
		fields = append(fields, refillprediction.FieldPredictedDepletionDate)
	}
	if m.confidence != nil {
		fields = append(fields, refillprediction.FieldConfidence)
	}
	if m.reminder_sent != nil {
		fields = append(fields, refillprediction.FieldReminderSent)
	}
	if m.refill_confirmed != nil {
		fields = append(fields, refillprediction.FieldRefillConfirmed)
	}
	if m.created_at != nil {
		fields = append(fields, refillprediction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, refillprediction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RefillPredictionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case refillprediction.FieldUserID:
		return m.UserID()
	case refillprediction.FieldMedicineName:
		return m.MedicineName()
	case refillprediction.FieldPredictedDepletionDate:
		return m.PredictedDepletionDate()
	case refillprediction.FieldConfidence:
		return m.Confidence()
	case refillprediction.FieldReminderSent:
		return m.ReminderSent()
	case refillprediction.FieldRefillConfirmed:
		return m.RefillConfirmed()
	case refillprediction.FieldCreatedAt:
		return m.CreatedAt()
	case refillprediction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RefillPredictionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case refillprediction.FieldUserID:
		return m.OldUserID(ctx)
	case refillprediction.FieldMedicineName:
		return m.OldMedicineName(ctx)
	case refillprediction.FieldPredictedDepletionDate:
		return m.OldPredictedDepletionDate(ctx)
	case refillprediction.FieldConfidence:
		return m.OldConfidence(ctx)
	case refillprediction.FieldReminderSent:
		return m.OldReminderSent(ctx)
	case refillprediction.FieldRefillConfirmed:
		return m.OldRefillConfirmed(ctx)
	case refillprediction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case refillprediction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RefillPrediction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RefillPredictionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case refillprediction.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case refillprediction.FieldMedicineName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicineName(v)
		return nil
	case refillprediction.FieldPredictedDepletionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictedDepletionDate(v)
		return nil
	case refillprediction.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case refillprediction.FieldReminderSent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReminderSent(v)
		return nil
	case refillprediction.FieldRefillConfirmed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefillConfirmed(v)
		return nil
	case refillprediction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case refillprediction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RefillPrediction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RefillPredictionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, refillprediction.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RefillPredictionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case refillprediction.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RefillPredictionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case refillprediction.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown RefillPrediction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RefillPredictionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RefillPredictionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RefillPredictionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RefillPrediction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RefillPredictionMutation) ResetField(name string) error {
	switch name {
	case refillprediction.FieldUserID:
		m.ResetUserID()
		return nil
	case refillprediction.FieldMedicineName:
		m.ResetMedicineName()
		return nil
	case refillprediction.FieldPredictedDepletionDate:
		m.ResetPredictedDepletionDate()
		return nil
	case refillprediction.FieldConfidence:
		m.ResetConfidence()
		return nil
	case refillprediction.FieldReminderSent:
		m.ResetReminderSent()
		return nil
	case refillprediction.FieldRefillConfirmed:
		m.ResetRefillConfirmed()
		return nil
	case refillprediction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case refillprediction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RefillPrediction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RefillPredictionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RefillPredictionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RefillPredictionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RefillPredictionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RefillPredictionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RefillPredictionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RefillPredictionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RefillPrediction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RefillPredictionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RefillPrediction edge %s", name)
}
