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
	"github.com/arogya-labs/aushadhi/ent/auditlogentry"
	"github.com/arogya-labs/aushadhi/ent/order"
)

// AuditLogEntryCreate is the builder for creating a AuditLogEntry entity.
type AuditLogEntryCreate struct {
	config
	mutation *AuditLogEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentName sets the "agent_name" field.
func (_c *AuditLogEntryCreate) SetAgentName(v string) *AuditLogEntryCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *AuditLogEntryCreate) SetDecision(v string) *AuditLogEntryCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *AuditLogEntryCreate) SetReasoning(v string) *AuditLogEntryCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *AuditLogEntryCreate) SetNillableReasoning(v *string) *AuditLogEntryCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AuditLogEntryCreate) SetConfidence(v float64) *AuditLogEntryCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *AuditLogEntryCreate) SetNillableConfidence(v *float64) *AuditLogEntryCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetExtraData sets the "extra_data" field.
func (_c *AuditLogEntryCreate) SetExtraData(v map[string]interface{}) *AuditLogEntryCreate {
	_c.mutation.SetExtraData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditLogEntryCreate) SetCreatedAt(v time.Time) *AuditLogEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditLogEntryCreate) SetNillableCreatedAt(v *time.Time) *AuditLogEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *AuditLogEntryCreate) SetOrderID(v string) *AuditLogEntryCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_c *AuditLogEntryCreate) SetNillableOrderID(v *string) *AuditLogEntryCreate {
	if v != nil {
		_c.SetOrderID(*v)
	}
	return _c
}

// SetOrder sets the "order" edge to the Order entity.
func (_c *AuditLogEntryCreate) SetOrder(v *Order) *AuditLogEntryCreate {
	return _c.SetOrderID(v.ID)
}

// Mutation returns the AuditLogEntryMutation object of the builder.
func (_c *AuditLogEntryCreate) Mutation() *AuditLogEntryMutation {
	return _c.mutation
}

// Save creates the AuditLogEntry in the database.
func (_c *AuditLogEntryCreate) Save(ctx context.Context) (*AuditLogEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditLogEntryCreate) SaveX(ctx context.Context) *AuditLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditLogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditLogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditLogEntryCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := auditlogentry.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditlogentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditLogEntryCreate) check() error {
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AuditLogEntry.agent_name"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "AuditLogEntry.decision"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AuditLogEntry.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditLogEntry.created_at"`)}
	}
	return nil
}

func (_c *AuditLogEntryCreate) sqlSave(ctx context.Context) (*AuditLogEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditLogEntryCreate) createSpec() (*AuditLogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditLogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditlogentry.Table, sqlgraph.NewFieldSpec(auditlogentry.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(auditlogentry.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(auditlogentry.FieldDecision, field.TypeString, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(auditlogentry.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(auditlogentry.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ExtraData(); ok {
		_spec.SetField(auditlogentry.FieldExtraData, field.TypeJSON, value)
		_node.ExtraData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditlogentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditlogentry.OrderTable,
			Columns: []string{auditlogentry.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OrderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditLogEntry.Create().
//		SetAgentName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditLogEntryUpsert) {
//			SetAgentName(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditLogEntryCreate) OnConflict(opts ...sql.ConflictOption) *AuditLogEntryUpsertOne {
	_c.conflict = opts
	return &AuditLogEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditLogEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditLogEntryCreate) OnConflictColumns(columns ...string) *AuditLogEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditLogEntryUpsertOne{
		create: _c,
	}
}

type (
	// AuditLogEntryUpsertOne is the builder for "upsert"-ing
	//  one AuditLogEntry node.
	AuditLogEntryUpsertOne struct {
		create *AuditLogEntryCreate
	}

	// AuditLogEntryUpsert is the "OnConflict" setter.
	AuditLogEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentName sets the "agent_name" field.
func (u *AuditLogEntryUpsert) SetAgentName(v string) *AuditLogEntryUpsert {
	u.Set(auditlogentry.FieldAgentName, v)
	return u
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *AuditLogEntryUpsert) UpdateAgentName() *AuditLogEntryUpsert {
	u.SetExcluded(auditlogentry.FieldAgentName)
	return u
}

// SetDecision sets the "decision" field.
func (u *AuditLogEntryUpsert) SetDecision(v string) *AuditLogEntryUpsert {
	u.Set(auditlogentry.FieldDecision, v)
	return u
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *AuditLogEntryUpsert) UpdateDecision() *AuditLogEntryUpsert {
	u.SetExcluded(auditlogentry.FieldDecision)
	return u
}

// SetReasoning sets the "reasoning" field.
func (u *AuditLogEntryUpsert) SetReasoning(v string) *AuditLogEntryUpsert {
	u.Set(auditlogentry.FieldReasoning, v)
	return u
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *AuditLogEntryUpsert) UpdateReasoning() *AuditLogEntryUpsert {
	u.SetExcluded(auditlogentry.FieldReasoning)
	return u
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *AuditLogEntryUpsert) ClearReasoning() *AuditLogEntryUpsert {
	u.SetNull(auditlogentry.FieldReasoning)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *AuditLogEntryUpsert) SetConfidence(v float64) *AuditLogEntryUpsert {
	u.Set(auditlogentry.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *AuditLogEntryUpsert) UpdateConfidence() *AuditLogEntryUpsert {
	u.SetExcluded(auditlogentry.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *AuditLogEntryUpsert) AddConfidence(v float64) *AuditLogEntryUpsert {
	u.Add(auditlogentry.FieldConfidence, v)
	return u
}

// SetExtraData sets the "extra_data" field.
func (u *AuditLogEntryUpsert) SetExtraData(v map[string]interface{}) *AuditLogEntryUpsert {
	u.Set(auditlogentry.FieldExtraData, v)
	return u
}

// UpdateExtraData sets the "extra_data" field to the value that was provided on create.
func (u *AuditLogEntryUpsert) UpdateExtraData() *AuditLogEntryUpsert {
	u.SetExcluded(auditlogentry.FieldExtraData)
	return u
}

// ClearExtraData clears the value of the "extra_data" field.
func (u *AuditLogEntryUpsert) ClearExtraData() *AuditLogEntryUpsert {
	u.SetNull(auditlogentry.FieldExtraData)
	return u
}

// SetOrderID sets the "order_id" field.
func (u *AuditLogEntryUpsert) SetOrderID(v string) *AuditLogEntryUpsert {
	u.Set(auditlogentry.FieldOrderID, v)
	return u
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *AuditLogEntryUpsert) UpdateOrderID() *AuditLogEntryUpsert {
	u.SetExcluded(auditlogentry.FieldOrderID)
	return u
}

// ClearOrderID clears the value of the "order_id" field.
func (u *AuditLogEntryUpsert) ClearOrderID() *AuditLogEntryUpsert {
	u.SetNull(auditlogentry.FieldOrderID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AuditLogEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AuditLogEntryUpsertOne) UpdateNewValues() *AuditLogEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(auditlogentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditLogEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditLogEntryUpsertOne) Ignore() *AuditLogEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditLogEntryUpsertOne) DoNothing() *AuditLogEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditLogEntryCreate.OnConflict
// documentation for more info.
func (u *AuditLogEntryUpsertOne) Update(set func(*AuditLogEntryUpsert)) *AuditLogEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditLogEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentName sets the "agent_name" field.
func (u *AuditLogEntryUpsertOne) SetAgentName(v string) *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.SetAgentName(v)
	})
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *AuditLogEntryUpsertOne) UpdateAgentName() *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.UpdateAgentName()
	})
}

// SetDecision sets the "decision" field.
func (u *AuditLogEntryUpsertOne) SetDecision(v string) *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *AuditLogEntryUpsertOne) UpdateDecision() *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.UpdateDecision()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *AuditLogEntryUpsertOne) SetReasoning(v string) *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *AuditLogEntryUpsertOne) UpdateReasoning() *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.UpdateReasoning()
	})
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *AuditLogEntryUpsertOne) ClearReasoning() *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.ClearReasoning()
	})
}

// SetConfidence sets the "confidence" field.
func (u *AuditLogEntryUpsertOne) SetConfidence(v float64) *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *AuditLogEntryUpsertOne) AddConfidence(v float64) *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *AuditLogEntryUpsertOne) UpdateConfidence() *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.UpdateConfidence()
	})
}

// SetExtraData sets the "extra_data" field.
func (u *AuditLogEntryUpsertOne) SetExtraData(v map[string]interface{}) *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.SetExtraData(v)
	})
}

// UpdateExtraData sets the "extra_data" field to the value that was provided on create.
func (u *AuditLogEntryUpsertOne) UpdateExtraData() *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.UpdateExtraData()
	})
}

// ClearExtraData clears the value of the "extra_data" field.
func (u *AuditLogEntryUpsertOne) ClearExtraData() *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.ClearExtraData()
	})
}

// SetOrderID sets the "order_id" field.
func (u *AuditLogEntryUpsertOne) SetOrderID(v string) *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *AuditLogEntryUpsertOne) UpdateOrderID() *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.UpdateOrderID()
	})
}

// ClearOrderID clears the value of the "order_id" field.
func (u *AuditLogEntryUpsertOne) ClearOrderID() *AuditLogEntryUpsertOne {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.ClearOrderID()
	})
}

// Exec executes the query.
func (u *AuditLogEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditLogEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditLogEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditLogEntryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditLogEntryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditLogEntryCreateBulk is the builder for creating many AuditLogEntry entities in bulk.
type AuditLogEntryCreateBulk struct {
	config
	err      error
	builders []*AuditLogEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the AuditLogEntry entities in the database.
func (_c *AuditLogEntryCreateBulk) Save(ctx context.Context) ([]*AuditLogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditLogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditLogEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AuditLogEntryCreateBulk) SaveX(ctx context.Context) []*AuditLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditLogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditLogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditLogEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditLogEntryUpsert) {
//			SetAgentName(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditLogEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditLogEntryUpsertBulk {
	_c.conflict = opts
	return &AuditLogEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditLogEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditLogEntryCreateBulk) OnConflictColumns(columns ...string) *AuditLogEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditLogEntryUpsertBulk{
		create: _c,
	}
}

// AuditLogEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of AuditLogEntry nodes.
type AuditLogEntryUpsertBulk struct {
	create *AuditLogEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuditLogEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AuditLogEntryUpsertBulk) UpdateNewValues() *AuditLogEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(auditlogentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditLogEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditLogEntryUpsertBulk) Ignore() *AuditLogEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditLogEntryUpsertBulk) DoNothing() *AuditLogEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditLogEntryCreateBulk.OnConflict
// documentation for more info.
func (u *AuditLogEntryUpsertBulk) Update(set func(*AuditLogEntryUpsert)) *AuditLogEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditLogEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentName sets the "agent_name" field.
func (u *AuditLogEntryUpsertBulk) SetAgentName(v string) *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.SetAgentName(v)
	})
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *AuditLogEntryUpsertBulk) UpdateAgentName() *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.UpdateAgentName()
	})
}

// SetDecision sets the "decision" field.
func (u *AuditLogEntryUpsertBulk) SetDecision(v string) *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *AuditLogEntryUpsertBulk) UpdateDecision() *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.UpdateDecision()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *AuditLogEntryUpsertBulk) SetReasoning(v string) *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *AuditLogEntryUpsertBulk) UpdateReasoning() *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.UpdateReasoning()
	})
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *AuditLogEntryUpsertBulk) ClearReasoning() *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.ClearReasoning()
	})
}

// SetConfidence sets the "confidence" field.
func (u *AuditLogEntryUpsertBulk) SetConfidence(v float64) *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *AuditLogEntryUpsertBulk) AddConfidence(v float64) *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *AuditLogEntryUpsertBulk) UpdateConfidence() *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.UpdateConfidence()
	})
}

// SetExtraData sets the "extra_data" field.
func (u *AuditLogEntryUpsertBulk) SetExtraData(v map[string]interface{}) *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.SetExtraData(v)
	})
}

// UpdateExtraData sets the "extra_data" field to the value that was provided on create.
func (u *AuditLogEntryUpsertBulk) UpdateExtraData() *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.UpdateExtraData()
	})
}

// ClearExtraData clears the value of the "extra_data" field.
func (u *AuditLogEntryUpsertBulk) ClearExtraData() *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.ClearExtraData()
	})
}

// SetOrderID sets the "order_id" field.
func (u *AuditLogEntryUpsertBulk) SetOrderID(v string) *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *AuditLogEntryUpsertBulk) UpdateOrderID() *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.UpdateOrderID()
	})
}

// ClearOrderID clears the value of the "order_id" field.
func (u *AuditLogEntryUpsertBulk) ClearOrderID() *AuditLogEntryUpsertBulk {
	return u.Update(func(s *AuditLogEntryUpsert) {
		s.ClearOrderID()
	})
}

// Exec executes the query.
func (u *AuditLogEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditLogEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditLogEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditLogEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
