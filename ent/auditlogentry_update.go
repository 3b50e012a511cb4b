// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arogya-labs/aushadhi/ent/auditlogentry"
	"github.com/arogya-labs/aushadhi/ent/order"
	"github.com/arogya-labs/aushadhi/ent/predicate"
)

// AuditLogEntryUpdate is the builder for updating AuditLogEntry entities.
type AuditLogEntryUpdate struct {
	config
	hooks    []Hook
	mutation *AuditLogEntryMutation
}

// Where appends a list predicates to the AuditLogEntryUpdate builder.
func (_u *AuditLogEntryUpdate) Where(ps ...predicate.AuditLogEntry) *AuditLogEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AuditLogEntryUpdate) SetAgentName(v string) *AuditLogEntryUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AuditLogEntryUpdate) SetNillableAgentName(v *string) *AuditLogEntryUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *AuditLogEntryUpdate) SetDecision(v string) *AuditLogEntryUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *AuditLogEntryUpdate) SetNillableDecision(v *string) *AuditLogEntryUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AuditLogEntryUpdate) SetReasoning(v string) *AuditLogEntryUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AuditLogEntryUpdate) SetNillableReasoning(v *string) *AuditLogEntryUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *AuditLogEntryUpdate) ClearReasoning() *AuditLogEntryUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AuditLogEntryUpdate) SetConfidence(v float64) *AuditLogEntryUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AuditLogEntryUpdate) SetNillableConfidence(v *float64) *AuditLogEntryUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AuditLogEntryUpdate) AddConfidence(v float64) *AuditLogEntryUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetExtraData sets the "extra_data" field.
func (_u *AuditLogEntryUpdate) SetExtraData(v map[string]interface{}) *AuditLogEntryUpdate {
	_u.mutation.SetExtraData(v)
	return _u
}

// ClearExtraData clears the value of the "extra_data" field.
func (_u *AuditLogEntryUpdate) ClearExtraData() *AuditLogEntryUpdate {
	_u.mutation.ClearExtraData()
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *AuditLogEntryUpdate) SetOrderID(v string) *AuditLogEntryUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *AuditLogEntryUpdate) SetNillableOrderID(v *string) *AuditLogEntryUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *AuditLogEntryUpdate) ClearOrderID() *AuditLogEntryUpdate {
	_u.mutation.ClearOrderID()
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *AuditLogEntryUpdate) SetOrder(v *Order) *AuditLogEntryUpdate {
	return _u.SetOrderID(v.ID)
}

// Mutation returns the AuditLogEntryMutation object of the builder.
func (_u *AuditLogEntryUpdate) Mutation() *AuditLogEntryMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *AuditLogEntryUpdate) ClearOrder() *AuditLogEntryUpdate {
	_u.mutation.ClearOrder()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditLogEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditLogEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditLogEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditLogEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuditLogEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(auditlogentry.Table, auditlogentry.Columns, sqlgraph.NewFieldSpec(auditlogentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(auditlogentry.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(auditlogentry.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(auditlogentry.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(auditlogentry.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(auditlogentry.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(auditlogentry.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExtraData(); ok {
		_spec.SetField(auditlogentry.FieldExtraData, field.TypeJSON, value)
	}
	if _u.mutation.ExtraDataCleared() {
		_spec.ClearField(auditlogentry.FieldExtraData, field.TypeJSON)
	}
	if _u.mutation.OrderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditLogEntryUpdateOne is the builder for updating a single AuditLogEntry entity.
type AuditLogEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditLogEntryMutation
}

// SetAgentName sets the "agent_name" field.
func (_u *AuditLogEntryUpdateOne) SetAgentName(v string) *AuditLogEntryUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AuditLogEntryUpdateOne) SetNillableAgentName(v *string) *AuditLogEntryUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *AuditLogEntryUpdateOne) SetDecision(v string) *AuditLogEntryUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *AuditLogEntryUpdateOne) SetNillableDecision(v *string) *AuditLogEntryUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AuditLogEntryUpdateOne) SetReasoning(v string) *AuditLogEntryUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AuditLogEntryUpdateOne) SetNillableReasoning(v *string) *AuditLogEntryUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *AuditLogEntryUpdateOne) ClearReasoning() *AuditLogEntryUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AuditLogEntryUpdateOne) SetConfidence(v float64) *AuditLogEntryUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AuditLogEntryUpdateOne) SetNillableConfidence(v *float64) *AuditLogEntryUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AuditLogEntryUpdateOne) AddConfidence(v float64) *AuditLogEntryUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetExtraData sets the "extra_data" field.
func (_u *AuditLogEntryUpdateOne) SetExtraData(v map[string]interface{}) *AuditLogEntryUpdateOne {
	_u.mutation.SetExtraData(v)
	return _u
}

// ClearExtraData clears the value of the "extra_data" field.
func (_u *AuditLogEntryUpdateOne) ClearExtraData() *AuditLogEntryUpdateOne {
	_u.mutation.ClearExtraData()
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *AuditLogEntryUpdateOne) SetOrderID(v string) *AuditLogEntryUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *AuditLogEntryUpdateOne) SetNillableOrderID(v *string) *AuditLogEntryUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *AuditLogEntryUpdateOne) ClearOrderID() *AuditLogEntryUpdateOne {
	_u.mutation.ClearOrderID()
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *AuditLogEntryUpdateOne) SetOrder(v *Order) *AuditLogEntryUpdateOne {
	return _u.SetOrderID(v.ID)
}

// Mutation returns the AuditLogEntryMutation object of the builder.
func (_u *AuditLogEntryUpdateOne) Mutation() *AuditLogEntryMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *AuditLogEntryUpdateOne) ClearOrder() *AuditLogEntryUpdateOne {
	_u.mutation.ClearOrder()
	return _u
}

// Where appends a list predicates to the AuditLogEntryUpdate builder.
func (_u *AuditLogEntryUpdateOne) Where(ps ...predicate.AuditLogEntry) *AuditLogEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditLogEntryUpdateOne) Select(field string, fields ...string) *AuditLogEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditLogEntry entity.
func (_u *AuditLogEntryUpdateOne) Save(ctx context.Context) (*AuditLogEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditLogEntryUpdateOne) SaveX(ctx context.Context) *AuditLogEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditLogEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditLogEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuditLogEntryUpdateOne) sqlSave(ctx context.Context) (_node *AuditLogEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(auditlogentry.Table, auditlogentry.Columns, sqlgraph.NewFieldSpec(auditlogentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditLogEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditlogentry.FieldID)
		for _, f := range fields {
			if !auditlogentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditlogentry.FieldID {
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
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(auditlogentry.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(auditlogentry.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(auditlogentry.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(auditlogentry.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(auditlogentry.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(auditlogentry.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExtraData(); ok {
		_spec.SetField(auditlogentry.FieldExtraData, field.TypeJSON, value)
	}
	if _u.mutation.ExtraDataCleared() {
		_spec.ClearField(auditlogentry.FieldExtraData, field.TypeJSON)
	}
	if _u.mutation.OrderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AuditLogEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
