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
	"github.com/arogya-labs/aushadhi/ent/predicate"
	"github.com/arogya-labs/aushadhi/ent/refillprediction"
)

// RefillPredictionUpdate is the builder for updating RefillPrediction entities.
type RefillPredictionUpdate struct {
	config
	hooks    []Hook
	mutation *RefillPredictionMutation
}

// Where appends a list predicates to the RefillPredictionUpdate builder.
func (_u *RefillPredictionUpdate) Where(ps ...predicate.RefillPrediction) *RefillPredictionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RefillPredictionUpdate) SetUserID(v string) *RefillPredictionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RefillPredictionUpdate) SetNillableUserID(v *string) *RefillPredictionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMedicineName sets the "medicine_name" field.
func (_u *RefillPredictionUpdate) SetMedicineName(v string) *RefillPredictionUpdate {
	_u.mutation.SetMedicineName(v)
	return _u
}

// SetNillableMedicineName sets the "medicine_name" field if the given value is not nil.
func (_u *RefillPredictionUpdate) SetNillableMedicineName(v *string) *RefillPredictionUpdate {
	if v != nil {
		_u.SetMedicineName(*v)
	}
	return _u
}

// SetPredictedDepletionDate sets the "predicted_depletion_date" field.
func (_u *RefillPredictionUpdate) SetPredictedDepletionDate(v time.Time) *RefillPredictionUpdate {
	_u.mutation.SetPredictedDepletionDate(v)
	return _u
}

// SetNillablePredictedDepletionDate sets the "predicted_depletion_date" field if the given value is not nil.
func (_u *RefillPredictionUpdate) SetNillablePredictedDepletionDate(v *time.Time) *RefillPredictionUpdate {
	if v != nil {
		_u.SetPredictedDepletionDate(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RefillPredictionUpdate) SetConfidence(v float64) *RefillPredictionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RefillPredictionUpdate) SetNillableConfidence(v *float64) *RefillPredictionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RefillPredictionUpdate) AddConfidence(v float64) *RefillPredictionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReminderSent sets the "reminder_sent" field.
func (_u *RefillPredictionUpdate) SetReminderSent(v bool) *RefillPredictionUpdate {
	_u.mutation.SetReminderSent(v)
	return _u
}

// SetNillableReminderSent sets the "reminder_sent" field if the given value is not nil.
func (_u *RefillPredictionUpdate) SetNillableReminderSent(v *bool) *RefillPredictionUpdate {
	if v != nil {
		_u.SetReminderSent(*v)
	}
	return _u
}

// SetRefillConfirmed sets the "refill_confirmed" field.
func (_u *RefillPredictionUpdate) SetRefillConfirmed(v bool) *RefillPredictionUpdate {
	_u.mutation.SetRefillConfirmed(v)
	return _u
}

// SetNillableRefillConfirmed sets the "refill_confirmed" field if the given value is not nil.
func (_u *RefillPredictionUpdate) SetNillableRefillConfirmed(v *bool) *RefillPredictionUpdate {
	if v != nil {
		_u.SetRefillConfirmed(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RefillPredictionUpdate) SetUpdatedAt(v time.Time) *RefillPredictionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RefillPredictionMutation object of the builder.
func (_u *RefillPredictionUpdate) Mutation() *RefillPredictionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RefillPredictionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RefillPredictionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RefillPredictionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RefillPredictionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RefillPredictionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := refillprediction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RefillPredictionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(refillprediction.Table, refillprediction.Columns, sqlgraph.NewFieldSpec(refillprediction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(refillprediction.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MedicineName(); ok {
		_spec.SetField(refillprediction.FieldMedicineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PredictedDepletionDate(); ok {
		_spec.SetField(refillprediction.FieldPredictedDepletionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(refillprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(refillprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReminderSent(); ok {
		_spec.SetField(refillprediction.FieldReminderSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RefillConfirmed(); ok {
		_spec.SetField(refillprediction.FieldRefillConfirmed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(refillprediction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{refillprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RefillPredictionUpdateOne is the builder for updating a single RefillPrediction entity.
type RefillPredictionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RefillPredictionMutation
}

// SetUserID sets the "user_id" field.
func (_u *RefillPredictionUpdateOne) SetUserID(v string) *RefillPredictionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RefillPredictionUpdateOne) SetNillableUserID(v *string) *RefillPredictionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMedicineName sets the "medicine_name" field.
func (_u *RefillPredictionUpdateOne) SetMedicineName(v string) *RefillPredictionUpdateOne {
	_u.mutation.SetMedicineName(v)
	return _u
}

// SetNillableMedicineName sets the "medicine_name" field if the given value is not nil.
func (_u *RefillPredictionUpdateOne) SetNillableMedicineName(v *string) *RefillPredictionUpdateOne {
	if v != nil {
		_u.SetMedicineName(*v)
	}
	return _u
}

// SetPredictedDepletionDate sets the "predicted_depletion_date" field.
func (_u *RefillPredictionUpdateOne) SetPredictedDepletionDate(v time.Time) *RefillPredictionUpdateOne {
	_u.mutation.SetPredictedDepletionDate(v)
	return _u
}

// SetNillablePredictedDepletionDate sets the "predicted_depletion_date" field if the given value is not nil.
func (_u *RefillPredictionUpdateOne) SetNillablePredictedDepletionDate(v *time.Time) *RefillPredictionUpdateOne {
	if v != nil {
		_u.SetPredictedDepletionDate(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RefillPredictionUpdateOne) SetConfidence(v float64) *RefillPredictionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RefillPredictionUpdateOne) SetNillableConfidence(v *float64) *RefillPredictionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RefillPredictionUpdateOne) AddConfidence(v float64) *RefillPredictionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReminderSent sets the "reminder_sent" field.
func (_u *RefillPredictionUpdateOne) SetReminderSent(v bool) *RefillPredictionUpdateOne {
	_u.mutation.SetReminderSent(v)
	return _u
}

// SetNillableReminderSent sets the "reminder_sent" field if the given value is not nil.
func (_u *RefillPredictionUpdateOne) SetNillableReminderSent(v *bool) *RefillPredictionUpdateOne {
	if v != nil {
		_u.SetReminderSent(*v)
	}
	return _u
}

// SetRefillConfirmed sets the "refill_confirmed" field.
func (_u *RefillPredictionUpdateOne) SetRefillConfirmed(v bool) *RefillPredictionUpdateOne {
	_u.mutation.SetRefillConfirmed(v)
	return _u
}

// SetNillableRefillConfirmed sets the "refill_confirmed" field if the given value is not nil.
func (_u *RefillPredictionUpdateOne) SetNillableRefillConfirmed(v *bool) *RefillPredictionUpdateOne {
	if v != nil {
		_u.SetRefillConfirmed(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RefillPredictionUpdateOne) SetUpdatedAt(v time.Time) *RefillPredictionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RefillPredictionMutation object of the builder.
func (_u *RefillPredictionUpdateOne) Mutation() *RefillPredictionMutation {
	return _u.mutation
}

// Where appends a list predicates to the RefillPredictionUpdate builder.
func (_u *RefillPredictionUpdateOne) Where(ps ...predicate.RefillPrediction) *RefillPredictionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RefillPredictionUpdateOne) Select(field string, fields ...string) *RefillPredictionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RefillPrediction entity.
func (_u *RefillPredictionUpdateOne) Save(ctx context.Context) (*RefillPrediction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RefillPredictionUpdateOne) SaveX(ctx context.Context) *RefillPrediction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RefillPredictionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RefillPredictionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RefillPredictionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := refillprediction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RefillPredictionUpdateOne) sqlSave(ctx context.Context) (_node *RefillPrediction, err error) {
	_spec := sqlgraph.NewUpdateSpec(refillprediction.Table, refillprediction.Columns, sqlgraph.NewFieldSpec(refillprediction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RefillPrediction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, refillprediction.FieldID)
		for _, f := range fields {
			if !refillprediction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != refillprediction.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(refillprediction.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MedicineName(); ok {
		_spec.SetField(refillprediction.FieldMedicineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PredictedDepletionDate(); ok {
		_spec.SetField(refillprediction.FieldPredictedDepletionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(refillprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(refillprediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReminderSent(); ok {
		_spec.SetField(refillprediction.FieldReminderSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RefillConfirmed(); ok {
		_spec.SetField(refillprediction.FieldRefillConfirmed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(refillprediction.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RefillPrediction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{refillprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
