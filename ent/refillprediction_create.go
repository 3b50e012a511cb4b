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
	"github.com/arogya-labs/aushadhi/ent/refillprediction"
)

// RefillPredictionCreate is the builder for creating a RefillPrediction entity.
type RefillPredictionCreate struct {
	config
	mutation *RefillPredictionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *RefillPredictionCreate) SetUserID(v string) *RefillPredictionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMedicineName sets the "medicine_name" field.
func (_c *RefillPredictionCreate) SetMedicineName(v string) *RefillPredictionCreate {
	_c.mutation.SetMedicineName(v)
	return _c
}

// SetPredictedDepletionDate sets the "predicted_depletion_date" field.
func (_c *RefillPredictionCreate) SetPredictedDepletionDate(v time.Time) *RefillPredictionCreate {
	_c.mutation.SetPredictedDepletionDate(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *RefillPredictionCreate) SetConfidence(v float64) *RefillPredictionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *RefillPredictionCreate) SetNillableConfidence(v *float64) *RefillPredictionCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetReminderSent sets the "reminder_sent" field.
func (_c *RefillPredictionCreate) SetReminderSent(v bool) *RefillPredictionCreate {
	_c.mutation.SetReminderSent(v)
	return _c
}

// SetNillableReminderSent sets the "reminder_sent" field if the given value is not nil.
func (_c *RefillPredictionCreate) SetNillableReminderSent(v *bool) *RefillPredictionCreate {
	if v != nil {
		_c.SetReminderSent(*v)
	}
	return _c
}

// SetRefillConfirmed sets the "refill_confirmed" field.
func (_c *RefillPredictionCreate) SetRefillConfirmed(v bool) *RefillPredictionCreate {
	_c.mutation.SetRefillConfirmed(v)
	return _c
}

// SetNillableRefillConfirmed sets the "refill_confirmed" field if the given value is not nil.
func (_c *RefillPredictionCreate) SetNillableRefillConfirmed(v *bool) *RefillPredictionCreate {
	if v != nil {
		_c.SetRefillConfirmed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RefillPredictionCreate) SetCreatedAt(v time.Time) *RefillPredictionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RefillPredictionCreate) SetNillableCreatedAt(v *time.Time) *RefillPredictionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RefillPredictionCreate) SetUpdatedAt(v time.Time) *RefillPredictionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RefillPredictionCreate) SetNillableUpdatedAt(v *time.Time) *RefillPredictionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the RefillPredictionMutation object of the builder.
func (_c *RefillPredictionCreate) Mutation() *RefillPredictionMutation {
	return _c.mutation
}

// Save creates the RefillPrediction in the database.
func (_c *RefillPredictionCreate) Save(ctx context.Context) (*RefillPrediction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RefillPredictionCreate) SaveX(ctx context.Context) *RefillPrediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RefillPredictionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RefillPredictionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RefillPredictionCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := refillprediction.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.ReminderSent(); !ok {
		v := refillprediction.DefaultReminderSent
		_c.mutation.SetReminderSent(v)
	}
	if _, ok := _c.mutation.RefillConfirmed(); !ok {
		v := refillprediction.DefaultRefillConfirmed
		_c.mutation.SetRefillConfirmed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := refillprediction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := refillprediction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RefillPredictionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "RefillPrediction.user_id"`)}
	}
	if _, ok := _c.mutation.MedicineName(); !ok {
		return &ValidationError{Name: "medicine_name", err: errors.New(`ent: missing required field "RefillPrediction.medicine_name"`)}
	}
	if _, ok := _c.mutation.PredictedDepletionDate(); !ok {
		return &ValidationError{Name: "predicted_depletion_date", err: errors.New(`ent: missing required field "RefillPrediction.predicted_depletion_date"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "RefillPrediction.confidence"`)}
	}
	if _, ok := _c.mutation.ReminderSent(); !ok {
		return &ValidationError{Name: "reminder_sent", err: errors.New(`ent: missing required field "RefillPrediction.reminder_sent"`)}
	}
	if _, ok := _c.mutation.RefillConfirmed(); !ok {
		return &ValidationError{Name: "refill_confirmed", err: errors.New(`ent: missing required field "RefillPrediction.refill_confirmed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RefillPrediction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RefillPrediction.updated_at"`)}
	}
	return nil
}

func (_c *RefillPredictionCreate) sqlSave(ctx context.Context) (*RefillPrediction, error) {
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

func (_c *RefillPredictionCreate) createSpec() (*RefillPrediction, *sqlgraph.CreateSpec) {
	var (
		_node = &RefillPrediction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(refillprediction.Table, sqlgraph.NewFieldSpec(refillprediction.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(refillprediction.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.MedicineName(); ok {
		_spec.SetField(refillprediction.FieldMedicineName, field.TypeString, value)
		_node.MedicineName = value
	}
	if value, ok := _c.mutation.PredictedDepletionDate(); ok {
		_spec.SetField(refillprediction.FieldPredictedDepletionDate, field.TypeTime, value)
		_node.PredictedDepletionDate = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(refillprediction.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ReminderSent(); ok {
		_spec.SetField(refillprediction.FieldReminderSent, field.TypeBool, value)
		_node.ReminderSent = value
	}
	if value, ok := _c.mutation.RefillConfirmed(); ok {
		_spec.SetField(refillprediction.FieldRefillConfirmed, field.TypeBool, value)
		_node.RefillConfirmed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(refillprediction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(refillprediction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RefillPrediction.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RefillPredictionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *RefillPredictionCreate) OnConflict(opts ...sql.ConflictOption) *RefillPredictionUpsertOne {
	_c.conflict = opts
	return &RefillPredictionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RefillPrediction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RefillPredictionCreate) OnConflictColumns(columns ...string) *RefillPredictionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RefillPredictionUpsertOne{
		create: _c,
	}
}

type (
	// RefillPredictionUpsertOne is the builder for "upsert"-ing
	//  one RefillPrediction node.
	RefillPredictionUpsertOne struct {
		create *RefillPredictionCreate
	}

	// RefillPredictionUpsert is the "OnConflict" setter.
	RefillPredictionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *RefillPredictionUpsert) SetUserID(v string) *RefillPredictionUpsert {
	u.Set(refillprediction.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *RefillPredictionUpsert) UpdateUserID() *RefillPredictionUpsert {
	u.SetExcluded(refillprediction.FieldUserID)
	return u
}

// SetMedicineName sets the "medicine_name" field.
func (u *RefillPredictionUpsert) SetMedicineName(v string) *RefillPredictionUpsert {
	u.Set(refillprediction.FieldMedicineName, v)
	return u
}

// UpdateMedicineName sets the "medicine_name" field to the value that was provided on create.
func (u *RefillPredictionUpsert) UpdateMedicineName() *RefillPredictionUpsert {
	u.SetExcluded(refillprediction.FieldMedicineName)
	return u
}

// SetPredictedDepletionDate sets the "predicted_depletion_date" field.
func (u *RefillPredictionUpsert) SetPredictedDepletionDate(v time.Time) *RefillPredictionUpsert {
	u.Set(refillprediction.FieldPredictedDepletionDate, v)
	return u
}

// UpdatePredictedDepletionDate sets the "predicted_depletion_date" field to the value that was provided on create.
func (u *RefillPredictionUpsert) UpdatePredictedDepletionDate() *RefillPredictionUpsert {
	u.SetExcluded(refillprediction.FieldPredictedDepletionDate)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *RefillPredictionUpsert) SetConfidence(v float64) *RefillPredictionUpsert {
	u.Set(refillprediction.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *RefillPredictionUpsert) UpdateConfidence() *RefillPredictionUpsert {
	u.SetExcluded(refillprediction.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *RefillPredictionUpsert) AddConfidence(v float64) *RefillPredictionUpsert {
	u.Add(refillprediction.FieldConfidence, v)
	return u
}

// SetReminderSent sets the "reminder_sent" field.
func (u *RefillPredictionUpsert) SetReminderSent(v bool) *RefillPredictionUpsert {
	u.Set(refillprediction.FieldReminderSent, v)
	return u
}

// UpdateReminderSent sets the "reminder_sent" field to the value that was provided on create.
func (u *RefillPredictionUpsert) UpdateReminderSent() *RefillPredictionUpsert {
	u.SetExcluded(refillprediction.FieldReminderSent)
	return u
}

// SetRefillConfirmed sets the "refill_confirmed" field.
func (u *RefillPredictionUpsert) SetRefillConfirmed(v bool) *RefillPredictionUpsert {
	u.Set(refillprediction.FieldRefillConfirmed, v)
	return u
}

// UpdateRefillConfirmed sets the "refill_confirmed" field to the value that was provided on create.
func (u *RefillPredictionUpsert) UpdateRefillConfirmed() *RefillPredictionUpsert {
	u.SetExcluded(refillprediction.FieldRefillConfirmed)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RefillPredictionUpsert) SetUpdatedAt(v time.Time) *RefillPredictionUpsert {
	u.Set(refillprediction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RefillPredictionUpsert) UpdateUpdatedAt() *RefillPredictionUpsert {
	u.SetExcluded(refillprediction.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.RefillPrediction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RefillPredictionUpsertOne) UpdateNewValues() *RefillPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(refillprediction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RefillPrediction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RefillPredictionUpsertOne) Ignore() *RefillPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RefillPredictionUpsertOne) DoNothing() *RefillPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RefillPredictionCreate.OnConflict
// documentation for more info.
func (u *RefillPredictionUpsertOne) Update(set func(*RefillPredictionUpsert)) *RefillPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RefillPredictionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *RefillPredictionUpsertOne) SetUserID(v string) *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *RefillPredictionUpsertOne) UpdateUserID() *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.UpdateUserID()
	})
}

// SetMedicineName sets the "medicine_name" field.
func (u *RefillPredictionUpsertOne) SetMedicineName(v string) *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.SetMedicineName(v)
	})
}

// UpdateMedicineName sets the "medicine_name" field to the value that was provided on create.
func (u *RefillPredictionUpsertOne) UpdateMedicineName() *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.UpdateMedicineName()
	})
}

// SetPredictedDepletionDate sets the "predicted_depletion_date" field.
func (u *RefillPredictionUpsertOne) SetPredictedDepletionDate(v time.Time) *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.SetPredictedDepletionDate(v)
	})
}

// UpdatePredictedDepletionDate sets the "predicted_depletion_date" field to the value that was provided on create.
func (u *RefillPredictionUpsertOne) UpdatePredictedDepletionDate() *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.UpdatePredictedDepletionDate()
	})
}

// SetConfidence sets the "confidence" field.
func (u *RefillPredictionUpsertOne) SetConfidence(v float64) *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *RefillPredictionUpsertOne) AddConfidence(v float64) *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *RefillPredictionUpsertOne) UpdateConfidence() *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.UpdateConfidence()
	})
}

// SetReminderSent sets the "reminder_sent" field.
func (u *RefillPredictionUpsertOne) SetReminderSent(v bool) *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.SetReminderSent(v)
	})
}

// UpdateReminderSent sets the "reminder_sent" field to the value that was provided on create.
func (u *RefillPredictionUpsertOne) UpdateReminderSent() *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.UpdateReminderSent()
	})
}

// SetRefillConfirmed sets the "refill_confirmed" field.
func (u *RefillPredictionUpsertOne) SetRefillConfirmed(v bool) *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.SetRefillConfirmed(v)
	})
}

// UpdateRefillConfirmed sets the "refill_confirmed" field to the value that was provided on create.
func (u *RefillPredictionUpsertOne) UpdateRefillConfirmed() *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.UpdateRefillConfirmed()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RefillPredictionUpsertOne) SetUpdatedAt(v time.Time) *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RefillPredictionUpsertOne) UpdateUpdatedAt() *RefillPredictionUpsertOne {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RefillPredictionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RefillPredictionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RefillPredictionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RefillPredictionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RefillPredictionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RefillPredictionCreateBulk is the builder for creating many RefillPrediction entities in bulk.
type RefillPredictionCreateBulk struct {
	config
	err      error
	builders []*RefillPredictionCreate
	conflict []sql.ConflictOption
}

// Save creates the RefillPrediction entities in the database.
func (_c *RefillPredictionCreateBulk) Save(ctx context.Context) ([]*RefillPrediction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RefillPrediction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RefillPredictionMutation)
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
func (_c *RefillPredictionCreateBulk) SaveX(ctx context.Context) []*RefillPrediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RefillPredictionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RefillPredictionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RefillPrediction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RefillPredictionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *RefillPredictionCreateBulk) OnConflict(opts ...sql.ConflictOption) *RefillPredictionUpsertBulk {
	_c.conflict = opts
	return &RefillPredictionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RefillPrediction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RefillPredictionCreateBulk) OnConflictColumns(columns ...string) *RefillPredictionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RefillPredictionUpsertBulk{
		create: _c,
	}
}

// RefillPredictionUpsertBulk is the builder for "upsert"-ing
// a bulk of RefillPrediction nodes.
type RefillPredictionUpsertBulk struct {
	create *RefillPredictionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RefillPrediction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RefillPredictionUpsertBulk) UpdateNewValues() *RefillPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(refillprediction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RefillPrediction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RefillPredictionUpsertBulk) Ignore() *RefillPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RefillPredictionUpsertBulk) DoNothing() *RefillPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RefillPredictionCreateBulk.OnConflict
// documentation for more info.
func (u *RefillPredictionUpsertBulk) Update(set func(*RefillPredictionUpsert)) *RefillPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RefillPredictionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *RefillPredictionUpsertBulk) SetUserID(v string) *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *RefillPredictionUpsertBulk) UpdateUserID() *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.UpdateUserID()
	})
}

// SetMedicineName sets the "medicine_name" field.
func (u *RefillPredictionUpsertBulk) SetMedicineName(v string) *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.SetMedicineName(v)
	})
}

// UpdateMedicineName sets the "medicine_name" field to the value that was provided on create.
func (u *RefillPredictionUpsertBulk) UpdateMedicineName() *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.UpdateMedicineName()
	})
}

// SetPredictedDepletionDate sets the "predicted_depletion_date" field.
func (u *RefillPredictionUpsertBulk) SetPredictedDepletionDate(v time.Time) *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.SetPredictedDepletionDate(v)
	})
}

// UpdatePredictedDepletionDate sets the "predicted_depletion_date" field to the value that was provided on create.
func (u *RefillPredictionUpsertBulk) UpdatePredictedDepletionDate() *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.UpdatePredictedDepletionDate()
	})
}

// SetConfidence sets the "confidence" field.
func (u *RefillPredictionUpsertBulk) SetConfidence(v float64) *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *RefillPredictionUpsertBulk) AddConfidence(v float64) *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *RefillPredictionUpsertBulk) UpdateConfidence() *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.UpdateConfidence()
	})
}

// SetReminderSent sets the "reminder_sent" field.
func (u *RefillPredictionUpsertBulk) SetReminderSent(v bool) *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.SetReminderSent(v)
	})
}

// UpdateReminderSent sets the "reminder_sent" field to the value that was provided on create.
func (u *RefillPredictionUpsertBulk) UpdateReminderSent() *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.UpdateReminderSent()
	})
}

// SetRefillConfirmed sets the "refill_confirmed" field.
func (u *RefillPredictionUpsertBulk) SetRefillConfirmed(v bool) *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.SetRefillConfirmed(v)
	})
}

// UpdateRefillConfirmed sets the "refill_confirmed" field to the value that was provided on create.
func (u *RefillPredictionUpsertBulk) UpdateRefillConfirmed() *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.UpdateRefillConfirmed()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RefillPredictionUpsertBulk) SetUpdatedAt(v time.Time) *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RefillPredictionUpsertBulk) UpdateUpdatedAt() *RefillPredictionUpsertBulk {
	return u.Update(func(s *RefillPredictionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RefillPredictionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RefillPredictionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RefillPredictionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RefillPredictionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
