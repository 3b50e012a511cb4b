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
	"github.com/arogya-labs/aushadhi/ent/patient"
)

// PatientCreate is the builder for creating a Patient entity.
type PatientCreate struct {
	config
	mutation *PatientMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPid sets the "pid" field.
func (_c *PatientCreate) SetPid(v string) *PatientCreate {
	_c.mutation.SetPid(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *PatientCreate) SetPhone(v string) *PatientCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PatientCreate) SetName(v string) *PatientCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *PatientCreate) SetNillableName(v *string) *PatientCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetAge sets the "age" field.
func (_c *PatientCreate) SetAge(v int) *PatientCreate {
	_c.mutation.SetAge(v)
	return _c
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_c *PatientCreate) SetNillableAge(v *int) *PatientCreate {
	if v != nil {
		_c.SetAge(*v)
	}
	return _c
}

// SetAllergies sets the "allergies" field.
func (_c *PatientCreate) SetAllergies(v []string) *PatientCreate {
	_c.mutation.SetAllergies(v)
	return _c
}

// SetConditions sets the "conditions" field.
func (_c *PatientCreate) SetConditions(v []string) *PatientCreate {
	_c.mutation.SetConditions(v)
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *PatientCreate) SetRiskScore(v int) *PatientCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_c *PatientCreate) SetNillableRiskScore(v *int) *PatientCreate {
	if v != nil {
		_c.SetRiskScore(*v)
	}
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *PatientCreate) SetRiskLevel(v patient.RiskLevel) *PatientCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *PatientCreate) SetNillableRiskLevel(v *patient.RiskLevel) *PatientCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetRiskFlags sets the "risk_flags" field.
func (_c *PatientCreate) SetRiskFlags(v []string) *PatientCreate {
	_c.mutation.SetRiskFlags(v)
	return _c
}

// SetRiskUpdatedAt sets the "risk_updated_at" field.
func (_c *PatientCreate) SetRiskUpdatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetRiskUpdatedAt(v)
	return _c
}

// SetNillableRiskUpdatedAt sets the "risk_updated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableRiskUpdatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetRiskUpdatedAt(*v)
	}
	return _c
}

// SetFlaggedForReview sets the "flagged_for_review" field.
func (_c *PatientCreate) SetFlaggedForReview(v bool) *PatientCreate {
	_c.mutation.SetFlaggedForReview(v)
	return _c
}

// SetNillableFlaggedForReview sets the "flagged_for_review" field if the given value is not nil.
func (_c *PatientCreate) SetNillableFlaggedForReview(v *bool) *PatientCreate {
	if v != nil {
		_c.SetFlaggedForReview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientCreate) SetCreatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the PatientMutation object of the builder.
func (_c *PatientCreate) Mutation() *PatientMutation {
	return _c.mutation
}

// Save creates the Patient in the database.
func (_c *PatientCreate) Save(ctx context.Context) (*Patient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientCreate) SaveX(ctx context.Context) *Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientCreate) defaults() {
	if _, ok := _c.mutation.RiskScore(); !ok {
		v := patient.DefaultRiskScore
		_c.mutation.SetRiskScore(v)
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		v := patient.DefaultRiskLevel
		_c.mutation.SetRiskLevel(v)
	}
	if _, ok := _c.mutation.FlaggedForReview(); !ok {
		v := patient.DefaultFlaggedForReview
		_c.mutation.SetFlaggedForReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientCreate) check() error {
	if _, ok := _c.mutation.Pid(); !ok {
		return &ValidationError{Name: "pid", err: errors.New(`ent: missing required field "Patient.pid"`)}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "Patient.phone"`)}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "Patient.risk_score"`)}
	}
	if v, ok := _c.mutation.RiskScore(); ok {
		if err := patient.RiskScoreValidator(v); err != nil {
			return &ValidationError{Name: "risk_score", err: fmt.Errorf(`ent: validator failed for field "Patient.risk_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "Patient.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := patient.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Patient.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FlaggedForReview(); !ok {
		return &ValidationError{Name: "flagged_for_review", err: errors.New(`ent: missing required field "Patient.flagged_for_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Patient.created_at"`)}
	}
	return nil
}

func (_c *PatientCreate) sqlSave(ctx context.Context) (*Patient, error) {
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

func (_c *PatientCreate) createSpec() (*Patient, *sqlgraph.CreateSpec) {
	var (
		_node = &Patient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patient.Table, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Pid(); ok {
		_spec.SetField(patient.FieldPid, field.TypeString, value)
		_node.Pid = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(patient.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Age(); ok {
		_spec.SetField(patient.FieldAge, field.TypeInt, value)
		_node.Age = &value
	}
	if value, ok := _c.mutation.Allergies(); ok {
		_spec.SetField(patient.FieldAllergies, field.TypeJSON, value)
		_node.Allergies = value
	}
	if value, ok := _c.mutation.Conditions(); ok {
		_spec.SetField(patient.FieldConditions, field.TypeJSON, value)
		_node.Conditions = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(patient.FieldRiskScore, field.TypeInt, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(patient.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.RiskFlags(); ok {
		_spec.SetField(patient.FieldRiskFlags, field.TypeJSON, value)
		_node.RiskFlags = value
	}
	if value, ok := _c.mutation.RiskUpdatedAt(); ok {
		_spec.SetField(patient.FieldRiskUpdatedAt, field.TypeTime, value)
		_node.RiskUpdatedAt = &value
	}
	if value, ok := _c.mutation.FlaggedForReview(); ok {
		_spec.SetField(patient.FieldFlaggedForReview, field.TypeBool, value)
		_node.FlaggedForReview = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.Create().
//		SetPid(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetPid(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreate) OnConflict(opts ...sql.ConflictOption) *PatientUpsertOne {
	_c.conflict = opts
	return &PatientUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreate) OnConflictColumns(columns ...string) *PatientUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertOne{
		create: _c,
	}
}

type (
	// PatientUpsertOne is the builder for "upsert"-ing
	//  one Patient node.
	PatientUpsertOne struct {
		create *PatientCreate
	}

	// PatientUpsert is the "OnConflict" setter.
	PatientUpsert struct {
		*sql.UpdateSet
	}
)

// SetPhone sets the "phone" field.
func (u *PatientUpsert) SetPhone(v string) *PatientUpsert {
	u.Set(patient.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PatientUpsert) UpdatePhone() *PatientUpsert {
	u.SetExcluded(patient.FieldPhone)
	return u
}

// SetName sets the "name" field.
func (u *PatientUpsert) SetName(v string) *PatientUpsert {
	u.Set(patient.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateName() *PatientUpsert {
	u.SetExcluded(patient.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *PatientUpsert) ClearName() *PatientUpsert {
	u.SetNull(patient.FieldName)
	return u
}

// SetAge sets the "age" field.
func (u *PatientUpsert) SetAge(v int) *PatientUpsert {
	u.Set(patient.FieldAge, v)
	return u
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *PatientUpsert) UpdateAge() *PatientUpsert {
	u.SetExcluded(patient.FieldAge)
	return u
}

// AddAge adds v to the "age" field.
func (u *PatientUpsert) AddAge(v int) *PatientUpsert {
	u.Add(patient.FieldAge, v)
	return u
}

// ClearAge clears the value of the "age" field.
func (u *PatientUpsert) ClearAge() *PatientUpsert {
	u.SetNull(patient.FieldAge)
	return u
}

// SetAllergies sets the "allergies" field.
func (u *PatientUpsert) SetAllergies(v []string) *PatientUpsert {
	u.Set(patient.FieldAllergies, v)
	return u
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *PatientUpsert) UpdateAllergies() *PatientUpsert {
	u.SetExcluded(patient.FieldAllergies)
	return u
}

// ClearAllergies clears the value of the "allergies" field.
func (u *PatientUpsert) ClearAllergies() *PatientUpsert {
	u.SetNull(patient.FieldAllergies)
	return u
}

// SetConditions sets the "conditions" field.
func (u *PatientUpsert) SetConditions(v []string) *PatientUpsert {
	u.Set(patient.FieldConditions, v)
	return u
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *PatientUpsert) UpdateConditions() *PatientUpsert {
	u.SetExcluded(patient.FieldConditions)
	return u
}

// ClearConditions clears the value of the "conditions" field.
func (u *PatientUpsert) ClearConditions() *PatientUpsert {
	u.SetNull(patient.FieldConditions)
	return u
}

// SetRiskScore sets the "risk_score" field.
func (u *PatientUpsert) SetRiskScore(v int) *PatientUpsert {
	u.Set(patient.FieldRiskScore, v)
	return u
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *PatientUpsert) UpdateRiskScore() *PatientUpsert {
	u.SetExcluded(patient.FieldRiskScore)
	return u
}

// AddRiskScore adds v to the "risk_score" field.
func (u *PatientUpsert) AddRiskScore(v int) *PatientUpsert {
	u.Add(patient.FieldRiskScore, v)
	return u
}

// SetRiskLevel sets the "risk_level" field.
func (u *PatientUpsert) SetRiskLevel(v patient.RiskLevel) *PatientUpsert {
	u.Set(patient.FieldRiskLevel, v)
	return u
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *PatientUpsert) UpdateRiskLevel() *PatientUpsert {
	u.SetExcluded(patient.FieldRiskLevel)
	return u
}

// SetRiskFlags sets the "risk_flags" field.
func (u *PatientUpsert) SetRiskFlags(v []string) *PatientUpsert {
	u.Set(patient.FieldRiskFlags, v)
	return u
}

// UpdateRiskFlags sets the "risk_flags" field to the value that was provided on create.
func (u *PatientUpsert) UpdateRiskFlags() *PatientUpsert {
	u.SetExcluded(patient.FieldRiskFlags)
	return u
}

// ClearRiskFlags clears the value of the "risk_flags" field.
func (u *PatientUpsert) ClearRiskFlags() *PatientUpsert {
	u.SetNull(patient.FieldRiskFlags)
	return u
}

// SetRiskUpdatedAt sets the "risk_updated_at" field.
func (u *PatientUpsert) SetRiskUpdatedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldRiskUpdatedAt, v)
	return u
}

// UpdateRiskUpdatedAt sets the "risk_updated_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateRiskUpdatedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldRiskUpdatedAt)
	return u
}

// ClearRiskUpdatedAt clears the value of the "risk_updated_at" field.
func (u *PatientUpsert) ClearRiskUpdatedAt() *PatientUpsert {
	u.SetNull(patient.FieldRiskUpdatedAt)
	return u
}

// SetFlaggedForReview sets the "flagged_for_review" field.
func (u *PatientUpsert) SetFlaggedForReview(v bool) *PatientUpsert {
	u.Set(patient.FieldFlaggedForReview, v)
	return u
}

// UpdateFlaggedForReview sets the "flagged_for_review" field to the value that was provided on create.
func (u *PatientUpsert) UpdateFlaggedForReview() *PatientUpsert {
	u.SetExcluded(patient.FieldFlaggedForReview)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PatientUpsertOne) UpdateNewValues() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Pid(); exists {
			s.SetIgnore(patient.FieldPid)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patient.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientUpsertOne) Ignore() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertOne) DoNothing() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreate.OnConflict
// documentation for more info.
func (u *PatientUpsertOne) Update(set func(*PatientUpsert)) *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhone sets the "phone" field.
func (u *PatientUpsertOne) SetPhone(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdatePhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePhone()
	})
}

// SetName sets the "name" field.
func (u *PatientUpsertOne) SetName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *PatientUpsertOne) ClearName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearName()
	})
}

// SetAge sets the "age" field.
func (u *PatientUpsertOne) SetAge(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetAge(v)
	})
}

// AddAge adds v to the "age" field.
func (u *PatientUpsertOne) AddAge(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.AddAge(v)
	})
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateAge() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAge()
	})
}

// ClearAge clears the value of the "age" field.
func (u *PatientUpsertOne) ClearAge() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAge()
	})
}

// SetAllergies sets the "allergies" field.
func (u *PatientUpsertOne) SetAllergies(v []string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetAllergies(v)
	})
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateAllergies() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAllergies()
	})
}

// ClearAllergies clears the value of the "allergies" field.
func (u *PatientUpsertOne) ClearAllergies() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAllergies()
	})
}

// SetConditions sets the "conditions" field.
func (u *PatientUpsertOne) SetConditions(v []string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetConditions(v)
	})
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateConditions() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateConditions()
	})
}

// ClearConditions clears the value of the "conditions" field.
func (u *PatientUpsertOne) ClearConditions() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearConditions()
	})
}

// SetRiskScore sets the "risk_score" field.
func (u *PatientUpsertOne) SetRiskScore(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetRiskScore(v)
	})
}

// AddRiskScore adds v to the "risk_score" field.
func (u *PatientUpsertOne) AddRiskScore(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.AddRiskScore(v)
	})
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateRiskScore() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateRiskScore()
	})
}

// SetRiskLevel sets the "risk_level" field.
func (u *PatientUpsertOne) SetRiskLevel(v patient.RiskLevel) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetRiskLevel(v)
	})
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateRiskLevel() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateRiskLevel()
	})
}

// SetRiskFlags sets the "risk_flags" field.
func (u *PatientUpsertOne) SetRiskFlags(v []string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetRiskFlags(v)
	})
}

// UpdateRiskFlags sets the "risk_flags" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateRiskFlags() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateRiskFlags()
	})
}

// ClearRiskFlags clears the value of the "risk_flags" field.
func (u *PatientUpsertOne) ClearRiskFlags() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearRiskFlags()
	})
}

// SetRiskUpdatedAt sets the "risk_updated_at" field.
func (u *PatientUpsertOne) SetRiskUpdatedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetRiskUpdatedAt(v)
	})
}

// UpdateRiskUpdatedAt sets the "risk_updated_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateRiskUpdatedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateRiskUpdatedAt()
	})
}

// ClearRiskUpdatedAt clears the value of the "risk_updated_at" field.
func (u *PatientUpsertOne) ClearRiskUpdatedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearRiskUpdatedAt()
	})
}

// SetFlaggedForReview sets the "flagged_for_review" field.
func (u *PatientUpsertOne) SetFlaggedForReview(v bool) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetFlaggedForReview(v)
	})
}

// UpdateFlaggedForReview sets the "flagged_for_review" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateFlaggedForReview() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFlaggedForReview()
	})
}

// Exec executes the query.
func (u *PatientUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PatientCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientCreateBulk is the builder for creating many Patient entities in bulk.
type PatientCreateBulk struct {
	config
	err      error
	builders []*PatientCreate
	conflict []sql.ConflictOption
}

// Save creates the Patient entities in the database.
func (_c *PatientCreateBulk) Save(ctx context.Context) ([]*Patient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMutation)
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
func (_c *PatientCreateBulk) SaveX(ctx context.Context) []*Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetPid(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientUpsertBulk {
	_c.conflict = opts
	return &PatientUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflictColumns(columns ...string) *PatientUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertBulk{
		create: _c,
	}
}

// PatientUpsertBulk is the builder for "upsert"-ing
// a bulk of Patient nodes.
type PatientUpsertBulk struct {
	create *PatientCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PatientUpsertBulk) UpdateNewValues() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Pid(); exists {
				s.SetIgnore(patient.FieldPid)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patient.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientUpsertBulk) Ignore() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertBulk) DoNothing() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreateBulk.OnConflict
// documentation for more info.
func (u *PatientUpsertBulk) Update(set func(*PatientUpsert)) *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhone sets the "phone" field.
func (u *PatientUpsertBulk) SetPhone(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdatePhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePhone()
	})
}

// SetName sets the "name" field.
func (u *PatientUpsertBulk) SetName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *PatientUpsertBulk) ClearName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearName()
	})
}

// SetAge sets the "age" field.
func (u *PatientUpsertBulk) SetAge(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetAge(v)
	})
}

// AddAge adds v to the "age" field.
func (u *PatientUpsertBulk) AddAge(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.AddAge(v)
	})
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateAge() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAge()
	})
}

// ClearAge clears the value of the "age" field.
func (u *PatientUpsertBulk) ClearAge() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAge()
	})
}

// SetAllergies sets the "allergies" field.
func (u *PatientUpsertBulk) SetAllergies(v []string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetAllergies(v)
	})
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateAllergies() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAllergies()
	})
}

// ClearAllergies clears the value of the "allergies" field.
func (u *PatientUpsertBulk) ClearAllergies() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAllergies()
	})
}

// SetConditions sets the "conditions" field.
func (u *PatientUpsertBulk) SetConditions(v []string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetConditions(v)
	})
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateConditions() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateConditions()
	})
}

// ClearConditions clears the value of the "conditions" field.
func (u *PatientUpsertBulk) ClearConditions() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearConditions()
	})
}

// SetRiskScore sets the "risk_score" field.
func (u *PatientUpsertBulk) SetRiskScore(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetRiskScore(v)
	})
}

// AddRiskScore adds v to the "risk_score" field.
func (u *PatientUpsertBulk) AddRiskScore(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.AddRiskScore(v)
	})
}

// UpdateRiskScore sets the "risk_score" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateRiskScore() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateRiskScore()
	})
}

// SetRiskLevel sets the "risk_level" field.
func (u *PatientUpsertBulk) SetRiskLevel(v patient.RiskLevel) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetRiskLevel(v)
	})
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateRiskLevel() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateRiskLevel()
	})
}

// SetRiskFlags sets the "risk_flags" field.
func (u *PatientUpsertBulk) SetRiskFlags(v []string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetRiskFlags(v)
	})
}

// UpdateRiskFlags sets the "risk_flags" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateRiskFlags() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateRiskFlags()
	})
}

// ClearRiskFlags clears the value of the "risk_flags" field.
func (u *PatientUpsertBulk) ClearRiskFlags() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearRiskFlags()
	})
}

// SetRiskUpdatedAt sets the "risk_updated_at" field.
func (u *PatientUpsertBulk) SetRiskUpdatedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetRiskUpdatedAt(v)
	})
}

// UpdateRiskUpdatedAt sets the "risk_updated_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateRiskUpdatedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateRiskUpdatedAt()
	})
}

// ClearRiskUpdatedAt clears the value of the "risk_updated_at" field.
func (u *PatientUpsertBulk) ClearRiskUpdatedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearRiskUpdatedAt()
	})
}

// SetFlaggedForReview sets the "flagged_for_review" field.
func (u *PatientUpsertBulk) SetFlaggedForReview(v bool) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetFlaggedForReview(v)
	})
}

// UpdateFlaggedForReview sets the "flagged_for_review" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateFlaggedForReview() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFlaggedForReview()
	})
}

// Exec executes the query.
func (u *PatientUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PatientCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PatientCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
