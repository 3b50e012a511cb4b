// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/arogya-labs/aushadhi/ent/patient"
	"github.com/arogya-labs/aushadhi/ent/predicate"
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PatientUpdate) SetPhone(v string) *PatientUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PatientUpdate) SetNillablePhone(v *string) *PatientUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PatientUpdate) SetName(v string) *PatientUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *PatientUpdate) ClearName() *PatientUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetAge sets the "age" field.
func (_u *PatientUpdate) SetAge(v int) *PatientUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableAge(v *int) *PatientUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *PatientUpdate) AddAge(v int) *PatientUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// ClearAge clears the value of the "age" field.
func (_u *PatientUpdate) ClearAge() *PatientUpdate {
	_u.mutation.ClearAge()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *PatientUpdate) SetAllergies(v []string) *PatientUpdate {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *PatientUpdate) AppendAllergies(v []string) *PatientUpdate {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *PatientUpdate) ClearAllergies() *PatientUpdate {
	_u.mutation.ClearAllergies()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *PatientUpdate) SetConditions(v []string) *PatientUpdate {
	_u.mutation.SetConditions(v)
	return _u
}

// AppendConditions appends value to the "conditions" field.
func (_u *PatientUpdate) AppendConditions(v []string) *PatientUpdate {
	_u.mutation.AppendConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *PatientUpdate) ClearConditions() *PatientUpdate {
	_u.mutation.ClearConditions()
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *PatientUpdate) SetRiskScore(v int) *PatientUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableRiskScore(v *int) *PatientUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *PatientUpdate) AddRiskScore(v int) *PatientUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *PatientUpdate) SetRiskLevel(v patient.RiskLevel) *PatientUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableRiskLevel(v *patient.RiskLevel) *PatientUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetRiskFlags sets the "risk_flags" field.
func (_u *PatientUpdate) SetRiskFlags(v []string) *PatientUpdate {
	_u.mutation.SetRiskFlags(v)
	return _u
}

// AppendRiskFlags appends value to the "risk_flags" field.
func (_u *PatientUpdate) AppendRiskFlags(v []string) *PatientUpdate {
	_u.mutation.AppendRiskFlags(v)
	return _u
}

// ClearRiskFlags clears the value of the "risk_flags" field.
func (_u *PatientUpdate) ClearRiskFlags() *PatientUpdate {
	_u.mutation.ClearRiskFlags()
	return _u
}

// SetRiskUpdatedAt sets the "risk_updated_at" field.
func (_u *PatientUpdate) SetRiskUpdatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetRiskUpdatedAt(v)
	return _u
}

// SetNillableRiskUpdatedAt sets the "risk_updated_at" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableRiskUpdatedAt(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetRiskUpdatedAt(*v)
	}
	return _u
}

// ClearRiskUpdatedAt clears the value of the "risk_updated_at" field.
func (_u *PatientUpdate) ClearRiskUpdatedAt() *PatientUpdate {
	_u.mutation.ClearRiskUpdatedAt()
	return _u
}

// SetFlaggedForReview sets the "flagged_for_review" field.
func (_u *PatientUpdate) SetFlaggedForReview(v bool) *PatientUpdate {
	_u.mutation.SetFlaggedForReview(v)
	return _u
}

// SetNillableFlaggedForReview sets the "flagged_for_review" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableFlaggedForReview(v *bool) *PatientUpdate {
	if v != nil {
		_u.SetFlaggedForReview(*v)
	}
	return _u
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdate) check() error {
	if v, ok := _u.mutation.RiskScore(); ok {
		if err := patient.RiskScoreValidator(v); err != nil {
			return &ValidationError{Name: "risk_score", err: fmt.Errorf(`ent: validator failed for field "Patient.risk_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := patient.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Patient.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(patient.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(patient.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(patient.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(patient.FieldAge, field.TypeInt, value)
	}
	if _u.mutation.AgeCleared() {
		_spec.ClearField(patient.FieldAge, field.TypeInt)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(patient.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(patient.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(patient.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldConditions, value)
		})
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(patient.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(patient.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(patient.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(patient.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RiskFlags(); ok {
		_spec.SetField(patient.FieldRiskFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRiskFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldRiskFlags, value)
		})
	}
	if _u.mutation.RiskFlagsCleared() {
		_spec.ClearField(patient.FieldRiskFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskUpdatedAt(); ok {
		_spec.SetField(patient.FieldRiskUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RiskUpdatedAtCleared() {
		_spec.ClearField(patient.FieldRiskUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FlaggedForReview(); ok {
		_spec.SetField(patient.FieldFlaggedForReview, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetPhone sets the "phone" field.
func (_u *PatientUpdateOne) SetPhone(v string) *PatientUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePhone(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PatientUpdateOne) SetName(v string) *PatientUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *PatientUpdateOne) ClearName() *PatientUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetAge sets the "age" field.
func (_u *PatientUpdateOne) SetAge(v int) *PatientUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableAge(v *int) *PatientUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *PatientUpdateOne) AddAge(v int) *PatientUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// ClearAge clears the value of the "age" field.
func (_u *PatientUpdateOne) ClearAge() *PatientUpdateOne {
	_u.mutation.ClearAge()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *PatientUpdateOne) SetAllergies(v []string) *PatientUpdateOne {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *PatientUpdateOne) AppendAllergies(v []string) *PatientUpdateOne {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *PatientUpdateOne) ClearAllergies() *PatientUpdateOne {
	_u.mutation.ClearAllergies()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *PatientUpdateOne) SetConditions(v []string) *PatientUpdateOne {
	_u.mutation.SetConditions(v)
	return _u
}

// AppendConditions appends value to the "conditions" field.
func (_u *PatientUpdateOne) AppendConditions(v []string) *PatientUpdateOne {
	_u.mutation.AppendConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *PatientUpdateOne) ClearConditions() *PatientUpdateOne {
	_u.mutation.ClearConditions()
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *PatientUpdateOne) SetRiskScore(v int) *PatientUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableRiskScore(v *int) *PatientUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *PatientUpdateOne) AddRiskScore(v int) *PatientUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *PatientUpdateOne) SetRiskLevel(v patient.RiskLevel) *PatientUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableRiskLevel(v *patient.RiskLevel) *PatientUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetRiskFlags sets the "risk_flags" field.
func (_u *PatientUpdateOne) SetRiskFlags(v []string) *PatientUpdateOne {
	_u.mutation.SetRiskFlags(v)
	return _u
}

// AppendRiskFlags appends value to the "risk_flags" field.
func (_u *PatientUpdateOne) AppendRiskFlags(v []string) *PatientUpdateOne {
	_u.mutation.AppendRiskFlags(v)
	return _u
}

// ClearRiskFlags clears the value of the "risk_flags" field.
func (_u *PatientUpdateOne) ClearRiskFlags() *PatientUpdateOne {
	_u.mutation.ClearRiskFlags()
	return _u
}

// SetRiskUpdatedAt sets the "risk_updated_at" field.
func (_u *PatientUpdateOne) SetRiskUpdatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetRiskUpdatedAt(v)
	return _u
}

// SetNillableRiskUpdatedAt sets the "risk_updated_at" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableRiskUpdatedAt(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetRiskUpdatedAt(*v)
	}
	return _u
}

// ClearRiskUpdatedAt clears the value of the "risk_updated_at" field.
func (_u *PatientUpdateOne) ClearRiskUpdatedAt() *PatientUpdateOne {
	_u.mutation.ClearRiskUpdatedAt()
	return _u
}

// SetFlaggedForReview sets the "flagged_for_review" field.
func (_u *PatientUpdateOne) SetFlaggedForReview(v bool) *PatientUpdateOne {
	_u.mutation.SetFlaggedForReview(v)
	return _u
}

// SetNillableFlaggedForReview sets the "flagged_for_review" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableFlaggedForReview(v *bool) *PatientUpdateOne {
	if v != nil {
		_u.SetFlaggedForReview(*v)
	}
	return _u
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdateOne) check() error {
	if v, ok := _u.mutation.RiskScore(); ok {
		if err := patient.RiskScoreValidator(v); err != nil {
			return &ValidationError{Name: "risk_score", err: fmt.Errorf(`ent: validator failed for field "Patient.risk_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := patient.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Patient.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
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
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(patient.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(patient.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(patient.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(patient.FieldAge, field.TypeInt, value)
	}
	if _u.mutation.AgeCleared() {
		_spec.ClearField(patient.FieldAge, field.TypeInt)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(patient.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(patient.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(patient.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldConditions, value)
		})
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(patient.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(patient.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(patient.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(patient.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RiskFlags(); ok {
		_spec.SetField(patient.FieldRiskFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRiskFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldRiskFlags, value)
		})
	}
	if _u.mutation.RiskFlagsCleared() {
		_spec.ClearField(patient.FieldRiskFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskUpdatedAt(); ok {
		_spec.SetField(patient.FieldRiskUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RiskUpdatedAtCleared() {
		_spec.ClearField(patient.FieldRiskUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FlaggedForReview(); ok {
		_spec.SetField(patient.FieldFlaggedForReview, field.TypeBool, value)
	}
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
