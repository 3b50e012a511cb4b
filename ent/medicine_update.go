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
	"github.com/arogya-labs/aushadhi/ent/medicine"
	"github.com/arogya-labs/aushadhi/ent/predicate"
)

// MedicineUpdate is the builder for updating Medicine entities.
type MedicineUpdate struct {
	config
	hooks    []Hook
	mutation *MedicineMutation
}

// Where appends a list predicates to the MedicineUpdate builder.
func (_u *MedicineUpdate) Where(ps ...predicate.Medicine) *MedicineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *MedicineUpdate) SetName(v string) *MedicineUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MedicineUpdate) SetNillableName(v *string) *MedicineUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *MedicineUpdate) SetCategory(v string) *MedicineUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MedicineUpdate) SetNillableCategory(v *string) *MedicineUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *MedicineUpdate) SetPrice(v float64) *MedicineUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *MedicineUpdate) SetNillablePrice(v *float64) *MedicineUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *MedicineUpdate) AddPrice(v float64) *MedicineUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetStock sets the "stock" field.
func (_u *MedicineUpdate) SetStock(v int) *MedicineUpdate {
	_u.mutation.ResetStock()
	_u.mutation.SetStock(v)
	return _u
}

// SetNillableStock sets the "stock" field if the given value is not nil.
func (_u *MedicineUpdate) SetNillableStock(v *int) *MedicineUpdate {
	if v != nil {
		_u.SetStock(*v)
	}
	return _u
}

// AddStock adds value to the "stock" field.
func (_u *MedicineUpdate) AddStock(v int) *MedicineUpdate {
	_u.mutation.AddStock(v)
	return _u
}

// SetRequiresPrescription sets the "requires_prescription" field.
func (_u *MedicineUpdate) SetRequiresPrescription(v bool) *MedicineUpdate {
	_u.mutation.SetRequiresPrescription(v)
	return _u
}

// SetNillableRequiresPrescription sets the "requires_prescription" field if the given value is not nil.
func (_u *MedicineUpdate) SetNillableRequiresPrescription(v *bool) *MedicineUpdate {
	if v != nil {
		_u.SetRequiresPrescription(*v)
	}
	return _u
}

// SetActiveIngredients sets the "active_ingredients" field.
func (_u *MedicineUpdate) SetActiveIngredients(v []string) *MedicineUpdate {
	_u.mutation.SetActiveIngredients(v)
	return _u
}

// AppendActiveIngredients appends value to the "active_ingredients" field.
func (_u *MedicineUpdate) AppendActiveIngredients(v []string) *MedicineUpdate {
	_u.mutation.AppendActiveIngredients(v)
	return _u
}

// ClearActiveIngredients clears the value of the "active_ingredients" field.
func (_u *MedicineUpdate) ClearActiveIngredients() *MedicineUpdate {
	_u.mutation.ClearActiveIngredients()
	return _u
}

// SetGenericEquivalent sets the "generic_equivalent" field.
func (_u *MedicineUpdate) SetGenericEquivalent(v string) *MedicineUpdate {
	_u.mutation.SetGenericEquivalent(v)
	return _u
}

// SetNillableGenericEquivalent sets the "generic_equivalent" field if the given value is not nil.
func (_u *MedicineUpdate) SetNillableGenericEquivalent(v *string) *MedicineUpdate {
	if v != nil {
		_u.SetGenericEquivalent(*v)
	}
	return _u
}

// ClearGenericEquivalent clears the value of the "generic_equivalent" field.
func (_u *MedicineUpdate) ClearGenericEquivalent() *MedicineUpdate {
	_u.mutation.ClearGenericEquivalent()
	return _u
}

// SetContraindications sets the "contraindications" field.
func (_u *MedicineUpdate) SetContraindications(v []string) *MedicineUpdate {
	_u.mutation.SetContraindications(v)
	return _u
}

// AppendContraindications appends value to the "contraindications" field.
func (_u *MedicineUpdate) AppendContraindications(v []string) *MedicineUpdate {
	_u.mutation.AppendContraindications(v)
	return _u
}

// ClearContraindications clears the value of the "contraindications" field.
func (_u *MedicineUpdate) ClearContraindications() *MedicineUpdate {
	_u.mutation.ClearContraindications()
	return _u
}

// SetStrength sets the "strength" field.
func (_u *MedicineUpdate) SetStrength(v string) *MedicineUpdate {
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *MedicineUpdate) SetNillableStrength(v *string) *MedicineUpdate {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// ClearStrength clears the value of the "strength" field.
func (_u *MedicineUpdate) ClearStrength() *MedicineUpdate {
	_u.mutation.ClearStrength()
	return _u
}

// SetDosageForm sets the "dosage_form" field.
func (_u *MedicineUpdate) SetDosageForm(v string) *MedicineUpdate {
	_u.mutation.SetDosageForm(v)
	return _u
}

// SetNillableDosageForm sets the "dosage_form" field if the given value is not nil.
func (_u *MedicineUpdate) SetNillableDosageForm(v *string) *MedicineUpdate {
	if v != nil {
		_u.SetDosageForm(*v)
	}
	return _u
}

// ClearDosageForm clears the value of the "dosage_form" field.
func (_u *MedicineUpdate) ClearDosageForm() *MedicineUpdate {
	_u.mutation.ClearDosageForm()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicineUpdate) SetUpdatedAt(v time.Time) *MedicineUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MedicineMutation object of the builder.
func (_u *MedicineUpdate) Mutation() *MedicineMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicineUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicineUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medicine.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicineUpdate) check() error {
	if v, ok := _u.mutation.Stock(); ok {
		if err := medicine.StockValidator(v); err != nil {
			return &ValidationError{Name: "stock", err: fmt.Errorf(`ent: validator failed for field "Medicine.stock": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicine.Table, medicine.Columns, sqlgraph.NewFieldSpec(medicine.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(medicine.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(medicine.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(medicine.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(medicine.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Stock(); ok {
		_spec.SetField(medicine.FieldStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStock(); ok {
		_spec.AddField(medicine.FieldStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequiresPrescription(); ok {
		_spec.SetField(medicine.FieldRequiresPrescription, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ActiveIngredients(); ok {
		_spec.SetField(medicine.FieldActiveIngredients, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActiveIngredients(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, medicine.FieldActiveIngredients, value)
		})
	}
	if _u.mutation.ActiveIngredientsCleared() {
		_spec.ClearField(medicine.FieldActiveIngredients, field.TypeJSON)
	}
	if value, ok := _u.mutation.GenericEquivalent(); ok {
		_spec.SetField(medicine.FieldGenericEquivalent, field.TypeString, value)
	}
	if _u.mutation.GenericEquivalentCleared() {
		_spec.ClearField(medicine.FieldGenericEquivalent, field.TypeString)
	}
	if value, ok := _u.mutation.Contraindications(); ok {
		_spec.SetField(medicine.FieldContraindications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContraindications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, medicine.FieldContraindications, value)
		})
	}
	if _u.mutation.ContraindicationsCleared() {
		_spec.ClearField(medicine.FieldContraindications, field.TypeJSON)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(medicine.FieldStrength, field.TypeString, value)
	}
	if _u.mutation.StrengthCleared() {
		_spec.ClearField(medicine.FieldStrength, field.TypeString)
	}
	if value, ok := _u.mutation.DosageForm(); ok {
		_spec.SetField(medicine.FieldDosageForm, field.TypeString, value)
	}
	if _u.mutation.DosageFormCleared() {
		_spec.ClearField(medicine.FieldDosageForm, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(medicine.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicine.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicineUpdateOne is the builder for updating a single Medicine entity.
type MedicineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicineMutation
}

// SetName sets the "name" field.
func (_u *MedicineUpdateOne) SetName(v string) *MedicineUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MedicineUpdateOne) SetNillableName(v *string) *MedicineUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *MedicineUpdateOne) SetCategory(v string) *MedicineUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MedicineUpdateOne) SetNillableCategory(v *string) *MedicineUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *MedicineUpdateOne) SetPrice(v float64) *MedicineUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *MedicineUpdateOne) SetNillablePrice(v *float64) *MedicineUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *MedicineUpdateOne) AddPrice(v float64) *MedicineUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetStock sets the "stock" field.
func (_u *MedicineUpdateOne) SetStock(v int) *MedicineUpdateOne {
	_u.mutation.ResetStock()
	_u.mutation.SetStock(v)
	return _u
}

// SetNillableStock sets the "stock" field if the given value is not nil.
func (_u *MedicineUpdateOne) SetNillableStock(v *int) *MedicineUpdateOne {
	if v != nil {
		_u.SetStock(*v)
	}
	return _u
}

// AddStock adds value to the "stock" field.
func (_u *MedicineUpdateOne) AddStock(v int) *MedicineUpdateOne {
	_u.mutation.AddStock(v)
	return _u
}

// SetRequiresPrescription sets the "requires_prescription" field.
func (_u *MedicineUpdateOne) SetRequiresPrescription(v bool) *MedicineUpdateOne {
	_u.mutation.SetRequiresPrescription(v)
	return _u
}

// SetNillableRequiresPrescription sets the "requires_prescription" field if the given value is not nil.
func (_u *MedicineUpdateOne) SetNillableRequiresPrescription(v *bool) *MedicineUpdateOne {
	if v != nil {
		_u.SetRequiresPrescription(*v)
	}
	return _u
}

// SetActiveIngredients sets the "active_ingredients" field.
func (_u *MedicineUpdateOne) SetActiveIngredients(v []string) *MedicineUpdateOne {
	_u.mutation.SetActiveIngredients(v)
	return _u
}

// AppendActiveIngredients appends value to the "active_ingredients" field.
func (_u *MedicineUpdateOne) AppendActiveIngredients(v []string) *MedicineUpdateOne {
	_u.mutation.AppendActiveIngredients(v)
	return _u
}

// ClearActiveIngredients clears the value of the "active_ingredients" field.
func (_u *MedicineUpdateOne) ClearActiveIngredients() *MedicineUpdateOne {
	_u.mutation.ClearActiveIngredients()
	return _u
}

// SetGenericEquivalent sets the "generic_equivalent" field.
func (_u *MedicineUpdateOne) SetGenericEquivalent(v string) *MedicineUpdateOne {
	_u.mutation.SetGenericEquivalent(v)
	return _u
}

// SetNillableGenericEquivalent sets the "generic_equivalent" field if the given value is not nil.
func (_u *MedicineUpdateOne) SetNillableGenericEquivalent(v *string) *MedicineUpdateOne {
	if v != nil {
		_u.SetGenericEquivalent(*v)
	}
	return _u
}

// ClearGenericEquivalent clears the value of the "generic_equivalent" field.
func (_u *MedicineUpdateOne) ClearGenericEquivalent() *MedicineUpdateOne {
	_u.mutation.ClearGenericEquivalent()
	return _u
}

// SetContraindications sets the "contraindications" field.
func (_u *MedicineUpdateOne) SetContraindications(v []string) *MedicineUpdateOne {
	_u.mutation.SetContraindications(v)
	return _u
}

// AppendContraindications appends value to the "contraindications" field.
func (_u *MedicineUpdateOne) AppendContraindications(v []string) *MedicineUpdateOne {
	_u.mutation.AppendContraindications(v)
	return _u
}

// ClearContraindications clears the value of the "contraindications" field.
func (_u *MedicineUpdateOne) ClearContraindications() *MedicineUpdateOne {
	_u.mutation.ClearContraindications()
	return _u
}

// SetStrength sets the "strength" field.
func (_u *MedicineUpdateOne) SetStrength(v string) *MedicineUpdateOne {
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *MedicineUpdateOne) SetNillableStrength(v *string) *MedicineUpdateOne {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// ClearStrength clears the value of the "strength" field.
func (_u *MedicineUpdateOne) ClearStrength() *MedicineUpdateOne {
	_u.mutation.ClearStrength()
	return _u
}

// SetDosageForm sets the "dosage_form" field.
func (_u *MedicineUpdateOne) SetDosageForm(v string) *MedicineUpdateOne {
	_u.mutation.SetDosageForm(v)
	return _u
}

// SetNillableDosageForm sets the "dosage_form" field if the given value is not nil.
func (_u *MedicineUpdateOne) SetNillableDosageForm(v *string) *MedicineUpdateOne {
	if v != nil {
		_u.SetDosageForm(*v)
	}
	return _u
}

// ClearDosageForm clears the value of the "dosage_form" field.
func (_u *MedicineUpdateOne) ClearDosageForm() *MedicineUpdateOne {
	_u.mutation.ClearDosageForm()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicineUpdateOne) SetUpdatedAt(v time.Time) *MedicineUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MedicineMutation object of the builder.
func (_u *MedicineUpdateOne) Mutation() *MedicineMutation {
	return _u.mutation
}

// Where appends a list predicates to the MedicineUpdate builder.
func (_u *MedicineUpdateOne) Where(ps ...predicate.Medicine) *MedicineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicineUpdateOne) Select(field string, fields ...string) *MedicineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Medicine entity.
func (_u *MedicineUpdateOne) Save(ctx context.Context) (*Medicine, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicineUpdateOne) SaveX(ctx context.Context) *Medicine {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicineUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medicine.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicineUpdateOne) check() error {
	if v, ok := _u.mutation.Stock(); ok {
		if err := medicine.StockValidator(v); err != nil {
			return &ValidationError{Name: "stock", err: fmt.Errorf(`ent: validator failed for field "Medicine.stock": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicineUpdateOne) sqlSave(ctx context.Context) (_node *Medicine, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicine.Table, medicine.Columns, sqlgraph.NewFieldSpec(medicine.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Medicine.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medicine.FieldID)
		for _, f := range fields {
			if !medicine.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != medicine.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(medicine.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(medicine.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(medicine.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(medicine.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Stock(); ok {
		_spec.SetField(medicine.FieldStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStock(); ok {
		_spec.AddField(medicine.FieldStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequiresPrescription(); ok {
		_spec.SetField(medicine.FieldRequiresPrescription, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ActiveIngredients(); ok {
		_spec.SetField(medicine.FieldActiveIngredients, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActiveIngredients(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, medicine.FieldActiveIngredients, value)
		})
	}
	if _u.mutation.ActiveIngredientsCleared() {
		_spec.ClearField(medicine.FieldActiveIngredients, field.TypeJSON)
	}
	if value, ok := _u.mutation.GenericEquivalent(); ok {
		_spec.SetField(medicine.FieldGenericEquivalent, field.TypeString, value)
	}
	if _u.mutation.GenericEquivalentCleared() {
		_spec.ClearField(medicine.FieldGenericEquivalent, field.TypeString)
	}
	if value, ok := _u.mutation.Contraindications(); ok {
		_spec.SetField(medicine.FieldContraindications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContraindications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, medicine.FieldContraindications, value)
		})
	}
	if _u.mutation.ContraindicationsCleared() {
		_spec.ClearField(medicine.FieldContraindications, field.TypeJSON)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(medicine.FieldStrength, field.TypeString, value)
	}
	if _u.mutation.StrengthCleared() {
		_spec.ClearField(medicine.FieldStrength, field.TypeString)
	}
	if value, ok := _u.mutation.DosageForm(); ok {
		_spec.SetField(medicine.FieldDosageForm, field.TypeString, value)
	}
	if _u.mutation.DosageFormCleared() {
		_spec.ClearField(medicine.FieldDosageForm, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(medicine.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Medicine{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicine.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
