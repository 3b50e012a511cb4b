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
	"github.com/arogya-labs/aushadhi/ent/medicine"
)

// MedicineCreate is the builder for creating a Medicine entity.
type MedicineCreate struct {
	config
	mutation *MedicineMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *MedicineCreate) SetName(v string) *MedicineCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *MedicineCreate) SetCategory(v string) *MedicineCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *MedicineCreate) SetNillableCategory(v *string) *MedicineCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *MedicineCreate) SetPrice(v float64) *MedicineCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetStock sets the "stock" field.
func (_c *MedicineCreate) SetStock(v int) *MedicineCreate {
	_c.mutation.SetStock(v)
	return _c
}

// SetNillableStock sets the "stock" field if the given value is not nil.
func (_c *MedicineCreate) SetNillableStock(v *int) *MedicineCreate {
	if v != nil {
		_c.SetStock(*v)
	}
	return _c
}

// SetRequiresPrescription sets the "requires_prescription" field.
func (_c *MedicineCreate) SetRequiresPrescription(v bool) *MedicineCreate {
	_c.mutation.SetRequiresPrescription(v)
	return _c
}

// SetNillableRequiresPrescription sets the "requires_prescription" field if the given value is not nil.
func (_c *MedicineCreate) SetNillableRequiresPrescription(v *bool) *MedicineCreate {
	if v != nil {
		_c.SetRequiresPrescription(*v)
	}
	return _c
}

// SetActiveIngredients sets the "active_ingredients" field.
func (_c *MedicineCreate) SetActiveIngredients(v []string) *MedicineCreate {
	_c.mutation.SetActiveIngredients(v)
	return _c
}

// SetGenericEquivalent sets the "generic_equivalent" field.
func (_c *MedicineCreate) SetGenericEquivalent(v string) *MedicineCreate {
	_c.mutation.SetGenericEquivalent(v)
	return _c
}

// SetNillableGenericEquivalent sets the "generic_equivalent" field if the given value is not nil.
func (_c *MedicineCreate) SetNillableGenericEquivalent(v *string) *MedicineCreate {
	if v != nil {
		_c.SetGenericEquivalent(*v)
	}
	return _c
}

// SetContraindications sets the "contraindications" field.
func (_c *MedicineCreate) SetContraindications(v []string) *MedicineCreate {
	_c.mutation.SetContraindications(v)
	return _c
}

// SetStrength sets the "strength" field.
func (_c *MedicineCreate) SetStrength(v string) *MedicineCreate {
	_c.mutation.SetStrength(v)
	return _c
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_c *MedicineCreate) SetNillableStrength(v *string) *MedicineCreate {
	if v != nil {
		_c.SetStrength(*v)
	}
	return _c
}

// SetDosageForm sets the "dosage_form" field.
func (_c *MedicineCreate) SetDosageForm(v string) *MedicineCreate {
	_c.mutation.SetDosageForm(v)
	return _c
}

// SetNillableDosageForm sets the "dosage_form" field if the given value is not nil.
func (_c *MedicineCreate) SetNillableDosageForm(v *string) *MedicineCreate {
	if v != nil {
		_c.SetDosageForm(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicineCreate) SetCreatedAt(v time.Time) *MedicineCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicineCreate) SetNillableCreatedAt(v *time.Time) *MedicineCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MedicineCreate) SetUpdatedAt(v time.Time) *MedicineCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MedicineCreate) SetNillableUpdatedAt(v *time.Time) *MedicineCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the MedicineMutation object of the builder.
func (_c *MedicineCreate) Mutation() *MedicineMutation {
	return _c.mutation
}

// Save creates the Medicine in the database.
func (_c *MedicineCreate) Save(ctx context.Context) (*Medicine, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicineCreate) SaveX(ctx context.Context) *Medicine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicineCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := medicine.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Stock(); !ok {
		v := medicine.DefaultStock
		_c.mutation.SetStock(v)
	}
	if _, ok := _c.mutation.RequiresPrescription(); !ok {
		v := medicine.DefaultRequiresPrescription
		_c.mutation.SetRequiresPrescription(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medicine.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := medicine.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicineCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Medicine.name"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Medicine.category"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Medicine.price"`)}
	}
	if _, ok := _c.mutation.Stock(); !ok {
		return &ValidationError{Name: "stock", err: errors.New(`ent: missing required field "Medicine.stock"`)}
	}
	if v, ok := _c.mutation.Stock(); ok {
		if err := medicine.StockValidator(v); err != nil {
			return &ValidationError{Name: "stock", err: fmt.Errorf(`ent: validator failed for field "Medicine.stock": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequiresPrescription(); !ok {
		return &ValidationError{Name: "requires_prescription", err: errors.New(`ent: missing required field "Medicine.requires_prescription"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Medicine.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Medicine.updated_at"`)}
	}
	return nil
}

func (_c *MedicineCreate) sqlSave(ctx context.Context) (*Medicine, error) {
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

func (_c *MedicineCreate) createSpec() (*Medicine, *sqlgraph.CreateSpec) {
	var (
		_node = &Medicine{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medicine.Table, sqlgraph.NewFieldSpec(medicine.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(medicine.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(medicine.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(medicine.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Stock(); ok {
		_spec.SetField(medicine.FieldStock, field.TypeInt, value)
		_node.Stock = value
	}
	if value, ok := _c.mutation.RequiresPrescription(); ok {
		_spec.SetField(medicine.FieldRequiresPrescription, field.TypeBool, value)
		_node.RequiresPrescription = value
	}
	if value, ok := _c.mutation.ActiveIngredients(); ok {
		_spec.SetField(medicine.FieldActiveIngredients, field.TypeJSON, value)
		_node.ActiveIngredients = value
	}
	if value, ok := _c.mutation.GenericEquivalent(); ok {
		_spec.SetField(medicine.FieldGenericEquivalent, field.TypeString, value)
		_node.GenericEquivalent = value
	}
	if value, ok := _c.mutation.Contraindications(); ok {
		_spec.SetField(medicine.FieldContraindications, field.TypeJSON, value)
		_node.Contraindications = value
	}
	if value, ok := _c.mutation.Strength(); ok {
		_spec.SetField(medicine.FieldStrength, field.TypeString, value)
		_node.Strength = value
	}
	if value, ok := _c.mutation.DosageForm(); ok {
		_spec.SetField(medicine.FieldDosageForm, field.TypeString, value)
		_node.DosageForm = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medicine.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(medicine.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Medicine.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicineUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicineCreate) OnConflict(opts ...sql.ConflictOption) *MedicineUpsertOne {
	_c.conflict = opts
	return &MedicineUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Medicine.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicineCreate) OnConflictColumns(columns ...string) *MedicineUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicineUpsertOne{
		create: _c,
	}
}

type (
	// MedicineUpsertOne is the builder for "upsert"-ing
	//  one Medicine node.
	MedicineUpsertOne struct {
		create *MedicineCreate
	}

	// MedicineUpsert is the "OnConflict" setter.
	MedicineUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *MedicineUpsert) SetName(v string) *MedicineUpsert {
	u.Set(medicine.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MedicineUpsert) UpdateName() *MedicineUpsert {
	u.SetExcluded(medicine.FieldName)
	return u
}

// SetCategory sets the "category" field.
func (u *MedicineUpsert) SetCategory(v string) *MedicineUpsert {
	u.Set(medicine.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *MedicineUpsert) UpdateCategory() *MedicineUpsert {
	u.SetExcluded(medicine.FieldCategory)
	return u
}

// SetPrice sets the "price" field.
func (u *MedicineUpsert) SetPrice(v float64) *MedicineUpsert {
	u.Set(medicine.FieldPrice, v)
	return u
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *MedicineUpsert) UpdatePrice() *MedicineUpsert {
	u.SetExcluded(medicine.FieldPrice)
	return u
}

// AddPrice adds v to the "price" field.
func (u *MedicineUpsert) AddPrice(v float64) *MedicineUpsert {
	u.Add(medicine.FieldPrice, v)
	return u
}

// SetStock sets the "stock" field.
func (u *MedicineUpsert) SetStock(v int) *MedicineUpsert {
	u.Set(medicine.FieldStock, v)
	return u
}

// UpdateStock sets the "stock" field to the value that was provided on create.
func (u *MedicineUpsert) UpdateStock() *MedicineUpsert {
	u.SetExcluded(medicine.FieldStock)
	return u
}

// AddStock adds v to the "stock" field.
func (u *MedicineUpsert) AddStock(v int) *MedicineUpsert {
	u.Add(medicine.FieldStock, v)
	return u
}

// SetRequiresPrescription sets the "requires_prescription" field.
func (u *MedicineUpsert) SetRequiresPrescription(v bool) *MedicineUpsert {
	u.Set(medicine.FieldRequiresPrescription, v)
	return u
}

// UpdateRequiresPrescription sets the "requires_prescription" field to the value that was provided on create.
func (u *MedicineUpsert) UpdateRequiresPrescription() *MedicineUpsert {
	u.SetExcluded(medicine.FieldRequiresPrescription)
	return u
}

// SetActiveIngredients sets the "active_ingredients" field.
func (u *MedicineUpsert) SetActiveIngredients(v []string) *MedicineUpsert {
	u.Set(medicine.FieldActiveIngredients, v)
	return u
}

// UpdateActiveIngredients sets the "active_ingredients" field to the value that was provided on create.
func (u *MedicineUpsert) UpdateActiveIngredients() *MedicineUpsert {
	u.SetExcluded(medicine.FieldActiveIngredients)
	return u
}

// ClearActiveIngredients clears the value of the "active_ingredients" field.
func (u *MedicineUpsert) ClearActiveIngredients() *MedicineUpsert {
	u.SetNull(medicine.FieldActiveIngredients)
	return u
}

// SetGenericEquivalent sets the "generic_equivalent" field.
func (u *MedicineUpsert) SetGenericEquivalent(v string) *MedicineUpsert {
	u.Set(medicine.FieldGenericEquivalent, v)
	return u
}

// UpdateGenericEquivalent sets the "generic_equivalent" field to the value that was provided on create.
func (u *MedicineUpsert) UpdateGenericEquivalent() *MedicineUpsert {
	u.SetExcluded(medicine.FieldGenericEquivalent)
	return u
}

// ClearGenericEquivalent clears the value of the "generic_equivalent" field.
func (u *MedicineUpsert) ClearGenericEquivalent() *MedicineUpsert {
	u.SetNull(medicine.FieldGenericEquivalent)
	return u
}

// SetContraindications sets the "contraindications" field.
func (u *MedicineUpsert) SetContraindications(v []string) *MedicineUpsert {
	u.Set(medicine.FieldContraindications, v)
	return u
}

// UpdateContraindications sets the "contraindications" field to the value that was provided on create.
func (u *MedicineUpsert) UpdateContraindications() *MedicineUpsert {
	u.SetExcluded(medicine.FieldContraindications)
	return u
}

// ClearContraindications clears the value of the "contraindications" field.
func (u *MedicineUpsert) ClearContraindications() *MedicineUpsert {
	u.SetNull(medicine.FieldContraindications)
	return u
}

// SetStrength sets the "strength" field.
func (u *MedicineUpsert) SetStrength(v string) *MedicineUpsert {
	u.Set(medicine.FieldStrength, v)
	return u
}

// UpdateStrength sets the "strength" field to the value that was provided on create.
func (u *MedicineUpsert) UpdateStrength() *MedicineUpsert {
	u.SetExcluded(medicine.FieldStrength)
	return u
}

// ClearStrength clears the value of the "strength" field.
func (u *MedicineUpsert) ClearStrength() *MedicineUpsert {
	u.SetNull(medicine.FieldStrength)
	return u
}

// SetDosageForm sets the "dosage_form" field.
func (u *MedicineUpsert) SetDosageForm(v string) *MedicineUpsert {
	u.Set(medicine.FieldDosageForm, v)
	return u
}

// UpdateDosageForm sets the "dosage_form" field to the value that was provided on create.
func (u *MedicineUpsert) UpdateDosageForm() *MedicineUpsert {
	u.SetExcluded(medicine.FieldDosageForm)
	return u
}

// ClearDosageForm clears the value of the "dosage_form" field.
func (u *MedicineUpsert) ClearDosageForm() *MedicineUpsert {
	u.SetNull(medicine.FieldDosageForm)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicineUpsert) SetUpdatedAt(v time.Time) *MedicineUpsert {
	u.Set(medicine.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicineUpsert) UpdateUpdatedAt() *MedicineUpsert {
	u.SetExcluded(medicine.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Medicine.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MedicineUpsertOne) UpdateNewValues() *MedicineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(medicine.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Medicine.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MedicineUpsertOne) Ignore() *MedicineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicineUpsertOne) DoNothing() *MedicineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicineCreate.OnConflict
// documentation for more info.
func (u *MedicineUpsertOne) Update(set func(*MedicineUpsert)) *MedicineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicineUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *MedicineUpsertOne) SetName(v string) *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MedicineUpsertOne) UpdateName() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateName()
	})
}

// SetCategory sets the "category" field.
func (u *MedicineUpsertOne) SetCategory(v string) *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *MedicineUpsertOne) UpdateCategory() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateCategory()
	})
}

// SetPrice sets the "price" field.
func (u *MedicineUpsertOne) SetPrice(v float64) *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *MedicineUpsertOne) AddPrice(v float64) *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *MedicineUpsertOne) UpdatePrice() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdatePrice()
	})
}

// SetStock sets the "stock" field.
func (u *MedicineUpsertOne) SetStock(v int) *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.SetStock(v)
	})
}

// AddStock adds v to the "stock" field.
func (u *MedicineUpsertOne) AddStock(v int) *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.AddStock(v)
	})
}

// UpdateStock sets the "stock" field to the value that was provided on create.
func (u *MedicineUpsertOne) UpdateStock() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateStock()
	})
}

// SetRequiresPrescription sets the "requires_prescription" field.
func (u *MedicineUpsertOne) SetRequiresPrescription(v bool) *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.SetRequiresPrescription(v)
	})
}

// UpdateRequiresPrescription sets the "requires_prescription" field to the value that was provided on create.
func (u *MedicineUpsertOne) UpdateRequiresPrescription() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateRequiresPrescription()
	})
}

// SetActiveIngredients sets the "active_ingredients" field.
func (u *MedicineUpsertOne) SetActiveIngredients(v []string) *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.SetActiveIngredients(v)
	})
}

// UpdateActiveIngredients sets the "active_ingredients" field to the value that was provided on create.
func (u *MedicineUpsertOne) UpdateActiveIngredients() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateActiveIngredients()
	})
}

// ClearActiveIngredients clears the value of the "active_ingredients" field.
func (u *MedicineUpsertOne) ClearActiveIngredients() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.ClearActiveIngredients()
	})
}

// SetGenericEquivalent sets the "generic_equivalent" field.
func (u *MedicineUpsertOne) SetGenericEquivalent(v string) *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.SetGenericEquivalent(v)
	})
}

// UpdateGenericEquivalent sets the "generic_equivalent" field to the value that was provided on create.
func (u *MedicineUpsertOne) UpdateGenericEquivalent() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateGenericEquivalent()
	})
}

// ClearGenericEquivalent clears the value of the "generic_equivalent" field.
func (u *MedicineUpsertOne) ClearGenericEquivalent() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.ClearGenericEquivalent()
	})
}

// SetContraindications sets the "contraindications" field.
func (u *MedicineUpsertOne) SetContraindications(v []string) *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.SetContraindications(v)
	})
}

// UpdateContraindications sets the "contraindications" field to the value that was provided on create.
func (u *MedicineUpsertOne) UpdateContraindications() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateContraindications()
	})
}

// ClearContraindications clears the value of the "contraindications" field.
func (u *MedicineUpsertOne) ClearContraindications() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.ClearContraindications()
	})
}

// SetStrength sets the "strength" field.
func (u *MedicineUpsertOne) SetStrength(v string) *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.SetStrength(v)
	})
}

// UpdateStrength sets the "strength" field to the value that was provided on create.
func (u *MedicineUpsertOne) UpdateStrength() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateStrength()
	})
}

// ClearStrength clears the value of the "strength" field.
func (u *MedicineUpsertOne) ClearStrength() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.ClearStrength()
	})
}

// SetDosageForm sets the "dosage_form" field.
func (u *MedicineUpsertOne) SetDosageForm(v string) *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.SetDosageForm(v)
	})
}

// UpdateDosageForm sets the "dosage_form" field to the value that was provided on create.
func (u *MedicineUpsertOne) UpdateDosageForm() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateDosageForm()
	})
}

// ClearDosageForm clears the value of the "dosage_form" field.
func (u *MedicineUpsertOne) ClearDosageForm() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.ClearDosageForm()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicineUpsertOne) SetUpdatedAt(v time.Time) *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicineUpsertOne) UpdateUpdatedAt() *MedicineUpsertOne {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MedicineUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MedicineCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicineUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MedicineUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MedicineUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MedicineCreateBulk is the builder for creating many Medicine entities in bulk.
type MedicineCreateBulk struct {
	config
	err      error
	builders []*MedicineCreate
	conflict []sql.ConflictOption
}

// Save creates the Medicine entities in the database.
func (_c *MedicineCreateBulk) Save(ctx context.Context) ([]*Medicine, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Medicine, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicineMutation)
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
func (_c *MedicineCreateBulk) SaveX(ctx context.Context) []*Medicine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Medicine.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicineUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicineCreateBulk) OnConflict(opts ...sql.ConflictOption) *MedicineUpsertBulk {
	_c.conflict = opts
	return &MedicineUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Medicine.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicineCreateBulk) OnConflictColumns(columns ...string) *MedicineUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicineUpsertBulk{
		create: _c,
	}
}

// MedicineUpsertBulk is the builder for "upsert"-ing
// a bulk of Medicine nodes.
type MedicineUpsertBulk struct {
	create *MedicineCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Medicine.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MedicineUpsertBulk) UpdateNewValues() *MedicineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(medicine.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Medicine.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MedicineUpsertBulk) Ignore() *MedicineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicineUpsertBulk) DoNothing() *MedicineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicineCreateBulk.OnConflict
// documentation for more info.
func (u *MedicineUpsertBulk) Update(set func(*MedicineUpsert)) *MedicineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicineUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *MedicineUpsertBulk) SetName(v string) *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MedicineUpsertBulk) UpdateName() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateName()
	})
}

// SetCategory sets the "category" field.
func (u *MedicineUpsertBulk) SetCategory(v string) *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *MedicineUpsertBulk) UpdateCategory() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateCategory()
	})
}

// SetPrice sets the "price" field.
func (u *MedicineUpsertBulk) SetPrice(v float64) *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *MedicineUpsertBulk) AddPrice(v float64) *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *MedicineUpsertBulk) UpdatePrice() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdatePrice()
	})
}

// SetStock sets the "stock" field.
func (u *MedicineUpsertBulk) SetStock(v int) *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.SetStock(v)
	})
}

// AddStock adds v to the "stock" field.
func (u *MedicineUpsertBulk) AddStock(v int) *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.AddStock(v)
	})
}

// UpdateStock sets the "stock" field to the value that was provided on create.
func (u *MedicineUpsertBulk) UpdateStock() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateStock()
	})
}

// SetRequiresPrescription sets the "requires_prescription" field.
func (u *MedicineUpsertBulk) SetRequiresPrescription(v bool) *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.SetRequiresPrescription(v)
	})
}

// UpdateRequiresPrescription sets the "requires_prescription" field to the value that was provided on create.
func (u *MedicineUpsertBulk) UpdateRequiresPrescription() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateRequiresPrescription()
	})
}

// SetActiveIngredients sets the "active_ingredients" field.
func (u *MedicineUpsertBulk) SetActiveIngredients(v []string) *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.SetActiveIngredients(v)
	})
}

// UpdateActiveIngredients sets the "active_ingredients" field to the value that was provided on create.
func (u *MedicineUpsertBulk) UpdateActiveIngredients() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateActiveIngredients()
	})
}

// ClearActiveIngredients clears the value of the "active_ingredients" field.
func (u *MedicineUpsertBulk) ClearActiveIngredients() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.ClearActiveIngredients()
	})
}

// SetGenericEquivalent sets the "generic_equivalent" field.
func (u *MedicineUpsertBulk) SetGenericEquivalent(v string) *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.SetGenericEquivalent(v)
	})
}

// UpdateGenericEquivalent sets the "generic_equivalent" field to the value that was provided on create.
func (u *MedicineUpsertBulk) UpdateGenericEquivalent() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateGenericEquivalent()
	})
}

// ClearGenericEquivalent clears the value of the "generic_equivalent" field.
func (u *MedicineUpsertBulk) ClearGenericEquivalent() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.ClearGenericEquivalent()
	})
}

// SetContraindications sets the "contraindications" field.
func (u *MedicineUpsertBulk) SetContraindications(v []string) *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.SetContraindications(v)
	})
}

// UpdateContraindications sets the "contraindications" field to the value that was provided on create.
func (u *MedicineUpsertBulk) UpdateContraindications() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateContraindications()
	})
}

// ClearContraindications clears the value of the "contraindications" field.
func (u *MedicineUpsertBulk) ClearContraindications() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.ClearContraindications()
	})
}

// SetStrength sets the "strength" field.
func (u *MedicineUpsertBulk) SetStrength(v string) *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.SetStrength(v)
	})
}

// UpdateStrength sets the "strength" field to the value that was provided on create.
func (u *MedicineUpsertBulk) UpdateStrength() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateStrength()
	})
}

// ClearStrength clears the value of the "strength" field.
func (u *MedicineUpsertBulk) ClearStrength() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.ClearStrength()
	})
}

// SetDosageForm sets the "dosage_form" field.
func (u *MedicineUpsertBulk) SetDosageForm(v string) *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.SetDosageForm(v)
	})
}

// UpdateDosageForm sets the "dosage_form" field to the value that was provided on create.
func (u *MedicineUpsertBulk) UpdateDosageForm() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateDosageForm()
	})
}

// ClearDosageForm clears the value of the "dosage_form" field.
func (u *MedicineUpsertBulk) ClearDosageForm() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.ClearDosageForm()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicineUpsertBulk) SetUpdatedAt(v time.Time) *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicineUpsertBulk) UpdateUpdatedAt() *MedicineUpsertBulk {
	return u.Update(func(s *MedicineUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MedicineUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MedicineCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MedicineCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicineUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
