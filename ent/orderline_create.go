// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arogya-labs/aushadhi/ent/medicine"
	"github.com/arogya-labs/aushadhi/ent/order"
	"github.com/arogya-labs/aushadhi/ent/orderline"
)

// OrderLineCreate is the builder for creating a OrderLine entity.
type OrderLineCreate struct {
	config
	mutation *OrderLineMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMedicineName sets the "medicine_name" field.
func (_c *OrderLineCreate) SetMedicineName(v string) *OrderLineCreate {
	_c.mutation.SetMedicineName(v)
	return _c
}

// SetDosage sets the "dosage" field.
func (_c *OrderLineCreate) SetDosage(v string) *OrderLineCreate {
	_c.mutation.SetDosage(v)
	return _c
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_c *OrderLineCreate) SetNillableDosage(v *string) *OrderLineCreate {
	if v != nil {
		_c.SetDosage(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *OrderLineCreate) SetQuantity(v int) *OrderLineCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *OrderLineCreate) SetUnitPrice(v float64) *OrderLineCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *OrderLineCreate) SetOrderID(v string) *OrderLineCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetOrder sets the "order" edge to the Order entity.
func (_c *OrderLineCreate) SetOrder(v *Order) *OrderLineCreate {
	return _c.SetOrderID(v.ID)
}

// SetMedicineID sets the "medicine" edge to the Medicine entity by ID.
func (_c *OrderLineCreate) SetMedicineID(id int) *OrderLineCreate {
	_c.mutation.SetMedicineID(id)
	return _c
}

// SetNillableMedicineID sets the "medicine" edge to the Medicine entity by ID if the given value is not nil.
func (_c *OrderLineCreate) SetNillableMedicineID(id *int) *OrderLineCreate {
	if id != nil {
		_c = _c.SetMedicineID(*id)
	}
	return _c
}

// SetMedicine sets the "medicine" edge to the Medicine entity.
func (_c *OrderLineCreate) SetMedicine(v *Medicine) *OrderLineCreate {
	return _c.SetMedicineID(v.ID)
}

// Mutation returns the OrderLineMutation object of the builder.
func (_c *OrderLineCreate) Mutation() *OrderLineMutation {
	return _c.mutation
}

// Save creates the OrderLine in the database.
func (_c *OrderLineCreate) Save(ctx context.Context) (*OrderLine, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderLineCreate) SaveX(ctx context.Context) *OrderLine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderLineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderLineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderLineCreate) check() error {
	if _, ok := _c.mutation.MedicineName(); !ok {
		return &ValidationError{Name: "medicine_name", err: errors.New(`ent: missing required field "OrderLine.medicine_name"`)}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "OrderLine.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := orderline.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "OrderLine.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`ent: missing required field "OrderLine.unit_price"`)}
	}
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`ent: missing required field "OrderLine.order_id"`)}
	}
	if len(_c.mutation.OrderIDs()) == 0 {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required edge "OrderLine.order"`)}
	}
	return nil
}

func (_c *OrderLineCreate) sqlSave(ctx context.Context) (*OrderLine, error) {
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

func (_c *OrderLineCreate) createSpec() (*OrderLine, *sqlgraph.CreateSpec) {
	var (
		_node = &OrderLine{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orderline.Table, sqlgraph.NewFieldSpec(orderline.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.MedicineName(); ok {
		_spec.SetField(orderline.FieldMedicineName, field.TypeString, value)
		_node.MedicineName = value
	}
	if value, ok := _c.mutation.Dosage(); ok {
		_spec.SetField(orderline.FieldDosage, field.TypeString, value)
		_node.Dosage = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(orderline.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(orderline.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = value
	}
	if nodes := _c.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderline.OrderTable,
			Columns: []string{orderline.OrderColumn},
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
	if nodes := _c.mutation.MedicineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   orderline.MedicineTable,
			Columns: []string{orderline.MedicineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicine.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.medicine_id = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OrderLine.Create().
//		SetMedicineName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderLineUpsert) {
//			SetMedicineName(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderLineCreate) OnConflict(opts ...sql.ConflictOption) *OrderLineUpsertOne {
	_c.conflict = opts
	return &OrderLineUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OrderLine.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderLineCreate) OnConflictColumns(columns ...string) *OrderLineUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderLineUpsertOne{
		create: _c,
	}
}

type (
	// OrderLineUpsertOne is the builder for "upsert"-ing
	//  one OrderLine node.
	OrderLineUpsertOne struct {
		create *OrderLineCreate
	}

	// OrderLineUpsert is the "OnConflict" setter.
	OrderLineUpsert struct {
		*sql.UpdateSet
	}
)

// SetMedicineName sets the "medicine_name" field.
func (u *OrderLineUpsert) SetMedicineName(v string) *OrderLineUpsert {
	u.Set(orderline.FieldMedicineName, v)
	return u
}

// UpdateMedicineName sets the "medicine_name" field to the value that was provided on create.
func (u *OrderLineUpsert) UpdateMedicineName() *OrderLineUpsert {
	u.SetExcluded(orderline.FieldMedicineName)
	return u
}

// SetDosage sets the "dosage" field.
func (u *OrderLineUpsert) SetDosage(v string) *OrderLineUpsert {
	u.Set(orderline.FieldDosage, v)
	return u
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *OrderLineUpsert) UpdateDosage() *OrderLineUpsert {
	u.SetExcluded(orderline.FieldDosage)
	return u
}

// ClearDosage clears the value of the "dosage" field.
func (u *OrderLineUpsert) ClearDosage() *OrderLineUpsert {
	u.SetNull(orderline.FieldDosage)
	return u
}

// SetQuantity sets the "quantity" field.
func (u *OrderLineUpsert) SetQuantity(v int) *OrderLineUpsert {
	u.Set(orderline.FieldQuantity, v)
	return u
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *OrderLineUpsert) UpdateQuantity() *OrderLineUpsert {
	u.SetExcluded(orderline.FieldQuantity)
	return u
}

// AddQuantity adds v to the "quantity" field.
func (u *OrderLineUpsert) AddQuantity(v int) *OrderLineUpsert {
	u.Add(orderline.FieldQuantity, v)
	return u
}

// SetUnitPrice sets the "unit_price" field.
func (u *OrderLineUpsert) SetUnitPrice(v float64) *OrderLineUpsert {
	u.Set(orderline.FieldUnitPrice, v)
	return u
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *OrderLineUpsert) UpdateUnitPrice() *OrderLineUpsert {
	u.SetExcluded(orderline.FieldUnitPrice)
	return u
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *OrderLineUpsert) AddUnitPrice(v float64) *OrderLineUpsert {
	u.Add(orderline.FieldUnitPrice, v)
	return u
}

// SetOrderID sets the "order_id" field.
func (u *OrderLineUpsert) SetOrderID(v string) *OrderLineUpsert {
	u.Set(orderline.FieldOrderID, v)
	return u
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *OrderLineUpsert) UpdateOrderID() *OrderLineUpsert {
	u.SetExcluded(orderline.FieldOrderID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.OrderLine.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OrderLineUpsertOne) UpdateNewValues() *OrderLineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OrderLine.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OrderLineUpsertOne) Ignore() *OrderLineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderLineUpsertOne) DoNothing() *OrderLineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderLineCreate.OnConflict
// documentation for more info.
func (u *OrderLineUpsertOne) Update(set func(*OrderLineUpsert)) *OrderLineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderLineUpsert{UpdateSet: update})
	}))
	return u
}

// SetMedicineName sets the "medicine_name" field.
func (u *OrderLineUpsertOne) SetMedicineName(v string) *OrderLineUpsertOne {
	return u.Update(func(s *OrderLineUpsert) {
		s.SetMedicineName(v)
	})
}

// UpdateMedicineName sets the "medicine_name" field to the value that was provided on create.
func (u *OrderLineUpsertOne) UpdateMedicineName() *OrderLineUpsertOne {
	return u.Update(func(s *OrderLineUpsert) {
		s.UpdateMedicineName()
	})
}

// SetDosage sets the "dosage" field.
func (u *OrderLineUpsertOne) SetDosage(v string) *OrderLineUpsertOne {
	return u.Update(func(s *OrderLineUpsert) {
		s.SetDosage(v)
	})
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *OrderLineUpsertOne) UpdateDosage() *OrderLineUpsertOne {
	return u.Update(func(s *OrderLineUpsert) {
		s.UpdateDosage()
	})
}

// ClearDosage clears the value of the "dosage" field.
func (u *OrderLineUpsertOne) ClearDosage() *OrderLineUpsertOne {
	return u.Update(func(s *OrderLineUpsert) {
		s.ClearDosage()
	})
}

// SetQuantity sets the "quantity" field.
func (u *OrderLineUpsertOne) SetQuantity(v int) *OrderLineUpsertOne {
	return u.Update(func(s *OrderLineUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *OrderLineUpsertOne) AddQuantity(v int) *OrderLineUpsertOne {
	return u.Update(func(s *OrderLineUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *OrderLineUpsertOne) UpdateQuantity() *OrderLineUpsertOne {
	return u.Update(func(s *OrderLineUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *OrderLineUpsertOne) SetUnitPrice(v float64) *OrderLineUpsertOne {
	return u.Update(func(s *OrderLineUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *OrderLineUpsertOne) AddUnitPrice(v float64) *OrderLineUpsertOne {
	return u.Update(func(s *OrderLineUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *OrderLineUpsertOne) UpdateUnitPrice() *OrderLineUpsertOne {
	return u.Update(func(s *OrderLineUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetOrderID sets the "order_id" field.
func (u *OrderLineUpsertOne) SetOrderID(v string) *OrderLineUpsertOne {
	return u.Update(func(s *OrderLineUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *OrderLineUpsertOne) UpdateOrderID() *OrderLineUpsertOne {
	return u.Update(func(s *OrderLineUpsert) {
		s.UpdateOrderID()
	})
}

// Exec executes the query.
func (u *OrderLineUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderLineCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderLineUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OrderLineUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OrderLineUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OrderLineCreateBulk is the builder for creating many OrderLine entities in bulk.
type OrderLineCreateBulk struct {
	config
	err      error
	builders []*OrderLineCreate
	conflict []sql.ConflictOption
}

// Save creates the OrderLine entities in the database.
func (_c *OrderLineCreateBulk) Save(ctx context.Context) ([]*OrderLine, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrderLine, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderLineMutation)
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
func (_c *OrderLineCreateBulk) SaveX(ctx context.Context) []*OrderLine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderLineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderLineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OrderLine.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderLineUpsert) {
//			SetMedicineName(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderLineCreateBulk) OnConflict(opts ...sql.ConflictOption) *OrderLineUpsertBulk {
	_c.conflict = opts
	return &OrderLineUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OrderLine.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderLineCreateBulk) OnConflictColumns(columns ...string) *OrderLineUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderLineUpsertBulk{
		create: _c,
	}
}

// OrderLineUpsertBulk is the builder for "upsert"-ing
// a bulk of OrderLine nodes.
type OrderLineUpsertBulk struct {
	create *OrderLineCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OrderLine.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OrderLineUpsertBulk) UpdateNewValues() *OrderLineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OrderLine.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OrderLineUpsertBulk) Ignore() *OrderLineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderLineUpsertBulk) DoNothing() *OrderLineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderLineCreateBulk.OnConflict
// documentation for more info.
func (u *OrderLineUpsertBulk) Update(set func(*OrderLineUpsert)) *OrderLineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderLineUpsert{UpdateSet: update})
	}))
	return u
}

// SetMedicineName sets the "medicine_name" field.
func (u *OrderLineUpsertBulk) SetMedicineName(v string) *OrderLineUpsertBulk {
	return u.Update(func(s *OrderLineUpsert) {
		s.SetMedicineName(v)
	})
}

// UpdateMedicineName sets the "medicine_name" field to the value that was provided on create.
func (u *OrderLineUpsertBulk) UpdateMedicineName() *OrderLineUpsertBulk {
	return u.Update(func(s *OrderLineUpsert) {
		s.UpdateMedicineName()
	})
}

// SetDosage sets the "dosage" field.
func (u *OrderLineUpsertBulk) SetDosage(v string) *OrderLineUpsertBulk {
	return u.Update(func(s *OrderLineUpsert) {
		s.SetDosage(v)
	})
}

// UpdateDosage sets the "dosage" field to the value that was provided on create.
func (u *OrderLineUpsertBulk) UpdateDosage() *OrderLineUpsertBulk {
	return u.Update(func(s *OrderLineUpsert) {
		s.UpdateDosage()
	})
}

// ClearDosage clears the value of the "dosage" field.
func (u *OrderLineUpsertBulk) ClearDosage() *OrderLineUpsertBulk {
	return u.Update(func(s *OrderLineUpsert) {
		s.ClearDosage()
	})
}

// SetQuantity sets the "quantity" field.
func (u *OrderLineUpsertBulk) SetQuantity(v int) *OrderLineUpsertBulk {
	return u.Update(func(s *OrderLineUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *OrderLineUpsertBulk) AddQuantity(v int) *OrderLineUpsertBulk {
	return u.Update(func(s *OrderLineUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *OrderLineUpsertBulk) UpdateQuantity() *OrderLineUpsertBulk {
	return u.Update(func(s *OrderLineUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *OrderLineUpsertBulk) SetUnitPrice(v float64) *OrderLineUpsertBulk {
	return u.Update(func(s *OrderLineUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *OrderLineUpsertBulk) AddUnitPrice(v float64) *OrderLineUpsertBulk {
	return u.Update(func(s *OrderLineUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *OrderLineUpsertBulk) UpdateUnitPrice() *OrderLineUpsertBulk {
	return u.Update(func(s *OrderLineUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetOrderID sets the "order_id" field.
func (u *OrderLineUpsertBulk) SetOrderID(v string) *OrderLineUpsertBulk {
	return u.Update(func(s *OrderLineUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *OrderLineUpsertBulk) UpdateOrderID() *OrderLineUpsertBulk {
	return u.Update(func(s *OrderLineUpsert) {
		s.UpdateOrderID()
	})
}

// Exec executes the query.
func (u *OrderLineUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OrderLineCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderLineCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderLineUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
