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
	"github.com/arogya-labs/aushadhi/ent/predicate"
)

// OrderLineUpdate is the builder for updating OrderLine entities.
type OrderLineUpdate struct {
	config
	hooks    []Hook
	mutation *OrderLineMutation
}

// Where appends a list predicates to the OrderLineUpdate builder.
func (_u *OrderLineUpdate) Where(ps ...predicate.OrderLine) *OrderLineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMedicineName sets the "medicine_name" field.
func (_u *OrderLineUpdate) SetMedicineName(v string) *OrderLineUpdate {
	_u.mutation.SetMedicineName(v)
	return _u
}

// SetNillableMedicineName sets the "medicine_name" field if the given value is not nil.
func (_u *OrderLineUpdate) SetNillableMedicineName(v *string) *OrderLineUpdate {
	if v != nil {
		_u.SetMedicineName(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *OrderLineUpdate) SetDosage(v string) *OrderLineUpdate {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *OrderLineUpdate) SetNillableDosage(v *string) *OrderLineUpdate {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// ClearDosage clears the value of the "dosage" field.
func (_u *OrderLineUpdate) ClearDosage() *OrderLineUpdate {
	_u.mutation.ClearDosage()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *OrderLineUpdate) SetQuantity(v int) *OrderLineUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *OrderLineUpdate) SetNillableQuantity(v *int) *OrderLineUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *OrderLineUpdate) AddQuantity(v int) *OrderLineUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *OrderLineUpdate) SetUnitPrice(v float64) *OrderLineUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *OrderLineUpdate) SetNillableUnitPrice(v *float64) *OrderLineUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *OrderLineUpdate) AddUnitPrice(v float64) *OrderLineUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *OrderLineUpdate) SetOrderID(v string) *OrderLineUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *OrderLineUpdate) SetNillableOrderID(v *string) *OrderLineUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *OrderLineUpdate) SetOrder(v *Order) *OrderLineUpdate {
	return _u.SetOrderID(v.ID)
}

// SetMedicineID sets the "medicine" edge to the Medicine entity by ID.
func (_u *OrderLineUpdate) SetMedicineID(id int) *OrderLineUpdate {
	_u.mutation.SetMedicineID(id)
	return _u
}

// SetNillableMedicineID sets the "medicine" edge to the Medicine entity by ID if the given value is not nil.
func (_u *OrderLineUpdate) SetNillableMedicineID(id *int) *OrderLineUpdate {
	if id != nil {
		_u = _u.SetMedicineID(*id)
	}
	return _u
}

// SetMedicine sets the "medicine" edge to the Medicine entity.
func (_u *OrderLineUpdate) SetMedicine(v *Medicine) *OrderLineUpdate {
	return _u.SetMedicineID(v.ID)
}

// Mutation returns the OrderLineMutation object of the builder.
func (_u *OrderLineUpdate) Mutation() *OrderLineMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *OrderLineUpdate) ClearOrder() *OrderLineUpdate {
	_u.mutation.ClearOrder()
	return _u
}

// ClearMedicine clears the "medicine" edge to the Medicine entity.
func (_u *OrderLineUpdate) ClearMedicine() *OrderLineUpdate {
	_u.mutation.ClearMedicine()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderLineUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderLineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderLineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderLineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderLineUpdate) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := orderline.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "OrderLine.quantity": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderLine.order"`)
	}
	return nil
}

func (_u *OrderLineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderline.Table, orderline.Columns, sqlgraph.NewFieldSpec(orderline.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MedicineName(); ok {
		_spec.SetField(orderline.FieldMedicineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(orderline.FieldDosage, field.TypeString, value)
	}
	if _u.mutation.DosageCleared() {
		_spec.ClearField(orderline.FieldDosage, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(orderline.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(orderline.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(orderline.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(orderline.FieldUnitPrice, field.TypeFloat64, value)
	}
	if _u.mutation.OrderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MedicineCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MedicineIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderLineUpdateOne is the builder for updating a single OrderLine entity.
type OrderLineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderLineMutation
}

// SetMedicineName sets the "medicine_name" field.
func (_u *OrderLineUpdateOne) SetMedicineName(v string) *OrderLineUpdateOne {
	_u.mutation.SetMedicineName(v)
	return _u
}

// SetNillableMedicineName sets the "medicine_name" field if the given value is not nil.
func (_u *OrderLineUpdateOne) SetNillableMedicineName(v *string) *OrderLineUpdateOne {
	if v != nil {
		_u.SetMedicineName(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *OrderLineUpdateOne) SetDosage(v string) *OrderLineUpdateOne {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *OrderLineUpdateOne) SetNillableDosage(v *string) *OrderLineUpdateOne {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// ClearDosage clears the value of the "dosage" field.
func (_u *OrderLineUpdateOne) ClearDosage() *OrderLineUpdateOne {
	_u.mutation.ClearDosage()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *OrderLineUpdateOne) SetQuantity(v int) *OrderLineUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *OrderLineUpdateOne) SetNillableQuantity(v *int) *OrderLineUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *OrderLineUpdateOne) AddQuantity(v int) *OrderLineUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *OrderLineUpdateOne) SetUnitPrice(v float64) *OrderLineUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *OrderLineUpdateOne) SetNillableUnitPrice(v *float64) *OrderLineUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *OrderLineUpdateOne) AddUnitPrice(v float64) *OrderLineUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *OrderLineUpdateOne) SetOrderID(v string) *OrderLineUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *OrderLineUpdateOne) SetNillableOrderID(v *string) *OrderLineUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *OrderLineUpdateOne) SetOrder(v *Order) *OrderLineUpdateOne {
	return _u.SetOrderID(v.ID)
}

// SetMedicineID sets the "medicine" edge to the Medicine entity by ID.
func (_u *OrderLineUpdateOne) SetMedicineID(id int) *OrderLineUpdateOne {
	_u.mutation.SetMedicineID(id)
	return _u
}

// SetNillableMedicineID sets the "medicine" edge to the Medicine entity by ID if the given value is not nil.
func (_u *OrderLineUpdateOne) SetNillableMedicineID(id *int) *OrderLineUpdateOne {
	if id != nil {
		_u = _u.SetMedicineID(*id)
	}
	return _u
}

// SetMedicine sets the "medicine" edge to the Medicine entity.
func (_u *OrderLineUpdateOne) SetMedicine(v *Medicine) *OrderLineUpdateOne {
	return _u.SetMedicineID(v.ID)
}

// Mutation returns the OrderLineMutation object of the builder.
func (_u *OrderLineUpdateOne) Mutation() *OrderLineMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *OrderLineUpdateOne) ClearOrder() *OrderLineUpdateOne {
	_u.mutation.ClearOrder()
	return _u
}

// ClearMedicine clears the "medicine" edge to the Medicine entity.
func (_u *OrderLineUpdateOne) ClearMedicine() *OrderLineUpdateOne {
	_u.mutation.ClearMedicine()
	return _u
}

// Where appends a list predicates to the OrderLineUpdate builder.
func (_u *OrderLineUpdateOne) Where(ps ...predicate.OrderLine) *OrderLineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderLineUpdateOne) Select(field string, fields ...string) *OrderLineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrderLine entity.
func (_u *OrderLineUpdateOne) Save(ctx context.Context) (*OrderLine, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderLineUpdateOne) SaveX(ctx context.Context) *OrderLine {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderLineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderLineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderLineUpdateOne) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := orderline.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "OrderLine.quantity": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderLine.order"`)
	}
	return nil
}

func (_u *OrderLineUpdateOne) sqlSave(ctx context.Context) (_node *OrderLine, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderline.Table, orderline.Columns, sqlgraph.NewFieldSpec(orderline.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrderLine.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orderline.FieldID)
		for _, f := range fields {
			if !orderline.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orderline.FieldID {
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
	if value, ok := _u.mutation.MedicineName(); ok {
		_spec.SetField(orderline.FieldMedicineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(orderline.FieldDosage, field.TypeString, value)
	}
	if _u.mutation.DosageCleared() {
		_spec.ClearField(orderline.FieldDosage, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(orderline.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(orderline.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(orderline.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(orderline.FieldUnitPrice, field.TypeFloat64, value)
	}
	if _u.mutation.OrderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MedicineCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MedicineIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OrderLine{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
