// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arogya-labs/aushadhi/ent/medicine"
	"github.com/arogya-labs/aushadhi/ent/order"
	"github.com/arogya-labs/aushadhi/ent/orderline"
)

// OrderLine is the model entity for the OrderLine schema.
type OrderLine struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Denormalized snapshot of the medicine name at order time
	MedicineName string `json:"medicine_name,omitempty"`
	// Dosage holds the value of the "dosage" field.
	Dosage string `json:"dosage,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// Price snapshot at order time
	UnitPrice float64 `json:"unit_price,omitempty"`
	// FK column shared with the order edge; string order IDs, not ints
	OrderID string `json:"order_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrderLineQuery when eager-loading is set.
	Edges        OrderLineEdges `json:"edges"`
	medicine_id  *int
	selectValues sql.SelectValues
}

// OrderLineEdges holds the relations/edges for other nodes in the graph.
type OrderLineEdges struct {
	// Order holds the value of the order edge.
	Order *Order `json:"order,omitempty"`
	// Medicine holds the value of the medicine edge.
	Medicine *Medicine `json:"medicine,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OrderOrErr returns the Order value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OrderLineEdges) OrderOrErr() (*Order, error) {
	if e.Order != nil {
		return e.Order, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: order.Label}
	}
	return nil, &NotLoadedError{edge: "order"}
}

// MedicineOrErr returns the Medicine value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OrderLineEdges) MedicineOrErr() (*Medicine, error) {
	if e.Medicine != nil {
		return e.Medicine, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: medicine.Label}
	}
	return nil, &NotLoadedError{edge: "medicine"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrderLine) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case orderline.FieldUnitPrice:
			values[i] = new(sql.NullFloat64)
		case orderline.FieldID, orderline.FieldQuantity:
			values[i] = new(sql.NullInt64)
		case orderline.FieldMedicineName, orderline.FieldDosage, orderline.FieldOrderID:
			values[i] = new(sql.NullString)
		case orderline.ForeignKeys[0]: // medicine_id
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrderLine fields.
func (_m *OrderLine) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case orderline.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case orderline.FieldMedicineName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medicine_name", values[i])
			} else if value.Valid {
				_m.MedicineName = value.String
			}
		case orderline.FieldDosage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dosage", values[i])
			} else if value.Valid {
				_m.Dosage = value.String
			}
		case orderline.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case orderline.FieldUnitPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value.Valid {
				_m.UnitPrice = value.Float64
			}
		case orderline.FieldOrderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value.Valid {
				_m.OrderID = value.String
			}
		case orderline.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field medicine_id", value)
			} else if value.Valid {
				_m.medicine_id = new(int)
				*_m.medicine_id = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OrderLine.
// This includes values selected through modifiers, order, etc.
func (_m *OrderLine) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOrder queries the "order" edge of the OrderLine entity.
func (_m *OrderLine) QueryOrder() *OrderQuery {
	return NewOrderLineClient(_m.config).QueryOrder(_m)
}

// QueryMedicine queries the "medicine" edge of the OrderLine entity.
func (_m *OrderLine) QueryMedicine() *MedicineQuery {
	return NewOrderLineClient(_m.config).QueryMedicine(_m)
}

// Update returns a builder for updating this OrderLine.
// Note that you need to call OrderLine.Unwrap() before calling this method if this OrderLine
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OrderLine) Update() *OrderLineUpdateOne {
	return NewOrderLineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OrderLine entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OrderLine) Unwrap() *OrderLine {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OrderLine is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OrderLine) String() string {
	var builder strings.Builder
	builder.WriteString("OrderLine(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("medicine_name=")
	builder.WriteString(_m.MedicineName)
	builder.WriteString(", ")
	builder.WriteString("dosage=")
	builder.WriteString(_m.Dosage)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("unit_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitPrice))
	builder.WriteString(", ")
	builder.WriteString("order_id=")
	builder.WriteString(_m.OrderID)
	builder.WriteByte(')')
	return builder.String()
}

// OrderLines is a parsable slice of OrderLine.
type OrderLines []*OrderLine
