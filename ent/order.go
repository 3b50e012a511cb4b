// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arogya-labs/aushadhi/ent/order"
)

// Order is the model entity for the Order schema.
type Order struct {
	config `json:"-"`
	// ID of the ent.
	// Time-prefixed ID with random suffix, e.g. ORD-1756200000123-a3f9c1e044b2
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status order.Status `json:"status,omitempty"`
	// PharmacistDecision holds the value of the "pharmacist_decision" field.
	PharmacistDecision order.PharmacistDecision `json:"pharmacist_decision,omitempty"`
	// SafetyIssues holds the value of the "safety_issues" field.
	SafetyIssues []string `json:"safety_issues,omitempty"`
	// Must equal sum(line.unit_price * line.quantity) at creation
	TotalAmount float64 `json:"total_amount,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrderQuery when eager-loading is set.
	Edges        OrderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrderEdges holds the relations/edges for other nodes in the graph.
type OrderEdges struct {
	// Lines holds the value of the lines edge.
	Lines []*OrderLine `json:"lines,omitempty"`
	// AuditEntries holds the value of the audit_entries edge.
	AuditEntries []*AuditLogEntry `json:"audit_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LinesOrErr returns the Lines value or an error if the edge
// was not loaded in eager-loading.
func (e OrderEdges) LinesOrErr() ([]*OrderLine, error) {
	if e.loadedTypes[0] {
		return e.Lines, nil
	}
	return nil, &NotLoadedError{edge: "lines"}
}

// AuditEntriesOrErr returns the AuditEntries value or an error if the edge
// was not loaded in eager-loading.
func (e OrderEdges) AuditEntriesOrErr() ([]*AuditLogEntry, error) {
	if e.loadedTypes[1] {
		return e.AuditEntries, nil
	}
	return nil, &NotLoadedError{edge: "audit_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Order) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case order.FieldSafetyIssues:
			values[i] = new([]byte)
		case order.FieldTotalAmount:
			values[i] = new(sql.NullFloat64)
		case order.FieldID, order.FieldUserID, order.FieldStatus, order.FieldPharmacistDecision:
			values[i] = new(sql.NullString)
		case order.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Order fields.
func (_m *Order) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case order.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case order.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case order.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = order.Status(value.String)
			}
		case order.FieldPharmacistDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pharmacist_decision", values[i])
			} else if value.Valid {
				_m.PharmacistDecision = order.PharmacistDecision(value.String)
			}
		case order.FieldSafetyIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field safety_issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SafetyIssues); err != nil {
					return fmt.Errorf("unmarshal field safety_issues: %w", err)
				}
			}
		case order.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = value.Float64
			}
		case order.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Order.
// This includes values selected through modifiers, order, etc.
func (_m *Order) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLines queries the "lines" edge of the Order entity.
func (_m *Order) QueryLines() *OrderLineQuery {
	return NewOrderClient(_m.config).QueryLines(_m)
}

// QueryAuditEntries queries the "audit_entries" edge of the Order entity.
func (_m *Order) QueryAuditEntries() *AuditLogEntryQuery {
	return NewOrderClient(_m.config).QueryAuditEntries(_m)
}

// Update returns a builder for updating this Order.
// Note that you need to call Order.Unwrap() before calling this method if this Order
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Order) Update() *OrderUpdateOne {
	return NewOrderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Order entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Order) Unwrap() *Order {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Order is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Order) String() string {
	var builder strings.Builder
	builder.WriteString("Order(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("pharmacist_decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.PharmacistDecision))
	builder.WriteString(", ")
	builder.WriteString("safety_issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.SafetyIssues))
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAmount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Orders is a parsable slice of Order.
type Orders []*Order
