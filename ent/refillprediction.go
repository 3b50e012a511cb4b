// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arogya-labs/aushadhi/ent/refillprediction"
)

// RefillPrediction is the model entity for the RefillPrediction schema.
type RefillPrediction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// MedicineName holds the value of the "medicine_name" field.
	MedicineName string `json:"medicine_name,omitempty"`
	// PredictedDepletionDate holds the value of the "predicted_depletion_date" field.
	PredictedDepletionDate time.Time `json:"predicted_depletion_date,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// ReminderSent holds the value of the "reminder_sent" field.
	ReminderSent bool `json:"reminder_sent,omitempty"`
	// RefillConfirmed holds the value of the "refill_confirmed" field.
	RefillConfirmed bool `json:"refill_confirmed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RefillPrediction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case refillprediction.FieldReminderSent, refillprediction.FieldRefillConfirmed:
			values[i] = new(sql.NullBool)
		case refillprediction.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case refillprediction.FieldID:
			values[i] = new(sql.NullInt64)
		case refillprediction.FieldUserID, refillprediction.FieldMedicineName:
			values[i] = new(sql.NullString)
		case refillprediction.FieldPredictedDepletionDate, refillprediction.FieldCreatedAt, refillprediction.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RefillPrediction fields.
func (_m *RefillPrediction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case refillprediction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case refillprediction.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case refillprediction.FieldMedicineName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medicine_name", values[i])
			} else if value.Valid {
				_m.MedicineName = value.String
			}
		case refillprediction.FieldPredictedDepletionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field predicted_depletion_date", values[i])
			} else if value.Valid {
				_m.PredictedDepletionDate = value.Time
			}
		case refillprediction.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case refillprediction.FieldReminderSent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reminder_sent", values[i])
			} else if value.Valid {
				_m.ReminderSent = value.Bool
			}
		case refillprediction.FieldRefillConfirmed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field refill_confirmed", values[i])
			} else if value.Valid {
				_m.RefillConfirmed = value.Bool
			}
		case refillprediction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case refillprediction.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RefillPrediction.
// This includes values selected through modifiers, order, etc.
func (_m *RefillPrediction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RefillPrediction.
// Note that you need to call RefillPrediction.Unwrap() before calling this method if this RefillPrediction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RefillPrediction) Update() *RefillPredictionUpdateOne {
	return NewRefillPredictionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RefillPrediction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RefillPrediction) Unwrap() *RefillPrediction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RefillPrediction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RefillPrediction) String() string {
	var builder strings.Builder
	builder.WriteString("RefillPrediction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("medicine_name=")
	builder.WriteString(_m.MedicineName)
	builder.WriteString(", ")
	builder.WriteString("predicted_depletion_date=")
	builder.WriteString(_m.PredictedDepletionDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("reminder_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReminderSent))
	builder.WriteString(", ")
	builder.WriteString("refill_confirmed=")
	builder.WriteString(fmt.Sprintf("%v", _m.RefillConfirmed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RefillPredictions is a parsable slice of RefillPrediction.
type RefillPredictions []*RefillPrediction
