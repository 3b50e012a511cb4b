// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arogya-labs/aushadhi/ent/medicine"
)

// Medicine is the model entity for the Medicine schema.
type Medicine struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Display name, e.g. 'Paracetamol 500mg'. Lookups are case-insensitive.
	Name string `json:"name,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Unit price in INR
	Price float64 `json:"price,omitempty"`
	// On-hand units. Never decremented below zero; decrements run under a row lock.
	Stock int `json:"stock,omitempty"`
	// RequiresPrescription holds the value of the "requires_prescription" field.
	RequiresPrescription bool `json:"requires_prescription,omitempty"`
	// ActiveIngredients holds the value of the "active_ingredients" field.
	ActiveIngredients []string `json:"active_ingredients,omitempty"`
	// GenericEquivalent holds the value of the "generic_equivalent" field.
	GenericEquivalent string `json:"generic_equivalent,omitempty"`
	// Contraindications holds the value of the "contraindications" field.
	Contraindications []string `json:"contraindications,omitempty"`
	// Catalog strength used to infer a missing dosage, e.g. '500mg'
	Strength string `json:"strength,omitempty"`
	// tablet, capsule, syrup, injection, cream, ointment
	DosageForm string `json:"dosage_form,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Medicine) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case medicine.FieldActiveIngredients, medicine.FieldContraindications:
			values[i] = new([]byte)
		case medicine.FieldRequiresPrescription:
			values[i] = new(sql.NullBool)
		case medicine.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case medicine.FieldID, medicine.FieldStock:
			values[i] = new(sql.NullInt64)
		case medicine.FieldName, medicine.FieldCategory, medicine.FieldGenericEquivalent, medicine.FieldStrength, medicine.FieldDosageForm:
			values[i] = new(sql.NullString)
		case medicine.FieldCreatedAt, medicine.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Medicine fields.
func (_m *Medicine) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case medicine.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case medicine.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case medicine.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case medicine.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case medicine.FieldStock:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stock", values[i])
			} else if value.Valid {
				_m.Stock = int(value.Int64)
			}
		case medicine.FieldRequiresPrescription:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_prescription", values[i])
			} else if value.Valid {
				_m.RequiresPrescription = value.Bool
			}
		case medicine.FieldActiveIngredients:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field active_ingredients", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActiveIngredients); err != nil {
					return fmt.Errorf("unmarshal field active_ingredients: %w", err)
				}
			}
		case medicine.FieldGenericEquivalent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generic_equivalent", values[i])
			} else if value.Valid {
				_m.GenericEquivalent = value.String
			}
		case medicine.FieldContraindications:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field contraindications", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Contraindications); err != nil {
					return fmt.Errorf("unmarshal field contraindications: %w", err)
				}
			}
		case medicine.FieldStrength:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strength", values[i])
			} else if value.Valid {
				_m.Strength = value.String
			}
		case medicine.FieldDosageForm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dosage_form", values[i])
			} else if value.Valid {
				_m.DosageForm = value.String
			}
		case medicine.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case medicine.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Medicine.
// This includes values selected through modifiers, order, etc.
func (_m *Medicine) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Medicine.
// Note that you need to call Medicine.Unwrap() before calling this method if this Medicine
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Medicine) Update() *MedicineUpdateOne {
	return NewMedicineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Medicine entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Medicine) Unwrap() *Medicine {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Medicine is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Medicine) String() string {
	var builder strings.Builder
	builder.WriteString("Medicine(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("stock=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stock))
	builder.WriteString(", ")
	builder.WriteString("requires_prescription=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresPrescription))
	builder.WriteString(", ")
	builder.WriteString("active_ingredients=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActiveIngredients))
	builder.WriteString(", ")
	builder.WriteString("generic_equivalent=")
	builder.WriteString(_m.GenericEquivalent)
	builder.WriteString(", ")
	builder.WriteString("contraindications=")
	builder.WriteString(fmt.Sprintf("%v", _m.Contraindications))
	builder.WriteString(", ")
	builder.WriteString("strength=")
	builder.WriteString(_m.Strength)
	builder.WriteString(", ")
	builder.WriteString("dosage_form=")
	builder.WriteString(_m.DosageForm)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Medicines is a parsable slice of Medicine.
type Medicines []*Medicine
