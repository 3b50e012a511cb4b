package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Medicine holds the schema definition for the Medicine entity.
type Medicine struct {
	ent.Schema
}

// Fields of the Medicine.
func (Medicine) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Comment("Display name, e.g. 'Paracetamol 500mg'. Lookups are case-insensitive."),
		field.String("category").
			Default("general"),
		field.Float("price").
			Comment("Unit price in INR"),
		field.Int("stock").
			Default(0).
			NonNegative().
			Comment("On-hand units. Never decremented below zero; decrements run under a row lock."),
		field.Bool("requires_prescription").
			Default(false),
		field.JSON("active_ingredients", []string{}).
			Optional(),
		field.String("generic_equivalent").
			Optional(),
		field.JSON("contraindications", []string{}).
			Optional(),
		field.String("strength").
			Optional().
			Comment("Catalog strength used to infer a missing dosage, e.g. '500mg'"),
		field.String("dosage_form").
			Optional().
			Comment("tablet, capsule, syrup, injection, cream, ointment"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Medicine.
func (Medicine) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
		index.Fields("category", "stock"),
	}
}
