package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Patient holds the schema definition for the Patient entity.
type Patient struct {
	ent.Schema
}

// Fields of the Patient.
func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("pid").
			Unique().
			Immutable().
			Comment("External stable patient identifier"),
		field.String("phone").
			Unique().
			Comment("Primary lookup key for conversational channels"),
		field.String("name").
			Optional(),
		field.Int("age").
			Optional().
			Nillable(),
		field.JSON("allergies", []string{}).
			Optional(),
		field.JSON("conditions", []string{}).
			Optional(),
		field.Int("risk_score").
			Default(0).
			Min(0).
			Max(100).
			Comment("Monotonically accumulated behavioral risk, administrative reset only"),
		field.Enum("risk_level").
			Values("normal", "elevated", "high", "critical").
			Default("normal"),
		field.JSON("risk_flags", []string{}).
			Optional(),
		field.Time("risk_updated_at").
			Optional().
			Nillable(),
		field.Bool("flagged_for_review").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Patient.
func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("risk_level"),
		index.Fields("flagged_for_review"),
	}
}
