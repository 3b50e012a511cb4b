package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RefillPrediction holds the schema definition for the RefillPrediction entity.
type RefillPrediction struct {
	ent.Schema
}

// Fields of the RefillPrediction.
func (RefillPrediction) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.String("medicine_name"),
		field.Time("predicted_depletion_date"),
		field.Float("confidence").
			Default(0.5),
		field.Bool("reminder_sent").
			Default(false),
		field.Bool("refill_confirmed").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the RefillPrediction.
func (RefillPrediction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "medicine_name").
			Unique(),
		index.Fields("predicted_depletion_date"),
	}
}
