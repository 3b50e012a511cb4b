package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// OrderLine holds the schema definition for the OrderLine entity.
// Lines are owned by their Order and cascade-delete with it.
type OrderLine struct {
	ent.Schema
}

// Fields of the OrderLine.
func (OrderLine) Fields() []ent.Field {
	return []ent.Field{
		field.String("medicine_name").
			Comment("Denormalized snapshot of the medicine name at order time"),
		field.String("dosage").
			Optional(),
		field.Int("quantity").
			Positive(),
		field.Float("unit_price").
			Comment("Price snapshot at order time"),
		field.String("order_id").
			Comment("FK column shared with the order edge; string order IDs, not ints"),
	}
}

// Edges of the OrderLine.
func (OrderLine) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("order", Order.Type).
			Ref("lines").
			Field("order_id").
			Unique().
			Required(),
		edge.To("medicine", Medicine.Type).
			StorageKey(edge.Column("medicine_id")).
			Unique(),
	}
}
