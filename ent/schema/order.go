package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Order status and pharmacist decision values are mirrored by the agent
// pipeline; the enums here are the persisted source of truth.

// Order holds the schema definition for the Order entity.
type Order struct {
	ent.Schema
}

// Fields of the Order.
func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("order_id").
			Unique().
			Immutable().
			Comment("Time-prefixed ID with random suffix, e.g. ORD-1756200000123-a3f9c1e044b2"),
		field.String("user_id"),
		field.Enum("status").
			Values("pending", "fulfilled", "pending_review", "rejected", "failed", "cancelled").
			Default("pending"),
		field.Enum("pharmacist_decision").
			Values("approved", "needs_review", "rejected").
			Default("approved"),
		field.JSON("safety_issues", []string{}).
			Optional(),
		field.Float("total_amount").
			Comment("Must equal sum(line.unit_price * line.quantity) at creation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Order.
func (Order) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("lines", OrderLine.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("audit_entries", AuditLogEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Order.
func (Order) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("status", "created_at"),
	}
}
