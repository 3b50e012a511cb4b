package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLogEntry holds the schema definition for the AuditLogEntry entity.
// Append-only: rows are never updated or deleted except by Order cascade.
type AuditLogEntry struct {
	ent.Schema
}

// Fields of the AuditLogEntry.
func (AuditLogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("agent_name"),
		field.String("decision"),
		field.Text("reasoning").
			Optional(),
		field.Float("confidence").
			Default(0),
		field.JSON("extra_data", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("order_id").
			Optional().
			Comment("FK column shared with the order edge"),
	}
}

// Edges of the AuditLogEntry.
func (AuditLogEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("order", Order.Type).
			Ref("audit_entries").
			Field("order_id").
			Unique(),
	}
}

// Indexes of the AuditLogEntry.
func (AuditLogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_name"),
		index.Fields("created_at"),
	}
}
