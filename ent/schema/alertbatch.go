package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AlertBatch holds the schema definition for the AlertBatch entity.
// An aggregation of alert items dispatched together over one or more
// channels. Deleting a batch cascade-deletes its deliveries.
type AlertBatch struct {
	ent.Schema
}

// Fields of the AlertBatch.
func (AlertBatch) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("batch_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("summary").
			Optional(),
		field.Int("total_items").
			Default(0),
		field.Int("priority").
			Default(5),
		field.JSON("channels", []string{}).
			Optional(),
		field.Enum("schedule_type").
			Values("immediate", "hourly", "daily").
			Default("immediate"),
		field.Enum("status").
			Values("pending", "sent", "failed").
			Default("pending"),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.Int("delivery_attempts").
			Default(0),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AlertBatch.
func (AlertBatch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("deliveries", AlertDelivery.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AlertBatch.
func (AlertBatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "priority", "created_at"),
	}
}
