package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AlertDelivery holds the schema definition for the AlertDelivery entity.
// One row per (batch, channel, recipient) delivery attempt history.
type AlertDelivery struct {
	ent.Schema
}

// Fields of the AlertDelivery.
func (AlertDelivery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("delivery_id").
			Unique().
			Immutable(),
		field.String("alert_batch_id").
			Immutable(),
		field.String("channel").
			Comment("'slack' or 'email'"),
		field.Enum("status").
			Values("pending", "sent", "failed").
			Default("pending"),
		field.String("recipient").
			Optional().
			Default("").
			Comment("Email address; empty for webhook channels"),
		field.String("webhook_url").
			Optional().
			Nillable(),
		field.String("message_id").
			Optional().
			Nillable(),
		field.String("dedup_hash").
			Optional().
			Nillable(),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.Int("delivery_time_ms").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AlertDelivery.
func (AlertDelivery) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("batch", AlertBatch.Type).
			Ref("deliveries").
			Field("alert_batch_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AlertDelivery.
func (AlertDelivery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("alert_batch_id", "channel", "recipient").
			Unique(),
		index.Fields("status", "created_at"),
	}
}
