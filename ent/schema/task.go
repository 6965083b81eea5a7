package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// A Task is a single skill invocation on a single agent, persisted with
// idempotency and lease metadata.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("agent_type").
			Comment("Target agent type (e.g., 'retrieval', 'filter')"),
		field.String("skill_name"),
		field.JSON("parameters", map[string]interface{}{}).
			Optional(),
		field.String("parameters_hash").
			Comment("Hex SHA-256 of the canonicalised parameters"),
		field.String("workflow_id").
			Optional().
			Default("").
			Comment("Owning workflow; empty for standalone tasks"),
		field.String("idempotency_key").
			Optional().
			Nillable(),
		field.String("correlation_id").
			Optional().
			Nillable(),
		field.Int("priority").
			Default(5).
			Min(1).
			Max(10).
			Comment("1 highest ... 10 lowest"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.Int("retry_count").
			Default(0),
		field.Int("max_retries").
			Default(3),
		field.Time("next_retry_at").
			Optional().
			Nillable(),
		field.String("lock_token").
			Optional().
			Nillable().
			Comment("Distributed lease token; non-null only while leased"),
		field.Time("lock_expires_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("Set when the task first enters running"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("result_data", map[string]interface{}{}).
			Optional(),
		field.String("result_hash").
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

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Idempotency lookup path. The partial unique constraint (at most
		// one non-terminal task per tuple) is created in
		// pkg/database/migrations.go since ent cannot express it.
		index.Fields("agent_type", "skill_name", "parameters_hash", "workflow_id"),

		// Scan and dispatch hot paths
		index.Fields("status", "created_at"),
		index.Fields("workflow_id", "status"),
		index.Fields("agent_type", "status", "priority"),
		index.Fields("next_retry_at"),
		index.Fields("lock_expires_at"),
	}
}
