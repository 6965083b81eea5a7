package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskRecovery holds the schema definition for the TaskRecovery entity.
// A planned reaction to a failed or stuck task. At most one active
// (non-terminal) recovery may exist per original task.
type TaskRecovery struct {
	ent.Schema
}

// Fields of the TaskRecovery.
func (TaskRecovery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable().
			Comment("Recovery's own UUID"),
		field.String("original_task_id"),
		field.Enum("recovery_strategy").
			Values("retry", "rollback", "skip", "checkpoint", "manual"),
		field.Enum("recovery_status").
			Values("pending", "recovering", "completed", "failed").
			Default("pending"),
		field.Int("recovery_attempt").
			Default(0),
		field.Int("max_recovery_attempts").
			Default(3),
		field.JSON("checkpoint_data", map[string]interface{}{}).
			Optional(),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.Time("recovery_started_at").
			Optional().
			Nillable(),
		field.Time("recovery_completed_at").
			Optional().
			Nillable(),
		field.String("recovery_error").
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

// Indexes of the TaskRecovery.
func (TaskRecovery) Indexes() []ent.Index {
	return []ent.Index{
		// One active recovery per original task is enforced by a partial
		// unique index created in pkg/database/migrations.go.
		index.Fields("original_task_id"),

		index.Fields("recovery_status", "created_at"),
	}
}
