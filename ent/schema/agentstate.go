package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentState holds the schema definition for the AgentState entity.
// Heartbeat-driven liveness record, one row per agent instance.
// An agent whose heartbeat is older than the staleness threshold is
// offline regardless of the stored status; cleanup marks it explicitly.
type AgentState struct {
	ent.Schema
}

// Fields of the AgentState.
func (AgentState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("agent_type"),
		field.Enum("status").
			Values("idle", "busy", "error", "offline").
			Default("idle"),
		field.JSON("state_data", map[string]interface{}{}).
			Optional(),
		field.JSON("capabilities", []string{}).
			Optional().
			Comment("Skill names this agent exposes"),
		field.String("current_task_id").
			Optional().
			Nillable(),
		field.Time("heartbeat_at").
			Default(time.Now),
		field.Int("error_count").
			Default(0),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Int("tasks_completed").
			Default(0),
		field.Int("tasks_failed").
			Default(0),
		field.Float("avg_execution_time_ms").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AgentState.
func (AgentState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "last_updated"),
		index.Fields("agent_type", "status", "heartbeat_at"),
	}
}
