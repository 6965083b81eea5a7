package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workflow holds the schema definition for the Workflow entity.
// One row per pipeline execution. Tasks reference their workflow by
// workflow_id only; deleting a workflow never cascades to its tasks
// (tasks are auditable history).
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("workflow_type").
			Comment("e.g., 'reddit_scan'"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("config", map[string]interface{}{}).
			Optional(),
		field.String("schedule").
			Optional().
			Nillable().
			Comment("Cron expression for scheduled workflows"),
		field.Time("last_run").
			Optional().
			Nillable(),
		field.Time("next_run").
			Optional().
			Nillable(),
		field.Int("run_count").
			Default(0),
		field.Int("error_count").
			Default(0),
		field.Int("posts_processed").
			Default(0),
		field.Int("comments_processed").
			Default(0),
		field.Int("relevant_items").
			Default(0),
		field.Int("summaries_created").
			Default(0),
		field.Int("alerts_sent").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
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

// Indexes of the Workflow.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("workflow_type", "status"),
		index.Fields("next_run"),
	}
}
