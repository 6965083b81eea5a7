package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentDedup holds the schema definition for the ContentDedup entity.
// Exactly-once registration of external content items (posts, comments,
// subreddits) keyed by content hash and by (type, external id).
type ContentDedup struct {
	ent.Schema
}

// Fields of the ContentDedup.
func (ContentDedup) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("content_id").
			Unique().
			Immutable(),
		field.String("content_hash").
			Unique(),
		field.Enum("content_type").
			Values("post", "comment", "subreddit"),
		field.String("external_id").
			Comment("Source-side identifier (e.g., Reddit fullname)"),
		field.Enum("processing_status").
			Values("new", "processing", "processed", "failed").
			Default("new"),
		field.Time("first_seen_at").
			Default(time.Now).
			Immutable(),
		field.Time("processed_at").
			Optional().
			Nillable(),
		field.String("source_agent").
			Optional().
			Nillable(),
		field.String("workflow_id").
			Optional().
			Default(""),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the ContentDedup.
func (ContentDedup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_type", "external_id").
			Unique(),
		index.Fields("processing_status", "first_seen_at"),
	}
}
