// Code generated by ent, DO NOT EDIT.

package contentdedup

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the contentdedup type in the database.
	Label = "content_dedup"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "content_id"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldContentType holds the string denoting the content_type field in the database.
	FieldContentType = "content_type"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldProcessingStatus holds the string denoting the processing_status field in the database.
	FieldProcessingStatus = "processing_status"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// FieldSourceAgent holds the string denoting the source_agent field in the database.
	FieldSourceAgent = "source_agent"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the contentdedup in the database.
	Table = "content_dedups"
)

// Columns holds all SQL columns for contentdedup fields.
var Columns = []string{
	FieldID,
	FieldContentHash,
	FieldContentType,
	FieldExternalID,
	FieldProcessingStatus,
	FieldFirstSeenAt,
	FieldProcessedAt,
	FieldSourceAgent,
	FieldWorkflowID,
	FieldMetadata,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultFirstSeenAt holds the default value on creation for the "first_seen_at" field.
	DefaultFirstSeenAt func() time.Time
	// DefaultWorkflowID holds the default value on creation for the "workflow_id" field.
	DefaultWorkflowID string
)

// ContentType defines the type for the "content_type" enum field.
type ContentType string

// ContentType values.
const (
	ContentTypePost      ContentType = "post"
	ContentTypeComment   ContentType = "comment"
	ContentTypeSubreddit ContentType = "subreddit"
)

func (ct ContentType) String() string {
	return string(ct)
}

// ContentTypeValidator is a validator for the "content_type" field enum values. It is called by the builders before save.
func ContentTypeValidator(ct ContentType) error {
	switch ct {
	case ContentTypePost, ContentTypeComment, ContentTypeSubreddit:
		return nil
	default:
		return fmt.Errorf("contentdedup: invalid enum value for content_type field: %q", ct)
	}
}

// ProcessingStatus defines the type for the "processing_status" enum field.
type ProcessingStatus string

// ProcessingStatusNew is the default value of the ProcessingStatus enum.
const DefaultProcessingStatus = ProcessingStatusNew

// ProcessingStatus values.
const (
	ProcessingStatusNew        ProcessingStatus = "new"
	ProcessingStatusProcessing ProcessingStatus = "processing"
	ProcessingStatusProcessed  ProcessingStatus = "processed"
	ProcessingStatusFailed     ProcessingStatus = "failed"
)

func (ps ProcessingStatus) String() string {
	return string(ps)
}

// ProcessingStatusValidator is a validator for the "processing_status" field enum values. It is called by the builders before save.
func ProcessingStatusValidator(ps ProcessingStatus) error {
	switch ps {
	case ProcessingStatusNew, ProcessingStatusProcessing, ProcessingStatusProcessed, ProcessingStatusFailed:
		return nil
	default:
		return fmt.Errorf("contentdedup: invalid enum value for processing_status field: %q", ps)
	}
}

// OrderOption defines the ordering options for the ContentDedup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByContentType orders the results by the content_type field.
func ByContentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentType, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByProcessingStatus orders the results by the processing_status field.
func ByProcessingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStatus, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// BySourceAgent orders the results by the source_agent field.
func BySourceAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceAgent, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}
