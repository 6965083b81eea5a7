// Code generated by ent, DO NOT EDIT.

package workflow

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the workflow type in the database.
	Label = "workflow"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "workflow_id"
	// FieldWorkflowType holds the string denoting the workflow_type field in the database.
	FieldWorkflowType = "workflow_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldSchedule holds the string denoting the schedule field in the database.
	FieldSchedule = "schedule"
	// FieldLastRun holds the string denoting the last_run field in the database.
	FieldLastRun = "last_run"
	// FieldNextRun holds the string denoting the next_run field in the database.
	FieldNextRun = "next_run"
	// FieldRunCount holds the string denoting the run_count field in the database.
	FieldRunCount = "run_count"
	// FieldErrorCount holds the string denoting the error_count field in the database.
	FieldErrorCount = "error_count"
	// FieldPostsProcessed holds the string denoting the posts_processed field in the database.
	FieldPostsProcessed = "posts_processed"
	// FieldCommentsProcessed holds the string denoting the comments_processed field in the database.
	FieldCommentsProcessed = "comments_processed"
	// FieldRelevantItems holds the string denoting the relevant_items field in the database.
	FieldRelevantItems = "relevant_items"
	// FieldSummariesCreated holds the string denoting the summaries_created field in the database.
	FieldSummariesCreated = "summaries_created"
	// FieldAlertsSent holds the string denoting the alerts_sent field in the database.
	FieldAlertsSent = "alerts_sent"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the workflow in the database.
	Table = "workflows"
)

// Columns holds all SQL columns for workflow fields.
var Columns = []string{
	FieldID,
	FieldWorkflowType,
	FieldStatus,
	FieldConfig,
	FieldSchedule,
	FieldLastRun,
	FieldNextRun,
	FieldRunCount,
	FieldErrorCount,
	FieldPostsProcessed,
	FieldCommentsProcessed,
	FieldRelevantItems,
	FieldSummariesCreated,
	FieldAlertsSent,
	FieldErrorMessage,
	FieldStartedAt,
	FieldCompletedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultRunCount holds the default value on creation for the "run_count" field.
	DefaultRunCount int
	// DefaultErrorCount holds the default value on creation for the "error_count" field.
	DefaultErrorCount int
	// DefaultPostsProcessed holds the default value on creation for the "posts_processed" field.
	DefaultPostsProcessed int
	// DefaultCommentsProcessed holds the default value on creation for the "comments_processed" field.
	DefaultCommentsProcessed int
	// DefaultRelevantItems holds the default value on creation for the "relevant_items" field.
	DefaultRelevantItems int
	// DefaultSummariesCreated holds the default value on creation for the "summaries_created" field.
	DefaultSummariesCreated int
	// DefaultAlertsSent holds the default value on creation for the "alerts_sent" field.
	DefaultAlertsSent int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("workflow: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Workflow queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowType orders the results by the workflow_type field.
func ByWorkflowType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySchedule orders the results by the schedule field.
func BySchedule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchedule, opts...).ToFunc()
}

// ByLastRun orders the results by the last_run field.
func ByLastRun(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRun, opts...).ToFunc()
}

// ByNextRun orders the results by the next_run field.
func ByNextRun(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRun, opts...).ToFunc()
}

// ByRunCount orders the results by the run_count field.
func ByRunCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunCount, opts...).ToFunc()
}

// ByErrorCount orders the results by the error_count field.
func ByErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCount, opts...).ToFunc()
}

// ByPostsProcessed orders the results by the posts_processed field.
func ByPostsProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostsProcessed, opts...).ToFunc()
}

// ByCommentsProcessed orders the results by the comments_processed field.
func ByCommentsProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommentsProcessed, opts...).ToFunc()
}

// ByRelevantItems orders the results by the relevant_items field.
func ByRelevantItems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevantItems, opts...).ToFunc()
}

// BySummariesCreated orders the results by the summaries_created field.
func BySummariesCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummariesCreated, opts...).ToFunc()
}

// ByAlertsSent orders the results by the alerts_sent field.
func ByAlertsSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertsSent, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
