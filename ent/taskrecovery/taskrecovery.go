// Code generated by ent, DO NOT EDIT.

package taskrecovery

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the taskrecovery type in the database.
	Label = "task_recovery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldOriginalTaskID holds the string denoting the original_task_id field in the database.
	FieldOriginalTaskID = "original_task_id"
	// FieldRecoveryStrategy holds the string denoting the recovery_strategy field in the database.
	FieldRecoveryStrategy = "recovery_strategy"
	// FieldRecoveryStatus holds the string denoting the recovery_status field in the database.
	FieldRecoveryStatus = "recovery_status"
	// FieldRecoveryAttempt holds the string denoting the recovery_attempt field in the database.
	FieldRecoveryAttempt = "recovery_attempt"
	// FieldMaxRecoveryAttempts holds the string denoting the max_recovery_attempts field in the database.
	FieldMaxRecoveryAttempts = "max_recovery_attempts"
	// FieldCheckpointData holds the string denoting the checkpoint_data field in the database.
	FieldCheckpointData = "checkpoint_data"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldRecoveryStartedAt holds the string denoting the recovery_started_at field in the database.
	FieldRecoveryStartedAt = "recovery_started_at"
	// FieldRecoveryCompletedAt holds the string denoting the recovery_completed_at field in the database.
	FieldRecoveryCompletedAt = "recovery_completed_at"
	// FieldRecoveryError holds the string denoting the recovery_error field in the database.
	FieldRecoveryError = "recovery_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the taskrecovery in the database.
	Table = "task_recoveries"
)

// Columns holds all SQL columns for taskrecovery fields.
var Columns = []string{
	FieldID,
	FieldOriginalTaskID,
	FieldRecoveryStrategy,
	FieldRecoveryStatus,
	FieldRecoveryAttempt,
	FieldMaxRecoveryAttempts,
	FieldCheckpointData,
	FieldFailureReason,
	FieldRecoveryStartedAt,
	FieldRecoveryCompletedAt,
	FieldRecoveryError,
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
	// DefaultRecoveryAttempt holds the default value on creation for the "recovery_attempt" field.
	DefaultRecoveryAttempt int
	// DefaultMaxRecoveryAttempts holds the default value on creation for the "max_recovery_attempts" field.
	DefaultMaxRecoveryAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// RecoveryStrategy defines the type for the "recovery_strategy" enum field.
type RecoveryStrategy string

// RecoveryStrategy values.
const (
	RecoveryStrategyRetry      RecoveryStrategy = "retry"
	RecoveryStrategyRollback   RecoveryStrategy = "rollback"
	RecoveryStrategySkip       RecoveryStrategy = "skip"
	RecoveryStrategyCheckpoint RecoveryStrategy = "checkpoint"
	RecoveryStrategyManual     RecoveryStrategy = "manual"
)

func (rs RecoveryStrategy) String() string {
	return string(rs)
}

// RecoveryStrategyValidator is a validator for the "recovery_strategy" field enum values. It is called by the builders before save.
func RecoveryStrategyValidator(rs RecoveryStrategy) error {
	switch rs {
	case RecoveryStrategyRetry, RecoveryStrategyRollback, RecoveryStrategySkip, RecoveryStrategyCheckpoint, RecoveryStrategyManual:
		return nil
	default:
		return fmt.Errorf("taskrecovery: invalid enum value for recovery_strategy field: %q", rs)
	}
}

// RecoveryStatus defines the type for the "recovery_status" enum field.
type RecoveryStatus string

// RecoveryStatusPending is the default value of the RecoveryStatus enum.
const DefaultRecoveryStatus = RecoveryStatusPending

// RecoveryStatus values.
const (
	RecoveryStatusPending    RecoveryStatus = "pending"
	RecoveryStatusRecovering RecoveryStatus = "recovering"
	RecoveryStatusCompleted  RecoveryStatus = "completed"
	RecoveryStatusFailed     RecoveryStatus = "failed"
)

func (rs RecoveryStatus) String() string {
	return string(rs)
}

// RecoveryStatusValidator is a validator for the "recovery_status" field enum values. It is called by the builders before save.
func RecoveryStatusValidator(rs RecoveryStatus) error {
	switch rs {
	case RecoveryStatusPending, RecoveryStatusRecovering, RecoveryStatusCompleted, RecoveryStatusFailed:
		return nil
	default:
		return fmt.Errorf("taskrecovery: invalid enum value for recovery_status field: %q", rs)
	}
}

// OrderOption defines the ordering options for the TaskRecovery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOriginalTaskID orders the results by the original_task_id field.
func ByOriginalTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalTaskID, opts...).ToFunc()
}

// ByRecoveryStrategy orders the results by the recovery_strategy field.
func ByRecoveryStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryStrategy, opts...).ToFunc()
}

// ByRecoveryStatus orders the results by the recovery_status field.
func ByRecoveryStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryStatus, opts...).ToFunc()
}

// ByRecoveryAttempt orders the results by the recovery_attempt field.
func ByRecoveryAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryAttempt, opts...).ToFunc()
}

// ByMaxRecoveryAttempts orders the results by the max_recovery_attempts field.
func ByMaxRecoveryAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRecoveryAttempts, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByRecoveryStartedAt orders the results by the recovery_started_at field.
func ByRecoveryStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryStartedAt, opts...).ToFunc()
}

// ByRecoveryCompletedAt orders the results by the recovery_completed_at field.
func ByRecoveryCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryCompletedAt, opts...).ToFunc()
}

// ByRecoveryError orders the results by the recovery_error field.
func ByRecoveryError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
