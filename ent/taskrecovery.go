// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/redscout/redscout/ent/taskrecovery"
)

// TaskRecovery is the model entity for the TaskRecovery schema.
type TaskRecovery struct {
	config `json:"-"`
	// ID of the ent.
	// Recovery's own UUID
	ID string `json:"id,omitempty"`
	// OriginalTaskID holds the value of the "original_task_id" field.
	OriginalTaskID string `json:"original_task_id,omitempty"`
	// RecoveryStrategy holds the value of the "recovery_strategy" field.
	RecoveryStrategy taskrecovery.RecoveryStrategy `json:"recovery_strategy,omitempty"`
	// RecoveryStatus holds the value of the "recovery_status" field.
	RecoveryStatus taskrecovery.RecoveryStatus `json:"recovery_status,omitempty"`
	// RecoveryAttempt holds the value of the "recovery_attempt" field.
	RecoveryAttempt int `json:"recovery_attempt,omitempty"`
	// MaxRecoveryAttempts holds the value of the "max_recovery_attempts" field.
	MaxRecoveryAttempts int `json:"max_recovery_attempts,omitempty"`
	// CheckpointData holds the value of the "checkpoint_data" field.
	CheckpointData map[string]interface{} `json:"checkpoint_data,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// RecoveryStartedAt holds the value of the "recovery_started_at" field.
	RecoveryStartedAt *time.Time `json:"recovery_started_at,omitempty"`
	// RecoveryCompletedAt holds the value of the "recovery_completed_at" field.
	RecoveryCompletedAt *time.Time `json:"recovery_completed_at,omitempty"`
	// RecoveryError holds the value of the "recovery_error" field.
	RecoveryError *string `json:"recovery_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskRecovery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskrecovery.FieldCheckpointData:
			values[i] = new([]byte)
		case taskrecovery.FieldRecoveryAttempt, taskrecovery.FieldMaxRecoveryAttempts:
			values[i] = new(sql.NullInt64)
		case taskrecovery.FieldID, taskrecovery.FieldOriginalTaskID, taskrecovery.FieldRecoveryStrategy, taskrecovery.FieldRecoveryStatus, taskrecovery.FieldFailureReason, taskrecovery.FieldRecoveryError:
			values[i] = new(sql.NullString)
		case taskrecovery.FieldRecoveryStartedAt, taskrecovery.FieldRecoveryCompletedAt, taskrecovery.FieldCreatedAt, taskrecovery.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskRecovery fields.
func (_m *TaskRecovery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskrecovery.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case taskrecovery.FieldOriginalTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_task_id", values[i])
			} else if value.Valid {
				_m.OriginalTaskID = value.String
			}
		case taskrecovery.FieldRecoveryStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_strategy", values[i])
			} else if value.Valid {
				_m.RecoveryStrategy = taskrecovery.RecoveryStrategy(value.String)
			}
		case taskrecovery.FieldRecoveryStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_status", values[i])
			} else if value.Valid {
				_m.RecoveryStatus = taskrecovery.RecoveryStatus(value.String)
			}
		case taskrecovery.FieldRecoveryAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_attempt", values[i])
			} else if value.Valid {
				_m.RecoveryAttempt = int(value.Int64)
			}
		case taskrecovery.FieldMaxRecoveryAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_recovery_attempts", values[i])
			} else if value.Valid {
				_m.MaxRecoveryAttempts = int(value.Int64)
			}
		case taskrecovery.FieldCheckpointData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CheckpointData); err != nil {
					return fmt.Errorf("unmarshal field checkpoint_data: %w", err)
				}
			}
		case taskrecovery.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case taskrecovery.FieldRecoveryStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_started_at", values[i])
			} else if value.Valid {
				_m.RecoveryStartedAt = new(time.Time)
				*_m.RecoveryStartedAt = value.Time
			}
		case taskrecovery.FieldRecoveryCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_completed_at", values[i])
			} else if value.Valid {
				_m.RecoveryCompletedAt = new(time.Time)
				*_m.RecoveryCompletedAt = value.Time
			}
		case taskrecovery.FieldRecoveryError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_error", values[i])
			} else if value.Valid {
				_m.RecoveryError = new(string)
				*_m.RecoveryError = value.String
			}
		case taskrecovery.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case taskrecovery.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskRecovery.
// This includes values selected through modifiers, order, etc.
func (_m *TaskRecovery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TaskRecovery.
// Note that you need to call TaskRecovery.Unwrap() before calling this method if this TaskRecovery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskRecovery) Update() *TaskRecoveryUpdateOne {
	return NewTaskRecoveryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskRecovery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskRecovery) Unwrap() *TaskRecovery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskRecovery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskRecovery) String() string {
	var builder strings.Builder
	builder.WriteString("TaskRecovery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("original_task_id=")
	builder.WriteString(_m.OriginalTaskID)
	builder.WriteString(", ")
	builder.WriteString("recovery_strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecoveryStrategy))
	builder.WriteString(", ")
	builder.WriteString("recovery_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecoveryStatus))
	builder.WriteString(", ")
	builder.WriteString("recovery_attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecoveryAttempt))
	builder.WriteString(", ")
	builder.WriteString("max_recovery_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRecoveryAttempts))
	builder.WriteString(", ")
	builder.WriteString("checkpoint_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.CheckpointData))
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RecoveryStartedAt; v != nil {
		builder.WriteString("recovery_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RecoveryCompletedAt; v != nil {
		builder.WriteString("recovery_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RecoveryError; v != nil {
		builder.WriteString("recovery_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskRecoveries is a parsable slice of TaskRecovery.
type TaskRecoveries []*TaskRecovery
