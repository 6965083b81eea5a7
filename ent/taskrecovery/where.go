// Code generated by ent, DO NOT EDIT.

package taskrecovery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/redscout/redscout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldContainsFold(FieldID, id))
}

// OriginalTaskID applies equality check predicate on the "original_task_id" field. It's identical to OriginalTaskIDEQ.
func OriginalTaskID(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldOriginalTaskID, v))
}

// RecoveryAttempt applies equality check predicate on the "recovery_attempt" field. It's identical to RecoveryAttemptEQ.
func RecoveryAttempt(v int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldRecoveryAttempt, v))
}

// MaxRecoveryAttempts applies equality check predicate on the "max_recovery_attempts" field. It's identical to MaxRecoveryAttemptsEQ.
func MaxRecoveryAttempts(v int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldMaxRecoveryAttempts, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldFailureReason, v))
}

// RecoveryStartedAt applies equality check predicate on the "recovery_started_at" field. It's identical to RecoveryStartedAtEQ.
func RecoveryStartedAt(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldRecoveryStartedAt, v))
}

// RecoveryCompletedAt applies equality check predicate on the "recovery_completed_at" field. It's identical to RecoveryCompletedAtEQ.
func RecoveryCompletedAt(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldRecoveryCompletedAt, v))
}

// RecoveryError applies equality check predicate on the "recovery_error" field. It's identical to RecoveryErrorEQ.
func RecoveryError(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldRecoveryError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldUpdatedAt, v))
}

// OriginalTaskIDEQ applies the EQ predicate on the "original_task_id" field.
func OriginalTaskIDEQ(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldOriginalTaskID, v))
}

// OriginalTaskIDNEQ applies the NEQ predicate on the "original_task_id" field.
func OriginalTaskIDNEQ(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNEQ(FieldOriginalTaskID, v))
}

// OriginalTaskIDIn applies the In predicate on the "original_task_id" field.
func OriginalTaskIDIn(vs ...string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIn(FieldOriginalTaskID, vs...))
}

// OriginalTaskIDNotIn applies the NotIn predicate on the "original_task_id" field.
func OriginalTaskIDNotIn(vs ...string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotIn(FieldOriginalTaskID, vs...))
}

// OriginalTaskIDGT applies the GT predicate on the "original_task_id" field.
func OriginalTaskIDGT(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGT(FieldOriginalTaskID, v))
}

// OriginalTaskIDGTE applies the GTE predicate on the "original_task_id" field.
func OriginalTaskIDGTE(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGTE(FieldOriginalTaskID, v))
}

// OriginalTaskIDLT applies the LT predicate on the "original_task_id" field.
func OriginalTaskIDLT(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLT(FieldOriginalTaskID, v))
}

// OriginalTaskIDLTE applies the LTE predicate on the "original_task_id" field.
func OriginalTaskIDLTE(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLTE(FieldOriginalTaskID, v))
}

// OriginalTaskIDContains applies the Contains predicate on the "original_task_id" field.
func OriginalTaskIDContains(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldContains(FieldOriginalTaskID, v))
}

// OriginalTaskIDHasPrefix applies the HasPrefix predicate on the "original_task_id" field.
func OriginalTaskIDHasPrefix(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldHasPrefix(FieldOriginalTaskID, v))
}

// OriginalTaskIDHasSuffix applies the HasSuffix predicate on the "original_task_id" field.
func OriginalTaskIDHasSuffix(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldHasSuffix(FieldOriginalTaskID, v))
}

// OriginalTaskIDEqualFold applies the EqualFold predicate on the "original_task_id" field.
func OriginalTaskIDEqualFold(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEqualFold(FieldOriginalTaskID, v))
}

// OriginalTaskIDContainsFold applies the ContainsFold predicate on the "original_task_id" field.
func OriginalTaskIDContainsFold(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldContainsFold(FieldOriginalTaskID, v))
}

// RecoveryStrategyEQ applies the EQ predicate on the "recovery_strategy" field.
func RecoveryStrategyEQ(v RecoveryStrategy) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldRecoveryStrategy, v))
}

// RecoveryStrategyNEQ applies the NEQ predicate on the "recovery_strategy" field.
func RecoveryStrategyNEQ(v RecoveryStrategy) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNEQ(FieldRecoveryStrategy, v))
}

// RecoveryStrategyIn applies the In predicate on the "recovery_strategy" field.
func RecoveryStrategyIn(vs ...RecoveryStrategy) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIn(FieldRecoveryStrategy, vs...))
}

// RecoveryStrategyNotIn applies the NotIn predicate on the "recovery_strategy" field.
func RecoveryStrategyNotIn(vs ...RecoveryStrategy) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotIn(FieldRecoveryStrategy, vs...))
}

// RecoveryStatusEQ applies the EQ predicate on the "recovery_status" field.
func RecoveryStatusEQ(v RecoveryStatus) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldRecoveryStatus, v))
}

// RecoveryStatusNEQ applies the NEQ predicate on the "recovery_status" field.
func RecoveryStatusNEQ(v RecoveryStatus) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNEQ(FieldRecoveryStatus, v))
}

// RecoveryStatusIn applies the In predicate on the "recovery_status" field.
func RecoveryStatusIn(vs ...RecoveryStatus) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIn(FieldRecoveryStatus, vs...))
}

// RecoveryStatusNotIn applies the NotIn predicate on the "recovery_status" field.
func RecoveryStatusNotIn(vs ...RecoveryStatus) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotIn(FieldRecoveryStatus, vs...))
}

// RecoveryAttemptEQ applies the EQ predicate on the "recovery_attempt" field.
func RecoveryAttemptEQ(v int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldRecoveryAttempt, v))
}

// RecoveryAttemptNEQ applies the NEQ predicate on the "recovery_attempt" field.
func RecoveryAttemptNEQ(v int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNEQ(FieldRecoveryAttempt, v))
}

// RecoveryAttemptIn applies the In predicate on the "recovery_attempt" field.
func RecoveryAttemptIn(vs ...int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIn(FieldRecoveryAttempt, vs...))
}

// RecoveryAttemptNotIn applies the NotIn predicate on the "recovery_attempt" field.
func RecoveryAttemptNotIn(vs ...int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotIn(FieldRecoveryAttempt, vs...))
}

// RecoveryAttemptGT applies the GT predicate on the "recovery_attempt" field.
func RecoveryAttemptGT(v int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGT(FieldRecoveryAttempt, v))
}

// RecoveryAttemptGTE applies the GTE predicate on the "recovery_attempt" field.
func RecoveryAttemptGTE(v int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGTE(FieldRecoveryAttempt, v))
}

// RecoveryAttemptLT applies the LT predicate on the "recovery_attempt" field.
func RecoveryAttemptLT(v int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLT(FieldRecoveryAttempt, v))
}

// RecoveryAttemptLTE applies the LTE predicate on the "recovery_attempt" field.
func RecoveryAttemptLTE(v int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLTE(FieldRecoveryAttempt, v))
}

// MaxRecoveryAttemptsEQ applies the EQ predicate on the "max_recovery_attempts" field.
func MaxRecoveryAttemptsEQ(v int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldMaxRecoveryAttempts, v))
}

// MaxRecoveryAttemptsNEQ applies the NEQ predicate on the "max_recovery_attempts" field.
func MaxRecoveryAttemptsNEQ(v int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNEQ(FieldMaxRecoveryAttempts, v))
}

// MaxRecoveryAttemptsIn applies the In predicate on the "max_recovery_attempts" field.
func MaxRecoveryAttemptsIn(vs ...int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIn(FieldMaxRecoveryAttempts, vs...))
}

// MaxRecoveryAttemptsNotIn applies the NotIn predicate on the "max_recovery_attempts" field.
func MaxRecoveryAttemptsNotIn(vs ...int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotIn(FieldMaxRecoveryAttempts, vs...))
}

// MaxRecoveryAttemptsGT applies the GT predicate on the "max_recovery_attempts" field.
func MaxRecoveryAttemptsGT(v int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGT(FieldMaxRecoveryAttempts, v))
}

// MaxRecoveryAttemptsGTE applies the GTE predicate on the "max_recovery_attempts" field.
func MaxRecoveryAttemptsGTE(v int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGTE(FieldMaxRecoveryAttempts, v))
}

// MaxRecoveryAttemptsLT applies the LT predicate on the "max_recovery_attempts" field.
func MaxRecoveryAttemptsLT(v int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLT(FieldMaxRecoveryAttempts, v))
}

// MaxRecoveryAttemptsLTE applies the LTE predicate on the "max_recovery_attempts" field.
func MaxRecoveryAttemptsLTE(v int) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLTE(FieldMaxRecoveryAttempts, v))
}

// CheckpointDataIsNil applies the IsNil predicate on the "checkpoint_data" field.
func CheckpointDataIsNil() predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIsNull(FieldCheckpointData))
}

// CheckpointDataNotNil applies the NotNil predicate on the "checkpoint_data" field.
func CheckpointDataNotNil() predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotNull(FieldCheckpointData))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldContainsFold(FieldFailureReason, v))
}

// RecoveryStartedAtEQ applies the EQ predicate on the "recovery_started_at" field.
func RecoveryStartedAtEQ(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldRecoveryStartedAt, v))
}

// RecoveryStartedAtNEQ applies the NEQ predicate on the "recovery_started_at" field.
func RecoveryStartedAtNEQ(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNEQ(FieldRecoveryStartedAt, v))
}

// RecoveryStartedAtIn applies the In predicate on the "recovery_started_at" field.
func RecoveryStartedAtIn(vs ...time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIn(FieldRecoveryStartedAt, vs...))
}

// RecoveryStartedAtNotIn applies the NotIn predicate on the "recovery_started_at" field.
func RecoveryStartedAtNotIn(vs ...time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotIn(FieldRecoveryStartedAt, vs...))
}

// RecoveryStartedAtGT applies the GT predicate on the "recovery_started_at" field.
func RecoveryStartedAtGT(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGT(FieldRecoveryStartedAt, v))
}

// RecoveryStartedAtGTE applies the GTE predicate on the "recovery_started_at" field.
func RecoveryStartedAtGTE(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGTE(FieldRecoveryStartedAt, v))
}

// RecoveryStartedAtLT applies the LT predicate on the "recovery_started_at" field.
func RecoveryStartedAtLT(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLT(FieldRecoveryStartedAt, v))
}

// RecoveryStartedAtLTE applies the LTE predicate on the "recovery_started_at" field.
func RecoveryStartedAtLTE(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLTE(FieldRecoveryStartedAt, v))
}

// RecoveryStartedAtIsNil applies the IsNil predicate on the "recovery_started_at" field.
func RecoveryStartedAtIsNil() predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIsNull(FieldRecoveryStartedAt))
}

// RecoveryStartedAtNotNil applies the NotNil predicate on the "recovery_started_at" field.
func RecoveryStartedAtNotNil() predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotNull(FieldRecoveryStartedAt))
}

// RecoveryCompletedAtEQ applies the EQ predicate on the "recovery_completed_at" field.
func RecoveryCompletedAtEQ(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldRecoveryCompletedAt, v))
}

// RecoveryCompletedAtNEQ applies the NEQ predicate on the "recovery_completed_at" field.
func RecoveryCompletedAtNEQ(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNEQ(FieldRecoveryCompletedAt, v))
}

// RecoveryCompletedAtIn applies the In predicate on the "recovery_completed_at" field.
func RecoveryCompletedAtIn(vs ...time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIn(FieldRecoveryCompletedAt, vs...))
}

// RecoveryCompletedAtNotIn applies the NotIn predicate on the "recovery_completed_at" field.
func RecoveryCompletedAtNotIn(vs ...time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotIn(FieldRecoveryCompletedAt, vs...))
}

// RecoveryCompletedAtGT applies the GT predicate on the "recovery_completed_at" field.
func RecoveryCompletedAtGT(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGT(FieldRecoveryCompletedAt, v))
}

// RecoveryCompletedAtGTE applies the GTE predicate on the "recovery_completed_at" field.
func RecoveryCompletedAtGTE(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGTE(FieldRecoveryCompletedAt, v))
}

// RecoveryCompletedAtLT applies the LT predicate on the "recovery_completed_at" field.
func RecoveryCompletedAtLT(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLT(FieldRecoveryCompletedAt, v))
}

// RecoveryCompletedAtLTE applies the LTE predicate on the "recovery_completed_at" field.
func RecoveryCompletedAtLTE(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLTE(FieldRecoveryCompletedAt, v))
}

// RecoveryCompletedAtIsNil applies the IsNil predicate on the "recovery_completed_at" field.
func RecoveryCompletedAtIsNil() predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIsNull(FieldRecoveryCompletedAt))
}

// RecoveryCompletedAtNotNil applies the NotNil predicate on the "recovery_completed_at" field.
func RecoveryCompletedAtNotNil() predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotNull(FieldRecoveryCompletedAt))
}

// RecoveryErrorEQ applies the EQ predicate on the "recovery_error" field.
func RecoveryErrorEQ(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldRecoveryError, v))
}

// RecoveryErrorNEQ applies the NEQ predicate on the "recovery_error" field.
func RecoveryErrorNEQ(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNEQ(FieldRecoveryError, v))
}

// RecoveryErrorIn applies the In predicate on the "recovery_error" field.
func RecoveryErrorIn(vs ...string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIn(FieldRecoveryError, vs...))
}

// RecoveryErrorNotIn applies the NotIn predicate on the "recovery_error" field.
func RecoveryErrorNotIn(vs ...string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotIn(FieldRecoveryError, vs...))
}

// RecoveryErrorGT applies the GT predicate on the "recovery_error" field.
func RecoveryErrorGT(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGT(FieldRecoveryError, v))
}

// RecoveryErrorGTE applies the GTE predicate on the "recovery_error" field.
func RecoveryErrorGTE(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGTE(FieldRecoveryError, v))
}

// RecoveryErrorLT applies the LT predicate on the "recovery_error" field.
func RecoveryErrorLT(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLT(FieldRecoveryError, v))
}

// RecoveryErrorLTE applies the LTE predicate on the "recovery_error" field.
func RecoveryErrorLTE(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLTE(FieldRecoveryError, v))
}

// RecoveryErrorContains applies the Contains predicate on the "recovery_error" field.
func RecoveryErrorContains(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldContains(FieldRecoveryError, v))
}

// RecoveryErrorHasPrefix applies the HasPrefix predicate on the "recovery_error" field.
func RecoveryErrorHasPrefix(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldHasPrefix(FieldRecoveryError, v))
}

// RecoveryErrorHasSuffix applies the HasSuffix predicate on the "recovery_error" field.
func RecoveryErrorHasSuffix(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldHasSuffix(FieldRecoveryError, v))
}

// RecoveryErrorIsNil applies the IsNil predicate on the "recovery_error" field.
func RecoveryErrorIsNil() predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIsNull(FieldRecoveryError))
}

// RecoveryErrorNotNil applies the NotNil predicate on the "recovery_error" field.
func RecoveryErrorNotNil() predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotNull(FieldRecoveryError))
}

// RecoveryErrorEqualFold applies the EqualFold predicate on the "recovery_error" field.
func RecoveryErrorEqualFold(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEqualFold(FieldRecoveryError, v))
}

// RecoveryErrorContainsFold applies the ContainsFold predicate on the "recovery_error" field.
func RecoveryErrorContainsFold(v string) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldContainsFold(FieldRecoveryError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskRecovery) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskRecovery) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskRecovery) predicate.TaskRecovery {
	return predicate.TaskRecovery(sql.NotPredicates(p))
}
