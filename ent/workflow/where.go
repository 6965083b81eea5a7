// Code generated by ent, DO NOT EDIT.

package workflow

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/redscout/redscout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldID, id))
}

// WorkflowType applies equality check predicate on the "workflow_type" field. It's identical to WorkflowTypeEQ.
func WorkflowType(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldWorkflowType, v))
}

// Schedule applies equality check predicate on the "schedule" field. It's identical to ScheduleEQ.
func Schedule(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldSchedule, v))
}

// LastRun applies equality check predicate on the "last_run" field. It's identical to LastRunEQ.
func LastRun(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldLastRun, v))
}

// NextRun applies equality check predicate on the "next_run" field. It's identical to NextRunEQ.
func NextRun(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldNextRun, v))
}

// RunCount applies equality check predicate on the "run_count" field. It's identical to RunCountEQ.
func RunCount(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldRunCount, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldErrorCount, v))
}

// PostsProcessed applies equality check predicate on the "posts_processed" field. It's identical to PostsProcessedEQ.
func PostsProcessed(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldPostsProcessed, v))
}

// CommentsProcessed applies equality check predicate on the "comments_processed" field. It's identical to CommentsProcessedEQ.
func CommentsProcessed(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCommentsProcessed, v))
}

// RelevantItems applies equality check predicate on the "relevant_items" field. It's identical to RelevantItemsEQ.
func RelevantItems(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldRelevantItems, v))
}

// SummariesCreated applies equality check predicate on the "summaries_created" field. It's identical to SummariesCreatedEQ.
func SummariesCreated(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldSummariesCreated, v))
}

// AlertsSent applies equality check predicate on the "alerts_sent" field. It's identical to AlertsSentEQ.
func AlertsSent(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldAlertsSent, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkflowTypeEQ applies the EQ predicate on the "workflow_type" field.
func WorkflowTypeEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldWorkflowType, v))
}

// WorkflowTypeNEQ applies the NEQ predicate on the "workflow_type" field.
func WorkflowTypeNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldWorkflowType, v))
}

// WorkflowTypeIn applies the In predicate on the "workflow_type" field.
func WorkflowTypeIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldWorkflowType, vs...))
}

// WorkflowTypeNotIn applies the NotIn predicate on the "workflow_type" field.
func WorkflowTypeNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldWorkflowType, vs...))
}

// WorkflowTypeGT applies the GT predicate on the "workflow_type" field.
func WorkflowTypeGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldWorkflowType, v))
}

// WorkflowTypeGTE applies the GTE predicate on the "workflow_type" field.
func WorkflowTypeGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldWorkflowType, v))
}

// WorkflowTypeLT applies the LT predicate on the "workflow_type" field.
func WorkflowTypeLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldWorkflowType, v))
}

// WorkflowTypeLTE applies the LTE predicate on the "workflow_type" field.
func WorkflowTypeLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldWorkflowType, v))
}

// WorkflowTypeContains applies the Contains predicate on the "workflow_type" field.
func WorkflowTypeContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldWorkflowType, v))
}

// WorkflowTypeHasPrefix applies the HasPrefix predicate on the "workflow_type" field.
func WorkflowTypeHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldWorkflowType, v))
}

// WorkflowTypeHasSuffix applies the HasSuffix predicate on the "workflow_type" field.
func WorkflowTypeHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldWorkflowType, v))
}

// WorkflowTypeEqualFold applies the EqualFold predicate on the "workflow_type" field.
func WorkflowTypeEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldWorkflowType, v))
}

// WorkflowTypeContainsFold applies the ContainsFold predicate on the "workflow_type" field.
func WorkflowTypeContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldWorkflowType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldStatus, vs...))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldConfig))
}

// ScheduleEQ applies the EQ predicate on the "schedule" field.
func ScheduleEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldSchedule, v))
}

// ScheduleNEQ applies the NEQ predicate on the "schedule" field.
func ScheduleNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldSchedule, v))
}

// ScheduleIn applies the In predicate on the "schedule" field.
func ScheduleIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldSchedule, vs...))
}

// ScheduleNotIn applies the NotIn predicate on the "schedule" field.
func ScheduleNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldSchedule, vs...))
}

// ScheduleGT applies the GT predicate on the "schedule" field.
func ScheduleGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldSchedule, v))
}

// ScheduleGTE applies the GTE predicate on the "schedule" field.
func ScheduleGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldSchedule, v))
}

// ScheduleLT applies the LT predicate on the "schedule" field.
func ScheduleLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldSchedule, v))
}

// ScheduleLTE applies the LTE predicate on the "schedule" field.
func ScheduleLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldSchedule, v))
}

// ScheduleContains applies the Contains predicate on the "schedule" field.
func ScheduleContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldSchedule, v))
}

// ScheduleHasPrefix applies the HasPrefix predicate on the "schedule" field.
func ScheduleHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldSchedule, v))
}

// ScheduleHasSuffix applies the HasSuffix predicate on the "schedule" field.
func ScheduleHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldSchedule, v))
}

// ScheduleIsNil applies the IsNil predicate on the "schedule" field.
func ScheduleIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldSchedule))
}

// ScheduleNotNil applies the NotNil predicate on the "schedule" field.
func ScheduleNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldSchedule))
}

// ScheduleEqualFold applies the EqualFold predicate on the "schedule" field.
func ScheduleEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldSchedule, v))
}

// ScheduleContainsFold applies the ContainsFold predicate on the "schedule" field.
func ScheduleContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldSchedule, v))
}

// LastRunEQ applies the EQ predicate on the "last_run" field.
func LastRunEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldLastRun, v))
}

// LastRunNEQ applies the NEQ predicate on the "last_run" field.
func LastRunNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldLastRun, v))
}

// LastRunIn applies the In predicate on the "last_run" field.
func LastRunIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldLastRun, vs...))
}

// LastRunNotIn applies the NotIn predicate on the "last_run" field.
func LastRunNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldLastRun, vs...))
}

// LastRunGT applies the GT predicate on the "last_run" field.
func LastRunGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldLastRun, v))
}

// LastRunGTE applies the GTE predicate on the "last_run" field.
func LastRunGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldLastRun, v))
}

// LastRunLT applies the LT predicate on the "last_run" field.
func LastRunLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldLastRun, v))
}

// LastRunLTE applies the LTE predicate on the "last_run" field.
func LastRunLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldLastRun, v))
}

// LastRunIsNil applies the IsNil predicate on the "last_run" field.
func LastRunIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldLastRun))
}

// LastRunNotNil applies the NotNil predicate on the "last_run" field.
func LastRunNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldLastRun))
}

// NextRunEQ applies the EQ predicate on the "next_run" field.
func NextRunEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldNextRun, v))
}

// NextRunNEQ applies the NEQ predicate on the "next_run" field.
func NextRunNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldNextRun, v))
}

// NextRunIn applies the In predicate on the "next_run" field.
func NextRunIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldNextRun, vs...))
}

// NextRunNotIn applies the NotIn predicate on the "next_run" field.
func NextRunNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldNextRun, vs...))
}

// NextRunGT applies the GT predicate on the "next_run" field.
func NextRunGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldNextRun, v))
}

// NextRunGTE applies the GTE predicate on the "next_run" field.
func NextRunGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldNextRun, v))
}

// NextRunLT applies the LT predicate on the "next_run" field.
func NextRunLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldNextRun, v))
}

// NextRunLTE applies the LTE predicate on the "next_run" field.
func NextRunLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldNextRun, v))
}

// NextRunIsNil applies the IsNil predicate on the "next_run" field.
func NextRunIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldNextRun))
}

// NextRunNotNil applies the NotNil predicate on the "next_run" field.
func NextRunNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldNextRun))
}

// RunCountEQ applies the EQ predicate on the "run_count" field.
func RunCountEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldRunCount, v))
}

// RunCountNEQ applies the NEQ predicate on the "run_count" field.
func RunCountNEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldRunCount, v))
}

// RunCountIn applies the In predicate on the "run_count" field.
func RunCountIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldRunCount, vs...))
}

// RunCountNotIn applies the NotIn predicate on the "run_count" field.
func RunCountNotIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldRunCount, vs...))
}

// RunCountGT applies the GT predicate on the "run_count" field.
func RunCountGT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldRunCount, v))
}

// RunCountGTE applies the GTE predicate on the "run_count" field.
func RunCountGTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldRunCount, v))
}

// RunCountLT applies the LT predicate on the "run_count" field.
func RunCountLT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldRunCount, v))
}

// RunCountLTE applies the LTE predicate on the "run_count" field.
func RunCountLTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldRunCount, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldErrorCount, v))
}

// PostsProcessedEQ applies the EQ predicate on the "posts_processed" field.
func PostsProcessedEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldPostsProcessed, v))
}

// PostsProcessedNEQ applies the NEQ predicate on the "posts_processed" field.
func PostsProcessedNEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldPostsProcessed, v))
}

// PostsProcessedIn applies the In predicate on the "posts_processed" field.
func PostsProcessedIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldPostsProcessed, vs...))
}

// PostsProcessedNotIn applies the NotIn predicate on the "posts_processed" field.
func PostsProcessedNotIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldPostsProcessed, vs...))
}

// PostsProcessedGT applies the GT predicate on the "posts_processed" field.
func PostsProcessedGT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldPostsProcessed, v))
}

// PostsProcessedGTE applies the GTE predicate on the "posts_processed" field.
func PostsProcessedGTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldPostsProcessed, v))
}

// PostsProcessedLT applies the LT predicate on the "posts_processed" field.
func PostsProcessedLT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldPostsProcessed, v))
}

// PostsProcessedLTE applies the LTE predicate on the "posts_processed" field.
func PostsProcessedLTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldPostsProcessed, v))
}

// CommentsProcessedEQ applies the EQ predicate on the "comments_processed" field.
func CommentsProcessedEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCommentsProcessed, v))
}

// CommentsProcessedNEQ applies the NEQ predicate on the "comments_processed" field.
func CommentsProcessedNEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldCommentsProcessed, v))
}

// CommentsProcessedIn applies the In predicate on the "comments_processed" field.
func CommentsProcessedIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldCommentsProcessed, vs...))
}

// CommentsProcessedNotIn applies the NotIn predicate on the "comments_processed" field.
func CommentsProcessedNotIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldCommentsProcessed, vs...))
}

// CommentsProcessedGT applies the GT predicate on the "comments_processed" field.
func CommentsProcessedGT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldCommentsProcessed, v))
}

// CommentsProcessedGTE applies the GTE predicate on the "comments_processed" field.
func CommentsProcessedGTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldCommentsProcessed, v))
}

// CommentsProcessedLT applies the LT predicate on the "comments_processed" field.
func CommentsProcessedLT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldCommentsProcessed, v))
}

// CommentsProcessedLTE applies the LTE predicate on the "comments_processed" field.
func CommentsProcessedLTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldCommentsProcessed, v))
}

// RelevantItemsEQ applies the EQ predicate on the "relevant_items" field.
func RelevantItemsEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldRelevantItems, v))
}

// RelevantItemsNEQ applies the NEQ predicate on the "relevant_items" field.
func RelevantItemsNEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldRelevantItems, v))
}

// RelevantItemsIn applies the In predicate on the "relevant_items" field.
func RelevantItemsIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldRelevantItems, vs...))
}

// RelevantItemsNotIn applies the NotIn predicate on the "relevant_items" field.
func RelevantItemsNotIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldRelevantItems, vs...))
}

// RelevantItemsGT applies the GT predicate on the "relevant_items" field.
func RelevantItemsGT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldRelevantItems, v))
}

// RelevantItemsGTE applies the GTE predicate on the "relevant_items" field.
func RelevantItemsGTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldRelevantItems, v))
}

// RelevantItemsLT applies the LT predicate on the "relevant_items" field.
func RelevantItemsLT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldRelevantItems, v))
}

// RelevantItemsLTE applies the LTE predicate on the "relevant_items" field.
func RelevantItemsLTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldRelevantItems, v))
}

// SummariesCreatedEQ applies the EQ predicate on the "summaries_created" field.
func SummariesCreatedEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldSummariesCreated, v))
}

// SummariesCreatedNEQ applies the NEQ predicate on the "summaries_created" field.
func SummariesCreatedNEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldSummariesCreated, v))
}

// SummariesCreatedIn applies the In predicate on the "summaries_created" field.
func SummariesCreatedIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldSummariesCreated, vs...))
}

// SummariesCreatedNotIn applies the NotIn predicate on the "summaries_created" field.
func SummariesCreatedNotIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldSummariesCreated, vs...))
}

// SummariesCreatedGT applies the GT predicate on the "summaries_created" field.
func SummariesCreatedGT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldSummariesCreated, v))
}

// SummariesCreatedGTE applies the GTE predicate on the "summaries_created" field.
func SummariesCreatedGTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldSummariesCreated, v))
}

// SummariesCreatedLT applies the LT predicate on the "summaries_created" field.
func SummariesCreatedLT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldSummariesCreated, v))
}

// SummariesCreatedLTE applies the LTE predicate on the "summaries_created" field.
func SummariesCreatedLTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldSummariesCreated, v))
}

// AlertsSentEQ applies the EQ predicate on the "alerts_sent" field.
func AlertsSentEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldAlertsSent, v))
}

// AlertsSentNEQ applies the NEQ predicate on the "alerts_sent" field.
func AlertsSentNEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldAlertsSent, v))
}

// AlertsSentIn applies the In predicate on the "alerts_sent" field.
func AlertsSentIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldAlertsSent, vs...))
}

// AlertsSentNotIn applies the NotIn predicate on the "alerts_sent" field.
func AlertsSentNotIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldAlertsSent, vs...))
}

// AlertsSentGT applies the GT predicate on the "alerts_sent" field.
func AlertsSentGT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldAlertsSent, v))
}

// AlertsSentGTE applies the GTE predicate on the "alerts_sent" field.
func AlertsSentGTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldAlertsSent, v))
}

// AlertsSentLT applies the LT predicate on the "alerts_sent" field.
func AlertsSentLT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldAlertsSent, v))
}

// AlertsSentLTE applies the LTE predicate on the "alerts_sent" field.
func AlertsSentLTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldAlertsSent, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.NotPredicates(p))
}
