// Code generated by ent, DO NOT EDIT.

package contentdedup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/redscout/redscout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldContainsFold(FieldID, id))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldContentHash, v))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldExternalID, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldFirstSeenAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldProcessedAt, v))
}

// SourceAgent applies equality check predicate on the "source_agent" field. It's identical to SourceAgentEQ.
func SourceAgent(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldSourceAgent, v))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldWorkflowID, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldContainsFold(FieldContentHash, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v ContentType) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v ContentType) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...ContentType) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...ContentType) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNotIn(FieldContentType, vs...))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldContainsFold(FieldExternalID, v))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v ProcessingStatus) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v ProcessingStatus) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...ProcessingStatus) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...ProcessingStatus) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldLTE(FieldFirstSeenAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNotNull(FieldProcessedAt))
}

// SourceAgentEQ applies the EQ predicate on the "source_agent" field.
func SourceAgentEQ(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldSourceAgent, v))
}

// SourceAgentNEQ applies the NEQ predicate on the "source_agent" field.
func SourceAgentNEQ(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNEQ(FieldSourceAgent, v))
}

// SourceAgentIn applies the In predicate on the "source_agent" field.
func SourceAgentIn(vs ...string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldIn(FieldSourceAgent, vs...))
}

// SourceAgentNotIn applies the NotIn predicate on the "source_agent" field.
func SourceAgentNotIn(vs ...string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNotIn(FieldSourceAgent, vs...))
}

// SourceAgentGT applies the GT predicate on the "source_agent" field.
func SourceAgentGT(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldGT(FieldSourceAgent, v))
}

// SourceAgentGTE applies the GTE predicate on the "source_agent" field.
func SourceAgentGTE(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldGTE(FieldSourceAgent, v))
}

// SourceAgentLT applies the LT predicate on the "source_agent" field.
func SourceAgentLT(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldLT(FieldSourceAgent, v))
}

// SourceAgentLTE applies the LTE predicate on the "source_agent" field.
func SourceAgentLTE(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldLTE(FieldSourceAgent, v))
}

// SourceAgentContains applies the Contains predicate on the "source_agent" field.
func SourceAgentContains(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldContains(FieldSourceAgent, v))
}

// SourceAgentHasPrefix applies the HasPrefix predicate on the "source_agent" field.
func SourceAgentHasPrefix(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldHasPrefix(FieldSourceAgent, v))
}

// SourceAgentHasSuffix applies the HasSuffix predicate on the "source_agent" field.
func SourceAgentHasSuffix(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldHasSuffix(FieldSourceAgent, v))
}

// SourceAgentIsNil applies the IsNil predicate on the "source_agent" field.
func SourceAgentIsNil() predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldIsNull(FieldSourceAgent))
}

// SourceAgentNotNil applies the NotNil predicate on the "source_agent" field.
func SourceAgentNotNil() predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNotNull(FieldSourceAgent))
}

// SourceAgentEqualFold applies the EqualFold predicate on the "source_agent" field.
func SourceAgentEqualFold(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEqualFold(FieldSourceAgent, v))
}

// SourceAgentContainsFold applies the ContainsFold predicate on the "source_agent" field.
func SourceAgentContainsFold(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldContainsFold(FieldSourceAgent, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDIsNil applies the IsNil predicate on the "workflow_id" field.
func WorkflowIDIsNil() predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldIsNull(FieldWorkflowID))
}

// WorkflowIDNotNil applies the NotNil predicate on the "workflow_id" field.
func WorkflowIDNotNil() predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNotNull(FieldWorkflowID))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldContainsFold(FieldWorkflowID, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ContentDedup {
	return predicate.ContentDedup(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContentDedup) predicate.ContentDedup {
	return predicate.ContentDedup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContentDedup) predicate.ContentDedup {
	return predicate.ContentDedup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContentDedup) predicate.ContentDedup {
	return predicate.ContentDedup(sql.NotPredicates(p))
}
