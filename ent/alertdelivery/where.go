// Code generated by ent, DO NOT EDIT.

package alertdelivery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/redscout/redscout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContainsFold(FieldID, id))
}

// AlertBatchID applies equality check predicate on the "alert_batch_id" field. It's identical to AlertBatchIDEQ.
func AlertBatchID(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldAlertBatchID, v))
}

// Channel applies equality check predicate on the "channel" field. It's identical to ChannelEQ.
func Channel(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldChannel, v))
}

// Recipient applies equality check predicate on the "recipient" field. It's identical to RecipientEQ.
func Recipient(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldRecipient, v))
}

// WebhookURL applies equality check predicate on the "webhook_url" field. It's identical to WebhookURLEQ.
func WebhookURL(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldWebhookURL, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldMessageID, v))
}

// DedupHash applies equality check predicate on the "dedup_hash" field. It's identical to DedupHashEQ.
func DedupHash(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldDedupHash, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldSentAt, v))
}

// DeliveryTimeMs applies equality check predicate on the "delivery_time_ms" field. It's identical to DeliveryTimeMsEQ.
func DeliveryTimeMs(v int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldDeliveryTimeMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldRetryCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldCreatedAt, v))
}

// AlertBatchIDEQ applies the EQ predicate on the "alert_batch_id" field.
func AlertBatchIDEQ(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldAlertBatchID, v))
}

// AlertBatchIDNEQ applies the NEQ predicate on the "alert_batch_id" field.
func AlertBatchIDNEQ(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNEQ(FieldAlertBatchID, v))
}

// AlertBatchIDIn applies the In predicate on the "alert_batch_id" field.
func AlertBatchIDIn(vs ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIn(FieldAlertBatchID, vs...))
}

// AlertBatchIDNotIn applies the NotIn predicate on the "alert_batch_id" field.
func AlertBatchIDNotIn(vs ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotIn(FieldAlertBatchID, vs...))
}

// AlertBatchIDGT applies the GT predicate on the "alert_batch_id" field.
func AlertBatchIDGT(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGT(FieldAlertBatchID, v))
}

// AlertBatchIDGTE applies the GTE predicate on the "alert_batch_id" field.
func AlertBatchIDGTE(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGTE(FieldAlertBatchID, v))
}

// AlertBatchIDLT applies the LT predicate on the "alert_batch_id" field.
func AlertBatchIDLT(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLT(FieldAlertBatchID, v))
}

// AlertBatchIDLTE applies the LTE predicate on the "alert_batch_id" field.
func AlertBatchIDLTE(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLTE(FieldAlertBatchID, v))
}

// AlertBatchIDContains applies the Contains predicate on the "alert_batch_id" field.
func AlertBatchIDContains(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContains(FieldAlertBatchID, v))
}

// AlertBatchIDHasPrefix applies the HasPrefix predicate on the "alert_batch_id" field.
func AlertBatchIDHasPrefix(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldHasPrefix(FieldAlertBatchID, v))
}

// AlertBatchIDHasSuffix applies the HasSuffix predicate on the "alert_batch_id" field.
func AlertBatchIDHasSuffix(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldHasSuffix(FieldAlertBatchID, v))
}

// AlertBatchIDEqualFold applies the EqualFold predicate on the "alert_batch_id" field.
func AlertBatchIDEqualFold(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEqualFold(FieldAlertBatchID, v))
}

// AlertBatchIDContainsFold applies the ContainsFold predicate on the "alert_batch_id" field.
func AlertBatchIDContainsFold(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContainsFold(FieldAlertBatchID, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotIn(FieldChannel, vs...))
}

// ChannelGT applies the GT predicate on the "channel" field.
func ChannelGT(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGT(FieldChannel, v))
}

// ChannelGTE applies the GTE predicate on the "channel" field.
func ChannelGTE(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGTE(FieldChannel, v))
}

// ChannelLT applies the LT predicate on the "channel" field.
func ChannelLT(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLT(FieldChannel, v))
}

// ChannelLTE applies the LTE predicate on the "channel" field.
func ChannelLTE(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLTE(FieldChannel, v))
}

// ChannelContains applies the Contains predicate on the "channel" field.
func ChannelContains(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContains(FieldChannel, v))
}

// ChannelHasPrefix applies the HasPrefix predicate on the "channel" field.
func ChannelHasPrefix(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldHasPrefix(FieldChannel, v))
}

// ChannelHasSuffix applies the HasSuffix predicate on the "channel" field.
func ChannelHasSuffix(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldHasSuffix(FieldChannel, v))
}

// ChannelEqualFold applies the EqualFold predicate on the "channel" field.
func ChannelEqualFold(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEqualFold(FieldChannel, v))
}

// ChannelContainsFold applies the ContainsFold predicate on the "channel" field.
func ChannelContainsFold(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContainsFold(FieldChannel, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotIn(FieldStatus, vs...))
}

// RecipientEQ applies the EQ predicate on the "recipient" field.
func RecipientEQ(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldRecipient, v))
}

// RecipientNEQ applies the NEQ predicate on the "recipient" field.
func RecipientNEQ(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNEQ(FieldRecipient, v))
}

// RecipientIn applies the In predicate on the "recipient" field.
func RecipientIn(vs ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIn(FieldRecipient, vs...))
}

// RecipientNotIn applies the NotIn predicate on the "recipient" field.
func RecipientNotIn(vs ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotIn(FieldRecipient, vs...))
}

// RecipientGT applies the GT predicate on the "recipient" field.
func RecipientGT(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGT(FieldRecipient, v))
}

// RecipientGTE applies the GTE predicate on the "recipient" field.
func RecipientGTE(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGTE(FieldRecipient, v))
}

// RecipientLT applies the LT predicate on the "recipient" field.
func RecipientLT(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLT(FieldRecipient, v))
}

// RecipientLTE applies the LTE predicate on the "recipient" field.
func RecipientLTE(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLTE(FieldRecipient, v))
}

// RecipientContains applies the Contains predicate on the "recipient" field.
func RecipientContains(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContains(FieldRecipient, v))
}

// RecipientHasPrefix applies the HasPrefix predicate on the "recipient" field.
func RecipientHasPrefix(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldHasPrefix(FieldRecipient, v))
}

// RecipientHasSuffix applies the HasSuffix predicate on the "recipient" field.
func RecipientHasSuffix(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldHasSuffix(FieldRecipient, v))
}

// RecipientIsNil applies the IsNil predicate on the "recipient" field.
func RecipientIsNil() predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIsNull(FieldRecipient))
}

// RecipientNotNil applies the NotNil predicate on the "recipient" field.
func RecipientNotNil() predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotNull(FieldRecipient))
}

// RecipientEqualFold applies the EqualFold predicate on the "recipient" field.
func RecipientEqualFold(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEqualFold(FieldRecipient, v))
}

// RecipientContainsFold applies the ContainsFold predicate on the "recipient" field.
func RecipientContainsFold(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContainsFold(FieldRecipient, v))
}

// WebhookURLEQ applies the EQ predicate on the "webhook_url" field.
func WebhookURLEQ(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldWebhookURL, v))
}

// WebhookURLNEQ applies the NEQ predicate on the "webhook_url" field.
func WebhookURLNEQ(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNEQ(FieldWebhookURL, v))
}

// WebhookURLIn applies the In predicate on the "webhook_url" field.
func WebhookURLIn(vs ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIn(FieldWebhookURL, vs...))
}

// WebhookURLNotIn applies the NotIn predicate on the "webhook_url" field.
func WebhookURLNotIn(vs ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotIn(FieldWebhookURL, vs...))
}

// WebhookURLGT applies the GT predicate on the "webhook_url" field.
func WebhookURLGT(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGT(FieldWebhookURL, v))
}

// WebhookURLGTE applies the GTE predicate on the "webhook_url" field.
func WebhookURLGTE(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGTE(FieldWebhookURL, v))
}

// WebhookURLLT applies the LT predicate on the "webhook_url" field.
func WebhookURLLT(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLT(FieldWebhookURL, v))
}

// WebhookURLLTE applies the LTE predicate on the "webhook_url" field.
func WebhookURLLTE(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLTE(FieldWebhookURL, v))
}

// WebhookURLContains applies the Contains predicate on the "webhook_url" field.
func WebhookURLContains(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContains(FieldWebhookURL, v))
}

// WebhookURLHasPrefix applies the HasPrefix predicate on the "webhook_url" field.
func WebhookURLHasPrefix(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldHasPrefix(FieldWebhookURL, v))
}

// WebhookURLHasSuffix applies the HasSuffix predicate on the "webhook_url" field.
func WebhookURLHasSuffix(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldHasSuffix(FieldWebhookURL, v))
}

// WebhookURLIsNil applies the IsNil predicate on the "webhook_url" field.
func WebhookURLIsNil() predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIsNull(FieldWebhookURL))
}

// WebhookURLNotNil applies the NotNil predicate on the "webhook_url" field.
func WebhookURLNotNil() predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotNull(FieldWebhookURL))
}

// WebhookURLEqualFold applies the EqualFold predicate on the "webhook_url" field.
func WebhookURLEqualFold(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEqualFold(FieldWebhookURL, v))
}

// WebhookURLContainsFold applies the ContainsFold predicate on the "webhook_url" field.
func WebhookURLContainsFold(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContainsFold(FieldWebhookURL, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDIsNil applies the IsNil predicate on the "message_id" field.
func MessageIDIsNil() predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIsNull(FieldMessageID))
}

// MessageIDNotNil applies the NotNil predicate on the "message_id" field.
func MessageIDNotNil() predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotNull(FieldMessageID))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContainsFold(FieldMessageID, v))
}

// DedupHashEQ applies the EQ predicate on the "dedup_hash" field.
func DedupHashEQ(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldDedupHash, v))
}

// DedupHashNEQ applies the NEQ predicate on the "dedup_hash" field.
func DedupHashNEQ(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNEQ(FieldDedupHash, v))
}

// DedupHashIn applies the In predicate on the "dedup_hash" field.
func DedupHashIn(vs ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIn(FieldDedupHash, vs...))
}

// DedupHashNotIn applies the NotIn predicate on the "dedup_hash" field.
func DedupHashNotIn(vs ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotIn(FieldDedupHash, vs...))
}

// DedupHashGT applies the GT predicate on the "dedup_hash" field.
func DedupHashGT(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGT(FieldDedupHash, v))
}

// DedupHashGTE applies the GTE predicate on the "dedup_hash" field.
func DedupHashGTE(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGTE(FieldDedupHash, v))
}

// DedupHashLT applies the LT predicate on the "dedup_hash" field.
func DedupHashLT(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLT(FieldDedupHash, v))
}

// DedupHashLTE applies the LTE predicate on the "dedup_hash" field.
func DedupHashLTE(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLTE(FieldDedupHash, v))
}

// DedupHashContains applies the Contains predicate on the "dedup_hash" field.
func DedupHashContains(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContains(FieldDedupHash, v))
}

// DedupHashHasPrefix applies the HasPrefix predicate on the "dedup_hash" field.
func DedupHashHasPrefix(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldHasPrefix(FieldDedupHash, v))
}

// DedupHashHasSuffix applies the HasSuffix predicate on the "dedup_hash" field.
func DedupHashHasSuffix(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldHasSuffix(FieldDedupHash, v))
}

// DedupHashIsNil applies the IsNil predicate on the "dedup_hash" field.
func DedupHashIsNil() predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIsNull(FieldDedupHash))
}

// DedupHashNotNil applies the NotNil predicate on the "dedup_hash" field.
func DedupHashNotNil() predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotNull(FieldDedupHash))
}

// DedupHashEqualFold applies the EqualFold predicate on the "dedup_hash" field.
func DedupHashEqualFold(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEqualFold(FieldDedupHash, v))
}

// DedupHashContainsFold applies the ContainsFold predicate on the "dedup_hash" field.
func DedupHashContainsFold(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContainsFold(FieldDedupHash, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotNull(FieldSentAt))
}

// DeliveryTimeMsEQ applies the EQ predicate on the "delivery_time_ms" field.
func DeliveryTimeMsEQ(v int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldDeliveryTimeMs, v))
}

// DeliveryTimeMsNEQ applies the NEQ predicate on the "delivery_time_ms" field.
func DeliveryTimeMsNEQ(v int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNEQ(FieldDeliveryTimeMs, v))
}

// DeliveryTimeMsIn applies the In predicate on the "delivery_time_ms" field.
func DeliveryTimeMsIn(vs ...int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIn(FieldDeliveryTimeMs, vs...))
}

// DeliveryTimeMsNotIn applies the NotIn predicate on the "delivery_time_ms" field.
func DeliveryTimeMsNotIn(vs ...int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotIn(FieldDeliveryTimeMs, vs...))
}

// DeliveryTimeMsGT applies the GT predicate on the "delivery_time_ms" field.
func DeliveryTimeMsGT(v int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGT(FieldDeliveryTimeMs, v))
}

// DeliveryTimeMsGTE applies the GTE predicate on the "delivery_time_ms" field.
func DeliveryTimeMsGTE(v int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGTE(FieldDeliveryTimeMs, v))
}

// DeliveryTimeMsLT applies the LT predicate on the "delivery_time_ms" field.
func DeliveryTimeMsLT(v int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLT(FieldDeliveryTimeMs, v))
}

// DeliveryTimeMsLTE applies the LTE predicate on the "delivery_time_ms" field.
func DeliveryTimeMsLTE(v int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLTE(FieldDeliveryTimeMs, v))
}

// DeliveryTimeMsIsNil applies the IsNil predicate on the "delivery_time_ms" field.
func DeliveryTimeMsIsNil() predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIsNull(FieldDeliveryTimeMs))
}

// DeliveryTimeMsNotNil applies the NotNil predicate on the "delivery_time_ms" field.
func DeliveryTimeMsNotNil() predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotNull(FieldDeliveryTimeMs))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLTE(FieldRetryCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBatch applies the HasEdge predicate on the "batch" edge.
func HasBatch() predicate.AlertDelivery {
	return predicate.AlertDelivery(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchWith applies the HasEdge predicate on the "batch" edge with a given conditions (other predicates).
func HasBatchWith(preds ...predicate.AlertBatch) predicate.AlertDelivery {
	return predicate.AlertDelivery(func(s *sql.Selector) {
		step := newBatchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AlertDelivery) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AlertDelivery) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AlertDelivery) predicate.AlertDelivery {
	return predicate.AlertDelivery(sql.NotPredicates(p))
}
