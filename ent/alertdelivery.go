// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/redscout/redscout/ent/alertbatch"
	"github.com/redscout/redscout/ent/alertdelivery"
)

// AlertDelivery is the model entity for the AlertDelivery schema.
type AlertDelivery struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AlertBatchID holds the value of the "alert_batch_id" field.
	AlertBatchID string `json:"alert_batch_id,omitempty"`
	// 'slack' or 'email'
	Channel string `json:"channel,omitempty"`
	// Status holds the value of the "status" field.
	Status alertdelivery.Status `json:"status,omitempty"`
	// Email address; empty for webhook channels
	Recipient string `json:"recipient,omitempty"`
	// WebhookURL holds the value of the "webhook_url" field.
	WebhookURL *string `json:"webhook_url,omitempty"`
	// MessageID holds the value of the "message_id" field.
	MessageID *string `json:"message_id,omitempty"`
	// DedupHash holds the value of the "dedup_hash" field.
	DedupHash *string `json:"dedup_hash,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt *time.Time `json:"sent_at,omitempty"`
	// DeliveryTimeMs holds the value of the "delivery_time_ms" field.
	DeliveryTimeMs *int `json:"delivery_time_ms,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AlertDeliveryQuery when eager-loading is set.
	Edges        AlertDeliveryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AlertDeliveryEdges holds the relations/edges for other nodes in the graph.
type AlertDeliveryEdges struct {
	// Batch holds the value of the batch edge.
	Batch *AlertBatch `json:"batch,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BatchOrErr returns the Batch value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AlertDeliveryEdges) BatchOrErr() (*AlertBatch, error) {
	if e.Batch != nil {
		return e.Batch, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: alertbatch.Label}
	}
	return nil, &NotLoadedError{edge: "batch"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AlertDelivery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case alertdelivery.FieldDeliveryTimeMs, alertdelivery.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case alertdelivery.FieldID, alertdelivery.FieldAlertBatchID, alertdelivery.FieldChannel, alertdelivery.FieldStatus, alertdelivery.FieldRecipient, alertdelivery.FieldWebhookURL, alertdelivery.FieldMessageID, alertdelivery.FieldDedupHash, alertdelivery.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case alertdelivery.FieldSentAt, alertdelivery.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AlertDelivery fields.
func (_m *AlertDelivery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case alertdelivery.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case alertdelivery.FieldAlertBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_batch_id", values[i])
			} else if value.Valid {
				_m.AlertBatchID = value.String
			}
		case alertdelivery.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = value.String
			}
		case alertdelivery.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = alertdelivery.Status(value.String)
			}
		case alertdelivery.FieldRecipient:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient", values[i])
			} else if value.Valid {
				_m.Recipient = value.String
			}
		case alertdelivery.FieldWebhookURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_url", values[i])
			} else if value.Valid {
				_m.WebhookURL = new(string)
				*_m.WebhookURL = value.String
			}
		case alertdelivery.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = new(string)
				*_m.MessageID = value.String
			}
		case alertdelivery.FieldDedupHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dedup_hash", values[i])
			} else if value.Valid {
				_m.DedupHash = new(string)
				*_m.DedupHash = value.String
			}
		case alertdelivery.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = new(time.Time)
				*_m.SentAt = value.Time
			}
		case alertdelivery.FieldDeliveryTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_time_ms", values[i])
			} else if value.Valid {
				_m.DeliveryTimeMs = new(int)
				*_m.DeliveryTimeMs = int(value.Int64)
			}
		case alertdelivery.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case alertdelivery.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case alertdelivery.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AlertDelivery.
// This includes values selected through modifiers, order, etc.
func (_m *AlertDelivery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBatch queries the "batch" edge of the AlertDelivery entity.
func (_m *AlertDelivery) QueryBatch() *AlertBatchQuery {
	return NewAlertDeliveryClient(_m.config).QueryBatch(_m)
}

// Update returns a builder for updating this AlertDelivery.
// Note that you need to call AlertDelivery.Unwrap() before calling this method if this AlertDelivery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AlertDelivery) Update() *AlertDeliveryUpdateOne {
	return NewAlertDeliveryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AlertDelivery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AlertDelivery) Unwrap() *AlertDelivery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AlertDelivery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AlertDelivery) String() string {
	var builder strings.Builder
	builder.WriteString("AlertDelivery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("alert_batch_id=")
	builder.WriteString(_m.AlertBatchID)
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(_m.Channel)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("recipient=")
	builder.WriteString(_m.Recipient)
	builder.WriteString(", ")
	if v := _m.WebhookURL; v != nil {
		builder.WriteString("webhook_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MessageID; v != nil {
		builder.WriteString("message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DedupHash; v != nil {
		builder.WriteString("dedup_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SentAt; v != nil {
		builder.WriteString("sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeliveryTimeMs; v != nil {
		builder.WriteString("delivery_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AlertDeliveries is a parsable slice of AlertDelivery.
type AlertDeliveries []*AlertDelivery
