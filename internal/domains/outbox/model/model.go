package model

import (
	"encoding/json"
	"fmt"
	"time"

	gModel "agenda/shared/model"
)

const (
	TableName  = "outbox_effects"
	EntityName = "outbox effect"

	FieldID            = "id"
	FieldTenantID      = "tenant_id"
	FieldKind          = "kind"
	FieldPayload       = "payload"
	FieldAttempts      = "attempts"
	FieldNextAttemptAt = "next_attempt_at"
	FieldProcessedAt   = "processed_at"
)

// Effect kinds interpreted by the outbox worker. State transitions enqueue
// these in the same transaction as the primary write; the worker runs them
// after commit so their failure can never roll back the transition.
const (
	KindTrustIncrement  = "trust.increment"
	KindWaitlistPromote = "waitlist.promote"
	KindNotify          = "notify.send"
)

// Effect is a side-effect descriptor produced by a pure state transition.
type Effect struct {
	Kind    string
	Payload any
}

// Record is a persisted effect awaiting dispatch.
type Record struct {
	ID            int64      `db:"id"`
	TenantID      string     `db:"tenant_id"`
	Kind          string     `db:"kind"`
	Payload       []byte     `db:"payload"`
	Attempts      int        `db:"attempts"`
	NextAttemptAt time.Time  `db:"next_attempt_at"`
	ProcessedAt   *time.Time `db:"processed_at"`
	CreatedAt     time.Time  `db:"created_at"`
}

// NotifyPayload asks the notification sender to deliver one message.
type NotifyPayload struct {
	Channel   string         `json:"channel"`
	Recipient string         `json:"recipient"`
	Template  string         `json:"template"`
	Data      map[string]any `json:"data,omitempty"`
}

// TrustIncrementPayload bumps a client's monthly cancellation counter.
type TrustIncrementPayload struct {
	TenantID    string `json:"tenant_id"`
	ClientEmail string `json:"client_email"`
}

// WaitlistPromotePayload re-offers a freed slot to the waitlist.
type WaitlistPromotePayload struct {
	TenantID  string          `json:"tenant_id"`
	StaffID   string          `json:"staff_id"`
	ServiceID string          `json:"service_id"`
	Slot      gModel.TimeSlot `json:"slot"`
}

// ToRecord serializes an effect for persistence.
func (e Effect) ToRecord(tenantID string, now time.Time) (Record, error) {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return Record{}, fmt.Errorf("failed to marshal effect payload (%s): %w", e.Kind, err)
	}

	return Record{
		TenantID:      tenantID,
		Kind:          e.Kind,
		Payload:       payload,
		NextAttemptAt: now,
		CreatedAt:     now,
	}, nil
}
