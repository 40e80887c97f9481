package events

import (
	"time"

	"github.com/spec-kit/ops-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeStatusChanged EventType = "employee_status_changed"
	EventLeavesUpdated         EventType = "leaves_updated"
	EventEnquiryResolved       EventType = "enquiry_resolved"
	EventLoginRecorded         EventType = "login_recorded"
)

// Event represents a broadcast notification emitted by services. Events are
// fire-and-forget: they are never persisted and a failing listener must not
// affect the emitting operation.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EmployeeStatusChangedPayload carries the subject email and new status.
type EmployeeStatusChangedPayload struct {
	Email  string                `json:"email"`
	Status domain.EmployeeStatus `json:"status"`
}

// LeavesUpdatedPayload scopes a bulk or filtered leave approval. Email is
// empty for an unfiltered bulk approval.
type LeavesUpdatedPayload struct {
	Email    string `json:"email,omitempty"`
	Matched  int64  `json:"matched"`
	Modified int64  `json:"modified"`
}

// EnquiryResolvedPayload identifies the resolved enquiry.
type EnquiryResolvedPayload struct {
	EnquiryID string `json:"enquiry_id"`
	Email     string `json:"email"`
}

// LoginRecordedPayload mirrors one login activity row.
type LoginRecordedPayload struct {
	Email   string `json:"email"`
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}
