package bus

import (
	"time"

	"github.com/google/uuid"
)

// Event kinds published by the fulfillment core.
const (
	KindOrderCreated          = "order.created"
	KindOrderFailed           = "order.failed"
	KindOrderRejected         = "order.rejected"
	KindPrescriptionValidated = "prescription.validated"
	KindPatientIdentified     = "patient.identified"
)

// Event is implemented by every published payload.
type Event interface {
	Kind() string
	ID() string
	Timestamp() time.Time
	// Data returns a JSON-friendly view of the payload for history
	// endpoints and external consumers.
	Data() map[string]any
}

// Meta carries the fields common to all events.
type Meta struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"timestamp"`
}

// NewMeta stamps a fresh event identity.
func NewMeta() Meta {
	return Meta{EventID: uuid.New().String(), OccurredAt: now()}
}

// ID implements Event.
func (m Meta) ID() string { return m.EventID }

// Timestamp implements Event.
func (m Meta) Timestamp() time.Time { return m.OccurredAt }

// OrderItem is the denormalized line view carried on OrderCreated.
type OrderItem struct {
	MedicineName string  `json:"medicine_name"`
	Dosage       string  `json:"dosage,omitempty"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
}

// OrderCreated is published after a fulfillment transaction commits.
type OrderCreated struct {
	Meta
	OrderID            string      `json:"order_id"`
	UserID             string      `json:"user_id"`
	Phone              string      `json:"phone,omitempty"`
	TotalAmount        float64     `json:"total_amount"`
	Items              []OrderItem `json:"items"`
	PharmacistDecision string      `json:"pharmacist_decision"`
}

// Kind implements Event.
func (OrderCreated) Kind() string { return KindOrderCreated }

// Data implements Event.
func (e OrderCreated) Data() map[string]any {
	items := make([]map[string]any, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, map[string]any{
			"medicine_name": it.MedicineName,
			"dosage":        it.Dosage,
			"quantity":      it.Quantity,
			"unit_price":    it.UnitPrice,
		})
	}
	return map[string]any{
		"event_id":            e.EventID,
		"timestamp":           e.OccurredAt,
		"order_id":            e.OrderID,
		"user_id":             e.UserID,
		"phone":               e.Phone,
		"total_amount":        e.TotalAmount,
		"items":               items,
		"pharmacist_decision": e.PharmacistDecision,
	}
}

// OrderFailed is published when fulfillment aborts without creating an order.
type OrderFailed struct {
	Meta
	UserID    string `json:"user_id"`
	Error     string `json:"error"`
	ErrorType string `json:"error_type"`
}

// Kind implements Event.
func (OrderFailed) Kind() string { return KindOrderFailed }

// Data implements Event.
func (e OrderFailed) Data() map[string]any {
	return map[string]any{
		"event_id":   e.EventID,
		"timestamp":  e.OccurredAt,
		"user_id":    e.UserID,
		"error":      e.Error,
		"error_type": e.ErrorType,
	}
}

// OrderRejected is published when the validator (or risk scorer) rejects a
// request before any order row exists.
type OrderRejected struct {
	Meta
	UserID string `json:"user_id"`
	Reason string `json:"reason"`
}

// Kind implements Event.
func (OrderRejected) Kind() string { return KindOrderRejected }

// Data implements Event.
func (e OrderRejected) Data() map[string]any {
	return map[string]any{
		"event_id":  e.EventID,
		"timestamp": e.OccurredAt,
		"user_id":   e.UserID,
		"reason":    e.Reason,
	}
}

// PrescriptionValidated is published after the medical validator finishes.
type PrescriptionValidated struct {
	Meta
	UserID       string   `json:"user_id"`
	Decision     string   `json:"decision"`
	SafetyIssues []string `json:"safety_issues"`
}

// Kind implements Event.
func (PrescriptionValidated) Kind() string { return KindPrescriptionValidated }

// Data implements Event.
func (e PrescriptionValidated) Data() map[string]any {
	return map[string]any{
		"event_id":      e.EventID,
		"timestamp":     e.OccurredAt,
		"user_id":       e.UserID,
		"decision":      e.Decision,
		"safety_issues": e.SafetyIssues,
	}
}

// PatientIdentified is published when a patient is resolved for a session.
type PatientIdentified struct {
	Meta
	PID    string `json:"pid"`
	Phone  string `json:"phone"`
	Source string `json:"source"`
}

// Kind implements Event.
func (PatientIdentified) Kind() string { return KindPatientIdentified }

// Data implements Event.
func (e PatientIdentified) Data() map[string]any {
	return map[string]any{
		"event_id":  e.EventID,
		"timestamp": e.OccurredAt,
		"pid":       e.PID,
		"phone":     e.Phone,
		"source":    e.Source,
	}
}
