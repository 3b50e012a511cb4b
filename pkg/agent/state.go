// Package agent holds the specialist agents of the fulfillment pipeline
// and the shared state they pass between stages.
package agent

import (
	"fmt"
	"time"

	"github.com/arogya-labs/aushadhi/pkg/llm"
)

// Agent names as they appear in timeline events and audit entries.
const (
	RiskAgentName        = "risk_scoring_agent"
	ValidatorAgentName   = "medical_validator"
	InventoryAgentName   = "inventory_agent"
	FulfillmentAgentName = "fulfillment_agent"
)

// Conversation phases. The orchestrator moves the session through these;
// agents only read them.
const (
	PhaseCollectingItems      = "collecting_items"
	PhaseAwaitingConfirmation = "awaiting_confirmation"
	PhaseConfirmed            = "confirmed"
	PhaseCompleted            = "completed"
	PhaseRejected             = "rejected"
	PhaseFailed               = "failed"
)

// RequestedLine is one medicine the user asked for, before inventory
// resolution. InCatalog and CatalogStrength are filled by catalog
// enrichment; DosageInferred marks a dosage the validator filled from
// the catalog strength rather than the user's words.
type RequestedLine struct {
	Name            string  `json:"name"`
	Dosage          string  `json:"dosage,omitempty"`
	Quantity        int     `json:"quantity"`
	IsOTC           bool    `json:"is_otc"`
	Schedule        string  `json:"schedule,omitempty"`
	Price           float64 `json:"price,omitempty"`
	InCatalog       bool    `json:"in_catalog,omitempty"`
	CatalogStrength string  `json:"catalog_strength,omitempty"`
	DosageInferred  bool    `json:"dosage_inferred,omitempty"`
}

// PipelineState is the single mutable document threaded through the
// pipeline. Each agent reads what it needs and records its outcome; the
// orchestrator owns phase transitions.
type PipelineState struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Phone     string `json:"phone,omitempty"`
	Phase     string `json:"phase"`

	Intent  llm.Intent      `json:"intent"`
	Message string          `json:"message,omitempty"`
	Items   []RequestedLine `json:"items"`

	Prescription *llm.PrescriptionScan `json:"prescription,omitempty"`

	Patient *PatientInfo `json:"patient,omitempty"`

	Risk        *RiskResult        `json:"risk,omitempty"`
	Validation  *ValidatorResult   `json:"validation,omitempty"`
	Inventory   *InventoryResult   `json:"inventory,omitempty"`
	Fulfillment *FulfillmentResult `json:"fulfillment,omitempty"`

	StartedAt time.Time `json:"started_at"`
}

// PatientInfo is the slice of the patient record agents are allowed to
// see. Allergies and conditions gate replacements and interactions.
type PatientInfo struct {
	PID        string   `json:"pid"`
	Name       string   `json:"name,omitempty"`
	Age        int      `json:"age,omitempty"`
	Allergies  []string `json:"allergies,omitempty"`
	Conditions []string `json:"conditions,omitempty"`
	RiskScore  int      `json:"risk_score"`
	RiskLevel  string   `json:"risk_level"`
}

// Clone returns a deep-enough copy for hydrating a held confirmation:
// slices are copied, result pointers are shared (they are write-once).
func (s *PipelineState) Clone() *PipelineState {
	cp := *s
	cp.Items = append([]RequestedLine(nil), s.Items...)
	return &cp
}

// ConfirmationRequiredError signals that the pipeline stopped at the
// confirmation gate and must be resumed with a valid token.
type ConfirmationRequiredError struct {
	SessionID string
	Token     string
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("order for session %s requires user confirmation", e.SessionID)
}
