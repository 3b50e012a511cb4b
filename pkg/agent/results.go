package agent

import (
	"time"

	"github.com/arogya-labs/aushadhi/pkg/llm"
)

// Decision values agents record in their outcome headers.
const (
	DecisionApproved    = "approved"
	DecisionNeedsReview = "needs_review"
	DecisionRejected    = "rejected"
)

// Outcome is the header every agent result carries. Decision and
// Reasoning feed the audit log verbatim.
type Outcome struct {
	Agent      string    `json:"agent"`
	Decision   string    `json:"decision"`
	Reasoning  string    `json:"reasoning"`
	Confidence float64   `json:"confidence"`
	FinishedAt time.Time `json:"finished_at"`
}

// RiskResult is the risk scoring agent's output.
type RiskResult struct {
	Outcome

	PriorScore int      `json:"prior_score"`
	Delta      int      `json:"delta"`
	NewScore   int      `json:"new_score"`
	Level      string   `json:"level"`
	Factors    []string `json:"factors,omitempty"`
	Flagged    bool     `json:"flagged"`
}

// ValidatorResult is the medical validator's output. SafetyIssues is
// what pharmacists see; SafeToDispense is what the pipeline acts on.
type ValidatorResult struct {
	Outcome

	SafeToDispense       bool     `json:"safe_to_dispense"`
	SafetyIssues         []string `json:"safety_issues,omitempty"`
	SeverityScore        int      `json:"severity_score,omitempty"`
	RiskScore            float64  `json:"risk_score,omitempty"`
	PrescriptionVerified bool     `json:"prescription_verified"`

	Interactions *llm.InteractionReport `json:"interactions,omitempty"`

	// Prescription-mode extras.
	Reconstructed string `json:"reconstructed,omitempty"`
	// OTC-mode extras.
	Summary *OTCSummary `json:"summary,omitempty"`
}

// OTCRecommendation is one per-item entry in the OTC counseling summary.
// The summary carries exactly one recommendation per requested item.
type OTCRecommendation struct {
	Name     string   `json:"name"`
	Dosage   string   `json:"dosage,omitempty"`
	Guidance string   `json:"guidance"`
	Warnings []string `json:"warnings,omitempty"`
}

// OTCSummary is the structured counseling summary attached to OTC
// validation results.
type OTCSummary struct {
	Title            string              `json:"title"`
	Disclaimer       string              `json:"disclaimer"`
	PatientContext   string              `json:"patient_context,omitempty"`
	Recommendations  []OTCRecommendation `json:"recommendations"`
	ValidationStatus string              `json:"validation_status"`
	GeneratedAt      time.Time           `json:"generated_at"`
}

// Availability values for a resolved line.
const (
	AvailabilityAvailable  = "available"
	AvailabilityPartial    = "partial"
	AvailabilityOutOfStock = "out_of_stock"
	AvailabilityNotFound   = "not_found"
)

// ResolvedLine is a requested line after catalog resolution.
type ResolvedLine struct {
	Requested    RequestedLine `json:"requested"`
	MedicineID   int           `json:"medicine_id,omitempty"`
	MatchedName  string        `json:"matched_name,omitempty"`
	Availability string        `json:"availability"`
	InStock      int           `json:"in_stock"`
	UnitPrice    float64       `json:"unit_price,omitempty"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
}

// Alternative is a substitute suggestion for an unavailable line.
// OverrideRequired marks substitutions a pharmacist must sign off on
// before dispensing.
type Alternative struct {
	MedicineID       int     `json:"medicine_id"`
	OriginalName     string  `json:"original_name,omitempty"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	InStock          int     `json:"in_stock"`
	Tier             string  `json:"tier"`
	OverrideRequired bool    `json:"override_required"`
}

// Replacement tiers, strongest claim first. High means the same active
// ingredient; medium the same generic equivalent; low only the same
// therapeutic category. Medium and low need a pharmacist override.
const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

// InventoryResult is the inventory agent's output. Replacement is the
// best substitution offered for an unavailable line, if any.
type InventoryResult struct {
	Outcome

	Lines             []ResolvedLine `json:"lines"`
	AvailabilityScore float64        `json:"availability_score"`
	TotalAmount       float64        `json:"total_amount"`
	Replacement       *Alternative   `json:"replacement,omitempty"`
}

// FulfillmentResult is the fulfillment agent's output. It is produced on
// every path, success or not.
type FulfillmentResult struct {
	Outcome

	OrderID     string  `json:"order_id,omitempty"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount,omitempty"`
	Error       string  `json:"error,omitempty"`
	ErrorType   string  `json:"error_type,omitempty"`
}
