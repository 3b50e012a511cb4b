// Package fusion reduces a session's trace stream into two scalar
// confidences (safety, fulfillment) plus an alert level, streamed to live
// subscribers alongside the raw trace.
package fusion

// Mode indicates which confidence currently dominates the pipeline.
type Mode string

// Dominant modes.
const (
	ModeSafety      Mode = "safety"
	ModeFulfillment Mode = "fulfillment"
)

// Phase tracks pipeline progress as derived from trace events.
type Phase string

// Pipeline phases.
const (
	PhaseIntake      Phase = "intake"
	PhaseValidation  Phase = "validation"
	PhaseInventory   Phase = "inventory"
	PhaseFulfillment Phase = "fulfillment"
	PhaseHalted      Phase = "halted"
	PhaseComplete    Phase = "complete"
)

// AlertLevel grades overall pipeline health.
type AlertLevel string

// Alert levels.
const (
	AlertNominal  AlertLevel = "nominal"
	AlertWarn     AlertLevel = "warn"
	AlertCritical AlertLevel = "critical"
)

// Score keys tracked by the calculator.
const (
	ScoreIntentClassification = "intent_classification"
	ScoreOCRConfidence        = "ocr_confidence"
	ScoreSeverityInverted     = "severity_inverted"
	ScoreContraindicationOK   = "contraindication_clear"
	ScoreInventoryMatch       = "inventory_match_score"
	ScoreIdentityResolution   = "identity_resolution"
	ScoreIntentExtraction     = "intent_extraction"
	ScorePipelineCompletion   = "pipeline_completion"
)

// State is the derived, non-persisted fusion view of a session.
type State struct {
	SessionID             string             `json:"session_id"`
	SafetyConfidence      float64            `json:"safety_confidence"`
	FulfillmentConfidence float64            `json:"fulfillment_confidence"`
	DominantMode          Mode               `json:"dominant_mode"`
	PipelinePhase         Phase              `json:"pipeline_phase"`
	ContributingScores    map[string]float64 `json:"contributing_scores"`
	AlertLevel            AlertLevel         `json:"alert_level"`
	HaltReason            string             `json:"halt_reason,omitempty"`
}
