package llm

// Intent is the top-level classification of a user message.
type Intent string

// Intents.
const (
	IntentPurchase Intent = "purchase"
	IntentRefill   Intent = "refill"
	IntentInquiry  Intent = "inquiry"
	IntentSymptom  Intent = "symptom"
	IntentUnknown  Intent = "unknown"
)

// RequestedItem is one medicine request extracted from a message or
// prescription.
type RequestedItem struct {
	MedicineName string `json:"medicine_name"`
	Dosage       string `json:"dosage,omitempty"`
	Quantity     int    `json:"quantity"`
}

// ExtractResult is the structured output of Extractor.Extract.
type ExtractResult struct {
	Intent   Intent          `json:"intent"`
	Language string          `json:"language"`
	Items    []RequestedItem `json:"items"`
}

// InteractionSeverity grades a drug-drug interaction.
type InteractionSeverity string

// Interaction severities.
const (
	SeverityNone     InteractionSeverity = "none"
	SeverityMinor    InteractionSeverity = "minor"
	SeverityModerate InteractionSeverity = "moderate"
	SeveritySevere   InteractionSeverity = "severe"
)

// Interaction describes one detected drug-drug interaction.
type Interaction struct {
	Medicines      []string            `json:"medicines"`
	Severity       InteractionSeverity `json:"severity"`
	Description    string              `json:"description"`
	Recommendation string              `json:"recommendation"`
}

// InteractionReport is the output of InteractionChecker.CheckInteractions.
type InteractionReport struct {
	HasInteractions bool                `json:"has_interactions"`
	Severity        InteractionSeverity `json:"severity"`
	Interactions    []Interaction       `json:"interactions"`
	Warnings        []string            `json:"warnings"`
	SafeToDispense  bool                `json:"safe_to_dispense"`
}

// RecommendedAction is the routing outcome of a severity assessment.
type RecommendedAction string

// Recommended actions, mapped deterministically from the severity score:
// 1-3 → otc, 4-6 → pharmacist, 7-8 → doctor, 9-10 → emergency.
const (
	ActionOTC        RecommendedAction = "otc"
	ActionPharmacist RecommendedAction = "pharmacist"
	ActionDoctor     RecommendedAction = "doctor"
	ActionEmergency  RecommendedAction = "emergency"
)

// SeverityAssessment is the output of SeverityAssessor.AssessSeverity.
type SeverityAssessment struct {
	SeverityScore     int               `json:"severity_score"` // 1-10
	RiskLevel         string            `json:"risk_level"`
	RedFlagsDetected  []string          `json:"red_flags_detected"`
	RecommendedAction RecommendedAction `json:"recommended_action"`
	Confidence        float64           `json:"confidence"`
	Reasoning         string            `json:"reasoning"`
}

// ScannedMedicine is one medicine row read off a prescription image.
type ScannedMedicine struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// PrescriptionScan is the structured payload of a successful OCR pass.
// Absent fields were not legible on the image; they are never invented.
type PrescriptionScan struct {
	PatientName      string            `json:"patient_name,omitempty"`
	DoctorName       string            `json:"doctor_name,omitempty"`
	Date             string            `json:"date,omitempty"` // ISO-8601 date
	Medicines        []ScannedMedicine `json:"medicines"`
	SignaturePresent bool              `json:"signature_present"`
	Confidence       float64           `json:"confidence"`
}

// OCRResult is the output of OCRClient.Extract.
type OCRResult struct {
	Success bool              `json:"success"`
	Data    *PrescriptionScan `json:"data,omitempty"`
}

// IntentClassification is the output of IntentClassifier.Classify.
// Classifiers below the 0.35 similarity threshold return IntentSymptom with
// NeedsClarification set.
type IntentClassification struct {
	Intent             Intent  `json:"intent"`
	Confidence         float64 `json:"confidence"`
	Reasoning          string  `json:"reasoning"`
	NeedsClarification bool    `json:"needs_clarification"`
}

// Transcription is the output of Transcriber.Transcribe.
type Transcription struct {
	Text                string  `json:"transcription"`
	Language            string  `json:"language"`
	LanguageProbability float64 `json:"language_probability"`
}

// RouteForScore maps a severity score to its deterministic action.
func RouteForScore(score int) RecommendedAction {
	switch {
	case score <= 3:
		return ActionOTC
	case score <= 6:
		return ActionPharmacist
	case score <= 8:
		return ActionDoctor
	default:
		return ActionEmergency
	}
}

// RedFlagKeywords force a severity score of at least 9 regardless of the
// model's raw output.
var RedFlagKeywords = []string{
	"chest pain",
	"difficulty breathing",
	"unconsciousness",
	"unconscious",
	"seizure",
	"severe bleeding",
	"anaphylaxis",
	"stroke symptoms",
	"slurred speech",
	"sudden numbness",
}
