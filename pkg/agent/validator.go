package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arogya-labs/aushadhi/pkg/llm"
	"github.com/arogya-labs/aushadhi/pkg/trace"
)

// notVisible marks fields the OCR could not read when a prescription is
// reconstructed for the pharmacist.
const notVisible = "[Not clearly visible]"

// interactionTimeout bounds one interaction-model call. A timed-out call
// is retried once before falling back to the rule table.
const interactionTimeout = 10 * time.Second

// Validator runs the clinical safety checks. It has two modes: plain OTC
// requests, and prescriptions parsed from an image. An unreachable
// interaction model degrades to the built-in rule table instead of
// blocking the turn.
type Validator struct {
	checker  llm.InteractionChecker
	fallback llm.InteractionChecker
	assessor llm.SeverityAssessor
	rules    ValidationRules
	traces   *trace.Manager
	logger   *slog.Logger
	now      func() time.Time
}

// NewValidator wires the validator. checker and assessor may be nil; the
// rule-based fallback then carries the interaction check alone and
// severity assessment is skipped.
func NewValidator(checker llm.InteractionChecker, assessor llm.SeverityAssessor, rules ValidationRules, tm *trace.Manager, logger *slog.Logger) *Validator {
	return &Validator{
		checker:  checker,
		fallback: llm.NewRuleBasedChecker(),
		assessor: assessor,
		rules:    rules,
		traces:   tm,
		logger:   logger.With("agent", ValidatorAgentName),
		now:      time.Now,
	}
}

// Run validates the request on the state and records the result. A
// rejection here is a clinical outcome, not an error; the error return
// is for infrastructure failures only.
func (v *Validator) Run(ctx context.Context, state *PipelineState) (*ValidatorResult, error) {
	parent := v.traces.Emit(state.SessionID, ValidatorAgentName, "medical_validation",
		trace.TypeThinking, trace.StatusStarted,
		map[string]any{"items": len(state.Items), "has_prescription": state.Prescription != nil}, "")

	var result *ValidatorResult
	var err error
	if state.Prescription != nil {
		result, err = v.validatePrescription(ctx, state, parent.ID)
	} else {
		result, err = v.validateOTC(ctx, state, parent.ID)
	}
	if err != nil {
		v.traces.Emit(state.SessionID, ValidatorAgentName, "medical_validation",
			trace.TypeError, trace.StatusFailed,
			map[string]any{"error": err.Error()}, parent.ID)
		return nil, err
	}

	state.Validation = result
	v.traces.Emit(state.SessionID, ValidatorAgentName, "medical_validation",
		trace.TypeDecision, trace.StatusCompleted,
		map[string]any{
			"confidence":       result.Confidence,
			"safe_to_dispense": result.SafeToDispense,
			"severity_score":   result.SeverityScore,
			"issues":           len(result.SafetyIssues),
		}, parent.ID)

	v.logger.Info("medical validation complete",
		"session_id", state.SessionID,
		"decision", result.Decision,
		"safe", result.SafeToDispense,
		"issues", len(result.SafetyIssues))
	return result, nil
}

func (v *Validator) validateOTC(ctx context.Context, state *PipelineState, parentID string) (*ValidatorResult, error) {
	var issues []string
	rxRequired := false

	names := make([]string, 0, len(state.Items))
	items := make([]llm.RequestedItem, 0, len(state.Items))
	for i := range state.Items {
		it := &state.Items[i]
		names = append(names, it.Name)

		switch {
		case v.rules.isScheduleX(it.Name):
			issues = append(issues, fmt.Sprintf("%s is a Schedule X substance and cannot be dispensed", it.Name))
		case !it.InCatalog:
			rxRequired = true
			issues = append(issues, fmt.Sprintf("[PRESCRIPTION REQUIRED] %s is not in the catalog; pharmacist review needed", it.Name))
		case !it.IsOTC:
			rxRequired = true
			issues = append(issues, fmt.Sprintf("%s requires a valid prescription", it.Name))
		}

		// A missing dosage is filled from the catalog strength when
		// known; otherwise the pharmacist decides.
		if strings.TrimSpace(it.Dosage) == "" {
			if it.CatalogStrength != "" {
				it.Dosage = it.CatalogStrength
				it.DosageInferred = true
			} else {
				issues = append(issues, fmt.Sprintf("%s: dosage unspecified and not inferable from the catalog", it.Name))
			}
		}
		if issue := v.rules.checkDailyDose(it.Name, it.Dosage, ""); issue != "" {
			issues = append(issues, issue)
		}

		items = append(items, llm.RequestedItem{MedicineName: it.Name, Dosage: it.Dosage, Quantity: it.Quantity})
	}
	for _, dupe := range findDuplicates(names) {
		issues = append(issues, fmt.Sprintf("%s appears more than once in the request", dupe))
	}

	warnings := patientContextWarnings(state.Patient)

	report := v.checkInteractions(ctx, state.SessionID, items, parentID)
	issues = append(issues, interactionIssues(report)...)

	severity, err := v.assessSeverity(ctx, state, parentID)
	if err != nil {
		return nil, err
	}
	severityScore := 0
	if severity != nil {
		severityScore = severity.SeverityScore
		if severityScore >= 9 {
			issues = append(issues, RuleFinding{
				Severity: SeverityCritical,
				Code:     CodeEmergency,
				Detail: fmt.Sprintf("emergency indicators detected (%s); medicine dispensing is suspended",
					strings.Join(severity.RedFlagsDetected, ", ")),
			}.String())
		}
	}

	safe := len(issues) == 0 && (report == nil || report.SafeToDispense)
	decision := DecisionApproved
	switch {
	case severityScore >= 9 || (report != nil && !report.SafeToDispense):
		decision = DecisionRejected
		safe = false
	case containsScheduleX(issues):
		decision = DecisionRejected
		safe = false
	case severityScore >= 7:
		decision = DecisionNeedsReview
	case len(issues) > 0:
		decision = DecisionNeedsReview
	}

	return &ValidatorResult{
		Outcome: Outcome{
			Agent:      ValidatorAgentName,
			Decision:   decision,
			Reasoning:  validationReasoning(decision, issues),
			Confidence: 0.9,
			FinishedAt: v.now(),
		},
		SafeToDispense:       safe,
		SafetyIssues:         issues,
		SeverityScore:        severityScore,
		PrescriptionVerified: !rxRequired,
		Interactions:         report,
		Summary:              v.otcSummary(state, issues, warnings, decision),
	}, nil
}

func (v *Validator) validatePrescription(ctx context.Context, state *PipelineState, parentID string) (*ValidatorResult, error) {
	scan := state.Prescription

	engine := v.rules.EvaluatePrescription(scan, v.now())
	issues := engine.Issues()

	items := make([]llm.RequestedItem, 0, len(scan.Medicines))
	for _, med := range scan.Medicines {
		items = append(items, llm.RequestedItem{MedicineName: med.Name, Dosage: med.Dosage, Quantity: 1})
	}

	report := v.checkInteractions(ctx, state.SessionID, items, parentID)
	issues = append(issues, interactionIssues(report)...)

	riskScore := engine.RiskScore + interactionBonus(report)
	if riskScore > 1.0 {
		riskScore = 1.0
	}

	safe := false
	decision := DecisionApproved
	switch {
	case report != nil && !report.SafeToDispense:
		decision = DecisionRejected
	case engine.HasCritical():
		decision = DecisionRejected
	case riskScore >= 0.5 || engine.HasWarning():
		decision = DecisionNeedsReview
	default:
		safe = len(issues) == 0 || !engine.RequiresPharmacist
	}

	return &ValidatorResult{
		Outcome: Outcome{
			Agent:      ValidatorAgentName,
			Decision:   decision,
			Reasoning:  validationReasoning(decision, issues),
			Confidence: scan.Confidence,
			FinishedAt: v.now(),
		},
		SafeToDispense:       safe,
		SafetyIssues:         issues,
		RiskScore:            riskScore,
		PrescriptionVerified: decision == DecisionApproved,
		Interactions:         report,
		Reconstructed:        ReconstructPrescription(scan),
	}, nil
}

// checkInteractions tries the model under a timeout, retries once on a
// recoverable infrastructure failure, and degrades to the rule table
// when the model stays unreachable. The fallback never errors.
func (v *Validator) checkInteractions(ctx context.Context, sessionID string, items []llm.RequestedItem, parentID string) *llm.InteractionReport {
	if len(items) == 0 {
		return nil
	}

	v.traces.Emit(sessionID, ValidatorAgentName, "interaction_check",
		trace.TypeToolUse, trace.StatusRunning,
		map[string]any{"medicines": len(items)}, parentID)

	if v.checker != nil {
		report, err := v.callChecker(ctx, items)
		if err == nil {
			return report
		}
		var infra *llm.InfrastructureError
		if errors.As(err, &infra) && infra.Recoverable {
			v.logger.Warn("interaction model call failed, retrying once",
				"session_id", sessionID, "op", infra.Op, "error", err)
			if report, err = v.callChecker(ctx, items); err == nil {
				return report
			}
		}
		v.logger.Warn("interaction model unavailable, using rule table",
			"session_id", sessionID, "error", err)
	}

	report, err := v.fallback.CheckInteractions(ctx, items)
	if err != nil {
		// The rule table is pure; this cannot happen in practice.
		v.logger.Error("rule-based interaction check failed", "error", err)
		return nil
	}
	return report
}

// callChecker runs one model call under the per-call timeout.
func (v *Validator) callChecker(ctx context.Context, items []llm.RequestedItem) (*llm.InteractionReport, error) {
	cctx, cancel := context.WithTimeout(ctx, interactionTimeout)
	defer cancel()

	report, err := v.checker.CheckInteractions(cctx, items)
	if err != nil && errors.Is(cctx.Err(), context.DeadlineExceeded) {
		return nil, llm.NewTimeoutError("interaction_check", err)
	}
	return report, err
}

func (v *Validator) assessSeverity(ctx context.Context, state *PipelineState, parentID string) (*llm.SeverityAssessment, error) {
	if state.Intent != llm.IntentSymptom {
		return nil, nil
	}

	symptoms := symptomText(state)
	if kw := redFlagIn(symptoms); kw != "" {
		// Keyword hits do not wait for the model.
		return &llm.SeverityAssessment{
			SeverityScore:     9,
			RiskLevel:         "critical",
			RedFlagsDetected:  []string{kw},
			RecommendedAction: llm.RouteForScore(9),
			Confidence:        1.0,
			Reasoning:         "emergency keyword detected: " + kw,
		}, nil
	}
	if v.assessor == nil {
		return nil, nil
	}

	v.traces.Emit(state.SessionID, ValidatorAgentName, "severity_assessment",
		trace.TypeToolUse, trace.StatusRunning, nil, parentID)

	patientCtx := map[string]any{}
	if state.Patient != nil {
		patientCtx["age"] = state.Patient.Age
		patientCtx["conditions"] = state.Patient.Conditions
		patientCtx["allergies"] = state.Patient.Allergies
	}
	assessment, err := v.assessor.AssessSeverity(ctx, symptoms, patientCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("severity assessment: %w", err)
	}
	// Red-flag override also applies to the model's own findings.
	if len(assessment.RedFlagsDetected) > 0 && assessment.SeverityScore < 9 {
		assessment.SeverityScore = 9
	}
	assessment.RecommendedAction = llm.RouteForScore(assessment.SeverityScore)
	return assessment, nil
}

// ReconstructPrescription renders the scan the way the pharmacist sees
// it, with unread fields marked rather than dropped.
func ReconstructPrescription(scan *llm.PrescriptionScan) string {
	var b strings.Builder
	b.WriteString("Patient: " + orNotVisible(scan.PatientName) + "\n")
	b.WriteString("Doctor: " + orNotVisible(scan.DoctorName) + "\n")
	b.WriteString("Date: " + orNotVisible(scan.Date) + "\n")
	b.WriteString("Medicines:\n")
	for i, med := range scan.Medicines {
		b.WriteString(fmt.Sprintf("  %d. %s %s %s %s\n",
			i+1,
			orNotVisible(med.Name),
			orNotVisible(med.Dosage),
			orNotVisible(med.Frequency),
			orNotVisible(med.Duration)))
	}
	if scan.SignaturePresent {
		b.WriteString("Signature: present\n")
	} else {
		b.WriteString("Signature: " + notVisible + "\n")
	}
	return b.String()
}

func orNotVisible(s string) string {
	if strings.TrimSpace(s) == "" {
		return notVisible
	}
	return s
}

// patientContextWarnings derives counseling notes from the patient
// record. They accompany the summary and do not change the decision.
func patientContextWarnings(p *PatientInfo) []string {
	if p == nil {
		return nil
	}
	var warnings []string
	switch {
	case p.Age > 0 && p.Age < 12:
		warnings = append(warnings, fmt.Sprintf("pediatric patient (age %d): verify weight-based dosing", p.Age))
	case p.Age > 65:
		warnings = append(warnings, fmt.Sprintf("elderly patient (age %d): monitor for adverse effects", p.Age))
	}
	for _, allergy := range p.Allergies {
		warnings = append(warnings, "known allergy: "+allergy+"; check every item before dispensing")
	}
	return warnings
}

// otcSummary builds the counseling summary: one recommendation per
// requested item, never fabricated doctor data.
func (v *Validator) otcSummary(state *PipelineState, issues, warnings []string, decision string) *OTCSummary {
	recs := make([]OTCRecommendation, 0, len(state.Items))
	for _, it := range state.Items {
		rec := OTCRecommendation{
			Name:     it.Name,
			Dosage:   it.Dosage,
			Guidance: fmt.Sprintf("take as directed on the label, quantity %d", it.Quantity),
		}
		if it.DosageInferred {
			rec.Warnings = append(rec.Warnings, "dosage inferred from catalog strength; confirm before use")
		}
		if !it.IsOTC && it.InCatalog {
			rec.Warnings = append(rec.Warnings, "prescription required")
		}
		recs = append(recs, rec)
	}

	summary := &OTCSummary{
		Title:            "AI-Assisted OTC Recommendation Summary",
		Disclaimer:       "Generated without pharmacist review. Not a prescription. Consult a doctor if symptoms persist.",
		PatientContext:   strings.Join(warnings, "; "),
		Recommendations:  recs,
		ValidationStatus: decision,
		GeneratedAt:      v.now(),
	}
	if len(issues) > 0 {
		for i := range summary.Recommendations {
			summary.Recommendations[i].Warnings = append(summary.Recommendations[i].Warnings,
				issuesMentioning(issues, summary.Recommendations[i].Name)...)
		}
	}
	return summary
}

// issuesMentioning filters safety issues down to those naming the item.
func issuesMentioning(issues []string, name string) []string {
	var out []string
	for _, issue := range issues {
		if strings.Contains(strings.ToLower(issue), strings.ToLower(name)) {
			out = append(out, issue)
		}
	}
	return out
}

// interactionBonus converts interactions into the rule-engine risk
// increment: severe 0.4, moderate 0.2, minor 0.1, summed per finding.
func interactionBonus(report *llm.InteractionReport) float64 {
	if report == nil || !report.HasInteractions {
		return 0
	}
	var bonus float64
	for _, ix := range report.Interactions {
		switch ix.Severity {
		case llm.SeveritySevere:
			bonus += 0.4
		case llm.SeverityModerate:
			bonus += 0.2
		default:
			bonus += 0.1
		}
	}
	return bonus
}

func interactionIssues(report *llm.InteractionReport) []string {
	if report == nil || !report.HasInteractions {
		return nil
	}
	issues := make([]string, 0, len(report.Interactions))
	for _, ix := range report.Interactions {
		issues = append(issues, fmt.Sprintf("%s interaction: %s (%s)",
			ix.Severity, strings.Join(ix.Medicines, " + "), ix.Description))
	}
	return issues
}

func containsScheduleX(issues []string) bool {
	for _, issue := range issues {
		if strings.Contains(issue, "Schedule X") {
			return true
		}
	}
	return false
}

func validationReasoning(decision string, issues []string) string {
	if len(issues) == 0 {
		return "all safety checks passed"
	}
	return fmt.Sprintf("%s: %s", decision, strings.Join(issues, "; "))
}

func symptomText(state *PipelineState) string {
	if state.Message != "" {
		return state.Message
	}
	names := make([]string, 0, len(state.Items))
	for _, it := range state.Items {
		names = append(names, it.Name)
	}
	return strings.Join(names, ", ")
}
