package llm

import (
	"context"
	"strings"
)

// drug classes used by the rule-based fallback. Matching is by substring on
// the lowercased medicine name, so "Warfarin 5mg" hits "warfarin".
var (
	nsaids         = []string{"ibuprofen", "aspirin", "diclofenac", "naproxen", "ketorolac", "mefenamic"}
	benzos         = []string{"diazepam", "alprazolam", "lorazepam", "clonazepam", "midazolam"}
	opioids        = []string{"tramadol", "codeine", "morphine", "oxycodone", "fentanyl"}
	anticoagulants = []string{"warfarin", "heparin", "apixaban", "rivaroxaban", "dabigatran"}
	aceInhibitors  = []string{"lisinopril", "enalapril", "ramipril", "captopril"}
	potassium      = []string{"potassium", "spironolactone"}
)

// RuleBasedChecker is the interaction fallback used when no LLM adapter is
// configured or the adapter call fails. It covers the classic dangerous
// combinations with the same response shape as the model-backed checker.
type RuleBasedChecker struct{}

// NewRuleBasedChecker creates the fallback checker.
func NewRuleBasedChecker() *RuleBasedChecker {
	return &RuleBasedChecker{}
}

// CheckInteractions implements InteractionChecker.
func (r *RuleBasedChecker) CheckInteractions(_ context.Context, items []RequestedItem) (*InteractionReport, error) {
	report := &InteractionReport{
		Severity:       SeverityNone,
		SafeToDispense: true,
	}

	display := make([]string, 0, len(items))
	names := make([]string, 0, len(items))
	for _, it := range items {
		display = append(display, it.MedicineName)
		names = append(names, strings.ToLower(it.MedicineName))
	}

	// Duplicate medicine in one request.
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		key := strings.TrimSpace(name)
		if seen[key] {
			addInteraction(report, Interaction{
				Medicines:      []string{items[i].MedicineName},
				Severity:       SeverityModerate,
				Description:    "duplicate medicine in the same request",
				Recommendation: "Remove the duplicate entry or confirm intent with a pharmacist",
			})
			continue
		}
		seen[key] = true
	}

	nsaidHits := matchClass(display, names, nsaids)
	benzoHits := matchClass(display, names, benzos)
	opioidHits := matchClass(display, names, opioids)
	anticoagHits := matchClass(display, names, anticoagulants)
	aceHits := matchClass(display, names, aceInhibitors)
	potassiumHits := matchClass(display, names, potassium)

	if len(nsaidHits) >= 2 {
		addInteraction(report, Interaction{
			Medicines:      nsaidHits,
			Severity:       SeverityModerate,
			Description:    "multiple NSAIDs increase gastrointestinal bleeding risk",
			Recommendation: "Use a single NSAID; consider gastroprotection",
		})
	}
	if len(benzoHits) > 0 && len(opioidHits) > 0 {
		addInteraction(report, Interaction{
			Medicines:      append(benzoHits, opioidHits...),
			Severity:       SeveritySevere,
			Description:    "benzodiazepine with opioid: risk of profound sedation and respiratory depression",
			Recommendation: "Do not dispense together without prescriber review",
		})
		report.SafeToDispense = false
	}
	if len(anticoagHits) > 0 && len(nsaidHits) > 0 {
		addInteraction(report, Interaction{
			Medicines:      append(anticoagHits, nsaidHits...),
			Severity:       SeveritySevere,
			Description:    "anticoagulant with NSAID: major bleeding risk",
			Recommendation: "Do not dispense together without prescriber review",
		})
		report.SafeToDispense = false
	}
	if len(aceHits) > 0 && len(potassiumHits) > 0 {
		addInteraction(report, Interaction{
			Medicines:      append(aceHits, potassiumHits...),
			Severity:       SeveritySevere,
			Description:    "ACE inhibitor with potassium: hyperkalemia risk",
			Recommendation: "Do not dispense together without prescriber review",
		})
		report.SafeToDispense = false
	}

	return report, nil
}

func addInteraction(report *InteractionReport, ix Interaction) {
	report.HasInteractions = true
	report.Interactions = append(report.Interactions, ix)
	report.Warnings = append(report.Warnings, ix.Description)
	if severityRank(ix.Severity) > severityRank(report.Severity) {
		report.Severity = ix.Severity
	}
}

func severityRank(s InteractionSeverity) int {
	switch s {
	case SeverityMinor:
		return 1
	case SeverityModerate:
		return 2
	case SeveritySevere:
		return 3
	}
	return 0
}

// matchClass returns the display names whose lowered form contains any
// class member.
func matchClass(display, names []string, class []string) []string {
	var hits []string
	for i, name := range names {
		for _, member := range class {
			if strings.Contains(name, member) {
				hits = append(hits, display[i])
				break
			}
		}
	}
	return hits
}
