package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/arogya-labs/aushadhi/ent"
	"github.com/arogya-labs/aushadhi/pkg/store"
	"github.com/arogya-labs/aushadhi/pkg/trace"
)

// maxAlternatives bounds the substitute list per unavailable line.
const maxAlternatives = 5

// InventoryAgent resolves requested medicines against the catalog and
// proposes replacements for what it cannot fill. It reads stock without
// locks; the authoritative check happens again inside fulfillment.
type InventoryAgent struct {
	store  *store.Store
	traces *trace.Manager
	logger *slog.Logger
}

// NewInventoryAgent wires the agent over the store.
func NewInventoryAgent(st *store.Store, tm *trace.Manager, logger *slog.Logger) *InventoryAgent {
	return &InventoryAgent{
		store:  st,
		traces: tm,
		logger: logger.With("agent", InventoryAgentName),
	}
}

// Run resolves every requested line and records the result on the state.
func (a *InventoryAgent) Run(ctx context.Context, state *PipelineState) (*InventoryResult, error) {
	parent := a.traces.Emit(state.SessionID, InventoryAgentName, "inventory_check",
		trace.TypeThinking, trace.StatusStarted,
		map[string]any{"items": len(state.Items)}, "")

	lines := make([]ResolvedLine, 0, len(state.Items))
	var fillable int
	var total float64
	for _, item := range state.Items {
		line, err := a.resolve(ctx, state, item)
		if err != nil {
			a.traces.Emit(state.SessionID, InventoryAgentName, "inventory_check",
				trace.TypeError, trace.StatusFailed,
				map[string]any{"error": err.Error()}, parent.ID)
			return nil, err
		}
		if line.Availability == AvailabilityAvailable {
			fillable++
			total += line.UnitPrice * float64(item.Quantity)
		}
		lines = append(lines, line)
	}

	score := 0.0
	if len(lines) > 0 {
		score = float64(fillable) / float64(len(lines))
	}

	// The best-ranked substitute for the first unfillable line is offered
	// as the request-level replacement.
	var replacement *Alternative
	for i := range lines {
		if lines[i].Availability != AvailabilityAvailable && len(lines[i].Alternatives) > 0 {
			alt := lines[i].Alternatives[0]
			replacement = &alt
			break
		}
	}

	result := &InventoryResult{
		Outcome: Outcome{
			Agent:      InventoryAgentName,
			Decision:   inventoryDecision(score),
			Reasoning:  inventoryReasoning(lines, fillable),
			Confidence: score,
			FinishedAt: time.Now(),
		},
		Lines:             lines,
		AvailabilityScore: score,
		TotalAmount:       math.Round(total*100) / 100,
		Replacement:       replacement,
	}
	state.Inventory = result

	a.traces.Emit(state.SessionID, InventoryAgentName, "inventory_check",
		trace.TypeDecision, trace.StatusCompleted,
		map[string]any{
			"confidence":         result.Confidence,
			"availability_score": result.AvailabilityScore,
			"fillable":           fillable,
			"total_amount":       result.TotalAmount,
		}, parent.ID)

	a.logger.Info("inventory check complete",
		"session_id", state.SessionID,
		"lines", len(lines),
		"fillable", fillable,
		"score", score)
	return result, nil
}

func (a *InventoryAgent) resolve(ctx context.Context, state *PipelineState, item RequestedLine) (ResolvedLine, error) {
	line := ResolvedLine{Requested: item}

	match, err := a.store.GetMedicine(ctx, item.Name)
	if errors.Is(err, store.ErrMedicineNotFound) {
		line.Availability = AvailabilityNotFound
		alts, err := a.alternatives(ctx, state, nil, item.Name)
		if err != nil {
			return line, err
		}
		line.Alternatives = alts
		return line, nil
	}
	if err != nil {
		return line, fmt.Errorf("resolve %q: %w", item.Name, err)
	}

	line.MedicineID = match.ID
	line.MatchedName = match.Name
	line.InStock = match.Stock
	line.UnitPrice = match.Price

	switch {
	case match.Stock >= item.Quantity:
		line.Availability = AvailabilityAvailable
	case match.Stock > 0:
		line.Availability = AvailabilityPartial
	default:
		line.Availability = AvailabilityOutOfStock
	}

	if line.Availability != AvailabilityAvailable {
		alts, err := a.alternatives(ctx, state, match.Medicine, item.Name)
		if err != nil {
			return line, err
		}
		line.Alternatives = alts
	}
	return line, nil
}

// alternatives gathers replacement candidates from the generic
// equivalent, same-base-name brands, and the category shelf, then ranks
// them by (-stock, price). Candidates a patient is allergic to never
// surface.
func (a *InventoryAgent) alternatives(ctx context.Context, state *PipelineState, matched *ent.Medicine, requestedName string) ([]Alternative, error) {
	base := BaseName(requestedName)
	seen := map[int]bool{}
	var candidates []*ent.Medicine

	collect := func(meds []*ent.Medicine) {
		for _, med := range meds {
			if med.Stock <= 0 || seen[med.ID] {
				continue
			}
			if matched != nil && med.ID == matched.ID {
				continue
			}
			if a.allergicTo(state, med) {
				continue
			}
			seen[med.ID] = true
			candidates = append(candidates, med)
		}
	}

	if matched != nil && matched.GenericEquivalent != "" {
		if gen, err := a.store.GetMedicine(ctx, matched.GenericEquivalent); err == nil {
			collect([]*ent.Medicine{gen.Medicine})
		} else if !errors.Is(err, store.ErrMedicineNotFound) {
			return nil, fmt.Errorf("generic equivalent lookup: %w", err)
		}
	}
	if base != "" {
		meds, err := a.store.SearchByBaseName(ctx, base, requestedName, maxAlternatives*2)
		if err != nil {
			return nil, fmt.Errorf("base-name search: %w", err)
		}
		collect(meds)
	}
	if matched != nil {
		meds, err := a.store.ListByCategory(ctx, matched.Category, matched.Name, maxAlternatives*2)
		if err != nil {
			return nil, fmt.Errorf("category search: %w", err)
		}
		collect(meds)
	}

	out := make([]Alternative, 0, len(candidates))
	for _, med := range candidates {
		tier, override := classifySubstitution(matched, med)
		out = append(out, Alternative{
			MedicineID:       med.ID,
			OriginalName:     requestedName,
			Name:             med.Name,
			Price:            med.Price,
			InStock:          med.Stock,
			Tier:             tier,
			OverrideRequired: override,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].InStock != out[j].InStock {
			return out[i].InStock > out[j].InStock
		}
		return out[i].Price < out[j].Price
	})
	if len(out) > maxAlternatives {
		out = out[:maxAlternatives]
	}
	return out, nil
}

// classifySubstitution keys the confidence tier to what the catalog can
// prove. A shared active ingredient dispenses without an override;
// anything weaker needs a pharmacist to sign off.
func classifySubstitution(matched, candidate *ent.Medicine) (string, bool) {
	if matched == nil {
		// Base-name hit without a catalog record to compare against.
		return TierMedium, true
	}
	switch {
	case sharesIngredient(matched.ActiveIngredients, candidate.ActiveIngredients):
		return TierHigh, false
	case sameGenericEquivalent(matched, candidate):
		return TierMedium, true
	case strings.EqualFold(matched.Category, candidate.Category):
		return TierLow, true
	}
	return TierLow, true
}

func sharesIngredient(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x != "" && strings.EqualFold(strings.TrimSpace(x), strings.TrimSpace(y)) {
				return true
			}
		}
	}
	return false
}

func sameGenericEquivalent(matched, candidate *ent.Medicine) bool {
	switch {
	case strings.EqualFold(matched.GenericEquivalent, candidate.Name):
		return matched.GenericEquivalent != ""
	case strings.EqualFold(candidate.GenericEquivalent, matched.Name):
		return candidate.GenericEquivalent != ""
	case matched.GenericEquivalent != "" && strings.EqualFold(matched.GenericEquivalent, candidate.GenericEquivalent):
		return true
	}
	return false
}

func (a *InventoryAgent) allergicTo(state *PipelineState, med *ent.Medicine) bool {
	if state.Patient == nil {
		return false
	}
	for _, allergy := range state.Patient.Allergies {
		al := strings.ToLower(allergy)
		if strings.Contains(strings.ToLower(med.Name), al) {
			return true
		}
		for _, ingredient := range med.ActiveIngredients {
			if strings.Contains(strings.ToLower(ingredient), al) {
				return true
			}
		}
	}
	return false
}

var (
	dosageToken = regexp.MustCompile(`(?i)^\d+(?:\.\d+)?\s?(mg|ml|mcg|g|iu)$`)
	parenToken  = regexp.MustCompile(`^\(.*\)$`)
)

var formTokens = map[string]bool{
	"tablet": true, "tablets": true, "tab": true, "tabs": true,
	"capsule": true, "capsules": true, "cap": true, "caps": true,
	"syrup": true, "suspension": true, "injection": true, "cream": true,
	"gel": true, "drops": true, "ointment": true, "spray": true,
}

// BaseName strips dosage, form, and parenthesized tokens so "Crocin
// 500mg Tablet (Advance)" searches as "Crocin".
func BaseName(name string) string {
	var kept []string
	for _, tok := range strings.Fields(name) {
		switch {
		case dosageToken.MatchString(tok):
		case parenToken.MatchString(tok):
		case formTokens[strings.ToLower(tok)]:
		default:
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}

func inventoryDecision(score float64) string {
	if score > 0 {
		return DecisionApproved
	}
	return DecisionRejected
}

func inventoryReasoning(lines []ResolvedLine, fillable int) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%s: %s", l.Requested.Name, l.Availability))
	}
	return fmt.Sprintf("%d/%d lines fillable (%s)", fillable, len(lines), strings.Join(parts, ", "))
}
