package fusion

import (
	"math"
	"strings"
	"sync"

	"github.com/arogya-labs/aushadhi/pkg/trace"
)

// DefaultExpectedAgents is the number of pipeline agents a full purchase
// flow runs (risk, validator, inventory, fulfillment).
const DefaultExpectedAgents = 4

var safetyWeights = map[string]float64{
	ScoreIntentClassification: 0.20,
	ScoreOCRConfidence:        0.15,
	ScoreSeverityInverted:     0.40,
	ScoreContraindicationOK:   0.25,
}

var fulfillmentWeights = map[string]float64{
	ScoreInventoryMatch:     0.45,
	ScoreIdentityResolution: 0.20,
	ScoreIntentExtraction:   0.20,
	ScorePipelineCompletion: 0.15,
}

// Calculator is a stateful per-session reducer over trace events. It is
// mutated only by the trace observer goroutine for its session; subscriber
// registration is independently locked.
type Calculator struct {
	sessionID      string
	expectedAgents int

	scores          map[string]float64 // nil components simply absent
	agentsCompleted map[string]bool
	phase           Phase
	haltReason      string
	lastSeverity    float64
	safeToDispense  bool

	last  *State
	subMu sync.Mutex
	subs  map[chan State]struct{}
}

// NewCalculator creates a calculator for one session.
func NewCalculator(sessionID string) *Calculator {
	return &Calculator{
		sessionID:      sessionID,
		expectedAgents: DefaultExpectedAgents,
		scores: map[string]float64{
			// Assumed clear until a contraindication signal arrives.
			ScoreContraindicationOK: 1,
		},
		agentsCompleted: make(map[string]bool),
		phase:           PhaseIntake,
		safeToDispense:  true,
		subs:            make(map[chan State]struct{}),
	}
}

// Subscribe registers a channel for fusion updates. Delivery is best-effort:
// a full channel misses the update (the next one carries the newest state).
func (c *Calculator) Subscribe(ch chan State) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.subs[ch] = struct{}{}
}

// Unsubscribe removes a previously registered channel.
func (c *Calculator) Unsubscribe(ch chan State) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	delete(c.subs, ch)
}

// Current returns the latest computed state, or nil before any event.
func (c *Calculator) Current() *State {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	if c.last == nil {
		return nil
	}
	snap := *c.last
	return &snap
}

// Observe folds one trace event into the fusion state and notifies
// subscribers when any scalar changed.
func (c *Calculator) Observe(evt trace.Event) {
	agentKey := normalizeAgent(evt.Agent)

	// 1. Completion accounting. pipeline_completion only ever grows.
	if evt.Status == trace.StatusCompleted && !c.agentsCompleted[agentKey] {
		c.agentsCompleted[agentKey] = true
		c.scores[ScorePipelineCompletion] = math.Min(1,
			float64(len(c.agentsCompleted))/float64(c.expectedAgents))
	}

	// 2. Phase transitions.
	c.updatePhase(agentKey, evt)

	// 3. Concrete signals from details.
	c.extractSignals(agentKey, evt.Details)

	// 4. Recompute and publish on change.
	next := c.compute()
	if c.changed(next) {
		c.publish(next)
	}
}

func (c *Calculator) updatePhase(agentKey string, evt trace.Event) {
	if evt.Status == trace.StatusFailed || evt.Type == trace.TypeError {
		c.phase = PhaseHalted
		if reason, ok := evt.Details["error"].(string); ok && reason != "" {
			c.haltReason = reason
		} else {
			c.haltReason = evt.Agent + ": " + evt.Step
		}
		return
	}
	if c.phase == PhaseHalted {
		return
	}

	switch {
	case strings.Contains(agentKey, "identity") || strings.Contains(agentKey, "front_desk"):
		c.phase = PhaseIntake
	case strings.Contains(agentKey, "vision") || strings.Contains(agentKey, "validator"):
		c.phase = PhaseValidation
	case strings.Contains(agentKey, "inventory"):
		c.phase = PhaseInventory
	case strings.Contains(agentKey, "fulfillment"):
		if evt.Status == trace.StatusCompleted {
			c.phase = PhaseComplete
		} else {
			c.phase = PhaseFulfillment
		}
	}
}

func (c *Calculator) extractSignals(agentKey string, details map[string]any) {
	if details == nil {
		return
	}

	if v, ok := floatDetail(details, "confidence"); ok {
		switch {
		case strings.Contains(agentKey, "intent"):
			c.scores[ScoreIntentClassification] = clamp01(v)
		case strings.Contains(agentKey, "vision") || strings.Contains(agentKey, "ocr"):
			c.scores[ScoreOCRConfidence] = clamp01(v)
		case strings.Contains(agentKey, "identity") || strings.Contains(agentKey, "front_desk"):
			c.scores[ScoreIdentityResolution] = clamp01(v)
		}
	}
	if v, ok := floatDetail(details, "confidence_score"); ok {
		c.scores[ScoreIntentExtraction] = clamp01(v)
	}
	if v, ok := floatDetail(details, "severity_score"); ok {
		c.lastSeverity = v
		c.scores[ScoreSeverityInverted] = clamp01(1 - v/10)
	}
	if v, ok := details["safe_to_dispense"].(bool); ok {
		c.safeToDispense = v
		if v {
			c.scores[ScoreContraindicationOK] = 1
		} else {
			c.scores[ScoreContraindicationOK] = 0
		}
	}
	if v, ok := floatDetail(details, "match_score"); ok {
		c.scores[ScoreInventoryMatch] = clamp01(v)
	}
	if v, ok := floatDetail(details, "availability_score"); ok {
		c.scores[ScoreInventoryMatch] = clamp01(v)
	}
}

func (c *Calculator) compute() State {
	safety := weightedAverage(c.scores, safetyWeights)
	fulfillment := weightedAverage(c.scores, fulfillmentWeights)

	alert := AlertNominal
	switch {
	case safety < 0.30 || !c.safeToDispense:
		alert = AlertCritical
	case safety < 0.60 || c.lastSeverity > 7:
		alert = AlertWarn
	}

	mode := ModeFulfillment
	if c.phase == PhaseIntake || c.phase == PhaseValidation {
		mode = ModeSafety
	}

	contributing := make(map[string]float64, len(c.scores))
	for k, v := range c.scores {
		contributing[k] = v
	}

	return State{
		SessionID:             c.sessionID,
		SafetyConfidence:      safety,
		FulfillmentConfidence: fulfillment,
		DominantMode:          mode,
		PipelinePhase:         c.phase,
		ContributingScores:    contributing,
		AlertLevel:            alert,
		HaltReason:            c.haltReason,
	}
}

func (c *Calculator) changed(next State) bool {
	if c.last == nil {
		return true
	}
	prev := c.last
	return prev.SafetyConfidence != next.SafetyConfidence ||
		prev.FulfillmentConfidence != next.FulfillmentConfidence ||
		prev.AlertLevel != next.AlertLevel ||
		prev.PipelinePhase != next.PipelinePhase ||
		prev.DominantMode != next.DominantMode ||
		prev.HaltReason != next.HaltReason
}

func (c *Calculator) publish(next State) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.last = &next
	for ch := range c.subs {
		select {
		case ch <- next:
		default:
		}
	}
}

// weightedAverage computes the weight-normalized mean over the components
// present in scores; absent components are excluded from the denominator.
func weightedAverage(scores map[string]float64, weights map[string]float64) float64 {
	var sum, totalWeight float64
	for key, w := range weights {
		v, ok := scores[key]
		if !ok {
			continue
		}
		sum += v * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return sum / totalWeight
}

func floatDetail(details map[string]any, key string) (float64, bool) {
	switch v := details[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func normalizeAgent(agent string) string {
	return strings.ToLower(strings.ReplaceAll(agent, " ", "_"))
}
