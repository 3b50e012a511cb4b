// Package risk scores order requests against the patient's history and
// the clinical catalogs. Scoring is pure; persistence is a separate,
// transactional step.
package risk

import (
	"strings"
)

// Risk levels, ordered by severity.
const (
	LevelNormal   = "normal"
	LevelElevated = "elevated"
	LevelHigh     = "high"
	LevelCritical = "critical"
)

// Catalog names the substances the scorer treats specially. Loaded from
// config; matching is case-insensitive substring so "Tramadol 50mg"
// hits "tramadol".
type Catalog struct {
	Controlled     []string
	AbusePotential []string
}

// RequestLine is the slice of an order line scoring needs.
type RequestLine struct {
	Name            string
	Quantity        int
	RequiresRx      bool
	PrescriptionOK  bool
	ControlSchedule string
}

// Assessment is the outcome of a pure scoring pass.
type Assessment struct {
	PriorScore int
	Delta      int
	NewScore   int
	Level      string
	Factors    []string
	Flagged    bool
}

// Scorer is stateless; it carries only the catalogs.
type Scorer struct {
	catalog Catalog
}

// NewScorer builds a scorer over the given catalogs.
func NewScorer(catalog Catalog) *Scorer {
	return &Scorer{catalog: catalog}
}

// Assess computes the risk delta for a request on top of the prior
// score. Scores clamp to [0, 100]; the level follows the new score.
func (s *Scorer) Assess(priorScore int, lines []RequestLine, validatorRejected bool) Assessment {
	var (
		delta      int
		factors    []string
		controlled int
	)

	// Factors accumulate per line; three bulk requests cost three times
	// what one does.
	for _, line := range lines {
		if s.isControlled(line) {
			controlled++
			delta += 40
			factors = append(factors, "controlled substance requested: "+line.Name)
		}
		if s.matches(line.Name, s.catalog.AbusePotential) {
			delta += 35
			factors = append(factors, "abuse-potential medicine requested: "+line.Name)
		}
		if line.Quantity > 10 {
			delta += 25
			factors = append(factors, "bulk quantity requested: "+line.Name)
		}
		if line.RequiresRx && !line.PrescriptionOK {
			delta += 30
			factors = append(factors, "prescription-only medicine without valid prescription: "+line.Name)
		}
	}

	if controlled >= 2 {
		delta += 50
		factors = append(factors, "multiple controlled substances in one request")
	}
	if validatorRejected {
		delta += 15
		factors = append(factors, "request rejected by medical validation")
	}

	newScore := priorScore + delta
	if newScore > 100 {
		newScore = 100
	}
	if newScore < 0 {
		newScore = 0
	}

	level := LevelFor(newScore)
	return Assessment{
		PriorScore: priorScore,
		Delta:      delta,
		NewScore:   newScore,
		Level:      level,
		Factors:    factors,
		Flagged:    level == LevelHigh || level == LevelCritical,
	}
}

// LevelFor maps a score to its band.
func LevelFor(score int) string {
	switch {
	case score <= 30:
		return LevelNormal
	case score <= 60:
		return LevelElevated
	case score <= 80:
		return LevelHigh
	default:
		return LevelCritical
	}
}

func (s *Scorer) isControlled(line RequestLine) bool {
	if line.ControlSchedule != "" {
		return true
	}
	return s.matches(line.Name, s.catalog.Controlled)
}

func (s *Scorer) matches(name string, catalog []string) bool {
	lower := strings.ToLower(name)
	for _, entry := range catalog {
		if entry == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(entry)) {
			return true
		}
	}
	return false
}
