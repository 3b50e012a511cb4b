package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testScorer() *Scorer {
	return NewScorer(Catalog{
		Controlled:     []string{"tramadol", "codeine", "alprazolam"},
		AbusePotential: []string{"tramadol", "dextromethorphan"},
	})
}

func TestAssessCleanRequestLeavesScoreUnchanged(t *testing.T) {
	s := testScorer()

	a := s.Assess(10, []RequestLine{
		{Name: "Paracetamol 500mg", Quantity: 2},
	}, false)

	assert.Equal(t, 0, a.Delta)
	assert.Equal(t, 10, a.NewScore)
	assert.Equal(t, LevelNormal, a.Level)
	assert.Empty(t, a.Factors)
	assert.False(t, a.Flagged)
}

func TestAssessControlledSubstance(t *testing.T) {
	s := testScorer()

	// Tramadol is both controlled (+40) and abuse-potential (+35).
	a := s.Assess(0, []RequestLine{
		{Name: "Tramadol 50mg", Quantity: 2, RequiresRx: true, PrescriptionOK: true},
	}, false)

	assert.Equal(t, 75, a.Delta)
	assert.Equal(t, LevelHigh, a.Level)
	assert.True(t, a.Flagged)
}

func TestAssessBulkQuantity(t *testing.T) {
	s := testScorer()

	a := s.Assess(0, []RequestLine{
		{Name: "Ibuprofen 400mg", Quantity: 50},
	}, false)

	assert.Equal(t, 25, a.Delta)
	assert.Equal(t, LevelNormal, a.Level)
}

func TestAssessPrescriptionRequiredWithoutPrescription(t *testing.T) {
	s := testScorer()

	a := s.Assess(0, []RequestLine{
		{Name: "Amoxicillin 500mg", Quantity: 1, RequiresRx: true, PrescriptionOK: false},
	}, false)

	assert.Equal(t, 30, a.Delta)
	assert.Equal(t, LevelNormal, a.Level)
}

func TestAssessMultipleControlledCompounds(t *testing.T) {
	s := testScorer()

	a := s.Assess(0, []RequestLine{
		{Name: "Tramadol 50mg", Quantity: 1, RequiresRx: true, PrescriptionOK: true},
		{Name: "Alprazolam 0.5mg", Quantity: 1, RequiresRx: true, PrescriptionOK: true},
	}, false)

	// Tramadol 40+35, alprazolam 40, plus 50 for multiple controlled.
	assert.Equal(t, 165, a.Delta)
	assert.Equal(t, 100, a.NewScore)
	assert.Equal(t, LevelCritical, a.Level)
	assert.Contains(t, a.Factors, "multiple controlled substances in one request")
}

func TestAssessScoresEachLineIndependently(t *testing.T) {
	s := testScorer()

	// Two abuse-potential medicines in bulk: (35+25) per line.
	a := s.Assess(0, []RequestLine{
		{Name: "Dextromethorphan syrup", Quantity: 12},
		{Name: "Dextromethorphan lozenges", Quantity: 15},
	}, false)

	assert.Equal(t, 120, a.Delta)
	assert.Len(t, a.Factors, 4)
}

func TestAssessValidatorRejection(t *testing.T) {
	s := testScorer()

	a := s.Assess(0, nil, true)

	assert.Equal(t, 15, a.Delta)
}

func TestScoreNeverDecreasesAndClampsAtHundred(t *testing.T) {
	s := testScorer()

	prior := 0
	for i := 0; i < 5; i++ {
		a := s.Assess(prior, []RequestLine{
			{Name: "Codeine syrup", Quantity: 20, RequiresRx: true, PrescriptionOK: false},
		}, false)
		assert.GreaterOrEqual(t, a.NewScore, prior, "score must be monotonic under repeated offenses")
		assert.LessOrEqual(t, a.NewScore, 100)
		prior = a.NewScore
	}
	assert.Equal(t, 100, prior)
}

func TestControlScheduleForcesControlled(t *testing.T) {
	s := testScorer()

	a := s.Assess(0, []RequestLine{
		{Name: "Some New Brand", Quantity: 1, ControlSchedule: "H1", RequiresRx: true, PrescriptionOK: true},
	}, false)

	assert.Equal(t, 40, a.Delta)
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, LevelNormal, LevelFor(0))
	assert.Equal(t, LevelNormal, LevelFor(30))
	assert.Equal(t, LevelElevated, LevelFor(31))
	assert.Equal(t, LevelElevated, LevelFor(60))
	assert.Equal(t, LevelHigh, LevelFor(61))
	assert.Equal(t, LevelHigh, LevelFor(80))
	assert.Equal(t, LevelCritical, LevelFor(81))
	assert.Equal(t, LevelCritical, LevelFor(100))
}
