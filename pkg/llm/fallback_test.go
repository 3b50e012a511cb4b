package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func check(t *testing.T, names ...string) *InteractionReport {
	t.Helper()
	items := make([]RequestedItem, 0, len(names))
	for _, n := range names {
		items = append(items, RequestedItem{MedicineName: n, Quantity: 1})
	}
	report, err := NewRuleBasedChecker().CheckInteractions(context.Background(), items)
	require.NoError(t, err)
	return report
}

func TestNoInteractions(t *testing.T) {
	report := check(t, "Paracetamol 500mg", "Cetirizine 10mg")

	assert.False(t, report.HasInteractions)
	assert.Equal(t, SeverityNone, report.Severity)
	assert.True(t, report.SafeToDispense)
}

func TestAnticoagulantPlusNSAIDIsSevere(t *testing.T) {
	report := check(t, "Warfarin 5mg", "Aspirin 75mg")

	assert.True(t, report.HasInteractions)
	assert.Equal(t, SeveritySevere, report.Severity)
	assert.False(t, report.SafeToDispense)
	require.NotEmpty(t, report.Interactions)
	assert.ElementsMatch(t, []string{"Warfarin 5mg", "Aspirin 75mg"}, report.Interactions[0].Medicines)
}

func TestBenzoPlusOpioidIsSevere(t *testing.T) {
	report := check(t, "Diazepam 5mg", "Tramadol 50mg")

	assert.Equal(t, SeveritySevere, report.Severity)
	assert.False(t, report.SafeToDispense)
}

func TestDuplicateMedicineIsModerate(t *testing.T) {
	report := check(t, "Crocin 650", "crocin 650")

	assert.True(t, report.HasInteractions)
	assert.Equal(t, SeverityModerate, report.Severity)
	assert.True(t, report.SafeToDispense, "moderate findings warn but do not block")
}

func TestTwoNSAIDsIsModerate(t *testing.T) {
	report := check(t, "Ibuprofen 400mg", "Diclofenac 50mg")

	assert.True(t, report.HasInteractions)
	assert.Equal(t, SeverityModerate, report.Severity)
	assert.True(t, report.SafeToDispense)
}

func TestSingleItemIsAlwaysSafe(t *testing.T) {
	report := check(t, "Warfarin 5mg")

	assert.False(t, report.HasInteractions)
	assert.True(t, report.SafeToDispense)
}
