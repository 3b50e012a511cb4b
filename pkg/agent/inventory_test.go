package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arogya-labs/aushadhi/ent"
)

func TestBaseName(t *testing.T) {
	cases := map[string]string{
		"Crocin 500mg Tablet (Advance)": "Crocin",
		"Paracetamol 650mg":             "Paracetamol",
		"Benadryl Syrup":                "Benadryl",
		"Vitamin D3 60000 IU Capsules":  "Vitamin D3 60000 IU",
		"Volini Spray":                  "Volini",
		"Azithromycin":                  "Azithromycin",
		"Calpol 250mg Suspension":       "Calpol",
	}
	for in, want := range cases {
		assert.Equal(t, want, BaseName(in), "input %q", in)
	}
}

func TestBaseNameKeepsUnrecognizedTokens(t *testing.T) {
	assert.Equal(t, "Combiflam Plus", BaseName("Combiflam Plus 400mg tabs"))
}

func TestAllergicTo(t *testing.T) {
	agent := &InventoryAgent{}
	state := &PipelineState{
		Patient: &PatientInfo{Allergies: []string{"Penicillin"}},
	}

	assert.True(t, agent.allergicTo(state, &ent.Medicine{Name: "Penicillin V 250mg"}))
	assert.True(t, agent.allergicTo(state, &ent.Medicine{
		Name:              "Augmentin 625mg",
		ActiveIngredients: []string{"amoxicillin", "penicillin derivative"},
	}))
	assert.False(t, agent.allergicTo(state, &ent.Medicine{
		Name:              "Azithromycin 500mg",
		ActiveIngredients: []string{"azithromycin"},
	}))
	assert.False(t, agent.allergicTo(&PipelineState{}, &ent.Medicine{Name: "Penicillin"}))
}

func TestClassifySubstitution(t *testing.T) {
	crocin := &ent.Medicine{
		Name:              "Crocin 650",
		Category:          "analgesic",
		GenericEquivalent: "Paracetamol 650mg",
		ActiveIngredients: []string{"paracetamol"},
	}

	// Same active ingredient dispenses without a pharmacist override.
	tier, override := classifySubstitution(crocin, &ent.Medicine{
		Name:              "Dolo 650",
		Category:          "analgesic",
		ActiveIngredients: []string{"Paracetamol"},
	})
	assert.Equal(t, TierHigh, tier)
	assert.False(t, override)

	// Shared generic equivalent without a proven ingredient overlap
	// needs a sign-off.
	tier, override = classifySubstitution(crocin, &ent.Medicine{
		Name:              "Calpol 650",
		Category:          "analgesic",
		GenericEquivalent: "paracetamol 650mg",
	})
	assert.Equal(t, TierMedium, tier)
	assert.True(t, override)

	// Same shelf only.
	tier, override = classifySubstitution(crocin, &ent.Medicine{
		Name:              "Ibugesic 400",
		Category:          "Analgesic",
		ActiveIngredients: []string{"ibuprofen"},
	})
	assert.Equal(t, TierLow, tier)
	assert.True(t, override)

	// No catalog record for the request means nothing can be proven.
	tier, override = classifySubstitution(nil, &ent.Medicine{Name: "Dolo 650"})
	assert.Equal(t, TierMedium, tier)
	assert.True(t, override)
}

func TestSameGenericEquivalent(t *testing.T) {
	crocin := &ent.Medicine{Name: "Crocin 650", GenericEquivalent: "Paracetamol 650mg"}

	assert.True(t, sameGenericEquivalent(crocin, &ent.Medicine{Name: "paracetamol 650mg"}))
	assert.True(t, sameGenericEquivalent(&ent.Medicine{Name: "Paracetamol 650mg"}, crocin))
	assert.True(t, sameGenericEquivalent(crocin, &ent.Medicine{Name: "Calpol 650", GenericEquivalent: "paracetamol 650mg"}))
	assert.False(t, sameGenericEquivalent(crocin, &ent.Medicine{Name: "Ibugesic 400"}))
	assert.False(t, sameGenericEquivalent(&ent.Medicine{Name: "A"}, &ent.Medicine{Name: "B"}))
}

func TestInventoryDecision(t *testing.T) {
	assert.Equal(t, DecisionApproved, inventoryDecision(0.5))
	assert.Equal(t, DecisionApproved, inventoryDecision(1))
	assert.Equal(t, DecisionRejected, inventoryDecision(0))
}
