package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPurchase(t *testing.T) {
	c := NewKeywordClassifier()

	cls, err := c.Classify(context.Background(), "I want to buy 2 Paracetamol 500mg")
	require.NoError(t, err)
	assert.Equal(t, IntentPurchase, cls.Intent)
	assert.False(t, cls.NeedsClarification)
	assert.GreaterOrEqual(t, cls.Confidence, 0.5)
}

func TestClassifyRefill(t *testing.T) {
	c := NewKeywordClassifier()

	cls, err := c.Classify(context.Background(), "please refill my blood pressure medicine")
	require.NoError(t, err)
	assert.Equal(t, IntentRefill, cls.Intent)
}

func TestClassifyUnmatchedNeedsClarification(t *testing.T) {
	c := NewKeywordClassifier()

	cls, err := c.Classify(context.Background(), "my stomach hurts badly")
	require.NoError(t, err)
	assert.Equal(t, IntentSymptom, cls.Intent)
	assert.True(t, cls.NeedsClarification)
	assert.Less(t, cls.Confidence, 0.35)
}

func TestExtractQuantityNameDosage(t *testing.T) {
	e := NewKeywordExtractor()

	res, err := e.Extract(context.Background(), "I need 2 Paracetamol 500mg and 1 Cetirizine 10mg")
	require.NoError(t, err)
	require.Len(t, res.Items, 2)

	assert.Equal(t, "Paracetamol 500mg", res.Items[0].MedicineName)
	assert.Equal(t, 2, res.Items[0].Quantity)
	assert.Equal(t, "500mg", res.Items[0].Dosage)

	assert.Equal(t, "Cetirizine 10mg", res.Items[1].MedicineName)
	assert.Equal(t, 1, res.Items[1].Quantity)
}

func TestExtractWithoutDosage(t *testing.T) {
	e := NewKeywordExtractor()

	res, err := e.Extract(context.Background(), "order 3 Crocin")
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Crocin", res.Items[0].MedicineName)
	assert.Equal(t, 3, res.Items[0].Quantity)
	assert.Empty(t, res.Items[0].Dosage)
}

func TestExtractNoItems(t *testing.T) {
	e := NewKeywordExtractor()

	res, err := e.Extract(context.Background(), "I want to buy something")
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, IntentPurchase, res.Intent)
}
