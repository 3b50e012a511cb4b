package llm

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// KeywordClassifier is a deterministic IntentClassifier used when the
// semantic classifier service is not wired. It mirrors the service contract:
// confidence below 0.35 yields IntentSymptom with NeedsClarification.
type KeywordClassifier struct{}

// NewKeywordClassifier creates the fallback classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

var intentKeywords = map[Intent][]string{
	IntentPurchase: {"buy", "need", "want", "order", "purchase", "get me"},
	IntentRefill:   {"refill", "again", "repeat", "ran out", "same as last"},
	IntentInquiry:  {"what", "how", "when", "price", "cost", "available", "?"},
}

// Classify implements IntentClassifier.
func (k *KeywordClassifier) Classify(_ context.Context, message string) (*IntentClassification, error) {
	lower := strings.ToLower(message)

	best := IntentUnknown
	bestHits := 0
	for intent, words := range intentKeywords {
		hits := 0
		for _, w := range words {
			if strings.Contains(lower, w) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = intent, hits
		}
	}

	if bestHits == 0 {
		return &IntentClassification{
			Intent:             IntentSymptom,
			Confidence:         0.2,
			Reasoning:          "no purchase/refill/inquiry keywords matched",
			NeedsClarification: true,
		}, nil
	}

	confidence := 0.5 + 0.1*float64(bestHits)
	if confidence > 0.9 {
		confidence = 0.9
	}
	return &IntentClassification{
		Intent:     best,
		Confidence: confidence,
		Reasoning:  "keyword match",
	}, nil
}

// itemPattern matches "<qty> <name...> [<dosage>]" runs such as
// "2 Paracetamol 500mg" or "1 Warfarin 5mg".
var itemPattern = regexp.MustCompile(`(?i)\b(\d+)\s+([A-Za-z][A-Za-z -]*?)\s*(\d+\s?(?:mg|ml|mcg|g))?(?:\s*(?:,|and|\.|$))`)

// KeywordExtractor is a deterministic Extractor used when the LLM extraction
// service is not wired. It recognizes "quantity name dosage" runs.
type KeywordExtractor struct {
	classifier *KeywordClassifier
}

// NewKeywordExtractor creates the fallback extractor.
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{classifier: NewKeywordClassifier()}
}

// Extract implements Extractor.
func (k *KeywordExtractor) Extract(ctx context.Context, message string) (*ExtractResult, error) {
	cls, err := k.classifier.Classify(ctx, message)
	if err != nil {
		return nil, err
	}

	result := &ExtractResult{
		Intent:   cls.Intent,
		Language: "en",
	}

	for _, match := range itemPattern.FindAllStringSubmatch(message, -1) {
		qty, err := strconv.Atoi(match[1])
		if err != nil || qty < 1 {
			continue
		}
		name := strings.TrimSpace(match[2])
		dosage := strings.TrimSpace(match[3])
		if name == "" {
			continue
		}
		if dosage != "" {
			// Keep the catalog-style display name intact.
			name = name + " " + strings.ReplaceAll(dosage, " ", "")
		}
		result.Items = append(result.Items, RequestedItem{
			MedicineName: name,
			Dosage:       dosage,
			Quantity:     qty,
		})
	}

	if len(result.Items) > 0 && result.Intent == IntentSymptom {
		result.Intent = IntentPurchase
	}
	return result, nil
}
