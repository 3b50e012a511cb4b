// Package llm defines the contracts for external ML collaborators: text
// extraction, drug-interaction checking, severity assessment, prescription
// OCR, intent classification, and speech-to-text. The transports behind
// these interfaces live outside this repository; the only built-in
// implementation is the rule-based interaction fallback.
package llm

import (
	"context"
	"fmt"
	"time"
)

// Extractor parses a free-text user message into a structured intent.
type Extractor interface {
	Extract(ctx context.Context, message string) (*ExtractResult, error)
}

// InteractionChecker evaluates drug-drug interactions over a set of items.
type InteractionChecker interface {
	CheckInteractions(ctx context.Context, items []RequestedItem) (*InteractionReport, error)
}

// SeverityAssessor grades clinical severity of reported symptoms.
type SeverityAssessor interface {
	AssessSeverity(ctx context.Context, symptoms string, patientContext, history map[string]any) (*SeverityAssessment, error)
}

// OCRClient extracts structured prescription data from an image.
type OCRClient interface {
	Extract(ctx context.Context, image []byte) (*OCRResult, error)
}

// IntentClassifier assigns a conversational intent to a message.
type IntentClassifier interface {
	Classify(ctx context.Context, message string) (*IntentClassification, error)
}

// Transcriber converts voice input to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, format string) (*Transcription, error)
}

// InfrastructureError wraps a failed external call. Recoverable errors may
// be retried once per turn after RetryAfter.
type InfrastructureError struct {
	Op          string
	Err         error
	Recoverable bool
	RetryAfter  time.Duration
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error { return e.Err }

// NewTimeoutError builds the InfrastructureError used when an adapter call
// exceeds its per-call timeout.
func NewTimeoutError(op string, err error) *InfrastructureError {
	return &InfrastructureError{
		Op:          op,
		Err:         err,
		Recoverable: true,
		RetryAfter:  2 * time.Second,
	}
}
