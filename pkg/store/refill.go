package store

import (
	"context"
	"fmt"
	"time"

	"github.com/arogya-labs/aushadhi/ent/refillprediction"
)

// defaultSupplyDays is the days-of-supply heuristic used when no dosage
// frequency is known.
const defaultSupplyDays = 30

// RefillInput is one fulfilled line feeding the refill predictor.
type RefillInput struct {
	MedicineName string
	Quantity     int
}

// RecordRefillPredictions upserts a depletion prediction per fulfilled
// line. Confidence is modest; it is a heuristic, not a model.
func (s *Store) RecordRefillPredictions(ctx context.Context, userID string, items []RefillInput) error {
	for _, item := range items {
		supplyDays := defaultSupplyDays
		if item.Quantity > 0 && item.Quantity < supplyDays {
			supplyDays = item.Quantity
		}
		depletion := time.Now().AddDate(0, 0, supplyDays)

		err := s.client.RefillPrediction.Create().
			SetUserID(userID).
			SetMedicineName(item.MedicineName).
			SetPredictedDepletionDate(depletion).
			SetConfidence(0.5).
			OnConflictColumns(refillprediction.FieldUserID, refillprediction.FieldMedicineName).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("refill prediction upsert for %q: %w", item.MedicineName, err)
		}
	}
	return nil
}

// DuePredictions returns predictions whose depletion date has passed and
// whose reminder has not been sent yet.
func (s *Store) DuePredictions(ctx context.Context, asOf time.Time, limit int) ([]*RefillDue, error) {
	rows, err := s.client.RefillPrediction.Query().
		Where(
			refillprediction.PredictedDepletionDateLTE(asOf),
			refillprediction.ReminderSent(false),
		).
		Order(refillprediction.ByPredictedDepletionDate()).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("due predictions query: %w", err)
	}

	out := make([]*RefillDue, 0, len(rows))
	for _, r := range rows {
		out = append(out, &RefillDue{
			UserID:       r.UserID,
			MedicineName: r.MedicineName,
			PredictedAt:  r.PredictedDepletionDate,
			Confidence:   r.Confidence,
		})
	}
	return out, nil
}

// RefillDue is a reminder-ready prediction row.
type RefillDue struct {
	UserID       string
	MedicineName string
	PredictedAt  time.Time
	Confidence   float64
}
