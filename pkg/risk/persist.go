package risk

import (
	"context"
	"fmt"
	"time"

	"github.com/arogya-labs/aushadhi/ent"
	"github.com/arogya-labs/aushadhi/ent/patient"
)

// Persist writes the assessment onto the patient row under a row lock,
// re-reading the prior score so concurrent assessments serialize rather
// than clobber each other. Returns the score actually stored.
func Persist(ctx context.Context, tx *ent.Tx, pid string, a Assessment) (int, error) {
	row, err := tx.Patient.Query().
		Where(patient.Pid(pid)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return 0, fmt.Errorf("lock patient %s: %w", pid, err)
	}

	// The locked row is authoritative; the assessment's prior may be
	// stale if another session scored in between.
	newScore := row.RiskScore + a.Delta
	if newScore > 100 {
		newScore = 100
	}
	if newScore < 0 {
		newScore = 0
	}

	level := LevelFor(newScore)
	update := row.Update().
		SetRiskScore(newScore).
		SetRiskLevel(patient.RiskLevel(level)).
		SetRiskUpdatedAt(time.Now())
	if level == LevelHigh || level == LevelCritical {
		update.SetFlaggedForReview(true)
	}
	if len(a.Factors) > 0 {
		update.SetRiskFlags(mergeFlags(row.RiskFlags, a.Factors))
	}

	if _, err := update.Save(ctx); err != nil {
		return 0, fmt.Errorf("persist risk score for %s: %w", pid, err)
	}
	return newScore, nil
}

// mergeFlags appends new factors, skipping exact duplicates, and keeps
// the list bounded.
func mergeFlags(existing, incoming []string) []string {
	const maxFlags = 50

	seen := make(map[string]struct{}, len(existing))
	for _, f := range existing {
		seen[f] = struct{}{}
	}
	merged := append([]string(nil), existing...)
	for _, f := range incoming {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		merged = append(merged, f)
	}
	if len(merged) > maxFlags {
		merged = merged[len(merged)-maxFlags:]
	}
	return merged
}
