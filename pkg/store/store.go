// Package store is the transactional inventory/order layer: medicine
// catalog with fuzzy lookup, patient resolution, and the locked
// decrement-and-create-order transaction used by fulfillment.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agext/levenshtein"
	"github.com/google/uuid"

	"github.com/arogya-labs/aushadhi/ent"
	"github.com/arogya-labs/aushadhi/ent/medicine"
	"github.com/arogya-labs/aushadhi/ent/patient"
)

// fuzzyThreshold is the minimum Levenshtein similarity accepted by the
// third lookup tier.
const fuzzyThreshold = 0.70

// catalogScanCap bounds the rows loaded for the fuzzy tier so a large
// catalog cannot turn one lookup into a table scan of everything.
const catalogScanCap = 5000

// MatchKind records which lookup tier produced a medicine match.
type MatchKind string

// Match kinds.
const (
	MatchExact     MatchKind = "exact"
	MatchSubstring MatchKind = "substring"
	MatchFuzzy     MatchKind = "fuzzy"
)

// MedicineMatch is a catalog hit annotated with how it was found.
type MedicineMatch struct {
	*ent.Medicine
	MatchKind  MatchKind
	Similarity float64
}

// Store provides inventory, order, and patient persistence on top of Ent.
type Store struct {
	client *ent.Client
}

// New creates a Store.
func New(client *ent.Client) *Store {
	return &Store{client: client}
}

// Client exposes the underlying Ent client for read-only queries in tests
// and admin handlers.
func (s *Store) Client() *ent.Client {
	return s.client
}

// GetMedicine resolves a medicine name through three tiers: exact
// case-insensitive, substring, then Levenshtein similarity ≥ 0.70 (best
// match wins). Returns ErrMedicineNotFound when every tier misses.
func (s *Store) GetMedicine(ctx context.Context, name string) (*MedicineMatch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrMedicineNotFound)
	}

	// Tier 1: exact, case-insensitive.
	m, err := s.client.Medicine.Query().
		Where(medicine.NameEqualFold(name)).
		Only(ctx)
	if err == nil {
		return &MedicineMatch{Medicine: m, MatchKind: MatchExact, Similarity: 1}, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("medicine lookup: %w", err)
	}

	// Tier 2: substring. Shortest name first so "paracetamol" prefers
	// "Paracetamol 500mg" over "Paracetamol 650mg Extended Release".
	candidates, err := s.client.Medicine.Query().
		Where(medicine.NameContainsFold(name)).
		Order(ent.Asc(medicine.FieldName)).
		Limit(10).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("medicine substring lookup: %w", err)
	}
	if len(candidates) > 0 {
		best := candidates[0]
		for _, c := range candidates[1:] {
			if len(c.Name) < len(best.Name) {
				best = c
			}
		}
		return &MedicineMatch{Medicine: best, MatchKind: MatchSubstring, Similarity: 1}, nil
	}

	// Tier 3: Levenshtein over a capped catalog scan.
	all, err := s.client.Medicine.Query().
		Limit(catalogScanCap).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("medicine catalog scan: %w", err)
	}

	var (
		best     *ent.Medicine
		bestSim  float64
		needleLC = strings.ToLower(name)
	)
	for _, c := range all {
		sim := levenshtein.Similarity(needleLC, strings.ToLower(c.Name), nil)
		if sim > bestSim {
			best, bestSim = c, sim
		}
	}
	if best != nil && bestSim >= fuzzyThreshold {
		return &MedicineMatch{Medicine: best, MatchKind: MatchFuzzy, Similarity: bestSim}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrMedicineNotFound, name)
}

// ListByCategory returns in-stock medicines of a category, excluding one
// name, ordered by (-stock, price). Used by the inventory agent to propose
// alternatives.
func (s *Store) ListByCategory(ctx context.Context, category, excludeName string, limit int) ([]*ent.Medicine, error) {
	return s.client.Medicine.Query().
		Where(
			medicine.CategoryEQ(category),
			medicine.StockGT(0),
			medicine.NameNEQ(excludeName),
		).
		Order(ent.Desc(medicine.FieldStock), ent.Asc(medicine.FieldPrice)).
		Limit(limit).
		All(ctx)
}

// SearchByBaseName returns in-stock medicines whose name contains the given
// base term, ordered by (-stock, price).
func (s *Store) SearchByBaseName(ctx context.Context, base, excludeName string, limit int) ([]*ent.Medicine, error) {
	return s.client.Medicine.Query().
		Where(
			medicine.NameContainsFold(base),
			medicine.StockGT(0),
			medicine.NameNEQ(excludeName),
		).
		Order(ent.Desc(medicine.FieldStock), ent.Asc(medicine.FieldPrice)).
		Limit(limit).
		All(ctx)
}

// ResolvePatient upserts a patient by phone. Returns the patient and
// whether a new row was created.
func (s *Store) ResolvePatient(ctx context.Context, phone, name string) (*ent.Patient, bool, error) {
	p, err := s.client.Patient.Query().
		Where(patient.PhoneEQ(phone)).
		Only(ctx)
	if err == nil {
		if name != "" && p.Name == "" {
			p, err = p.Update().SetName(name).Save(ctx)
			if err != nil {
				return nil, false, fmt.Errorf("patient name update: %w", err)
			}
		}
		return p, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("patient lookup: %w", err)
	}

	create := s.client.Patient.Create().
		SetPid("PAT-" + uuid.New().String()[:8]).
		SetPhone(phone)
	if name != "" {
		create = create.SetName(name)
	}
	p, err = create.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("patient create: %w", err)
	}
	return p, true, nil
}

// MedicineInput carries the admin-path fields for catalog writes.
type MedicineInput struct {
	Name                 string
	Category             string
	Price                float64
	Stock                int
	RequiresPrescription bool
	ActiveIngredients    []string
	GenericEquivalent    string
	Contraindications    []string
	Strength             string
	DosageForm           string
}

// AddMedicine inserts a catalog entry. Admin path; no locking semantics.
func (s *Store) AddMedicine(ctx context.Context, in MedicineInput) (*ent.Medicine, error) {
	create := s.client.Medicine.Create().
		SetName(in.Name).
		SetPrice(in.Price).
		SetStock(in.Stock).
		SetRequiresPrescription(in.RequiresPrescription)
	if in.Category != "" {
		create = create.SetCategory(in.Category)
	}
	if len(in.ActiveIngredients) > 0 {
		create = create.SetActiveIngredients(in.ActiveIngredients)
	}
	if in.GenericEquivalent != "" {
		create = create.SetGenericEquivalent(in.GenericEquivalent)
	}
	if len(in.Contraindications) > 0 {
		create = create.SetContraindications(in.Contraindications)
	}
	if in.Strength != "" {
		create = create.SetStrength(in.Strength)
	}
	if in.DosageForm != "" {
		create = create.SetDosageForm(in.DosageForm)
	}
	return create.Save(ctx)
}

// UpdateMedicine applies admin updates to a catalog entry looked up by name.
func (s *Store) UpdateMedicine(ctx context.Context, name string, in MedicineInput) (*ent.Medicine, error) {
	m, err := s.client.Medicine.Query().
		Where(medicine.NameEqualFold(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %q", ErrMedicineNotFound, name)
		}
		return nil, fmt.Errorf("medicine lookup: %w", err)
	}

	update := m.Update().
		SetPrice(in.Price).
		SetStock(in.Stock).
		SetRequiresPrescription(in.RequiresPrescription)
	if in.Category != "" {
		update = update.SetCategory(in.Category)
	}
	if in.Strength != "" {
		update = update.SetStrength(in.Strength)
	}
	if in.DosageForm != "" {
		update = update.SetDosageForm(in.DosageForm)
	}
	return update.Save(ctx)
}

// DeleteMedicine removes a catalog entry by name.
func (s *Store) DeleteMedicine(ctx context.Context, name string) error {
	n, err := s.client.Medicine.Delete().
		Where(medicine.NameEqualFold(name)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("medicine delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrMedicineNotFound, name)
	}
	return nil
}

// txRetryBackoff is the pause before the single TransactionError retry.
const txRetryBackoff = 50 * time.Millisecond

// RunInTxRetry runs fn via RunInTx and retries exactly once after a bounded
// backoff when the failure is a TransactionError (e.g. serialization
// conflict). Domain failures such as OutOfStock are not retried: stock will
// not reappear within the backoff window.
func (s *Store) RunInTxRetry(ctx context.Context, fn func(tx *Tx) error) error {
	err := s.RunInTx(ctx, fn)
	if err == nil || !IsTransactionError(err) || IsOutOfStock(err) {
		return err
	}

	select {
	case <-ctx.Done():
		return err
	case <-time.After(txRetryBackoff):
	}
	return s.RunInTx(ctx, fn)
}
