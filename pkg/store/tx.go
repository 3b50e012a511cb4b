package store

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/arogya-labs/aushadhi/ent"
	"github.com/arogya-labs/aushadhi/ent/medicine"
	"github.com/arogya-labs/aushadhi/ent/order"
)

// Tx is the scoped transactional view handed to RunInTx callbacks. All
// operations share one database transaction; any error aborts the whole
// region, including stock decrements and the order row.
type Tx struct {
	tx  *ent.Tx
	ctx context.Context
}

// Ent exposes the raw Ent transaction for callers that need entities the
// scoped helpers do not cover, such as patient risk updates.
func (t *Tx) Ent() *ent.Tx { return t.tx }

// Context returns the context the transaction was opened with.
func (t *Tx) Context() context.Context { return t.ctx }

// RunInTx opens a transaction, runs fn, and commits on success. On any
// error the transaction is rolled back and the error is surfaced wrapped in
// a TransactionError (errors.As still reaches the cause, e.g.
// OutOfStockError).
func (s *Store) RunInTx(ctx context.Context, fn func(tx *Tx) error) error {
	entTx, err := s.client.Tx(ctx)
	if err != nil {
		return &TransactionError{Err: fmt.Errorf("begin: %w", err)}
	}

	scoped := &Tx{tx: entTx, ctx: ctx}
	if err := runRecovered(scoped, fn); err != nil {
		if rbErr := entTx.Rollback(); rbErr != nil {
			return &TransactionError{Err: fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)}
		}
		return &TransactionError{Err: err}
	}

	if err := entTx.Commit(); err != nil {
		return &TransactionError{Err: fmt.Errorf("commit: %w", err)}
	}
	return nil
}

// runRecovered converts a panicking callback into an error so the caller's
// rollback path always runs.
func runRecovered(tx *Tx, fn func(tx *Tx) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transaction callback panicked: %v", r)
		}
	}()
	return fn(tx)
}

// GetMedicineForUpdate locks the medicine row for the remainder of the
// transaction and returns it. Subsequent decrements by other transactions
// block until this one commits or rolls back.
func (t *Tx) GetMedicineForUpdate(name string) (*ent.Medicine, error) {
	m, err := t.tx.Medicine.Query().
		Where(medicine.NameEqualFold(name)).
		ForUpdate().
		Only(t.ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %q", ErrMedicineNotFound, name)
		}
		return nil, fmt.Errorf("locked medicine lookup: %w", err)
	}
	return m, nil
}

// DecrementStock acquires the row lock for the named medicine and
// decrements its stock. Fails with OutOfStockError when the locked row
// holds fewer units than requested.
func (t *Tx) DecrementStock(name string, qty int) (*ent.Medicine, error) {
	if qty < 1 {
		return nil, fmt.Errorf("invalid decrement quantity %d for %q", qty, name)
	}

	m, err := t.GetMedicineForUpdate(name)
	if err != nil {
		return nil, err
	}
	if m.Stock < qty {
		return nil, &OutOfStockError{
			Medicine:  m.Name,
			Requested: qty,
			Available: m.Stock,
		}
	}

	m, err = t.tx.Medicine.UpdateOne(m).
		AddStock(-qty).
		Save(t.ctx)
	if err != nil {
		return nil, fmt.Errorf("stock decrement: %w", err)
	}
	return m, nil
}

// LineInput is one order line to persist.
type LineInput struct {
	MedicineID   int
	MedicineName string
	Dosage       string
	Quantity     int
	UnitPrice    float64
}

// CreateOrder persists the order and its lines inside the transaction and
// returns the generated order ID. total_amount is computed from the lines,
// rounded to paise.
func (t *Tx) CreateOrder(userID string, lines []LineInput, decision order.PharmacistDecision, status order.Status, safetyIssues []string) (string, error) {
	if len(lines) == 0 {
		return "", fmt.Errorf("cannot create an order without lines")
	}

	var total float64
	for _, ln := range lines {
		if ln.Quantity < 1 {
			return "", fmt.Errorf("invalid quantity %d for line %q", ln.Quantity, ln.MedicineName)
		}
		total += ln.UnitPrice * float64(ln.Quantity)
	}
	total = math.Round(total*100) / 100

	orderID := GenerateOrderID()
	create := t.tx.Order.Create().
		SetID(orderID).
		SetUserID(userID).
		SetStatus(status).
		SetPharmacistDecision(decision).
		SetTotalAmount(total)
	if len(safetyIssues) > 0 {
		create = create.SetSafetyIssues(safetyIssues)
	}
	if _, err := create.Save(t.ctx); err != nil {
		return "", fmt.Errorf("order create: %w", err)
	}

	for _, ln := range lines {
		lineCreate := t.tx.OrderLine.Create().
			SetOrderID(orderID).
			SetMedicineName(ln.MedicineName).
			SetQuantity(ln.Quantity).
			SetUnitPrice(ln.UnitPrice)
		if ln.Dosage != "" {
			lineCreate = lineCreate.SetDosage(ln.Dosage)
		}
		if ln.MedicineID != 0 {
			lineCreate = lineCreate.SetMedicineID(ln.MedicineID)
		}
		if _, err := lineCreate.Save(t.ctx); err != nil {
			return "", fmt.Errorf("order line create: %w", err)
		}
	}

	return orderID, nil
}

// AddAuditLog appends an audit entry, optionally attached to an order.
func (t *Tx) AddAuditLog(orderID, agentName, decision, reasoning string, confidence float64, extra map[string]interface{}) error {
	create := t.tx.AuditLogEntry.Create().
		SetAgentName(agentName).
		SetDecision(decision).
		SetConfidence(confidence)
	if reasoning != "" {
		create = create.SetReasoning(reasoning)
	}
	if orderID != "" {
		create = create.SetOrderID(orderID)
	}
	if len(extra) > 0 {
		create = create.SetExtraData(extra)
	}
	if _, err := create.Save(t.ctx); err != nil {
		return fmt.Errorf("audit log create: %w", err)
	}
	return nil
}

// TotalFor computes the rounded total the same way CreateOrder does, for
// confirmation summaries shown before any transaction opens.
func TotalFor(lines []LineInput) float64 {
	var total float64
	for _, ln := range lines {
		total += ln.UnitPrice * float64(ln.Quantity)
	}
	return math.Round(total*100) / 100
}

// NormalizeName lowercases and trims a medicine name for set comparisons.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
