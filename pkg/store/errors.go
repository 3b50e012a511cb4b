package store

import (
	"errors"
	"fmt"
)

var (
	// ErrMedicineNotFound is returned when no catalog entry matches a name,
	// even after fuzzy lookup.
	ErrMedicineNotFound = errors.New("medicine not found")

	// ErrPatientNotFound is returned when a patient lookup misses.
	ErrPatientNotFound = errors.New("patient not found")
)

// OutOfStockError reports an attempted decrement past available stock.
type OutOfStockError struct {
	Medicine  string
	Requested int
	Available int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("out of stock: %s (requested %d, available %d)",
		e.Medicine, e.Requested, e.Available)
}

// IsOutOfStock checks whether err wraps an OutOfStockError.
func IsOutOfStock(err error) bool {
	var oos *OutOfStockError
	return errors.As(err, &oos)
}

// TransactionError wraps any failure inside RunInTx after rollback.
// Callers may retry once after a bounded backoff.
type TransactionError struct {
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction failed: %v", e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }

// IsTransactionError checks whether err wraps a TransactionError.
func IsTransactionError(err error) bool {
	var te *TransactionError
	return errors.As(err, &te)
}
