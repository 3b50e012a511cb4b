// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLogEntry is the predicate function for auditlogentry builders.
type AuditLogEntry func(*sql.Selector)

// Medicine is the predicate function for medicine builders.
type Medicine func(*sql.Selector)

// Order is the predicate function for order builders.
type Order func(*sql.Selector)

// OrderLine is the predicate function for orderline builders.
type OrderLine func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// RefillPrediction is the predicate function for refillprediction builders.
type RefillPrediction func(*sql.Selector)
