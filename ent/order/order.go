// Code generated by ent, DO NOT EDIT.

package order

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the order type in the database.
	Label = "order"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "order_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPharmacistDecision holds the string denoting the pharmacist_decision field in the database.
	FieldPharmacistDecision = "pharmacist_decision"
	// FieldSafetyIssues holds the string denoting the safety_issues field in the database.
	FieldSafetyIssues = "safety_issues"
	// FieldTotalAmount holds the string denoting the total_amount field in the database.
	FieldTotalAmount = "total_amount"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeLines holds the string denoting the lines edge name in mutations.
	EdgeLines = "lines"
	// EdgeAuditEntries holds the string denoting the audit_entries edge name in mutations.
	EdgeAuditEntries = "audit_entries"
	// OrderLineFieldID holds the string denoting the ID field of the OrderLine.
	OrderLineFieldID = "id"
	// AuditLogEntryFieldID holds the string denoting the ID field of the AuditLogEntry.
	AuditLogEntryFieldID = "id"
	// Table holds the table name of the order in the database.
	Table = "orders"
	// LinesTable is the table that holds the lines relation/edge.
	LinesTable = "order_lines"
	// LinesInverseTable is the table name for the OrderLine entity.
	// It exists in this package in order to avoid circular dependency with the "orderline" package.
	LinesInverseTable = "order_lines"
	// LinesColumn is the table column denoting the lines relation/edge.
	LinesColumn = "order_id"
	// AuditEntriesTable is the table that holds the audit_entries relation/edge.
	AuditEntriesTable = "audit_log_entries"
	// AuditEntriesInverseTable is the table name for the AuditLogEntry entity.
	// It exists in this package in order to avoid circular dependency with the "auditlogentry" package.
	AuditEntriesInverseTable = "audit_log_entries"
	// AuditEntriesColumn is the table column denoting the audit_entries relation/edge.
	AuditEntriesColumn = "order_id"
)

// Columns holds all SQL columns for order fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStatus,
	FieldPharmacistDecision,
	FieldSafetyIssues,
	FieldTotalAmount,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending       Status = "pending"
	StatusFulfilled     Status = "fulfilled"
	StatusPendingReview Status = "pending_review"
	StatusRejected      Status = "rejected"
	StatusFailed        Status = "failed"
	StatusCancelled     Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusFulfilled, StatusPendingReview, StatusRejected, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("order: invalid enum value for status field: %q", s)
	}
}

// PharmacistDecision defines the type for the "pharmacist_decision" enum field.
type PharmacistDecision string

// PharmacistDecisionApproved is the default value of the PharmacistDecision enum.
const DefaultPharmacistDecision = PharmacistDecisionApproved

// PharmacistDecision values.
const (
	PharmacistDecisionApproved    PharmacistDecision = "approved"
	PharmacistDecisionNeedsReview PharmacistDecision = "needs_review"
	PharmacistDecisionRejected    PharmacistDecision = "rejected"
)

func (pd PharmacistDecision) String() string {
	return string(pd)
}

// PharmacistDecisionValidator is a validator for the "pharmacist_decision" field enum values. It is called by the builders before save.
func PharmacistDecisionValidator(pd PharmacistDecision) error {
	switch pd {
	case PharmacistDecisionApproved, PharmacistDecisionNeedsReview, PharmacistDecisionRejected:
		return nil
	default:
		return fmt.Errorf("order: invalid enum value for pharmacist_decision field: %q", pd)
	}
}

// OrderOption defines the ordering options for the Order queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPharmacistDecision orders the results by the pharmacist_decision field.
func ByPharmacistDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPharmacistDecision, opts...).ToFunc()
}

// ByTotalAmount orders the results by the total_amount field.
func ByTotalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLinesCount orders the results by lines count.
func ByLinesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLinesStep(), opts...)
	}
}

// ByLines orders the results by lines terms.
func ByLines(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLinesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuditEntriesCount orders the results by audit_entries count.
func ByAuditEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditEntriesStep(), opts...)
	}
}

// ByAuditEntries orders the results by audit_entries terms.
func ByAuditEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLinesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LinesInverseTable, OrderLineFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LinesTable, LinesColumn),
	)
}
func newAuditEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditEntriesInverseTable, AuditLogEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditEntriesTable, AuditEntriesColumn),
	)
}
