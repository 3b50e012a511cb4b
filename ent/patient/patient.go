// Code generated by ent, DO NOT EDIT.

package patient

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the patient type in the database.
	Label = "patient"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPid holds the string denoting the pid field in the database.
	FieldPid = "pid"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAge holds the string denoting the age field in the database.
	FieldAge = "age"
	// FieldAllergies holds the string denoting the allergies field in the database.
	FieldAllergies = "allergies"
	// FieldConditions holds the string denoting the conditions field in the database.
	FieldConditions = "conditions"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldRiskFlags holds the string denoting the risk_flags field in the database.
	FieldRiskFlags = "risk_flags"
	// FieldRiskUpdatedAt holds the string denoting the risk_updated_at field in the database.
	FieldRiskUpdatedAt = "risk_updated_at"
	// FieldFlaggedForReview holds the string denoting the flagged_for_review field in the database.
	FieldFlaggedForReview = "flagged_for_review"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the patient in the database.
	Table = "patients"
)

// Columns holds all SQL columns for patient fields.
var Columns = []string{
	FieldID,
	FieldPid,
	FieldPhone,
	FieldName,
	FieldAge,
	FieldAllergies,
	FieldConditions,
	FieldRiskScore,
	FieldRiskLevel,
	FieldRiskFlags,
	FieldRiskUpdatedAt,
	FieldFlaggedForReview,
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
	// DefaultRiskScore holds the default value on creation for the "risk_score" field.
	DefaultRiskScore int
	// RiskScoreValidator is a validator for the "risk_score" field. It is called by the builders before save.
	RiskScoreValidator func(int) error
	// DefaultFlaggedForReview holds the default value on creation for the "flagged_for_review" field.
	DefaultFlaggedForReview bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// RiskLevel defines the type for the "risk_level" enum field.
type RiskLevel string

// RiskLevelNormal is the default value of the RiskLevel enum.
const DefaultRiskLevel = RiskLevelNormal

// RiskLevel values.
const (
	RiskLevelNormal   RiskLevel = "normal"
	RiskLevelElevated RiskLevel = "elevated"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

func (rl RiskLevel) String() string {
	return string(rl)
}

// RiskLevelValidator is a validator for the "risk_level" field enum values. It is called by the builders before save.
func RiskLevelValidator(rl RiskLevel) error {
	switch rl {
	case RiskLevelNormal, RiskLevelElevated, RiskLevelHigh, RiskLevelCritical:
		return nil
	default:
		return fmt.Errorf("patient: invalid enum value for risk_level field: %q", rl)
	}
}

// OrderOption defines the ordering options for the Patient queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPid orders the results by the pid field.
func ByPid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPid, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAge orders the results by the age field.
func ByAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAge, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByRiskUpdatedAt orders the results by the risk_updated_at field.
func ByRiskUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskUpdatedAt, opts...).ToFunc()
}

// ByFlaggedForReview orders the results by the flagged_for_review field.
func ByFlaggedForReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlaggedForReview, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
