// Code generated by ent, DO NOT EDIT.

package medicine

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the medicine type in the database.
	Label = "medicine"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldStock holds the string denoting the stock field in the database.
	FieldStock = "stock"
	// FieldRequiresPrescription holds the string denoting the requires_prescription field in the database.
	FieldRequiresPrescription = "requires_prescription"
	// FieldActiveIngredients holds the string denoting the active_ingredients field in the database.
	FieldActiveIngredients = "active_ingredients"
	// FieldGenericEquivalent holds the string denoting the generic_equivalent field in the database.
	FieldGenericEquivalent = "generic_equivalent"
	// FieldContraindications holds the string denoting the contraindications field in the database.
	FieldContraindications = "contraindications"
	// FieldStrength holds the string denoting the strength field in the database.
	FieldStrength = "strength"
	// FieldDosageForm holds the string denoting the dosage_form field in the database.
	FieldDosageForm = "dosage_form"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the medicine in the database.
	Table = "medicines"
)

// Columns holds all SQL columns for medicine fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldCategory,
	FieldPrice,
	FieldStock,
	FieldRequiresPrescription,
	FieldActiveIngredients,
	FieldGenericEquivalent,
	FieldContraindications,
	FieldStrength,
	FieldDosageForm,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// DefaultStock holds the default value on creation for the "stock" field.
	DefaultStock int
	// StockValidator is a validator for the "stock" field. It is called by the builders before save.
	StockValidator func(int) error
	// DefaultRequiresPrescription holds the default value on creation for the "requires_prescription" field.
	DefaultRequiresPrescription bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Medicine queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByStock orders the results by the stock field.
func ByStock(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStock, opts...).ToFunc()
}

// ByRequiresPrescription orders the results by the requires_prescription field.
func ByRequiresPrescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresPrescription, opts...).ToFunc()
}

// ByGenericEquivalent orders the results by the generic_equivalent field.
func ByGenericEquivalent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenericEquivalent, opts...).ToFunc()
}

// ByStrength orders the results by the strength field.
func ByStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrength, opts...).ToFunc()
}

// ByDosageForm orders the results by the dosage_form field.
func ByDosageForm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDosageForm, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
