// Code generated by ent, DO NOT EDIT.

package medicine

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arogya-labs/aushadhi/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Medicine {
	return predicate.Medicine(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Medicine {
	return predicate.Medicine(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Medicine {
	return predicate.Medicine(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Medicine {
	return predicate.Medicine(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Medicine {
	return predicate.Medicine(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Medicine {
	return predicate.Medicine(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Medicine {
	return predicate.Medicine(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldCategory, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldPrice, v))
}

// Stock applies equality check predicate on the "stock" field. It's identical to StockEQ.
func Stock(v int) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldStock, v))
}

// RequiresPrescription applies equality check predicate on the "requires_prescription" field. It's identical to RequiresPrescriptionEQ.
func RequiresPrescription(v bool) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldRequiresPrescription, v))
}

// GenericEquivalent applies equality check predicate on the "generic_equivalent" field. It's identical to GenericEquivalentEQ.
func GenericEquivalent(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldGenericEquivalent, v))
}

// Strength applies equality check predicate on the "strength" field. It's identical to StrengthEQ.
func Strength(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldStrength, v))
}

// DosageForm applies equality check predicate on the "dosage_form" field. It's identical to DosageFormEQ.
func DosageForm(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldDosageForm, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Medicine {
	return predicate.Medicine(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Medicine {
	return predicate.Medicine(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldContainsFold(FieldName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Medicine {
	return predicate.Medicine(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Medicine {
	return predicate.Medicine(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldContainsFold(FieldCategory, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.Medicine {
	return predicate.Medicine(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.Medicine {
	return predicate.Medicine(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.Medicine {
	return predicate.Medicine(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.Medicine {
	return predicate.Medicine(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.Medicine {
	return predicate.Medicine(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.Medicine {
	return predicate.Medicine(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.Medicine {
	return predicate.Medicine(sql.FieldLTE(FieldPrice, v))
}

// StockEQ applies the EQ predicate on the "stock" field.
func StockEQ(v int) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldStock, v))
}

// StockNEQ applies the NEQ predicate on the "stock" field.
func StockNEQ(v int) predicate.Medicine {
	return predicate.Medicine(sql.FieldNEQ(FieldStock, v))
}

// StockIn applies the In predicate on the "stock" field.
func StockIn(vs ...int) predicate.Medicine {
	return predicate.Medicine(sql.FieldIn(FieldStock, vs...))
}

// StockNotIn applies the NotIn predicate on the "stock" field.
func StockNotIn(vs ...int) predicate.Medicine {
	return predicate.Medicine(sql.FieldNotIn(FieldStock, vs...))
}

// StockGT applies the GT predicate on the "stock" field.
func StockGT(v int) predicate.Medicine {
	return predicate.Medicine(sql.FieldGT(FieldStock, v))
}

// StockGTE applies the GTE predicate on the "stock" field.
func StockGTE(v int) predicate.Medicine {
	return predicate.Medicine(sql.FieldGTE(FieldStock, v))
}

// StockLT applies the LT predicate on the "stock" field.
func StockLT(v int) predicate.Medicine {
	return predicate.Medicine(sql.FieldLT(FieldStock, v))
}

// StockLTE applies the LTE predicate on the "stock" field.
func StockLTE(v int) predicate.Medicine {
	return predicate.Medicine(sql.FieldLTE(FieldStock, v))
}

// RequiresPrescriptionEQ applies the EQ predicate on the "requires_prescription" field.
func RequiresPrescriptionEQ(v bool) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldRequiresPrescription, v))
}

// RequiresPrescriptionNEQ applies the NEQ predicate on the "requires_prescription" field.
func RequiresPrescriptionNEQ(v bool) predicate.Medicine {
	return predicate.Medicine(sql.FieldNEQ(FieldRequiresPrescription, v))
}

// ActiveIngredientsIsNil applies the IsNil predicate on the "active_ingredients" field.
func ActiveIngredientsIsNil() predicate.Medicine {
	return predicate.Medicine(sql.FieldIsNull(FieldActiveIngredients))
}

// ActiveIngredientsNotNil applies the NotNil predicate on the "active_ingredients" field.
func ActiveIngredientsNotNil() predicate.Medicine {
	return predicate.Medicine(sql.FieldNotNull(FieldActiveIngredients))
}

// GenericEquivalentEQ applies the EQ predicate on the "generic_equivalent" field.
func GenericEquivalentEQ(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldGenericEquivalent, v))
}

// GenericEquivalentNEQ applies the NEQ predicate on the "generic_equivalent" field.
func GenericEquivalentNEQ(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldNEQ(FieldGenericEquivalent, v))
}

// GenericEquivalentIn applies the In predicate on the "generic_equivalent" field.
func GenericEquivalentIn(vs ...string) predicate.Medicine {
	return predicate.Medicine(sql.FieldIn(FieldGenericEquivalent, vs...))
}

// GenericEquivalentNotIn applies the NotIn predicate on the "generic_equivalent" field.
func GenericEquivalentNotIn(vs ...string) predicate.Medicine {
	return predicate.Medicine(sql.FieldNotIn(FieldGenericEquivalent, vs...))
}

// GenericEquivalentGT applies the GT predicate on the "generic_equivalent" field.
func GenericEquivalentGT(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldGT(FieldGenericEquivalent, v))
}

// GenericEquivalentGTE applies the GTE predicate on the "generic_equivalent" field.
func GenericEquivalentGTE(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldGTE(FieldGenericEquivalent, v))
}

// GenericEquivalentLT applies the LT predicate on the "generic_equivalent" field.
func GenericEquivalentLT(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldLT(FieldGenericEquivalent, v))
}

// GenericEquivalentLTE applies the LTE predicate on the "generic_equivalent" field.
func GenericEquivalentLTE(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldLTE(FieldGenericEquivalent, v))
}

// GenericEquivalentContains applies the Contains predicate on the "generic_equivalent" field.
func GenericEquivalentContains(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldContains(FieldGenericEquivalent, v))
}

// GenericEquivalentHasPrefix applies the HasPrefix predicate on the "generic_equivalent" field.
func GenericEquivalentHasPrefix(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldHasPrefix(FieldGenericEquivalent, v))
}

// GenericEquivalentHasSuffix applies the HasSuffix predicate on the "generic_equivalent" field.
func GenericEquivalentHasSuffix(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldHasSuffix(FieldGenericEquivalent, v))
}

// GenericEquivalentIsNil applies the IsNil predicate on the "generic_equivalent" field.
func GenericEquivalentIsNil() predicate.Medicine {
	return predicate.Medicine(sql.FieldIsNull(FieldGenericEquivalent))
}

// GenericEquivalentNotNil applies the NotNil predicate on the "generic_equivalent" field.
func GenericEquivalentNotNil() predicate.Medicine {
	return predicate.Medicine(sql.FieldNotNull(FieldGenericEquivalent))
}

// GenericEquivalentEqualFold applies the EqualFold predicate on the "generic_equivalent" field.
func GenericEquivalentEqualFold(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEqualFold(FieldGenericEquivalent, v))
}

// GenericEquivalentContainsFold applies the ContainsFold predicate on the "generic_equivalent" field.
func GenericEquivalentContainsFold(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldContainsFold(FieldGenericEquivalent, v))
}

// ContraindicationsIsNil applies the IsNil predicate on the "contraindications" field.
func ContraindicationsIsNil() predicate.Medicine {
	return predicate.Medicine(sql.FieldIsNull(FieldContraindications))
}

// ContraindicationsNotNil applies the NotNil predicate on the "contraindications" field.
func ContraindicationsNotNil() predicate.Medicine {
	return predicate.Medicine(sql.FieldNotNull(FieldContraindications))
}

// StrengthEQ applies the EQ predicate on the "strength" field.
func StrengthEQ(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldStrength, v))
}

// StrengthNEQ applies the NEQ predicate on the "strength" field.
func StrengthNEQ(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldNEQ(FieldStrength, v))
}

// StrengthIn applies the In predicate on the "strength" field.
func StrengthIn(vs ...string) predicate.Medicine {
	return predicate.Medicine(sql.FieldIn(FieldStrength, vs...))
}

// StrengthNotIn applies the NotIn predicate on the "strength" field.
func StrengthNotIn(vs ...string) predicate.Medicine {
	return predicate.Medicine(sql.FieldNotIn(FieldStrength, vs...))
}

// StrengthGT applies the GT predicate on the "strength" field.
func StrengthGT(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldGT(FieldStrength, v))
}

// StrengthGTE applies the GTE predicate on the "strength" field.
func StrengthGTE(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldGTE(FieldStrength, v))
}

// StrengthLT applies the LT predicate on the "strength" field.
func StrengthLT(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldLT(FieldStrength, v))
}

// StrengthLTE applies the LTE predicate on the "strength" field.
func StrengthLTE(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldLTE(FieldStrength, v))
}

// StrengthContains applies the Contains predicate on the "strength" field.
func StrengthContains(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldContains(FieldStrength, v))
}

// StrengthHasPrefix applies the HasPrefix predicate on the "strength" field.
func StrengthHasPrefix(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldHasPrefix(FieldStrength, v))
}

// StrengthHasSuffix applies the HasSuffix predicate on the "strength" field.
func StrengthHasSuffix(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldHasSuffix(FieldStrength, v))
}

// StrengthIsNil applies the IsNil predicate on the "strength" field.
func StrengthIsNil() predicate.Medicine {
	return predicate.Medicine(sql.FieldIsNull(FieldStrength))
}

// StrengthNotNil applies the NotNil predicate on the "strength" field.
func StrengthNotNil() predicate.Medicine {
	return predicate.Medicine(sql.FieldNotNull(FieldStrength))
}

// StrengthEqualFold applies the EqualFold predicate on the "strength" field.
func StrengthEqualFold(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEqualFold(FieldStrength, v))
}

// StrengthContainsFold applies the ContainsFold predicate on the "strength" field.
func StrengthContainsFold(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldContainsFold(FieldStrength, v))
}

// DosageFormEQ applies the EQ predicate on the "dosage_form" field.
func DosageFormEQ(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldDosageForm, v))
}

// DosageFormNEQ applies the NEQ predicate on the "dosage_form" field.
func DosageFormNEQ(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldNEQ(FieldDosageForm, v))
}

// DosageFormIn applies the In predicate on the "dosage_form" field.
func DosageFormIn(vs ...string) predicate.Medicine {
	return predicate.Medicine(sql.FieldIn(FieldDosageForm, vs...))
}

// DosageFormNotIn applies the NotIn predicate on the "dosage_form" field.
func DosageFormNotIn(vs ...string) predicate.Medicine {
	return predicate.Medicine(sql.FieldNotIn(FieldDosageForm, vs...))
}

// DosageFormGT applies the GT predicate on the "dosage_form" field.
func DosageFormGT(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldGT(FieldDosageForm, v))
}

// DosageFormGTE applies the GTE predicate on the "dosage_form" field.
func DosageFormGTE(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldGTE(FieldDosageForm, v))
}

// DosageFormLT applies the LT predicate on the "dosage_form" field.
func DosageFormLT(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldLT(FieldDosageForm, v))
}

// DosageFormLTE applies the LTE predicate on the "dosage_form" field.
func DosageFormLTE(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldLTE(FieldDosageForm, v))
}

// DosageFormContains applies the Contains predicate on the "dosage_form" field.
func DosageFormContains(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldContains(FieldDosageForm, v))
}

// DosageFormHasPrefix applies the HasPrefix predicate on the "dosage_form" field.
func DosageFormHasPrefix(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldHasPrefix(FieldDosageForm, v))
}

// DosageFormHasSuffix applies the HasSuffix predicate on the "dosage_form" field.
func DosageFormHasSuffix(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldHasSuffix(FieldDosageForm, v))
}

// DosageFormIsNil applies the IsNil predicate on the "dosage_form" field.
func DosageFormIsNil() predicate.Medicine {
	return predicate.Medicine(sql.FieldIsNull(FieldDosageForm))
}

// DosageFormNotNil applies the NotNil predicate on the "dosage_form" field.
func DosageFormNotNil() predicate.Medicine {
	return predicate.Medicine(sql.FieldNotNull(FieldDosageForm))
}

// DosageFormEqualFold applies the EqualFold predicate on the "dosage_form" field.
func DosageFormEqualFold(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldEqualFold(FieldDosageForm, v))
}

// DosageFormContainsFold applies the ContainsFold predicate on the "dosage_form" field.
func DosageFormContainsFold(v string) predicate.Medicine {
	return predicate.Medicine(sql.FieldContainsFold(FieldDosageForm, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Medicine {
	return predicate.Medicine(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Medicine) predicate.Medicine {
	return predicate.Medicine(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Medicine) predicate.Medicine {
	return predicate.Medicine(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Medicine) predicate.Medicine {
	return predicate.Medicine(sql.NotPredicates(p))
}
