// Code generated by ent, DO NOT EDIT.

package refillprediction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arogya-labs/aushadhi/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldUserID, v))
}

// MedicineName applies equality check predicate on the "medicine_name" field. It's identical to MedicineNameEQ.
func MedicineName(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldMedicineName, v))
}

// PredictedDepletionDate applies equality check predicate on the "predicted_depletion_date" field. It's identical to PredictedDepletionDateEQ.
func PredictedDepletionDate(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldPredictedDepletionDate, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldConfidence, v))
}

// ReminderSent applies equality check predicate on the "reminder_sent" field. It's identical to ReminderSentEQ.
func ReminderSent(v bool) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldReminderSent, v))
}

// RefillConfirmed applies equality check predicate on the "refill_confirmed" field. It's identical to RefillConfirmedEQ.
func RefillConfirmed(v bool) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldRefillConfirmed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldContainsFold(FieldUserID, v))
}

// MedicineNameEQ applies the EQ predicate on the "medicine_name" field.
func MedicineNameEQ(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldMedicineName, v))
}

// MedicineNameNEQ applies the NEQ predicate on the "medicine_name" field.
func MedicineNameNEQ(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNEQ(FieldMedicineName, v))
}

// MedicineNameIn applies the In predicate on the "medicine_name" field.
func MedicineNameIn(vs ...string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldIn(FieldMedicineName, vs...))
}

// MedicineNameNotIn applies the NotIn predicate on the "medicine_name" field.
func MedicineNameNotIn(vs ...string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNotIn(FieldMedicineName, vs...))
}

// MedicineNameGT applies the GT predicate on the "medicine_name" field.
func MedicineNameGT(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldGT(FieldMedicineName, v))
}

// MedicineNameGTE applies the GTE predicate on the "medicine_name" field.
func MedicineNameGTE(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldGTE(FieldMedicineName, v))
}

// MedicineNameLT applies the LT predicate on the "medicine_name" field.
func MedicineNameLT(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldLT(FieldMedicineName, v))
}

// MedicineNameLTE applies the LTE predicate on the "medicine_name" field.
func MedicineNameLTE(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldLTE(FieldMedicineName, v))
}

// MedicineNameContains applies the Contains predicate on the "medicine_name" field.
func MedicineNameContains(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldContains(FieldMedicineName, v))
}

// MedicineNameHasPrefix applies the HasPrefix predicate on the "medicine_name" field.
func MedicineNameHasPrefix(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldHasPrefix(FieldMedicineName, v))
}

// MedicineNameHasSuffix applies the HasSuffix predicate on the "medicine_name" field.
func MedicineNameHasSuffix(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldHasSuffix(FieldMedicineName, v))
}

// MedicineNameEqualFold applies the EqualFold predicate on the "medicine_name" field.
func MedicineNameEqualFold(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEqualFold(FieldMedicineName, v))
}

// MedicineNameContainsFold applies the ContainsFold predicate on the "medicine_name" field.
func MedicineNameContainsFold(v string) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldContainsFold(FieldMedicineName, v))
}

// PredictedDepletionDateEQ applies the EQ predicate on the "predicted_depletion_date" field.
func PredictedDepletionDateEQ(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldPredictedDepletionDate, v))
}

// PredictedDepletionDateNEQ applies the NEQ predicate on the "predicted_depletion_date" field.
func PredictedDepletionDateNEQ(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNEQ(FieldPredictedDepletionDate, v))
}

// PredictedDepletionDateIn applies the In predicate on the "predicted_depletion_date" field.
func PredictedDepletionDateIn(vs ...time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldIn(FieldPredictedDepletionDate, vs...))
}

// PredictedDepletionDateNotIn applies the NotIn predicate on the "predicted_depletion_date" field.
func PredictedDepletionDateNotIn(vs ...time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNotIn(FieldPredictedDepletionDate, vs...))
}

// PredictedDepletionDateGT applies the GT predicate on the "predicted_depletion_date" field.
func PredictedDepletionDateGT(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldGT(FieldPredictedDepletionDate, v))
}

// PredictedDepletionDateGTE applies the GTE predicate on the "predicted_depletion_date" field.
func PredictedDepletionDateGTE(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldGTE(FieldPredictedDepletionDate, v))
}

// PredictedDepletionDateLT applies the LT predicate on the "predicted_depletion_date" field.
func PredictedDepletionDateLT(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldLT(FieldPredictedDepletionDate, v))
}

// PredictedDepletionDateLTE applies the LTE predicate on the "predicted_depletion_date" field.
func PredictedDepletionDateLTE(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldLTE(FieldPredictedDepletionDate, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldLTE(FieldConfidence, v))
}

// ReminderSentEQ applies the EQ predicate on the "reminder_sent" field.
func ReminderSentEQ(v bool) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldReminderSent, v))
}

// ReminderSentNEQ applies the NEQ predicate on the "reminder_sent" field.
func ReminderSentNEQ(v bool) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNEQ(FieldReminderSent, v))
}

// RefillConfirmedEQ applies the EQ predicate on the "refill_confirmed" field.
func RefillConfirmedEQ(v bool) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldRefillConfirmed, v))
}

// RefillConfirmedNEQ applies the NEQ predicate on the "refill_confirmed" field.
func RefillConfirmedNEQ(v bool) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNEQ(FieldRefillConfirmed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RefillPrediction) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RefillPrediction) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RefillPrediction) predicate.RefillPrediction {
	return predicate.RefillPrediction(sql.NotPredicates(p))
}
