// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arogya-labs/aushadhi/ent/auditlogentry"
	"github.com/arogya-labs/aushadhi/ent/medicine"
	"github.com/arogya-labs/aushadhi/ent/order"
	"github.com/arogya-labs/aushadhi/ent/orderline"
	"github.com/arogya-labs/aushadhi/ent/patient"
	"github.com/arogya-labs/aushadhi/ent/refillprediction"
	"github.com/arogya-labs/aushadhi/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogentryFields := schema.AuditLogEntry{}.Fields()
	_ = auditlogentryFields
	// auditlogentryDescConfidence is the schema descriptor for confidence field.
	auditlogentryDescConfidence := auditlogentryFields[3].Descriptor()
	// auditlogentry.DefaultConfidence holds the default value on creation for the confidence field.
	auditlogentry.DefaultConfidence = auditlogentryDescConfidence.Default.(float64)
	// auditlogentryDescCreatedAt is the schema descriptor for created_at field.
	auditlogentryDescCreatedAt := auditlogentryFields[5].Descriptor()
	// auditlogentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlogentry.DefaultCreatedAt = auditlogentryDescCreatedAt.Default.(func() time.Time)
	medicineFields := schema.Medicine{}.Fields()
	_ = medicineFields
	// medicineDescCategory is the schema descriptor for category field.
	medicineDescCategory := medicineFields[1].Descriptor()
	// medicine.DefaultCategory holds the default value on creation for the category field.
	medicine.DefaultCategory = medicineDescCategory.Default.(string)
	// medicineDescStock is the schema descriptor for stock field.
	medicineDescStock := medicineFields[3].Descriptor()
	// medicine.DefaultStock holds the default value on creation for the stock field.
	medicine.DefaultStock = medicineDescStock.Default.(int)
	// medicine.StockValidator is a validator for the "stock" field. It is called by the builders before save.
	medicine.StockValidator = medicineDescStock.Validators[0].(func(int) error)
	// medicineDescRequiresPrescription is the schema descriptor for requires_prescription field.
	medicineDescRequiresPrescription := medicineFields[4].Descriptor()
	// medicine.DefaultRequiresPrescription holds the default value on creation for the requires_prescription field.
	medicine.DefaultRequiresPrescription = medicineDescRequiresPrescription.Default.(bool)
	// medicineDescCreatedAt is the schema descriptor for created_at field.
	medicineDescCreatedAt := medicineFields[10].Descriptor()
	// medicine.DefaultCreatedAt holds the default value on creation for the created_at field.
	medicine.DefaultCreatedAt = medicineDescCreatedAt.Default.(func() time.Time)
	// medicineDescUpdatedAt is the schema descriptor for updated_at field.
	medicineDescUpdatedAt := medicineFields[11].Descriptor()
	// medicine.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	medicine.DefaultUpdatedAt = medicineDescUpdatedAt.Default.(func() time.Time)
	// medicine.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	medicine.UpdateDefaultUpdatedAt = medicineDescUpdatedAt.UpdateDefault.(func() time.Time)
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[6].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	orderlineFields := schema.OrderLine{}.Fields()
	_ = orderlineFields
	// orderlineDescQuantity is the schema descriptor for quantity field.
	orderlineDescQuantity := orderlineFields[2].Descriptor()
	// orderline.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	orderline.QuantityValidator = orderlineDescQuantity.Validators[0].(func(int) error)
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescRiskScore is the schema descriptor for risk_score field.
	patientDescRiskScore := patientFields[6].Descriptor()
	// patient.DefaultRiskScore holds the default value on creation for the risk_score field.
	patient.DefaultRiskScore = patientDescRiskScore.Default.(int)
	// patient.RiskScoreValidator is a validator for the "risk_score" field. It is called by the builders before save.
	patient.RiskScoreValidator = func() func(int) error {
		validators := patientDescRiskScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(risk_score int) error {
			for _, fn := range fns {
				if err := fn(risk_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescFlaggedForReview is the schema descriptor for flagged_for_review field.
	patientDescFlaggedForReview := patientFields[10].Descriptor()
	// patient.DefaultFlaggedForReview holds the default value on creation for the flagged_for_review field.
	patient.DefaultFlaggedForReview = patientDescFlaggedForReview.Default.(bool)
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientFields[11].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	refillpredictionFields := schema.RefillPrediction{}.Fields()
	_ = refillpredictionFields
	// refillpredictionDescConfidence is the schema descriptor for confidence field.
	refillpredictionDescConfidence := refillpredictionFields[3].Descriptor()
	// refillprediction.DefaultConfidence holds the default value on creation for the confidence field.
	refillprediction.DefaultConfidence = refillpredictionDescConfidence.Default.(float64)
	// refillpredictionDescReminderSent is the schema descriptor for reminder_sent field.
	refillpredictionDescReminderSent := refillpredictionFields[4].Descriptor()
	// refillprediction.DefaultReminderSent holds the default value on creation for the reminder_sent field.
	refillprediction.DefaultReminderSent = refillpredictionDescReminderSent.Default.(bool)
	// refillpredictionDescRefillConfirmed is the schema descriptor for refill_confirmed field.
	refillpredictionDescRefillConfirmed := refillpredictionFields[5].Descriptor()
	// refillprediction.DefaultRefillConfirmed holds the default value on creation for the refill_confirmed field.
	refillprediction.DefaultRefillConfirmed = refillpredictionDescRefillConfirmed.Default.(bool)
	// refillpredictionDescCreatedAt is the schema descriptor for created_at field.
	refillpredictionDescCreatedAt := refillpredictionFields[6].Descriptor()
	// refillprediction.DefaultCreatedAt holds the default value on creation for the created_at field.
	refillprediction.DefaultCreatedAt = refillpredictionDescCreatedAt.Default.(func() time.Time)
	// refillpredictionDescUpdatedAt is the schema descriptor for updated_at field.
	refillpredictionDescUpdatedAt := refillpredictionFields[7].Descriptor()
	// refillprediction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	refillprediction.DefaultUpdatedAt = refillpredictionDescUpdatedAt.Default.(func() time.Time)
	// refillprediction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	refillprediction.UpdateDefaultUpdatedAt = refillpredictionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
