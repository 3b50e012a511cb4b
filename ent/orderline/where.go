// Code generated by ent, DO NOT EDIT.

package orderline

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/arogya-labs/aushadhi/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldLTE(FieldID, id))
}

// MedicineName applies equality check predicate on the "medicine_name" field. It's identical to MedicineNameEQ.
func MedicineName(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEQ(FieldMedicineName, v))
}

// Dosage applies equality check predicate on the "dosage" field. It's identical to DosageEQ.
func Dosage(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEQ(FieldDosage, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEQ(FieldQuantity, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v float64) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEQ(FieldUnitPrice, v))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEQ(FieldOrderID, v))
}

// MedicineNameEQ applies the EQ predicate on the "medicine_name" field.
func MedicineNameEQ(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEQ(FieldMedicineName, v))
}

// MedicineNameNEQ applies the NEQ predicate on the "medicine_name" field.
func MedicineNameNEQ(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldNEQ(FieldMedicineName, v))
}

// MedicineNameIn applies the In predicate on the "medicine_name" field.
func MedicineNameIn(vs ...string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldIn(FieldMedicineName, vs...))
}

// MedicineNameNotIn applies the NotIn predicate on the "medicine_name" field.
func MedicineNameNotIn(vs ...string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldNotIn(FieldMedicineName, vs...))
}

// MedicineNameGT applies the GT predicate on the "medicine_name" field.
func MedicineNameGT(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldGT(FieldMedicineName, v))
}

// MedicineNameGTE applies the GTE predicate on the "medicine_name" field.
func MedicineNameGTE(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldGTE(FieldMedicineName, v))
}

// MedicineNameLT applies the LT predicate on the "medicine_name" field.
func MedicineNameLT(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldLT(FieldMedicineName, v))
}

// MedicineNameLTE applies the LTE predicate on the "medicine_name" field.
func MedicineNameLTE(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldLTE(FieldMedicineName, v))
}

// MedicineNameContains applies the Contains predicate on the "medicine_name" field.
func MedicineNameContains(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldContains(FieldMedicineName, v))
}

// MedicineNameHasPrefix applies the HasPrefix predicate on the "medicine_name" field.
func MedicineNameHasPrefix(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldHasPrefix(FieldMedicineName, v))
}

// MedicineNameHasSuffix applies the HasSuffix predicate on the "medicine_name" field.
func MedicineNameHasSuffix(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldHasSuffix(FieldMedicineName, v))
}

// MedicineNameEqualFold applies the EqualFold predicate on the "medicine_name" field.
func MedicineNameEqualFold(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEqualFold(FieldMedicineName, v))
}

// MedicineNameContainsFold applies the ContainsFold predicate on the "medicine_name" field.
func MedicineNameContainsFold(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldContainsFold(FieldMedicineName, v))
}

// DosageEQ applies the EQ predicate on the "dosage" field.
func DosageEQ(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEQ(FieldDosage, v))
}

// DosageNEQ applies the NEQ predicate on the "dosage" field.
func DosageNEQ(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldNEQ(FieldDosage, v))
}

// DosageIn applies the In predicate on the "dosage" field.
func DosageIn(vs ...string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldIn(FieldDosage, vs...))
}

// DosageNotIn applies the NotIn predicate on the "dosage" field.
func DosageNotIn(vs ...string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldNotIn(FieldDosage, vs...))
}

// DosageGT applies the GT predicate on the "dosage" field.
func DosageGT(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldGT(FieldDosage, v))
}

// DosageGTE applies the GTE predicate on the "dosage" field.
func DosageGTE(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldGTE(FieldDosage, v))
}

// DosageLT applies the LT predicate on the "dosage" field.
func DosageLT(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldLT(FieldDosage, v))
}

// DosageLTE applies the LTE predicate on the "dosage" field.
func DosageLTE(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldLTE(FieldDosage, v))
}

// DosageContains applies the Contains predicate on the "dosage" field.
func DosageContains(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldContains(FieldDosage, v))
}

// DosageHasPrefix applies the HasPrefix predicate on the "dosage" field.
func DosageHasPrefix(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldHasPrefix(FieldDosage, v))
}

// DosageHasSuffix applies the HasSuffix predicate on the "dosage" field.
func DosageHasSuffix(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldHasSuffix(FieldDosage, v))
}

// DosageIsNil applies the IsNil predicate on the "dosage" field.
func DosageIsNil() predicate.OrderLine {
	return predicate.OrderLine(sql.FieldIsNull(FieldDosage))
}

// DosageNotNil applies the NotNil predicate on the "dosage" field.
func DosageNotNil() predicate.OrderLine {
	return predicate.OrderLine(sql.FieldNotNull(FieldDosage))
}

// DosageEqualFold applies the EqualFold predicate on the "dosage" field.
func DosageEqualFold(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEqualFold(FieldDosage, v))
}

// DosageContainsFold applies the ContainsFold predicate on the "dosage" field.
func DosageContainsFold(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldContainsFold(FieldDosage, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldLTE(FieldQuantity, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v float64) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v float64) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...float64) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...float64) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v float64) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v float64) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v float64) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v float64) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldLTE(FieldUnitPrice, v))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldLTE(FieldOrderID, v))
}

// OrderIDContains applies the Contains predicate on the "order_id" field.
func OrderIDContains(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldContains(FieldOrderID, v))
}

// OrderIDHasPrefix applies the HasPrefix predicate on the "order_id" field.
func OrderIDHasPrefix(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldHasPrefix(FieldOrderID, v))
}

// OrderIDHasSuffix applies the HasSuffix predicate on the "order_id" field.
func OrderIDHasSuffix(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldHasSuffix(FieldOrderID, v))
}

// OrderIDEqualFold applies the EqualFold predicate on the "order_id" field.
func OrderIDEqualFold(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldEqualFold(FieldOrderID, v))
}

// OrderIDContainsFold applies the ContainsFold predicate on the "order_id" field.
func OrderIDContainsFold(v string) predicate.OrderLine {
	return predicate.OrderLine(sql.FieldContainsFold(FieldOrderID, v))
}

// HasOrder applies the HasEdge predicate on the "order" edge.
func HasOrder() predicate.OrderLine {
	return predicate.OrderLine(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrderTable, OrderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrderWith applies the HasEdge predicate on the "order" edge with a given conditions (other predicates).
func HasOrderWith(preds ...predicate.Order) predicate.OrderLine {
	return predicate.OrderLine(func(s *sql.Selector) {
		step := newOrderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMedicine applies the HasEdge predicate on the "medicine" edge.
func HasMedicine() predicate.OrderLine {
	return predicate.OrderLine(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, MedicineTable, MedicineColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMedicineWith applies the HasEdge predicate on the "medicine" edge with a given conditions (other predicates).
func HasMedicineWith(preds ...predicate.Medicine) predicate.OrderLine {
	return predicate.OrderLine(func(s *sql.Selector) {
		step := newMedicineStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrderLine) predicate.OrderLine {
	return predicate.OrderLine(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrderLine) predicate.OrderLine {
	return predicate.OrderLine(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrderLine) predicate.OrderLine {
	return predicate.OrderLine(sql.NotPredicates(p))
}
