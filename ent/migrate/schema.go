// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogEntriesColumns holds the columns for the "audit_log_entries" table.
	AuditLogEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "decision", Type: field.TypeString},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "extra_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "order_id", Type: field.TypeString, Nullable: true},
	}
	// AuditLogEntriesTable holds the schema information for the "audit_log_entries" table.
	AuditLogEntriesTable = &schema.Table{
		Name:       "audit_log_entries",
		Columns:    AuditLogEntriesColumns,
		PrimaryKey: []*schema.Column{AuditLogEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_log_entries_orders_audit_entries",
				Columns:    []*schema.Column{AuditLogEntriesColumns[7]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlogentry_agent_name",
				Unique:  false,
				Columns: []*schema.Column{AuditLogEntriesColumns[1]},
			},
			{
				Name:    "auditlogentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogEntriesColumns[6]},
			},
		},
	}
	// MedicinesColumns holds the columns for the "medicines" table.
	MedicinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString, Default: "general"},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "stock", Type: field.TypeInt, Default: 0},
		{Name: "requires_prescription", Type: field.TypeBool, Default: false},
		{Name: "active_ingredients", Type: field.TypeJSON, Nullable: true},
		{Name: "generic_equivalent", Type: field.TypeString, Nullable: true},
		{Name: "contraindications", Type: field.TypeJSON, Nullable: true},
		{Name: "strength", Type: field.TypeString, Nullable: true},
		{Name: "dosage_form", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MedicinesTable holds the schema information for the "medicines" table.
	MedicinesTable = &schema.Table{
		Name:       "medicines",
		Columns:    MedicinesColumns,
		PrimaryKey: []*schema.Column{MedicinesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "medicine_category",
				Unique:  false,
				Columns: []*schema.Column{MedicinesColumns[2]},
			},
			{
				Name:    "medicine_category_stock",
				Unique:  false,
				Columns: []*schema.Column{MedicinesColumns[2], MedicinesColumns[4]},
			},
		},
	}
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "order_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "fulfilled", "pending_review", "rejected", "failed", "cancelled"}, Default: "pending"},
		{Name: "pharmacist_decision", Type: field.TypeEnum, Enums: []string{"approved", "needs_review", "rejected"}, Default: "approved"},
		{Name: "safety_issues", Type: field.TypeJSON, Nullable: true},
		{Name: "total_amount", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "order_user_id",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[1]},
			},
			{
				Name:    "order_status",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[2]},
			},
			{
				Name:    "order_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[2], OrdersColumns[6]},
			},
		},
	}
	// OrderLinesColumns holds the columns for the "order_lines" table.
	OrderLinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "medicine_name", Type: field.TypeString},
		{Name: "dosage", Type: field.TypeString, Nullable: true},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "unit_price", Type: field.TypeFloat64},
		{Name: "order_id", Type: field.TypeString},
		{Name: "medicine_id", Type: field.TypeInt, Nullable: true},
	}
	// OrderLinesTable holds the schema information for the "order_lines" table.
	OrderLinesTable = &schema.Table{
		Name:       "order_lines",
		Columns:    OrderLinesColumns,
		PrimaryKey: []*schema.Column{OrderLinesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_lines_orders_lines",
				Columns:    []*schema.Column{OrderLinesColumns[5]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "order_lines_medicines_medicine",
				Columns:    []*schema.Column{OrderLinesColumns[6]},
				RefColumns: []*schema.Column{MedicinesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "pid", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "age", Type: field.TypeInt, Nullable: true},
		{Name: "allergies", Type: field.TypeJSON, Nullable: true},
		{Name: "conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "risk_score", Type: field.TypeInt, Default: 0},
		{Name: "risk_level", Type: field.TypeEnum, Enums: []string{"normal", "elevated", "high", "critical"}, Default: "normal"},
		{Name: "risk_flags", Type: field.TypeJSON, Nullable: true},
		{Name: "risk_updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "flagged_for_review", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_risk_level",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[8]},
			},
			{
				Name:    "patient_flagged_for_review",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[11]},
			},
		},
	}
	// RefillPredictionsColumns holds the columns for the "refill_predictions" table.
	RefillPredictionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "medicine_name", Type: field.TypeString},
		{Name: "predicted_depletion_date", Type: field.TypeTime},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0.5},
		{Name: "reminder_sent", Type: field.TypeBool, Default: false},
		{Name: "refill_confirmed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RefillPredictionsTable holds the schema information for the "refill_predictions" table.
	RefillPredictionsTable = &schema.Table{
		Name:       "refill_predictions",
		Columns:    RefillPredictionsColumns,
		PrimaryKey: []*schema.Column{RefillPredictionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "refillprediction_user_id_medicine_name",
				Unique:  true,
				Columns: []*schema.Column{RefillPredictionsColumns[1], RefillPredictionsColumns[2]},
			},
			{
				Name:    "refillprediction_predicted_depletion_date",
				Unique:  false,
				Columns: []*schema.Column{RefillPredictionsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogEntriesTable,
		MedicinesTable,
		OrdersTable,
		OrderLinesTable,
		PatientsTable,
		RefillPredictionsTable,
	}
)

func init() {
	AuditLogEntriesTable.ForeignKeys[0].RefTable = OrdersTable
	OrderLinesTable.ForeignKeys[0].RefTable = OrdersTable
	OrderLinesTable.ForeignKeys[1].RefTable = MedicinesTable
}
