package controllers

import (
	"database/sql"

	"github.com/rdeano/dentacare/models"
)

type BillingInput struct {
	PatientID   string   `json:"patient_id" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required,gte=0"`
	Status      string   `json:"status" binding:"omitempty,oneof=pending paid canceled"`
	DueDate     string   `json:"due_date" binding:"required,datetime=2006-01-02"`
	PaymentDate string   `json:"payment_date" binding:"omitempty,datetime=2006-01-02"`
	Description string   `json:"description"`
}

func (in BillingInput) status() string {
	if in.Status == "" {
		return models.BillingPending
	}
	return in.Status
}

var BillingResource = Resource[models.Billing, BillingInput]{
	Name: "billing record",
	ListQuery: `
		SELECT id, patient_id, amount, status, due_date::text, payment_date::text, description, created_at
		FROM billing
		ORDER BY created_at DESC
	`,
	Scan: func(rows *sql.Rows) (models.Billing, error) {
		var b models.Billing
		err := rows.Scan(&b.ID, &b.PatientID, &b.Amount, &b.Status, &b.DueDate, &b.PaymentDate, &b.Description, &b.CreatedAt)
		return b, err
	},
	InsertQuery: `
		INSERT INTO billing (id, patient_id, amount, status, due_date, payment_date, description)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::date, $7)
	`,
	InsertArgs: func(id string, in BillingInput) []interface{} {
		return []interface{}{id, in.PatientID, *in.Amount, in.status(), in.DueDate, in.PaymentDate, in.Description}
	},
	UpdateQuery: `
		UPDATE billing
		SET patient_id = $1, amount = $2, status = $3, due_date = $4, payment_date = NULLIF($5, '')::date, description = $6
		WHERE id = $7
	`,
	UpdateArgs: func(in BillingInput, id string) []interface{} {
		return []interface{}{in.PatientID, *in.Amount, in.status(), in.DueDate, in.PaymentDate, in.Description, id}
	},
	DeleteQuery: `DELETE FROM billing WHERE id = $1`,
}
