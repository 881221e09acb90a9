package models

import (
	"time"
)

// Dates travel as strings on the wire: dob, due_date and payment_date as
// YYYY-MM-DD, appointment_date as the timestamp text Postgres emits. The
// columns themselves are typed DATE/TIMESTAMPTZ and cast on select.

type Patient struct {
	ID        string    `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	DOB       string    `json:"dob" db:"dob"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Appointment struct {
	ID              string    `json:"id" db:"id"`
	PatientID       string    `json:"patient_id" db:"patient_id"`
	AppointmentDate string    `json:"appointment_date" db:"appointment_date"`
	Reason          string    `json:"reason" db:"reason"`
	Status          string    `json:"status" db:"status"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

const (
	AppointmentScheduled   = "scheduled"
	AppointmentCompleted   = "completed"
	AppointmentCanceled    = "canceled"
	AppointmentRescheduled = "rescheduled"
	AppointmentNoShow      = "no_show"
)

type Billing struct {
	ID          string    `json:"id" db:"id"`
	PatientID   string    `json:"patient_id" db:"patient_id"`
	Amount      float64   `json:"amount" db:"amount"`
	Status      string    `json:"status" db:"status"`
	DueDate     string    `json:"due_date" db:"due_date"`
	PaymentDate *string   `json:"payment_date" db:"payment_date"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

const (
	BillingPending  = "pending"
	BillingPaid     = "paid"
	BillingCanceled = "canceled"
)
