package controllers

import (
	"database/sql"

	"github.com/rdeano/dentacare/models"
)

type AppointmentInput struct {
	PatientID       string `json:"patient_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	Reason          string `json:"reason" binding:"required"`
	Status          string `json:"status" binding:"omitempty,oneof=scheduled completed canceled rescheduled no_show"`
}

func (in AppointmentInput) status() string {
	if in.Status == "" {
		return models.AppointmentScheduled
	}
	return in.Status
}

// Appointments list in date order so the console shows the upcoming schedule
// first.
var AppointmentResource = Resource[models.Appointment, AppointmentInput]{
	Name: "appointment",
	ListQuery: `
		SELECT id, patient_id, appointment_date::text, reason, status, created_at
		FROM appointments
		ORDER BY appointment_date ASC
	`,
	Scan: func(rows *sql.Rows) (models.Appointment, error) {
		var a models.Appointment
		err := rows.Scan(&a.ID, &a.PatientID, &a.AppointmentDate, &a.Reason, &a.Status, &a.CreatedAt)
		return a, err
	},
	InsertQuery: `
		INSERT INTO appointments (id, patient_id, appointment_date, reason, status)
		VALUES ($1, $2, $3::timestamptz, $4, $5)
	`,
	InsertArgs: func(id string, in AppointmentInput) []interface{} {
		return []interface{}{id, in.PatientID, in.AppointmentDate, in.Reason, in.status()}
	},
	UpdateQuery: `
		UPDATE appointments
		SET patient_id = $1, appointment_date = $2::timestamptz, reason = $3, status = $4
		WHERE id = $5
	`,
	UpdateArgs: func(in AppointmentInput, id string) []interface{} {
		return []interface{}{in.PatientID, in.AppointmentDate, in.Reason, in.status(), id}
	},
	DeleteQuery: `DELETE FROM appointments WHERE id = $1`,
}
