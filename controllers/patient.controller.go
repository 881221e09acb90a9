package controllers

import (
	"database/sql"

	"github.com/rdeano/dentacare/models"
)

type PatientInput struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	DOB       string `json:"dob" binding:"required,datetime=2006-01-02"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,max=20"`
	Address   string `json:"address"`
}

var PatientResource = Resource[models.Patient, PatientInput]{
	Name: "patient",
	ListQuery: `
		SELECT id, first_name, last_name, dob::text, email, phone, address, created_at
		FROM patients
		ORDER BY created_at DESC
	`,
	Scan: func(rows *sql.Rows) (models.Patient, error) {
		var p models.Patient
		err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DOB, &p.Email, &p.Phone, &p.Address, &p.CreatedAt)
		return p, err
	},
	InsertQuery: `
		INSERT INTO patients (id, first_name, last_name, dob, email, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
	InsertArgs: func(id string, in PatientInput) []interface{} {
		return []interface{}{id, in.FirstName, in.LastName, in.DOB, in.Email, in.Phone, in.Address}
	},
	UpdateQuery: `
		UPDATE patients
		SET first_name = $1, last_name = $2, dob = $3, email = $4, phone = $5, address = $6
		WHERE id = $7
	`,
	UpdateArgs: func(in PatientInput, id string) []interface{} {
		return []interface{}{in.FirstName, in.LastName, in.DOB, in.Email, in.Phone, in.Address, id}
	},
	DeleteQuery: `DELETE FROM patients WHERE id = $1`,
}
