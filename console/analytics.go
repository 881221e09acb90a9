package console

import (
	"context"

	"github.com/samber/lo"

	"github.com/rdeano/dentacare/models"
)

// Summary is the dashboard rollup.
type Summary struct {
	TotalRevenue        float64
	TotalPatients       int
	TotalBillingRecords int
}

// Analyze fetches both whole collections and reduces them locally. There is
// no server-side aggregation; this holds up only at single-clinic scale.
func Analyze(ctx context.Context, patients Collection[models.Patient], billing Collection[models.Billing]) (Summary, error) {
	billingRows, err := billing.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	patientRows, err := patients.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		TotalRevenue:        lo.SumBy(billingRows, func(b models.Billing) float64 { return b.Amount }),
		TotalPatients:       len(patientRows),
		TotalBillingRecords: len(billingRows),
	}, nil
}

// PatientName resolves a patient id to "First Last" for display. A missing
// id degrades to "Unknown" rather than blocking the screen; deleted patients
// can still be referenced by appointment and billing rows.
func PatientName(patients []models.Patient, patientID string) string {
	p, found := lo.Find(patients, func(p models.Patient) bool { return p.ID == patientID })
	if !found {
		return "Unknown"
	}
	return p.FirstName + " " + p.LastName
}
