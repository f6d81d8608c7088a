package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"rental-service/internal/model"
)

func alertTypes(alerts []model.VehicleAlert, vehicleID uuid.UUID) map[model.AlertType]bool {
	found := make(map[model.AlertType]bool)
	for _, alert := range alerts {
		if alert.VehicleID == vehicleID {
			found[alert.Type] = true
		}
	}
	return found
}

func TestNextMaintenanceThreshold(t *testing.T) {
	assert.Equal(t, 10000, nextMaintenanceThreshold(0))
	assert.Equal(t, 10000, nextMaintenanceThreshold(9850))
	assert.Equal(t, 20000, nextMaintenanceThreshold(10000))
	assert.Equal(t, 20000, nextMaintenanceThreshold(19999))
	assert.Equal(t, 30000, nextMaintenanceThreshold(20000))
}

func TestMaintenanceAlertFiresInsideWindow(t *testing.T) {
	now := time.Date(2025, time.July, 1, 15, 30, 0, 0, time.UTC)
	vehicle := model.Vehicle{ID: uuid.New(), LicensePlate: "1234-A-56", Mileage: 9850}
	far := model.Vehicle{ID: uuid.New(), LicensePlate: "7777-B-10", Mileage: 9700}

	alerts := ComputeVehicleAlerts([]model.Vehicle{vehicle, far}, nil, nil, nil, now)

	assert.True(t, alertTypes(alerts, vehicle.ID)[model.AlertMaintenanceDue])
	assert.False(t, alertTypes(alerts, far.ID)[model.AlertMaintenanceDue])
}

func TestMaintenanceAlertSuppressedByScheduledIntervention(t *testing.T) {
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	vehicle := model.Vehicle{ID: uuid.New(), Mileage: 9850}
	interventions := []model.Intervention{
		{VehicleID: &vehicle.ID, NextMileage: 10000},
	}

	alerts := ComputeVehicleAlerts([]model.Vehicle{vehicle}, nil, nil, interventions, now)
	assert.False(t, alertTypes(alerts, vehicle.ID)[model.AlertMaintenanceDue])

	// an intervention scheduled below the threshold does not suppress
	interventions[0].NextMileage = 9900
	alerts = ComputeVehicleAlerts([]model.Vehicle{vehicle}, nil, nil, interventions, now)
	assert.True(t, alertTypes(alerts, vehicle.ID)[model.AlertMaintenanceDue])
}

func TestMissingInspectionAndInsuranceAlerts(t *testing.T) {
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	covered := model.Vehicle{ID: uuid.New()}
	uncovered := model.Vehicle{ID: uuid.New()}

	inspections := []model.VehicleInspection{
		{VehicleID: &covered.ID, EndDate: now.AddDate(0, 6, 0)},
		{VehicleID: &uncovered.ID, EndDate: now.AddDate(0, 0, -1)},
	}
	insurances := []model.VehicleInsurance{
		{VehicleID: &covered.ID, EndDate: now},
	}

	alerts := ComputeVehicleAlerts([]model.Vehicle{covered, uncovered}, inspections, insurances, nil, now)

	coveredAlerts := alertTypes(alerts, covered.ID)
	assert.False(t, coveredAlerts[model.AlertMissingInspection])
	assert.False(t, coveredAlerts[model.AlertMissingInsurance])

	uncoveredAlerts := alertTypes(alerts, uncovered.ID)
	assert.True(t, uncoveredAlerts[model.AlertMissingInspection])
	assert.True(t, uncoveredAlerts[model.AlertMissingInsurance])
}

func TestExpiryAlertsWindow(t *testing.T) {
	now := time.Date(2025, time.July, 1, 9, 0, 0, 0, time.UTC)
	in10 := now.AddDate(0, 0, 10)
	in31 := now.AddDate(0, 0, 31)
	past := now.AddDate(0, 0, -1)

	expiring := model.Vehicle{ID: uuid.New(), AutorisationValidity: &in10, CarteGriseValidity: &in31}
	expired := model.Vehicle{ID: uuid.New(), AutorisationValidity: &past}

	alerts := ComputeVehicleAlerts([]model.Vehicle{expiring, expired}, nil, nil, nil, now)

	expiringAlerts := alertTypes(alerts, expiring.ID)
	assert.True(t, expiringAlerts[model.AlertAutorisationExpiring])
	assert.False(t, expiringAlerts[model.AlertCarteGriseExpiring], "31 days out is past the window")

	// already expired dates do not raise the expiring alert
	assert.False(t, alertTypes(alerts, expired.ID)[model.AlertAutorisationExpiring])
}

func TestMonthlySummaryRevenue(t *testing.T) {
	march := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	reservations := []model.Reservation{
		{Status: model.ReservationStatusValidated, ReservationDate: march, TotalAmount: 1000},
		{Status: model.ReservationStatusValidated, ReservationDate: march.AddDate(0, 0, 5), TotalAmount: 500},
		{Status: model.ReservationStatusOngoing, ReservationDate: march, TotalAmount: 900},
	}

	summary := ComputeMonthlySummary(2025, SummaryRange{}, reservations, nil, nil, nil, nil, nil, nil)

	assert.Equal(t, 1500.0, summary.Recettes[2])
	assert.Equal(t, 0.0, summary.Recettes[1])
}

func TestMonthlySummaryFacturesCountRegardlessOfStatus(t *testing.T) {
	factures := []model.Facture{
		{InvoiceDate: time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), TotalTTC: 240},
		{InvoiceDate: time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC), TotalTTC: 999},
	}

	summary := ComputeMonthlySummary(2025, SummaryRange{}, nil, factures, nil, nil, nil, nil, nil)

	assert.Equal(t, 240.0, summary.Recettes[0])
}

func TestMonthlySummaryExpenses(t *testing.T) {
	feb := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	paid := feb.AddDate(0, 0, 2)

	traites := []model.Traite{
		{Montant: 300, DatePaiement: &paid},
		{Montant: 150, CreatedAt: feb}, // falls back to creation date
	}
	charges := []model.Charge{
		{Montant: 80, Date: &feb},
	}
	interventions := []model.Intervention{
		{Cost: 120, Date: feb},
	}
	inspections := []model.VehicleInspection{
		{Price: 60, InspectionDate: feb},
	}
	insurances := []model.VehicleInsurance{
		{Price: 400, OperationDate: feb},
	}

	summary := ComputeMonthlySummary(2025, SummaryRange{}, nil, nil, traites, charges, interventions, inspections, insurances)

	assert.Equal(t, 1110.0, summary.Depenses[1])
}

func TestMonthlySummaryDateWindow(t *testing.T) {
	from := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)

	reservations := []model.Reservation{
		{Status: model.ReservationStatusValidated, ReservationDate: from.AddDate(0, 0, 2), TotalAmount: 100},
		{Status: model.ReservationStatusValidated, ReservationDate: from.AddDate(0, 0, -2), TotalAmount: 777},
	}

	summary := ComputeMonthlySummary(2025, SummaryRange{From: &from, To: &to}, reservations, nil, nil, nil, nil, nil, nil)

	assert.Equal(t, 100.0, summary.Recettes[2])
}
