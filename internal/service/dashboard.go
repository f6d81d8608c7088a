package service

import (
	"fmt"
	"time"

	"rental-service/internal/model"
)

const (
	maintenanceInterval = 10000
	maintenanceWindow   = 200
	expiryWindowDays    = 30
)

// midnight truncates t to the start of its day in local time.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysUntil(today, deadline time.Time) int {
	return int(midnight(deadline).Sub(today).Hours() / 24)
}

// nextMaintenanceThreshold rounds the odometer up to the next service
// interval. A vehicle sitting exactly on a threshold is due for the next one.
func nextMaintenanceThreshold(mileage int) int {
	return ((mileage + 1 + maintenanceInterval - 1) / maintenanceInterval) * maintenanceInterval
}

// ComputeVehicleAlerts evaluates every alert rule for every vehicle against
// the given reference time. It is recomputed from full collections on each
// refresh; no incremental state is kept.
func ComputeVehicleAlerts(
	vehicles []model.Vehicle,
	inspections []model.VehicleInspection,
	insurances []model.VehicleInsurance,
	interventions []model.Intervention,
	now time.Time,
) []model.VehicleAlert {
	today := midnight(now)

	activeInspection := make(map[string]bool)
	for _, record := range inspections {
		if record.VehicleID != nil && !midnight(record.EndDate).Before(today) {
			activeInspection[record.VehicleID.String()] = true
		}
	}
	activeInsurance := make(map[string]bool)
	for _, record := range insurances {
		if record.VehicleID != nil && !midnight(record.EndDate).Before(today) {
			activeInsurance[record.VehicleID.String()] = true
		}
	}
	maxNextMileage := make(map[string]int)
	for _, record := range interventions {
		if record.VehicleID == nil {
			continue
		}
		key := record.VehicleID.String()
		if record.NextMileage > maxNextMileage[key] {
			maxNextMileage[key] = record.NextMileage
		}
	}

	alerts := make([]model.VehicleAlert, 0)
	for _, vehicle := range vehicles {
		key := vehicle.ID.String()
		base := model.VehicleAlert{
			VehicleID:    vehicle.ID,
			LicensePlate: vehicle.LicensePlate,
			Brand:        vehicle.Brand,
			Model:        vehicle.Model,
		}

		if !activeInspection[key] {
			alert := base
			alert.Type = model.AlertMissingInspection
			alert.Message = "aucune visite technique valide"
			alerts = append(alerts, alert)
		}
		if !activeInsurance[key] {
			alert := base
			alert.Type = model.AlertMissingInsurance
			alert.Message = "aucune assurance valide"
			alerts = append(alerts, alert)
		}
		if vehicle.AutorisationValidity != nil {
			if days := daysUntil(today, *vehicle.AutorisationValidity); days >= 0 && days <= expiryWindowDays {
				d := days
				alert := base
				alert.Type = model.AlertAutorisationExpiring
				alert.DueDate = vehicle.AutorisationValidity
				alert.DaysLeft = &d
				alert.Message = fmt.Sprintf("autorisation expire dans %d jours", days)
				alerts = append(alerts, alert)
			}
		}
		if vehicle.CarteGriseValidity != nil {
			if days := daysUntil(today, *vehicle.CarteGriseValidity); days >= 0 && days <= expiryWindowDays {
				d := days
				alert := base
				alert.Type = model.AlertCarteGriseExpiring
				alert.DueDate = vehicle.CarteGriseValidity
				alert.DaysLeft = &d
				alert.Message = fmt.Sprintf("carte grise expire dans %d jours", days)
				alerts = append(alerts, alert)
			}
		}

		threshold := nextMaintenanceThreshold(vehicle.Mileage)
		distance := threshold - vehicle.Mileage
		if distance > 0 && distance <= maintenanceWindow && maxNextMileage[key] < threshold {
			alert := base
			alert.Type = model.AlertMaintenanceDue
			alert.Mileage = vehicle.Mileage
			alert.NextMileage = threshold
			alert.Message = fmt.Sprintf("vidange prevue a %d km (reste %d km)", threshold, distance)
			alerts = append(alerts, alert)
		}
	}
	return alerts
}

// SummaryRange is an optional date window narrowing the rollup inside the
// selected year. Nil bounds are open.
type SummaryRange struct {
	From *time.Time
	To   *time.Time
}

func (r SummaryRange) contains(t time.Time) bool {
	day := midnight(t)
	if r.From != nil && day.Before(midnight(*r.From)) {
		return false
	}
	if r.To != nil && day.After(midnight(*r.To)) {
		return false
	}
	return true
}

func monthBucket(t time.Time, year int, window SummaryRange) (int, bool) {
	if t.Year() != year || !window.contains(t) {
		return 0, false
	}
	return int(t.Month()) - 1, true
}

// ComputeMonthlySummary rebuilds the twelve revenue and expense buckets from
// scratch. Revenue counts validated reservations and invoices; expenses sum
// installments, charges, maintenance, inspections and insurance premiums.
func ComputeMonthlySummary(
	year int,
	window SummaryRange,
	reservations []model.Reservation,
	factures []model.Facture,
	traites []model.Traite,
	charges []model.Charge,
	interventions []model.Intervention,
	inspections []model.VehicleInspection,
	insurances []model.VehicleInsurance,
) model.MonthlySummary {
	summary := model.MonthlySummary{Year: year}

	for _, record := range reservations {
		if record.Status != model.ReservationStatusValidated {
			continue
		}
		if month, ok := monthBucket(record.ReservationDate, year, window); ok {
			summary.Recettes[month] += record.TotalAmount
		}
	}
	for _, record := range factures {
		if month, ok := monthBucket(record.InvoiceDate, year, window); ok {
			summary.Recettes[month] += record.TotalTTC
		}
	}

	for _, record := range traites {
		date := record.CreatedAt
		if record.DatePaiement != nil {
			date = *record.DatePaiement
		}
		if month, ok := monthBucket(date, year, window); ok {
			summary.Depenses[month] += record.Montant
		}
	}
	for _, record := range charges {
		date := record.CreatedAt
		if record.Date != nil {
			date = *record.Date
		}
		if month, ok := monthBucket(date, year, window); ok {
			summary.Depenses[month] += record.Montant
		}
	}
	for _, record := range interventions {
		if month, ok := monthBucket(record.Date, year, window); ok {
			summary.Depenses[month] += record.Cost
		}
	}
	for _, record := range inspections {
		if month, ok := monthBucket(record.InspectionDate, year, window); ok {
			summary.Depenses[month] += record.Price
		}
	}
	for _, record := range insurances {
		if month, ok := monthBucket(record.OperationDate, year, window); ok {
			summary.Depenses[month] += record.Price
		}
	}
	return summary
}
