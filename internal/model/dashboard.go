package model

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertMissingInspection    AlertType = "MISSING_INSPECTION"
	AlertMissingInsurance     AlertType = "MISSING_INSURANCE"
	AlertAutorisationExpiring AlertType = "AUTORISATION_EXPIRING"
	AlertCarteGriseExpiring   AlertType = "CARTE_GRISE_EXPIRING"
	AlertMaintenanceDue       AlertType = "MAINTENANCE_DUE"
)

// VehicleAlert is one dashboard warning raised against a vehicle.
type VehicleAlert struct {
	Type         AlertType  `json:"type"`
	VehicleID    uuid.UUID  `json:"vehicle_id"`
	LicensePlate string     `json:"license_plate"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	DaysLeft     *int       `json:"days_left,omitempty"`
	Mileage      int        `json:"mileage,omitempty"`
	NextMileage  int        `json:"next_mileage,omitempty"`
	Message      string     `json:"message"`
}

// MonthlySummary carries twelve calendar-month buckets (index 0 = January)
// of revenue and expense for the selected year.
type MonthlySummary struct {
	Year     int         `json:"year"`
	Recettes [12]float64 `json:"recettes"`
	Depenses [12]float64 `json:"depenses"`
}
