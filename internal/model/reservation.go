package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationStatusOngoing   ReservationStatus = "en_cours"
	ReservationStatusValidated ReservationStatus = "validee"
	ReservationStatusCanceled  ReservationStatus = "annulee"
	ReservationStatusEnded     ReservationStatus = "fin_de_periode"
)

type Reservation struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	ReservationNumber string            `gorm:"type:varchar(32);uniqueIndex;not null" json:"reservation_number"`
	CustomerID        uuid.UUID         `gorm:"type:uuid;not null" json:"customer_id"`
	VehicleID         uuid.UUID         `gorm:"type:uuid;not null" json:"vehicle_id"`
	ReservationDate   time.Time         `json:"reservation_date"`
	StartDate         time.Time         `json:"start_date"`
	EndDate           time.Time         `json:"end_date"`
	TotalAmount       float64           `json:"total_amount"`
	Status            ReservationStatus `gorm:"type:varchar(32);not null;default:'en_cours'" json:"status"`
	Notes             string            `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Vehicle  *Vehicle  `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (Reservation) TableName() string {
	return "reservations"
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
