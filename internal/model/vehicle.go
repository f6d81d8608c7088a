package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleStatus string

const (
	VehicleStatusInFleet       VehicleStatus = "En parc"
	VehicleStatusInCirculation VehicleStatus = "En circulation"
)

// VehicleEquipment mirrors the fixed checklist on the vehicle intake form.
type VehicleEquipment struct {
	SpareWheel        bool `json:"spare_wheel"`
	Jack              bool `json:"jack"`
	WarningTriangle   bool `json:"warning_triangle"`
	FireExtinguisher  bool `json:"fire_extinguisher"`
	FirstAidKit       bool `json:"first_aid_kit"`
	ReflectiveJackets bool `json:"reflective_jackets"`
}

type Vehicle struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ChassisNumber        string           `gorm:"type:varchar(64);uniqueIndex;not null" json:"chassis_number"`
	LicensePlate         string           `gorm:"type:varchar(32);uniqueIndex;not null" json:"license_plate"`
	Brand                string           `gorm:"type:varchar(64)" json:"brand"`
	Model                string           `gorm:"type:varchar(64)" json:"model"`
	Year                 int              `json:"year"`
	FuelType             string           `gorm:"type:varchar(32)" json:"fuel_type"`
	Mileage              int              `json:"mileage"`
	DailyRate            float64          `json:"daily_rate"`
	Equipment            VehicleEquipment `gorm:"embedded;embeddedPrefix:equipment_" json:"equipment"`
	AutorisationValidity *time.Time       `json:"autorisation_validity"`
	CarteGriseValidity   *time.Time       `json:"carte_grise_validity"`
	Status               VehicleStatus    `gorm:"type:varchar(32);not null;default:'En parc'" json:"status"`
	Documents            DocumentList     `gorm:"type:jsonb" json:"documents"`
	CreatedAt            time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
