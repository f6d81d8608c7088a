package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Infraction keeps a nullable vehicle reference: deleting a vehicle detaches
// it instead of removing the record.
type Infraction struct {
	ID               uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	InfractionNumber string       `gorm:"type:varchar(32);uniqueIndex;not null" json:"infraction_number"`
	VehicleID        *uuid.UUID   `gorm:"type:uuid" json:"vehicle_id"`
	CustomerID       *uuid.UUID   `gorm:"type:uuid" json:"customer_id"`
	Date             time.Time    `json:"date"`
	Place            string       `gorm:"type:varchar(128)" json:"place"`
	Amount           float64      `json:"amount"`
	Status           string       `gorm:"type:varchar(32);default:'non_payee'" json:"status"`
	Description      string       `gorm:"type:text" json:"description"`
	Documents        DocumentList `gorm:"type:jsonb" json:"documents"`
	CreatedAt        time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Vehicle  *Vehicle  `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (Infraction) TableName() string {
	return "infractions"
}

func (i *Infraction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Accident intentionally keeps its vehicle reference when the vehicle is
// deleted; accidents are historical records.
type Accident struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	VehicleID   *uuid.UUID   `gorm:"type:uuid" json:"vehicle_id"`
	CustomerID  *uuid.UUID   `gorm:"type:uuid" json:"customer_id"`
	Date        time.Time    `json:"date"`
	Place       string       `gorm:"type:varchar(128)" json:"place"`
	Description string       `gorm:"type:text" json:"description"`
	Status      string       `gorm:"type:varchar(32);default:'declare'" json:"status"`
	RepairCost  float64      `json:"repair_cost"`
	Documents   DocumentList `gorm:"type:jsonb" json:"documents"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Vehicle  *Vehicle  `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (Accident) TableName() string {
	return "accidents"
}

func (a *Accident) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Charge is a general fleet expense outside maintenance and insurance.
type Charge struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Label     string       `gorm:"type:varchar(128);not null" json:"label"`
	Montant   float64      `json:"montant"`
	Date      *time.Time   `json:"date"`
	Category  string       `gorm:"type:varchar(64)" json:"category"`
	Notes     string       `gorm:"type:text" json:"notes"`
	Documents DocumentList `gorm:"type:jsonb" json:"documents"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Charge) TableName() string {
	return "charges"
}

func (c *Charge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Intervention is a maintenance operation; NextMileage records the odometer
// value at which the next service is due.
type Intervention struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	VehicleID   *uuid.UUID   `gorm:"type:uuid" json:"vehicle_id"`
	Type        string       `gorm:"type:varchar(64)" json:"type"`
	Date        time.Time    `json:"date"`
	Cost        float64      `json:"cost"`
	Mileage     int          `json:"mileage"`
	NextMileage int          `json:"next_mileage"`
	Garage      string       `gorm:"type:varchar(128)" json:"garage"`
	Notes       string       `gorm:"type:text" json:"notes"`
	Documents   DocumentList `gorm:"type:jsonb" json:"documents"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (Intervention) TableName() string {
	return "interventions"
}

func (i *Intervention) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type VehicleInspection struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	VehicleID      *uuid.UUID   `gorm:"type:uuid" json:"vehicle_id"`
	Center         string       `gorm:"type:varchar(128)" json:"center"`
	InspectionDate time.Time    `json:"inspection_date"`
	StartDate      time.Time    `json:"start_date"`
	EndDate        time.Time    `json:"end_date"`
	Price          float64      `json:"price"`
	Result         string       `gorm:"type:varchar(32)" json:"result"`
	Documents      DocumentList `gorm:"type:jsonb" json:"documents"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (VehicleInspection) TableName() string {
	return "vehicle_inspections"
}

func (i *VehicleInspection) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type VehicleInsurance struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	VehicleID     *uuid.UUID   `gorm:"type:uuid" json:"vehicle_id"`
	Company       string       `gorm:"type:varchar(128)" json:"company"`
	PolicyNumber  string       `gorm:"type:varchar(64)" json:"policy_number"`
	OperationDate time.Time    `json:"operation_date"`
	StartDate     time.Time    `json:"start_date"`
	EndDate       time.Time    `json:"end_date"`
	Price         float64      `json:"price"`
	Documents     DocumentList `gorm:"type:jsonb" json:"documents"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (VehicleInsurance) TableName() string {
	return "vehicle_insurances"
}

func (i *VehicleInsurance) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
