package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SecondDriver is persisted as NULL when every field is blank (see service.IsSecondDriverEmpty).
// Stored as a nullable JSONB column.
type SecondDriver struct {
	Name              string `json:"name"`
	Nationality       string `json:"nationality"`
	BirthDate         string `json:"birth_date"`
	Address           string `json:"address"`
	Phone             string `json:"phone"`
	ForeignAddress    string `json:"foreign_address"`
	LicenseNumber     string `json:"license_number"`
	LicenseIssueDate  string `json:"license_issue_date"`
	PassportOrCIN     string `json:"passport_or_cin"`
	PassportIssueDate string `json:"passport_issue_date"`
}

func (s *SecondDriver) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (s *SecondDriver) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// ContractExtension records an agreed prolongation of the rental period.
// Stored as a nullable JSONB column.
type ContractExtension struct {
	Extended  bool       `json:"extended"`
	NewEndAt  *time.Time `json:"new_end_at"`
	ExtraDays int        `json:"extra_days"`
	ExtraCost float64    `json:"extra_cost"`
}

func (e *ContractExtension) Value() (driver.Value, error) {
	if e == nil {
		return nil, nil
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (e *ContractExtension) Scan(value interface{}) error {
	return scanJSON(value, e)
}

type Contract struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	ContractNumber string             `gorm:"type:varchar(32);uniqueIndex;not null" json:"contract_number"`
	CustomerID     uuid.UUID          `gorm:"type:uuid;not null" json:"customer_id"`
	VehicleID      uuid.UUID          `gorm:"type:uuid;not null" json:"vehicle_id"`
	StartDate      time.Time          `json:"start_date"`
	EndDate        time.Time          `json:"end_date"`
	DailyRate      float64            `json:"daily_rate"`
	TotalAmount    float64            `json:"total_amount"`
	Guarantee      float64            `json:"guarantee"`
	PaymentMethod  string             `gorm:"type:varchar(32)" json:"payment_method"`
	DeliveryPlace  string             `gorm:"type:varchar(128)" json:"delivery_place"`
	ReturnPlace    string             `gorm:"type:varchar(128)" json:"return_place"`
	SecondDriver   *SecondDriver      `gorm:"type:jsonb" json:"second_driver"`
	Equipment      VehicleEquipment   `gorm:"embedded;embeddedPrefix:equipment_" json:"equipment"`
	Extension      *ContractExtension `gorm:"type:jsonb" json:"extension"`
	PiecesJointes  DocumentList       `gorm:"type:jsonb" json:"pieces_jointes"`
	CreatedAt      time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Vehicle  *Vehicle  `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (Contract) TableName() string {
	return "contracts"
}

func (c *Contract) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
