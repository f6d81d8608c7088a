package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "Actif"
	CustomerStatusInactive CustomerStatus = "Inactif"
)

type Customer struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName     string         `gorm:"type:varchar(128);not null" json:"first_name"`
	LastName      string         `gorm:"type:varchar(128);not null" json:"last_name"`
	CIN           *string        `gorm:"type:varchar(32);uniqueIndex" json:"cin"`
	LicenseNumber *string        `gorm:"type:varchar(32);uniqueIndex" json:"license_number"`
	PassportNo    *string        `gorm:"type:varchar(32);uniqueIndex" json:"passport_number"`
	BirthDate     *time.Time     `json:"birth_date"`
	Nationality   string         `gorm:"type:varchar(64)" json:"nationality"`
	Address       string         `gorm:"type:text" json:"address"`
	Phone         string         `gorm:"type:varchar(32)" json:"phone"`
	Email         string         `gorm:"type:varchar(255)" json:"email"`
	Status        CustomerStatus `gorm:"type:varchar(16);not null;default:'Actif'" json:"status"`
	Documents     DocumentList   `gorm:"type:jsonb" json:"documents"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
