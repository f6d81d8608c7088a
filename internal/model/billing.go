package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentTarget string

const (
	PaymentTargetContract PaymentTarget = "contract"
	PaymentTargetFacture  PaymentTarget = "facture"
	PaymentTargetAccident PaymentTarget = "accident"
)

// ClientPayment settles either a contract, a facture or an accident;
// PaymentFor selects which foreign key is meaningful.
type ClientPayment struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	PaymentNumber string        `gorm:"type:varchar(32);uniqueIndex;not null" json:"payment_number"`
	CustomerID    uuid.UUID     `gorm:"type:uuid;not null" json:"customer_id"`
	PaymentFor    PaymentTarget `gorm:"type:varchar(16);not null" json:"payment_for"`
	ContractID    *uuid.UUID    `gorm:"type:uuid" json:"contract_id"`
	FactureID     *uuid.UUID    `gorm:"type:uuid" json:"facture_id"`
	AccidentID    *uuid.UUID    `gorm:"type:uuid" json:"accident_id"`
	Amount        float64       `json:"amount"`
	Method        string        `gorm:"type:varchar(32)" json:"method"`
	PaymentDate   time.Time     `json:"payment_date"`
	Notes         string        `gorm:"type:text" json:"notes"`
	Documents     DocumentList  `gorm:"type:jsonb" json:"documents"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (ClientPayment) TableName() string {
	return "client_payments"
}

func (p *ClientPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// FactureLine is one billed row; the set is stored as JSON on the facture.
type FactureLine struct {
	Label     string  `json:"label"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

type FactureLines []FactureLine

func (l FactureLines) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (l *FactureLines) Scan(value interface{}) error {
	if value == nil {
		*l = FactureLines{}
		return nil
	}
	return scanJSON(value, l)
}

type Facture struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceNumber string       `gorm:"type:varchar(32);uniqueIndex;not null" json:"invoice_number"`
	CustomerID    uuid.UUID    `gorm:"type:uuid;not null" json:"customer_id"`
	ContractID    *uuid.UUID   `gorm:"type:uuid" json:"contract_id"`
	InvoiceDate   time.Time    `json:"invoice_date"`
	TotalHT       float64      `json:"total_ht"`
	TVARate       float64      `json:"tva_rate"`
	TotalTTC      float64      `json:"total_ttc"`
	Status        string       `gorm:"type:varchar(32);default:'emise'" json:"status"`
	Lines         FactureLines `gorm:"type:jsonb" json:"lines"`
	Documents     DocumentList `gorm:"type:jsonb" json:"documents"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (Facture) TableName() string {
	return "factures"
}

func (f *Facture) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// Traite is one installment due under a contract payment plan.
type Traite struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ContractID   *uuid.UUID   `gorm:"type:uuid" json:"contract_id"`
	Montant      float64      `json:"montant"`
	DatePaiement *time.Time   `json:"date_paiement"`
	Status       string       `gorm:"type:varchar(32);default:'en_attente'" json:"status"`
	Notes        string       `gorm:"type:text" json:"notes"`
	Documents    DocumentList `gorm:"type:jsonb" json:"documents"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Contract *Contract `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
}

func (Traite) TableName() string {
	return "traites"
}

func (t *Traite) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
