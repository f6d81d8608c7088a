package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rental-service/internal/model"
)

// BillingRepository covers factures, client payments and traites.
type BillingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) *BillingRepository {
	return &BillingRepository{db: db}
}

type FactureFilter struct {
	CustomerID *uuid.UUID
	Status     string
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
	Offset     int
}

func (r *BillingRepository) ListFactures(ctx context.Context, filter FactureFilter) ([]model.Facture, error) {
	query := r.db.WithContext(ctx).Model(&model.Facture{})

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("invoice_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("invoice_date <= ?", *filter.DateTo)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else if filter.Limit == 0 {
		query = query.Limit(200)
	}

	var factures []model.Facture
	if err := query.Order("created_at DESC").Preload("Customer").Find(&factures).Error; err != nil {
		return nil, err
	}
	return factures, nil
}

func (r *BillingRepository) GetFacture(ctx context.Context, id uuid.UUID) (*model.Facture, error) {
	var facture model.Facture
	if err := r.db.WithContext(ctx).Preload("Customer").First(&facture, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &facture, nil
}

func (r *BillingRepository) CreateFacture(ctx context.Context, facture *model.Facture) error {
	return r.db.WithContext(ctx).Create(facture).Error
}

func (r *BillingRepository) SaveFacture(ctx context.Context, facture *model.Facture) error {
	return r.db.WithContext(ctx).Save(facture).Error
}

func (r *BillingRepository) DeleteFacture(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Facture{}, "id = ?", id).Error
}

type PaymentFilter struct {
	CustomerID *uuid.UUID
	PaymentFor model.PaymentTarget
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
	Offset     int
}

func (r *BillingRepository) ListPayments(ctx context.Context, filter PaymentFilter) ([]model.ClientPayment, error) {
	query := r.db.WithContext(ctx).Model(&model.ClientPayment{})

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.PaymentFor != "" {
		query = query.Where("payment_for = ?", filter.PaymentFor)
	}
	if filter.DateFrom != nil {
		query = query.Where("payment_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("payment_date <= ?", *filter.DateTo)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else if filter.Limit == 0 {
		query = query.Limit(200)
	}

	var payments []model.ClientPayment
	if err := query.Order("created_at DESC").Preload("Customer").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *BillingRepository) GetPayment(ctx context.Context, id uuid.UUID) (*model.ClientPayment, error) {
	var payment model.ClientPayment
	if err := r.db.WithContext(ctx).Preload("Customer").First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// LatestPayment feeds the REG-<year>-NNN numbering; nil when none exist.
func (r *BillingRepository) LatestPayment(ctx context.Context) (*model.ClientPayment, error) {
	var payment model.ClientPayment
	err := r.db.WithContext(ctx).Order("created_at DESC, payment_number DESC").First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *BillingRepository) CreatePayment(ctx context.Context, payment *model.ClientPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *BillingRepository) SavePayment(ctx context.Context, payment *model.ClientPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *BillingRepository) DeletePayment(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ClientPayment{}, "id = ?", id).Error
}

type TraiteFilter struct {
	ContractID *uuid.UUID
	Status     string
	Limit      int
	Offset     int
}

func (r *BillingRepository) ListTraites(ctx context.Context, filter TraiteFilter) ([]model.Traite, error) {
	query := r.db.WithContext(ctx).Model(&model.Traite{})

	if filter.ContractID != nil {
		query = query.Where("contract_id = ?", *filter.ContractID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else if filter.Limit == 0 {
		query = query.Limit(200)
	}

	var traites []model.Traite
	if err := query.Order("created_at DESC").Preload("Contract").Find(&traites).Error; err != nil {
		return nil, err
	}
	return traites, nil
}

func (r *BillingRepository) GetTraite(ctx context.Context, id uuid.UUID) (*model.Traite, error) {
	var traite model.Traite
	if err := r.db.WithContext(ctx).Preload("Contract").First(&traite, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &traite, nil
}

func (r *BillingRepository) CreateTraite(ctx context.Context, traite *model.Traite) error {
	return r.db.WithContext(ctx).Create(traite).Error
}

func (r *BillingRepository) SaveTraite(ctx context.Context, traite *model.Traite) error {
	return r.db.WithContext(ctx).Save(traite).Error
}

func (r *BillingRepository) DeleteTraite(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Traite{}, "id = ?", id).Error
}
