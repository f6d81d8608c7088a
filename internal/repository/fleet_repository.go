package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rental-service/internal/model"
)

// ListAll disables the default limit on list queries. The dashboard uses it
// to pull full collections.
const ListAll = -1

// FleetRepository covers the vehicle-side operational records: infractions,
// accidents, charges, interventions, inspections and insurances.
type FleetRepository struct {
	db *gorm.DB
}

func NewFleetRepository(db *gorm.DB) *FleetRepository {
	return &FleetRepository{db: db}
}

// FleetFilter is shared by the list methods; VehicleID narrows to one vehicle.
type FleetFilter struct {
	VehicleID *uuid.UUID
	Status    string
	Limit     int
	Offset    int
}

func (f FleetFilter) apply(query *gorm.DB, hasVehicle bool) *gorm.DB {
	if hasVehicle && f.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *f.VehicleID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Offset > 0 {
		query = query.Offset(f.Offset)
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	} else if f.Limit == 0 {
		query = query.Limit(500)
	}
	return query.Order("created_at DESC")
}

func (r *FleetRepository) ListInfractions(ctx context.Context, filter FleetFilter) ([]model.Infraction, error) {
	var records []model.Infraction
	query := filter.apply(r.db.WithContext(ctx).Model(&model.Infraction{}), true)
	if err := query.Preload("Vehicle").Preload("Customer").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FleetRepository) GetInfraction(ctx context.Context, id uuid.UUID) (*model.Infraction, error) {
	var record model.Infraction
	if err := r.db.WithContext(ctx).Preload("Vehicle").Preload("Customer").First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// LatestInfraction feeds the INF-XXXXX numbering; nil when none exist.
func (r *FleetRepository) LatestInfraction(ctx context.Context) (*model.Infraction, error) {
	var record model.Infraction
	err := r.db.WithContext(ctx).Order("created_at DESC, infraction_number DESC").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *FleetRepository) CreateInfraction(ctx context.Context, record *model.Infraction) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *FleetRepository) SaveInfraction(ctx context.Context, record *model.Infraction) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *FleetRepository) DeleteInfraction(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Infraction{}, "id = ?", id).Error
}

func (r *FleetRepository) ListAccidents(ctx context.Context, filter FleetFilter) ([]model.Accident, error) {
	var records []model.Accident
	query := filter.apply(r.db.WithContext(ctx).Model(&model.Accident{}), true)
	if err := query.Preload("Vehicle").Preload("Customer").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FleetRepository) GetAccident(ctx context.Context, id uuid.UUID) (*model.Accident, error) {
	var record model.Accident
	if err := r.db.WithContext(ctx).Preload("Vehicle").Preload("Customer").First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *FleetRepository) CreateAccident(ctx context.Context, record *model.Accident) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *FleetRepository) SaveAccident(ctx context.Context, record *model.Accident) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *FleetRepository) DeleteAccident(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Accident{}, "id = ?", id).Error
}

func (r *FleetRepository) ListCharges(ctx context.Context, filter FleetFilter) ([]model.Charge, error) {
	var records []model.Charge
	query := filter.apply(r.db.WithContext(ctx).Model(&model.Charge{}), false)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FleetRepository) GetCharge(ctx context.Context, id uuid.UUID) (*model.Charge, error) {
	var record model.Charge
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *FleetRepository) CreateCharge(ctx context.Context, record *model.Charge) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *FleetRepository) SaveCharge(ctx context.Context, record *model.Charge) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *FleetRepository) DeleteCharge(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Charge{}, "id = ?", id).Error
}

func (r *FleetRepository) ListInterventions(ctx context.Context, filter FleetFilter) ([]model.Intervention, error) {
	var records []model.Intervention
	query := filter.apply(r.db.WithContext(ctx).Model(&model.Intervention{}), true)
	if err := query.Preload("Vehicle").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FleetRepository) GetIntervention(ctx context.Context, id uuid.UUID) (*model.Intervention, error) {
	var record model.Intervention
	if err := r.db.WithContext(ctx).Preload("Vehicle").First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *FleetRepository) CreateIntervention(ctx context.Context, record *model.Intervention) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *FleetRepository) SaveIntervention(ctx context.Context, record *model.Intervention) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *FleetRepository) DeleteIntervention(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Intervention{}, "id = ?", id).Error
}

func (r *FleetRepository) ListInspections(ctx context.Context, filter FleetFilter) ([]model.VehicleInspection, error) {
	var records []model.VehicleInspection
	query := filter.apply(r.db.WithContext(ctx).Model(&model.VehicleInspection{}), true)
	if err := query.Preload("Vehicle").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FleetRepository) GetInspection(ctx context.Context, id uuid.UUID) (*model.VehicleInspection, error) {
	var record model.VehicleInspection
	if err := r.db.WithContext(ctx).Preload("Vehicle").First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *FleetRepository) CreateInspection(ctx context.Context, record *model.VehicleInspection) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *FleetRepository) SaveInspection(ctx context.Context, record *model.VehicleInspection) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *FleetRepository) DeleteInspection(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.VehicleInspection{}, "id = ?", id).Error
}

func (r *FleetRepository) ListInsurances(ctx context.Context, filter FleetFilter) ([]model.VehicleInsurance, error) {
	var records []model.VehicleInsurance
	query := filter.apply(r.db.WithContext(ctx).Model(&model.VehicleInsurance{}), true)
	if err := query.Preload("Vehicle").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FleetRepository) GetInsurance(ctx context.Context, id uuid.UUID) (*model.VehicleInsurance, error) {
	var record model.VehicleInsurance
	if err := r.db.WithContext(ctx).Preload("Vehicle").First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *FleetRepository) CreateInsurance(ctx context.Context, record *model.VehicleInsurance) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *FleetRepository) SaveInsurance(ctx context.Context, record *model.VehicleInsurance) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *FleetRepository) DeleteInsurance(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.VehicleInsurance{}, "id = ?", id).Error
}
