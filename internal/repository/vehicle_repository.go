package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rental-service/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type VehicleFilter struct {
	Search string
	Status model.VehicleStatus
	Limit  int
	Offset int
}

func (r *VehicleRepository) List(ctx context.Context, filter VehicleFilter) ([]model.Vehicle, error) {
	query := r.db.WithContext(ctx).Model(&model.Vehicle{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where(
			"(license_plate ILIKE ? OR chassis_number ILIKE ? OR brand ILIKE ? OR model ILIKE ?)",
			search, search, search, search,
		)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else if filter.Limit == 0 {
		query = query.Limit(200)
	}

	var vehicles []model.Vehicle
	if err := query.Order("created_at DESC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *VehicleRepository) Save(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

// DeleteDetaching nulls the vehicle reference on inspection, insurance,
// infraction and intervention records before removing the vehicle row.
// Contracts and accidents keep their reference: they are historical records.
func (r *VehicleRepository) DeleteDetaching(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		detached := []interface{}{
			&model.VehicleInspection{},
			&model.VehicleInsurance{},
			&model.Infraction{},
			&model.Intervention{},
		}
		for _, m := range detached {
			if err := tx.Model(m).
				Where("vehicle_id = ?", id).
				Update("vehicle_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Vehicle{}, "id = ?", id).Error
	})
}
