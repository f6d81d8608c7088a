package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"rental-service/internal/model"
	"rental-service/internal/repository"
)

type VehicleService struct {
	vehicleRepo *repository.VehicleRepository
	files       FileStore
	log         zerolog.Logger
}

func NewVehicleService(vehicleRepo *repository.VehicleRepository, files FileStore, log zerolog.Logger) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo, files: files, log: log}
}

type VehicleInput struct {
	ChassisNumber        string
	LicensePlate         string
	Brand                string
	Model                string
	Year                 int
	FuelType             string
	Mileage              int
	DailyRate            float64
	Equipment            model.VehicleEquipment
	AutorisationValidity *time.Time
	CarteGriseValidity   *time.Time
	Status               string
}

func (s *VehicleService) List(ctx context.Context, filter repository.VehicleFilter) ([]model.Vehicle, error) {
	return s.vehicleRepo.List(ctx, filter)
}

func (s *VehicleService) Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Create(ctx context.Context, input VehicleInput, uploaded []model.Document) (*model.Vehicle, error) {
	if input.ChassisNumber == "" || input.LicensePlate == "" {
		return nil, ErrInvalidInput
	}

	vehicle := &model.Vehicle{
		ChassisNumber:        input.ChassisNumber,
		LicensePlate:         input.LicensePlate,
		Brand:                input.Brand,
		Model:                input.Model,
		Year:                 input.Year,
		FuelType:             input.FuelType,
		Mileage:              input.Mileage,
		DailyRate:            input.DailyRate,
		Equipment:            input.Equipment,
		AutorisationValidity: input.AutorisationValidity,
		CarteGriseValidity:   input.CarteGriseValidity,
		Status:               vehicleStatus(input.Status),
		Documents:            model.DocumentList(uploaded),
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, &PersistError{Op: "persist vehicle", Payload: vehicle, Err: err}
	}
	return s.Get(ctx, vehicle.ID)
}

func (s *VehicleService) Update(ctx context.Context, id uuid.UUID, input VehicleInput, keep []string, uploaded []model.Document) (*model.Vehicle, error) {
	vehicle, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	vehicle.ChassisNumber = input.ChassisNumber
	vehicle.LicensePlate = input.LicensePlate
	vehicle.Brand = input.Brand
	vehicle.Model = input.Model
	vehicle.Year = input.Year
	vehicle.FuelType = input.FuelType
	vehicle.Mileage = input.Mileage
	vehicle.DailyRate = input.DailyRate
	vehicle.Equipment = input.Equipment
	vehicle.AutorisationValidity = input.AutorisationValidity
	vehicle.CarteGriseValidity = input.CarteGriseValidity
	vehicle.Status = vehicleStatus(input.Status)
	vehicle.Documents = MergeDocuments(vehicle.Documents, keep, uploaded)

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, &PersistError{Op: "persist vehicle", Payload: vehicle, Err: err}
	}
	return s.Get(ctx, id)
}

// Delete detaches dependent inspection, insurance, infraction and
// intervention records, then removes the vehicle. Stored vehicle files are
// left in place; only customer deletion cleans up files.
func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.vehicleRepo.DeleteDetaching(ctx, id)
}

func (s *VehicleService) RemoveDocument(ctx context.Context, id uuid.UUID, url string) (*model.Vehicle, error) {
	vehicle, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	final, ok := RemoveDocumentByURL(vehicle.Documents, url)
	if !ok {
		return nil, ErrNotFound
	}
	if err := s.files.Delete(url); err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("document file delete failed")
	}

	vehicle.Documents = final
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, &PersistError{Op: "persist vehicle", Payload: vehicle, Err: err}
	}
	return vehicle, nil
}

func vehicleStatus(raw string) model.VehicleStatus {
	if raw == string(model.VehicleStatusInCirculation) {
		return model.VehicleStatusInCirculation
	}
	return model.VehicleStatusInFleet
}
