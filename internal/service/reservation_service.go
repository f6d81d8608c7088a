package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rental-service/internal/model"
	"rental-service/internal/repository"
)

type ReservationService struct {
	reservationRepo *repository.ReservationRepository
	customerRepo    *repository.CustomerRepository
	vehicleRepo     *repository.VehicleRepository
}

func NewReservationService(
	reservationRepo *repository.ReservationRepository,
	customerRepo *repository.CustomerRepository,
	vehicleRepo *repository.VehicleRepository,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		customerRepo:    customerRepo,
		vehicleRepo:     vehicleRepo,
	}
}

type ReservationInput struct {
	CustomerID      uuid.UUID
	VehicleID       uuid.UUID
	ReservationDate time.Time
	StartDate       time.Time
	EndDate         time.Time
	TotalAmount     float64
	Status          string
	Notes           string
}

func (s *ReservationService) List(ctx context.Context, filter repository.ReservationFilter) ([]model.Reservation, error) {
	return s.reservationRepo.List(ctx, filter)
}

func (s *ReservationService) Get(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return reservation, nil
}

func (s *ReservationService) Create(ctx context.Context, input ReservationInput) (*model.Reservation, error) {
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	latest, err := s.reservationRepo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	prev := ""
	if latest != nil {
		prev = latest.ReservationNumber
	}

	status := model.ReservationStatusOngoing
	if normalized, ok := NormalizeReservationStatus(input.Status); ok {
		status = normalized
	}

	reservation := &model.Reservation{
		ReservationNumber: NextReservationNumber(prev),
		CustomerID:        input.CustomerID,
		VehicleID:         input.VehicleID,
		ReservationDate:   input.ReservationDate,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		TotalAmount:       input.TotalAmount,
		Status:            status,
		Notes:             input.Notes,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, &PersistError{Op: "persist reservation", Payload: reservation, Err: err}
	}
	return s.Get(ctx, reservation.ID)
}

// Update applies the input; an unrecognized status leaves the stored status
// untouched rather than failing the request.
func (s *ReservationService) Update(ctx context.Context, id uuid.UUID, input ReservationInput) (*model.Reservation, error) {
	reservation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	reservation.CustomerID = input.CustomerID
	reservation.VehicleID = input.VehicleID
	reservation.ReservationDate = input.ReservationDate
	reservation.StartDate = input.StartDate
	reservation.EndDate = input.EndDate
	reservation.TotalAmount = input.TotalAmount
	reservation.Notes = input.Notes
	if normalized, ok := NormalizeReservationStatus(input.Status); ok {
		reservation.Status = normalized
	}
	reservation.Customer = nil
	reservation.Vehicle = nil

	if err := s.reservationRepo.Save(ctx, reservation); err != nil {
		return nil, &PersistError{Op: "persist reservation", Payload: reservation, Err: err}
	}
	return s.Get(ctx, id)
}

func (s *ReservationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.reservationRepo.Delete(ctx, id)
}

func (s *ReservationService) checkReferences(ctx context.Context, input ReservationInput) error {
	if input.CustomerID == uuid.Nil || input.VehicleID == uuid.Nil {
		return ErrInvalidInput
	}
	if _, err := s.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return mapNotFound(err)
	}
	if _, err := s.vehicleRepo.GetByID(ctx, input.VehicleID); err != nil {
		return mapNotFound(err)
	}
	return nil
}
