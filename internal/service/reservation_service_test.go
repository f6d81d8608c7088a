package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-service/internal/model"
	"rental-service/internal/repository"
)

func newReservationService(t *testing.T) (*ReservationService, *testFixtures) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewReservationService(
		repository.NewReservationRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewVehicleRepository(db),
	)
	return svc, &testFixtures{
		customer: createTestCustomer(t, db),
		vehicle:  createTestVehicle(t, db, "3050-B-12"),
	}
}

func (f *testFixtures) reservationInput() ReservationInput {
	return ReservationInput{
		CustomerID:      f.customer.ID,
		VehicleID:       f.vehicle.ID,
		ReservationDate: time.Now(),
		StartDate:       time.Now().AddDate(0, 0, 1),
		EndDate:         time.Now().AddDate(0, 0, 4),
		TotalAmount:     450,
	}
}

func TestReservationNumbersAreSequential(t *testing.T) {
	svc, fx := newReservationService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, fx.reservationInput())
	require.NoError(t, err)
	assert.Equal(t, "RES-0001", first.ReservationNumber)

	second, err := svc.Create(ctx, fx.reservationInput())
	require.NoError(t, err)
	assert.Equal(t, "RES-0002", second.ReservationNumber)
}

func TestReservationCreateNormalizesStatus(t *testing.T) {
	svc, fx := newReservationService(t)
	ctx := context.Background()

	input := fx.reservationInput()
	input.Status = "Confirmé"
	reservation, err := svc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusValidated, reservation.Status)

	input.Status = ""
	reservation, err = svc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusOngoing, reservation.Status)
}

func TestReservationUpdateKeepsStatusOnUnknownValue(t *testing.T) {
	svc, fx := newReservationService(t)
	ctx := context.Background()

	input := fx.reservationInput()
	input.Status = "validee"
	reservation, err := svc.Create(ctx, input)
	require.NoError(t, err)
	require.Equal(t, model.ReservationStatusValidated, reservation.Status)

	input.Status = "something else entirely"
	input.Notes = "client rappele"
	updated, err := svc.Update(ctx, reservation.ID, input)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusValidated, updated.Status)
	assert.Equal(t, "client rappele", updated.Notes)
}

func TestReservationCreateRejectsMissingReferences(t *testing.T) {
	svc, fx := newReservationService(t)
	ctx := context.Background()

	input := fx.reservationInput()
	input.VehicleID = uuid.Nil
	_, err := svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrInvalidInput)

	input = fx.reservationInput()
	input.CustomerID = uuid.New()
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReservationDeleteMissing(t *testing.T) {
	svc, _ := newReservationService(t)
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
