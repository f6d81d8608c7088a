package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rental-service/internal/model"
)

func TestDeleteDetachingNullsOperationalReferences(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewVehicleRepository(db)

	vehicle := &model.Vehicle{ChassisNumber: "VF1AAAAA000000001", LicensePlate: "1001-A-20"}
	require.NoError(t, repo.Create(ctx, vehicle))

	inspection := &model.VehicleInspection{VehicleID: &vehicle.ID, EndDate: time.Now().AddDate(1, 0, 0)}
	insurance := &model.VehicleInsurance{VehicleID: &vehicle.ID, EndDate: time.Now().AddDate(1, 0, 0)}
	infraction := &model.Infraction{InfractionNumber: "INF-00001", VehicleID: &vehicle.ID, Date: time.Now()}
	intervention := &model.Intervention{VehicleID: &vehicle.ID, Date: time.Now(), Mileage: 5000}
	require.NoError(t, db.Create(inspection).Error)
	require.NoError(t, db.Create(insurance).Error)
	require.NoError(t, db.Create(infraction).Error)
	require.NoError(t, db.Create(intervention).Error)

	require.NoError(t, repo.DeleteDetaching(ctx, vehicle.ID))

	_, err := repo.GetByID(ctx, vehicle.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var gotInspection model.VehicleInspection
	require.NoError(t, db.First(&gotInspection, "id = ?", inspection.ID).Error)
	assert.Nil(t, gotInspection.VehicleID)

	var gotInsurance model.VehicleInsurance
	require.NoError(t, db.First(&gotInsurance, "id = ?", insurance.ID).Error)
	assert.Nil(t, gotInsurance.VehicleID)

	var gotInfraction model.Infraction
	require.NoError(t, db.First(&gotInfraction, "id = ?", infraction.ID).Error)
	assert.Nil(t, gotInfraction.VehicleID)

	var gotIntervention model.Intervention
	require.NoError(t, db.First(&gotIntervention, "id = ?", intervention.ID).Error)
	assert.Nil(t, gotIntervention.VehicleID)
}

func TestDeleteDetachingKeepsContractAndAccidentReferences(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewVehicleRepository(db)

	customer := &model.Customer{FirstName: "Sami", LastName: "Ben Ali"}
	require.NoError(t, db.Create(customer).Error)

	vehicle := &model.Vehicle{ChassisNumber: "VF1AAAAA000000002", LicensePlate: "1002-A-20"}
	require.NoError(t, repo.Create(ctx, vehicle))

	contract := &model.Contract{
		ContractNumber: "Noc-00001",
		CustomerID:     customer.ID,
		VehicleID:      vehicle.ID,
		StartDate:      time.Now(),
		EndDate:        time.Now().AddDate(0, 0, 7),
	}
	require.NoError(t, db.Create(contract).Error)

	accident := &model.Accident{VehicleID: &vehicle.ID, Date: time.Now()}
	require.NoError(t, db.Create(accident).Error)

	require.NoError(t, repo.DeleteDetaching(ctx, vehicle.ID))

	var gotContract model.Contract
	require.NoError(t, db.First(&gotContract, "id = ?", contract.ID).Error)
	assert.Equal(t, vehicle.ID, gotContract.VehicleID)

	var gotAccident model.Accident
	require.NoError(t, db.First(&gotAccident, "id = ?", accident.ID).Error)
	require.NotNil(t, gotAccident.VehicleID)
	assert.Equal(t, vehicle.ID, *gotAccident.VehicleID)
}

// A vehicle with contract, reservation and accident history must still be
// deletable when the database enforces foreign keys, since those tables keep
// plain ids. Same for a customer with contract history.
func TestDeleteDetachingUnderForeignKeyEnforcement(t *testing.T) {
	db := setupEnforcedTestDB(t)
	ctx := context.Background()
	repo := NewVehicleRepository(db)

	customer := &model.Customer{FirstName: "Sami", LastName: "Ben Ali"}
	require.NoError(t, db.Create(customer).Error)

	vehicle := &model.Vehicle{ChassisNumber: "VF1AAAAA000000003", LicensePlate: "1003-A-20"}
	require.NoError(t, repo.Create(ctx, vehicle))

	contract := &model.Contract{
		ContractNumber: "Noc-00001",
		CustomerID:     customer.ID,
		VehicleID:      vehicle.ID,
		StartDate:      time.Now(),
		EndDate:        time.Now().AddDate(0, 0, 7),
	}
	require.NoError(t, db.Create(contract).Error)

	reservation := &model.Reservation{
		ReservationNumber: "RES-0001",
		CustomerID:        customer.ID,
		VehicleID:         vehicle.ID,
		ReservationDate:   time.Now(),
	}
	require.NoError(t, db.Create(reservation).Error)

	accident := &model.Accident{VehicleID: &vehicle.ID, Date: time.Now()}
	require.NoError(t, db.Create(accident).Error)

	inspection := &model.VehicleInspection{VehicleID: &vehicle.ID, EndDate: time.Now().AddDate(1, 0, 0)}
	require.NoError(t, db.Create(inspection).Error)

	require.NoError(t, repo.DeleteDetaching(ctx, vehicle.ID))

	_, err := repo.GetByID(ctx, vehicle.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var gotContract model.Contract
	require.NoError(t, db.First(&gotContract, "id = ?", contract.ID).Error)
	assert.Equal(t, vehicle.ID, gotContract.VehicleID)

	var gotInspection model.VehicleInspection
	require.NoError(t, db.First(&gotInspection, "id = ?", inspection.ID).Error)
	assert.Nil(t, gotInspection.VehicleID)

	require.NoError(t, NewCustomerRepository(db).Delete(ctx, customer.ID))
	require.NoError(t, db.First(&gotContract, "id = ?", contract.ID).Error)
	assert.Equal(t, customer.ID, gotContract.CustomerID)
}
