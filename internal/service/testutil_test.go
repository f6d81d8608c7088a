package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rental-service/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Vehicle{},
		&model.Contract{},
		&model.Reservation{},
		&model.ClientPayment{},
		&model.Facture{},
		&model.Traite{},
		&model.Infraction{},
		&model.Accident{},
		&model.Charge{},
		&model.Intervention{},
		&model.VehicleInspection{},
		&model.VehicleInsurance{},
	)
	require.NoError(t, err)

	return db
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// stubFiles records deletions instead of touching the filesystem.
type stubFiles struct {
	deleted []string
}

func (s *stubFiles) Delete(url string) error {
	s.deleted = append(s.deleted, url)
	return nil
}

func createTestCustomer(t *testing.T, db *gorm.DB) *model.Customer {
	t.Helper()
	customer := &model.Customer{FirstName: "Amine", LastName: "Trabelsi"}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func createTestVehicle(t *testing.T, db *gorm.DB, plate string) *model.Vehicle {
	t.Helper()
	vehicle := &model.Vehicle{ChassisNumber: "VIN-" + plate, LicensePlate: plate}
	require.NoError(t, db.Create(vehicle).Error)
	return vehicle
}
