package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rental-service/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(allModels()...)
	require.NoError(t, err)

	return db
}

func allModels() []interface{} {
	return []interface{}{
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
	}
}

// setupEnforcedTestDB opens a connection with foreign keys switched on and a
// schema matching the production migrations: only the fleet tables reference
// vehicles, every other table stores plain ids that outlive the referenced
// row. AutoMigrate would add constraints the production schema does not have,
// so the fleet tables are created by hand.
func setupEnforcedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.Customer{},
		&model.Vehicle{},
		&model.Contract{},
		&model.Reservation{},
		&model.Accident{},
	)
	require.NoError(t, err)

	for _, stmt := range []string{
		`CREATE TABLE vehicle_inspections (
			id uuid PRIMARY KEY,
			vehicle_id uuid REFERENCES vehicles(id),
			center varchar(128),
			inspection_date datetime,
			start_date datetime,
			end_date datetime,
			price real,
			result varchar(32),
			documents jsonb,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE vehicle_insurances (
			id uuid PRIMARY KEY,
			vehicle_id uuid REFERENCES vehicles(id),
			company varchar(128),
			policy_number varchar(64),
			operation_date datetime,
			start_date datetime,
			end_date datetime,
			price real,
			documents jsonb,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE infractions (
			id uuid PRIMARY KEY,
			infraction_number varchar(32),
			vehicle_id uuid REFERENCES vehicles(id),
			customer_id uuid,
			date datetime,
			place varchar(128),
			amount real,
			status varchar(32),
			description text,
			documents jsonb,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE interventions (
			id uuid PRIMARY KEY,
			vehicle_id uuid REFERENCES vehicles(id),
			type varchar(64),
			date datetime,
			cost real,
			mileage integer,
			next_mileage integer,
			garage varchar(128),
			notes text,
			documents jsonb,
			created_at datetime,
			updated_at datetime
		)`,
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}
