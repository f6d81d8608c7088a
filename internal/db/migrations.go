package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Contract, reservation, accident, facture, payment and infraction rows keep
// their customer_id (and, outside the fleet tables, vehicle_id) after the
// referenced row is deleted, so those columns carry no foreign keys. Only the
// four fleet tables reference vehicles: their vehicle_id is set to NULL before
// a vehicle row is removed.
var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(64) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL DEFAULT 'agent',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		first_name VARCHAR(128) NOT NULL,
		last_name VARCHAR(128) NOT NULL,
		cin VARCHAR(32) UNIQUE,
		license_number VARCHAR(32) UNIQUE,
		passport_no VARCHAR(32) UNIQUE,
		birth_date TIMESTAMPTZ,
		nationality VARCHAR(64),
		address TEXT,
		phone VARCHAR(32),
		email VARCHAR(255),
		status VARCHAR(16) NOT NULL DEFAULT 'Actif',
		documents JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		chassis_number VARCHAR(64) NOT NULL UNIQUE,
		license_plate VARCHAR(32) NOT NULL UNIQUE,
		brand VARCHAR(64),
		model VARCHAR(64),
		year INT,
		fuel_type VARCHAR(32),
		mileage INT NOT NULL DEFAULT 0,
		daily_rate NUMERIC(10,2) NOT NULL DEFAULT 0,
		equipment_spare_wheel BOOLEAN NOT NULL DEFAULT FALSE,
		equipment_jack BOOLEAN NOT NULL DEFAULT FALSE,
		equipment_warning_triangle BOOLEAN NOT NULL DEFAULT FALSE,
		equipment_fire_extinguisher BOOLEAN NOT NULL DEFAULT FALSE,
		equipment_first_aid_kit BOOLEAN NOT NULL DEFAULT FALSE,
		equipment_reflective_jackets BOOLEAN NOT NULL DEFAULT FALSE,
		autorisation_validity TIMESTAMPTZ,
		carte_grise_validity TIMESTAMPTZ,
		status VARCHAR(32) NOT NULL DEFAULT 'En parc',
		documents JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_number VARCHAR(32) NOT NULL UNIQUE,
		customer_id UUID NOT NULL,
		vehicle_id UUID NOT NULL,
		start_date TIMESTAMPTZ,
		end_date TIMESTAMPTZ,
		daily_rate NUMERIC(10,2) NOT NULL DEFAULT 0,
		total_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		guarantee NUMERIC(10,2) NOT NULL DEFAULT 0,
		payment_method VARCHAR(32),
		delivery_place VARCHAR(128),
		return_place VARCHAR(128),
		second_driver JSONB,
		equipment_spare_wheel BOOLEAN NOT NULL DEFAULT FALSE,
		equipment_jack BOOLEAN NOT NULL DEFAULT FALSE,
		equipment_warning_triangle BOOLEAN NOT NULL DEFAULT FALSE,
		equipment_fire_extinguisher BOOLEAN NOT NULL DEFAULT FALSE,
		equipment_first_aid_kit BOOLEAN NOT NULL DEFAULT FALSE,
		equipment_reflective_jackets BOOLEAN NOT NULL DEFAULT FALSE,
		extension JSONB,
		pieces_jointes JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_customer_id ON contracts (customer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_vehicle_id ON contracts (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_created_at ON contracts (created_at);`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		reservation_number VARCHAR(32) NOT NULL UNIQUE,
		customer_id UUID NOT NULL,
		vehicle_id UUID NOT NULL,
		reservation_date TIMESTAMPTZ,
		start_date TIMESTAMPTZ,
		end_date TIMESTAMPTZ,
		total_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		status VARCHAR(32) NOT NULL DEFAULT 'en_cours',
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_created_at ON reservations (created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_status ON reservations (status);`,
	`CREATE TABLE IF NOT EXISTS client_payments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		payment_number VARCHAR(32) NOT NULL UNIQUE,
		customer_id UUID NOT NULL,
		payment_for VARCHAR(16) NOT NULL,
		contract_id UUID REFERENCES contracts(id) ON DELETE SET NULL,
		facture_id UUID,
		accident_id UUID,
		amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		method VARCHAR(32),
		payment_date TIMESTAMPTZ,
		notes TEXT,
		documents JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_client_payments_created_at ON client_payments (created_at);`,
	`CREATE TABLE IF NOT EXISTS factures (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		invoice_number VARCHAR(32) NOT NULL UNIQUE,
		customer_id UUID NOT NULL,
		contract_id UUID REFERENCES contracts(id) ON DELETE SET NULL,
		invoice_date TIMESTAMPTZ,
		total_ht NUMERIC(10,2) NOT NULL DEFAULT 0,
		tva_rate NUMERIC(5,2) NOT NULL DEFAULT 0,
		total_ttc NUMERIC(10,2) NOT NULL DEFAULT 0,
		status VARCHAR(32) NOT NULL DEFAULT 'emise',
		lines JSONB NOT NULL DEFAULT '[]',
		documents JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS traites (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_id UUID REFERENCES contracts(id) ON DELETE SET NULL,
		montant NUMERIC(10,2) NOT NULL DEFAULT 0,
		date_paiement TIMESTAMPTZ,
		status VARCHAR(32) NOT NULL DEFAULT 'en_attente',
		notes TEXT,
		documents JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS infractions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		infraction_number VARCHAR(32) NOT NULL UNIQUE,
		vehicle_id UUID REFERENCES vehicles(id),
		customer_id UUID,
		date TIMESTAMPTZ,
		place VARCHAR(128),
		amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		status VARCHAR(32) NOT NULL DEFAULT 'non_payee',
		description TEXT,
		documents JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_infractions_vehicle_id ON infractions (vehicle_id);`,
	`CREATE TABLE IF NOT EXISTS accidents (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID,
		customer_id UUID,
		date TIMESTAMPTZ,
		place VARCHAR(128),
		description TEXT,
		status VARCHAR(32) NOT NULL DEFAULT 'declare',
		repair_cost NUMERIC(10,2) NOT NULL DEFAULT 0,
		documents JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS charges (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		label VARCHAR(128) NOT NULL,
		montant NUMERIC(10,2) NOT NULL DEFAULT 0,
		date TIMESTAMPTZ,
		category VARCHAR(64),
		notes TEXT,
		documents JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS interventions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID REFERENCES vehicles(id),
		type VARCHAR(64),
		date TIMESTAMPTZ,
		cost NUMERIC(10,2) NOT NULL DEFAULT 0,
		mileage INT NOT NULL DEFAULT 0,
		next_mileage INT NOT NULL DEFAULT 0,
		garage VARCHAR(128),
		notes TEXT,
		documents JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_interventions_vehicle_id ON interventions (vehicle_id);`,
	`CREATE TABLE IF NOT EXISTS vehicle_inspections (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID REFERENCES vehicles(id),
		center VARCHAR(128),
		inspection_date TIMESTAMPTZ,
		start_date TIMESTAMPTZ,
		end_date TIMESTAMPTZ,
		price NUMERIC(10,2) NOT NULL DEFAULT 0,
		result VARCHAR(32),
		documents JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicle_inspections_vehicle_id ON vehicle_inspections (vehicle_id);`,
	`CREATE TABLE IF NOT EXISTS vehicle_insurances (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID REFERENCES vehicles(id),
		company VARCHAR(128),
		policy_number VARCHAR(64),
		operation_date TIMESTAMPTZ,
		start_date TIMESTAMPTZ,
		end_date TIMESTAMPTZ,
		price NUMERIC(10,2) NOT NULL DEFAULT 0,
		documents JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicle_insurances_vehicle_id ON vehicle_insurances (vehicle_id);`,
}

func runMigrations(database *gorm.DB) error {
	for idx, stmt := range migrationStatements {
		if err := database.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", idx, err)
		}
	}
	return nil
}
