package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableStatement(t *testing.T, name string) string {
	t.Helper()
	marker := "CREATE TABLE IF NOT EXISTS " + name + " ("
	for _, stmt := range migrationStatements {
		if strings.Contains(stmt, marker) {
			return stmt
		}
	}
	require.Failf(t, "missing table", "no CREATE TABLE statement for %s", name)
	return ""
}

// Contracts, reservations, accidents, factures, payments and infractions keep
// their customer/vehicle ids after the referenced row is deleted. A foreign
// key on those columns would block the delete, so the schema must not declare
// one.
func TestHistoricalReferencesCarryNoForeignKeys(t *testing.T) {
	for _, table := range []string{"contracts", "reservations", "accidents"} {
		stmt := tableStatement(t, table)
		assert.NotContains(t, stmt, "REFERENCES customers", table)
		assert.NotContains(t, stmt, "REFERENCES vehicles", table)
	}
	for _, table := range []string{"factures", "client_payments", "infractions"} {
		assert.NotContains(t, tableStatement(t, table), "REFERENCES customers", table)
	}
}

// The fleet tables are detached (vehicle_id set to NULL) before a vehicle row
// is removed, so their foreign key stays.
func TestFleetTablesReferenceVehicles(t *testing.T) {
	for _, table := range []string{"infractions", "interventions", "vehicle_inspections", "vehicle_insurances"} {
		assert.Contains(t, tableStatement(t, table), "vehicle_id UUID REFERENCES vehicles(id)", table)
	}
}
