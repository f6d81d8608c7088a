package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextContractNumber(t *testing.T) {
	assert.Equal(t, "Noc-00001", NextContractNumber(""))
	assert.Equal(t, "Noc-00002", NextContractNumber("Noc-00001"))
	assert.Equal(t, "Noc-00100", NextContractNumber("Noc-00099"))
	assert.Equal(t, "Noc-100000", NextContractNumber("Noc-99999"))
}

func TestNextContractNumberUnparsablePrevious(t *testing.T) {
	assert.Equal(t, "Noc-00001", NextContractNumber("garbage"))
	assert.Equal(t, "Noc-00001", NextContractNumber("Noc-abc"))
	assert.Equal(t, "Noc-00001", NextContractNumber("RES-0001"))
}

func TestNextReservationNumber(t *testing.T) {
	assert.Equal(t, "RES-0001", NextReservationNumber(""))
	assert.Equal(t, "RES-0042", NextReservationNumber("RES-0041"))
}

func TestNextInfractionNumber(t *testing.T) {
	assert.Equal(t, "INF-00001", NextInfractionNumber(""))
	assert.Equal(t, "INF-00010", NextInfractionNumber("INF-00009"))
}

func TestNextPaymentNumberSameYear(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "REG-2025-001", NextPaymentNumber("", now))
	assert.Equal(t, "REG-2025-002", NextPaymentNumber("REG-2025-001", now))
	assert.Equal(t, "REG-2025-100", NextPaymentNumber("REG-2025-099", now))
}

func TestNextPaymentNumberYearRollover(t *testing.T) {
	now := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "REG-2026-001", NextPaymentNumber("REG-2025-137", now))
}

func TestNextPaymentNumberUnparsablePrevious(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "REG-2025-001", NextPaymentNumber("REG-2025", now))
	assert.Equal(t, "REG-2025-001", NextPaymentNumber("REG-abcd-010", now))
}

func TestNewInvoiceNumber(t *testing.T) {
	now := time.UnixMilli(1735689600123)
	assert.Equal(t, "INV-1735689600123", NewInvoiceNumber(now))
}
