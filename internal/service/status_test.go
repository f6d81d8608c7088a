package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rental-service/internal/model"
)

func TestNormalizeReservationStatusAliases(t *testing.T) {
	cases := map[string]model.ReservationStatus{
		"ongoing":        model.ReservationStatusOngoing,
		"in progress":    model.ReservationStatusOngoing,
		"IN_PROGRESS":    model.ReservationStatusOngoing,
		"confirmed":      model.ReservationStatusValidated,
		"confirmé":       model.ReservationStatusValidated,
		"valide":         model.ReservationStatusValidated,
		"Cancelled":      model.ReservationStatusCanceled,
		"annule":         model.ReservationStatusCanceled,
		"ended":          model.ReservationStatusEnded,
		"completed":      model.ReservationStatusEnded,
		" fin_de_periode ": model.ReservationStatusEnded,
	}
	for input, want := range cases {
		got, ok := NormalizeReservationStatus(input)
		assert.True(t, ok, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestNormalizeReservationStatusCanonicalIdempotent(t *testing.T) {
	for _, canonical := range []model.ReservationStatus{
		model.ReservationStatusOngoing,
		model.ReservationStatusValidated,
		model.ReservationStatusCanceled,
		model.ReservationStatusEnded,
	} {
		got, ok := NormalizeReservationStatus(string(canonical))
		assert.True(t, ok)
		assert.Equal(t, canonical, got)
	}
}

func TestNormalizeReservationStatusUnknown(t *testing.T) {
	_, ok := NormalizeReservationStatus("pending")
	assert.False(t, ok)
	_, ok = NormalizeReservationStatus("")
	assert.False(t, ok)
}
