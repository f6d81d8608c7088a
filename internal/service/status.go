package service

import (
	"strings"

	"rental-service/internal/model"
)

var reservationStatusAliases = map[string]model.ReservationStatus{
	"en_cours":       model.ReservationStatusOngoing,
	"ongoing":        model.ReservationStatusOngoing,
	"in_progress":    model.ReservationStatusOngoing,
	"in progress":    model.ReservationStatusOngoing,
	"encours":        model.ReservationStatusOngoing,
	"validee":        model.ReservationStatusValidated,
	"validated":      model.ReservationStatusValidated,
	"confirmed":      model.ReservationStatusValidated,
	"confirmé":       model.ReservationStatusValidated,
	"confirm":        model.ReservationStatusValidated,
	"valide":         model.ReservationStatusValidated,
	"annulee":        model.ReservationStatusCanceled,
	"cancelled":      model.ReservationStatusCanceled,
	"cancel":         model.ReservationStatusCanceled,
	"annule":         model.ReservationStatusCanceled,
	"canceled":       model.ReservationStatusCanceled,
	"fin_de_periode": model.ReservationStatusEnded,
	"ended":          model.ReservationStatusEnded,
	"finished":       model.ReservationStatusEnded,
	"complete":       model.ReservationStatusEnded,
	"completed":      model.ReservationStatusEnded,
}

// NormalizeReservationStatus maps free-form status input to its canonical
// value. Unknown input returns ok=false; callers then leave the stored status
// untouched instead of rejecting the request.
func NormalizeReservationStatus(input string) (model.ReservationStatus, bool) {
	status, ok := reservationStatusAliases[strings.ToLower(strings.TrimSpace(input))]
	return status, ok
}
