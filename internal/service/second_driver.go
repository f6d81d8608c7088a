package service

import (
	"strings"

	"rental-service/internal/model"
)

// IsSecondDriverEmpty reports whether the record carries no usable data:
// absent, or every one of its ten fields blank after trimming. Empty records
// are persisted as NULL instead of a row of blank strings.
func IsSecondDriverEmpty(d *model.SecondDriver) bool {
	if d == nil {
		return true
	}
	fields := []string{
		d.Name,
		d.Nationality,
		d.BirthDate,
		d.Address,
		d.Phone,
		d.ForeignAddress,
		d.LicenseNumber,
		d.LicenseIssueDate,
		d.PassportOrCIN,
		d.PassportIssueDate,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
