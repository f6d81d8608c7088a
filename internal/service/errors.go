package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
)

// PersistError wraps a storage failure together with the record that was
// being written, so the handler layer can echo both back to the caller.
type PersistError struct {
	Op      string
	Payload interface{}
	Err     error
}

func (e *PersistError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
