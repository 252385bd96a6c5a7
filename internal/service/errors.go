package service

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Callers match these with errors.Is. Any other error is an internal failure.
var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// conflictOr turns a late unique violation into ErrConflict and wraps
// anything else with msg.
func conflictOr(err error, conflict, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Wrap(ErrConflict, conflict)
	}
	return errors.Wrap(err, msg)
}
