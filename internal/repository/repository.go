// Package repository contains the query layer over the GORM connection.
// Each entity gets its own repository struct so finder cardinalities stay
// explicit: methods returning a single entity yield ErrNotFound on a miss,
// methods returning a slice yield an empty slice. Uniqueness violations are
// surfaced as ErrConflict; the database is opened with TranslateError so
// GORM reports them as gorm.ErrDuplicatedKey regardless of driver.
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/apperrors"
)

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrConflict
	}
	return err
}
