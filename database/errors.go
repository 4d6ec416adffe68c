package database

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/skillsenselab/seahorse/errors"
)

// IsNotFound checks if the error is a GORM record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate checks if the error is a unique-constraint violation.
// With TranslateError enabled, driver-specific duplicate-key errors are
// normalized to gorm.ErrDuplicatedKey.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsInvalidData checks if the error is a data-validation failure reported by
// GORM rather than an infrastructure fault.
func IsInvalidData(err error) bool {
	return errors.Is(err, gorm.ErrInvalidData) ||
		errors.Is(err, gorm.ErrInvalidValue) ||
		errors.Is(err, gorm.ErrInvalidField) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// FromDatabase converts a database error to an AppError.
func FromDatabase(err error, resource string) *apperrors.AppError {
	if err == nil {
		return nil
	}

	switch {
	case IsNotFound(err):
		return apperrors.NotFound(resource)
	case IsDuplicate(err):
		return apperrors.AlreadyExists(resource).WithCause(err)
	case IsInvalidData(err):
		return apperrors.Validation("Invalid " + resource + " data.").WithCause(err)
	default:
		return apperrors.DatabaseError(err)
	}
}
