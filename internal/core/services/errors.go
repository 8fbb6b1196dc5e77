package services

import (
	"errors"

	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/daterange"

	"gorm.io/gorm"
)

// notFoundAs turns a missing-row error into a NotFound with the given message
func notFoundAs(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound(message)
	}
	return err
}

// rangeError maps daterange parse failures onto validation errors
func rangeError(err error) error {
	if errors.Is(err, daterange.ErrMissing) {
		return domain.Validation("from and to are required (YYYY-MM-DD)")
	}
	return domain.Validation("Invalid date format, expected YYYY-MM-DD")
}
