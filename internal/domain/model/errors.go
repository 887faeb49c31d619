package model

import apperrors "github.com/campuswell/cw-ui-api/internal/errors"

// validationError keeps request validation in this package terse.
func validationError(field, message string) error {
	return apperrors.ValidationField(field, message)
}
