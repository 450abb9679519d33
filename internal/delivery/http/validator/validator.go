// Package validator adapts go-playground/validator to echo's Validator.
package validator

import (
	domainerrors "herbaciarnia/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps a shared validator instance for echo.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates the echo request validator.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validator.New(),
	}
}

// Validate implements echo.Validator. Validation failures surface as a
// VALIDATION_FAILED application error carrying the field details.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
