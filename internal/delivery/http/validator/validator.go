// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	domainerrors "printdesk/internal/domain/errors"
)

// Validator wraps a validator.Validate instance for Echo.
type Validator struct {
	validate *validatorv10.Validate
}

// New creates a request validator backed by struct tags.
func New() *Validator {
	return &Validator{validate: validatorv10.New()}
}

// Validate implements echo.Validator. Failures surface as VALIDATION_FAILED
// application errors so clients see the same envelope as business validation.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return nil
}
