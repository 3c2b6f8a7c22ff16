// Package validator plugs go-playground/validator into echo so handlers can
// call c.Validate on bound request structs.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "panel/internal/domain/errors"
)

type requestValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator backed by struct tags.
func New() echo.Validator {
	return &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate runs struct-tag validation and maps failures onto the shared
// validation error so the error middleware renders them as 400s.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
