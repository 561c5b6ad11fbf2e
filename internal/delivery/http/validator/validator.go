// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator wraps a validator.Validate instance for Echo.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the Echo request validator.
func New() *CustomValidator {
	return &CustomValidator{
		validate: playground.New(),
	}
}

// Validate checks the struct tags on a bound request body.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
