package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// RequestValidator wraps a validator instance shared by all handlers.
type RequestValidator struct {
	validate *validator.Validate
}

var (
	validatorOnce    sync.Once
	requestValidator *RequestValidator
)

// GetValidator returns the process-wide request validator.
func GetValidator() *RequestValidator {
	validatorOnce.Do(func() {
		requestValidator = &RequestValidator{validate: validator.New()}
	})
	return requestValidator
}

// Validate runs struct-tag validation on a request DTO.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
