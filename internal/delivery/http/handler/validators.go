package handler

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

// RegisterValidators adds the matrimony binding tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	rules := map[string]validator.Func{
		"gender": func(fl validator.FieldLevel) bool {
			_, ok := domain.ParseGender(fl.Field().String())
			return ok
		},
		"zodiac": func(fl validator.FieldLevel) bool {
			return domain.IsZodiacSign(fl.Field().String())
		},
		"nakshatra": func(fl validator.FieldLevel) bool {
			return domain.IsNakshatra(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}
