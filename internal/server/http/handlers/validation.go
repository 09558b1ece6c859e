package handlers

import (
	"github.com/go-playground/validator/v10"

	"github.com/polkiloo/habitquest/internal/domain/model"
)

// RegisterValidators adds the custom binding rules used by request DTOs.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("difficulty", validateDifficulty)
}

func validateDifficulty(fl validator.FieldLevel) bool {
	return model.Difficulty(fl.Field().String()).Valid()
}
