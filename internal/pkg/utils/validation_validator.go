package utils

import (
	"typeform-connector/internal/pkg/typeform_dto"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("answer_type", validateAnswerType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAnswerType(fl validator.FieldLevel) bool {
	return typeform_dto.KnownAnswerType(fl.Field().String())
}
