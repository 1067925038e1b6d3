package store

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/safar/dealhunter-api/internal/database"
)

const msgPasswordTooShort = "Password must be at least 6 characters"

var validate = validator.New()

// checkInput runs the struct's validate tags and turns the first class of
// failure into a client-facing message: missing fields win over length rules.
func checkInput(v interface{}, requiredMsg string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return database.NewValidationError(requiredMsg)
		}
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "min" && fe.Field() == "Password" {
			return database.NewValidationError(msgPasswordTooShort)
		}
	}
	return database.NewValidationError(fieldErrs[0].Error())
}

func checkPasswordLength(password string) error {
	if err := validate.Var(password, "min=6"); err != nil {
		return database.NewValidationError(msgPasswordTooShort)
	}
	return nil
}
