package validator

import (
	"time"

	"hotel/shared/failure"
	"hotel/shared/timezone"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerNotPastValidation accepts today or any later day, in the app timezone.
func registerNotPastValidation(field val.FieldLevel) bool {
	date, ok := field.Field().Interface().(time.Time)
	if !ok {
		return false
	}

	return !timezone.StartOfDay(timezone.ToAppTime(date)).Before(timezone.Today())
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("notpast", registerNotPastValidation)
	if err != nil {
		panic(err)
	}
}

// ValidateStruct validates data against its `validate` tags and reports the
// first violation as an invalid input failure.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
