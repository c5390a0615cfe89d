package validator

import (
	"encoding/json"
	"fmt"
	"io"

	val "github.com/go-playground/validator/v10"

	"agenda/shared/failure"
	"agenda/shared/model"
)

var validate *val.Validate

// registerTimeOfDayValidation accepts "HH:MM" strings in 24-hour notation.
func registerTimeOfDayValidation(field val.FieldLevel) bool {
	raw, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := model.ParseTimeOfDay(raw)

	return err == nil
}

// registerWeekdayValidation accepts integers 0 (Sunday) through 6 (Saturday).
func registerWeekdayValidation(field val.FieldLevel) bool {
	day := field.Field().Int()

	return day >= 0 && day <= 6
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("timeofday", registerTimeOfDayValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("weekday", registerWeekdayValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
