package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"tie/config"
	"tie/shared/constant"
	"tie/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const mobileLength = 10

var validate *val.Validate

// enumerated is implemented by closed-choice string types.
type enumerated interface {
	IsValid() bool
}

func registerEnumValidation(field val.FieldLevel) bool {
	if field.Field().CanInterface() {
		if enum, ok := field.Field().Interface().(enumerated); ok {
			return enum.IsValid()
		}
	}

	return false
}

func registerMobileValidation(enforce bool) val.Func {
	return func(field val.FieldLevel) bool {
		mobile := field.Field().String()
		if !enforce {
			return strings.TrimSpace(mobile) != ""
		}

		if len(mobile) != mobileLength {
			return false
		}

		return strings.IndexFunc(mobile, func(r rune) bool { return r < '0' || r > '9' }) < 0
	}
}

// registerCentsValidation accepts amounts with at most two decimal places, the scale money columns store.
// Decimals reach it as float64 through the custom type func, so the shortest exact decimal is rebuilt first.
func registerCentsValidation(field val.FieldLevel) bool {
	if field.Field().Kind() != reflect.Float64 {
		return false
	}

	amount := decimal.NewFromFloat(field.Field().Float())

	return amount.Equal(amount.Round(constant.MoneyScale))
}

func init() {
	cfg := config.Get()

	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if amount, ok := field.Interface().(decimal.Decimal); ok {
			return amount.InexactFloat64()
		}

		return nil
	}, decimal.Decimal{})

	if err := validate.RegisterValidation("enum", registerEnumValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("mobile", registerMobileValidation(cfg.Reservation.EnforceMobileRule)); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("cents", registerCentsValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("notblank", func(fl val.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// Decode only unmarshals the body, leaving rule checks to the caller.
func Decode[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	if reasons := Reasons(data); len(reasons) > 0 {
		return failure.BadRequestFromString(strings.Join(reasons, "; ")) //nolint:wrapcheck
	}

	return nil
}

// Reasons lists one human readable message per failed rule, in field order.
func Reasons[T any](data *T) []string {
	if err := validate.Struct(data); err != nil {
		return messages(err)
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(strings.Join(messages(err), "; ")) //nolint:wrapcheck
	}

	return nil
}
