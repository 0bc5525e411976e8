package common

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/amirasaad/ledger/pkg/money"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the ledger rules registered:
// decimal.Decimal fields validate as their string form and the "money" tag
// accepts positive amounts with at most two decimal places.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})
		_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
			d, err := money.Parse(fl.Field().String())
			if err != nil {
				return false
			}
			return money.ValidatePositive(d) == nil
		})
		validate = v
	})
	return validate
}

// FieldError is one failed rule, reported under ProblemDetails.Errors.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := Validator().Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
		}
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", fields)
	}
	return &input, nil
}
