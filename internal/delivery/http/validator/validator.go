// Package validator plugs go-playground/validator into echo.
package validator

import (
	"fmt"
	"strings"

	"furnishop/internal/domain/entity"
	"furnishop/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New registers the storefront's enum tags next to the built-in ones.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return entity.Category(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		return entity.PaymentMethod(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return entity.OrderStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{validate: v}
}

// Validate returns an error listing every failed field as "field: tag".
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}

	return errors.New(strings.Join(msgs, "; "))
}
