// Package validator adapts go-playground/validator to echo.
package validator

import (
	"promo/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// FieldError describes one failed rule in a response-friendly form.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// New creates a validator with the promotion enum rules registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	rules := map[string]func(string) bool{
		"placement":  func(s string) bool { return entity.Placement(s).IsValid() },
		"channel":    func(s string) bool { return entity.Channel(s).IsValid() },
		"stacking":   func(s string) bool { return entity.StackingPolicy(s).IsValid() },
		"value_type": func(s string) bool { return entity.ValueType(s).IsValid() },
		"target":     func(s string) bool { return entity.TargetType(s).IsValid() },
	}
	for tag, valid := range rules {
		// Registration only fails for empty tags or nil funcs.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		})
	}

	return &CustomValidator{validate: v}
}

// Validate validates a request struct.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Details flattens validation errors. Other errors yield nil.
func Details(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, FieldError{
			Field: fe.Namespace(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return details
}
