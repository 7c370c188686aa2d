package model

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the task enum rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		if err := RegisterValidations(v); err != nil {
			panic(fmt.Sprintf("model: register validations: %v", err))
		}
		validate = v
	})
	return validate
}

// RegisterValidations adds the notblank, status, priority and project
// rules to v. The backend calls it on gin's binding engine.
func RegisterValidations(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"notblank": func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		},
		"status": func(fl validator.FieldLevel) bool {
			_, err := ParseStatus(fl.Field().String())
			return err == nil
		},
		"priority": func(fl validator.FieldLevel) bool {
			_, err := ParsePriority(fl.Field().String())
			return err == nil
		},
		"project": func(fl validator.FieldLevel) bool {
			_, err := ParseProjectID(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// FieldError is one rejected field, in a shape that survives JSON.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationErrors lists every rejected field of a struct.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s (%s)", fe.Field, fe.Rule))
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

// ValidateStruct runs the shared validator and flattens its errors.
func ValidateStruct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}

// ValidateDraft checks a create payload before it leaves the client.
func ValidateDraft(d Draft) error {
	return ValidateStruct(d)
}

// ValidatePatch checks an update payload before it leaves the client.
func ValidatePatch(p Patch) error {
	return ValidateStruct(p)
}

// ValidateComment rejects empty and whitespace-only comments.
func ValidateComment(text string) error {
	if strings.TrimSpace(text) == "" {
		return ValidationErrors{{Field: "comment", Rule: "notblank"}}
	}
	return nil
}
