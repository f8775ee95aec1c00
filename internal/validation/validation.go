package validation

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator wraps go-playground's validator and reports failures using the
// JSON field names clients actually send.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New builds a validator with English messages.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	locale := en.New()
	translator, _ := ut.New(locale, locale).GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, translator)

	return &Validator{validate: validate, translator: translator}
}

// Struct validates a request payload.
func (v *Validator) Struct(payload interface{}) error {
	return v.validate.Struct(payload)
}

// IsValidationError reports whether err came from a failed validation.
func IsValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

// Details maps every failing field to a readable message. Errors that are
// not validation failures are reported under "detail".
func (v *Validator) Details(err error) map[string]string {
	details := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		details["detail"] = err.Error()
		return details
	}

	for _, fieldErr := range validationErrors {
		details[fieldErr.Field()] = fieldErr.Translate(v.translator)
	}
	return details
}

// Summary renders a one-line message naming the failing fields.
func (v *Validator) Summary(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	missing := make([]string, 0, len(validationErrors))
	invalid := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			missing = append(missing, fieldErr.Field())
			continue
		}
		invalid = append(invalid, fieldErr.Field())
	}
	sort.Strings(missing)
	sort.Strings(invalid)

	parts := make([]string, 0, 2)
	if len(missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(invalid, ", "))
	}
	return strings.Join(parts, "; ")
}
