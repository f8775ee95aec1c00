package service

import (
	"errors"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/noah-isme/school-services/internal/dto"
)

// PayloadValidator validates request DTOs.
type PayloadValidator interface {
	Struct(payload interface{}) error
}

// textPolicy strips every tag from free text. Entities are unescaped again
// so plain text such as "Ana & Bia" is stored as typed.
var textPolicy = bluemonday.StrictPolicy()

func cleanText(value string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(value)))
}

func requiredText(field, value string) (string, error) {
	clean := cleanText(value)
	if clean == "" {
		return "", &InvalidFieldError{Field: field, Err: ErrBlankText}
	}
	return clean, nil
}

func parseDateField(field, value string) (datatypes.Date, error) {
	parsed, err := dto.ParseDate(value)
	if err != nil {
		return datatypes.Date{}, &InvalidFieldError{Field: field, Err: errors.Join(ErrInvalidDate, err)}
	}
	return parsed, nil
}

func notFoundAs(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func writeFailed(op string, err error) error {
	if err == nil {
		return nil
	}
	return &WriteError{Op: op, Err: err}
}
