package dto

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the ISO calendar date format used on the wire.
const DateLayout = "2006-01-02"

// ParseDate converts an ISO YYYY-MM-DD string into a date column value.
func ParseDate(value string) (datatypes.Date, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("%q is not a YYYY-MM-DD date", value)
	}
	return datatypes.Date(parsed), nil
}

// FormatDate renders a date column value as YYYY-MM-DD.
func FormatDate(date datatypes.Date) string {
	return time.Time(date).Format(DateLayout)
}

// FormatOptionalDate renders a nullable date column, returning nil when unset.
func FormatOptionalDate(date *datatypes.Date) *string {
	if date == nil {
		return nil
	}
	formatted := FormatDate(*date)
	return &formatted
}
