package service

import (
	"errors"
	"fmt"
)

var (
	// ErrStudentNotFound indicates the requested student does not exist.
	ErrStudentNotFound = errors.New("student not found")
	// ErrTeacherNotFound indicates the requested teacher does not exist.
	ErrTeacherNotFound = errors.New("teacher not found")
	// ErrClassNotFound indicates the requested class does not exist.
	ErrClassNotFound = errors.New("class not found")
	// ErrActivityNotFound indicates the requested activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrGradeNotFound indicates the requested grade does not exist.
	ErrGradeNotFound = errors.New("grade not found")
	// ErrReservationNotFound indicates the requested reservation does not exist.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidDate indicates a date field is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrBlankText indicates a required text field is empty once markup is stripped.
	ErrBlankText = errors.New("must not be blank")
)

// InvalidFieldError ties a payload field to the reason it was rejected.
type InvalidFieldError struct {
	Field string
	Err   error
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *InvalidFieldError) Unwrap() error {
	return e.Err
}

// WriteError reports that storage rejected a write and the transaction was
// rolled back.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
