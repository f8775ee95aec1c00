// Package reference checks that foreign keys point at existing rows before
// a write is committed, whether the owning table is local or lives behind a
// sibling service.
package reference

import (
	"context"
	"errors"
	"fmt"
)

// Outcome is the result class of a single existence check.
type Outcome int

const (
	// OK means the referenced row exists.
	OK Outcome = iota
	// NotFound means the owner answered and the row does not exist.
	NotFound
	// DependencyUnavailable means the owner could not be asked.
	DependencyUnavailable
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case NotFound:
		return "not_found"
	case DependencyUnavailable:
		return "dependency_unavailable"
	default:
		return "unknown"
	}
}

// ErrDependencyUnavailable is matched by every UnavailableError.
var ErrDependencyUnavailable = errors.New("dependency unavailable")

// NotFoundError reports a reference to a row that does not exist.
type NotFoundError struct {
	Field  string
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// UnavailableError reports that the owner of a reference could not be reached.
type UnavailableError struct {
	Field  string
	Entity string
	ID     uint
	Cause  error
}

func (e *UnavailableError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s validation unavailable", e.Entity)
	}
	return fmt.Sprintf("%s validation unavailable: %v", e.Entity, e.Cause)
}

// Is lets errors.Is(err, ErrDependencyUnavailable) match.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrDependencyUnavailable
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// Result is the typed outcome of a check.
type Result struct {
	Outcome Outcome
	Field   string
	Entity  string
	ID      uint
	Cause   error
}

// Err converts the result into nil, a *NotFoundError or an *UnavailableError.
func (r Result) Err() error {
	switch r.Outcome {
	case OK:
		return nil
	case NotFound:
		return &NotFoundError{Field: r.Field, Entity: r.Entity, ID: r.ID}
	default:
		return &UnavailableError{Field: r.Field, Entity: r.Entity, ID: r.ID, Cause: r.Cause}
	}
}

// Checker answers whether the row identified by id exists. field names the
// payload attribute carrying the reference and is echoed in the result.
type Checker interface {
	Entity() string
	Check(ctx context.Context, field string, id uint) Result
}

// Require runs the check and returns its error form.
func Require(ctx context.Context, checker Checker, field string, id uint) error {
	return checker.Check(ctx, field, id).Err()
}

// RequireIfPresent checks only references present in a partial payload.
func RequireIfPresent(ctx context.Context, checker Checker, field string, id *uint) error {
	if id == nil {
		return nil
	}
	return Require(ctx, checker, field, *id)
}
