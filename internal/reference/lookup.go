package reference

import (
	"context"
	"time"

	"github.com/noah-isme/school-services/internal/observability"
)

// ExistsFunc reports whether a row with the given id exists in local storage.
type ExistsFunc func(ctx context.Context, id uint) (bool, error)

// LookupChecker resolves references against the service's own storage.
type LookupChecker struct {
	entity string
	exists ExistsFunc
}

// NewLookupChecker builds a checker backed by a local existence query.
func NewLookupChecker(entity string, exists ExistsFunc) *LookupChecker {
	return &LookupChecker{entity: entity, exists: exists}
}

// Entity returns the referenced entity name.
func (c *LookupChecker) Entity() string {
	return c.entity
}

// Check queries local storage. Storage errors are reported as
// DependencyUnavailable so the caller never proceeds on an unknown answer.
func (c *LookupChecker) Check(ctx context.Context, field string, id uint) Result {
	start := time.Now()
	result := Result{Field: field, Entity: c.entity, ID: id}

	found, err := c.exists(ctx, id)
	switch {
	case err != nil:
		result.Outcome = DependencyUnavailable
		result.Cause = err
	case found:
		result.Outcome = OK
	default:
		result.Outcome = NotFound
	}

	observability.ObserveReferenceCheck(c.entity, "local", result.Outcome.String(), time.Since(start))
	return result
}
