package reference

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/school-services/internal/middleware"
	"github.com/noah-isme/school-services/internal/observability"
)

// DefaultTimeout bounds a lookup when no timeout is configured.
const DefaultTimeout = 3 * time.Second

// NewHTTPClient returns the client shared by remote checkers. Every request
// is bounded by timeout and traced.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// HTTPChecker queries {baseURL}/{id} on the service owning the entity.
type HTTPChecker struct {
	entity  string
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
	tracer  trace.Tracer
}

// NewHTTPChecker builds a remote checker. baseURL is the owning collection,
// for example http://roster:5001/api/classes.
func NewHTTPChecker(entity, baseURL string, client *http.Client, logger zerolog.Logger) *HTTPChecker {
	if client == nil {
		client = NewHTTPClient(DefaultTimeout)
	}
	return &HTTPChecker{
		entity:  entity,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger.With().Str("component", "reference_checker").Str("entity", entity).Logger(),
		tracer:  otel.Tracer("github.com/noah-isme/school-services/internal/reference"),
	}
}

// Entity returns the referenced entity name.
func (c *HTTPChecker) Entity() string {
	return c.entity
}

// Check issues GET {baseURL}/{id}. 200 resolves the reference, any other
// status means not found, and transport failures or timeouts mean the
// dependency is unavailable.
func (c *HTTPChecker) Check(ctx context.Context, field string, id uint) Result {
	ctx, span := c.tracer.Start(ctx, "reference.check", trace.WithAttributes(
		attribute.String("reference.entity", c.entity),
		attribute.String("reference.field", field),
		attribute.Int64("reference.id", int64(id)),
	))
	defer span.End()

	start := time.Now()
	result := c.lookup(ctx, field, id)
	observability.ObserveReferenceCheck(c.entity, "remote", result.Outcome.String(), time.Since(start))

	span.SetAttributes(attribute.String("reference.outcome", result.Outcome.String()))
	if result.Outcome == DependencyUnavailable {
		span.RecordError(result.Cause)
		span.SetStatus(codes.Error, "dependency_unavailable")
		c.logger.Warn().Err(result.Cause).Uint("id", id).Str("field", field).Msg("reference validation unavailable")
	}

	return result
}

func (c *HTTPChecker) lookup(ctx context.Context, field string, id uint) Result {
	result := Result{Field: field, Entity: c.entity, ID: id}
	target := fmt.Sprintf("%s/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		result.Outcome = DependencyUnavailable
		result.Cause = fmt.Errorf("build request: %w", err)
		return result
	}
	req.Header.Set("Accept", "application/json")
	if correlation := middleware.CorrelationIDFromContext(ctx); correlation != "" {
		req.Header.Set(middleware.CorrelationHeader, correlation)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		result.Outcome = DependencyUnavailable
		result.Cause = describeTransportError(err)
		return result
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	switch {
	case resp.StatusCode == http.StatusOK:
		result.Outcome = OK
		return result
	case resp.StatusCode >= http.StatusInternalServerError:
		result.Outcome = DependencyUnavailable
		result.Cause = fmt.Errorf("%s answered %d", target, resp.StatusCode)
		return result
	}

	result.Outcome = NotFound
	c.logger.Debug().Int("status", resp.StatusCode).Uint("id", id).Msg("reference not resolved")
	return result
}

func describeTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("timed out: %w", err)
	}
	return err
}
