package handler

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-services/internal/middleware"
	"github.com/noah-isme/school-services/internal/reference"
	"github.com/noah-isme/school-services/internal/service"
	"github.com/noah-isme/school-services/internal/utils"
	"github.com/noah-isme/school-services/internal/validation"
)

var missingEntityErrors = []error{
	service.ErrStudentNotFound,
	service.ErrTeacherNotFound,
	service.ErrClassNotFound,
	service.ErrActivityNotFound,
	service.ErrGradeNotFound,
	service.ErrReservationNotFound,
}

// errorResponder renders service errors with the status taxonomy shared by
// every service.
type errorResponder struct {
	validator *validation.Validator
	logger    zerolog.Logger
}

func newErrorResponder(validator *validation.Validator, logger zerolog.Logger) errorResponder {
	if validator == nil {
		validator = validation.New()
	}
	return errorResponder{validator: validator, logger: logger}
}

func (r errorResponder) respond(c *fiber.Ctx, err error, action string) error {
	logger := requestLogger(r.logger, c)

	if validation.IsValidationError(err) {
		return utils.Fail(c, fiber.StatusBadRequest, r.validator.Summary(err), r.validator.Details(err))
	}

	var fieldErr *service.InvalidFieldError
	if errors.As(err, &fieldErr) {
		return utils.Fail(c, fiber.StatusBadRequest, fieldErr.Error(), map[string]string{fieldErr.Field: fieldErr.Err.Error()})
	}

	var notFound *reference.NotFoundError
	if errors.As(err, &notFound) {
		return utils.Fail(c, fiber.StatusBadRequest, notFound.Error(), map[string]string{notFound.Field: notFound.Error()})
	}

	var unavailable *reference.UnavailableError
	if errors.As(err, &unavailable) {
		logger.Warn().Err(err).Str("field", unavailable.Field).Uint("id", unavailable.ID).Msg(action + " blocked: dependency unavailable")
		return utils.SendError(c, fiber.StatusServiceUnavailable, unavailable.Entity+" validation unavailable")
	}
	if errors.Is(err, reference.ErrDependencyUnavailable) {
		logger.Warn().Err(err).Msg(action + " blocked: dependency unavailable")
		return utils.SendError(c, fiber.StatusServiceUnavailable, "dependency unavailable")
	}

	for _, sentinel := range missingEntityErrors {
		if errors.Is(err, sentinel) {
			return utils.SendError(c, fiber.StatusNotFound, sentinel.Error())
		}
	}

	var writeErr *service.WriteError
	if errors.As(err, &writeErr) {
		logger.Warn().Err(err).Msg(action + " rejected by storage")
		return utils.SendError(c, fiber.StatusBadRequest, writeErr.Err.Error())
	}

	logger.Error().Err(err).Msg("failed to " + action)
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	value := strings.TrimSpace(c.Params(name))
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid identifier")
	}
	return uint(parsed), nil
}

func withRequestContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}
