package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/service"
	"github.com/noah-isme/school-services/internal/utils"
	"github.com/noah-isme/school-services/internal/validation"
)

// ActivityHandler exposes activities over HTTP.
type ActivityHandler struct {
	service service.ActivityService
	errors  errorResponder
}

// NewActivityHandler constructs the handler.
func NewActivityHandler(svc service.ActivityService, validator *validation.Validator, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: svc,
		errors:  newErrorResponder(validator, logger.With().Str("component", "activity_handler").Logger()),
	}
}

// Register attaches activity endpoints to the router group.
func (h *ActivityHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *ActivityHandler) list(c *fiber.Ctx) error {
	activities, err := h.service.List(withRequestContext(c))
	if err != nil {
		return h.errors.respond(c, err, "list activities")
	}
	return utils.SendSuccess(c, "activities retrieved", activities)
}

func (h *ActivityHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	activity, err := h.service.Get(withRequestContext(c), id)
	if err != nil {
		return h.errors.respond(c, err, "get activity")
	}
	return utils.SendSuccess(c, "activity retrieved", activity)
}

func (h *ActivityHandler) create(c *fiber.Ctx) error {
	var payload dto.ActivityCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	activity, err := h.service.Create(withRequestContext(c), payload)
	if err != nil {
		return h.errors.respond(c, err, "create activity")
	}
	return utils.SendCreated(c, "activity created", activity)
}

func (h *ActivityHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ActivityUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	activity, err := h.service.Update(withRequestContext(c), id, payload)
	if err != nil {
		return h.errors.respond(c, err, "update activity")
	}
	return utils.SendSuccess(c, "activity updated", activity)
}

func (h *ActivityHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(withRequestContext(c), id); err != nil {
		return h.errors.respond(c, err, "delete activity")
	}
	return utils.SendSuccess(c, "activity deleted", nil)
}
