package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/service"
	"github.com/noah-isme/school-services/internal/utils"
	"github.com/noah-isme/school-services/internal/validation"
)

// ClassHandler exposes classes over HTTP.
type ClassHandler struct {
	service service.ClassService
	errors  errorResponder
}

// NewClassHandler constructs the handler.
func NewClassHandler(svc service.ClassService, validator *validation.Validator, logger zerolog.Logger) *ClassHandler {
	return &ClassHandler{
		service: svc,
		errors:  newErrorResponder(validator, logger.With().Str("component", "class_handler").Logger()),
	}
}

// Register attaches class endpoints to the router group.
func (h *ClassHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *ClassHandler) list(c *fiber.Ctx) error {
	classes, err := h.service.List(withRequestContext(c))
	if err != nil {
		return h.errors.respond(c, err, "list classes")
	}
	return utils.SendSuccess(c, "classes retrieved", classes)
}

func (h *ClassHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	class, err := h.service.Get(withRequestContext(c), id)
	if err != nil {
		return h.errors.respond(c, err, "get class")
	}
	return utils.SendSuccess(c, "class retrieved", class)
}

func (h *ClassHandler) create(c *fiber.Ctx) error {
	var payload dto.ClassCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	class, err := h.service.Create(withRequestContext(c), payload)
	if err != nil {
		return h.errors.respond(c, err, "create class")
	}
	return utils.SendCreated(c, "class created", class)
}

func (h *ClassHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ClassUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	class, err := h.service.Update(withRequestContext(c), id, payload)
	if err != nil {
		return h.errors.respond(c, err, "update class")
	}
	return utils.SendSuccess(c, "class updated", class)
}

func (h *ClassHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(withRequestContext(c), id); err != nil {
		return h.errors.respond(c, err, "delete class")
	}
	return utils.SendSuccess(c, "class deleted", nil)
}
