package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/service"
	"github.com/noah-isme/school-services/internal/utils"
	"github.com/noah-isme/school-services/internal/validation"
)

// TeacherHandler exposes teachers over HTTP.
type TeacherHandler struct {
	service service.TeacherService
	errors  errorResponder
}

// NewTeacherHandler constructs the handler.
func NewTeacherHandler(svc service.TeacherService, validator *validation.Validator, logger zerolog.Logger) *TeacherHandler {
	return &TeacherHandler{
		service: svc,
		errors:  newErrorResponder(validator, logger.With().Str("component", "teacher_handler").Logger()),
	}
}

// Register attaches teacher endpoints to the router group.
func (h *TeacherHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *TeacherHandler) list(c *fiber.Ctx) error {
	teachers, err := h.service.List(withRequestContext(c))
	if err != nil {
		return h.errors.respond(c, err, "list teachers")
	}
	return utils.SendSuccess(c, "teachers retrieved", teachers)
}

func (h *TeacherHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	teacher, err := h.service.Get(withRequestContext(c), id)
	if err != nil {
		return h.errors.respond(c, err, "get teacher")
	}
	return utils.SendSuccess(c, "teacher retrieved", teacher)
}

func (h *TeacherHandler) create(c *fiber.Ctx) error {
	var payload dto.TeacherCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	teacher, err := h.service.Create(withRequestContext(c), payload)
	if err != nil {
		return h.errors.respond(c, err, "create teacher")
	}
	return utils.SendCreated(c, "teacher registered", teacher)
}

func (h *TeacherHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.TeacherUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	teacher, err := h.service.Update(withRequestContext(c), id, payload)
	if err != nil {
		return h.errors.respond(c, err, "update teacher")
	}
	return utils.SendSuccess(c, "teacher updated", teacher)
}

func (h *TeacherHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(withRequestContext(c), id); err != nil {
		return h.errors.respond(c, err, "delete teacher")
	}
	return utils.SendSuccess(c, "teacher deleted", nil)
}
