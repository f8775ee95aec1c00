package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/service"
	"github.com/noah-isme/school-services/internal/utils"
	"github.com/noah-isme/school-services/internal/validation"
)

// StudentHandler exposes students over HTTP.
type StudentHandler struct {
	service service.StudentService
	errors  errorResponder
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(svc service.StudentService, validator *validation.Validator, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		service: svc,
		errors:  newErrorResponder(validator, logger.With().Str("component", "student_handler").Logger()),
	}
}

// Register attaches student endpoints to the router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *StudentHandler) list(c *fiber.Ctx) error {
	students, err := h.service.List(withRequestContext(c))
	if err != nil {
		return h.errors.respond(c, err, "list students")
	}
	return utils.SendSuccess(c, "students retrieved", students)
}

func (h *StudentHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	student, err := h.service.Get(withRequestContext(c), id)
	if err != nil {
		return h.errors.respond(c, err, "get student")
	}
	return utils.SendSuccess(c, "student retrieved", student)
}

func (h *StudentHandler) create(c *fiber.Ctx) error {
	var payload dto.StudentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	student, err := h.service.Create(withRequestContext(c), payload)
	if err != nil {
		return h.errors.respond(c, err, "create student")
	}
	return utils.SendCreated(c, "student enrolled", student)
}

func (h *StudentHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.StudentUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	student, err := h.service.Update(withRequestContext(c), id, payload)
	if err != nil {
		return h.errors.respond(c, err, "update student")
	}
	return utils.SendSuccess(c, "student updated", student)
}

func (h *StudentHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(withRequestContext(c), id); err != nil {
		return h.errors.respond(c, err, "delete student")
	}
	return utils.SendSuccess(c, "student deleted", nil)
}
