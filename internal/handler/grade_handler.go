package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/service"
	"github.com/noah-isme/school-services/internal/utils"
	"github.com/noah-isme/school-services/internal/validation"
)

// GradeHandler exposes grades over HTTP.
type GradeHandler struct {
	service service.GradeService
	errors  errorResponder
}

// NewGradeHandler constructs the handler.
func NewGradeHandler(svc service.GradeService, validator *validation.Validator, logger zerolog.Logger) *GradeHandler {
	return &GradeHandler{
		service: svc,
		errors:  newErrorResponder(validator, logger.With().Str("component", "grade_handler").Logger()),
	}
}

// Register attaches grade endpoints to the router group.
func (h *GradeHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *GradeHandler) list(c *fiber.Ctx) error {
	grades, err := h.service.List(withRequestContext(c))
	if err != nil {
		return h.errors.respond(c, err, "list grades")
	}
	return utils.SendSuccess(c, "grades retrieved", grades)
}

func (h *GradeHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	grade, err := h.service.Get(withRequestContext(c), id)
	if err != nil {
		return h.errors.respond(c, err, "get grade")
	}
	return utils.SendSuccess(c, "grade retrieved", grade)
}

func (h *GradeHandler) create(c *fiber.Ctx) error {
	var payload dto.GradeCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	grade, err := h.service.Create(withRequestContext(c), payload)
	if err != nil {
		return h.errors.respond(c, err, "create grade")
	}
	return utils.SendCreated(c, "grade recorded", grade)
}

func (h *GradeHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.GradeUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	grade, err := h.service.Update(withRequestContext(c), id, payload)
	if err != nil {
		return h.errors.respond(c, err, "update grade")
	}
	return utils.SendSuccess(c, "grade updated", grade)
}

func (h *GradeHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(withRequestContext(c), id); err != nil {
		return h.errors.respond(c, err, "delete grade")
	}
	return utils.SendSuccess(c, "grade deleted", nil)
}
