package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/service"
	"github.com/noah-isme/school-services/internal/utils"
	"github.com/noah-isme/school-services/internal/validation"
)

// ReservationHandler exposes reservations over HTTP.
type ReservationHandler struct {
	service service.ReservationService
	errors  errorResponder
}

// NewReservationHandler constructs the handler.
func NewReservationHandler(svc service.ReservationService, validator *validation.Validator, logger zerolog.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: svc,
		errors:  newErrorResponder(validator, logger.With().Str("component", "reservation_handler").Logger()),
	}
}

// Register attaches reservation endpoints to the router group.
func (h *ReservationHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *ReservationHandler) list(c *fiber.Ctx) error {
	reservations, err := h.service.List(withRequestContext(c))
	if err != nil {
		return h.errors.respond(c, err, "list reservations")
	}
	return utils.SendSuccess(c, "reservations retrieved", reservations)
}

func (h *ReservationHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	reservation, err := h.service.Get(withRequestContext(c), id)
	if err != nil {
		return h.errors.respond(c, err, "get reservation")
	}
	return utils.SendSuccess(c, "reservation retrieved", reservation)
}

func (h *ReservationHandler) create(c *fiber.Ctx) error {
	var payload dto.ReservationCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	reservation, err := h.service.Create(withRequestContext(c), payload)
	if err != nil {
		return h.errors.respond(c, err, "create reservation")
	}
	return utils.SendCreated(c, "reservation created", reservation)
}

func (h *ReservationHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ReservationUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	reservation, err := h.service.Update(withRequestContext(c), id, payload)
	if err != nil {
		return h.errors.respond(c, err, "update reservation")
	}
	return utils.SendSuccess(c, "reservation updated", reservation)
}

func (h *ReservationHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(withRequestContext(c), id); err != nil {
		return h.errors.respond(c, err, "delete reservation")
	}
	return utils.SendSuccess(c, "reservation deleted", nil)
}
