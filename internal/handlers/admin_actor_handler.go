package handlers

import (
	"movie-catalog/internal/admin"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AdminActorHandler struct {
	service   services.ActorService
	validator *validator.Validate
	logger    *logrus.Logger
}

func NewAdminActorHandler(service services.ActorService, v *validator.Validate, logger *logrus.Logger) *AdminActorHandler {
	return &AdminActorHandler{service: service, validator: v, logger: logger}
}

// ListActors godoc
// @Summary List actors and directors
// @Tags admin-actors
// @Produce json
// @Security BasicAuth
// @Success 200 {object} utils.StandardResponse{data=admin.List}
// @Router /admin/actors [get]
func (h *AdminActorHandler) ListActors(c *fiber.Ctx) error {
	actors, err := h.service.ListActors(c.UserContext())
	if err != nil {
		return serviceError(c, h.logger, err, "Actors")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Actors retrieved successfully", admin.List{
		Columns: admin.ActorColumns,
		Rows:    admin.ActorRows(actors),
	})
}

// GetActor godoc
// @Summary Get an actor with filmographies
// @Tags admin-actors
// @Produce json
// @Security BasicAuth
// @Param id path int true "Actor ID"
// @Success 200 {object} utils.StandardResponse{data=admin.ActorDetail}
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/actors/{id} [get]
func (h *AdminActorHandler) GetActor(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actor ID")
	}

	actor, err := h.service.GetActor(c.UserContext(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Actor")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Actor retrieved successfully", admin.NewActorDetail(actor))
}

// CreateActor godoc
// @Summary Create an actor
// @Tags admin-actors
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param actor body ActorRequest true "Actor"
// @Success 201 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Router /admin/actors [post]
func (h *AdminActorHandler) CreateActor(c *fiber.Ctx) error {
	var req ActorRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}

	actor, err := h.service.CreateActor(c.UserContext(), services.ActorInput(req))
	if err != nil {
		return serviceError(c, h.logger, err, "Actor")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Actor created successfully", admin.NewActorDetail(actor))
}

// UpdateActor godoc
// @Summary Update an actor
// @Tags admin-actors
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Actor ID"
// @Param actor body ActorRequest true "Actor"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/actors/{id} [put]
func (h *AdminActorHandler) UpdateActor(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actor ID")
	}

	var req ActorRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}

	actor, err := h.service.UpdateActor(c.UserContext(), id, services.ActorInput(req))
	if err != nil {
		return serviceError(c, h.logger, err, "Actor")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Actor updated successfully", admin.NewActorDetail(actor))
}

// DeleteActor godoc
// @Summary Delete an actor
// @Description Removes the actor from every cast and director list; the movies stay
// @Tags admin-actors
// @Security BasicAuth
// @Param id path int true "Actor ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/actors/{id} [delete]
func (h *AdminActorHandler) DeleteActor(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actor ID")
	}

	if err := h.service.DeleteActor(c.UserContext(), id); err != nil {
		return serviceError(c, h.logger, err, "Actor")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Actor deleted successfully", nil)
}
