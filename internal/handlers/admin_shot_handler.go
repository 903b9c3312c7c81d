package handlers

import (
	"strconv"

	"movie-catalog/internal/admin"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AdminShotHandler struct {
	service   services.ShotService
	validator *validator.Validate
	logger    *logrus.Logger
}

func NewAdminShotHandler(service services.ShotService, v *validator.Validate, logger *logrus.Logger) *AdminShotHandler {
	return &AdminShotHandler{service: service, validator: v, logger: logger}
}

// ListShots godoc
// @Summary List movie stills
// @Tags admin-shots
// @Produce json
// @Security BasicAuth
// @Param movie query int false "Movie ID"
// @Success 200 {object} utils.StandardResponse{data=admin.List}
// @Router /admin/shots [get]
func (h *AdminShotHandler) ListShots(c *fiber.Ctx) error {
	var movieID *uint
	if v, err := strconv.ParseUint(c.Query("movie"), 10, 32); err == nil {
		id := uint(v)
		movieID = &id
	}

	shots, err := h.service.ListShots(c.UserContext(), movieID)
	if err != nil {
		return serviceError(c, h.logger, err, "Shots")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Shots retrieved successfully", admin.List{
		Columns: admin.ShotColumns,
		Rows:    admin.ShotRows(shots),
	})
}

func (h *AdminShotHandler) GetShot(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid shot ID")
	}

	shot, err := h.service.GetShot(c.UserContext(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Shot")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Shot retrieved successfully", admin.NewShotRow(*shot))
}

func (h *AdminShotHandler) CreateShot(c *fiber.Ctx) error {
	var req ShotRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}

	shot, err := h.service.CreateShot(c.UserContext(), req.MovieID, req.toInput())
	if err != nil {
		return serviceError(c, h.logger, err, "Shot")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Shot created successfully", admin.NewShotRow(*shot))
}

func (h *AdminShotHandler) UpdateShot(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid shot ID")
	}

	var req ShotRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}

	shot, err := h.service.UpdateShot(c.UserContext(), id, req.MovieID, req.toInput())
	if err != nil {
		return serviceError(c, h.logger, err, "Shot")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Shot updated successfully", admin.NewShotRow(*shot))
}

func (h *AdminShotHandler) DeleteShot(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid shot ID")
	}

	if err := h.service.DeleteShot(c.UserContext(), id); err != nil {
		return serviceError(c, h.logger, err, "Shot")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Shot deleted successfully", nil)
}

func (r ShotRequest) toInput() services.ShotInput {
	return services.ShotInput{Title: r.Title, Description: r.Description, Image: r.Image}
}
