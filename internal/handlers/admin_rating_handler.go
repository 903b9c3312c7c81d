package handlers

import (
	"movie-catalog/internal/admin"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AdminRatingHandler struct {
	service   services.RatingService
	validator *validator.Validate
	logger    *logrus.Logger
}

func NewAdminRatingHandler(service services.RatingService, v *validator.Validate, logger *logrus.Logger) *AdminRatingHandler {
	return &AdminRatingHandler{service: service, validator: v, logger: logger}
}

// ListStars godoc
// @Summary List rating stars
// @Tags admin-ratings
// @Produce json
// @Security BasicAuth
// @Success 200 {object} utils.StandardResponse{data=admin.List}
// @Router /admin/stars [get]
func (h *AdminRatingHandler) ListStars(c *fiber.Ctx) error {
	stars, err := h.service.ListStars(c.UserContext())
	if err != nil {
		return serviceError(c, h.logger, err, "Rating stars")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Rating stars retrieved successfully", admin.List{
		Columns: admin.StarColumns,
		Rows:    admin.StarRows(stars),
	})
}

func (h *AdminRatingHandler) GetStar(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid rating star ID")
	}
	star, err := h.service.GetStar(c.UserContext(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Rating star")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Rating star retrieved successfully", star)
}

func (h *AdminRatingHandler) CreateStar(c *fiber.Ctx) error {
	var req StarRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}
	star, err := h.service.CreateStar(c.UserContext(), req.Value)
	if err != nil {
		return serviceError(c, h.logger, err, "Rating star")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Rating star created successfully", star)
}

func (h *AdminRatingHandler) UpdateStar(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid rating star ID")
	}
	var req StarRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}
	star, err := h.service.UpdateStar(c.UserContext(), id, req.Value)
	if err != nil {
		return serviceError(c, h.logger, err, "Rating star")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Rating star updated successfully", star)
}

// DeleteStar godoc
// @Summary Delete a rating star
// @Description Ratings given with this star are deleted too
// @Tags admin-ratings
// @Security BasicAuth
// @Param id path int true "Rating star ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/stars/{id} [delete]
func (h *AdminRatingHandler) DeleteStar(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid rating star ID")
	}
	if err := h.service.DeleteStar(c.UserContext(), id); err != nil {
		return serviceError(c, h.logger, err, "Rating star")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Rating star deleted successfully", nil)
}

// ListRatings godoc
// @Summary List ratings
// @Tags admin-ratings
// @Produce json
// @Security BasicAuth
// @Success 200 {object} utils.StandardResponse{data=admin.List}
// @Router /admin/ratings [get]
func (h *AdminRatingHandler) ListRatings(c *fiber.Ctx) error {
	ratings, err := h.service.ListRatings(c.UserContext())
	if err != nil {
		return serviceError(c, h.logger, err, "Ratings")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Ratings retrieved successfully", admin.List{
		Columns: admin.RatingColumns,
		Rows:    admin.RatingRows(ratings),
	})
}

func (h *AdminRatingHandler) GetRating(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid rating ID")
	}
	rating, err := h.service.GetRating(c.UserContext(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Rating")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Rating retrieved successfully", rating)
}

func (h *AdminRatingHandler) CreateRating(c *fiber.Ctx) error {
	var req RatingRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}
	rating, err := h.service.CreateRating(c.UserContext(), services.RatingInput(req))
	if err != nil {
		return serviceError(c, h.logger, err, "Rating")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Rating created successfully", rating)
}

func (h *AdminRatingHandler) UpdateRating(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid rating ID")
	}
	var req RatingRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}
	rating, err := h.service.UpdateRating(c.UserContext(), id, services.RatingInput(req))
	if err != nil {
		return serviceError(c, h.logger, err, "Rating")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Rating updated successfully", rating)
}

func (h *AdminRatingHandler) DeleteRating(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid rating ID")
	}
	if err := h.service.DeleteRating(c.UserContext(), id); err != nil {
		return serviceError(c, h.logger, err, "Rating")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Rating deleted successfully", nil)
}
