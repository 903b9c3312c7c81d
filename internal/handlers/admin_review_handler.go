package handlers

import (
	"movie-catalog/internal/admin"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AdminReviewHandler lets staff read and delete visitor reviews. There is
// no create or update route.
type AdminReviewHandler struct {
	service services.ReviewService
	logger  *logrus.Logger
}

func NewAdminReviewHandler(service services.ReviewService, logger *logrus.Logger) *AdminReviewHandler {
	return &AdminReviewHandler{service: service, logger: logger}
}

// ListReviews godoc
// @Summary List reviews
// @Tags admin-reviews
// @Produce json
// @Security BasicAuth
// @Success 200 {object} utils.StandardResponse{data=admin.List}
// @Router /admin/reviews [get]
func (h *AdminReviewHandler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.service.ListReviews(c.UserContext())
	if err != nil {
		return serviceError(c, h.logger, err, "Reviews")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Reviews retrieved successfully", admin.List{
		Columns: admin.ReviewColumns,
		Rows:    admin.ReviewRows(reviews),
	})
}

// GetReview godoc
// @Summary Get a review
// @Tags admin-reviews
// @Produce json
// @Security BasicAuth
// @Param id path int true "Review ID"
// @Success 200 {object} utils.StandardResponse{data=admin.ReviewDetail}
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/reviews/{id} [get]
func (h *AdminReviewHandler) GetReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	review, err := h.service.GetReview(c.UserContext(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Review")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Review retrieved successfully", admin.NewReviewDetail(review))
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Replies to the review are kept as top-level reviews
// @Tags admin-reviews
// @Security BasicAuth
// @Param id path int true "Review ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/reviews/{id} [delete]
func (h *AdminReviewHandler) DeleteReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	if err := h.service.DeleteReview(c.UserContext(), id); err != nil {
		return serviceError(c, h.logger, err, "Review")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Review deleted successfully", nil)
}
