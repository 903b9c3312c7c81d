package handlers

import (
	"errors"

	"movie-catalog/internal/repository"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// MovieDetailPath is where visitors read a movie; review submissions
// redirect back to it.
const MovieDetailPath = "/api/v1/movies/"

type CatalogHandler struct {
	service   services.CatalogService
	validator *validator.Validate
	logger    *logrus.Logger
}

func NewCatalogHandler(service services.CatalogService, v *validator.Validate, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:   service,
		validator: v,
		logger:    logger,
	}
}

type RateRequest struct {
	Star uint `json:"star" form:"star" validate:"required" example:"3"`
}

// ListMovies godoc
// @Summary List published movies
// @Description All movies that are not drafts, in id order
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]MovieListItem}
// @Failure 500 {object} utils.StandardResponse
// @Router /movies [get]
func (h *CatalogHandler) ListMovies(c *fiber.Ctx) error {
	movies, err := h.service.ListPublished(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list published movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", newMovieListItems(movies))
}

// GetMovie godoc
// @Summary Get movie by slug
// @Description Full movie record with credits, stills, threaded reviews and rating summary
// @Tags catalog
// @Produce json
// @Param slug path string true "Movie slug"
// @Success 200 {object} utils.StandardResponse{data=MovieDetailResponse}
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{slug} [get]
func (h *CatalogHandler) GetMovie(c *fiber.Ctx) error {
	slug := c.Params("slug")

	detail, err := h.service.GetMovieDetail(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("slug", slug).Error("Failed to get movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", newMovieDetailResponse(detail))
}

// AddReview godoc
// @Summary Submit a review
// @Description Saves a review (or a reply when parent is set) and redirects to the movie page. Invalid submissions save nothing but redirect all the same.
// @Tags catalog
// @Accept x-www-form-urlencoded
// @Param id path int true "Movie ID"
// @Param name formData string true "Reviewer name"
// @Param email formData string true "Reviewer email"
// @Param text formData string true "Review text"
// @Param parent formData int false "Review being answered"
// @Success 302 "Redirect to the movie detail"
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{id}/reviews [post]
func (h *CatalogHandler) AddReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	var form services.ReviewForm
	if err := c.BodyParser(&form); err != nil {
		h.logger.WithError(err).WithField("movie_id", id).Debug("Unreadable review body")
	}

	movie, _, err := h.service.SubmitReview(c.UserContext(), id, form)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	case errors.Is(err, services.ErrInvalidReview):
		h.logger.WithError(err).WithField("movie_id", id).Warn("Review rejected")
	default:
		h.logger.WithError(err).WithField("movie_id", id).Error("Failed to save review")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save review")
	}

	return c.Redirect(MovieDetailPath+movie.URL, fiber.StatusFound)
}

// RateMovie godoc
// @Summary Rate a movie
// @Description Records the caller's star for a movie, replacing an earlier rating from the same IP
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param rating body RateRequest true "Star"
// @Success 201 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{id}/rating [post]
func (h *CatalogHandler) RateMovie(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	var req RateRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}

	rating, err := h.service.RateMovie(c.UserContext(), id, req.Star, c.IP())
	if err != nil {
		return serviceError(c, h.logger, err, "Movie")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Rating saved successfully", fiber.Map{
		"id":       rating.ID,
		"movie_id": rating.MovieID,
		"star_id":  rating.StarID,
		"value":    rating.Star.Value,
	})
}

// ListStars godoc
// @Summary List rating stars
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /stars [get]
func (h *CatalogHandler) ListStars(c *fiber.Ctx) error {
	stars, err := h.service.ListStars(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list rating stars")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve rating stars")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Rating stars retrieved successfully", stars)
}
