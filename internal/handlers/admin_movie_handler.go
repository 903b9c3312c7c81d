package handlers

import (
	"strconv"

	"movie-catalog/internal/admin"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AdminMovieHandler struct {
	service   services.MovieService
	validator *validator.Validate
	logger    *logrus.Logger
}

func NewAdminMovieHandler(service services.MovieService, v *validator.Validate, logger *logrus.Logger) *AdminMovieHandler {
	return &AdminMovieHandler{
		service:   service,
		validator: v,
		logger:    logger,
	}
}

// ListMovies godoc
// @Summary List movies (back office)
// @Description Movie rows with category filter, year filter and search on title or category name
// @Tags admin-movies
// @Produce json
// @Security BasicAuth
// @Param category query int false "Category ID"
// @Param year query int false "Year"
// @Param search query string false "Search by title or category name"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.StandardResponse{data=admin.List}
// @Failure 500 {object} utils.StandardResponse
// @Router /admin/movies [get]
func (h *AdminMovieHandler) ListMovies(c *fiber.Ctx) error {
	filter := repository.MovieFilter{
		Search: c.Query("search"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 20),
	}
	if v, err := strconv.ParseUint(c.Query("category"), 10, 32); err == nil {
		id := uint(v)
		filter.CategoryID = &id
	}
	if v, err := strconv.ParseUint(c.Query("year"), 10, 16); err == nil {
		year := uint16(v)
		filter.Year = &year
	}

	movies, total, err := h.service.ListMovies(c.UserContext(), filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	page, limit := clampPage(filter.Page, filter.Limit)
	meta := utils.CreatePaginationMeta(page, limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", admin.List{
		Columns: admin.MovieColumns,
		Rows:    admin.MovieRows(movies),
	}, meta)
}

// GetMovie godoc
// @Summary Movie edit screen
// @Description Record values, fieldsets, poster preview and the stills and reviews inlines
// @Tags admin-movies
// @Produce json
// @Security BasicAuth
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse{data=admin.Screen}
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/movies/{id} [get]
func (h *AdminMovieHandler) GetMovie(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovie(c.UserContext(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", admin.MovieScreen(movie))
}

// GetForm godoc
// @Summary Empty movie create screen
// @Tags admin-movies
// @Produce json
// @Security BasicAuth
// @Success 200 {object} utils.StandardResponse{data=admin.Screen}
// @Router /admin/movies/form [get]
func (h *AdminMovieHandler) GetForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie form retrieved successfully", admin.MovieScreen(nil))
}

// CreateMovie godoc
// @Summary Create a movie
// @Tags admin-movies
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param movie body MovieRequest true "Movie"
// @Success 201 {object} utils.StandardResponse{data=admin.Screen}
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /admin/movies [post]
func (h *AdminMovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req MovieRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}

	movie, err := h.service.CreateMovie(c.UserContext(), req.toInput())
	if err != nil {
		return serviceError(c, h.logger, err, "Movie")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", admin.MovieScreen(movie))
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Saves the record, its credits and the inline edits in one go
// @Tags admin-movies
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie"
// @Success 200 {object} utils.StandardResponse{data=admin.Screen}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/movies/{id} [put]
func (h *AdminMovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req MovieRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}

	movie, err := h.service.UpdateMovie(c.UserContext(), id, req.toInput())
	if err != nil {
		return serviceError(c, h.logger, err, "Movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", admin.MovieScreen(movie))
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Also deletes its stills, ratings and reviews
// @Tags admin-movies
// @Produce json
// @Security BasicAuth
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/movies/{id} [delete]
func (h *AdminMovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.DeleteMovie(c.UserContext(), id); err != nil {
		return serviceError(c, h.logger, err, "Movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

// SetDraft godoc
// @Summary Toggle the draft flag from the list
// @Tags admin-movies
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Movie ID"
// @Param draft body DraftRequest true "Draft flag"
// @Success 200 {object} utils.StandardResponse{data=admin.MovieRow}
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/movies/{id}/draft [patch]
func (h *AdminMovieHandler) SetDraft(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req DraftRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}

	movie, err := h.service.SetDraft(c.UserContext(), id, *req.Draft)
	if err != nil {
		return serviceError(c, h.logger, err, "Movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", admin.NewMovieRow(*movie))
}

// RunAction godoc
// @Summary Publish or unpublish selected movies
// @Tags admin-movies
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param action body ActionRequest true "Action and movie IDs"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Router /admin/movies/actions [post]
func (h *AdminMovieHandler) RunAction(c *fiber.Ctx) error {
	var req ActionRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}

	updated, err := h.service.RunAction(c.UserContext(), req.Action, req.IDs)
	if err != nil {
		return serviceError(c, h.logger, err, "Movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, admin.UpdatedMessage(updated), fiber.Map{
		"updated": updated,
	})
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
