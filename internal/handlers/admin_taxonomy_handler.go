package handlers

import (
	"movie-catalog/internal/admin"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AdminTaxonomyHandler serves both categories and genres.
type AdminTaxonomyHandler struct {
	service   services.TaxonomyService
	validator *validator.Validate
	logger    *logrus.Logger
}

func NewAdminTaxonomyHandler(service services.TaxonomyService, v *validator.Validate, logger *logrus.Logger) *AdminTaxonomyHandler {
	return &AdminTaxonomyHandler{service: service, validator: v, logger: logger}
}

// ListCategories godoc
// @Summary List categories
// @Tags admin-taxonomy
// @Produce json
// @Security BasicAuth
// @Success 200 {object} utils.StandardResponse{data=admin.List}
// @Router /admin/categories [get]
func (h *AdminTaxonomyHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return serviceError(c, h.logger, err, "Categories")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Categories retrieved successfully", admin.List{
		Columns: admin.CategoryColumns,
		Rows:    admin.CategoryRows(categories),
	})
}

func (h *AdminTaxonomyHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID")
	}
	category, err := h.service.GetCategory(c.UserContext(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Category")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Category retrieved successfully", category)
}

func (h *AdminTaxonomyHandler) CreateCategory(c *fiber.Ctx) error {
	var req TaxonomyRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}
	category, err := h.service.CreateCategory(c.UserContext(), services.TaxonomyInput(req))
	if err != nil {
		return serviceError(c, h.logger, err, "Category")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Category created successfully", category)
}

func (h *AdminTaxonomyHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID")
	}
	var req TaxonomyRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}
	category, err := h.service.UpdateCategory(c.UserContext(), id, services.TaxonomyInput(req))
	if err != nil {
		return serviceError(c, h.logger, err, "Category")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Category updated successfully", category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Movies of the category are kept with no category
// @Tags admin-taxonomy
// @Security BasicAuth
// @Param id path int true "Category ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /admin/categories/{id} [delete]
func (h *AdminTaxonomyHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID")
	}
	if err := h.service.DeleteCategory(c.UserContext(), id); err != nil {
		return serviceError(c, h.logger, err, "Category")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Category deleted successfully", nil)
}

// ListGenres godoc
// @Summary List genres
// @Tags admin-taxonomy
// @Produce json
// @Security BasicAuth
// @Success 200 {object} utils.StandardResponse{data=admin.List}
// @Router /admin/genres [get]
func (h *AdminTaxonomyHandler) ListGenres(c *fiber.Ctx) error {
	genres, err := h.service.ListGenres(c.UserContext())
	if err != nil {
		return serviceError(c, h.logger, err, "Genres")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", admin.List{
		Columns: admin.GenreColumns,
		Rows:    admin.GenreRows(genres),
	})
}

func (h *AdminTaxonomyHandler) GetGenre(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}
	genre, err := h.service.GetGenre(c.UserContext(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Genre")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genre retrieved successfully", genre)
}

func (h *AdminTaxonomyHandler) CreateGenre(c *fiber.Ctx) error {
	var req TaxonomyRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}
	genre, err := h.service.CreateGenre(c.UserContext(), services.TaxonomyInput(req))
	if err != nil {
		return serviceError(c, h.logger, err, "Genre")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Genre created successfully", genre)
}

func (h *AdminTaxonomyHandler) UpdateGenre(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}
	var req TaxonomyRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}
	genre, err := h.service.UpdateGenre(c.UserContext(), id, services.TaxonomyInput(req))
	if err != nil {
		return serviceError(c, h.logger, err, "Genre")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genre updated successfully", genre)
}

func (h *AdminTaxonomyHandler) DeleteGenre(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}
	if err := h.service.DeleteGenre(c.UserContext(), id); err != nil {
		return serviceError(c, h.logger, err, "Genre")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genre deleted successfully", nil)
}
