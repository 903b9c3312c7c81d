package handlers

import (
	"errors"
	"strconv"

	"movie-catalog/internal/repository"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// bindJSON parses and validates a request body, writing the 400 response
// itself, with per-field messages as data. It reports false when the handler should return immediately.
func bindJSON(c *fiber.Ctx, v *validator.Validate, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := v.StructCtx(c.UserContext(), req); err != nil {
		return false, utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, utils.ValidationMessage(err), utils.ValidationFields(err))
	}
	return true, nil
}

// serviceError maps service and repository errors to a response.
func serviceError(c *fiber.Ctx, logger *logrus.Logger, err error, what string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, what+" not found")
	case errors.Is(err, services.ErrInvalidReference),
		errors.Is(err, services.ErrUnknownAction),
		errors.Is(err, services.ErrStarNotFound):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	logger.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Errorf("Failed to process %s", what)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
}
