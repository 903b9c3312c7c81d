package handlers

import (
	"context"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Presigner issues upload URLs for catalog images.
type Presigner interface {
	GeneratePresignedURL(ctx context.Context, folder, filename string) (string, string, error)
}

type UploadHandler struct {
	presigner Presigner
	logger    *logrus.Logger
}

func NewUploadHandler(presigner Presigner, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		presigner: presigner,
		logger:    logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for image upload
// @Description Generate a presigned PUT URL in the folder of the image field being edited; store the returned public URL in that field
// @Tags Upload
// @Produce json
// @Security BasicAuth
// @Param filename query string true "Filename"
// @Param folder query string true "Folder" Enums(actors, movies, movie_shots)
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /admin/upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	folder := c.Query("folder")
	if !services.ImageFolders[folder] {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "folder must be one of actors, movies, movie_shots")
	}

	presignedURL, publicURL, err := h.presigner.GeneratePresignedURL(c.UserContext(), folder, filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
