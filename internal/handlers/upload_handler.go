package handlers

import (
	"movieverse-backend/internal/services"
	"movieverse-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	posters *services.PosterStorage
	logger  *logrus.Logger
}

func NewUploadHandler(posters *services.PosterStorage, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		posters: posters,
		logger:  logger,
	}
}

// GetPresignedURL godoc
// @Summary Get a presigned poster upload URL
// @Description Generate a presigned PUT URL for uploading a poster image; the returned public URL goes into the movie's posterUrl field
// @Tags upload
// @Produce json
// @Security BearerAuth
// @Param filename query string true "Filename"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	presignedURL, publicURL, err := h.posters.PresignUpload(filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", fiber.Map{
		"upload_url": presignedURL,
		"public_url": publicURL,
	})
}
