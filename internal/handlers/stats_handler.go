package handlers

import (
	"movieverse-backend/internal/services"
	"movieverse-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type StatsHandler struct {
	service services.StatsService
	logger  *logrus.Logger
}

func NewStatsHandler(service services.StatsService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger,
	}
}

// GetStats godoc
// @Summary Get catalog statistics
// @Description Get total movies, cleaned average rating, distinct genre count and total users
// @Tags stats
// @Produce json
// @Success 200 {object} models.CatalogStats
// @Failure 500 {object} utils.StandardResponse
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.ComputeStats(c.Context())
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to retrieve statistics")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Statistics retrieved successfully", stats)
}
