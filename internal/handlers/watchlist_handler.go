package handlers

import (
	"strconv"

	"movieverse-backend/internal/middleware"
	"movieverse-backend/internal/services"
	"movieverse-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type WatchlistHandler struct {
	service services.WatchlistService
	logger  *logrus.Logger
}

func NewWatchlistHandler(service services.WatchlistService, logger *logrus.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		logger:  logger,
	}
}

// AddToWatchlist godoc
// @Summary Add a movie to the caller's watchlist
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Param movieId path int true "Movie ID"
// @Success 201 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 409 {object} utils.StandardResponse "Already in watchlist"
// @Router /watchlist/{movieId} [post]
func (h *WatchlistHandler) AddToWatchlist(c *fiber.Ctx) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "No token provided")
	}

	movieID, err := parseWatchlistMovieID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.AddToWatchlist(c.Context(), caller.UID, movieID); err != nil {
		return respondServiceError(c, h.logger, err, "Failed to add to watchlist")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie added to watchlist", nil)
}

// GetWatchlist godoc
// @Summary Get the caller's watchlist
// @Description Get the movies on the authenticated user's watchlist
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse
// @Router /watchlist [get]
func (h *WatchlistHandler) GetWatchlist(c *fiber.Ctx) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "No token provided")
	}

	movies, err := h.service.GetWatchlist(c.Context(), caller.UID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to retrieve watchlist")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Watchlist retrieved successfully", movies)
}

// RemoveFromWatchlist godoc
// @Summary Remove a movie from the caller's watchlist
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Param movieId path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse "Not in watchlist"
// @Router /watchlist/{movieId} [delete]
func (h *WatchlistHandler) RemoveFromWatchlist(c *fiber.Ctx) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "No token provided")
	}

	movieID, err := parseWatchlistMovieID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.RemoveFromWatchlist(c.Context(), caller.UID, movieID); err != nil {
		return respondServiceError(c, h.logger, err, "Failed to remove from watchlist")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie removed from watchlist", nil)
}

func parseWatchlistMovieID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("movieId"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
