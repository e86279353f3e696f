package handlers

import (
	"movieverse-backend/internal/middleware"
	"movieverse-backend/internal/services"
	"movieverse-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewRequest struct {
	Rating  int    `json:"rating" example:"4"`
	Comment string `json:"comment"`
}

type ReviewHandler struct {
	service services.ReviewService
	logger  *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger,
	}
}

// AddReview godoc
// @Summary Add a review
// @Description Add a 1-5 star review for a movie; each user may review a movie once
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Param review body ReviewRequest true "Review"
// @Success 201 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse "Rating out of range"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 409 {object} utils.StandardResponse "Already reviewed"
// @Router /movies/{id}/reviews [post]
func (h *ReviewHandler) AddReview(c *fiber.Ctx) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "No token provided")
	}

	id, err := parseMovieID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	review, err := h.service.AddReview(c.Context(), id, caller, req.Rating, req.Comment)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to add review")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Review added successfully", review)
}

// GetReviews godoc
// @Summary List reviews for a movie
// @Tags reviews
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Router /movies/{id}/reviews [get]
func (h *ReviewHandler) GetReviews(c *fiber.Ctx) error {
	id, err := parseMovieID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	reviews, err := h.service.ListReviews(c.Context(), id)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to retrieve reviews")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Reviews retrieved successfully", reviews)
}
