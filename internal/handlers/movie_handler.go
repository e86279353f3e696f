package handlers

import (
	"strconv"

	"movieverse-backend/internal/middleware"
	"movieverse-backend/internal/models"
	"movieverse-backend/internal/services"
	"movieverse-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary List movies
// @Description Get movies with genre, rating-range and free-text filters, sorting and pagination. Malformed numeric parameters fall back to defaults.
// @Tags movies
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param genre query string false "Comma-separated genre tags (set membership)"
// @Param minRating query number false "Inclusive lower rating bound"
// @Param maxRating query number false "Inclusive upper rating bound"
// @Param search query string false "Case-insensitive substring over title, director, cast"
// @Param sortBy query string false "Sort field (addedDate, title, releaseYear, director, rating, averageRating)" default(addedDate)
// @Param sortOrder query string false "Sort order (asc/desc)" default(desc)
// @Success 200 {object} utils.StandardResponse "Page of movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	filter := models.MovieFilter{
		Page:      utils.ParseIntOrDefault(c.Query("page"), models.DefaultPage),
		Limit:     utils.ParseIntOrDefault(c.Query("limit"), models.DefaultLimit),
		Genres:    utils.SplitCSV(c.Query("genre")),
		MinRating: utils.ParseFloatOrNil(c.Query("minRating")),
		MaxRating: utils.ParseFloatOrNil(c.Query("maxRating")),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy", models.DefaultSortBy),
		SortOrder: c.Query("sortOrder", models.DefaultSortOrder),
	}
	filter.Normalize()

	movies, total, err := h.service.ListMovies(ctx, filter)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to retrieve movies")
	}

	meta := utils.CreatePaginationMeta(filter.Page, filter.Limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies, meta)
}

// GetFeaturedMovies godoc
// @Summary Get featured movies
// @Description Get up to five movies flagged for promotional surfacing
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /movies/featured [get]
func (h *MovieHandler) GetFeaturedMovies(c *fiber.Ctx) error {
	movies, err := h.service.FeaturedMovies(c.Context())
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to retrieve featured movies")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Featured movies retrieved successfully", movies)
}

// GetTopRatedMovies godoc
// @Summary Get top rated movies
// @Description Get up to five movies rated 8 or higher, highest first
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /movies/top-rated [get]
func (h *MovieHandler) GetTopRatedMovies(c *fiber.Ctx) error {
	movies, err := h.service.TopRatedMovies(c.Context())
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to retrieve top rated movies")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Top rated movies retrieved successfully", movies)
}

// GetRecentMovies godoc
// @Summary Get recently added movies
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /movies/recent [get]
func (h *MovieHandler) GetRecentMovies(c *fiber.Ctx) error {
	movies, err := h.service.RecentMovies(c.Context())
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to retrieve recent movies")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Recent movies retrieved successfully", movies)
}

// GetMyCollection godoc
// @Summary Get the caller's movies
// @Description Get every movie added by the authenticated user, newest first
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse
// @Failure 401 {object} utils.StandardResponse
// @Router /movies/my-collection [get]
func (h *MovieHandler) GetMyCollection(c *fiber.Ctx) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "No token provided")
	}

	movies, err := h.service.MyCollection(c.Context(), caller.Email)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to retrieve user movies")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Collection retrieved successfully", movies)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	id, err := parseMovieID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovieByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to retrieve movie")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// CreateMovie godoc
// @Summary Add a new movie
// @Description Create a movie owned by the authenticated user
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param movie body services.MovieInput true "Movie submission"
// @Success 201 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse "Missing required field"
// @Failure 401 {object} utils.StandardResponse
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "No token provided")
	}

	var input services.MovieInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.CreateMovie(c.Context(), caller, &input)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to create movie")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie added successfully", movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Partially update a movie; only the owner may modify it. Ownership and creation time cannot be changed.
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Param movie body services.MoviePatch true "Fields to change"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 403 {object} utils.StandardResponse "Not the owner"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [patch]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "No token provided")
	}

	id, err := parseMovieID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var patch services.MoviePatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.UpdateMovie(c.Context(), id, caller.Email, &patch)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to update movie")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Delete a movie and cascade to its reviews and watchlist entries; only the owner may delete it
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 403 {object} utils.StandardResponse "Not the owner"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "No token provided")
	}

	id, err := parseMovieID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.DeleteMovie(c.Context(), id, caller.Email); err != nil {
		return respondServiceError(c, h.logger, err, "Failed to delete movie")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

// GetGenres godoc
// @Summary List genres
// @Description Get the distinct genre tags used across the catalog
// @Tags genres
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /genres [get]
func (h *MovieHandler) GetGenres(c *fiber.Ctx) error {
	genres, err := h.service.Genres(c.Context())
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to retrieve genres")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}

func parseMovieID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
