package handlers

import (
	"movieverse-backend/internal/middleware"
	"movieverse-backend/internal/services"
	"movieverse-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewUserHandler(service services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterUser godoc
// @Summary Register or log in the caller
// @Description Upsert the caller's profile: new identities are created, returning ones get their last-login time refreshed
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body services.UserInput true "Profile fields"
// @Success 200 {object} utils.StandardResponse "Existing user logged in"
// @Success 201 {object} utils.StandardResponse "User created"
// @Failure 401 {object} utils.StandardResponse
// @Router /users [post]
func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "No token provided")
	}

	var input services.UserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, created, err := h.service.RegisterLogin(c.Context(), caller, input)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to register user")
	}

	if created {
		return utils.SuccessResponse(c, fiber.StatusCreated, "User created successfully", user)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "User logged in successfully", user)
}
