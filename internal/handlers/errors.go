package handlers

import (
	"errors"

	"movieverse-backend/internal/services"
	"movieverse-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondServiceError maps service sentinels onto HTTP statuses. Client
// errors carry the service message; anything unclassified is a store failure,
// logged in full but surfaced opaquely.
func respondServiceError(c *fiber.Ctx, log *logrus.Logger, err error, internalMessage string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrValidation):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrDuplicate):
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return utils.ErrorResponse(c, fiber.StatusForbidden, err.Error())
	default:
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error(internalMessage)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, internalMessage)
	}
}
