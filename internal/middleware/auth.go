package middleware

import (
	"strings"

	"movieverse-backend/internal/auth"
	"movieverse-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const identityKey = "identity"

// RequireAuth extracts the bearer token, verifies it and stores the caller
// identity in the request locals. Anonymous requests get 401.
func RequireAuth(verifier auth.Verifier, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token := ""
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = parts[1]
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "No token provided")
		}

		identity, err := verifier.Verify(c.Context(), token)
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"method": c.Method(),
				"path":   c.Path(),
			}).Warn("Token verification failed")
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// IdentityFrom returns the authenticated caller set by RequireAuth.
func IdentityFrom(c *fiber.Ctx) (auth.Identity, bool) {
	identity, ok := c.Locals(identityKey).(auth.Identity)
	return identity, ok
}
