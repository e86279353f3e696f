package middleware

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"movieverse-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	identity auth.Identity
	err      error
}

func (f *fakeVerifier) Verify(ctx context.Context, idToken string) (auth.Identity, error) {
	return f.identity, f.err
}

func newAuthTestApp(verifier auth.Verifier) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	app.Get("/secure", RequireAuth(verifier, log), func(c *fiber.Ctx) error {
		identity, ok := IdentityFrom(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"uid": identity.UID, "email": identity.Email})
	})
	return app
}

func TestRequireAuth(t *testing.T) {
	testCases := []struct {
		name           string
		header         string
		verifier       *fakeVerifier
		expectedStatus int
	}{
		{
			name:           "no header",
			header:         "",
			verifier:       &fakeVerifier{},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			header:         "Token abc",
			verifier:       &fakeVerifier{},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "rejected token",
			header:         "Bearer bad-token",
			verifier:       &fakeVerifier{err: errors.New("expired")},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "valid token",
			header:         "Bearer good-token",
			verifier:       &fakeVerifier{identity: auth.Identity{UID: "uid-1", Email: "a@b.c"}},
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "case insensitive scheme",
			header:         "bearer good-token",
			verifier:       &fakeVerifier{identity: auth.Identity{UID: "uid-1"}},
			expectedStatus: fiber.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newAuthTestApp(tc.verifier)

			req := httptest.NewRequest(fiber.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
		})
	}
}
