package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"movieverse-backend/internal/config"

	"github.com/sirupsen/logrus"
)

// Identity is the authenticated caller: a stable user id plus the email used
// as the ownership key on movies.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// Verifier checks a bearer token and resolves the caller identity. Token
// verification itself is delegated to the identity provider.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (Identity, error)
}

// GoogleVerifier validates Firebase ID tokens against the Google tokeninfo
// endpoint.
type GoogleVerifier struct {
	httpClient *http.Client
	baseURL    string
	projectID  string
	logger     *logrus.Logger
}

func NewGoogleVerifier(cfg config.AuthConfig, logger *logrus.Logger) *GoogleVerifier {
	return &GoogleVerifier{
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		baseURL:   cfg.TokenInfoURL,
		projectID: cfg.ProjectID,
		logger:    logger,
	}
}

type tokenInfoResponse struct {
	Sub      string `json:"sub"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Audience string `json:"aud"`
}

func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (Identity, error) {
	endpoint := fmt.Sprintf("%s?id_token=%s", v.baseURL, url.QueryEscape(idToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to reach token endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		v.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Debug("Token rejected by identity provider")
		return Identity{}, fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Identity{}, fmt.Errorf("failed to decode token info: %w", err)
	}

	if v.projectID != "" && info.Audience != v.projectID {
		return Identity{}, fmt.Errorf("token audience mismatch")
	}
	if info.Sub == "" {
		return Identity{}, fmt.Errorf("token has no subject")
	}

	return Identity{
		UID:   info.Sub,
		Email: info.Email,
		Name:  info.Name,
	}, nil
}
