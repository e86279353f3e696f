package services

import (
	"context"
	"time"

	"movieverse-backend/internal/auth"
	"movieverse-backend/internal/models"
	"movieverse-backend/internal/repository"
)

// UserInput carries profile fields supplied at registration.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

type UserService interface {
	// RegisterLogin upserts the caller's profile keyed by the identity
	// provider uid. The second return value reports whether a new user was
	// created (as opposed to a returning login).
	RegisterLogin(ctx context.Context, caller auth.Identity, input UserInput) (*models.User, bool, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) RegisterLogin(ctx context.Context, caller auth.Identity, input UserInput) (*models.User, bool, error) {
	existing, err := s.repo.FindByUID(ctx, caller.UID)
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()

	if existing != nil {
		if err := s.repo.UpdateLastLogin(ctx, caller.UID, now); err != nil {
			return nil, false, err
		}
		existing.LastLogin = now
		return existing, false, nil
	}

	user := &models.User{
		UID:       caller.UID,
		Name:      input.Name,
		Email:     input.Email,
		PhotoURL:  input.PhotoURL,
		LastLogin: now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}
