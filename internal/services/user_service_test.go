package services

import (
	"context"
	"testing"

	"movieverse-backend/internal/auth"
	"movieverse-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginCreatesNewUser(t *testing.T) {
	userRepo := &fakeUserRepo{}
	svc := NewUserService(userRepo)

	caller := auth.Identity{UID: "uid-1", Email: "new@example.com"}
	input := UserInput{Name: "New User", Email: "new@example.com", PhotoURL: "http://example.com/p.jpg"}

	user, created, err := svc.RegisterLogin(context.Background(), caller, input)

	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, userRepo.created)
	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, "New User", user.Name)
	assert.False(t, user.LastLogin.IsZero())
}

func TestRegisterLoginRefreshesReturningUser(t *testing.T) {
	userRepo := &fakeUserRepo{byUID: &models.User{ID: 3, UID: "uid-1", Name: "Existing"}}
	svc := NewUserService(userRepo)

	caller := auth.Identity{UID: "uid-1"}
	user, created, err := svc.RegisterLogin(context.Background(), caller, UserInput{})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Nil(t, userRepo.created)
	assert.Equal(t, "uid-1", userRepo.lastLoginUID)
	assert.Equal(t, "Existing", user.Name)
	assert.False(t, user.LastLogin.IsZero())
}
