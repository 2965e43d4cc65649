package services

import (
	"testing"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	user, err := svc.CreateUser(nil, false, &dto.CreateUserRequest{
		Email:    "dev@example.com",
		Username: "dev",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("hunter2hunter2", user.PasswordHash))
}

func TestCreateUserRoleHonoredOnlyForAdmins(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	user, err := svc.CreateUser(nil, false, &dto.CreateUserRequest{
		Email:    "a@example.com",
		Username: "usera",
		Password: "password123",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleUser, user.Role, "non-admin caller cannot escalate")

	user, err = svc.CreateUser(nil, true, &dto.CreateUserRequest{
		Email:    "b@example.com",
		Username: "userb",
		Password: "password123",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, user.Role)
}

func TestCreateUserUniqueConflicts(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	_, err := svc.CreateUser(nil, false, &dto.CreateUserRequest{
		Email:    "dup@example.com",
		Username: "original",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(nil, false, &dto.CreateUserRequest{
		Email:    "dup@example.com",
		Username: "other",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = svc.CreateUser(nil, false, &dto.CreateUserRequest{
		Email:    "fresh@example.com",
		Username: "original",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo())
	_, err := svc.GetUser(nil, "missing")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
