package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slots-pg/dashboard-api/internal/domain"
)

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()
	repo := &mockUserRepository{}
	in := domain.User{Username: "admin", Password: "secret"}
	repo.On("Create", ctx, in).Return(domain.User{ID: 1, Username: "admin", Password: "secret"}, nil)

	got, err := NewUserService(repo).CreateUser(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.ID)
	repo.AssertExpectations(t)
}

func TestUserService_GetUserNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mockUserRepository{}
	repo.On("FindByID", ctx, uint(42)).Return(domain.User{}, ErrUserNotFound)

	_, err := NewUserService(repo).GetUser(ctx, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	repo := &mockUserRepository{}
	repo.On("FindByUsername", ctx, "admin").Return(domain.User{ID: 3, Username: "admin"}, nil)
	repo.On("FindByUsername", ctx, "ghost").Return(domain.User{}, ErrUserNotFound)

	svc := NewUserService(repo)

	got, err := svc.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, uint(3), got.ID)

	_, err = svc.GetUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
