package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/repository"
	"campushub-backend/internal/security"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("test-secret-at-least-32-characters!!", 60, 60*24)

	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &domain.User{
		ID:           "u1",
		Email:        "alice@test.com",
		Role:         domain.UserRoleStudent,
		PasswordHash: string(hash),
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "alice@test.com").Return(user, nil)

		access, refresh, u, err := svc.Login(ctx, "alice@test.com", "motdepasse")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, "u1", u.ID)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
		assert.Equal(t, "u1", claims.UserID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "alice@test.com").Return(user, nil)

		_, _, _, err := svc.Login(ctx, "alice@test.com", "mauvais")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown Email Maps To Invalid Credentials", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "nobody@test.com").Return(nil, repository.ErrNotFound)

		_, _, _, err := svc.Login(ctx, "nobody@test.com", "motdepasse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Store Errors Pass Through", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "alice@test.com").Return(nil, errors.New("connection reset"))

		_, _, _, err := svc.Login(ctx, "alice@test.com", "motdepasse")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("test-secret-at-least-32-characters!!", 60, 60*24)

	user := &domain.User{ID: "u1", Email: "alice@test.com", Role: domain.UserRoleAdmin}

	t.Run("Success And Role Reread", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		refresh, err := tokens.GenerateRefreshToken("u1", "alice@test.com")
		assert.NoError(t, err)

		userRepo.On("GetByID", ctx, "u1").Return(user, nil)

		access, newRefresh, err := svc.Refresh(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, newRefresh)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		// The fresh access token carries the current role from the store.
		assert.Equal(t, domain.UserRoleAdmin, claims.Role)
	})

	t.Run("Access Token Is Rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		access, err := tokens.GenerateAccessToken("u1", "alice@test.com", domain.UserRoleStudent)
		assert.NoError(t, err)

		_, _, err = svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})

	t.Run("Garbage Token Is Rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		_, _, err := svc.Refresh(ctx, "not-a-token")
		assert.Error(t, err)
	})
}
