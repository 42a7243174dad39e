package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionfit/gym-management-backend/internal/config"
)

func newAuthService() AuthService {
	return NewAuthService(&config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     1,
		AdminUsername: "admin",
		AdminPassword: "admin",
	})
}

func TestLogin_IssuesValidToken(t *testing.T) {
	svc := newAuthService()

	token, err := svc.Login(context.Background(), "admin", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.ValidateToken(token))
}

func TestLogin_RejectsWrongCredentials(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "someone", "admin")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	svc := newAuthService()

	assert.ErrorIs(t, svc.ValidateToken("not-a-token"), ErrInvalidToken)
	assert.ErrorIs(t, svc.ValidateToken(""), ErrInvalidToken)
}

func TestValidateToken_RejectsForeignSecret(t *testing.T) {
	svc := newAuthService()

	other := NewAuthService(&config.Config{
		JWTSecret:     "different-secret",
		JWTExpiry:     1,
		AdminUsername: "admin",
		AdminPassword: "admin",
	})

	token, err := other.Login(context.Background(), "admin", "admin")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ValidateToken(token), ErrInvalidToken)
}
