package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lionfit/gym-management-backend/internal/config"
)

// ============================================
// Auth Service
// ============================================

// AuthService guards the API with a single admin account. The
// credential check is a configured placeholder, not a user store;
// multi-user auth is explicitly out of scope.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	ValidateToken(tokenString string) error
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.cfg.AdminUsername || password != s.cfg.AdminPassword {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Duration(s.cfg.JWTExpiry) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", err
	}
	return signed, nil
}

func (s *authService) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
