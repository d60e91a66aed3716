package usecase

import (
	authdomain "github.com/SafouaneCh/TaskMate-main/internal/auth/domain"
	authdto "github.com/SafouaneCh/TaskMate-main/internal/auth/dto"
)

// AuthUsecase defines the authentication business logic
type AuthUsecase interface {
	// Register creates a new account and returns a token pair
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)

	// Login authenticates by email/password and returns a token pair
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// RefreshToken exchanges a valid refresh token for a new token pair
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)

	// Logout invalidates a refresh token
	Logout(refreshToken string) error

	// ValidateToken verifies an access token and resolves its user
	ValidateToken(tokenString string) (*authdomain.User, error)
}
