package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/user"
)

type Service interface {
	Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AccessTokenResponse, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
	Me(ctx context.Context, userID uuid.UUID) (*user.UserResponse, error)
}
