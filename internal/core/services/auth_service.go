package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/AurifyAE/bullionpro-backend/internal/apperrors"
	portsrepo "github.com/AurifyAE/bullionpro-backend/internal/core/ports/repositories"
	portssvc "github.com/AurifyAE/bullionpro-backend/internal/core/ports/services"
	"github.com/AurifyAE/bullionpro-backend/internal/dto"
	"github.com/AurifyAE/bullionpro-backend/internal/middleware"
)

type authService struct {
	userRepo    portsrepo.UserRepository
	jwtSecret   []byte
	tokenExpiry time.Duration
}

// NewAuthService creates the login/token service.
func NewAuthService(userRepo portsrepo.UserRepository, jwtSecret string, tokenExpiry time.Duration) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:    userRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenExpiry: tokenExpiry,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the operator's credentials and issues a signed token.
// Unknown usernames and wrong passwords return the same error.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.tokenExpiry)
	claims := jwt.RegisteredClaims{
		Subject:   user.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}
