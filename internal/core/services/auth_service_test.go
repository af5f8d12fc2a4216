package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/AurifyAE/bullionpro-backend/internal/apperrors"
	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
	portssvc "github.com/AurifyAE/bullionpro-backend/internal/core/ports/services"
	"github.com/AurifyAE/bullionpro-backend/internal/core/services"
	"github.com/AurifyAE/bullionpro-backend/internal/dto"
)

const testJWTSecret = "test-secret"

type AuthServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	service  portssvc.AuthSvcFacade
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.service = services.NewAuthService(s.userRepo, testJWTSecret, time.Hour)
}

func (s *AuthServiceTestSuite) storedUser(password string, active bool) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)
	return &domain.User{
		UserID:       "user-42",
		Username:     "backoffice",
		Name:         "Back Office",
		PasswordHash: string(hash),
		IsActive:     active,
	}
}

func (s *AuthServiceTestSuite) TestLoginIssuesSignedToken() {
	ctx := context.Background()
	s.userRepo.On("FindUserByUsername", ctx, "backoffice").Return(s.storedUser("hunter2", true), nil).Once()

	resp, err := s.service.Login(ctx, dto.LoginRequest{Username: "backoffice", Password: "hunter2"})
	s.Require().NoError(err)
	s.Require().NotEmpty(resp.Token)
	s.Equal("user-42", resp.User.UserID)
	s.WithinDuration(time.Now().Add(time.Hour), resp.ExpiresAt, 5*time.Second)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	s.Require().NoError(err)
	s.True(parsed.Valid)
	s.Equal("user-42", claims.Subject)
}

func (s *AuthServiceTestSuite) TestLoginWrongPassword() {
	ctx := context.Background()
	s.userRepo.On("FindUserByUsername", ctx, "backoffice").Return(s.storedUser("hunter2", true), nil).Once()

	_, err := s.service.Login(ctx, dto.LoginRequest{Username: "backoffice", Password: "hunter3"})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *AuthServiceTestSuite) TestLoginInactiveUser() {
	ctx := context.Background()
	s.userRepo.On("FindUserByUsername", ctx, "backoffice").Return(s.storedUser("hunter2", false), nil).Once()

	_, err := s.service.Login(ctx, dto.LoginRequest{Username: "backoffice", Password: "hunter2"})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *AuthServiceTestSuite) TestLoginUnknownUserSameError() {
	ctx := context.Background()
	s.userRepo.On("FindUserByUsername", ctx, "ghost").
		Return(nil, apperrors.NewNotFoundError("user ghost not found")).Once()

	_, err := s.service.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "hunter2"})
	s.Require().Error(err)
	// The not-found detail must not leak; the caller sees the same
	// invalid-credentials error as a wrong password.
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.NotErrorIs(err, apperrors.ErrNotFound)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
