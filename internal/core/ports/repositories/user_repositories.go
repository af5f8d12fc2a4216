package repositories

import (
	"context"
	"time"

	"github.com/AurifyAE/bullionpro-backend/internal/core/domain"
)

// UserRepository persists back-office operator accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
	DeactivateUser(ctx context.Context, userID string, updatedBy string, now time.Time) error
}
