package repository

import (
	"context"

	"github.com/betpulse/betpulse/internal/domain"
)

// User defines the interface for user and role persistence
type User interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpsertUser(ctx context.Context, user *domain.User) error

	// GetUserRole returns the role row for a user; a missing row
	// is reported as domain.RoleUser.
	GetUserRole(ctx context.Context, userID string) (domain.Role, error)
	GrantRole(ctx context.Context, userID string, role domain.Role) error
	GetAllUsersWithRoles(ctx context.Context) ([]domain.UserWithRole, error)
}
