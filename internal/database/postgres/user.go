package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/betpulse/betpulse/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByID fetches a single user
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, COALESCE(name, ''), COALESCE(email, ''), is_anonymous,
			created_at, updated_at
		FROM users WHERE user_id = $1
	`
	var u domain.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&u.ID, &u.Name, &u.Email, &u.IsAnonymous, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// UpsertUser inserts or refreshes a user row keyed by the upstream identity
func (r *UserRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (user_id, name, email, is_anonymous)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4)
		ON CONFLICT (user_id)
		DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email,
			is_anonymous = EXCLUDED.is_anonymous, updated_at = NOW()
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.IsAnonymous,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// GetUserRole returns a user's role; users without a role row are regular users
func (r *UserRepository) GetUserRole(ctx context.Context, userID string) (domain.Role, error) {
	var role domain.Role
	err := r.db.QueryRow(ctx,
		"SELECT role FROM user_roles WHERE user_id = $1", userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RoleUser, nil
		}
		return "", fmt.Errorf("failed to get user role: %w", err)
	}
	return role, nil
}

// GrantRole assigns a role to a user, replacing any existing assignment
func (r *UserRepository) GrantRole(ctx context.Context, userID string, role domain.Role) error {
	query := `
		INSERT INTO user_roles (user_id, role)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role
	`
	_, err := r.db.Exec(ctx, query, userID, role)
	if err != nil {
		return fmt.Errorf("failed to grant role: %w", err)
	}
	return nil
}

// GetAllUsersWithRoles lists every user with their effective role
func (r *UserRepository) GetAllUsersWithRoles(ctx context.Context) ([]domain.UserWithRole, error) {
	query := `
		SELECT u.user_id, COALESCE(u.name, ''), COALESCE(u.email, ''), u.is_anonymous,
			u.created_at, u.updated_at, COALESCE(ur.role, 'user')
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.user_id
		ORDER BY u.created_at ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.UserWithRole
	for rows.Next() {
		var u domain.UserWithRole
		err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.IsAnonymous,
			&u.CreatedAt, &u.UpdatedAt, &u.Role)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
