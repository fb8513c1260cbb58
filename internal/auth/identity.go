package auth

import (
	"context"

	"github.com/betpulse/betpulse/internal/domain"
)

// Identity is the resolved caller identity for a request
type Identity struct {
	UserID      string
	Name        string
	Email       string
	IsAnonymous bool
}

// DisplayName returns the name shown to other users, falling back to
// email and then the anonymous placeholder
func (id Identity) DisplayName() string {
	if id.Name != "" {
		return id.Name
	}
	if id.Email != "" {
		return id.Email
	}
	return domain.AnonymousDisplayName
}

type contextKey struct{}

// WithIdentity stores the caller identity in the context
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IdentityFromContext returns the caller identity, if any
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

// RequireIdentity returns the caller identity or ErrNotAuthenticated
func RequireIdentity(ctx context.Context) (Identity, error) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return Identity{}, domain.ErrNotAuthenticated
	}
	return id, nil
}

// RequireMember returns the caller identity, rejecting guests.
// Anonymous sessions can read but never write.
func RequireMember(ctx context.Context) (Identity, error) {
	id, err := RequireIdentity(ctx)
	if err != nil {
		return Identity{}, err
	}
	if id.IsAnonymous {
		return Identity{}, domain.ErrGuestForbidden
	}
	return id, nil
}
