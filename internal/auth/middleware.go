package auth

import (
	"context"
	"net/http"

	"github.com/betpulse/betpulse/internal/domain"
	"github.com/betpulse/betpulse/internal/logger"
	"github.com/betpulse/betpulse/internal/repository"
)

// Resolver turns gateway identity headers into a request Identity,
// keeping the local users table in sync with the upstream provider
type Resolver struct {
	users repository.User
	cache *identityCache
}

// NewResolver creates a new identity resolver
func NewResolver(users repository.User) *Resolver {
	return &Resolver{
		users: users,
		cache: newIdentityCache(IdentityCacheSize, IdentityCacheTTL),
	}
}

// resolve syncs the user row for the forwarded identity and returns it.
// Cached identities skip the database round trip.
func (r *Resolver) resolve(ctx context.Context, userID, name, email string, anonymous bool) (Identity, error) {
	if cached, ok := r.cache.Get(userID); ok {
		return cached, nil
	}

	user := &domain.User{
		ID:          userID,
		Name:        name,
		Email:       email,
		IsAnonymous: anonymous,
	}
	if err := r.users.UpsertUser(ctx, user); err != nil {
		return Identity{}, err
	}

	id := Identity{
		UserID:      user.ID,
		Name:        user.Name,
		Email:       user.Email,
		IsAnonymous: user.IsAnonymous,
	}
	r.cache.Set(id)
	return id, nil
}

// Middleware resolves the gateway identity headers into a context Identity.
// Requests without an X-User-ID header pass through unauthenticated;
// handlers decide whether that is acceptable.
func (r *Resolver) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			userID := req.Header.Get(HeaderUserID)
			if userID == "" {
				next.ServeHTTP(w, req)
				return
			}

			id, err := r.resolve(req.Context(),
				userID,
				req.Header.Get(HeaderUserName),
				req.Header.Get(HeaderUserEmail),
				req.Header.Get(HeaderUserAnonymous) == "true",
			)
			if err != nil {
				log := logger.FromContext(req.Context())
				log.Error(LogMsgIdentityResolveFailed, "error", err, "user_id", userID)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, req.WithContext(WithIdentity(req.Context(), id)))
		})
	}
}

// RequireAuth rejects requests that carry no resolved identity
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if _, ok := IdentityFromContext(req.Context()); !ok {
				http.Error(w, ErrMsgAuthRequired, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// RequireAdmin gates a route group on the admin role. Every admin
// operation flows through this single check.
func RequireAdmin(users repository.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			id, ok := IdentityFromContext(req.Context())
			if !ok {
				http.Error(w, ErrMsgAuthRequired, http.StatusUnauthorized)
				return
			}

			role, err := users.GetUserRole(req.Context(), id.UserID)
			if err != nil {
				log := logger.FromContext(req.Context())
				log.Error("Failed to check user role", "error", err, "user_id", id.UserID)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			if role != domain.RoleAdmin {
				log := logger.FromContext(req.Context())
				log.Warn(LogMsgAdminDenied, "user_id", id.UserID, "path", req.URL.Path)
				http.Error(w, ErrMsgAdminRequired, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}
