package domain

import "time"

// Role is the access level of a user
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is an account resolved from the upstream auth provider.
// Anonymous users (guests) are granted read access but denied writes
// to social features.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	Email       string    `json:"email,omitempty"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DisplayName resolves the name shown in chat: name, then email,
// then the anonymous placeholder.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return AnonymousDisplayName
}

// UserWithRole is the admin view of a user joined with their role row.
// A missing role row implies RoleUser.
type UserWithRole struct {
	User
	Role Role `json:"role"`
}
