package auth

import "time"

// Identity headers forwarded by the auth gateway
const (
	HeaderUserID        = "X-User-ID"
	HeaderUserName      = "X-User-Name"
	HeaderUserEmail     = "X-User-Email"
	HeaderUserAnonymous = "X-User-Anonymous"
)

// Identity cache sizing
const (
	IdentityCacheSize = 1024
	IdentityCacheTTL  = 5 * time.Minute
)

// Log messages
const (
	LogMsgIdentityResolveFailed = "Failed to resolve user identity"
	LogMsgAdminDenied           = "Admin access denied"
)

// Error messages returned to clients
const (
	ErrMsgAuthRequired  = "Authentication required"
	ErrMsgAdminRequired = "Admin access required"
)
