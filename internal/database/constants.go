package database

import "time"

// Connection pool defaults
const (
	DefaultMinConnections  = 2
	DefaultMaxConnections  = 10
	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = 30 * time.Minute
)
