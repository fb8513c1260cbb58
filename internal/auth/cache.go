package auth

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// identityCache memoizes resolved identities so a heartbeat-heavy client
// does not hit the users table on every request
type identityCache struct {
	lru *expirable.LRU[string, Identity]
}

func newIdentityCache(size int, ttl time.Duration) *identityCache {
	return &identityCache{
		lru: expirable.NewLRU[string, Identity](size, nil, ttl),
	}
}

func (c *identityCache) Get(userID string) (Identity, bool) {
	return c.lru.Get(userID)
}

func (c *identityCache) Set(id Identity) {
	c.lru.Add(id.UserID, id)
}

func (c *identityCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}
