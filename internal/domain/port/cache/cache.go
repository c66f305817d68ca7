package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a JSON value store with expiry
type Cache interface {
	// Get loads key into dest. Reports false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// DeleteByPrefix removes every key starting with prefix
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// UserPrefix is the key prefix of everything cached on behalf of a user
func UserPrefix(userID uint64) string {
	return fmt.Sprintf("fintrack:user:%d:", userID)
}

// UserKey builds a cache key for a user-scoped report
func UserKey(userID uint64, report string, params ...any) string {
	key := UserPrefix(userID) + report
	for _, p := range params {
		key += fmt.Sprintf(":%v", p)
	}
	return key
}
