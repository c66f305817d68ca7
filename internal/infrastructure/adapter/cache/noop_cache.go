package cache

import (
	"context"
	"time"

	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
)

// NoopCache never stores anything. Used when caching is disabled.
type NoopCache struct{}

var _ cacheport.Cache = NoopCache{}

func (NoopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NoopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (NoopCache) DeleteByPrefix(context.Context, string) error { return nil }
