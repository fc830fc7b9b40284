package shared

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"meetslot/shared/cache"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins a prefix and its parts, skipping empty parts.
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			key = append(key, part)
		}
	}

	return strings.Join(key, cacheKeySeparator)
}

// InvalidateCaches drops the key itself and everything nested under it.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, key string) {
	if err := redisCache.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to invalidate cache")
	}

	if err := redisCache.Clear(ctx, key+cacheKeySeparator+"*"); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to invalidate nested caches")
	}
}

// Deref returns the pointed value or the zero value.
func Deref[T any](value *T) T {
	var zero T
	if value == nil {
		return zero
	}

	return *value
}
