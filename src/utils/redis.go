package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-OfficeReports/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient returns the shared Redis client managed by the database
// package. When Redis was not initialized this returns nil and callers
// degrade (development mode).
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// BlacklistToken marks an access token revoked until it would expire anyway.
// The logout flow of the identity service writes the same key shape into the
// shared Redis; this writer is kept so the contract is defined in one place
// next to the read side. Returns nil if Redis is not available.
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(Ctx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted checks whether a token has been revoked.
// Returns false if Redis is not available (all tokens pass).
func IsTokenBlacklisted(token string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	_, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}
