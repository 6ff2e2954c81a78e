package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

var RDB *redis.Client
var ctx = context.Background()

func InitRedis(url string) {
	if url == "" {
		log.Println("⚠️ REDIS_URL is not set, running without cache")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: url,
	})

	_, err := RDB.Ping(ctx).Result()
	if err != nil {
		log.Printf("⚠️ Redis unavailable: %v", err)
		RDB = nil
		return
	}

	log.Println("✓ Redis connection established")
}

// Key derives a stable cache key from the given parts.
func Key(parts ...string) string {
	h := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return "analysis:" + hex.EncodeToString(h[:])
}

func Get(key string) (string, error) {
	if RDB == nil {
		return "", redis.Nil
	}
	return RDB.Get(ctx, key).Result()
}

func Set(key string, value string, expiration time.Duration) error {
	if RDB == nil {
		return nil
	}
	return RDB.Set(ctx, key, value, expiration).Err()
}
