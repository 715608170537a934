package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()
var RedisURI string

// InitRedis connects to Redis if REDIS_URI is set. Redis backs the token
// blacklist and the background job queue; when it is unavailable both
// features degrade and the API keeps serving.
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI")
	if RedisURI == "" {
		log.Println("REDIS_URI not set. Token blacklist and background jobs disabled.")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: "",
		DB:       0,
	})
	if _, err := client.Ping(RedisCtx).Result(); err != nil {
		log.Println("Failed to connect Redis:", err)
		return
	}

	RedisClient = client
	log.Println("Redis connected")
}
