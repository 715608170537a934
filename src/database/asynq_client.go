package database

import (
	"log"

	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// InitAsynq initializes the Asynq client only if Redis is available.
func InitAsynq() {
	if RedisClient == nil || RedisURI == "" {
		log.Println("Redis not available. Asynq client will not be initialized.")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	log.Println("Asynq client initialized")
}
