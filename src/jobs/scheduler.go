package jobs

import (
	"log"

	"github.com/hibiken/asynq"

	DB "Backend-OfficeReports/src/database"
)

// StartScheduler enqueues a roster refresh every 30 minutes, matching the
// cache TTL so interactive requests mostly hit a warm cache.
func StartScheduler() {
	scheduler := asynq.NewScheduler(asynq.RedisClientOpt{Addr: DB.RedisURI}, nil)

	if _, err := scheduler.Register("@every 30m", NewOfficeRefreshTask()); err != nil {
		log.Println("failed to register office refresh schedule:", err)
		return
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Println("asynq scheduler stopped:", err)
		}
	}()
	log.Println("Asynq scheduler started")
}
