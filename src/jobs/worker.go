package jobs

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	DB "Backend-OfficeReports/src/database"
	"Backend-OfficeReports/src/services/offices"
)

// HandleOfficeRefreshTask re-runs the roster arbitration and repopulates
// the cache. A failed refresh is not an error worth retrying aggressively:
// the old cache stays in place and the scheduler fires again soon.
func HandleOfficeRefreshTask(ctx context.Context, t *asynq.Task) error {
	names, err := offices.RefreshDirectory(ctx)
	if err != nil {
		log.Println("scheduled office refresh failed, keeping cached roster:", err)
		return nil
	}
	log.Printf("scheduled office refresh completed: %d offices", len(names))
	return nil
}

// StartWorker runs the background job server. Call only when Redis is up.
func StartWorker() {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOfficeRefresh, HandleOfficeRefreshTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("asynq worker stopped:", err)
		}
	}()
	log.Println("Asynq worker started")
}
