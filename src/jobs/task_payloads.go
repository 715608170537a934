package jobs

import (
	"github.com/hibiken/asynq"
)

const TypeOfficeRefresh = "offices:refresh"

// NewOfficeRefreshTask builds the roster refresh task. It carries no
// payload; the refresh always covers the full roster.
func NewOfficeRefreshTask() *asynq.Task {
	return asynq.NewTask(TypeOfficeRefresh, nil)
}
