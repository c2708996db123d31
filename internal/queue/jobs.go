package queue

import (
	"time"

	"github.com/mikestefanello/backlite"
)

const (
	RefreshQueueName = "Refresh"
)

type RefreshJob struct {
	Code   string
	PostID string
}

func (j RefreshJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        RefreshQueueName,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}
