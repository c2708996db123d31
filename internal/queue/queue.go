package queue

import (
	"context"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/rowanvale/templateboard/internal/importer"
	"github.com/rowanvale/templateboard/internal/store"
)

// RefreshQueue keeps posted templates fresh: every scheduled run re-fetches a
// template and folds the current usage count back into its post.
type RefreshQueue interface {
	// ScheduleRefresh starts a refresh chain for the post with the given id.
	// The chain ends on its own once another post owns the code.
	ScheduleRefresh(code, postID string) error
}

type refreshQueueImpl struct {
	store    store.Store
	importer *importer.Importer
	queues   *backlite.Client
	interval time.Duration
}

func New(ctx context.Context, store store.Store, imp *importer.Importer, interval time.Duration, blClient *backlite.Client) RefreshQueue {

	q := &refreshQueueImpl{
		store:    store,
		importer: imp,
		queues:   blClient,
		interval: interval,
	}
	q.register()
	q.queues.Start(ctx)
	log.Info().Msg("started refresh queue")
	return q
}

func (q *refreshQueueImpl) ScheduleRefresh(code, postID string) error {
	log.Debug().Str("code", code).Msg("enqueing refresh task")
	task := RefreshJob{
		Code:   code,
		PostID: postID,
	}
	_, err := q.queues.Add(task).At(time.Now().Add(q.interval)).Save()
	return err
}
