package queue

import (
	"context"
	"errors"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/rowanvale/templateboard/internal/store"
)

func (q *refreshQueueImpl) register() {
	refreshQueue := backlite.NewQueue[RefreshJob](q.refresh())

	q.queues.Register(refreshQueue)
}

func (q *refreshQueueImpl) refresh() func(context.Context, RefreshJob) error {
	return func(ctx context.Context, task RefreshJob) error {
		log.Debug().Str("code", task.Code).Msg("refreshing template usage count")

		post, err := q.store.GetPostByCode(ctx, task.Code)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Post was deleted; nothing left to refresh.
				return nil
			}
			return err
		}
		if post.ID != task.PostID {
			// A later submission replaced this post. Its own chain owns the
			// code now; letting this one continue would double the refreshes.
			return nil
		}

		tmpl, err := q.importer.Fetch(ctx, task.Code)
		if err != nil {
			log.Error().Err(err).Str("code", task.Code).Msg("refresh fetch failed")
			return err
		}

		post.UsageCount = tmpl.UsageCount
		if err = q.store.UpdatePost(ctx, post); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}

		// Keep the post on the refresh cycle while it exists.
		_, err = backlite.FromContext(ctx).Add(RefreshJob{Code: task.Code, PostID: task.PostID}).At(time.Now().Add(q.interval)).Save()
		return err
	}
}
