package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/rowanvale/templateboard/internal/domain"
	"github.com/rowanvale/templateboard/internal/importer"
	"github.com/rowanvale/templateboard/internal/service"
	"github.com/rowanvale/templateboard/internal/store"
)

func (s *AppService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.Store.Posts(ctx)
}

func (s *AppService) SubmitTemplate(ctx context.Context, rawURL, author string) (domain.Post, error) {
	if author != "" {
		// The author must exist when the post is created; the stored name
		// keeps the registered casing, whatever the session carried.
		u, err := s.Store.GetUserByName(ctx, author)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Post{}, fmt.Errorf("%w: unknown author", service.ErrInvalidInput)
			}
			return domain.Post{}, err
		}
		author = u.Username
	}

	code, ok := importer.ExtractCode(rawURL)
	if !ok {
		return domain.Post{}, fmt.Errorf("%w: not a Discord template URL", service.ErrInvalidInput)
	}

	tmpl, err := s.Importer.Fetch(ctx, code)
	if err != nil {
		return domain.Post{}, err
	}

	post := s.Importer.MapToPost(tmpl, rawURL, author)
	if err := s.Store.InsertPost(ctx, post); err != nil {
		return domain.Post{}, err
	}

	if s.Queue != nil {
		// Best effort; a board that never refreshes usage counts is stale,
		// not broken.
		if err := s.Queue.ScheduleRefresh(post.Code, post.ID); err != nil {
			log.Error().Err(err).Str("code", post.Code).Msg("failed to schedule refresh")
		}
	}

	return post, nil
}

func (s *AppService) DeletePost(ctx context.Context, id, username string) error {
	post, err := s.Store.GetPost(ctx, id)
	if err != nil {
		return err
	}

	if post.Author != username {
		return fmt.Errorf("%w: only the author can delete a post", service.ErrForbidden)
	}

	return s.Store.DeletePost(ctx, id)
}
