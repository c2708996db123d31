package impl

import (
	"context"

	"github.com/rowanvale/templateboard/internal/domain"
	"github.com/rowanvale/templateboard/internal/store"
)

func (s *kvStore) Posts(ctx context.Context) ([]domain.Post, error) {
	return readSlot(ctx, s, s.keys.Posts, []domain.Post{})
}

func (s *kvStore) GetPost(ctx context.Context, id string) (domain.Post, error) {
	posts, err := s.Posts(ctx)
	if err != nil {
		return domain.Post{}, err
	}

	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Post{}, store.ErrNotFound
}

func (s *kvStore) GetPostByCode(ctx context.Context, code string) (domain.Post, error) {
	posts, err := s.Posts(ctx)
	if err != nil {
		return domain.Post{}, err
	}

	for _, p := range posts {
		if p.Code == code {
			return p, nil
		}
	}
	return domain.Post{}, store.ErrNotFound
}

func (s *kvStore) InsertPost(ctx context.Context, post domain.Post) error {
	unlock := s.locks.Lock(s.keys.Posts)
	defer unlock()

	posts, err := s.Posts(ctx)
	if err != nil {
		return err
	}

	// Reposting a template replaces the earlier entry; the board stays
	// unique by code and most-recent-first.
	updated := make([]domain.Post, 0, len(posts)+1)
	updated = append(updated, post)
	for _, p := range posts {
		if p.Code != post.Code {
			updated = append(updated, p)
		}
	}

	return writeSlot(ctx, s, s.keys.Posts, updated)
}

func (s *kvStore) UpdatePost(ctx context.Context, post domain.Post) error {
	unlock := s.locks.Lock(s.keys.Posts)
	defer unlock()

	posts, err := s.Posts(ctx)
	if err != nil {
		return err
	}

	found := false
	for i, p := range posts {
		if p.ID == post.ID {
			posts[i] = post
			found = true
			break
		}
	}
	if !found {
		return store.ErrNotFound
	}

	return writeSlot(ctx, s, s.keys.Posts, posts)
}

func (s *kvStore) DeletePost(ctx context.Context, id string) error {
	unlock := s.locks.Lock(s.keys.Posts)
	defer unlock()

	posts, err := s.Posts(ctx)
	if err != nil {
		return err
	}

	remaining := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(posts) {
		return store.ErrNotFound
	}

	return writeSlot(ctx, s, s.keys.Posts, remaining)
}
