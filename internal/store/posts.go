package store

import (
	"context"

	"github.com/rowanvale/templateboard/internal/domain"
)

type Posts interface {
	// Posts returns the board most-recent-first. An absent or corrupted
	// slot yields an empty list, never an error.
	Posts(ctx context.Context) ([]domain.Post, error)
	GetPost(ctx context.Context, id string) (domain.Post, error)
	GetPostByCode(ctx context.Context, code string) (domain.Post, error)
	// InsertPost drops any earlier post carrying the same template code
	// and puts the new one at the head of the board.
	InsertPost(ctx context.Context, post domain.Post) error
	// UpdatePost replaces the post with the same id in place, keeping its
	// position on the board.
	UpdatePost(ctx context.Context, post domain.Post) error
	DeletePost(ctx context.Context, id string) error
}
