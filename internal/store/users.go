package store

import (
	"context"

	"github.com/rowanvale/templateboard/internal/domain"
)

type Users interface {
	// Users returns every registered user. An absent or corrupted slot
	// yields an empty list, never an error.
	Users(ctx context.Context) ([]domain.User, error)
	// GetUserByName matches usernames case-insensitively and returns
	// ErrNotFound when no user matches.
	GetUserByName(ctx context.Context, username string) (domain.User, error)
	InsertUser(ctx context.Context, user domain.User) error
}
