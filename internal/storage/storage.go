package storage

import (
	"context"
	"errors"
)

var (
	ErrNotDir   = errors.New("given root is not a directory")
	ErrInternal = errors.New("internal error")
	ErrNotExist = errors.New("key does not exist")
)

// Storage is a flat string-keyed blob store. Each slot of the board (users,
// posts, session) lives under one key; values are opaque to the backend.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
