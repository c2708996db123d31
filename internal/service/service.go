package service

import (
	"context"
	"errors"

	"github.com/rowanvale/templateboard/internal/domain"
)

var (
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid")
	ErrForbidden    = errors.New("forbidden")
)

type Service interface {
	// AuthenticateUser verifies the given credentials against the stored
	// users, matching the username case-insensitively. If authentication
	// fails, authenticated is false and err is nil; the caller cannot tell
	// an unknown username from a wrong password. A non nil error indicates
	// an internal, unexpected failure.
	AuthenticateUser(ctx context.Context, username, password string) (u domain.User, authenticated bool, err error)
	// CreateUser registers a new user. The username keeps its case as
	// typed but must be unique case-insensitively; signing up counts as
	// logging in, so the caller establishes a session for the returned
	// user without a separate login step.
	CreateUser(ctx context.Context, username, password string) (domain.User, error)
	// SubmitTemplate resolves a pasted template link and publishes it to
	// the board, replacing any earlier post of the same template. Nothing
	// is persisted when any step fails.
	SubmitTemplate(ctx context.Context, rawURL, author string) (domain.Post, error)
	// DeletePost removes the post with the given id, provided username is
	// its author.
	DeletePost(ctx context.Context, id, username string) error
	ListPosts(ctx context.Context) ([]domain.Post, error)
}
