package store

import (
	"context"

	"github.com/rowanvale/templateboard/internal/domain"
)

// Sessions holds the single active session of a local, single-profile board.
// The web front end keeps per-browser sessions in cookies instead and never
// touches this slot.
type Sessions interface {
	// Session returns ErrNotFound when the slot is absent, corrupted, or
	// does not carry a usable username.
	Session(ctx context.Context) (domain.Session, error)
	SaveSession(ctx context.Context, session domain.Session) error
	ClearSession(ctx context.Context) error
}
