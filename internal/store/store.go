package store

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("storage failure")
)

// Keys names the storage slots the board lives in. The defaults are the keys
// the original front end used in browser storage, so a lifted-and-shifted
// data dump keeps working.
type Keys struct {
	Users   string
	Posts   string
	Session string
}

func DefaultKeys() Keys {
	return Keys{
		Users:   "discord-template-users-v1",
		Posts:   "discord-template-posts-v2",
		Session: "discord-template-session-v1",
	}
}

type Store interface {
	Users
	Posts
	Sessions
}
