package domain

import "time"

// User is a registered board member. The JSON tags match the record layout
// the original front end kept in browser storage, so an exported slot can be
// read back by either implementation.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// PasswordHash is a bcrypt hash, not the reversible encoding the old
	// front end shipped with.
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session marks the currently authenticated username. An empty username
// means anonymous; usernames shorter than the signup minimum can never
// belong to a registered user.
type Session struct {
	Username string `json:"username"`
}

func (s Session) Anonymous() bool {
	return s.Username == ""
}
