package domain

import "time"

// Placeholder entries used instead of empty channel or role lists, so a
// rendered card never shows a blank section.
const (
	NoChannels = "No channels listed"
	NoRoles    = "No custom roles listed"
)

type Post struct {
	ID         string   `json:"id"`
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	UsageCount int      `json:"usageCount"`
	Channels   []string `json:"channels"`
	Roles      []string `json:"roles"`
	SourceURL  string   `json:"sourceUrl"`
	// Author is the posting user's username; empty on boards running
	// without accounts. It is not re-checked after creation, so deleting
	// a user leaves their posts behind.
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
