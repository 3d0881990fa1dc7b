package search

import "time"

// SavedSearch is a user-scoped query persisted across sessions.
type SavedSearch struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Query     Query     `json:"query"`
	CreatedTS time.Time `json:"created_at"`
	UpdatedTS time.Time `json:"updated_at"`
}
