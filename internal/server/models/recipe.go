package models

import "time"

// Recipe is an owned resource: UserID is set once at creation from the
// authenticated identity and never changes afterwards.
type Recipe struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Ingredients []string
	Steps       []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerID satisfies authz.Owned.
func (r *Recipe) OwnerID() string { return r.UserID }
