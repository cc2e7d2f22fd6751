package models

import "time"

// Comment belongs to a recipe but is owned by its author: ownership is
// per-comment and not inherited from the parent recipe.
type Comment struct {
	ID        string
	RecipeID  string
	UserID    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Username is filled by list queries that join the author; it is not a
	// column of the comments table.
	Username string
}

// OwnerID satisfies authz.Owned.
func (c *Comment) OwnerID() string { return c.UserID }
