// Package comments stores comment rows. Like recipes, the author column
// (user_id) is written only on insert.
package comments

import (
	"context"

	"github.com/dvelasco/recetario/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)

	// ListByRecipe returns a recipe's comments newest first, with the
	// author's username joined in.
	ListByRecipe(ctx context.Context, recipeID string) ([]*models.Comment, error)

	// GetByID returns common.ErrNotFound for an unknown id.
	GetByID(ctx context.Context, id string) (*models.Comment, error)

	// Update rewrites the content of the row with comment.ID.
	Update(ctx context.Context, comment *models.Comment) (*models.Comment, error)

	// Delete removes the row. common.ErrNotFound when the row is gone.
	Delete(ctx context.Context, id string) error
}
