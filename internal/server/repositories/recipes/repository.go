// Package recipes stores recipe rows. The owner column (user_id) is written
// only on insert; Update deliberately has no way to change it.
package recipes

import (
	"context"

	"github.com/dvelasco/recetario/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	List(ctx context.Context) ([]*models.Recipe, error)

	// GetByID returns common.ErrNotFound for an unknown id.
	GetByID(ctx context.Context, id string) (*models.Recipe, error)

	// Update rewrites title, description, ingredients, and steps of the row
	// with recipe.ID. common.ErrNotFound when the row is gone.
	Update(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)

	// Delete removes the row. common.ErrNotFound when the row is gone.
	Delete(ctx context.Context, id string) error
}
