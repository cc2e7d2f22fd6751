package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dvelasco/recetario/internal/server/authz"
	"github.com/dvelasco/recetario/internal/server/models"
	"github.com/dvelasco/recetario/internal/server/repositories/repomanager"
)

// RecipeInput carries the mutable fields of a recipe. The owner is never
// part of the input: it comes from the authenticated identity on create and
// is untouchable afterwards.
type RecipeInput struct {
	Title       string
	Description string
	Ingredients []string
	Steps       []string
}

// RecipeService performs recipe CRUD, consulting the ownership authorizer
// before every mutation.
type RecipeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewRecipeService(db *sql.DB, m repomanager.RepositoryManager) *RecipeService {
	return &RecipeService{db: db, repomanager: m}
}

// Create persists a new recipe owned by ownerID.
func (s *RecipeService) Create(ctx context.Context, ownerID string, in RecipeInput) (*models.Recipe, error) {
	repo := s.repomanager.Recipes(s.db)

	recipe, err := repo.Create(ctx, &models.Recipe{
		UserID:      ownerID,
		Title:       in.Title,
		Description: in.Description,
		Ingredients: in.Ingredients,
		Steps:       in.Steps,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating recipe: %w", err)
	}

	return recipe, nil
}

func (s *RecipeService) List(ctx context.Context) ([]*models.Recipe, error) {
	result, err := s.repomanager.Recipes(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}
	return result, nil
}

func (s *RecipeService) Get(ctx context.Context, id string) (*models.Recipe, error) {
	return s.repomanager.Recipes(s.db).GetByID(ctx, id)
}

// Update replaces the recipe's mutable fields. Existence is checked first
// (common.ErrNotFound), then ownership (common.ErrForbidden), then the row
// is rewritten.
func (s *RecipeService) Update(ctx context.Context, requesterID, id string, in RecipeInput) (*models.Recipe, error) {
	repo := s.repomanager.Recipes(s.db)

	recipe, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeMutation(recipe, requesterID); err != nil {
		return nil, err
	}

	recipe.Title = in.Title
	recipe.Description = in.Description
	recipe.Ingredients = in.Ingredients
	recipe.Steps = in.Steps

	updated, err := repo.Update(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("error updating recipe: %w", err)
	}

	return updated, nil
}

// Delete removes the recipe, with the same not-found-then-forbidden order
// as Update.
func (s *RecipeService) Delete(ctx context.Context, requesterID, id string) error {
	repo := s.repomanager.Recipes(s.db)

	recipe, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.AuthorizeMutation(recipe, requesterID); err != nil {
		return err
	}

	if err := repo.Delete(ctx, recipe.ID); err != nil {
		return fmt.Errorf("error deleting recipe: %w", err)
	}

	return nil
}

// CanModify answers the ownership query for a loaded recipe without
// mutating anything.
func (s *RecipeService) CanModify(ctx context.Context, requesterID, id string) (bool, error) {
	recipe, err := s.repomanager.Recipes(s.db).GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return authz.CanModify(recipe, requesterID), nil
}
