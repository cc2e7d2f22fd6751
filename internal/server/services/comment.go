package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dvelasco/recetario/internal/dbx"
	"github.com/dvelasco/recetario/internal/server/authz"
	"github.com/dvelasco/recetario/internal/server/models"
	"github.com/dvelasco/recetario/internal/server/repositories/repomanager"
)

// CommentService performs comment CRUD. Ownership is per-comment: the
// recipe's owner has no special rights over other users' comments.
type CommentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCommentService(db *sql.DB, m repomanager.RepositoryManager) *CommentService {
	return &CommentService{db: db, repomanager: m}
}

// Create adds a comment by authorID to a recipe. The parent recipe must
// exist (common.ErrNotFound otherwise); the check and the insert run in one
// transaction so the parent cannot vanish in between.
func (s *CommentService) Create(ctx context.Context, authorID, recipeID, content string) (*models.Comment, error) {
	var comment *models.Comment

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Recipes(tx).GetByID(ctx, recipeID); err != nil {
			return err
		}

		created, err := s.repomanager.Comments(tx).Create(ctx, &models.Comment{
			RecipeID: recipeID,
			UserID:   authorID,
			Content:  content,
		})
		if err != nil {
			return fmt.Errorf("error creating comment: %w", err)
		}

		comment = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// ListByRecipe returns a recipe's comments, newest first, authors joined.
// An unknown recipe id simply lists as empty, as the original system does.
func (s *CommentService) ListByRecipe(ctx context.Context, recipeID string) ([]*models.Comment, error) {
	result, err := s.repomanager.Comments(s.db).ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	return result, nil
}

// Update rewrites a comment's content. Existence first, then ownership.
func (s *CommentService) Update(ctx context.Context, requesterID, id, content string) (*models.Comment, error) {
	repo := s.repomanager.Comments(s.db)

	comment, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeMutation(comment, requesterID); err != nil {
		return nil, err
	}

	comment.Content = content

	updated, err := repo.Update(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("error updating comment: %w", err)
	}

	return updated, nil
}

// Delete removes a comment, same ordering as Update.
func (s *CommentService) Delete(ctx context.Context, requesterID, id string) error {
	repo := s.repomanager.Comments(s.db)

	comment, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.AuthorizeMutation(comment, requesterID); err != nil {
		return err
	}

	if err := repo.Delete(ctx, comment.ID); err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}

	return nil
}

// CanModify answers the ownership query for a loaded comment.
func (s *CommentService) CanModify(ctx context.Context, requesterID, id string) (bool, error) {
	comment, err := s.repomanager.Comments(s.db).GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return authz.CanModify(comment, requesterID), nil
}
