package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dvelasco/recetario/internal/common"
	"github.com/dvelasco/recetario/internal/dbx"
	"github.com/dvelasco/recetario/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {

	query :=
		`INSERT INTO comments (recipe_id, user_id, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		comment.RecipeID, comment.UserID, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

func (r *PostgresRepository) ListByRecipe(ctx context.Context, recipeID string) ([]*models.Comment, error) {
	query :=
		`SELECT c.id, c.recipe_id, c.user_id, c.content, c.created_at, c.updated_at, u.username
		 FROM comments c
		 JOIN users u ON u.id = c.user_id
		 WHERE c.recipe_id = $1
		 ORDER BY c.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Comment
	for rows.Next() {
		comment := &models.Comment{}
		if err := rows.Scan(&comment.ID, &comment.RecipeID, &comment.UserID,
			&comment.Content, &comment.CreatedAt, &comment.UpdatedAt, &comment.Username); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query :=
		`SELECT id, recipe_id, user_id, content, created_at, updated_at
		 FROM comments
		 WHERE id = $1
		 `

	comment := &models.Comment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.RecipeID, &comment.UserID,
		&comment.Content, &comment.CreatedAt, &comment.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

func (r *PostgresRepository) Update(ctx context.Context, comment *models.Comment) (*models.Comment, error) {

	// user_id and recipe_id stay as inserted.
	query :=
		`UPDATE comments
		 SET content = $1, updated_at = now()
		 WHERE id = $2
		 RETURNING recipe_id, user_id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, comment.Content, comment.ID).Scan(
		&comment.RecipeID, &comment.UserID, &comment.CreatedAt, &comment.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM comments WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
