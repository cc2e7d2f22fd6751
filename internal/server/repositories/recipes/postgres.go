package recipes

import (
	"context"
	"database/sql"
	"encoding/json"
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

// ingredients and steps live in jsonb columns, matching the original data
// shape (free-form string lists).
func marshalLists(recipe *models.Recipe) ([]byte, []byte, error) {
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding ingredients: %w", err)
	}
	steps, err := json.Marshal(recipe.Steps)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding steps: %w", err)
	}
	return ingredients, steps, nil
}

func scanLists(recipe *models.Recipe, ingredients, steps []byte) error {
	if err := json.Unmarshal(ingredients, &recipe.Ingredients); err != nil {
		return fmt.Errorf("decoding ingredients: %w", err)
	}
	if err := json.Unmarshal(steps, &recipe.Steps); err != nil {
		return fmt.Errorf("decoding steps: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {

	ingredients, steps, err := marshalLists(recipe)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO recipes (user_id, title, description, ingredients, steps)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		recipe.UserID, recipe.Title, recipe.Description, ingredients, steps).
		Scan(&recipe.ID, &recipe.CreatedAt, &recipe.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return recipe, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Recipe, error) {
	query :=
		`SELECT id, user_id, title, description, ingredients, steps, created_at, updated_at
		 FROM recipes
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Recipe
	for rows.Next() {
		recipe := &models.Recipe{}
		var ingredients, steps []byte
		if err := rows.Scan(&recipe.ID, &recipe.UserID, &recipe.Title, &recipe.Description,
			&ingredients, &steps, &recipe.CreatedAt, &recipe.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := scanLists(recipe, ingredients, steps); err != nil {
			return nil, err
		}
		result = append(result, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	query :=
		`SELECT id, user_id, title, description, ingredients, steps, created_at, updated_at
		 FROM recipes
		 WHERE id = $1
		 `

	recipe := &models.Recipe{}
	var ingredients, steps []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&recipe.ID, &recipe.UserID, &recipe.Title, &recipe.Description,
		&ingredients, &steps, &recipe.CreatedAt, &recipe.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := scanLists(recipe, ingredients, steps); err != nil {
		return nil, err
	}

	return recipe, nil
}

func (r *PostgresRepository) Update(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {

	ingredients, steps, err := marshalLists(recipe)
	if err != nil {
		return nil, err
	}

	// user_id is intentionally absent from the SET list: ownership never
	// changes after creation.
	query :=
		`UPDATE recipes
		 SET title = $1, description = $2, ingredients = $3, steps = $4, updated_at = now()
		 WHERE id = $5
		 RETURNING user_id, created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		recipe.Title, recipe.Description, ingredients, steps, recipe.ID).
		Scan(&recipe.UserID, &recipe.CreatedAt, &recipe.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return recipe, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM recipes WHERE id = $1`

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
