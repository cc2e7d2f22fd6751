package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dvelasco/recetario/internal/dbx"
	"github.com/dvelasco/recetario/internal/server/models"
	commentsrepo "github.com/dvelasco/recetario/internal/server/repositories/comments"
	recipesrepo "github.com/dvelasco/recetario/internal/server/repositories/recipes"
	usersrepo "github.com/dvelasco/recetario/internal/server/repositories/users"
)

// --- shared test fakes ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	created *models.User // captures the Create argument
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "u-new"
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRecipesRepo struct {
	createErr error
	listOut   []*models.Recipe
	listErr   error
	getOut    *models.Recipe
	getErr    error
	updateErr error
	deleteErr error

	updated     *models.Recipe // captures the Update argument
	deletedID   string
	updateCalls int
	deleteCalls int
}

func (f *fakeRecipesRepo) Create(ctx context.Context, r *models.Recipe) (*models.Recipe, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	r.ID = "r-new"
	return r, nil
}

func (f *fakeRecipesRepo) List(ctx context.Context) ([]*models.Recipe, error) {
	return f.listOut, f.listErr
}

func (f *fakeRecipesRepo) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeRecipesRepo) Update(ctx context.Context, r *models.Recipe) (*models.Recipe, error) {
	f.updateCalls++
	f.updated = r
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return r, nil
}

func (f *fakeRecipesRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalls++
	f.deletedID = id
	return f.deleteErr
}

type fakeCommentsRepo struct {
	createErr error
	listOut   []*models.Comment
	listErr   error
	getOut    *models.Comment
	getErr    error
	updateErr error
	deleteErr error

	updated     *models.Comment
	deletedID   string
	updateCalls int
	deleteCalls int
}

func (f *fakeCommentsRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	c.ID = "c-new"
	return c, nil
}

func (f *fakeCommentsRepo) ListByRecipe(ctx context.Context, recipeID string) ([]*models.Comment, error) {
	return f.listOut, f.listErr
}

func (f *fakeCommentsRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeCommentsRepo) Update(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	f.updateCalls++
	f.updated = c
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return c, nil
}

func (f *fakeCommentsRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalls++
	f.deletedID = id
	return f.deleteErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRecipesRepo
	c *fakeCommentsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error     { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository           { return m.u }
func (m *fakeRepoManager) Recipes(db dbx.DBTX) recipesrepo.Repository       { return m.r }
func (m *fakeRepoManager) Comments(db dbx.DBTX) commentsrepo.Repository     { return m.c }
