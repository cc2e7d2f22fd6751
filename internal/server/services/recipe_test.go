package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dvelasco/recetario/internal/common"
	"github.com/dvelasco/recetario/internal/server/models"
)

func newRecipeService(t *testing.T, rm *fakeRepoManager) *RecipeService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	return NewRecipeService(db, rm)
}

func TestRecipeCreate_SetsOwner(t *testing.T) {
	rm := &fakeRepoManager{r: &fakeRecipesRepo{}}
	s := newRecipeService(t, rm)

	recipe, err := s.Create(context.Background(), "u-1", RecipeInput{
		Title:       "Tortilla",
		Ingredients: []string{"eggs"},
		Steps:       []string{"fry"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if recipe.UserID != "u-1" {
		t.Fatalf("owner not set from authenticated identity: %q", recipe.UserID)
	}
}

func TestRecipeUpdate_OwnerSucceeds(t *testing.T) {
	rm := &fakeRepoManager{r: &fakeRecipesRepo{
		getOut: &models.Recipe{ID: "r-1", UserID: "u-1", Title: "Old"},
	}}
	s := newRecipeService(t, rm)

	got, err := s.Update(context.Background(), "u-1", "r-1", RecipeInput{Title: "New"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Title != "New" {
		t.Fatalf("title not updated: %q", got.Title)
	}
	if got.UserID != "u-1" {
		t.Fatalf("owner must not change on update: %q", got.UserID)
	}
}

func TestRecipeUpdate_NonOwnerForbidden(t *testing.T) {
	repo := &fakeRecipesRepo{getOut: &models.Recipe{ID: "r-1", UserID: "u-1"}}
	rm := &fakeRepoManager{r: repo}
	s := newRecipeService(t, rm)

	_, err := s.Update(context.Background(), "u-2", "r-1", RecipeInput{Title: "New"})
	if !errors.Is(err, common.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatal("repository Update must not run for a forbidden request")
	}
}

func TestRecipeUpdate_NotFoundBeatsForbidden(t *testing.T) {
	repo := &fakeRecipesRepo{getErr: common.ErrNotFound}
	rm := &fakeRepoManager{r: repo}
	s := newRecipeService(t, rm)

	// requester would also be a non-owner, but absence is reported first
	_, err := s.Update(context.Background(), "u-2", "missing", RecipeInput{Title: "New"})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecipeDelete_OwnerSucceeds(t *testing.T) {
	repo := &fakeRecipesRepo{getOut: &models.Recipe{ID: "r-1", UserID: "u-1"}}
	rm := &fakeRepoManager{r: repo}
	s := newRecipeService(t, rm)

	if err := s.Delete(context.Background(), "u-1", "r-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if repo.deletedID != "r-1" {
		t.Fatalf("unexpected deleted id: %q", repo.deletedID)
	}
}

func TestRecipeDelete_NonOwnerForbidden(t *testing.T) {
	repo := &fakeRecipesRepo{getOut: &models.Recipe{ID: "r-1", UserID: "u-1"}}
	rm := &fakeRepoManager{r: repo}
	s := newRecipeService(t, rm)

	err := s.Delete(context.Background(), "u-2", "r-1")
	if !errors.Is(err, common.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.deleteCalls != 0 {
		t.Fatal("repository Delete must not run for a forbidden request")
	}
}

func TestRecipeDelete_MissingIsNotFoundForAnyRequester(t *testing.T) {
	for _, requester := range []string{"u-1", "u-2", ""} {
		repo := &fakeRecipesRepo{getErr: common.ErrNotFound}
		rm := &fakeRepoManager{r: repo}
		s := newRecipeService(t, rm)

		err := s.Delete(context.Background(), requester, "missing")
		if !errors.Is(err, common.ErrNotFound) {
			t.Fatalf("requester %q: expected ErrNotFound, got %v", requester, err)
		}
	}
}

func TestRecipeCanModify(t *testing.T) {
	rm := &fakeRepoManager{r: &fakeRecipesRepo{
		getOut: &models.Recipe{ID: "r-1", UserID: "u-1"},
	}}
	s := newRecipeService(t, rm)

	ok, err := s.CanModify(context.Background(), "u-1", "r-1")
	if err != nil || !ok {
		t.Fatalf("owner: got (%v, %v), want (true, nil)", ok, err)
	}

	ok, err = s.CanModify(context.Background(), "u-2", "r-1")
	if err != nil || ok {
		t.Fatalf("non-owner: got (%v, %v), want (false, nil)", ok, err)
	}
}
