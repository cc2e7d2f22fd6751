package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dvelasco/recetario/internal/logging"
	"github.com/dvelasco/recetario/internal/server/auth"
	"github.com/dvelasco/recetario/internal/server/models"
	"github.com/dvelasco/recetario/internal/server/services"
)

var testSecret = []byte("test-secret")

type fakeUserService struct {
	user *models.User
	tok  string
	err  error

	registered registerRequest
}

func (f *fakeUserService) Register(_ context.Context, username, email, password string) (*models.User, error) {
	f.registered = registerRequest{Username: username, Email: email, Password: password}
	return f.user, f.err
}

func (f *fakeUserService) Login(_ context.Context, email, password string) (string, *models.User, error) {
	return f.tok, f.user, f.err
}

type fakeRecipeService struct {
	recipe  *models.Recipe
	recipes []*models.Recipe
	can     bool
	err     error

	ownerID     string
	requesterID string
	id          string
	in          services.RecipeInput
}

func (f *fakeRecipeService) Create(_ context.Context, ownerID string, in services.RecipeInput) (*models.Recipe, error) {
	f.ownerID, f.in = ownerID, in
	return f.recipe, f.err
}

func (f *fakeRecipeService) List(_ context.Context) ([]*models.Recipe, error) {
	return f.recipes, f.err
}

func (f *fakeRecipeService) Get(_ context.Context, id string) (*models.Recipe, error) {
	f.id = id
	return f.recipe, f.err
}

func (f *fakeRecipeService) Update(_ context.Context, requesterID, id string, in services.RecipeInput) (*models.Recipe, error) {
	f.requesterID, f.id, f.in = requesterID, id, in
	return f.recipe, f.err
}

func (f *fakeRecipeService) Delete(_ context.Context, requesterID, id string) error {
	f.requesterID, f.id = requesterID, id
	return f.err
}

func (f *fakeRecipeService) CanModify(_ context.Context, requesterID, id string) (bool, error) {
	f.requesterID, f.id = requesterID, id
	return f.can, f.err
}

type fakeCommentService struct {
	comment  *models.Comment
	comments []*models.Comment
	can      bool
	err      error

	requesterID string
	recipeID    string
	id          string
	content     string
}

func (f *fakeCommentService) Create(_ context.Context, authorID, recipeID, content string) (*models.Comment, error) {
	f.requesterID, f.recipeID, f.content = authorID, recipeID, content
	return f.comment, f.err
}

func (f *fakeCommentService) ListByRecipe(_ context.Context, recipeID string) ([]*models.Comment, error) {
	f.recipeID = recipeID
	return f.comments, f.err
}

func (f *fakeCommentService) Update(_ context.Context, requesterID, id, content string) (*models.Comment, error) {
	f.requesterID, f.id, f.content = requesterID, id, content
	return f.comment, f.err
}

func (f *fakeCommentService) Delete(_ context.Context, requesterID, id string) error {
	f.requesterID, f.id = requesterID, id
	return f.err
}

func (f *fakeCommentService) CanModify(_ context.Context, requesterID, id string) (bool, error) {
	f.requesterID, f.id = requesterID, id
	return f.can, f.err
}

func newTestServer(us UserService, rs RecipeService, cs CommentService) *Server {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	codec := auth.NewCodec(testSecret, time.Hour)
	return NewServer(":0", logger, codec, us, rs, cs)
}

func bearerFor(t *testing.T, s *Server, subject string) string {
	t.Helper()
	tok, err := s.codec.Issue(subject)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}
	return "Bearer " + tok
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func doRequest(t *testing.T, s *Server, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("unexpected transport error: %v", err)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil && err != io.EOF {
		t.Fatalf("decoding response: %v", err)
	}
	return resp, payload
}
