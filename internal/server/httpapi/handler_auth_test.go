package httpapi

import (
	"net/http"
	"testing"

	"github.com/dvelasco/recetario/internal/common"
	"github.com/dvelasco/recetario/internal/server/models"
)

func TestRegister_Success(t *testing.T) {
	us := &fakeUserService{user: &models.User{ID: "u-1", Username: "ana", Email: "ana@example.com"}}
	s := newTestServer(us, &fakeRecipeService{}, &fakeCommentService{})

	req := jsonRequest(t, http.MethodPost, "/api/auth/register", registerRequest{
		Username: "ana", Email: "ana@example.com", Password: "secret",
	})
	resp, body := doRequest(t, s, req)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	user, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user object in response, got %v", body)
	}
	if user["id"] != "u-1" || user["email"] != "ana@example.com" {
		t.Fatalf("unexpected user payload: %v", user)
	}
	if us.registered.Password != "secret" {
		t.Fatalf("service did not receive the password")
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	s := newTestServer(&fakeUserService{}, &fakeRecipeService{}, &fakeCommentService{})

	req := jsonRequest(t, http.MethodPost, "/api/auth/register", registerRequest{
		Username: "ana", Email: "not-an-email", Password: "secret",
	})
	resp, _ := doRequest(t, s, req)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	s := newTestServer(&fakeUserService{}, &fakeRecipeService{}, &fakeCommentService{})

	req := jsonRequest(t, http.MethodPost, "/api/auth/register", registerRequest{Email: "a@b.com"})
	resp, _ := doRequest(t, s, req)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	us := &fakeUserService{err: common.ErrDuplicate}
	s := newTestServer(us, &fakeRecipeService{}, &fakeCommentService{})

	req := jsonRequest(t, http.MethodPost, "/api/auth/register", registerRequest{
		Username: "ana", Email: "ana@example.com", Password: "secret",
	})
	resp, _ := doRequest(t, s, req)

	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestLogin_Success(t *testing.T) {
	us := &fakeUserService{
		tok:  "signed-token",
		user: &models.User{ID: "u-1", Username: "ana", Email: "ana@example.com"},
	}
	s := newTestServer(us, &fakeRecipeService{}, &fakeCommentService{})

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", loginRequest{
		Email: "ana@example.com", Password: "secret",
	})
	resp, body := doRequest(t, s, req)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["token"] != "signed-token" {
		t.Fatalf("expected token in response, got %v", body)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	us := &fakeUserService{err: common.ErrNotFound}
	s := newTestServer(us, &fakeRecipeService{}, &fakeCommentService{})

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", loginRequest{
		Email: "ghost@example.com", Password: "secret",
	})
	resp, _ := doRequest(t, s, req)

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	us := &fakeUserService{err: common.ErrInvalidCredentials}
	s := newTestServer(us, &fakeRecipeService{}, &fakeCommentService{})

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", loginRequest{
		Email: "ana@example.com", Password: "wrong",
	})
	resp, _ := doRequest(t, s, req)

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
