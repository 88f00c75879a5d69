package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamestore/internal/models"
	"gamestore/internal/service"
)

func TestMe_ReturnsAuthenticatedUser(t *testing.T) {
	auth := &mockAuth{authUser: &models.User{ID: 3, Username: "a", Email: "a@x.com"}}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header = authHeader("tok")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("me status=%d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.User.Email != "a@x.com" {
		t.Fatalf("expected user email a@x.com, got %q", resp.User.Email)
	}
	// the stored hash must never be serialized
	if bytes.Contains(w.Body.Bytes(), []byte("password")) {
		t.Fatalf("response leaks password material: %s", w.Body.String())
	}
}

func TestLogout_DeletesExactTokenAndIsIdempotent(t *testing.T) {
	auth := &mockAuth{authUser: &models.User{ID: 3, Email: "a@x.com"}}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/users/logout", nil)
		req.Header = authHeader("tok-abc")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("call %d: logout status=%d, body=%s", i+1, w.Code, w.Body.String())
		}
	}
	if auth.logoutCalls != 2 {
		t.Fatalf("expected 2 logout calls, got %d", auth.logoutCalls)
	}
	if auth.lastLogoutToken != "tok-abc" {
		t.Fatalf("Logout got token %q, want %q", auth.lastLogoutToken, "tok-abc")
	}
}

func TestChangePassword_UsesAuthenticatedEmail(t *testing.T) {
	auth := &mockAuth{authUser: &models.User{ID: 3, Email: "a@x.com"}}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"newPassword":"p2"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/change-password", body)
	req.Header = authHeader("tok")
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("change-password status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastChangeEmail != "a@x.com" || auth.lastChangePassword != "p2" {
		t.Fatalf("service got email=%q password=%q", auth.lastChangeEmail, auth.lastChangePassword)
	}
}

func TestChangePassword_MissingBody(t *testing.T) {
	auth := &mockAuth{authUser: &models.User{ID: 3, Email: "a@x.com"}}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/change-password", bytes.NewBufferString(`{}`))
	req.Header = authHeader("tok")
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty body, got %d", w.Code)
	}
}
