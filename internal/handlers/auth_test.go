package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamestore/internal/service"
)

func TestRegister_Success(t *testing.T) {
	auth := &mockAuth{registerID: 1}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"username":"a","email":"a@x.com","password":"p1"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/local/register", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["message"] != msgUserCreated {
		t.Fatalf("expected message %q, got %v", msgUserCreated, m["message"])
	}
	if auth.lastRegisterEmail != "a@x.com" || auth.lastRegisterUsername != "a" {
		t.Fatalf("service got username=%q email=%q", auth.lastRegisterUsername, auth.lastRegisterEmail)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth := &mockAuth{registerErr: service.ErrDuplicateCredential}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"username":"a","email":"a@x.com","password":"p1"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/local/register", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate, got %d", w.Code)
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["message"] != msgDuplicateUser {
		t.Fatalf("expected message %q, got %v", msgDuplicateUser, m["message"])
	}
}

func TestRegister_BadBody(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{}}
	r := newTestRouter(s)

	// missing email, malformed email, wrong field type
	cases := []string{
		`{"username":"a","password":"p1"}`,
		`{"username":"a","email":"nope","password":"p1"}`,
		`{"username":1}`,
	}
	for _, body := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/local/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuth{loginToken: "tok123"}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"email":"a@x.com","password":"p1"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/local/", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok123" {
		t.Fatalf("expected token tok123, got %v", m["token"])
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuth{loginErr: service.ErrInvalidCredentials}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	// wrong password and unknown email must be indistinguishable
	for _, body := range []string{
		`{"email":"a@x.com","password":"wrong"}`,
		`{"email":"ghost@x.com","password":"p1"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/local/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var m map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &m)
		if m["message"] != msgInvalidCreds {
			t.Fatalf("expected generic message %q, got %v", msgInvalidCreds, m["message"])
		}
	}
}
