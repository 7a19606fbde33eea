package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"collab-api/service"
)

func newUserHandler() (*UserHandler, *fakeUsers) {
	users := newFakeUsers()
	svc := service.NewUserService(users, nil, testLogger())
	return NewUserHandler(testLogger(), svc), users
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	handler, _ := newUserHandler()

	rec := postJSON(t, handler.Register, "/api/users/register",
		`{"firstName":"Alice","surname":"Tester","telephone":"060111222","email":"alice@mail.com","password":"Password1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["userId"] == "" {
		t.Error("response missing userId")
	}

	// Same email again conflicts.
	rec = postJSON(t, handler.Register, "/api/users/register",
		`{"firstName":"Other","surname":"Tester","telephone":"060333444","email":"alice@mail.com","password":"Password2"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestRegisterEndpointBadInput(t *testing.T) {
	handler, _ := newUserHandler()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing fields", `{"email":"alice@mail.com"}`},
		{"weak password", `{"firstName":"Alice","surname":"Tester","telephone":"060111222","email":"alice@mail.com","password":"short"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, handler.Register, "/api/users/register", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")
	handler, _ := newUserHandler()

	rec := postJSON(t, handler.Register, "/api/users/register",
		`{"firstName":"Alice","surname":"Tester","telephone":"060111222","email":"alice@mail.com","password":"Password1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, handler.Login, "/api/users/login", `{"email":"alice@mail.com","password":"Password1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		AccessToken string          `json:"access_token"`
		User        json.RawMessage `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("response missing access_token")
	}
	if strings.Contains(string(resp.User), "Password1") || strings.Contains(string(resp.User), `"password"`) {
		t.Error("login response leaks the password field")
	}

	rec = postJSON(t, handler.Login, "/api/users/login", `{"email":"alice@mail.com","password":"WrongPass1"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
