package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/api"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/database"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/store"
)

func setupManager(t *testing.T) (*Manager, *store.SessionStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	st := store.NewSessionStore(db)
	m, err := NewManager(st, slog.Default())
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return m, st
}

func authServer(t *testing.T, handler http.HandlerFunc) *api.AuthService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.NewAuthService(api.NewClient(server.URL, nil))
}

func TestLoginStoresTokenAndUser(t *testing.T) {
	m, st := setupManager(t)
	auth := authServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"data": api.LoginResult{
			Token: "tok-1",
			User:  model.User{ID: "u1", Email: "anna@example.com", Name: "Anna"},
		}})
	})

	user, err := m.Login(context.Background(), auth, "anna@example.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !m.Authenticated() {
		t.Error("expected authenticated state")
	}
	if user.Name != "Anna" {
		t.Errorf("user = %+v", user)
	}
	stored, _ := st.Token()
	if stored != "tok-1" {
		t.Errorf("stored token = %q, want tok-1", stored)
	}
}

func TestBootstrapSuccess(t *testing.T) {
	m, st := setupManager(t)
	if err := st.SaveToken("tok-valid"); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	m.token = "tok-valid"

	auth := authServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": model.User{ID: "u1", Name: "Anna"}})
	})

	m.Bootstrap(context.Background(), auth)
	if !m.Authenticated() {
		t.Fatal("expected authenticated after bootstrap")
	}
	if m.Token() != "tok-valid" {
		t.Errorf("token = %q, want kept", m.Token())
	}
}

func TestBootstrapFailureClearsToken(t *testing.T) {
	m, st := setupManager(t)
	if err := st.SaveToken("tok-stale"); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	m.token = "tok-stale"

	auth := authServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
	})

	m.Bootstrap(context.Background(), auth)
	if m.Authenticated() {
		t.Error("expected unauthenticated after failed bootstrap")
	}
	if m.Token() != "" {
		t.Errorf("token = %q, want cleared", m.Token())
	}
	stored, _ := st.Token()
	if stored != "" {
		t.Errorf("stored token = %q, want cleared", stored)
	}
}

func TestBootstrapExpiredJWTSkipsNetwork(t *testing.T) {
	m, st := setupManager(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if err := st.SaveToken(signed); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	m.token = signed

	calls := 0
	auth := authServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	})

	m.Bootstrap(context.Background(), auth)
	if calls != 0 {
		t.Errorf("expected no network call for expired token, got %d", calls)
	}
	if m.Token() != "" {
		t.Error("expected token cleared")
	}
}

func TestLogoutClearsEvenOnServerError(t *testing.T) {
	m, st := setupManager(t)
	auth := authServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(map[string]any{"data": api.LoginResult{Token: "tok", User: model.User{ID: "u1"}}})
		default:
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error":"kaboom"}`)
		}
	})

	if _, err := m.Login(context.Background(), auth, "a@b.it", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}

	m.Logout(context.Background(), auth)
	if m.Authenticated() {
		t.Error("expected unauthenticated after logout")
	}
	stored, _ := st.Token()
	if stored != "" {
		t.Errorf("stored token = %q, want cleared", stored)
	}
}

func TestGates(t *testing.T) {
	m, _ := setupManager(t)
	if err := m.Gate(); err != ErrLoginRequired {
		t.Errorf("Gate() = %v, want ErrLoginRequired", err)
	}
	if err := m.GateLogin(); err != nil {
		t.Errorf("GateLogin() = %v, want nil", err)
	}

	m.user = &model.User{ID: "u1"}
	if err := m.Gate(); err != nil {
		t.Errorf("Gate() authenticated = %v, want nil", err)
	}
	if err := m.GateLogin(); err != ErrAlreadyAuthenticated {
		t.Errorf("GateLogin() authenticated = %v, want ErrAlreadyAuthenticated", err)
	}
}
