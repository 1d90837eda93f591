package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/labstack/echo/v4"
)

func TestGetSubject(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name     string
		setup    func(c echo.Context)
		expected string
	}{
		{
			name: "returns subject when present",
			setup: func(c echo.Context) {
				ctx := context.WithValue(c.Request().Context(), SubjectKey, "auth0|12345")
				c.SetRequest(c.Request().WithContext(ctx))
			},
			expected: "auth0|12345",
		},
		{
			name:     "returns empty string when not present",
			setup:    func(c echo.Context) {},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			tt.setup(c)

			result := GetSubject(c)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestGetClaims(t *testing.T) {
	e := echo.New()

	t.Run("returns claims when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		claims := &validator.ValidatedClaims{
			RegisteredClaims: validator.RegisteredClaims{
				Subject: "auth0|test",
			},
		}
		ctx := context.WithValue(c.Request().Context(), ClaimsKey, claims)
		c.SetRequest(c.Request().WithContext(ctx))

		result := GetClaims(c)
		if result == nil {
			t.Fatal("Expected claims, got nil")
		}
		if result.RegisteredClaims.Subject != "auth0|test" {
			t.Errorf("Expected subject 'auth0|test', got %q", result.RegisteredClaims.Subject)
		}
	})

	t.Run("returns nil when not present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		result := GetClaims(c)
		if result != nil {
			t.Error("Expected nil, got claims")
		}
	})
}

func TestGetCustomClaims(t *testing.T) {
	e := echo.New()

	t.Run("returns custom claims when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		customClaims := &CustomClaims{
			Email: "ops@portside.app",
			Name:  "Ops User",
		}
		claims := &validator.ValidatedClaims{
			RegisteredClaims: validator.RegisteredClaims{
				Subject: "auth0|test",
			},
			CustomClaims: customClaims,
		}
		ctx := context.WithValue(c.Request().Context(), ClaimsKey, claims)
		c.SetRequest(c.Request().WithContext(ctx))

		result := GetCustomClaims(c)
		if result == nil {
			t.Fatal("Expected custom claims, got nil")
		}
		if result.Email != "ops@portside.app" {
			t.Errorf("Expected email 'ops@portside.app', got %q", result.Email)
		}
	})

	t.Run("returns nil when claims not present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		result := GetCustomClaims(c)
		if result != nil {
			t.Error("Expected nil, got custom claims")
		}
	})
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e := echo.New()
	m := &AuthMiddleware{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	handler := func(c echo.Context) error {
		handlerCalled = true
		return c.String(http.StatusOK, "OK")
	}

	if err := m.Authenticate()(handler)(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if handlerCalled {
		t.Error("Handler should not be called without an Authorization header")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	e := echo.New()
	m := &AuthMiddleware{}

	tests := []struct {
		name   string
		header string
	}{
		{"no bearer prefix", "token-without-scheme"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := func(c echo.Context) error {
				return c.String(http.StatusOK, "OK")
			}

			if err := m.Authenticate()(handler)(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("Expected status 401, got %d", rec.Code)
			}
		})
	}
}
