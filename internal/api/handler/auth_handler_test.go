package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nestera/savings-api/internal/core/domain"
)

type stubAuthService struct {
	registered map[string]domain.Identity
	password   string
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{registered: make(map[string]domain.Identity)}
}

func (s *stubAuthService) Register(_ context.Context, email, password, name string) (domain.Identity, string, error) {
	if _, exists := s.registered[email]; exists {
		return domain.Identity{}, "", domain.ErrUserExists
	}
	identity := domain.Identity{ID: "u1", Email: email, Name: name, Role: domain.RoleUser}
	s.registered[email] = identity
	s.password = password
	return identity, "token-abc", nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, error) {
	if _, ok := s.registered[email]; !ok || password != s.password {
		return "", domain.ErrInvalidCredentials
	}
	return "token-abc", nil
}

func (s *stubAuthService) ValidateUser(_ context.Context, email, password string) (*domain.Identity, error) {
	if identity, ok := s.registered[email]; ok && password == s.password {
		return &identity, nil
	}
	return nil, nil
}

func newAuthContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h := NewAuthHandler(newStubAuthService())
	c, rec := newAuthContext(t, `{"email":"a@x.com","password":"password123","name":"Alice"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(resp["token"]) != `"token-abc"` {
		t.Fatalf("missing token in response: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	svc := newStubAuthService()
	h := NewAuthHandler(svc)

	c, _ := newAuthContext(t, `{"email":"a@x.com","password":"password123"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	c, _ = newAuthContext(t, `{"email":"a@x.com","password":"password456"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_Invalid(t *testing.T) {
	h := NewAuthHandler(newStubAuthService())

	c, _ := newAuthContext(t, `{"email":"not-an-email","password":"password123"}`)
	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for invalid email, got %v", err)
	}

	c, _ = newAuthContext(t, `{"email":"a@x.com","password":"short"}`)
	if err := h.Register(c); !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for short password, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := newStubAuthService()
	h := NewAuthHandler(svc)

	c, _ := newAuthContext(t, `{"email":"a@x.com","password":"password123"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	c, _ = newAuthContext(t, `{"email":"a@x.com","password":"wrongpass"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	c, rec := newAuthContext(t, `{"email":"a@x.com","password":"password123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "token-abc") {
		t.Fatalf("expected token in response: %s", rec.Body.String())
	}
}
