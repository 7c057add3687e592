package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gatewatch/access-system/internal/core/domain"
)

// stubAuthService returns canned results.
type stubAuthService struct {
	account  *domain.Account
	token    string
	err      error
	gotEmail string
	gotRole  string
}

func (s *stubAuthService) Register(_ context.Context, email, _, role string) (*domain.Account, error) {
	s.gotEmail = email
	s.gotRole = role
	return s.account, s.err
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.Account, error) {
	s.gotEmail = email
	return s.token, s.account, s.err
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{account: &domain.Account{
		ID:           "acc-1",
		Email:        "alice@example.com",
		Role:         domain.RoleUser,
		AccessStatus: domain.StatusActive,
	}}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register", `{"email":"alice@example.com","password":"pass12345"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.gotEmail != "alice@example.com" {
		t.Fatalf("service called with wrong email: %s", svc.gotEmail)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password field: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register", `{"email":"not-an-email","password":"pass12345"}`)
	err := h.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register", `{"email":"a@b.com","password":"short"}`)
	err := h.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		token: "signed-token",
		account: &domain.Account{
			ID:           "acc-1",
			Email:        "alice@example.com",
			Role:         domain.RoleAdmin,
			AccessStatus: domain.StatusActive,
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"pass12345"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "signed-token") {
		t.Fatalf("response missing token: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Failure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newJSONContext(t, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"wrong-pass"}`)
	err := h.Login(c)
	if err == nil {
		t.Fatalf("expected error")
	}
}
