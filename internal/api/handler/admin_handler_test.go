package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gatewatch/access-system/internal/api/middleware"
	"github.com/gatewatch/access-system/internal/core/domain"
	"github.com/gatewatch/access-system/internal/core/ports"
)

// stubAccessService records calls and returns canned results.
type stubAccessService struct {
	summary   *ports.AccountSummary
	accounts  []domain.Account
	events    []domain.AuditEvent
	err       error
	gotActor  *domain.Account
	gotTarget string
	gotReason string
	gotLimit  int
}

func (s *stubAccessService) Grant(_ context.Context, actor *domain.Account, targetID, reason string) (*ports.AccountSummary, error) {
	s.gotActor, s.gotTarget, s.gotReason = actor, targetID, reason
	return s.summary, s.err
}

func (s *stubAccessService) Revoke(_ context.Context, actor *domain.Account, targetID, reason string) (*ports.AccountSummary, error) {
	s.gotActor, s.gotTarget, s.gotReason = actor, targetID, reason
	return s.summary, s.err
}

func (s *stubAccessService) ListAccounts(context.Context) ([]domain.Account, error) {
	return s.accounts, s.err
}

func (s *stubAccessService) History(_ context.Context, limit int) ([]domain.AuditEvent, error) {
	s.gotLimit = limit
	return s.events, s.err
}

func adminAccount() *domain.Account {
	return &domain.Account{ID: "admin-1", Email: "admin@example.com", Role: domain.RoleAdmin, AccessStatus: domain.StatusActive}
}

func newAdminContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newJSONContext(t, method, path, body)
	c.Set(middleware.AccountKey, adminAccount())
	return c, rec
}

func TestAdminHandler_RevokeAccess(t *testing.T) {
	svc := &stubAccessService{summary: &ports.AccountSummary{
		ID:           "acc-2",
		Email:        "u1@example.com",
		AccessStatus: domain.StatusRevoked,
	}}
	h := NewAdminHandler(svc)

	c, rec := newAdminContext(t, http.MethodPost, "/admin/revoke-access", `{"user_id":"acc-2","reason":"policy violation"}`)
	if err := h.RevokeAccess(c); err != nil {
		t.Fatalf("RevokeAccess returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotActor.ID != "admin-1" {
		t.Fatalf("wrong actor: %v", svc.gotActor)
	}
	if svc.gotTarget != "acc-2" || svc.gotReason != "policy violation" {
		t.Fatalf("wrong call: target=%s reason=%s", svc.gotTarget, svc.gotReason)
	}
	if !strings.Contains(rec.Body.String(), `"access_status":"revoked"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminHandler_RevokeAccess_MissingTarget(t *testing.T) {
	h := NewAdminHandler(&stubAccessService{})

	c, _ := newAdminContext(t, http.MethodPost, "/admin/revoke-access", `{"reason":"x"}`)
	err := h.RevokeAccess(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAdminHandler_RevokeAccess_WithoutAuth(t *testing.T) {
	h := NewAdminHandler(&stubAccessService{})

	c, _ := newJSONContext(t, http.MethodPost, "/admin/revoke-access", `{"user_id":"acc-2"}`)
	if err := h.RevokeAccess(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAdminHandler_GrantAccess(t *testing.T) {
	svc := &stubAccessService{summary: &ports.AccountSummary{
		ID:           "acc-2",
		Email:        "u1@example.com",
		AccessStatus: domain.StatusActive,
	}}
	h := NewAdminHandler(svc)

	c, rec := newAdminContext(t, http.MethodPost, "/admin/grant-access", `{"user_id":"acc-2"}`)
	if err := h.GrantAccess(c); err != nil {
		t.Fatalf("GrantAccess returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"access_status":"active"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminHandler_Users(t *testing.T) {
	svc := &stubAccessService{accounts: []domain.Account{
		{ID: "acc-1", Email: "admin@example.com", Role: domain.RoleAdmin, AccessStatus: domain.StatusActive, PasswordHash: "hash"},
	}}
	h := NewAdminHandler(svc)

	c, rec := newAdminContext(t, http.MethodGet, "/admin/users", "")
	if err := h.Users(c); err != nil {
		t.Fatalf("Users returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("response leaks password hash: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"count":1`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminHandler_History(t *testing.T) {
	svc := &stubAccessService{events: []domain.AuditEvent{{
		ID:           "evt-1",
		SubjectID:    "acc-2",
		SubjectEmail: "u1@example.com",
		Action:       domain.ActionRevoked,
		ActorID:      "admin-1",
		ActorEmail:   "admin@example.com",
		Reason:       "policy violation",
		Timestamp:    time.Now().UTC(),
	}}}
	h := NewAdminHandler(svc)

	c, rec := newAdminContext(t, http.MethodGet, "/admin/access-history?limit=25", "")
	if err := h.History(c); err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotLimit != 25 {
		t.Fatalf("expected limit 25, got %d", svc.gotLimit)
	}
	if !strings.Contains(rec.Body.String(), `"action":"revoked"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminHandler_History_BadLimit(t *testing.T) {
	h := NewAdminHandler(&stubAccessService{})

	c, _ := newAdminContext(t, http.MethodGet, "/admin/access-history?limit=abc", "")
	err := h.History(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
