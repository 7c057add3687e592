package handler

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gatewatch/access-system/internal/api/middleware"
	"github.com/gatewatch/access-system/internal/core/domain"
)

func TestUserHandler_Status_Active(t *testing.T) {
	h := NewUserHandler()

	c, rec := newJSONContext(t, http.MethodGet, "/user/status", "")
	c.Set(middleware.AccountKey, &domain.Account{
		Email:        "u1@example.com",
		Role:         domain.RoleUser,
		AccessStatus: domain.StatusActive,
	})

	if err := h.Status(c); err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "active access") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_Status_NoAccount(t *testing.T) {
	h := NewUserHandler()

	c, _ := newJSONContext(t, http.MethodGet, "/user/status", "")
	if err := h.Status(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
