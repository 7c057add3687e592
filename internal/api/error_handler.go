package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gatewatch/access-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the authorization and administration error taxonomy to
//     deterministic HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Unauthenticated covers
	// missing, invalid and expired tokens as well as unknown identities, so
	// nothing here distinguishes "no such account" from "wrong credential".
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "not authorized"
	case errors.Is(err, domain.ErrAccessRevoked):
		return http.StatusForbidden, "access revoked, contact an administrator"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "admin privileges required"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "account not found"
	case errors.Is(err, domain.ErrSelfRevocation):
		return http.StatusBadRequest, "you cannot revoke your own access"
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusConflict, "account already exists"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrImmutableAudit):
		return http.StatusConflict, "audit events cannot be modified"
	case errors.Is(err, domain.ErrAuditAppend):
		// Distinct from a generic 500: the status change may have persisted
		// while the ledger entry did not, and operators need to reconcile.
		log.Error().Err(err).Str("path", c.Path()).Msg("audit append failure")
		return http.StatusInternalServerError, "operation failed: audit trail could not be written"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
