package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gatewatch/access-system/internal/api/metrics"
	"github.com/gatewatch/access-system/internal/core/domain"
	"github.com/gatewatch/access-system/internal/core/ports"
)

// AdminHandler exposes the privileged account-administration routes. Every
// route is wired behind the Auth middleware plus an ADMIN role gate.
type AdminHandler struct {
	access ports.AccessService
}

func NewAdminHandler(access ports.AccessService) *AdminHandler {
	return &AdminHandler{access: access}
}

// Users lists every account with its current access status.
//
// @Summary      List accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listAccountsResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	accounts, err := h.access.ListAccounts(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]accountResponse, 0, len(accounts))
	for i := range accounts {
		data = append(data, toAccountResponse(&accounts[i]))
	}

	return c.JSON(http.StatusOK, listAccountsResponse{Count: len(data), Data: data})
}

// GrantAccess restores a user's access.
//
// @Summary      Grant access to an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      accessChangeRequest  true  "Target and optional reason"
// @Success      200   {object}  accessChangeResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/grant-access [post]
func (h *AdminHandler) GrantAccess(c echo.Context) error {
	return h.changeAccess(c, domain.ActionGranted)
}

// RevokeAccess withdraws a user's access, effective on their next request.
//
// @Summary      Revoke access from an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      accessChangeRequest  true  "Target and optional reason"
// @Success      200   {object}  accessChangeResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/revoke-access [post]
func (h *AdminHandler) RevokeAccess(c echo.Context) error {
	return h.changeAccess(c, domain.ActionRevoked)
}

func (h *AdminHandler) changeAccess(c echo.Context, action domain.AuditAction) error {
	actor, err := currentAccount(c)
	if err != nil {
		return err
	}

	var req accessChangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	var summary *ports.AccountSummary
	var message string
	if action == domain.ActionGranted {
		summary, err = h.access.Grant(ctx, actor, req.UserID, req.Reason)
		message = "access granted"
	} else {
		summary, err = h.access.Revoke(ctx, actor, req.UserID, req.Reason)
		message = "access revoked, user is locked out on their next request"
	}
	if err != nil {
		if errors.Is(err, domain.ErrAuditAppend) {
			metrics.AuditAppendFailuresTotal.Inc()
		}
		return err
	}

	metrics.AdminActionsTotal.WithLabelValues(string(action)).Inc()
	return c.JSON(http.StatusOK, accessChangeResponse{
		Message: message,
		Data: accountResponse{
			ID:           summary.ID,
			Email:        summary.Email,
			AccessStatus: string(summary.AccessStatus),
		},
	})
}

// History returns recent grant/revoke events, newest first.
//
// @Summary      Access-change history
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum events to return (capped at 100)"
// @Success      200    {object}  historyResponse
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /admin/access-history [get]
func (h *AdminHandler) History(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = n
	}

	events, err := h.access.History(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	data := make([]auditEventResponse, 0, len(events))
	for _, e := range events {
		data = append(data, auditEventResponse{
			ID:           e.ID,
			SubjectID:    e.SubjectID,
			SubjectEmail: e.SubjectEmail,
			Action:       string(e.Action),
			ActorID:      e.ActorID,
			ActorEmail:   e.ActorEmail,
			Reason:       e.Reason,
			Timestamp:    e.Timestamp,
		})
	}

	return c.JSON(http.StatusOK, historyResponse{Count: len(data), Data: data})
}
