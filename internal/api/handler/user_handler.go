package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gatewatch/access-system/internal/core/domain"
)

// UserHandler exposes the self-service routes for regular users.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

type statusResponse struct {
	Email        string `json:"email"`
	Role         string `json:"role"`
	AccessStatus string `json:"access_status"`
	Message      string `json:"message"`
}

// Status reports the caller's own current standing. Reaching this handler at
// all already proves the live check passed on this request.
//
// @Summary      Current access status
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statusResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /user/status [get]
func (h *UserHandler) Status(c echo.Context) error {
	account, err := currentAccount(c)
	if err != nil {
		return err
	}

	message := "you have active access to the system"
	if account.AccessStatus != domain.StatusActive {
		message = "your access has been revoked"
	}

	return c.JSON(http.StatusOK, statusResponse{
		Email:        account.Email,
		Role:         account.Role,
		AccessStatus: string(account.AccessStatus),
		Message:      message,
	})
}
