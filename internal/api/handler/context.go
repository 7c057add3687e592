package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gatewatch/access-system/internal/api/middleware"
	"github.com/gatewatch/access-system/internal/core/domain"
)

// currentAccount returns the account the Auth middleware resolved for this
// request. Its absence means the route was wired without the middleware;
// treat it as an unauthenticated request rather than panicking.
func currentAccount(c echo.Context) (*domain.Account, error) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return account, nil
}
