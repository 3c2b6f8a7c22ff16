package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "panel/internal/delivery/context"
	"panel/internal/delivery/http/response"
)

// UserHandler holds handlers for the authenticated user's own data.
type UserHandler struct{}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me returns the identity resolved by the auth guard, including role and
// permission names. The password hash never appears here.
func (h *UserHandler) Me(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No authenticated user")
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved")
}
