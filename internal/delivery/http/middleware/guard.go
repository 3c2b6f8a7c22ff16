package middleware

import (
	"slices"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "panel/internal/delivery/context"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/service"
)

// Guard is one gate in a route's protection chain. A nil return passes the
// request to the next guard; an error stops the chain and is rendered by the
// error middleware.
type Guard interface {
	Check(c echo.Context) error
}

// errPublicRoute short-circuits the rest of the chain with an allow. It never
// leaves Chain.
var errPublicRoute = errors.New("public route")

// Chain runs guards in registration order. The order is the contract: a
// Public marker must come before the auth gate to bypass it, and role or
// permission gates only see an identity if an auth gate ran earlier.
func Chain(guards ...Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, guard := range guards {
				err := guard.Check(c)
				if errors.Is(err, errPublicRoute) {
					break
				}
				if err != nil {
					return err
				}
			}

			return next(c)
		}
	}
}

type publicGuard struct{}

func (publicGuard) Check(echo.Context) error {
	return errPublicRoute
}

// Public marks the route as open: every guard after it is skipped.
func Public() Guard {
	return publicGuard{}
}

// Guards builds the gates used to protect route groups.
type Guards struct {
	tokenSvc service.TokenService
}

// NewGuards is the constructor for Guards, injected by Fx.
func NewGuards(tokenSvc service.TokenService) *Guards {
	return &Guards{tokenSvc: tokenSvc}
}

type authGuard struct {
	tokenSvc service.TokenService
}

// Check validates the access token in the Authorization header and stores the
// resolved identity on the request context for later gates and handlers.
func (g *authGuard) Check(c echo.Context) error {
	header := c.Request().Header.Get("Authorization")

	user, err := g.tokenSvc.Validate(c.Request().Context(), header, false)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}

		// Signature and expiry failures surface as raw verification errors.
		return domainerrors.ErrTokenInvalid.WrapMessage("access token rejected")
	}

	deliverycontext.SetUser(c, user)

	return nil
}

// Authenticated gates the route on a valid access token.
func (g *Guards) Authenticated() Guard {
	return &authGuard{tokenSvc: g.tokenSvc}
}

type roleGuard struct {
	roles []string
}

// Check passes when the resolved user holds any of the required roles.
// Matching is case-sensitive by name. An empty required set gates nothing
// and allows unconditionally.
func (g *roleGuard) Check(c echo.Context) error {
	if len(g.roles) == 0 {
		return nil
	}

	user := deliverycontext.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthorized.WrapMessage("no identity resolved before role check")
	}

	for _, required := range g.roles {
		if slices.Contains(user.RoleNames, required) {
			return nil
		}
	}

	return domainerrors.ErrForbidden.WrapMessage("required role missing")
}

// RequireRole gates the route on holding at least one of the named roles.
// It must come after Authenticated in the chain.
func (g *Guards) RequireRole(roles ...string) Guard {
	return &roleGuard{roles: roles}
}

type permissionGuard struct {
	permissions []string
}

// Check passes when the resolved user holds any of the required permissions.
// An empty required set allows unconditionally.
func (g *permissionGuard) Check(c echo.Context) error {
	if len(g.permissions) == 0 {
		return nil
	}

	user := deliverycontext.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthorized.WrapMessage("no identity resolved before permission check")
	}

	for _, required := range g.permissions {
		if slices.Contains(user.PermissionNames, required) {
			return nil
		}
	}

	return domainerrors.ErrForbidden.WrapMessage("required permission missing")
}

// RequirePermission gates the route on holding at least one of the named
// permissions. It must come after Authenticated in the chain.
func (g *Guards) RequirePermission(permissions ...string) Guard {
	return &permissionGuard{permissions: permissions}
}
