// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"panel/internal/delivery/http/middleware"
	"panel/internal/delivery/http/router/handler"
)

// RouterParams holds everything route registration needs, injected by Fx.
type RouterParams struct {
	fx.In

	Guards       *middleware.Guards
	OperationLog *middleware.OperationLogMiddleware

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	DictionaryHandler   *handler.DictionaryHandler
	ResourceHandler     *handler.ResourceHandler
	MenuHandler         *handler.MenuHandler
	OperationLogHandler *handler.OperationLogHandler
	RoleHandler         *handler.RoleHandler
	PermissionHandler   *handler.PermissionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	guards := r.params.Guards

	e.GET("/health", handler.HealthCheck)

	// Auth routes are open: the Public marker stops the chain before the
	// auth gate runs.
	authGroup := e.Group("/auth")
	authGroup.Use(middleware.Chain(middleware.Public(), guards.Authenticated()))
	{
		authGroup.POST("/signup", r.params.AuthHandler.SignUp)
		authGroup.POST("/verify", r.params.AuthHandler.VerifyEmail)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/otp", r.params.AuthHandler.SendOTP)
		authGroup.POST("/otp/login", r.params.AuthHandler.LoginWithOTP)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
	}

	// Routes for any authenticated user.
	userGroup := e.Group("")
	userGroup.Use(middleware.Chain(guards.Authenticated()))
	{
		userGroup.GET("/me", r.params.UserHandler.Me)
	}

	// Admin surface: authenticated, admin role, every request recorded.
	adminGroup := e.Group("/admin")
	adminGroup.Use(middleware.Chain(guards.Authenticated(), guards.RequireRole("admin")))
	adminGroup.Use(r.params.OperationLog.Record)
	{
		// Reads need only the admin role; writes additionally need a
		// named permission for the resource kind.
		dictGroup := adminGroup.Group("/dictionaries")
		dictWrite := middleware.Chain(guards.RequirePermission("dictionary:write"))
		dictGroup.GET("", r.params.DictionaryHandler.List)
		dictGroup.GET("/:id", r.params.DictionaryHandler.Get)
		dictGroup.POST("", r.params.DictionaryHandler.Create, dictWrite)
		dictGroup.PUT("/:id", r.params.DictionaryHandler.Update, dictWrite)
		dictGroup.DELETE("/:id", r.params.DictionaryHandler.Delete, dictWrite)

		resourceGroup := adminGroup.Group("/resources")
		resourceWrite := middleware.Chain(guards.RequirePermission("resource:write"))
		resourceGroup.GET("", r.params.ResourceHandler.List)
		resourceGroup.GET("/:id", r.params.ResourceHandler.Get)
		resourceGroup.POST("", r.params.ResourceHandler.Create, resourceWrite)
		resourceGroup.PUT("/:id", r.params.ResourceHandler.Update, resourceWrite)
		resourceGroup.DELETE("/:id", r.params.ResourceHandler.Delete, resourceWrite)

		menuGroup := adminGroup.Group("/menus")
		menuWrite := middleware.Chain(guards.RequirePermission("menu:write"))
		menuGroup.GET("", r.params.MenuHandler.List)
		menuGroup.GET("/:id", r.params.MenuHandler.Get)
		menuGroup.POST("", r.params.MenuHandler.Create, menuWrite)
		menuGroup.PUT("/:id", r.params.MenuHandler.Update, menuWrite)
		menuGroup.DELETE("/:id", r.params.MenuHandler.Delete, menuWrite)

		adminGroup.GET("/logs", r.params.OperationLogHandler.List)

		// Access management additionally requires the rbac permission on
		// top of the admin role.
		roleGroup := adminGroup.Group("/roles")
		roleGroup.Use(middleware.Chain(guards.RequirePermission("rbac:manage")))
		roleGroup.POST("", r.params.RoleHandler.Create)
		roleGroup.GET("", r.params.RoleHandler.List)
		roleGroup.GET("/:id", r.params.RoleHandler.Get)
		roleGroup.PUT("/:id", r.params.RoleHandler.Update)
		roleGroup.DELETE("/:id", r.params.RoleHandler.Delete)
		roleGroup.PUT("/:id/permissions", r.params.RoleHandler.SetPermissions)
		roleGroup.POST("/:id/assign", r.params.RoleHandler.Assign)
		roleGroup.POST("/:id/unassign", r.params.RoleHandler.Remove)

		permissionGroup := adminGroup.Group("/permissions")
		permissionGroup.Use(middleware.Chain(guards.RequirePermission("rbac:manage")))
		permissionGroup.POST("", r.params.PermissionHandler.Create)
		permissionGroup.GET("", r.params.PermissionHandler.List)
		permissionGroup.GET("/:id", r.params.PermissionHandler.Get)
		permissionGroup.PUT("/:id", r.params.PermissionHandler.Update)
		permissionGroup.DELETE("/:id", r.params.PermissionHandler.Delete)
	}
}
