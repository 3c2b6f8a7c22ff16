package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "panel/internal/delivery/context"
	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	mockService "panel/internal/mocks/service"
)

func newGuardContext(t *testing.T, authorization string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/roles", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

// runChain sends one request through the chain and reports whether the
// terminal handler was reached.
func runChain(c echo.Context, guards ...Guard) (bool, error) {
	handled := false
	err := Chain(guards...)(func(c echo.Context) error {
		handled = true

		return nil
	})(c)

	return handled, err
}

func assertErrorCode(t *testing.T, err error, want string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, want, appErr.ErrorCode())
}

func guardUser(roles []string, permissions []string) *entity.User {
	return &entity.User{
		Email:           "admin@example.com",
		RoleNames:       roles,
		PermissionNames: permissions,
	}
}

func TestChain_PublicBypassesLaterGuards(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	guards := NewGuards(tokenSvc)
	c := newGuardContext(t, "")

	// No Validate expectation: the auth gate must never run.
	handled, err := runChain(c, Public(), guards.Authenticated(), guards.RequireRole("admin"))

	require.NoError(t, err)
	assert.True(t, handled)
}

func TestAuthGuard_SetsUserOnContext(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	guards := NewGuards(tokenSvc)
	user := guardUser([]string{"admin"}, nil)

	tokenSvc.EXPECT().
		Validate(mock.Anything, "Bearer good-token", false).
		Return(user, nil)

	c := newGuardContext(t, "Bearer good-token")
	handled, err := runChain(c, guards.Authenticated())

	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, user, deliverycontext.GetUser(c))
}

func TestAuthGuard_PropagatesAppErrors(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	guards := NewGuards(tokenSvc)

	tokenSvc.EXPECT().
		Validate(mock.Anything, "", false).
		Return(nil, domainerrors.ErrUnauthorized.WrapMessage("missing or malformed authorization header"))

	c := newGuardContext(t, "")
	handled, err := runChain(c, guards.Authenticated())

	assert.False(t, handled)
	assertErrorCode(t, err, domainerrors.ErrUnauthorized.ErrorCode())
}

func TestAuthGuard_MapsVerificationFailures(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	guards := NewGuards(tokenSvc)

	tokenSvc.EXPECT().
		Validate(mock.Anything, "Bearer expired", false).
		Return(nil, errors.New("token has invalid claims: token is expired"))

	c := newGuardContext(t, "Bearer expired")
	handled, err := runChain(c, guards.Authenticated())

	assert.False(t, handled)
	assertErrorCode(t, err, domainerrors.ErrTokenInvalid.ErrorCode())
}

func TestAuthGuard_FailureStopsChain(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	guards := NewGuards(tokenSvc)

	tokenSvc.EXPECT().
		Validate(mock.Anything, "Bearer bad", false).
		Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("access token rejected"))

	c := newGuardContext(t, "Bearer bad")

	// The role gate would reject with FORBIDDEN; the auth failure must win.
	handled, err := runChain(c, guards.Authenticated(), guards.RequireRole("admin"))

	assert.False(t, handled)
	assertErrorCode(t, err, domainerrors.ErrTokenInvalid.ErrorCode())
}

func TestRoleGuard(t *testing.T) {
	tests := []struct {
		name     string
		user     *entity.User
		required []string
		wantCode string
	}{
		{
			name:     "any match passes",
			user:     guardUser([]string{"editor", "admin"}, nil),
			required: []string{"admin", "owner"},
		},
		{
			name:     "no match is forbidden",
			user:     guardUser([]string{"viewer"}, nil),
			required: []string{"admin"},
			wantCode: domainerrors.ErrForbidden.ErrorCode(),
		},
		{
			name:     "matching is case sensitive",
			user:     guardUser([]string{"Admin"}, nil),
			required: []string{"admin"},
			wantCode: domainerrors.ErrForbidden.ErrorCode(),
		},
		{
			name:     "missing identity is unauthorized",
			required: []string{"admin"},
			wantCode: domainerrors.ErrUnauthorized.ErrorCode(),
		},
		{
			name: "empty required set allows",
			user: guardUser([]string{"user"}, nil),
		},
		{
			name: "empty required set allows without identity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guards := NewGuards(mockService.NewMockTokenService(t))
			c := newGuardContext(t, "")
			if tt.user != nil {
				deliverycontext.SetUser(c, tt.user)
			}

			handled, err := runChain(c, guards.RequireRole(tt.required...))

			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.True(t, handled)

				return
			}

			assert.False(t, handled)
			assertErrorCode(t, err, tt.wantCode)
		})
	}
}

func TestPermissionGuard(t *testing.T) {
	tests := []struct {
		name     string
		user     *entity.User
		required []string
		wantCode string
	}{
		{
			name:     "any match passes",
			user:     guardUser(nil, []string{"user:read"}),
			required: []string{"user:read", "user:write"},
		},
		{
			name:     "no match is forbidden",
			user:     guardUser(nil, []string{"user:read"}),
			required: []string{"user:delete"},
			wantCode: domainerrors.ErrForbidden.ErrorCode(),
		},
		{
			name:     "missing identity is unauthorized",
			required: []string{"user:read"},
			wantCode: domainerrors.ErrUnauthorized.ErrorCode(),
		},
		{
			name: "empty required set allows",
			user: guardUser(nil, []string{"user:read"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guards := NewGuards(mockService.NewMockTokenService(t))
			c := newGuardContext(t, "")
			if tt.user != nil {
				deliverycontext.SetUser(c, tt.user)
			}

			handled, err := runChain(c, guards.RequirePermission(tt.required...))

			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.True(t, handled)

				return
			}

			assert.False(t, handled)
			assertErrorCode(t, err, tt.wantCode)
		})
	}
}
