package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/constants"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/usercontext"
)

func newGuardedApp(loggedIn, isAdmin bool, guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(usercontext.KeyFromProtected, loggedIn)
		c.Locals(usercontext.KeyIsAdmin, isAdmin)
		return c.Next()
	})
	app.Get("/guarded", guard, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireAuthRedirectsAnonymousToLogin(t *testing.T) {
	app := newGuardedApp(false, false, RequireAuth)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, constants.LoginRoute, resp.Header.Get("Location"))
}

func TestRequireAuthPassesLoggedInUser(t *testing.T) {
	app := newGuardedApp(true, false, RequireAuth)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAdminRedirectsAnonymousToLogin(t *testing.T) {
	app := newGuardedApp(false, false, RequireAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, constants.LoginRoute, resp.Header.Get("Location"))
}

func TestRequireAdminRedirectsNonAdminToPublicPage(t *testing.T) {
	app := newGuardedApp(true, false, RequireAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, constants.PublicRoute, resp.Header.Get("Location"))
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	app := newGuardedApp(true, true, RequireAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireStaffReturnsUnauthorizedJSON(t *testing.T) {
	app := newGuardedApp(false, false, RequireStaff)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}
