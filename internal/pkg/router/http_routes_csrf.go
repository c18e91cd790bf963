package router

import (
	"strings"
	"time"

	"github.com/smartfixwerk/SmartfixWerk/app/controllers"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/constants"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/env"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))
	group.Get(constants.PublicRoute, controllers.HandleHome)
	group.Get(constants.LoginRoute, controllers.HandleLoginPage)
	group.Post(constants.LoginRoute, controllers.HandleLoginPost)
}
