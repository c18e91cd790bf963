package router

import (
	"github.com/smartfixwerk/SmartfixWerk/app/controllers"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Quote, search and voucher endpoints live under /api (api_router.go)

	// Public content pages
	app.Get("/faq", controllers.HandleFaq)
	app.Get("/announcements", controllers.HandleAnnouncementIndex)
	app.Get("/announcements/:slug", controllers.HandleAnnouncementShow)
	app.Get("/reviews", controllers.HandleReviews)

	// Legal and other static page display
	app.Get("/page/:slug", controllers.HandlePageShow)

	// Auth
	app.Post("/logout", middleware.RequireAuth, controllers.HandleLogout)
}
