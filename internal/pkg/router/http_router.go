package router

import (
	"github.com/smartfixwerk/SmartfixWerk/app/controllers"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/middleware"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Initialize admin controllers with repositories
	controllers.InitializeAdminVoucherController()
	controllers.InitializeAdminReviewController()
	controllers.InitializeAdminAnnouncementController()
	controllers.InitializeAdminPageController()
	controllers.InitializeAdminFaqController()
	controllers.InitializeAdminSlideController()
	controllers.InitializeAdminCatalogController()
	controllers.InitializeAdminSettingsController()

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
