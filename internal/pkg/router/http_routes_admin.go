package router

import (
	"github.com/smartfixwerk/SmartfixWerk/app/controllers"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/constants"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group(constants.AdminRoute, middleware.RequireAdmin)
	adminGroup.Get("/", controllers.HandleAdminDashboard)

	// Voucher management. Redeem and expire are also open to counter
	// staff, who sign in with the same form but carry the staff role.
	staffGroup := app.Group(constants.AdminVouchersRoute, middleware.RequireStaff)
	staffGroup.Get("/", controllers.HandleAdminVouchers)
	staffGroup.Get("/lookup", controllers.HandleAdminVoucherLookup)
	staffGroup.Post("/redeem/:id", controllers.HandleAdminVoucherRedeem)
	staffGroup.Post("/expire/:id", controllers.HandleAdminVoucherExpire)

	// Review management
	adminGroup.Get("/reviews", controllers.HandleAdminReviews)
	adminGroup.Post("/reviews/sync", controllers.HandleAdminReviewSync)
	adminGroup.Post("/reviews/store", controllers.HandleAdminReviewCreate)
	adminGroup.Post("/reviews/update/:id", controllers.HandleAdminReviewUpdate)

	// Announcement management
	adminGroup.Get("/announcements", controllers.HandleAdminAnnouncements)
	adminGroup.Post("/announcements/store", controllers.HandleAdminAnnouncementStore)
	adminGroup.Post("/announcements/update/:id", controllers.HandleAdminAnnouncementUpdate)
	adminGroup.Post("/announcements/delete/:id", controllers.HandleAdminAnnouncementDelete)

	// Page management
	adminGroup.Get("/pages", controllers.HandleAdminPages)
	adminGroup.Post("/pages/store", controllers.HandleAdminPageStore)
	adminGroup.Post("/pages/update/:id", controllers.HandleAdminPageUpdate)
	adminGroup.Post("/pages/delete/:id", controllers.HandleAdminPageDelete)

	// FAQ management
	adminGroup.Get("/faq", controllers.HandleAdminFaqList)
	adminGroup.Post("/faq/store", controllers.HandleAdminFaqStore)
	adminGroup.Post("/faq/update/:id", controllers.HandleAdminFaqUpdate)
	adminGroup.Post("/faq/delete/:id", controllers.HandleAdminFaqDelete)

	// Hero slide management
	adminGroup.Get("/slides", controllers.HandleAdminSlides)
	adminGroup.Post("/slides/store", controllers.HandleAdminSlideStore)
	adminGroup.Post("/slides/update/:id", controllers.HandleAdminSlideUpdate)
	adminGroup.Post("/slides/delete/:id", controllers.HandleAdminSlideDelete)

	// Repair price catalog
	adminGroup.Get("/catalog", controllers.HandleAdminCatalog)
	adminGroup.Post("/catalog/store", controllers.HandleAdminCatalogStore)
	adminGroup.Post("/catalog/update/:id", controllers.HandleAdminCatalogUpdate)
	adminGroup.Post("/catalog/delete/:id", controllers.HandleAdminCatalogDelete)

	// Settings
	adminGroup.Get("/settings", controllers.HandleAdminSettings)
	adminGroup.Post("/settings", controllers.HandleAdminSettingsUpdate)
}
