package router

import (
	"github.com/smartfixwerk/SmartfixWerk/app/controllers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "SmartfixWerk API",
		})
	})

	v1 := api.Group("/v1")

	// Quote configurator
	v1.Get("/quote/manufacturers", controllers.HandleQuoteManufacturers)
	v1.Post("/quote/manufacturer", controllers.HandleQuoteSelectManufacturer)
	v1.Post("/quote/model", controllers.HandleQuoteSelectModel)
	v1.Post("/quote/resolve", controllers.HandleQuoteResolve)
	v1.Post("/quote/back", controllers.HandleQuoteBack)
	v1.Post("/quote/restart", controllers.HandleQuoteRestart)
	v1.Get("/quote/search", controllers.HandleQuoteSearch)
	v1.Post("/quote/request", controllers.HandleQuoteRequest)

	// Voucher self-service
	v1.Post("/vouchers/generate", controllers.HandleVoucherGenerate)
	v1.Post("/vouchers/:id/print", controllers.HandleVoucherPrint)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
