package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/statistics"
)

// AdminSettingsController handles the shop settings form
type AdminSettingsController struct {
	settingRepo repository.SettingRepository
}

var adminSettingsController *AdminSettingsController

// InitializeAdminSettingsController initializes the admin settings controller
func InitializeAdminSettingsController() {
	adminSettingsController = &AdminSettingsController{
		settingRepo: repository.GetGlobalFactory().GetSettingRepository(),
	}
}

// HandleAdminSettings returns the current settings snapshot
func HandleAdminSettings(c *fiber.Ctx) error {
	settings, err := adminSettingsController.settingRepo.Get()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to load settings")
	}
	return c.JSON(settings)
}

// HandleAdminSettingsUpdate persists a full settings snapshot. The form
// always posts every field, so missing booleans mean "off" rather than
// "unchanged".
func HandleAdminSettingsUpdate(c *fiber.Ctx) error {
	var settings models.AppSettings
	if err := c.BodyParser(&settings); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	if err := adminSettingsController.settingRepo.Save(&settings); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "save_failed", err.Error())
	}

	// A changed face value affects the cached voucher dashboard numbers
	// only indirectly, but dropping the cache keeps the admin view honest.
	statistics.InvalidateVoucherStats()

	return c.JSON(settings)
}
