package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/smartfixwerk/SmartfixWerk/app/repository"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/statistics"
)

// HandleAdminDashboard returns the back-office overview: voucher numbers,
// catalog size and the latest sync history
func HandleAdminDashboard(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	voucherStats, err := statistics.GetVoucherStats()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch voucher statistics")
	}

	catalogCount, err := repos.RepairPrice.Count()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch catalog size")
	}

	syncLogs, err := repos.Review.GetSyncLogs(5)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch sync history")
	}

	return c.JSON(fiber.Map{
		"flash":         flash.Get(c),
		"voucher_stats": voucherStats,
		"catalog_count": catalogCount,
		"sync_logs":     syncLogs,
	})
}
