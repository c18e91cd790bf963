package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/smartfixwerk/SmartfixWerk/app/repository"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/statistics"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/usercontext"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/voucher"
)

// AdminVoucherController handles the voucher counter: listing, redeeming
// and expiring vouchers
type AdminVoucherController struct {
	service *voucher.Service
}

var adminVoucherController *AdminVoucherController

// InitializeAdminVoucherController initializes the admin voucher controller
func InitializeAdminVoucherController() {
	adminVoucherController = &AdminVoucherController{
		service: voucher.NewService(repository.GetGlobalFactory().GetVoucherRepository()),
	}
}

// HandleAdminVouchers lists vouchers, filterable by status and a code
// substring
func HandleAdminVouchers(c *fiber.Ctx) error {
	vouchers, err := adminVoucherController.service.List(c.Query("status"), c.Query("q"))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch vouchers")
	}

	stats, err := adminVoucherController.service.Stats()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch voucher statistics")
	}

	return c.JSON(fiber.Map{
		"vouchers": vouchers,
		"stats":    stats,
	})
}

// HandleAdminVoucherRedeem redeems an active voucher on behalf of the
// logged-in operator. A voucher that is no longer active is rejected with
// a conflict; the response carries the current list state so the client
// can refresh.
func HandleAdminVoucherRedeem(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "voucher id is required")
	}

	var body struct {
		Notes string `json:"notes"`
	}
	_ = c.BodyParser(&body)

	operatorID := usercontext.GetUserID(c)
	redeemed, err := adminVoucherController.service.Redeem(id, operatorID, body.Notes)
	if errors.Is(err, voucher.ErrNotActive) {
		return jsonError(c, fiber.StatusConflict, "not_active", "This voucher is no longer active")
	}
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "redeem_failed", "Failed to redeem voucher")
	}

	statistics.InvalidateVoucherStats()

	return c.JSON(redeemed)
}

// HandleAdminVoucherExpire expires an active voucher after operator
// confirmation. There is no automatic expiry; this is the only path to
// the expired status.
func HandleAdminVoucherExpire(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "voucher id is required")
	}

	expired, err := adminVoucherController.service.Expire(id)
	if errors.Is(err, voucher.ErrNotActive) {
		return jsonError(c, fiber.StatusConflict, "not_active", "This voucher is no longer active")
	}
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "expire_failed", "Failed to expire voucher")
	}

	statistics.InvalidateVoucherStats()

	return c.JSON(expired)
}

// HandleAdminVoucherLookup resolves an exact code scanned or typed at the
// counter
func HandleAdminVoucherLookup(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "code is required")
	}

	found, err := adminVoucherController.service.GetByCode(code)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Voucher not found")
	}

	return c.JSON(found)
}
