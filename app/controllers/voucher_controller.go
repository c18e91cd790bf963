package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/hcaptcha"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/statistics"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/voucher"
)

// HandleVoucherGenerate creates a new voucher at the program's configured
// face value. Captcha-gated so the public button cannot be scripted.
func HandleVoucherGenerate(c *fiber.Ctx) error {
	var body struct {
		CaptchaToken string `json:"captcha_token"`
	}
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	if ok, err := hcaptcha.Verify(body.CaptchaToken); !ok {
		log.Printf("voucher: captcha verification failed: %v", err)
		return jsonError(c, fiber.StatusUnprocessableEntity, "captcha_failed", "Captcha verification failed")
	}

	svc := voucher.NewService(repository.GetGlobalFactory().GetVoucherRepository())
	generated, err := svc.Generate(models.GetAppSettings().VoucherFaceValueCents)
	if err != nil {
		log.Printf("voucher: generation failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "generate_failed", "Voucher generation failed, please try again")
	}

	statistics.InvalidateVoucherStats()

	return c.Status(fiber.StatusCreated).JSON(generated)
}

// HandleVoucherPrint records one physical print attempt. The count is a
// best-effort usage signal; whether the print dialog completes is not
// observable here.
func HandleVoucherPrint(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "voucher id is required")
	}

	svc := voucher.NewService(repository.GetGlobalFactory().GetVoucherRepository())
	printed, err := svc.RecordPrint(id)
	if err != nil {
		log.Printf("voucher: print record failed for %d: %v", id, err)
		return jsonError(c, fiber.StatusNotFound, "not_found", "Voucher not found")
	}

	return c.JSON(printed)
}
