package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
)

// AdminFaqController handles FAQ management
type AdminFaqController struct {
	faqRepo repository.FaqRepository
}

var adminFaqController *AdminFaqController

// InitializeAdminFaqController initializes the admin FAQ controller
func InitializeAdminFaqController() {
	adminFaqController = &AdminFaqController{
		faqRepo: repository.GetGlobalFactory().GetFaqRepository(),
	}
}

// HandleAdminFaqList lists all FAQ entries
func HandleAdminFaqList(c *fiber.Ctx) error {
	entries, err := adminFaqController.faqRepo.GetAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch FAQ entries")
	}
	return c.JSON(fiber.Map{"entries": entries})
}

// HandleAdminFaqStore creates a new FAQ entry
func HandleAdminFaqStore(c *fiber.Ctx) error {
	var entry models.FaqEntry
	if err := c.BodyParser(&entry); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}
	if entry.Question == "" || entry.Answer == "" {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", "question and answer are required")
	}

	if err := adminFaqController.faqRepo.Create(&entry); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "create_failed", "Failed to create FAQ entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// HandleAdminFaqUpdate updates an existing FAQ entry
func HandleAdminFaqUpdate(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "entry id is required")
	}

	entry, err := adminFaqController.faqRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "FAQ entry not found")
	}

	var body models.FaqEntry
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}
	if body.Question == "" || body.Answer == "" {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", "question and answer are required")
	}

	entry.Question = body.Question
	entry.Answer = body.Answer
	entry.Position = body.Position
	entry.Published = body.Published

	if err := adminFaqController.faqRepo.Update(entry); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "update_failed", "Failed to update FAQ entry")
	}
	return c.JSON(entry)
}

// HandleAdminFaqDelete deletes a FAQ entry
func HandleAdminFaqDelete(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "entry id is required")
	}

	if err := adminFaqController.faqRepo.Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "delete_failed", "Failed to delete FAQ entry")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
