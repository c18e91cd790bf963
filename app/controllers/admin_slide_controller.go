package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
)

// AdminSlideController handles hero slide management
type AdminSlideController struct {
	slideRepo repository.HeroSlideRepository
}

var adminSlideController *AdminSlideController

// InitializeAdminSlideController initializes the admin slide controller
func InitializeAdminSlideController() {
	adminSlideController = &AdminSlideController{
		slideRepo: repository.GetGlobalFactory().GetHeroSlideRepository(),
	}
}

// HandleAdminSlides lists all hero slides
func HandleAdminSlides(c *fiber.Ctx) error {
	slides, err := adminSlideController.slideRepo.GetAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch slides")
	}
	return c.JSON(fiber.Map{"slides": slides})
}

// HandleAdminSlideStore creates a new hero slide
func HandleAdminSlideStore(c *fiber.Ctx) error {
	var slide models.HeroSlide
	if err := c.BodyParser(&slide); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}
	if slide.Title == "" || slide.ImageURL == "" {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", "title and image URL are required")
	}

	if err := adminSlideController.slideRepo.Create(&slide); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "create_failed", "Failed to create slide")
	}
	return c.Status(fiber.StatusCreated).JSON(slide)
}

// HandleAdminSlideUpdate updates an existing hero slide
func HandleAdminSlideUpdate(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "slide id is required")
	}

	slide, err := adminSlideController.slideRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Slide not found")
	}

	var body models.HeroSlide
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}
	if body.Title == "" || body.ImageURL == "" {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", "title and image URL are required")
	}

	slide.Title = body.Title
	slide.Subtitle = body.Subtitle
	slide.ImageURL = body.ImageURL
	slide.CTALabel = body.CTALabel
	slide.CTALink = body.CTALink
	slide.Position = body.Position
	slide.IsActive = body.IsActive

	if err := adminSlideController.slideRepo.Update(slide); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "update_failed", "Failed to update slide")
	}
	return c.JSON(slide)
}

// HandleAdminSlideDelete deletes a hero slide
func HandleAdminSlideDelete(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "slide id is required")
	}

	if err := adminSlideController.slideRepo.Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "delete_failed", "Failed to delete slide")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
