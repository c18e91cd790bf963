package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/googlereviews"
)

// AdminReviewController handles review moderation and the external feed
// sync
type AdminReviewController struct {
	reviewRepo repository.ReviewRepository
}

var adminReviewController *AdminReviewController

// InitializeAdminReviewController initializes the admin review controller
func InitializeAdminReviewController() {
	adminReviewController = &AdminReviewController{
		reviewRepo: repository.GetGlobalFactory().GetReviewRepository(),
	}
}

// newSyncService builds a sync service from the current shop settings, so
// changed credentials apply without a restart
func (arc *AdminReviewController) newSyncService() *googlereviews.SyncService {
	settings := models.GetAppSettings()
	client := googlereviews.NewClient(settings.GoogleAPIKey, settings.GooglePlaceID)
	return googlereviews.NewSyncService(arc.reviewRepo, client, settings.GooglePlaceID, settings.GoogleAutoSyncEnabled)
}

// HandleAdminReviews lists all stored reviews plus the recent sync history
func HandleAdminReviews(c *fiber.Ctx) error {
	reviews, err := adminReviewController.reviewRepo.GetAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch reviews")
	}

	syncLogs, err := adminReviewController.reviewRepo.GetSyncLogs(20)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch sync history")
	}

	return c.JSON(fiber.Map{
		"reviews":   reviews,
		"sync_logs": syncLogs,
	})
}

// HandleAdminReviewSync triggers a manual sync run against the external
// feed. Missing configuration is a blocking error, never a partial sync.
func HandleAdminReviewSync(c *fiber.Ctx) error {
	result, err := adminReviewController.newSyncService().Sync(c.Context(), googlereviews.TriggeredManual)
	if errors.Is(err, googlereviews.ErrNotConfigured) {
		return jsonError(c, fiber.StatusPreconditionFailed, "not_configured", err.Error())
	}
	if err != nil {
		log.Printf("reviews: sync failed: %v", err)
		return jsonError(c, fiber.StatusBadGateway, "sync_failed", "Review sync failed: "+err.Error())
	}

	return c.JSON(result)
}

// HandleAdminReviewCreate inserts a hand-typed review through the same
// dedup scheme as synced ones
func HandleAdminReviewCreate(c *fiber.Ctx) error {
	var review models.GoogleReview
	if err := c.BodyParser(&review); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}
	if review.AuthorName == "" || review.Rating < 1 || review.Rating > 5 {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", "author name and a rating from 1 to 5 are required")
	}

	review.IsVisible = true
	if err := adminReviewController.newSyncService().AddManual(&review); err != nil {
		return jsonError(c, fiber.StatusConflict, "create_failed", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleAdminReviewUpdate toggles the admin-controlled flags on a stored
// review. Sync runs never touch these.
func HandleAdminReviewUpdate(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "review id is required")
	}

	review, err := adminReviewController.reviewRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Review not found")
	}

	var body struct {
		IsVisible  *bool `json:"is_visible"`
		IsFeatured *bool `json:"is_featured"`
	}
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	if body.IsVisible != nil {
		review.IsVisible = *body.IsVisible
	}
	if body.IsFeatured != nil {
		review.IsFeatured = *body.IsFeatured
	}

	if err := adminReviewController.reviewRepo.Update(review); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "update_failed", "Failed to update review")
	}

	return c.JSON(review)
}
