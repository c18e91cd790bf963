package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/constants"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/usercontext"
)

// AdminAnnouncementController handles admin announcement-related HTTP
// requests using the repository pattern
type AdminAnnouncementController struct {
	announcementRepo repository.AnnouncementRepository
}

var adminAnnouncementController *AdminAnnouncementController

// InitializeAdminAnnouncementController initializes the admin
// announcement controller with its repository
func InitializeAdminAnnouncementController() {
	adminAnnouncementController = &AdminAnnouncementController{
		announcementRepo: repository.GetGlobalFactory().GetAnnouncementRepository(),
	}
}

// handleError is a helper method for consistent error handling
func (aac *AdminAnnouncementController) handleError(c *fiber.Ctx, message string, err error) error {
	fm := fiber.Map{
		"type":    "error",
		"message": message + ": " + err.Error(),
	}
	return flash.WithError(c, fm).Redirect(constants.AdminAnnouncementsRoute)
}

// HandleAdminAnnouncements lists all announcements for management
func HandleAdminAnnouncements(c *fiber.Ctx) error {
	announcements, err := adminAnnouncementController.announcementRepo.GetAll()
	if err != nil {
		return adminAnnouncementController.handleError(c, "Fehler beim Laden der Ankündigungen", err)
	}

	return c.JSON(fiber.Map{
		"flash":         flash.Get(c),
		"announcements": announcements,
	})
}

// HandleAdminAnnouncementStore handles announcement creation
func HandleAdminAnnouncementStore(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	title := c.FormValue("title")
	content := c.FormValue("content")
	slug := c.FormValue("slug")
	published := c.FormValue("published") == "1"

	if title == "" || content == "" || slug == "" {
		fm := fiber.Map{
			"type":    "error",
			"message": "Titel, Slug und Inhalt sind erforderlich",
		}
		return flash.WithError(c, fm).Redirect(constants.AdminAnnouncementsRoute)
	}

	slugExists, err := adminAnnouncementController.announcementRepo.SlugExists(slug)
	if err != nil {
		return adminAnnouncementController.handleError(c, "Fehler beim Prüfen des Slugs", err)
	}

	if slugExists {
		// Slug already exists, append timestamp
		slug = fmt.Sprintf("%s-%d", slug, time.Now().Unix())
	}

	announcement := &models.Announcement{
		Title:     title,
		Content:   content,
		Slug:      slug,
		Published: published,
		UserID:    userID,
	}

	if err := adminAnnouncementController.announcementRepo.Create(announcement); err != nil {
		return adminAnnouncementController.handleError(c, "Fehler beim Erstellen der Ankündigung", err)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Ankündigung erfolgreich erstellt",
	}
	return flash.WithSuccess(c, fm).Redirect(constants.AdminAnnouncementsRoute)
}

// HandleAdminAnnouncementUpdate handles announcement update
func HandleAdminAnnouncementUpdate(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return c.Redirect(constants.AdminAnnouncementsRoute)
	}

	announcement, err := adminAnnouncementController.announcementRepo.GetByID(id)
	if err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Ankündigung nicht gefunden",
		}
		return flash.WithError(c, fm).Redirect(constants.AdminAnnouncementsRoute)
	}

	title := c.FormValue("title")
	content := c.FormValue("content")
	slug := c.FormValue("slug")
	published := c.FormValue("published") == "1"

	if title == "" || content == "" || slug == "" {
		fm := fiber.Map{
			"type":    "error",
			"message": "Titel, Slug und Inhalt sind erforderlich",
		}
		return flash.WithError(c, fm).Redirect(constants.AdminAnnouncementsRoute)
	}

	if slug != announcement.Slug {
		slugExists, err := adminAnnouncementController.announcementRepo.SlugExistsExceptID(slug, id)
		if err != nil {
			return adminAnnouncementController.handleError(c, "Fehler beim Prüfen des Slugs", err)
		}
		if slugExists {
			slug = fmt.Sprintf("%s-%d", slug, time.Now().Unix())
		}
	}

	announcement.Title = title
	announcement.Content = content
	announcement.Slug = slug
	announcement.Published = published

	if err := adminAnnouncementController.announcementRepo.Update(announcement); err != nil {
		return adminAnnouncementController.handleError(c, "Fehler beim Aktualisieren der Ankündigung", err)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Ankündigung erfolgreich aktualisiert",
	}
	return flash.WithSuccess(c, fm).Redirect(constants.AdminAnnouncementsRoute)
}

// HandleAdminAnnouncementDelete handles announcement deletion
func HandleAdminAnnouncementDelete(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return c.Redirect(constants.AdminAnnouncementsRoute)
	}

	if err := adminAnnouncementController.announcementRepo.Delete(id); err != nil {
		return adminAnnouncementController.handleError(c, "Fehler beim Löschen der Ankündigung", err)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Ankündigung erfolgreich gelöscht",
	}
	return flash.WithSuccess(c, fm).Redirect(constants.AdminAnnouncementsRoute)
}
