package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/constants"
)

// AdminPageController handles admin page-related HTTP requests using the
// repository pattern
type AdminPageController struct {
	pageRepo repository.PageRepository
}

var adminPageController *AdminPageController

// InitializeAdminPageController initializes the admin page controller
func InitializeAdminPageController() {
	adminPageController = &AdminPageController{
		pageRepo: repository.GetGlobalFactory().GetPageRepository(),
	}
}

// HandleAdminPages lists all pages for management
func HandleAdminPages(c *fiber.Ctx) error {
	pages, err := adminPageController.pageRepo.GetAll()
	if err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Fehler beim Laden der Seiten: " + err.Error(),
		}
		return flash.WithError(c, fm).Redirect(constants.AdminRoute)
	}

	return c.JSON(fiber.Map{
		"flash": flash.Get(c),
		"pages": pages,
	})
}

// HandleAdminPageStore handles page creation
func HandleAdminPageStore(c *fiber.Ctx) error {
	page := &models.Page{
		Title:    c.FormValue("title"),
		Slug:     c.FormValue("slug"),
		Content:  c.FormValue("content"),
		IsActive: c.FormValue("is_active") == "1",
	}

	if err := page.Validate(); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Titel, Slug und Inhalt sind erforderlich",
		}
		return flash.WithError(c, fm).Redirect(constants.AdminPagesRoute)
	}

	slugExists, err := adminPageController.pageRepo.SlugExists(page.Slug)
	if err == nil && slugExists {
		fm := fiber.Map{
			"type":    "error",
			"message": "Slug existiert bereits",
		}
		return flash.WithError(c, fm).Redirect(constants.AdminPagesRoute)
	}

	if err := adminPageController.pageRepo.Create(page); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Fehler beim Erstellen der Seite: " + err.Error(),
		}
		return flash.WithError(c, fm).Redirect(constants.AdminPagesRoute)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Seite erfolgreich erstellt",
	}
	return flash.WithSuccess(c, fm).Redirect(constants.AdminPagesRoute)
}

// HandleAdminPageUpdate handles page update
func HandleAdminPageUpdate(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return c.Redirect(constants.AdminPagesRoute)
	}

	page, err := adminPageController.pageRepo.GetByID(id)
	if err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Seite nicht gefunden",
		}
		return flash.WithError(c, fm).Redirect(constants.AdminPagesRoute)
	}

	page.Title = c.FormValue("title")
	page.Slug = c.FormValue("slug")
	page.Content = c.FormValue("content")
	page.IsActive = c.FormValue("is_active") == "1"

	if err := page.Validate(); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Titel, Slug und Inhalt sind erforderlich",
		}
		return flash.WithError(c, fm).Redirect(constants.AdminPagesRoute)
	}

	if err := adminPageController.pageRepo.Update(page); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Fehler beim Aktualisieren der Seite: " + err.Error(),
		}
		return flash.WithError(c, fm).Redirect(constants.AdminPagesRoute)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Seite erfolgreich aktualisiert",
	}
	return flash.WithSuccess(c, fm).Redirect(constants.AdminPagesRoute)
}

// HandleAdminPageDelete handles page deletion
func HandleAdminPageDelete(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return c.Redirect(constants.AdminPagesRoute)
	}

	if err := adminPageController.pageRepo.Delete(id); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Fehler beim Löschen der Seite: " + err.Error(),
		}
		return flash.WithError(c, fm).Redirect(constants.AdminPagesRoute)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Seite erfolgreich gelöscht",
	}
	return flash.WithSuccess(c, fm).Redirect(constants.AdminPagesRoute)
}
