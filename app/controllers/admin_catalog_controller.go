package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
)

// AdminCatalogController handles repair price catalog management
type AdminCatalogController struct {
	catalogRepo repository.RepairPriceRepository
	validate    *validator.Validate
}

var adminCatalogController *AdminCatalogController

// InitializeAdminCatalogController initializes the admin catalog controller
func InitializeAdminCatalogController() {
	adminCatalogController = &AdminCatalogController{
		catalogRepo: repository.GetGlobalFactory().GetRepairPriceRepository(),
		validate:    validator.New(),
	}
}

// HandleAdminCatalog lists the whole repair price catalog
func HandleAdminCatalog(c *fiber.Ctx) error {
	rows, err := adminCatalogController.catalogRepo.GetAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch catalog")
	}
	return c.JSON(fiber.Map{"rows": rows})
}

// HandleAdminCatalogStore creates a new catalog row. Duplicate
// (manufacturer, model, repair type) triples are tolerated; they simply
// both appear as candidates in the quote flow.
func HandleAdminCatalogStore(c *fiber.Ctx) error {
	var row models.RepairPrice
	if err := c.BodyParser(&row); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}
	if err := adminCatalogController.validate.Struct(&row); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	if err := adminCatalogController.catalogRepo.Create(&row); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "create_failed", "Failed to create catalog row")
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// HandleAdminCatalogUpdate updates an existing catalog row
func HandleAdminCatalogUpdate(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "row id is required")
	}

	row, err := adminCatalogController.catalogRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Catalog row not found")
	}

	var body models.RepairPrice
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}
	if err := adminCatalogController.validate.Struct(&body); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	row.Manufacturer = body.Manufacturer
	row.Model = body.Model
	row.RepairType = body.RepairType
	row.PriceCents = body.PriceCents
	row.Description = body.Description

	if err := adminCatalogController.catalogRepo.Update(row); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "update_failed", "Failed to update catalog row")
	}
	return c.JSON(row)
}

// HandleAdminCatalogDelete removes a catalog row
func HandleAdminCatalogDelete(c *fiber.Ctx) error {
	id := parseIDParam(c)
	if id == 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "row id is required")
	}

	if err := adminCatalogController.catalogRepo.Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "delete_failed", "Failed to delete catalog row")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
