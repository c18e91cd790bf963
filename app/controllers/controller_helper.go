package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam parses the numeric :id route parameter, returning 0 when
// it is missing or malformed
func parseIDParam(c *fiber.Ctx) uint {
	idParam := c.Params("id")
	if idParam == "" {
		return 0
	}
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// jsonError writes a uniform JSON error response
func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}
