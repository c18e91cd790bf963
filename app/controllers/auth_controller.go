package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/smartfixwerk/SmartfixWerk/app/repository"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/constants"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/session"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/usercontext"
)

// HandleLoginPage returns the login state plus any flash message from a
// failed attempt
func HandleLoginPage(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if userCtx.IsLoggedIn {
		return c.Redirect(constants.AdminRoute, fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{
		"logged_in": false,
		"flash":     flash.Get(c),
	})
}

// HandleLoginPost authenticates a back-office operator
func HandleLoginPost(c *fiber.Ctx) error {
	email := strings.TrimSpace(strings.ToLower(c.FormValue("email")))
	password := c.FormValue("password")

	if email == "" || password == "" {
		fm := fiber.Map{
			"type":    "error",
			"message": "Email und Passwort sind erforderlich",
		}
		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByEmail(email)
	if err != nil || !user.CheckPassword(password) || !user.IsActive {
		fm := fiber.Map{
			"type":    "error",
			"message": "Ungültige Zugangsdaten",
		}
		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	if err := session.SetSessionValue(c, usercontext.SessionKeyUserID, fmt.Sprintf("%d", user.ID)); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Anmeldung fehlgeschlagen: " + err.Error(),
		}
		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	// The timestamp is informational; login succeeds regardless.
	now := time.Now()
	user.LastLoginAt = &now
	_ = userRepo.Update(user)

	return c.Redirect(constants.AdminRoute, fiber.StatusSeeOther)
}

// HandleLogout clears the operator session
func HandleLogout(c *fiber.Ctx) error {
	_ = session.DeleteSessionValue(c, usercontext.SessionKeyUserID)
	return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
}
