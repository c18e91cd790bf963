package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/smartfixwerk/SmartfixWerk/app/repository"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/session"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session user once per request and
// exposes it via fiber locals. Anonymous requests get an empty context.
func UserContextMiddleware(c *fiber.Ctx) error {
	userCtx := usercontext.UserContext{}

	if raw := session.GetSessionValue(c, usercontext.SessionKeyUserID); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
			userRepo := repository.GetGlobalFactory().GetUserRepository()
			if user, err := userRepo.GetByID(uint(id)); err == nil && user.IsActive {
				userCtx = usercontext.UserContext{
					UserID:     user.ID,
					Name:       user.Name,
					IsLoggedIn: true,
					IsAdmin:    user.IsAdmin(),
					Role:       user.Role,
				}
			}
		}
	}

	c.Locals(usercontext.KeyUserContext, userCtx)
	c.Locals(usercontext.KeyFromProtected, userCtx.IsLoggedIn)
	c.Locals(usercontext.KeyIsAdmin, userCtx.IsAdmin)
	c.Locals(usercontext.KeyUserID, userCtx.UserID)

	return c.Next()
}
