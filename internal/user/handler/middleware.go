package handler

import (
	"strings"

	"github.com/andersevenrud/userbase/internal/user/domain"
	"github.com/andersevenrud/userbase/internal/user/service"
	"github.com/gofiber/fiber/v2"
)

const userLocalsKey = "user"

// RequireAuth validates the bearer access token on every protected request
// and attaches the resolved user to the request context. Rejections carry no
// detail about why the token was refused.
func RequireAuth(tokenService service.TokenGenerator, users domain.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reject := func() error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		header := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return reject()
		}

		claims, err := tokenService.Verify(parts[1])
		if err != nil {
			return reject()
		}

		user, err := users.GetByGUID(c.Context(), claims.GUID)
		if err != nil || user == nil {
			return reject()
		}

		c.Locals(userLocalsKey, user)

		return c.Next()
	}
}

// CurrentUser returns the user attached by RequireAuth.
func CurrentUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(userLocalsKey).(*domain.User)
	return user
}
