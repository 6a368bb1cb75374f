package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pllus/videotube/utils"
)

// JWTUidOnly verifies a bearer token when one is sent and stores its uid in
// Locals("user_id"). Requests without a token pass through as anonymous.
func JWTUidOnly(secret string) fiber.Handler {
	key := []byte(secret)
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}

		uid, err := utils.ParseToken(strings.TrimSpace(auth[7:]), key)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("user_id", uid)
		return c.Next()
	}
}
