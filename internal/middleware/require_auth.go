package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAuth rejects requests whose user_id is missing or not an ObjectID.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := UIDObjectID(c); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}
