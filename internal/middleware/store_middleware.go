package middleware

import "github.com/gofiber/fiber/v2"

// StoreUnavailable answers every request with a 500 without calling the next
// handler. It guards store-backed routes when the database is not configured.
func StoreUnavailable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "database configuration missing",
		})
	}
}
