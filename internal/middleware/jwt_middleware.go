package middleware

import (
	"log"
	"strings"

	"ecolearn/internal/models"
	"ecolearn/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthRequired.
const (
	LocalUserID = "user_id"
	LocalName   = "name"
	LocalRole   = "role"
	LocalSchool = "school"
)

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals(LocalUserID, claimString(claims, "user_id"))
		c.Locals(LocalName, claimString(claims, "name"))
		c.Locals(LocalRole, claimString(claims, "role"))
		c.Locals(LocalSchool, claimString(claims, "school"))
		return c.Next()
	}
}

// CurrentAuthor returns the caller stored by AuthRequired.
func CurrentAuthor(c *fiber.Ctx) services.Author {
	name, _ := c.Locals(LocalName).(string)
	role, _ := c.Locals(LocalRole).(string)
	school, _ := c.Locals(LocalSchool).(string)
	return services.Author{Name: name, Role: models.Role(role), School: school}
}

func claimString(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return s
}
