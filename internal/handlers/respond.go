package handlers

import (
	"errors"
	"log"

	"ecolearn/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondError writes the status matching err's kind. Unexpected errors are
// logged with action and answered with a generic message.
func respondError(c *fiber.Ctx, err error, action string) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = fiber.StatusConflict
	}

	if status == fiber.StatusInternalServerError {
		log.Printf("Error %s: %v", action, err)
		return c.Status(status).JSON(fiber.Map{
			"message": "internal server error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
	})
}

// parseBody decodes the JSON body into out, answering 400 on malformed input.
func parseBody(c *fiber.Ctx, out interface{}, action string) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		log.Printf("Error parsing %s request body: %v", action, err)
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	return true, nil
}
