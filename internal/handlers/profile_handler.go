package handlers

import (
	"ecolearn/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles profile updates.
type ProfileHandler struct {
	service *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service: service,
	}
}

// RegisterRoutes registers the profile routes with the Fiber app.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	router.Put("/updateProfile", h.HandleUpdateProfile)
}

// HandleUpdateProfile updates name, school and email. Role and password in the
// payload are ignored.
func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req services.UpdateProfileInput
	if ok, err := parseBody(c, &req, "update profile"); !ok {
		return err
	}

	user, err := h.service.UpdateProfile(req)
	if err != nil {
		return respondError(c, err, "updating profile")
	}
	return c.JSON(user.Profile())
}
