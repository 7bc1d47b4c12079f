package handlers

import (
	"ecolearn/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CalendarHandler handles HTTP requests for the events calendar.
type CalendarHandler struct {
	service *services.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(service *services.CalendarService) *CalendarHandler {
	return &CalendarHandler{
		service: service,
	}
}

// RegisterRoutes registers the calendar routes with the Fiber app.
func (h *CalendarHandler) RegisterRoutes(router fiber.Router) {
	calendarRoutes := router.Group("/CalendarHandler")
	calendarRoutes.Get("/", h.HandleListEvents)
	calendarRoutes.Post("/", h.HandleCreateEvent)
	calendarRoutes.Put("/:id", h.HandleUpdateEvent)
	calendarRoutes.Delete("/:id", h.HandleDeleteEvent)
}

// HandleListEvents returns the whole calendar.
func (h *CalendarHandler) HandleListEvents(c *fiber.Ctx) error {
	events, err := h.service.ListEvents()
	if err != nil {
		return respondError(c, err, "listing events")
	}
	return c.JSON(events)
}

// HandleCreateEvent validates and stores a new event.
func (h *CalendarHandler) HandleCreateEvent(c *fiber.Ctx) error {
	var req services.CalendarEventInput
	if ok, err := parseBody(c, &req, "create event"); !ok {
		return err
	}
	event, err := h.service.CreateEvent(req)
	if err != nil {
		return respondError(c, err, "creating event")
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// HandleUpdateEvent replaces an event's fields when createdBy matches its creator.
func (h *CalendarHandler) HandleUpdateEvent(c *fiber.Ctx) error {
	var req services.CalendarEventInput
	if ok, err := parseBody(c, &req, "update event"); !ok {
		return err
	}
	event, err := h.service.UpdateEvent(c.Params("id"), req)
	if err != nil {
		return respondError(c, err, "updating event")
	}
	return c.JSON(event)
}

// HandleDeleteEvent deletes an event when ?createdBy= matches its creator.
func (h *CalendarHandler) HandleDeleteEvent(c *fiber.Ctx) error {
	eventID := c.Params("id")
	if err := h.service.DeleteEvent(eventID, c.Query("createdBy")); err != nil {
		return respondError(c, err, "deleting event")
	}
	return c.JSON(fiber.Map{
		"message": "Event deleted successfully",
		"id":      eventID,
	})
}
