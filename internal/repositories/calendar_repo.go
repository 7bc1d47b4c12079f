package repositories

import "ecolearn/internal/models"

// CalendarRepository defines the interface for calendar event storage.
type CalendarRepository interface {
	GetAll() ([]models.CalendarEvent, error)
	GetByID(id string) (*models.CalendarEvent, error)
	Create(event *models.CalendarEvent) error
	Replace(event *models.CalendarEvent) error
	Delete(id string) error
}
