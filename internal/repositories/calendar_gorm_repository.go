package repositories

import (
	"errors"
	"fmt"

	"ecolearn/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCalendarRepository is a GORM implementation of CalendarRepository.
type GORMCalendarRepository struct {
	db *gorm.DB
}

// NewGORMCalendarRepository creates a new instance of GORMCalendarRepository.
func NewGORMCalendarRepository(db *gorm.DB) *GORMCalendarRepository {
	return &GORMCalendarRepository{
		db: db,
	}
}

// GetAll returns the whole calendar in creation order. It never returns nil on success.
func (r *GORMCalendarRepository) GetAll() ([]models.CalendarEvent, error) {
	events := []models.CalendarEvent{}
	if err := r.db.Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to get calendar events: %w", err)
	}
	return events, nil
}

// GetByID retrieves a single event.
func (r *GORMCalendarRepository) GetByID(id string) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	if err := r.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("event with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get event by ID %s: %w", id, err)
	}
	return &event, nil
}

// Create inserts an event, generating its ID when empty.
func (r *GORMCalendarRepository) Create(event *models.CalendarEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// Replace overwrites an existing event.
func (r *GORMCalendarRepository) Replace(event *models.CalendarEvent) error {
	return replace(r.db, &models.CalendarEvent{}, event.ID, event)
}

// Delete removes an event by its ID.
func (r *GORMCalendarRepository) Delete(id string) error {
	res := r.db.Delete(&models.CalendarEvent{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("event with ID %s for deletion: %w", id, ErrNotFound)
	}
	return nil
}
