package services

import (
	"errors"
	"fmt"
	"time"

	"ecolearn/internal/models"
	"ecolearn/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// CalendarEventInput is the payload for creating or updating an event.
type CalendarEventInput struct {
	Title      string `json:"title" validate:"required,nonblank,max=200"`
	DateString string `json:"dateString" validate:"required,max=50"`
	Time       string `json:"time" validate:"omitempty,hhmm"`
	Location   string `json:"location" validate:"omitempty,max=500"`
	CreatedBy  string `json:"createdBy" validate:"max=255"`
}

// CalendarService manages the shared events calendar.
type CalendarService struct {
	repo      repositories.CalendarRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewCalendarService creates a new CalendarService. publisher may be nil.
func NewCalendarService(repo repositories.CalendarRepository, publisher EventPublisher) *CalendarService {
	return &CalendarService{
		repo:      repo,
		publisher: publisher,
		validate:  newValidator(),
	}
}

// ListEvents returns the whole calendar, unfiltered.
func (s *CalendarService) ListEvents() ([]models.CalendarEvent, error) {
	events, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.CalendarEvent{}
	}
	return events, nil
}

// CreateEvent validates and stores a new event.
func (s *CalendarService) CreateEvent(in CalendarEventInput) (*models.CalendarEvent, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	event := &models.CalendarEvent{
		Title:      in.Title,
		DateString: in.DateString,
		Time:       in.Time,
		Location:   in.Location,
		CreatedBy:  in.CreatedBy,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	publish(s.publisher, EventCalendarEventCreated, map[string]interface{}{
		"eventId":    event.ID,
		"title":      event.Title,
		"dateString": event.DateString,
	})
	return event, nil
}

// UpdateEvent replaces the fields of an event. Only its creator may do so.
func (s *CalendarService) UpdateEvent(id string, in CalendarEventInput) (*models.CalendarEvent, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	event, err := s.ownedEvent(id, in.CreatedBy)
	if err != nil {
		return nil, err
	}

	event.Title = in.Title
	event.DateString = in.DateString
	event.Time = in.Time
	event.Location = in.Location
	if err := s.repo.Replace(event); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event %s: %w", id, err)
	}
	return event, nil
}

// DeleteEvent removes an event. Only its creator may do so.
func (s *CalendarService) DeleteEvent(id, createdBy string) error {
	if _, err := s.ownedEvent(id, createdBy); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	return nil
}

// ownedEvent loads an event and checks that createdBy is its creator.
func (s *CalendarService) ownedEvent(id, createdBy string) (*models.CalendarEvent, error) {
	if createdBy == "" {
		return nil, ErrMissingCreator
	}
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event %s: %w", id, err)
	}
	if event.CreatedBy != createdBy {
		return nil, ErrNotEventCreator
	}
	return event, nil
}
