package services

import "log"

// Domain event types published after successful writes.
const (
	EventUserRegistered       = "user.registered"
	EventPostCreated          = "post.created"
	EventCalendarEventCreated = "calendar.event.created"
)

// EventPublisher delivers domain events to the message bus.
type EventPublisher interface {
	PublishEvent(eventType string, payload interface{}) error
}

// publish sends an event when a publisher is configured. Delivery failures are
// logged and never fail the request that produced the event.
func publish(p EventPublisher, eventType string, payload interface{}) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
