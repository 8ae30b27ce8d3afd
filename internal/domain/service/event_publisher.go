package service

import (
	"context"
)

// Application event types carried in the event's Type field.
const (
	EventApplicationCreated       = "application.created"
	EventApplicationStatusChanged = "application.status_changed"
)

// ApplicationEvent represents an application lifecycle change to be processed
// asynchronously by the notifier worker.
type ApplicationEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	Type          string `json:"type"`
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	SeekerID      string `json:"seeker_id"`
	SeekerEmail   string `json:"seeker_email"`
	SeekerName    string `json:"seeker_name"`
	EmployerEmail string `json:"employer_email"`
	Status        string `json:"status"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishApplicationEvent publishes an application event for async processing
	PublishApplicationEvent(ctx context.Context, event *ApplicationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
