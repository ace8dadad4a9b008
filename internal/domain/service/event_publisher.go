package service

import (
	"context"
	"time"
)

// User lifecycle event types.
const (
	EventUserRegistered    = "user.registered"
	EventUserActivated     = "user.activated"
	EventUserDeactivated   = "user.deactivated"
	EventUserPasswordReset = "user.password_reset"
)

// UserEvent is published after a lifecycle transition has been committed.
type UserEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	UserID     string    `json:"user_id,omitempty"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishUserEvent(ctx context.Context, event *UserEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
