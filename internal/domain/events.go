package domain

import (
	"context"
	"time"
)

const EventUserRegistered = "user.registered"

// EventPublisher delivers keyed messages to the user events topic.
type EventPublisher interface {
	PublishMessage(ctx context.Context, key, value []byte) error
}

type UserRegisteredEvent struct {
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
