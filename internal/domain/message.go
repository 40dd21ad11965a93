package domain

import (
	"context"
	"time"
)

// Message is a direct chat message between two users. Image is the URL of an
// optional attachment, empty when the message is text-only.
type Message struct {
	ID         int64
	SenderID   int64
	ReceiverID int64
	Text       string
	Image      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MessageRepository defines persistence operations for chat messages.
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	// ListBetween returns every message exchanged between the two users,
	// in both directions, oldest first.
	ListBetween(ctx context.Context, userA, userB int64) ([]Message, error)
}
