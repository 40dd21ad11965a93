package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/obazhan/sportclub/internal/domain"
)

// MessageService handles the direct-message feature: contact listing, history
// retrieval, and sending.
type MessageService struct {
	messages domain.MessageRepository
	users    domain.UserRepository
	media    domain.MediaStore
}

// NewMessageService creates a new MessageService.
func NewMessageService(messages domain.MessageRepository, users domain.UserRepository, media domain.MediaStore) *MessageService {
	return &MessageService{messages: messages, users: users, media: media}
}

// Contacts returns every registered user except the caller, for the chat
// sidebar.
func (s *MessageService) Contacts(ctx context.Context, selfID int64) ([]domain.User, error) {
	users, err := s.users.ListOthers(ctx, selfID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return users, nil
}

// History returns the full conversation between the caller and another user,
// oldest first. Fails with domain.ErrNotFound if the other user does not
// exist.
func (s *MessageService) History(ctx context.Context, selfID, otherID int64) ([]domain.Message, error) {
	if _, err := s.users.GetByID(ctx, otherID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get chat partner: %w", err)
	}

	messages, err := s.messages.ListBetween(ctx, selfID, otherID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

// Send stores a message from sender to receiver. Image, when present, is a
// base64 data URL uploaded through the media store before the row is
// inserted.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID int64, text, image string) (*domain.Message, error) {
	if text == "" && image == "" {
		return nil, fmt.Errorf("%w: message text or image is required", domain.ErrInvalidInput)
	}

	if _, err := s.users.GetByID(ctx, receiverID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get receiver: %w", err)
	}

	var imageURL string
	if image != "" {
		url, err := s.media.Upload(ctx, image)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				return nil, err
			}
			return nil, fmt.Errorf("upload message image: %w", err)
		}
		imageURL = url
	}

	message := &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		Image:      imageURL,
	}

	if err := s.messages.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	return message, nil
}
