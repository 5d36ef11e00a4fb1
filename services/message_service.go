package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"socialapi/models"
	"socialapi/repositories"
)

// MessageService validates and persists messages.
type MessageService struct {
	messages *repositories.MessageRepository
	accounts *repositories.AccountRepository
}

func NewMessageService(messages *repositories.MessageRepository, accounts *repositories.AccountRepository) *MessageService {
	return &MessageService{messages: messages, accounts: accounts}
}

// MeetsRequirements reports whether text is not blank and at most
// MaxMessageLength characters.
func (s *MessageService) MeetsRequirements(text string) bool {
	return validMessageText(text)
}

// PostedByCheck reports whether the message author exists.
func (s *MessageService) PostedByCheck(ctx context.Context, message models.Message) (bool, error) {
	exists, err := s.accounts.ExistsByID(ctx, message.PostedBy)
	if err != nil {
		return false, fmt.Errorf("check author %d: %w", message.PostedBy, err)
	}
	return exists, nil
}

// Submit stores message and returns it with its id. A rejected message is
// returned unchanged together with ErrRejected.
func (s *MessageService) Submit(ctx context.Context, message models.Message) (models.Message, error) {
	if !s.MeetsRequirements(message.MessageText) {
		return message, ErrRejected
	}
	ok, err := s.PostedByCheck(ctx, message)
	if err != nil {
		return message, err
	}
	if !ok {
		return message, ErrRejected
	}

	created, err := s.messages.Create(ctx, message.WithKey(0))
	if err != nil {
		return message, fmt.Errorf("create message: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"message_id": created.ID,
		"posted_by":  created.PostedBy,
	}).Info("Message posted")
	return created, nil
}

func (s *MessageService) GetAll(ctx context.Context) ([]models.Message, error) {
	messages, err := s.messages.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

// GetByID returns nil when the message does not exist.
func (s *MessageService) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find message %d: %w", id, err)
	}
	return message, nil
}

// DeleteByID returns the number of messages removed, 0 or 1.
func (s *MessageService) DeleteByID(ctx context.Context, id uint) (int64, error) {
	deleted, err := s.messages.DeleteByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete message %d: %w", id, err)
	}
	if !deleted {
		return 0, nil
	}

	logrus.WithField("message_id", id).Info("Message deleted")
	return 1, nil
}

// UpdateText replaces the text of an existing message and returns the number
// of rows updated. Missing, blank or oversized text and unknown ids are
// rejected.
func (s *MessageService) UpdateText(ctx context.Context, id uint, text *string) (int64, error) {
	if text == nil || !validMessageText(*text) {
		return 0, ErrRejected
	}

	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("find message %d: %w", id, err)
	}
	if message == nil {
		return 0, ErrRejected
	}

	message.MessageText = *text
	rows, err := s.messages.Update(ctx, *message)
	if err != nil {
		return 0, fmt.Errorf("update message %d: %w", id, err)
	}
	if rows == 0 {
		// deleted between the lookup and the update
		return 0, ErrRejected
	}

	logrus.WithField("message_id", id).Info("Message updated")
	return rows, nil
}

func (s *MessageService) ListByAccount(ctx context.Context, accountID uint) ([]models.Message, error) {
	messages, err := s.messages.FindByPostedBy(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list messages by account %d: %w", accountID, err)
	}
	return messages, nil
}
