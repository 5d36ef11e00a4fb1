package repositories

import (
	"context"
	"errors"

	"socialapi/models"
)

type MessageRepository struct {
	store MessageStore
}

func NewMessageRepository(store MessageStore) *MessageRepository {
	return &MessageRepository{store: store}
}

func (repo *MessageRepository) Create(ctx context.Context, message models.Message) (models.Message, error) {
	return repo.store.Insert(ctx, message)
}

// FindByID returns nil when the message does not exist.
func (repo *MessageRepository) FindByID(ctx context.Context, id uint) (*models.Message, error) {
	message, err := repo.store.FindByID(ctx, id)
	if errors.Is(err, ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (repo *MessageRepository) FindAll(ctx context.Context) ([]models.Message, error) {
	return repo.store.ListAll(ctx)
}

func (repo *MessageRepository) FindByPostedBy(ctx context.Context, accountID uint) ([]models.Message, error) {
	return repo.store.ListWhere(ctx, "posted_by", accountID)
}

func (repo *MessageRepository) Update(ctx context.Context, message models.Message) (int64, error) {
	return repo.store.Update(ctx, message)
}

// DeleteByID reports whether a message was removed.
func (repo *MessageRepository) DeleteByID(ctx context.Context, id uint) (bool, error) {
	return repo.store.DeleteByID(ctx, id)
}
