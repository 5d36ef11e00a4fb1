package repositories

import (
	"context"
	"errors"

	"socialapi/models"
)

type AccountRepository struct {
	store AccountStore
}

func NewAccountRepository(store AccountStore) *AccountRepository {
	return &AccountRepository{store: store}
}

// Create a new account
func (repo *AccountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	return repo.store.Insert(ctx, account)
}

// FindByUsername returns nil when no account has this exact username.
func (repo *AccountRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	return repo.findOne(ctx, Predicate{"username": username})
}

// FindByUsernameAndPassword returns nil when the pair does not match an account.
func (repo *AccountRepository) FindByUsernameAndPassword(ctx context.Context, username, password string) (*models.Account, error) {
	return repo.findOne(ctx, Predicate{"username": username, "password": password})
}

func (repo *AccountRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return repo.store.ExistsByID(ctx, id)
}

func (repo *AccountRepository) findOne(ctx context.Context, where Predicate) (*models.Account, error) {
	account, err := repo.store.FindOne(ctx, where)
	if errors.Is(err, ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
