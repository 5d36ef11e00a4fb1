package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"socialapi/models"
	"socialapi/repositories"
)

// AccountService registers accounts and checks login credentials.
type AccountService struct {
	repo *repositories.AccountRepository
}

func NewAccountService(repo *repositories.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// MeetsRequirements reports whether the username is not blank and the
// password has at least MinPasswordLength characters.
func (s *AccountService) MeetsRequirements(username, password string) bool {
	return !isBlank(username) && validPassword(password)
}

func (s *AccountService) IsDuplicateUsername(ctx context.Context, username string) (bool, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("find account by username: %w", err)
	}
	return account != nil, nil
}

// Register stores a new account. It fails with ErrInvalidCredentials or
// ErrDuplicateUsername without writing anything.
func (s *AccountService) Register(ctx context.Context, account models.Account) (models.Account, error) {
	if !s.MeetsRequirements(account.Username, account.Password) {
		return models.Account{}, ErrInvalidCredentials
	}

	duplicate, err := s.IsDuplicateUsername(ctx, account.Username)
	if err != nil {
		return models.Account{}, err
	}
	if duplicate {
		return models.Account{}, ErrDuplicateUsername
	}

	created, err := s.repo.Create(ctx, account.WithKey(0))
	if errors.Is(err, repositories.ErrDuplicateKey) {
		// lost a race with a concurrent registration
		return models.Account{}, ErrDuplicateUsername
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("create account: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": created.ID,
		"username":   created.Username,
	}).Info("Account registered")
	return created, nil
}

func (s *AccountService) CredentialsExist(ctx context.Context, username, password string) (bool, error) {
	account, err := s.repo.FindByUsernameAndPassword(ctx, username, password)
	if err != nil {
		return false, fmt.Errorf("find account by credentials: %w", err)
	}
	return account != nil, nil
}

// Login returns the account matching both username and password, or
// ErrUnauthorized.
func (s *AccountService) Login(ctx context.Context, username, password string) (models.Account, error) {
	ok, err := s.CredentialsExist(ctx, username, password)
	if err != nil {
		return models.Account{}, err
	}
	if !ok {
		return models.Account{}, ErrUnauthorized
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return models.Account{}, fmt.Errorf("find account by username: %w", err)
	}
	if account == nil {
		return models.Account{}, ErrUnauthorized
	}
	return *account, nil
}
