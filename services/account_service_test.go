package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"socialapi/models"
	"socialapi/repositories"
	"socialapi/repositories/mocks"
)

func newAccountService() *AccountService {
	store := repositories.NewMemoryStore[models.Account]("username")
	return NewAccountService(repositories.NewAccountRepository(store))
}

func TestAccountService_MeetsRequirements(t *testing.T) {
	svc := newAccountService()

	cases := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid", "alice", "pass", true},
		{"empty username", "", "password", false},
		{"blank username", "   ", "password", false},
		{"short password", "alice", "abc", false},
		{"empty password", "alice", "", false},
		{"multibyte short password", "alice", "pé€", false},
		{"multibyte password", "alice", "pé€x", true},
		{"no-break space username", "\u00a0", "password", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, svc.MeetsRequirements(tc.username, tc.password))
		})
	}
}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("should register and then reject the same username", func(t *testing.T) {
		req := require.New(t)
		svc := newAccountService()

		created, err := svc.Register(ctx, models.Account{Username: "alice", Password: "pass1"})
		req.NoError(err)
		req.Equal(models.Account{ID: 1, Username: "alice", Password: "pass1"}, created)

		_, err = svc.Register(ctx, models.Account{Username: "alice", Password: "other"})
		req.ErrorIs(err, ErrDuplicateUsername)
		req.Equal("Username already exists in the database", err.Error())
	})

	t.Run("should treat usernames as case sensitive", func(t *testing.T) {
		req := require.New(t)
		svc := newAccountService()

		_, err := svc.Register(ctx, models.Account{Username: "alice", Password: "pass1"})
		req.NoError(err)
		_, err = svc.Register(ctx, models.Account{Username: "Alice", Password: "pass1"})
		req.NoError(err)
	})

	t.Run("should reject invalid credentials regardless of store state", func(t *testing.T) {
		req := require.New(t)
		svc := newAccountService()

		_, err := svc.Register(ctx, models.Account{Username: "alice", Password: "pass1"})
		req.NoError(err)

		for _, acct := range []models.Account{
			{Username: "", Password: "password"},
			{Username: "bob", Password: "abc"},
			{Username: "alice", Password: "abc"},
		} {
			_, err := svc.Register(ctx, acct)
			req.ErrorIs(err, ErrInvalidCredentials)
			req.Equal("Invalid credentials", err.Error())
		}
	})

	t.Run("should ignore a client supplied id", func(t *testing.T) {
		req := require.New(t)
		svc := newAccountService()

		created, err := svc.Register(ctx, models.Account{ID: 42, Username: "alice", Password: "pass1"})
		req.NoError(err)
		req.Equal(uint(1), created.ID)
	})
}

func TestAccountService_Register_StoreInteractions(t *testing.T) {
	ctx := context.Background()

	t.Run("should never insert when requirements fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore[models.Account](ctrl)
		svc := NewAccountService(repositories.NewAccountRepository(store))

		store.EXPECT().FindOne(gomock.Any(), gomock.Any()).Times(0)
		store.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Register(ctx, models.Account{Username: "alice", Password: "123"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("should never insert a duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore[models.Account](ctrl)
		svc := NewAccountService(repositories.NewAccountRepository(store))

		store.EXPECT().
			FindOne(gomock.Any(), repositories.Predicate{"username": "alice"}).
			Return(models.Account{ID: 1, Username: "alice", Password: "pass1"}, nil)
		store.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Register(ctx, models.Account{Username: "alice", Password: "other"})
		require.ErrorIs(t, err, ErrDuplicateUsername)
	})

	t.Run("should map a unique index violation to a duplicate username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore[models.Account](ctrl)
		svc := NewAccountService(repositories.NewAccountRepository(store))

		store.EXPECT().
			FindOne(gomock.Any(), gomock.Any()).
			Return(models.Account{}, repositories.ErrRecordNotFound)
		store.EXPECT().
			Insert(gomock.Any(), models.Account{Username: "alice", Password: "pass1"}).
			Return(models.Account{}, repositories.ErrDuplicateKey)

		_, err := svc.Register(ctx, models.Account{Username: "alice", Password: "pass1"})
		require.ErrorIs(t, err, ErrDuplicateUsername)
	})

	t.Run("should surface store failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore[models.Account](ctrl)
		svc := NewAccountService(repositories.NewAccountRepository(store))
		boom := errors.New("connection refused")

		store.EXPECT().
			FindOne(gomock.Any(), gomock.Any()).
			Return(models.Account{}, boom)

		_, err := svc.Register(ctx, models.Account{Username: "alice", Password: "pass1"})
		require.ErrorIs(t, err, boom)
		require.NotErrorIs(t, err, ErrDuplicateUsername)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	svc := newAccountService()

	created, err := svc.Register(ctx, models.Account{Username: "alice", Password: "pass1"})
	require.NoError(t, err)

	t.Run("should return the account for matching credentials", func(t *testing.T) {
		account, err := svc.Login(ctx, "alice", "pass1")
		require.NoError(t, err)
		require.Equal(t, created, account)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "wrong")
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("should reject an unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, "bob", "pass1")
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("should match the password case sensitively", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "PASS1")
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}
