package repositories

import (
	"context"
	"errors"

	"socialapi/models"
)

var (
	// ErrRecordNotFound is returned when a single-record lookup matches nothing.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Predicate is a conjunction of column equality conditions.
type Predicate map[string]any

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_store.go -package=mocks

// Store persists records of one type keyed by an integer primary key.
type Store[T models.Record[T]] interface {
	// Insert stores rec and returns it with its assigned key.
	Insert(ctx context.Context, rec T) (T, error)
	FindByID(ctx context.Context, id uint) (T, error)
	// FindOne returns the first record matching every condition in where.
	FindOne(ctx context.Context, where Predicate) (T, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	// Update overwrites the record with rec's key and reports the rows affected.
	Update(ctx context.Context, rec T) (int64, error)
	// DeleteByID reports whether a row was removed.
	DeleteByID(ctx context.Context, id uint) (bool, error)
	ListAll(ctx context.Context) ([]T, error)
	ListWhere(ctx context.Context, column string, value any) ([]T, error)
}

type AccountStore = Store[models.Account]

type MessageStore = Store[models.Message]
