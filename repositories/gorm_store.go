package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"socialapi/models"
)

// GormStore is a Store backed by a GORM connection. The connection should be
// opened with TranslateError so unique violations surface as ErrDuplicateKey.
type GormStore[T models.Record[T]] struct {
	db *gorm.DB
}

var _ AccountStore = (*GormStore[models.Account])(nil)
var _ MessageStore = (*GormStore[models.Message])(nil)

func NewGormStore[T models.Record[T]](db *gorm.DB) *GormStore[T] {
	return &GormStore[T]{db: db}
}

func (s *GormStore[T]) Insert(ctx context.Context, rec T) (T, error) {
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return rec, translate(err)
	}
	return rec, nil
}

func (s *GormStore[T]) FindByID(ctx context.Context, id uint) (T, error) {
	var rec T
	err := s.db.WithContext(ctx).
		Where(map[string]any{rec.KeyColumn(): id}).
		First(&rec).Error
	return rec, translate(err)
}

func (s *GormStore[T]) FindOne(ctx context.Context, where Predicate) (T, error) {
	var rec T
	err := s.db.WithContext(ctx).
		Where(map[string]any(where)).
		First(&rec).Error
	return rec, translate(err)
}

func (s *GormStore[T]) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var zero T
	var count int64
	err := s.db.WithContext(ctx).
		Model(new(T)).
		Where(map[string]any{zero.KeyColumn(): id}).
		Count(&count).Error
	return count > 0, translate(err)
}

func (s *GormStore[T]) Update(ctx context.Context, rec T) (int64, error) {
	cols := rec.Columns()
	delete(cols, rec.KeyColumn())

	res := s.db.WithContext(ctx).
		Model(new(T)).
		Where(map[string]any{rec.KeyColumn(): rec.Key()}).
		Updates(cols)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore[T]) DeleteByID(ctx context.Context, id uint) (bool, error) {
	var zero T
	res := s.db.WithContext(ctx).
		Where(map[string]any{zero.KeyColumn(): id}).
		Delete(new(T))
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore[T]) ListAll(ctx context.Context) ([]T, error) {
	var zero T
	out := []T{}
	err := s.db.WithContext(ctx).
		Order(zero.KeyColumn()).
		Find(&out).Error
	return out, translate(err)
}

func (s *GormStore[T]) ListWhere(ctx context.Context, column string, value any) ([]T, error) {
	var zero T
	out := []T{}
	err := s.db.WithContext(ctx).
		Where(map[string]any{column: value}).
		Order(zero.KeyColumn()).
		Find(&out).Error
	return out, translate(err)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	default:
		return fmt.Errorf("gorm: %w", err)
	}
}
