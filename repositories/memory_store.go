package repositories

import (
	"context"
	"sort"
	"sync"

	"socialapi/models"
)

// MemoryStore is an in-memory Store. It is safe for concurrent use and is
// meant for tests and local development.
type MemoryStore[T models.Record[T]] struct {
	mu     sync.RWMutex
	nextID uint
	rows   map[uint]T
	unique []string
}

var _ AccountStore = (*MemoryStore[models.Account])(nil)
var _ MessageStore = (*MemoryStore[models.Message])(nil)

// NewMemoryStore creates an empty store. Inserts fail with ErrDuplicateKey
// when any of the unique columns collides with an existing row.
func NewMemoryStore[T models.Record[T]](unique ...string) *MemoryStore[T] {
	return &MemoryStore[T]{
		nextID: 1,
		rows:   make(map[uint]T),
		unique: unique,
	}
}

func (s *MemoryStore[T]) Insert(_ context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id := rec.Key(); id != 0 {
		if _, exists := s.rows[id]; exists {
			return rec, ErrDuplicateKey
		}
	}
	cols := rec.Columns()
	for _, existing := range s.rows {
		other := existing.Columns()
		for _, col := range s.unique {
			if other[col] == cols[col] {
				return rec, ErrDuplicateKey
			}
		}
	}

	id := rec.Key()
	if id == 0 {
		id = s.nextID
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}
	rec = rec.WithKey(id)
	s.rows[id] = rec
	return rec, nil
}

func (s *MemoryStore[T]) FindByID(_ context.Context, id uint) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.rows[id]
	if !ok {
		return rec, ErrRecordNotFound
	}
	return rec, nil
}

func (s *MemoryStore[T]) FindOne(_ context.Context, where Predicate) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.sortedLocked() {
		if matches(rec.Columns(), where) {
			return rec, nil
		}
	}
	var zero T
	return zero, ErrRecordNotFound
}

func (s *MemoryStore[T]) ExistsByID(_ context.Context, id uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.rows[id]
	return ok, nil
}

func (s *MemoryStore[T]) Update(_ context.Context, rec T) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[rec.Key()]; !ok {
		return 0, nil
	}
	s.rows[rec.Key()] = rec
	return 1, nil
}

func (s *MemoryStore[T]) DeleteByID(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}

func (s *MemoryStore[T]) ListAll(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedLocked(), nil
}

func (s *MemoryStore[T]) ListWhere(_ context.Context, column string, value any) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []T{}
	for _, rec := range s.sortedLocked() {
		if rec.Columns()[column] == value {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *MemoryStore[T]) sortedLocked() []T {
	out := make([]T, 0, len(s.rows))
	for _, rec := range s.rows {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

func matches(cols map[string]any, where Predicate) bool {
	for col, want := range where {
		if cols[col] != want {
			return false
		}
	}
	return true
}
