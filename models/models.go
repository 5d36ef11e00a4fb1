package models

// Record is a persisted row addressed by an integer primary key.
// T is the concrete record type, so WithKey can return a copy without pointers.
type Record[T any] interface {
	Key() uint
	WithKey(id uint) T
	// KeyColumn is the column name of the primary key.
	KeyColumn() string
	// Columns maps column names to values, primary key included.
	Columns() map[string]any
}

// Tables lists the models that are migrated to tables.
func Tables() []any {
	return []any{&Account{}, &Message{}}
}
