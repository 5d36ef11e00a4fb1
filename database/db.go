package database

import (
	"fmt"

	"socialapi/models"
)

// Migrate creates or updates the account and message tables.
func (db *DB) Migrate() error {
	if err := db.AutoMigrate(models.Tables()...); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}
	return nil
}
