package migration_4

import (
	"fmt"

	"gorm.io/gorm"
)

// Unavailable products are exempt from low stock checks. NULL means the
// availability has never been set and is treated as available.

type BranchProduct struct {
	IsAvailable *bool
}

func Migration(db *gorm.DB) error {
	if err := db.Migrator().AddColumn(&BranchProduct{}, "IsAvailable"); err != nil {
		return fmt.Errorf("error adding IsAvailable column: %w", err)
	}

	return nil
}

func Rollback(db *gorm.DB) error {
	if err := db.Migrator().DropColumn(&BranchProduct{}, "IsAvailable"); err != nil {
		return fmt.Errorf("error dropping IsAvailable column: %w", err)
	}

	return nil
}
