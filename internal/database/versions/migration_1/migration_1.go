package migration_1

import (
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InvReport struct {
	// JSON array of user ids that have opened the report.
	ViewedBy datatypes.JSON
}

func (InvReport) TableName() string { return "invreports" }

func Migration(db *gorm.DB) error {
	if err := db.Migrator().AddColumn(&InvReport{}, "ViewedBy"); err != nil {
		return fmt.Errorf("error adding ViewedBy column: %w", err)
	}

	return nil
}

func Rollback(db *gorm.DB) error {
	if err := db.Migrator().DropColumn(&InvReport{}, "ViewedBy"); err != nil {
		return fmt.Errorf("error dropping ViewedBy column: %w", err)
	}

	return nil
}
