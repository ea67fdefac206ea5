package migration_2

import (
	"database/sql"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Only a single reviewer ever looks at a report, so the viewed_by array is
// replaced with one nullable integer. Existing values are not carried over.

type InvReport struct {
	ViewedBy sql.NullInt32
}

func (InvReport) TableName() string { return "invreports" }

type InvReportPrev struct {
	ViewedBy datatypes.JSON
}

func (InvReportPrev) TableName() string { return "invreports" }

func Migration(db *gorm.DB) error {
	if err := db.Migrator().DropColumn(&InvReportPrev{}, "ViewedBy"); err != nil {
		return fmt.Errorf("error dropping array ViewedBy column: %w", err)
	}

	if err := db.Migrator().AddColumn(&InvReport{}, "ViewedBy"); err != nil {
		return fmt.Errorf("error adding integer ViewedBy column: %w", err)
	}

	return nil
}

func Rollback(db *gorm.DB) error {
	if err := db.Migrator().DropColumn(&InvReport{}, "ViewedBy"); err != nil {
		return fmt.Errorf("error dropping integer ViewedBy column: %w", err)
	}

	if err := db.Migrator().AddColumn(&InvReportPrev{}, "ViewedBy"); err != nil {
		return fmt.Errorf("error restoring array ViewedBy column: %w", err)
	}

	return nil
}
