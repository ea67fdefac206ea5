package migration_3

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

// Reports carry their line items directly in invreport_items, so the old
// invreports<->products join table goes away. Line items additionally record
// the retail price at reporting time, and offtake moves from double precision
// to a fixed-precision decimal.

type InvReportItem struct {
	Offtake    float64 `gorm:"type:numeric(53)"`
	CurrentSrp sql.NullFloat64
}

func (InvReportItem) TableName() string { return "invreport_items" }

type InvReportItemPrev struct {
	Offtake float64 `gorm:"type:double precision"`
}

func (InvReportItemPrev) TableName() string { return "invreport_items" }

type InvReport struct {
	Status sql.NullInt32
}

func (InvReport) TableName() string { return "invreports" }

type ProductInvReport struct {
	Id          int `gorm:"primaryKey"`
	InvreportId int `gorm:"not null"`
	ProductId   int `gorm:"not null"`
}

func (ProductInvReport) TableName() string { return "product_invreport" }

func Migration(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&ProductInvReport{}); err != nil {
		return fmt.Errorf("error dropping product_invreport table: %w", err)
	}

	if err := db.Migrator().AddColumn(&InvReportItem{}, "CurrentSrp"); err != nil {
		return fmt.Errorf("error adding CurrentSrp column: %w", err)
	}

	if err := db.Migrator().AlterColumn(&InvReportItem{}, "Offtake"); err != nil {
		return fmt.Errorf("error changing Offtake column to numeric: %w", err)
	}

	if err := db.Migrator().AddColumn(&InvReport{}, "Status"); err != nil {
		return fmt.Errorf("error adding Status column: %w", err)
	}

	return nil
}

func Rollback(db *gorm.DB) error {
	if err := db.Migrator().DropColumn(&InvReportItem{}, "CurrentSrp"); err != nil {
		return fmt.Errorf("error dropping CurrentSrp column: %w", err)
	}

	if err := db.Migrator().AlterColumn(&InvReportItemPrev{}, "Offtake"); err != nil {
		return fmt.Errorf("error changing Offtake column back to double precision: %w", err)
	}

	if err := db.Migrator().DropColumn(&InvReport{}, "Status"); err != nil {
		return fmt.Errorf("error dropping Status column: %w", err)
	}

	// The join table's foreign keys are named, and sqlite can only declare
	// named constraints inline, so the DDL is per dialect.
	var ddl string
	switch db.Dialector.Name() {
	case "sqlite", "sqlite3":
		ddl = `CREATE TABLE product_invreport (
			id integer PRIMARY KEY AUTOINCREMENT,
			invreport_id integer NOT NULL REFERENCES invreports (id),
			product_id integer NOT NULL REFERENCES products (id)
		)`
	default:
		ddl = `CREATE TABLE product_invreport (
			id serial PRIMARY KEY,
			invreport_id integer NOT NULL,
			product_id integer NOT NULL,
			CONSTRAINT product_invreport_invreport_id_fkey FOREIGN KEY (invreport_id) REFERENCES invreports (id),
			CONSTRAINT product_invreport_product_id_fkey FOREIGN KEY (product_id) REFERENCES products (id)
		)`
	}

	if err := db.Exec(ddl).Error; err != nil {
		return fmt.Errorf("error recreating product_invreport table: %w", err)
	}

	return nil
}
