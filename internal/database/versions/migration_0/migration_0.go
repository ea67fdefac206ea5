package migration_0

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Baseline schema as it existed before versioned migrations were introduced.
// The structs here are frozen copies; later revisions must not reuse them.

type User struct {
	Id             int    `gorm:"primaryKey"`
	Username       string `gorm:"uniqueIndex;not null"`
	HashedPassword string
	Role           string `gorm:"size:20"`
	BranchId       sql.NullInt32
}

type Branch struct {
	Id         int    `gorm:"primaryKey"`
	BranchName string `gorm:"not null"`
	Location   string
	IsActive   bool
}

type Product struct {
	Id       int    `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	Category string
	Cost     float64
	Srp      float64
}

type BranchProduct struct {
	ProductId      int `gorm:"primaryKey"`
	BranchId       int `gorm:"primaryKey"`
	Quantity       int
	ExpirationDate sql.NullTime `gorm:"type:date"`
}

type InvReport struct {
	Id          int `gorm:"primaryKey"`
	BranchId    int
	DateCreated time.Time    `gorm:"type:date"`
	LastEdit    sql.NullTime `gorm:"type:date"`
}

func (InvReport) TableName() string { return "invreports" }

type InvReportItem struct {
	Id          int `gorm:"primaryKey"`
	InvreportId int
	ProductId   int
	Beginning   int
	Deliver     int
	Transfer    int
	SellingArea int
	PullOut     int
	Offtake     float64 `gorm:"type:double precision"`
	CurrentCost float64
}

func (InvReportItem) TableName() string { return "invreport_items" }

type ProductBatch struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	BranchId       int       `gorm:"not null"`
	ProductId      int       `gorm:"not null"`
	LotNumber      string
	Quantity       int
	ExpirationDate time.Time `gorm:"type:date"`
	IsActive       bool
	CreatedAt      time.Time
}

type Expense struct {
	Id          int    `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Type        string
	Amount      float64
	DateCreated time.Time `gorm:"type:date"`
	BranchId    sql.NullInt32
	Description string
	Vendor      string
}

type Supplier struct {
	Id      int    `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Phone   string
	Email   string
	Address string
}

func Migration(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Branch{}, &User{}, &Product{}, &BranchProduct{}, &InvReport{}, &InvReportItem{}, &ProductBatch{}, &Expense{}, &Supplier{},
	); err != nil {
		return fmt.Errorf("error creating baseline tables: %w", err)
	}

	// The invreports<->products join table carries named foreign key
	// constraints, which sqlite can only declare inline at creation time.
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
		return fmt.Errorf("error creating product_invreport table: %w", err)
	}

	return nil
}
