package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin      string = "admin"
	RolePharmacist string = "pharmacist"
	RoleWholesaler string = "wholesaler"
)

type User struct {
	Id             int    `gorm:"primaryKey"`
	Username       string `gorm:"uniqueIndex;not null"`
	HashedPassword string
	Role           string `gorm:"size:20"`

	BranchId sql.NullInt32
	Branch   *Branch `gorm:"foreignKey:BranchId"`
}

type Branch struct {
	Id         int    `gorm:"primaryKey"`
	BranchName string `gorm:"not null"`
	Location   string
	// Plain bool without a default tag: gorm drops zero-value fields that
	// carry a default, which would turn inserted false into true.
	IsActive bool

	BranchProducts []BranchProduct `gorm:"foreignKey:BranchId;constraint:OnDelete:CASCADE"`
}

type Product struct {
	Id       int    `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	Category string
	Cost     float64
	Srp      float64
}

type BranchProduct struct {
	ProductId int      `gorm:"primaryKey"`
	Product   *Product `gorm:"foreignKey:ProductId"`
	BranchId  int      `gorm:"primaryKey"`

	Quantity       int
	ExpirationDate sql.NullTime `gorm:"type:date"`
	IsAvailable    *bool
	LowStockSince  sql.NullTime
}

// Values for InvReport.Status. The column is nullable: reports created
// before the status column existed have no status at all.
const (
	ReportDraft    int32 = 0
	ReportPending  int32 = 1
	ReportReviewed int32 = 2
)

type InvReport struct {
	Id       int `gorm:"primaryKey"`
	BranchId int
	Branch   *Branch `gorm:"foreignKey:BranchId"`

	DateCreated time.Time    `gorm:"type:date"`
	LastEdit    sql.NullTime `gorm:"type:date"`
	ViewedBy    sql.NullInt32
	Status      sql.NullInt32

	Items []InvReportItem `gorm:"foreignKey:InvreportId;constraint:OnDelete:CASCADE"`
}

func (InvReport) TableName() string { return "invreports" }

type InvReportItem struct {
	Id          int `gorm:"primaryKey"`
	InvreportId int
	ProductId   int
	Product     *Product `gorm:"foreignKey:ProductId"`

	Beginning   int
	Deliver     int
	Transfer    int
	SellingArea int
	PullOut     int
	Offtake     float64 `gorm:"type:numeric(53)"`
	CurrentCost float64
	CurrentSrp  sql.NullFloat64
}

func (InvReportItem) TableName() string { return "invreport_items" }

type ProductBatch struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	BranchId  int      `gorm:"not null"`
	Branch    *Branch  `gorm:"foreignKey:BranchId"`
	ProductId int      `gorm:"not null"`
	Product   *Product `gorm:"foreignKey:ProductId"`

	Quantity       int
	ExpirationDate time.Time `gorm:"type:date"`
	IsActive       bool
	CreatedAt      time.Time
}

type AnalyticsTimeseries struct {
	Id         int     `gorm:"primaryKey"`
	MetricName string  `gorm:"not null"`
	Value      float64 `gorm:"not null"`
	Timestamp  sql.NullTime

	BranchId  sql.NullInt32
	ProductId sql.NullInt32
}

func (AnalyticsTimeseries) TableName() string { return "analytics_timeseries" }

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
