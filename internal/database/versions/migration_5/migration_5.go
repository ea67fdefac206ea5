package migration_5

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

type AnalyticsTimeseries struct {
	Id         int     `gorm:"primaryKey"`
	MetricName string  `gorm:"not null"`
	Value      float64 `gorm:"not null"`
	Timestamp  sql.NullTime

	BranchId  sql.NullInt32
	ProductId sql.NullInt32
}

func (AnalyticsTimeseries) TableName() string { return "analytics_timeseries" }

type BranchProduct struct {
	LowStockSince sql.NullTime
}

func Migration(db *gorm.DB) error {
	if err := db.Migrator().CreateTable(&AnalyticsTimeseries{}); err != nil {
		return fmt.Errorf("error creating analytics_timeseries table: %w", err)
	}

	if err := db.Migrator().AddColumn(&BranchProduct{}, "LowStockSince"); err != nil {
		return fmt.Errorf("error adding LowStockSince column: %w", err)
	}

	return nil
}

func Rollback(db *gorm.DB) error {
	if err := db.Migrator().DropColumn(&BranchProduct{}, "LowStockSince"); err != nil {
		return fmt.Errorf("error dropping LowStockSince column: %w", err)
	}

	if err := db.Migrator().DropTable(&AnalyticsTimeseries{}); err != nil {
		return fmt.Errorf("error dropping analytics_timeseries table: %w", err)
	}

	return nil
}
