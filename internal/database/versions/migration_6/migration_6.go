package migration_6

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lot numbers turned out to be free-form and unusable for tracking, so
// batches are keyed by expiration date alone. Active batches that share a
// branch, product and expiration date are merged before the column is
// dropped; the merge is not undone on rollback.

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

type batchKey struct {
	BranchId   int
	ProductId  int
	Expiration string
}

func Migration(db *gorm.DB) error {
	if err := mergeDuplicateBatches(db); err != nil {
		return fmt.Errorf("error merging duplicate batches: %w", err)
	}

	if err := db.Migrator().DropColumn(&ProductBatch{}, "LotNumber"); err != nil {
		return fmt.Errorf("error dropping LotNumber column: %w", err)
	}

	return nil
}

func Rollback(db *gorm.DB) error {
	if err := db.Migrator().AddColumn(&ProductBatch{}, "LotNumber"); err != nil {
		return fmt.Errorf("error restoring LotNumber column: %w", err)
	}

	return nil
}

func mergeDuplicateBatches(db *gorm.DB) error {
	var batches []ProductBatch
	if err := db.Where("is_active = ?", true).
		Order("branch_id, product_id, expiration_date, created_at").
		Find(&batches).Error; err != nil {
		return fmt.Errorf("error loading active batches: %w", err)
	}

	groups := make(map[batchKey][]ProductBatch)
	for _, b := range batches {
		key := batchKey{BranchId: b.BranchId, ProductId: b.ProductId, Expiration: b.ExpirationDate.Format("2006-01-02")}
		groups[key] = append(groups[key], b)
	}

	for key, group := range groups {
		if len(group) < 2 {
			continue
		}

		total := 0
		for _, b := range group {
			total += b.Quantity
		}

		primary := group[0]
		if err := db.Model(&ProductBatch{}).
			Where("id = ?", primary.Id).
			Update("quantity", total).Error; err != nil {
			return fmt.Errorf("error updating merged batch quantity: %w", err)
		}

		duplicateIds := make([]uuid.UUID, 0, len(group)-1)
		for _, b := range group[1:] {
			duplicateIds = append(duplicateIds, b.Id)
		}

		if err := db.Where("id IN ?", duplicateIds).Delete(&ProductBatch{}).Error; err != nil {
			return fmt.Errorf("error deleting duplicate batches: %w", err)
		}

		slog.Info("merged duplicate batches", "count", len(group), "branch_id", key.BranchId, "product_id", key.ProductId, "expiration", key.Expiration)
	}

	return nil
}
