package database

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

func UpdateReportStatus(ctx context.Context, txn *gorm.DB, reportId int, status int32) error {
	updates := map[string]any{
		"status":    sql.NullInt32{Int32: status, Valid: true},
		"last_edit": time.Now().UTC(),
	}

	if err := txn.WithContext(ctx).Model(&InvReport{Id: reportId}).Updates(updates).Error; err != nil {
		slog.Error("error updating report status", "report_id", reportId, "status", status, "error", err)
		return err
	}
	return nil
}

func MarkReportViewed(ctx context.Context, txn *gorm.DB, reportId int, userId int) error {
	if err := txn.WithContext(ctx).Model(&InvReport{Id: reportId}).
		Update("viewed_by", sql.NullInt32{Int32: int32(userId), Valid: true}).Error; err != nil {
		slog.Error("error marking report viewed", "report_id", reportId, "user_id", userId, "error", err)
		return err
	}
	return nil
}
