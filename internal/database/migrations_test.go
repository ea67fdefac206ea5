package database_test

import (
	"sort"
	"testing"

	"inventory-backend/internal/database"
	"inventory-backend/internal/database/versions/migration_0"
	"inventory-backend/internal/database/versions/migration_1"
	"inventory-backend/internal/database/versions/migration_2"
	"inventory-backend/internal/database/versions/migration_3"
	"inventory-backend/internal/database/versions/migration_4"
	"inventory-backend/internal/database/versions/migration_5"
	"inventory-backend/internal/database/versions/migration_6"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestMigrateCleanDatabase(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, database.GetMigrator(db).Migrate())

	for _, table := range []string{"users", "branches", "products", "branch_products", "invreports", "invreport_items", "product_batches", "analytics_timeseries", "expenses", "suppliers"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	// A clean database goes straight to the final state: the join table the
	// revisions dropped never exists and the newest columns are present.
	assert.False(t, db.Migrator().HasTable("product_invreport"))
	assert.True(t, db.Migrator().HasColumn(&database.InvReport{}, "status"))
	assert.True(t, db.Migrator().HasColumn(&database.InvReport{}, "viewed_by"))
	assert.True(t, db.Migrator().HasColumn(&database.InvReportItem{}, "current_srp"))
	assert.True(t, db.Migrator().HasColumn(&database.BranchProduct{}, "is_available"))
	assert.True(t, db.Migrator().HasColumn(&database.BranchProduct{}, "low_stock_since"))
	assert.False(t, db.Migrator().HasColumn(&database.ProductBatch{}, "lot_number"))
}

type migrationPair struct {
	migrate  func(*gorm.DB) error
	rollback func(*gorm.DB) error
}

// Every revision after the baseline must be an exact schema inverse of its
// rollback: walking the whole history up and back down lands on the baseline
// table and column shape.
func TestMigrationHistoryUpDownRestoresBaseline(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, migration_0.Migration(db))
	baseline := snapshotSchema(t, db)

	history := []migrationPair{
		{migration_1.Migration, migration_1.Rollback},
		{migration_2.Migration, migration_2.Rollback},
		{migration_3.Migration, migration_3.Rollback},
		{migration_4.Migration, migration_4.Rollback},
		{migration_5.Migration, migration_5.Rollback},
		{migration_6.Migration, migration_6.Rollback},
	}

	for i, step := range history {
		require.NoError(t, step.migrate(db), "migration %d", i+1)
	}

	upgraded := snapshotSchema(t, db)
	assert.NotContains(t, upgraded, "product_invreport")
	assert.Contains(t, upgraded, "analytics_timeseries")

	for i := len(history) - 1; i >= 0; i-- {
		require.NoError(t, history[i].rollback(db), "rollback %d", i+1)
	}

	assert.Equal(t, baseline, snapshotSchema(t, db))
}

func snapshotSchema(t *testing.T, db *gorm.DB) map[string][]string {
	tables, err := db.Migrator().GetTables()
	require.NoError(t, err)

	snapshot := make(map[string][]string)
	for _, table := range tables {
		if table == "sqlite_sequence" || table == "migrations" {
			continue
		}
		columns, err := db.Migrator().ColumnTypes(table)
		require.NoError(t, err)

		names := make([]string, 0, len(columns))
		for _, c := range columns {
			names = append(names, c.Name())
		}
		sort.Strings(names)
		snapshot[table] = names
	}
	return snapshot
}
