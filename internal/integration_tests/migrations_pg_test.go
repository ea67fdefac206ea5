package integrationtests

import (
	"context"
	"testing"
	"time"

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
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func setupPostgresContainer(t *testing.T, ctx context.Context) string {
	dbName, dbUser, dbPassword := "test_db", "test_user", "test_password"

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	t.Cleanup(func() {
		err := postgresContainer.Terminate(context.Background())
		require.NoError(t, err, "Failed to terminate PostgreSQL container")
	})

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get PostgreSQL connection string")

	return connStr
}

func columnDataType(t *testing.T, db *gorm.DB, table, column string) string {
	var dataType string
	err := db.Raw(
		"SELECT data_type FROM information_schema.columns WHERE table_name = ? AND column_name = ?",
		table, column,
	).Scan(&dataType).Error
	require.NoError(t, err)
	return dataType
}

// Walks the revision history up and back down against a real Postgres and
// checks the dialect-specific details sqlite cannot express: the numeric(53)
// column type and the named foreign key constraints on the recreated join
// table.
func TestMigrationHistoryPostgres(t *testing.T) {
	ctx := context.Background()
	connStr := setupPostgresContainer(t, ctx)

	db, err := database.New(connStr)
	require.NoError(t, err)

	history := []struct {
		migrate  func(*gorm.DB) error
		rollback func(*gorm.DB) error
	}{
		{migration_0.Migration, nil},
		{migration_1.Migration, migration_1.Rollback},
		{migration_2.Migration, migration_2.Rollback},
		{migration_3.Migration, migration_3.Rollback},
		{migration_4.Migration, migration_4.Rollback},
		{migration_5.Migration, migration_5.Rollback},
		{migration_6.Migration, migration_6.Rollback},
	}

	for i, step := range history {
		require.NoError(t, step.migrate(db), "migration %d", i)
	}

	assert.False(t, db.Migrator().HasTable("product_invreport"))
	assert.Equal(t, "numeric", columnDataType(t, db, "invreport_items", "offtake"))
	assert.True(t, db.Migrator().HasColumn(&database.InvReport{}, "status"))
	assert.True(t, db.Migrator().HasColumn(&database.InvReportItem{}, "current_srp"))

	var precision int
	require.NoError(t, db.Raw(
		"SELECT numeric_precision FROM information_schema.columns WHERE table_name = 'invreport_items' AND column_name = 'offtake'",
	).Scan(&precision).Error)
	assert.Equal(t, 53, precision)

	for i := len(history) - 1; i >= 1; i-- {
		require.NoError(t, history[i].rollback(db), "rollback %d", i)
	}

	assert.True(t, db.Migrator().HasTable("product_invreport"))
	assert.False(t, db.Migrator().HasColumn(&database.InvReport{}, "status"))
	assert.False(t, db.Migrator().HasColumn(&database.InvReportItem{}, "current_srp"))
	assert.Equal(t, "double precision", columnDataType(t, db, "invreport_items", "offtake"))

	var constraints []string
	require.NoError(t, db.Raw(
		"SELECT conname FROM pg_constraint WHERE conrelid = 'product_invreport'::regclass AND contype = 'f' ORDER BY conname",
	).Scan(&constraints).Error)
	assert.Equal(t, []string{"product_invreport_invreport_id_fkey", "product_invreport_product_id_fkey"}, constraints)

	var fkTargets []string
	require.NoError(t, db.Raw(
		"SELECT confrelid::regclass::text FROM pg_constraint WHERE conrelid = 'product_invreport'::regclass AND contype = 'f' ORDER BY conname",
	).Scan(&fkTargets).Error)
	assert.Equal(t, []string{"invreports", "products"}, fkTargets)
}

// The gormigrate wrapper takes a clean database straight to the final state.
func TestMigratorInitSchemaPostgres(t *testing.T) {
	ctx := context.Background()
	connStr := setupPostgresContainer(t, ctx)

	db, err := database.New(connStr)
	require.NoError(t, err)

	require.NoError(t, database.GetMigrator(db).Migrate())

	assert.False(t, db.Migrator().HasTable("product_invreport"))
	assert.True(t, db.Migrator().HasColumn(&database.InvReport{}, "status"))
	assert.True(t, db.Migrator().HasColumn(&database.BranchProduct{}, "low_stock_since"))

	// Bookkeeping is the framework's: every revision id is recorded even
	// though InitSchema skipped the individual steps.
	var applied []string
	require.NoError(t, db.Table("migrations").Order("id").Pluck("id", &applied).Error)
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6", "SCHEMA_INIT"}, applied)
}
