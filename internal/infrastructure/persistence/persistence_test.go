package persistence

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cargolink/backend/internal/domain/community"
	"github.com/cargolink/backend/internal/domain/feedback"
	"github.com/cargolink/backend/internal/domain/identity"
	"github.com/cargolink/backend/internal/domain/insight"
	"github.com/cargolink/backend/internal/domain/surcharge"
)

// testDB opens an isolated in-memory SQLite database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	// One named in-memory database per test so connections share state
	// without tests sharing it with each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&insight.Insight{},
		&community.Post{},
		&community.Comment{},
		&feedback.Feedback{},
		&surcharge.Surcharge{},
		&identity.Editor{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
