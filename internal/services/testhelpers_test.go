package services

import (
	"testing"
	"time"

	"nbhd_backend/database"
	"nbhd_backend/internal/models"
	"nbhd_backend/pkg/apperrors"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: "not-a-real-hash",
		DateJoined:   time.Now(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestNeighborhood(t *testing.T, db *gorm.DB, name, city, state string) *models.Neighborhood {
	t.Helper()

	neighborhood := &models.Neighborhood{
		Name:         name,
		City:         city,
		State:        state,
		Latitude:     41.79,
		Longitude:    -87.59,
		CrimeRate:    12.5,
		AveragePrice: 350000,
		AverageAge:   33,
	}
	require.NoError(t, db.Create(neighborhood).Error)
	return neighborhood
}

func httpCodeOf(t *testing.T, err error) int {
	t.Helper()

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	return appErr.HTTPCode
}
