package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smartgym/backend-go/internal/database"
	"github.com/smartgym/backend-go/internal/database/models"
)

// NewTestDB opens a private in-memory SQLite database with the production
// migrations applied. Each call gets its own database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig(logger.Silent))
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db, database.DialectSQLite))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// SeedUser inserts an active user whose unique fields are derived from n.
func SeedUser(t *testing.T, db *gorm.DB, n int) *models.User {
	t.Helper()

	user := &models.User{
		ID:            uuid.New(),
		CognitoUserID: fmt.Sprintf("cognito-%d", n),
		FirstName:     "Ana",
		LastName:      "Pereira",
		Document:      fmt.Sprintf("%08d", n),
		Email:         fmt.Sprintf("user%d@example.com", n),
		Phone:         fmt.Sprintf("09%07d", n),
		IsActive:      true,
	}
	require.NoError(t, db.Create(user).Error)

	return user
}
