package repository

import (
	"testing"
	"time"

	"devconnector/internal/database"
	"devconnector/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns a migrated in-memory SQLite database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gormDB, mock
}

func createUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, Password: "hash", Avatar: "//avatar/" + name}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createProfile(t *testing.T, db *gorm.DB, userID uint) *models.Profile {
	t.Helper()
	p := &models.Profile{UserID: userID, Status: "Developer", Skills: []string{"go"}}
	require.NoError(t, db.Create(p).Error)
	return p
}

func createPost(t *testing.T, db *gorm.DB, user *models.User, text string) *models.Post {
	t.Helper()
	p := &models.Post{UserID: user.ID, Text: text, Name: user.Name, Avatar: user.Avatar}
	require.NoError(t, db.Create(p).Error)
	return p
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}
