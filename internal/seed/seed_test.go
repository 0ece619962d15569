package seed

import (
	"testing"

	"devconnector/internal/database"
	"devconnector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func count(t *testing.T, db *gorm.DB, model any) int {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return int(n)
}

func TestFactory_CreateProfile(t *testing.T) {
	db := newTestDB(t)
	f, err := NewFactory(db, Options{SkipBcrypt: true}, 42)
	require.NoError(t, err)

	user, err := f.CreateUser()
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(DefaultPassword)))
	assert.Contains(t, user.Avatar, "gravatar.com/avatar/")

	profile, err := f.CreateProfile(user)
	require.NoError(t, err)
	assert.NotEmpty(t, profile.Skills)
	assert.Contains(t, statuses, profile.Status)
	assert.Len(t, profile.Education, 1)

	var stored models.Profile
	require.NoError(t, db.Preload("Experience").First(&stored, profile.ID).Error)
	assert.NotEmpty(t, stored.Experience)
	assert.True(t, stored.Experience[0].Current)
}

func TestSeeder_RunAndClear(t *testing.T) {
	db := newTestDB(t)
	f, err := NewFactory(db, Options{SkipBcrypt: true, MaxDays: 7}, 7)
	require.NoError(t, err)
	s := NewSeeder(db, f)

	res, err := s.Run(5, 12)
	require.NoError(t, err)

	assert.Equal(t, 5, res.Users)
	assert.Equal(t, 12, res.Posts)
	assert.Equal(t, res.Users, count(t, db, &models.User{}))
	assert.Equal(t, res.Profiles, count(t, db, &models.Profile{}))
	assert.Equal(t, res.Likes, count(t, db, &models.Like{}))
	assert.Equal(t, res.Comments, count(t, db, &models.Comment{}))

	require.NoError(t, s.ClearAll())
	for _, m := range models.AllModels() {
		assert.Zero(t, count(t, db, m), "%T not cleared", m)
	}
}

func TestSeeder_RunNeedsUsers(t *testing.T) {
	db := newTestDB(t)
	f, err := NewFactory(db, Options{SkipBcrypt: true}, 1)
	require.NoError(t, err)

	_, err = NewSeeder(db, f).Run(0, 3)
	assert.Error(t, err)
}
