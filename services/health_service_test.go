package services

import (
	"testing"
	"time"

	"backend/config"
	"backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	require.NoError(t, config.SeedBadges(db))
	return db
}

func testUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Username: "tester",
		Password: "irrelevant-hash",
		Age:      30,
		Gender:   "female",
		WeightKg: 62,
		HeightCm: 168,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestUpsertDayRoundTrip(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	svc := NewHealthService(db)

	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.Local)
	_, err := svc.UpsertDay(user.ID, HealthInput{Date: date, Steps: 8000, Sleep: 7.5, HeartRate: 60, CaloriesBurned: 400})
	require.NoError(t, err)

	// re-log the same date with different values
	_, err = svc.UpsertDay(user.ID, HealthInput{Date: date, Steps: 9500, Sleep: 6.0, HeartRate: 65, CaloriesBurned: 500, WaterML: 2000})
	require.NoError(t, err)

	var rows []models.HealthData
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&rows).Error)
	require.Len(t, rows, 1, "upsert must not duplicate the (user, date) record")
	assert.Equal(t, 9500, rows[0].Steps)
	assert.Equal(t, 6.0, rows[0].Sleep)
	assert.Equal(t, 2000, rows[0].WaterML)
}

func TestUpsertDayRejectsNegativeValues(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	svc := NewHealthService(db)

	_, err := svc.UpsertDay(user.ID, HealthInput{Date: time.Now(), Steps: -1})
	assert.Error(t, err)

	var count int64
	db.Model(&models.HealthData{}).Count(&count)
	assert.Zero(t, count, "a rejected log must not change state")
}

func TestUpsertFirstDayAwardsBadge(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	svc := NewHealthService(db)

	_, err := svc.UpsertDay(user.ID, HealthInput{Date: time.Now(), Steps: 100})
	require.NoError(t, err)

	var got models.User
	require.NoError(t, db.Preload("Badges").First(&got, user.ID).Error)
	require.Len(t, got.Badges, 1)
	assert.Equal(t, "First Steps", got.Badges[0].Name)
}

func TestSimulateNextDayAdvances(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	svc := NewHealthService(db)

	first, err := svc.SimulateNextDay(user.ID)
	require.NoError(t, err)
	second, err := svc.SimulateNextDay(user.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Date.AddDate(0, 0, 1), second.Date)
	assert.GreaterOrEqual(t, first.Steps, 4000)
	assert.LessOrEqual(t, first.Steps, 12000)
	assert.GreaterOrEqual(t, first.Sleep, 6.0)
	assert.LessOrEqual(t, first.Sleep, 9.0)
}

func TestListRangeOrdersAscending(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	svc := NewHealthService(db)

	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)
	for _, offset := range []int{2, 0, 1} { // insert out of order
		_, err := svc.UpsertDay(user.ID, HealthInput{Date: base.AddDate(0, 0, offset), Steps: 1000 * (offset + 1)})
		require.NoError(t, err)
	}

	rows, err := svc.ListRange(user.ID, base, base.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].Date.Before(rows[1].Date))
	assert.True(t, rows[1].Date.Before(rows[2].Date))
}
