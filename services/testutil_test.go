package services

import (
	"testing"

	"property-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database migrated with the full model
// set. Connections are pinned to one so every query sees the same memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	err = db.AutoMigrate(
		&models.Room{},
		&models.Tenant{},
		&models.Booking{},
		&models.BudgetEntry{},
		&models.MaintenanceRequest{},
		&models.FormSubmission{},
		&models.FormDefinition{},
		&models.CalendarEvent{},
		&models.AppSetting{},
		&models.JobRun{},
		&models.PropertySetting{},
		&models.Admin{},
	)
	require.NoError(t, err)
	return db
}

func createTestRoom(t *testing.T, db *gorm.DB, number string, monthly, daily float64) models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber:  number,
		Status:      models.RoomStatusVacant,
		RentalPrice: monthly,
		DailyRate:   daily,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func createTestTenant(t *testing.T, db *gorm.DB, room models.Room, name, email string) models.Tenant {
	t.Helper()
	tenant := models.Tenant{
		RoomID:   room.ID,
		FullName: name,
		Email:    email,
		Active:   true,
	}
	require.NoError(t, db.Create(&tenant).Error)
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).
		Update("status", models.RoomStatusOccupied).Error)
	tenant.Room = room
	return tenant
}
