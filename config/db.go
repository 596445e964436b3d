package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"property-backend/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "property_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase is idempotent: every block counts first and only creates
// missing rows.
func SeedDatabase() {
	// ---------------- Admins ----------------
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_DEFAULT_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Username: "admin@property.local",
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Property settings ----------------
	var settingCount int64
	DB.Model(&models.PropertySetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.PropertySetting{Name: "Property Management"}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to create property setting: %v", err)
		}
	}

	// ---------------- Form definitions ----------------
	// The three intake forms are created synchronously here and their ids
	// recorded in app_settings, so submissions always arrive pre-typed.
	forms := []struct {
		kind       string
		title      string
		settingKey string
	}{
		{models.SubmissionKindApplication, "Tenant Application", models.SettingApplicationFormID},
		{models.SubmissionKindMoveOut, "Move-Out Request", models.SettingMoveOutFormID},
		{models.SubmissionKindGuestCheckin, "Guest Check-In", models.SettingGuestCheckinFormID},
	}
	for _, form := range forms {
		var def models.FormDefinition
		err := DB.Where("kind = ?", form.kind).First(&def).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("warning: failed to check form %s: %v", form.kind, err)
			continue
		}
		def = models.FormDefinition{
			FormID: uuid.NewString(),
			Kind:   form.kind,
			Title:  form.title,
		}
		if err := DB.Create(&def).Error; err != nil {
			log.Printf("warning: failed to create form %s: %v", form.kind, err)
			continue
		}
		setting := models.AppSetting{Key: form.settingKey, Value: def.FormID}
		if err := DB.Where("`key` = ?", form.settingKey).FirstOrCreate(&setting).Error; err != nil {
			log.Printf("warning: failed to record form id for %s: %v", form.kind, err)
		}
	}
	log.Println("Form definitions ensured")

	// ---------------- Rooms ----------------
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 && strings.EqualFold(envOrDefault("SEED_SAMPLE_ROOMS", "false"), "true") {
		rooms := []models.Room{
			{RoomNumber: "101", Floor: "1", Type: "Standard", Status: models.RoomStatusVacant, RentalPrice: 500, DailyRate: 45, MaxOccupancy: 2},
			{RoomNumber: "102", Floor: "1", Type: "Standard", Status: models.RoomStatusVacant, RentalPrice: 500, DailyRate: 45, MaxOccupancy: 2},
			{RoomNumber: "201", Floor: "2", Type: "Deluxe", Status: models.RoomStatusVacant, RentalPrice: 650, DailyRate: 60, MaxOccupancy: 3},
			{RoomNumber: "202", Floor: "2", Type: "Deluxe", Status: models.RoomStatusVacant, RentalPrice: 650, DailyRate: 60, MaxOccupancy: 3},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Sample rooms seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order.
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.PropertySetting{},
		&models.AppSetting{},
		&models.FormDefinition{},
		&models.Room{},
		&models.Tenant{},
		&models.Booking{},
		&models.BudgetEntry{},
		&models.MaintenanceRequest{},
		&models.FormSubmission{},
		&models.CalendarEvent{},
		&models.JobRun{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
