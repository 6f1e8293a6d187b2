package db

import (
	"log"
	"time"

	"github.com/pawsclinic/clinic-scheduler/internal/config"
	"github.com/pawsclinic/clinic-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Owner{},
		&models.Pet{},
		&models.Appointment{},
		&models.Task{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Authoritative double-booking guard. AutoMigrate cannot express a
	// partial index, so the constraint is applied raw. Completed and
	// cancelled rows stay out of the index and may share a slot freely.
	// Booting without this index would leave concurrent bookings with
	// no guard at all, so a failure here is fatal like a failed migrate.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_scheduled_slot
        ON appointments (pet_id, date, time)
        WHERE status = 'scheduled'
    `).Error; err != nil {
		log.Fatalf("failed to create scheduled slot index: %v", err)
	}

	return db
}
