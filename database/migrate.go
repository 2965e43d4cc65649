package database

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. uuid-ossp backs the uuid_generate_v4
// column defaults.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.JobCategory{},
		&models.JobLevel{},
		&models.Company{},
		&models.User{},
		&models.Job{},
		&models.SavedJob{},
		&models.Event{},
		&models.EventRegistration{},
	)
}
