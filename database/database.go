// database.go - Handles database connection and setup

package database

import (
	"inventory-backend/config"
	"inventory-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the SQLite database, runs migrations and seeds the
// default admin account when configured. TranslateError lets the store
// layer match unique-constraint violations via gorm.ErrDuplicatedKey.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Sale{},
		&models.Expense{},
	); err != nil {
		return nil, err
	}

	if cfg.SeedAdmin {
		if err := seedDefaultAdmin(db, cfg); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// seedDefaultAdmin creates the configured admin account if no admin
// exists yet, so a fresh install is never locked out.
func seedDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     cfg.AdminName,
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
