package db

import (
	"uni3_backend/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"gorm.io/gorm" // GORM ORM library
)

// Models lists every table in dependency order
func Models() []any {
	return []any{
		&domain.Role{},
		&domain.User{},
		&domain.Attendance{},
		&domain.Foto{},
		&domain.Package{},
		&domain.Delivery{},
	}
}

// Migrate creates missing tables, foreign keys, constraints, columns and indexes
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
