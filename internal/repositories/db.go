package repositories

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rohits-web03/folio/internal/config"
	"github.com/rohits-web03/folio/internal/models"
)

var DB *gorm.DB

func ConnectDatabase() error {
	dsn := config.Envs.DB_URL
	if dsn == "" {
		return fmt.Errorf("DB_URL is not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	DB = db
	slog.Info("Successfully connected to database")
	return nil
}

// Migrate creates or updates every table the application owns.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Social{},
		&models.Link{},
		&models.Experience{},
		&models.Education{},
		&models.Project{},
		&models.Skill{},
	)
	if err != nil {
		return err
	}
	// gorm tags cannot express an index on lower(name).
	return db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_skills_user_lower_name ON skills (user_id, lower(name))").Error
}

// Close releases the database pool and the cache client.
func Close() error {
	var errs []error
	if DB != nil {
		if sqlDB, err := DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	errs = append(errs, Cache.Close())
	return errors.Join(errs...)
}
