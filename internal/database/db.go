package database

import (
	"log"

	"menu-backend/internal/config"
	"menu-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres. TranslateError makes the driver report
// uniqueness and foreign-key breaches as gorm.ErrDuplicatedKey /
// gorm.ErrForeignKeyViolated, which the storage layer relies on.
func Open(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Restaurant{},
		&models.Item{},
		&models.User{},
		&models.Session{},
	)
}

// Seed inserts a sample restaurant into an empty development database so the
// read endpoints have something to show. No-op when any restaurant exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurant := models.Restaurant{
		Name:         "Padoca Veronese",
		Slug:         "padoca-veronese",
		Description:  "Paes de fermentacao natural",
		City:         "Floripa",
		State:        "Santa Catarina - Brasil",
		Address:      "Av. do Campeche, 123",
		InstagramURL: "https://www.instagram.com/cassiareginaveronezi/",
	}
	if err := db.Create(&restaurant).Error; err != nil {
		return err
	}
	log.Println("seeded sample restaurant:", restaurant.Slug)
	return nil
}
