package configs

import (
	"github.com/contrabandkitchen/backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func OpenDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Menu{}, &entity.MenuVariant{},
		&entity.Preference{},
		&entity.Feedback{},
	)
}
