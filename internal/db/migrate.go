package db

import (
	"github.com/sanuei/YoutubePlanner/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.User{},
		&models.Channel{},
		&models.Category{},
		&models.Script{},
		&models.ScriptChapter{},
		&models.MindMap{},
	)
}
