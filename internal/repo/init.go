package repo

import (
	"github.com/quillon/stocksentry/internal/entity"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.SentAlert{})
}
