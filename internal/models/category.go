package models

import "time"

type Category struct {
	CategoryID   int64  `gorm:"primaryKey;autoIncrement;column:category_id"`
	CategoryName string `gorm:"type:varchar(100);not null;uniqueIndex:uniq_user_category_name"`
	UserID       int64  `gorm:"not null;index;uniqueIndex:uniq_user_category_name"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
}

func (Category) TableName() string {
	return "categories"
}
