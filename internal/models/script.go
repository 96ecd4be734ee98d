package models

import "time"

type Script struct {
	ScriptID          int64  `gorm:"primaryKey;autoIncrement;column:script_id"`
	Title             string `gorm:"type:varchar(255);not null"`
	AlternativeTitle1 string `gorm:"type:varchar(255);column:alternative_title1"`
	Description       string `gorm:"type:text"`
	Difficulty        int    `gorm:"default:1"`
	Status            string `gorm:"type:varchar(50);index"`

	ReleaseDate *time.Time `gorm:"type:date"`

	UserID     int64  `gorm:"not null;index"`
	ChannelID  *int64 `gorm:"index"`
	CategoryID *int64 `gorm:"index"`

	Chapters []ScriptChapter `gorm:"foreignKey:ScriptID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Script) TableName() string {
	return "scripts"
}

type ScriptChapter struct {
	ChapterID     int64  `gorm:"primaryKey;autoIncrement;column:chapter_id"`
	ScriptID      int64  `gorm:"not null;uniqueIndex:uniq_script_chapter_number"`
	ChapterNumber int    `gorm:"not null;uniqueIndex:uniq_script_chapter_number"`
	Title         string `gorm:"type:varchar(255)"`
	Content       string `gorm:"type:text;not null"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (ScriptChapter) TableName() string {
	return "script_chapters"
}
