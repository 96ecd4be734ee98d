package models

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	UserID       int64  `gorm:"primaryKey;autoIncrement;column:user_id"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	DisplayName  string `gorm:"type:varchar(100)"`
	AvatarURL    string `gorm:"type:varchar(500)"`
	Role         string `gorm:"type:varchar(20);not null;default:USER;index"`

	// Per-user LLM provider settings. The key is stored but never echoed
	// back through the API.
	ApiProvider string `gorm:"type:varchar(50)"`
	ApiKey      string `gorm:"type:varchar(500)"`
	ApiBaseURL  string `gorm:"type:varchar(500)"`
	ApiModel    string `gorm:"type:varchar(100)"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
