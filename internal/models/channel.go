package models

import "time"

// Channel rows are soft-deleted: Deleted is flipped and every normal query
// carries an explicit "deleted = false" predicate in the repository layer.
// No DB unique index on (user_id, channel_name): a soft-deleted row keeps
// its name until purged, and the name must stay reusable. The service checks
// uniqueness against live rows.
type Channel struct {
	ChannelID   int64  `gorm:"primaryKey;autoIncrement;column:channel_id"`
	ChannelName string `gorm:"type:varchar(255);not null;index"`
	UserID      int64  `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
	Deleted   bool      `gorm:"not null;default:false;index"`
}

func (Channel) TableName() string {
	return "channels"
}
