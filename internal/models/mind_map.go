package models

import (
	"time"

	"gorm.io/datatypes"
)

// MindMap stores the serialized graph as opaque JSON; the backend never
// interprets nodes or edges.
type MindMap struct {
	MindMapID   int64  `gorm:"primaryKey;autoIncrement;column:mind_map_id"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:varchar(1000)"`

	NodesData datatypes.JSON `gorm:"type:jsonb"`
	EdgesData datatypes.JSON `gorm:"type:jsonb"`

	UserID int64 `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
	IsDeleted bool      `gorm:"not null;default:false;index"`
}

func (MindMap) TableName() string {
	return "mind_maps"
}
