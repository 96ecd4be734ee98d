package dto

import (
	"encoding/json"
	"time"
)

type MindMapRequest struct {
	Title       string          `json:"title" binding:"required,min=1,max=255"`
	Description string          `json:"description" binding:"max=1000"`
	NodesData   json.RawMessage `json:"nodes_data"`
	EdgesData   json.RawMessage `json:"edges_data"`
}

type MindMapResponse struct {
	MindMapID   int64           `json:"mind_map_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	NodesData   json.RawMessage `json:"nodes_data,omitempty"`
	EdgesData   json.RawMessage `json:"edges_data,omitempty"`
	UserID      int64           `json:"user_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MindMapListItemResponse omits the graph payload.
type MindMapListItemResponse struct {
	MindMapID   int64     `json:"mind_map_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
