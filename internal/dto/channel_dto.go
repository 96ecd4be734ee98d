package dto

import "time"

type CreateChannelRequest struct {
	ChannelName string `json:"channel_name" binding:"required,min=1,max=100"`
}

type UpdateChannelRequest struct {
	ChannelName string `json:"channel_name" binding:"required,min=1,max=100"`
}

type ChannelResponse struct {
	ChannelID   int64     `json:"channel_id"`
	ChannelName string    `json:"channel_name"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChannelDetailResponse struct {
	ChannelResponse
	ScriptsCount int64 `json:"scripts_count"`
}
